// Copyright © 2026 The qrcodec Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIC
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package qrcodec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStringNames(t *testing.T) {
	assert.Equal(t, "CapacityOverflow", CapacityOverflow.String())
	assert.Equal(t, "RsUndecodable", RsUndecodable.String())
	assert.Equal(t, "Unknown", Kind(127).String())
}

func TestNewErrFormatsMessage(t *testing.T) {
	err := newErr(InvalidVersion, "version %d out of range", 99)
	assert.Equal(t, InvalidVersion, err.Kind)
	assert.Equal(t, "version 99 out of range", err.Message)
	assert.Nil(t, err.Wrapped)
	assert.Equal(t, "qrcodec: InvalidVersion: version 99 out of range", err.Error())
}

func TestWrapErrIncludesWrappedError(t *testing.T) {
	inner := errors.New("boom")
	err := wrapErr(RsUndecodable, inner, "block %d failed", 3)
	assert.Same(t, inner, err.Wrapped)
	assert.Contains(t, err.Error(), "boom")
	assert.Contains(t, err.Error(), "block 3 failed")
}

func TestErrorUnwrapReturnsWrapped(t *testing.T) {
	inner := errors.New("boom")
	err := wrapErr(RsUndecodable, inner, "oops")
	assert.Equal(t, inner, errors.Unwrap(err))
}

func TestErrorIsMatchesOnKindOnly(t *testing.T) {
	a := newErr(FinderNotFound, "first message")
	b := newErr(FinderNotFound, "second, different message")
	c := newErr(AlignmentNotFound, "third")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
	assert.False(t, errors.Is(a, errors.New("not a *Error at all")))
}
