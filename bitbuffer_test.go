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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendBitsToBuffer(t *testing.T) {
	bb := make(bitBuffer, 0)

	bb.appendBits(0, 0)
	assert.Equal(t, 0, len(bb))

	bb.appendBits(1, 1)
	assert.Equal(t, []byte{1}, []byte(bb))

	bb.appendBits(0, 1)
	assert.Equal(t, []byte{1, 0}, []byte(bb))

	bb.appendBits(5, 3)
	assert.Equal(t, []byte{1, 0, 1, 0, 1}, []byte(bb))

	bb.appendBits(6, 3)
	assert.Equal(t, []byte{1, 0, 1, 0, 1, 1, 1, 0}, []byte(bb))
}

func TestPackBytes(t *testing.T) {
	bb := make(bitBuffer, 0)
	bb.appendBits(0xA5, 8)
	bb.appendBits(0x01, 8)
	assert.Equal(t, []byte{0xA5, 0x01}, bb.packBytes())
}

func TestBitReaderRoundTrip(t *testing.T) {
	bb := make(bitBuffer, 0)
	bb.appendBits(0x3, 2)
	bb.appendBits(0x15, 5)
	bb.appendBits(0xFF, 8)
	bb.appendBits(0, (8-len(bb)%8)%8)

	r := newBitReader(bb.packBytes())
	v, err := r.readBits(2)
	assert.NoError(t, err)
	assert.Equal(t, 0x3, v)

	v, err = r.readBits(5)
	assert.NoError(t, err)
	assert.Equal(t, 0x15, v)

	v, err = r.readBits(8)
	assert.NoError(t, err)
	assert.Equal(t, 0xFF, v)
}

func TestBitReaderErrorsPastEnd(t *testing.T) {
	r := newBitReader([]byte{0xFF})
	_, err := r.readBits(4)
	assert.NoError(t, err)
	_, err = r.readBits(8)
	assert.Error(t, err)
}
