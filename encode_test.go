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

func TestEncodeProducesSquareMatrixOfExpectedSize(t *testing.T) {
	sym, err := Encode("HELLO WORLD")
	assert.NoError(t, err)
	assert.Equal(t, sym.Version.Size(), sym.Matrix.Width())
	assert.Equal(t, sym.Version.Size(), sym.Matrix.Height())
}

func TestEncodeHonorsMinVersion(t *testing.T) {
	sym, err := Encode("1", WithMinVersion(10))
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, int(sym.Version), 10)
}

func TestEncodeRejectsCapacityOverflow(t *testing.T) {
	big := make([]byte, 5000)
	_, err := EncodeBytes(big, WithMaxVersion(5))
	assert.Error(t, err)
	qerr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, CapacityOverflow, qerr.Kind)
}

func TestEncodeRejectsInvalidVersionRange(t *testing.T) {
	_, err := Encode("x", WithMinVersion(30), WithMaxVersion(5))
	assert.Error(t, err)
}

func TestEncodeRejectsInvalidMask(t *testing.T) {
	_, err := Encode("x", WithMask(8))
	assert.Error(t, err)
}

func TestEncodeWithMaskForcesChoice(t *testing.T) {
	sym, err := Encode("forced mask test", WithMask(2))
	assert.NoError(t, err)
	assert.Equal(t, 2, sym.Mask)
}

func TestEncodeBoostECCRaisesLevelWhenRoomAvailable(t *testing.T) {
	sym, err := Encode("1", WithECC(Low), WithMinVersion(10), WithMaxVersion(10))
	assert.NoError(t, err)
	assert.Greater(t, int(sym.ECC), int(Low))
}

func TestEncodeWithoutBoostECCKeepsRequestedLevel(t *testing.T) {
	sym, err := Encode("1", WithECC(Low), WithBoostECC(false), WithMinVersion(10), WithMaxVersion(10))
	assert.NoError(t, err)
	assert.Equal(t, Low, sym.ECC)
}

func TestEncodeWithBorderAddsQuietZone(t *testing.T) {
	bare, err := Encode("border test")
	assert.NoError(t, err)
	bordered, err := Encode("border test", WithBorder(4))
	assert.NoError(t, err)
	assert.Equal(t, bare.Matrix.Width()+8, bordered.Matrix.Width())
}

func TestEncodeRoundTripsThroughSymbolDecode(t *testing.T) {
	for _, text := range []string{
		"HELLO WORLD",
		"0123456789",
		"Hello, world! 123",
	} {
		sym, err := Encode(text)
		assert.NoError(t, err)

		gotSym, data, err := readSymbol(sym.Matrix)
		assert.NoError(t, err)
		assert.Equal(t, sym.Version, gotSym.Version)
		assert.Equal(t, sym.ECC, gotSym.ECC)

		segs, err := parseSegments(data, sym.Version)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(segs))
		assert.Equal(t, text, segs[0].Text)
	}
}
