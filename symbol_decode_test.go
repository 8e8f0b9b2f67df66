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

func TestItoaPaddedZeroPads(t *testing.T) {
	assert.Equal(t, []byte("007"), itoaPadded(7, 3))
	assert.Equal(t, []byte("314"), itoaPadded(314, 3))
	assert.Equal(t, []byte("42"), itoaPadded(42, 2))
}

// padBitsTo8 appends zero bits until bb's length is a multiple of 8, so
// it can be passed through packBytes without panicking.
func padBitsTo8(bb *bitBuffer) {
	if rem := len(*bb) % 8; rem != 0 {
		bb.appendBits(0, 8-rem)
	}
}

func TestReadSegmentBodyNumericThreeDigitGroups(t *testing.T) {
	var bb bitBuffer
	// "123456" as two 10-bit groups of three digits: 123, 456.
	bb.appendBits(123, 10)
	bb.appendBits(456, 10)
	padBitsTo8(&bb)
	r := newBitReader(bb.packBytes())

	seg, err := readSegmentBody(r, ModeNumeric, 6)
	assert.NoError(t, err)
	assert.Equal(t, "123456", seg.Text)
}

func TestReadSegmentBodyNumericTailGroupWidth(t *testing.T) {
	var bb bitBuffer
	// A single leftover digit is encoded 4 bits wide: width = 1*3+1.
	bb.appendBits(2, 4)
	padBitsTo8(&bb)
	r := newBitReader(bb.packBytes())

	seg, err := readSegmentBody(r, ModeNumeric, 1)
	assert.NoError(t, err)
	assert.Equal(t, "2", seg.Text)
}

func TestReadSegmentBodyAlphanumericPairAndTail(t *testing.T) {
	var bb bitBuffer
	// "AC" -> A=index10, C=index12, v=10*45+12=462, 11 bits.
	bb.appendBits(462, 11)
	// tail "9" -> index 9, 6 bits.
	bb.appendBits(9, 6)
	padBitsTo8(&bb)
	r := newBitReader(bb.packBytes())

	seg, err := readSegmentBody(r, ModeAlphanumeric, 3)
	assert.NoError(t, err)
	assert.Equal(t, "AC9", seg.Text)
}

func TestReadSegmentBodyBytePacksOneBytePerEightBits(t *testing.T) {
	var bb bitBuffer
	bb.appendBits('H', 8)
	bb.appendBits('i', 8)
	r := newBitReader(bb.packBytes())

	seg, err := readSegmentBody(r, ModeByte, 2)
	assert.NoError(t, err)
	assert.Equal(t, "Hi", seg.Text)
}

func TestParseSegmentsStopsAtTerminator(t *testing.T) {
	var bb bitBuffer
	bb.appendBits(ModeAlphanumeric.bits, 4)
	bb.appendBits(2, ModeAlphanumeric.numCharCountBits(1)) // count=2
	bb.appendBits(462, 11)                                 // "AC"
	bb.appendBits(modeTerminator.bits, 4)
	padBitsTo8(&bb)

	segs, err := parseSegments(bb.packBytes(), 1)
	assert.NoError(t, err)
	assert.Len(t, segs, 1)
	assert.Equal(t, "AC", segs[0].Text)
}

func TestParseSegmentsSkipsECIDesignator(t *testing.T) {
	var bb bitBuffer
	bb.appendBits(modeECI.bits, 4)
	bb.appendBits(0b00011001, 8) // 8-bit ECI assignment, high bit 0
	bb.appendBits(ModeByte.bits, 4)
	bb.appendBits(1, ModeByte.numCharCountBits(1))
	bb.appendBits('Q', 8)
	bb.appendBits(modeTerminator.bits, 4)
	padBitsTo8(&bb)

	segs, err := parseSegments(bb.packBytes(), 1)
	assert.NoError(t, err)
	assert.Len(t, segs, 1)
	assert.Equal(t, "Q", segs[0].Text)
}

func TestParseSegmentsRejectsKanji(t *testing.T) {
	var bb bitBuffer
	bb.appendBits(modeKanji.bits, 4)
	padBitsTo8(&bb)

	_, err := parseSegments(bb.packBytes(), 1)
	assert.Error(t, err)
	qerr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, UnsupportedMode, qerr.Kind)
}

func TestParseSegmentsRejectsUnrecognizedMode(t *testing.T) {
	var bb bitBuffer
	bb.appendBits(0b1001, 4) // 0x9 is not a recognized mode indicator
	padBitsTo8(&bb)

	_, err := parseSegments(bb.packBytes(), 1)
	assert.Error(t, err)
	qerr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, SegmentParse, qerr.Kind)
}
