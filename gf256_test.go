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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGfMul(t *testing.T) {
	cases := [][3]byte{
		{0x00, 0x00, 0x00},
		{0x01, 0x01, 0x01},
		{0x02, 0x02, 0x04},
		{0x00, 0x6E, 0x00},
		{0xB2, 0xDD, 0xE6},
		{0x41, 0x11, 0x25},
		{0xB0, 0x1F, 0x11},
		{0x05, 0x75, 0xBC},
		{0x52, 0xB5, 0xAE},
		{0xA8, 0x20, 0xA4},
		{0x0E, 0x44, 0x9F},
		{0xD4, 0x13, 0xA0},
		{0x31, 0x10, 0x37},
		{0x6C, 0x58, 0xCB},
		{0xB6, 0x75, 0x3E},
		{0xFF, 0xFF, 0xE2},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestGfMul %v", tc), func(t *testing.T) {
			assert.Equal(t, tc[2], gfMul(tc[0], tc[1]))
		})
	}
}

func TestGfMulCommutative(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			assert.Equal(t, gfMul(byte(a), byte(b)), gfMul(byte(b), byte(a)))
		}
	}
}

func TestGfInvRoundTrip(t *testing.T) {
	for a := 1; a < 256; a++ {
		inv := gfInv(byte(a))
		assert.Equal(t, byte(1), gfMul(byte(a), inv))
	}
}

func TestGfPowMatchesRepeatedMul(t *testing.T) {
	for a := 1; a < 256; a++ {
		want := byte(1)
		for i := 0; i < 5; i++ {
			want = gfMul(want, byte(a))
		}
		assert.Equal(t, want, gfPow(byte(a), 5))
	}
}

func TestGfPolyRemainderOfSelf(t *testing.T) {
	p := gfPoly{1, 2, 3}
	rem := gfPolyRemainder(p, p)
	assert.Equal(t, -1, gfPolyDeg(rem))
}

func TestGfPolyEvalConstant(t *testing.T) {
	p := gfPoly{0x42}
	for x := 0; x < 256; x++ {
		assert.Equal(t, byte(0x42), gfPolyEval(p, byte(x)))
	}
}

func TestGfGeneratorHasUnitLeadingCoefficient(t *testing.T) {
	for deg := 1; deg <= 30; deg++ {
		g := gfGenerator(deg)
		assert.Equal(t, deg, gfPolyDeg(g))
		assert.Equal(t, byte(1), g[0])
	}
}
