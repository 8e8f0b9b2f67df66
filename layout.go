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

// symbolTemplate holds the function-pattern layer of a QR symbol: every
// module that isn't part of the zig-zag data/ECC stream. mat carries the
// drawn function modules (finder, timing, alignment, format, version,
// dark module); isFunction marks which coordinates are off-limits to
// both the data placer and the masker.
type symbolTemplate struct {
	version    Version
	size       int
	mat        *Bitmap
	isFunction *Bitmap
}

func newSymbolTemplate(v Version) *symbolTemplate {
	size := v.Size()
	t := &symbolTemplate{
		version:    v,
		size:       size,
		mat:        NewBitmap(size),
		isFunction: NewBitmap(size),
	}
	t.drawFunctionPatterns()
	return t
}

func (t *symbolTemplate) setFunctionModule(x, y int, dark bool) {
	v := Light
	if dark {
		v = Dark
	}
	t.mat.Set(x, y, v)
	t.isFunction.Set(x, y, Dark)
}

func (t *symbolTemplate) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= t.size || yy < 0 || yy >= t.size {
				continue
			}
			dist := maxInt(absInt(dx), absInt(dy))
			t.setFunctionModule(xx, yy, dist != 2 && dist != 4)
		}
	}
}

func (t *symbolTemplate) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			t.setFunctionModule(x+dx, y+dy, maxInt(absInt(dx), absInt(dy)) != 1)
		}
	}
}

func (t *symbolTemplate) drawFunctionPatterns() {
	for i := 0; i < t.size; i++ {
		t.setFunctionModule(6, i, i%2 == 0)
		t.setFunctionModule(i, 6, i%2 == 0)
	}

	t.drawFinderPattern(3, 3)
	t.drawFinderPattern(t.size-4, 3)
	t.drawFinderPattern(3, t.size-4)

	pos := alignmentPatternPositions[t.version]
	n := len(pos)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == 0 && j == 0 || i == 0 && j == n-1 || i == n-1 && j == 0 {
				continue
			}
			t.drawAlignmentPattern(int(pos[i]), int(pos[j]))
		}
	}

	// The format bits drawn here are placeholders (embedFormatBits writes
	// the real ones in drawCodewords once the mask is known); the version
	// bits are final.
	t.drawFormatBitsRaw(0)
	t.drawVersionRaw()

	t.setFunctionModule(8, t.size-8, true) // Dark module.
}

// drawFormatBitsRaw draws both 15-bit format copies using the given
// format string (already BCH-encoded).
func (t *symbolTemplate) drawFormatBitsRaw(bitsVal int) {
	get := func(i int) bool { return bitsVal>>uint(i)&1 != 0 }

	for i := 0; i <= 5; i++ {
		t.setFunctionModule(8, i, get(i))
	}
	t.setFunctionModule(8, 7, get(6))
	t.setFunctionModule(8, 8, get(7))
	t.setFunctionModule(7, 8, get(8))
	for i := 9; i < 15; i++ {
		t.setFunctionModule(14-i, 8, get(i))
	}

	for i := 0; i < 8; i++ {
		t.setFunctionModule(t.size-1-i, 8, get(i))
	}
	for i := 8; i < 15; i++ {
		t.setFunctionModule(8, t.size-15+i, get(i))
	}
}

func (t *symbolTemplate) drawFormatBits(ecc ECC, mask int) {
	t.drawFormatBitsRaw(formatBCH(ecc.formatBits(), mask))
}

func (t *symbolTemplate) drawVersionRaw() {
	if t.version < 7 {
		return
	}
	bitsVal := versionBCH(t.version)
	for i := 0; i < 18; i++ {
		bit := bitsVal>>uint(i)&1 != 0
		a := t.size - 11 + i%3
		b := i / 3
		t.setFunctionModule(a, b, bit)
		t.setFunctionModule(b, a, bit)
	}
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// zigzagWalk calls visit(x, y) once for every non-function module in the
// canonical up/down zig-zag column order used to place and read data and
// error-correction codewords (ISO/IEC 18004 §7.7.3).
func zigzagWalk(t *symbolTemplate, visit func(x, y int)) {
	for right := t.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		upward := (right+1)&2 == 0
		for vert := 0; vert < t.size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				var y int
				if upward {
					y = t.size - 1 - vert
				} else {
					y = vert
				}
				if t.isFunction.Get(x, y) != Dark {
					visit(x, y)
				}
			}
		}
	}
}

// drawCodewords places data (data‖ECC bytes, MSB-first) into the matrix
// along the zig-zag walk, then applies mask and draws its format bits.
func (t *symbolTemplate) drawCodewords(ecc ECC, mask int, data []byte) *Bitmap {
	if len(data) != numRawDataModules[t.version]/8 {
		panic("qrcodec: codeword length does not match symbol capacity")
	}
	mat := t.mat.Clone()
	i := 0
	zigzagWalk(t, func(x, y int) {
		var dark bool
		if i < len(data)*8 {
			dark = (data[i>>3]>>uint(7-i&7))&1 != 0
			i++
		}
		mat.Set(x, y, cellFromBool(dark))
	})
	applyMask(mat, t.isFunction, mask)
	embedFormatBits(mat, t.size, ecc, mask)
	return mat
}

func embedFormatBits(mat *Bitmap, size int, ecc ECC, mask int) {
	bitsVal := formatBCH(ecc.formatBits(), mask)
	get := func(i int) Cell { return cellFromBool(bitsVal>>uint(i)&1 != 0) }

	for i := 0; i <= 5; i++ {
		mat.Set(8, i, get(i))
	}
	mat.Set(8, 7, get(6))
	mat.Set(8, 8, get(7))
	mat.Set(7, 8, get(8))
	for i := 9; i < 15; i++ {
		mat.Set(14-i, 8, get(i))
	}
	for i := 0; i < 8; i++ {
		mat.Set(size-1-i, 8, get(i))
	}
	for i := 8; i < 15; i++ {
		mat.Set(8, size-15+i, get(i))
	}
}

func cellFromBool(dark bool) Cell {
	if dark {
		return Dark
	}
	return Light
}

// readCodewords is the decode-side inverse of drawCodewords: it walks the
// zig-zag order over mat (already unmasked), collecting bits into bytes.
// Function modules are identified from a freshly built template for
// version v, so the reader needs only the version (recovered from BCH)
// and the unmasked matrix.
func readCodewords(mat *Bitmap, v Version) []byte {
	t := newSymbolTemplate(v)
	total := numRawDataModules[v] / 8
	out := make([]byte, total)
	i := 0
	zigzagWalk(t, func(x, y int) {
		if i >= total*8 {
			return
		}
		if mat.Get(x, y) == Dark {
			out[i>>3] |= 1 << uint(7-i&7)
		}
		i++
	})
	return out
}
