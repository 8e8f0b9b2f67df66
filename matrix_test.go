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

func TestBitmapGetSetDefined(t *testing.T) {
	m := NewBitmap(5)
	assert.Equal(t, Unset, m.Get(2, 2))
	assert.False(t, m.Defined(2, 2))

	m.Set(2, 2, Dark)
	assert.Equal(t, Dark, m.Get(2, 2))
	assert.True(t, m.Defined(2, 2))

	m.Set(2, 2, Light)
	assert.Equal(t, Light, m.Get(2, 2))

	// Setting Unset is a no-op: the cell stays defined.
	m.Set(2, 2, Unset)
	assert.True(t, m.Defined(2, 2))
	assert.Equal(t, Light, m.Get(2, 2))
}

func TestBitmapNegativeIndexWraps(t *testing.T) {
	m := NewBitmap(5)
	m.Set(4, 4, Dark)
	assert.Equal(t, Dark, m.Get(-1, -1))
}

func TestBitmapRectFillAndRead(t *testing.T) {
	m := NewBitmap(8)
	m.RectFill(Point{1, 1}, Size{3, 3}, Dark)

	count := 0
	m.RectRead(Point{0, 0}, Size{8, 8}, func(relX, relY int, cur Cell) {
		if cur == Dark {
			count++
		}
	})
	assert.Equal(t, 9, count)
	assert.Equal(t, Dark, m.Get(1, 1))
	assert.Equal(t, Dark, m.Get(3, 3))
	assert.Equal(t, Unset, m.Get(0, 0))
}

func TestBitmapBorderPreservesInterior(t *testing.T) {
	m := NewBitmap(3)
	m.RectFill(Point{0, 0}, Size{3, 3}, Dark)
	m.Set(1, 1, Light)

	bordered := m.Border(2, Light)
	assert.Equal(t, 7, bordered.Width())
	assert.Equal(t, 7, bordered.Height())
	assert.Equal(t, Light, bordered.Get(0, 0))
	assert.Equal(t, Dark, bordered.Get(2, 2)) // m[0,0] shifted by border 2
	assert.Equal(t, Light, bordered.Get(3, 3))
}

func TestBitmapEmbedOnlyCopiesDefinedCells(t *testing.T) {
	dst := NewBitmap(5)
	dst.RectFill(Point{0, 0}, Size{5, 5}, Light)

	src := NewBitmap(2)
	src.Set(0, 0, Dark)
	// src[1,1] left Unset.

	dst.Embed(Point{1, 1}, src)
	assert.Equal(t, Dark, dst.Get(1, 1))
	assert.Equal(t, Light, dst.Get(2, 2)) // untouched by the unset src cell
}

func TestBitmapRectSliceOnlyIncludesDefinedCells(t *testing.T) {
	m := NewBitmap(5)
	m.Set(1, 1, Dark)
	m.Set(2, 2, Light)
	// m[3,3] left Unset.

	slice := m.RectSlice(Point{1, 1}, Size{3, 3})
	assert.Equal(t, Dark, slice.Get(0, 0))
	assert.Equal(t, Light, slice.Get(1, 1))
	assert.False(t, slice.Defined(2, 2))
}

func TestBitmapTransposeSwapsAxes(t *testing.T) {
	m := NewBitmap(4)
	m.Set(3, 0, Dark)

	tr := m.Transpose()
	assert.Equal(t, Dark, tr.Get(0, 3))
	assert.False(t, tr.Defined(3, 0))
}

// TestBitmapTransposeAlignedBlockMatchesCellByCell exercises the
// 32×32 bit-shuffle path (wordBits-aligned dimensions) against cells
// scattered across multiple word-column blocks and row bands, and
// checks every cell individually against the definition of transpose.
func TestBitmapTransposeAlignedBlockMatchesCellByCell(t *testing.T) {
	const n = 64 // two full 32×32 blocks in each dimension
	m := NewBitmapWH(n, n)

	set := []struct {
		x, y int
		v    Cell
	}{
		{0, 0, Dark}, {31, 0, Light}, {0, 31, Dark}, {31, 31, Light},
		{32, 0, Dark}, {63, 0, Light}, {32, 33, Dark}, {63, 63, Dark},
		{17, 40, Light}, {50, 5, Dark},
	}
	for _, s := range set {
		m.Set(s.x, s.y, s.v)
	}

	tr := m.Transpose()
	assert.Equal(t, n, tr.Width())
	assert.Equal(t, n, tr.Height())
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			assert.Equal(t, m.Defined(x, y), tr.Defined(y, x), "defined mismatch at (%d,%d)", x, y)
			if m.Defined(x, y) {
				assert.Equal(t, m.Get(x, y), tr.Get(y, x), "value mismatch at (%d,%d)", x, y)
			}
		}
	}
}

func TestBitmapNegateFlipsAndDefinesAll(t *testing.T) {
	m := NewBitmap(4)
	m.Set(0, 0, Dark)
	m.Set(1, 0, Light)
	// m[2,0] left Unset.

	neg := m.Negate()
	assert.Equal(t, Light, neg.Get(0, 0))
	assert.Equal(t, Dark, neg.Get(1, 0))
	assert.True(t, neg.Defined(2, 0)) // every cell becomes defined
}

func TestBitmapScaleExpandsBlocks(t *testing.T) {
	m := NewBitmap(2)
	m.Set(0, 0, Dark)
	m.Set(1, 0, Light)
	m.Set(0, 1, Light)
	m.Set(1, 1, Dark)

	scaled := m.Scale(3)
	assert.Equal(t, 6, scaled.Width())
	assert.Equal(t, 6, scaled.Height())
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, Dark, scaled.Get(x, y))
		}
	}
	for y := 3; y < 6; y++ {
		for x := 3; x < 6; x++ {
			assert.Equal(t, Dark, scaled.Get(x, y))
		}
	}
	assert.Equal(t, Light, scaled.Get(4, 0))
}

func TestBitmapCloneIsIndependent(t *testing.T) {
	m := NewBitmap(3)
	m.Set(0, 0, Dark)
	c := m.Clone()
	c.Set(0, 0, Light)
	assert.Equal(t, Dark, m.Get(0, 0))
	assert.Equal(t, Light, c.Get(0, 0))
}

func TestBitmapPopcountCountsOnlyDefinedDark(t *testing.T) {
	m := NewBitmap(4)
	m.Set(0, 0, Dark)
	m.Set(1, 0, Dark)
	m.Set(2, 0, Light)
	// m[3,0] left Unset.
	assert.Equal(t, 2, m.Popcount())
}

func TestBitmapCountPatternInRow(t *testing.T) {
	m := NewBitmap(8)
	darkAt := map[int]bool{0: true, 3: true, 4: true, 5: true, 6: true, 7: true}
	for x := 0; x < 8; x++ {
		if darkAt[x] {
			m.Set(x, 0, Dark)
		} else {
			m.Set(x, 0, Light)
		}
	}
	// bits: 1 0 0 1 1 1 1 1 -- look for a 4-bit window "0111"
	count := m.CountPatternInRow(0, 4, 0b0111)
	assert.Equal(t, 1, count)
}

func TestBitmapCount2x2Boxes(t *testing.T) {
	m := NewBitmap(3)
	m.RectFill(Point{0, 0}, Size{2, 2}, Dark)
	m.Set(2, 0, Light)
	m.Set(2, 1, Light)
	m.Set(0, 2, Light)
	m.Set(1, 2, Light)
	m.Set(2, 2, Light)

	assert.Equal(t, 1, m.Count2x2Boxes(0))
	assert.Equal(t, 0, m.Count2x2Boxes(1))
}

func TestBitmapGetRuns(t *testing.T) {
	m := NewBitmap(7)
	for _, x := range []int{0, 1} {
		m.Set(x, 0, Dark)
	}
	for _, x := range []int{2, 3, 4} {
		m.Set(x, 0, Light)
	}
	for _, x := range []int{5, 6} {
		m.Set(x, 0, Dark)
	}

	runs := m.GetRuns(0)
	assert.Equal(t, []Run{{2, Dark}, {3, Light}, {2, Dark}}, runs)
}
