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

// perspectiveTransform is a 3×3 homogeneous transform mapping the unit
// square (0,0)-(1,0)-(1,1)-(0,1) onto an arbitrary quadrilateral (or
// vice versa), per the standard projective-mapping construction.
type perspectiveTransform struct {
	a11, a21, a31 float64
	a12, a22, a32 float64
	a13, a23, a33 float64
}

// squareToQuadrilateral builds the transform taking the unit square to
// the quadrilateral (x0,y0)→(x1,y1)→(x2,y2)→(x3,y3).
func squareToQuadrilateral(x0, y0, x1, y1, x2, y2, x3, y3 float64) *perspectiveTransform {
	dx3 := x0 - x1 + x2 - x3
	dy3 := y0 - y1 + y2 - y3
	if dx3 == 0 && dy3 == 0 {
		return &perspectiveTransform{
			a11: x1 - x0, a21: x2 - x1, a31: x0,
			a12: y1 - y0, a22: y2 - y1, a32: y0,
			a13: 0, a23: 0, a33: 1,
		}
	}
	dx1 := x1 - x2
	dx2 := x3 - x2
	dy1 := y1 - y2
	dy2 := y3 - y2
	denom := dx1*dy2 - dx2*dy1
	a13 := (dx3*dy2 - dx2*dy3) / denom
	a23 := (dx1*dy3 - dx3*dy1) / denom
	return &perspectiveTransform{
		a11: x1 - x0 + a13*x1, a21: x3 - x0 + a23*x3, a31: x0,
		a12: y1 - y0 + a13*y1, a22: y3 - y0 + a23*y3, a32: y0,
		a13: a13, a23: a23, a33: 1,
	}
}

// quadrilateralToSquare is the inverse of squareToQuadrilateral, taking
// the quadrilateral back to the unit square.
func quadrilateralToSquare(x0, y0, x1, y1, x2, y2, x3, y3 float64) *perspectiveTransform {
	return squareToQuadrilateral(x0, y0, x1, y1, x2, y2, x3, y3).buildAdjoint()
}

func (t *perspectiveTransform) buildAdjoint() *perspectiveTransform {
	return &perspectiveTransform{
		a11: t.a22*t.a33 - t.a23*t.a32,
		a21: t.a23*t.a31 - t.a21*t.a33,
		a31: t.a21*t.a32 - t.a22*t.a31,
		a12: t.a13*t.a32 - t.a12*t.a33,
		a22: t.a11*t.a33 - t.a13*t.a31,
		a32: t.a12*t.a31 - t.a11*t.a32,
		a13: t.a12*t.a23 - t.a13*t.a22,
		a23: t.a13*t.a21 - t.a11*t.a23,
		a33: t.a11*t.a22 - t.a12*t.a21,
	}
}

// times composes t (applied second) with other (applied first).
func (t *perspectiveTransform) times(other *perspectiveTransform) *perspectiveTransform {
	return &perspectiveTransform{
		a11: t.a11*other.a11 + t.a21*other.a12 + t.a31*other.a13,
		a21: t.a11*other.a21 + t.a21*other.a22 + t.a31*other.a23,
		a31: t.a11*other.a31 + t.a21*other.a32 + t.a31*other.a33,
		a12: t.a12*other.a11 + t.a22*other.a12 + t.a32*other.a13,
		a22: t.a12*other.a21 + t.a22*other.a22 + t.a32*other.a23,
		a32: t.a12*other.a31 + t.a22*other.a32 + t.a32*other.a33,
		a13: t.a13*other.a11 + t.a23*other.a12 + t.a33*other.a13,
		a23: t.a13*other.a21 + t.a23*other.a22 + t.a33*other.a23,
		a33: t.a13*other.a31 + t.a23*other.a32 + t.a33*other.a33,
	}
}

// transform maps (x,y) through t.
func (t *perspectiveTransform) transform(x, y float64) (float64, float64) {
	denom := t.a13*x + t.a23*y + t.a33
	rx := (t.a11*x + t.a21*y + t.a31) / denom
	ry := (t.a12*x + t.a22*y + t.a32) / denom
	return rx, ry
}

// sampleGrid rectifies src through t (mapping module-grid coordinates
// (0.5-based centers) back into source-image pixel coordinates) and
// produces a size×size Bitmap, one cell per module. Coordinates are
// truncated (not rounded) to an integer pixel, matching the rest of the
// codec's truncating-division convention.
func sampleGrid(src *Bitmap, size int, t *perspectiveTransform) (*Bitmap, error) {
	out := NewBitmap(size)
	w, h := src.Width(), src.Height()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			sx, sy := t.transform(float64(x)+0.5, float64(y)+0.5)
			ix, iy := int(sx), int(sy)
			if ix < 0 || ix >= w || iy < 0 || iy >= h {
				return nil, newErr(LayoutMismatch, "sample (%d,%d) maps outside source image", x, y)
			}
			out.Set(x, y, src.Get(ix, iy))
		}
	}
	return out, nil
}
