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
	"image"
	"image/color"
)

const binarizeBlockSize = 8
const binarizeMinDimension = 40

// pixelRGB extracts 8-bit R,G,B samples for img, accepting only the
// pixel formats spec.md §4.8 recognizes: grayscale (treated as R=G=B)
// and (N)RGBA. Any other color model is rejected outright rather than
// silently downsampled through it.
func pixelRGB(img image.Image) (func(x, y int) (r, g, b int), error) {
	bounds := img.Bounds()
	switch img.ColorModel() {
	case color.GrayModel:
		return func(x, y int) (int, int, int) {
			y8 := int(img.At(bounds.Min.X+x, bounds.Min.Y+y).(color.Gray).Y)
			return y8, y8, y8
		}, nil
	case color.RGBAModel:
		return func(x, y int) (int, int, int) {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y).(color.RGBA)
			return int(c.R), int(c.G), int(c.B)
		}, nil
	case color.NRGBAModel:
		return func(x, y int) (int, int, int) {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y).(color.NRGBA)
			return int(c.R), int(c.G), int(c.B)
		}, nil
	default:
		return nil, newErr(UnknownPixelFormat, "unsupported pixel format %T (want gray, RGBA, or NRGBA)", img)
	}
}

// binarize converts img to a two-valued Bitmap (Light/Dark, both always
// Defined) via per-pixel luminance followed by a two-pass adaptive
// threshold over 8×8 blocks, per spec.md §4.8.
func binarize(img image.Image) (*Bitmap, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < binarizeMinDimension || h < binarizeMinDimension {
		return nil, newErr(ImageTooSmall, "image %dx%d is too small to binarize", w, h)
	}

	at, err := pixelRGB(img)
	if err != nil {
		return nil, err
	}

	// Step 1: per-pixel luminance Y = (R + 2G + B) / 4.
	lum := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := at(x, y)
			lum[y*w+x] = (r + 2*g + b) / 4
		}
	}

	bw := (w + binarizeBlockSize - 1) / binarizeBlockSize
	bh := (h + binarizeBlockSize - 1) / binarizeBlockSize

	blockMean := make([]int, bw*bh)
	blackPoint := make([]int, bw*bh)

	const minRange = 24 // Luminance spread below which a block is "flat".

	for by := 0; by < bh; by++ {
		for bx := 0; bx < bw; bx++ {
			minV, maxV, sum, n := 255, 0, 0, 0
			x0, y0 := bx*binarizeBlockSize, by*binarizeBlockSize
			x1, y1 := minInt(x0+binarizeBlockSize, w), minInt(y0+binarizeBlockSize, h)
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					v := lum[y*w+x]
					if v < minV {
						minV = v
					}
					if v > maxV {
						maxV = v
					}
					sum += v
					n++
				}
			}
			idx := by*bw + bx
			blockMean[idx] = sum / n

			if maxV-minV <= minRange {
				bp := minV / 2
				if by > 0 && bx > 0 {
					top := blockMean[(by-1)*bw+bx]
					left := blockMean[by*bw+bx-1]
					topLeft := blockMean[(by-1)*bw+bx-1]
					weighted := (top + 2*left + topLeft) / 4
					if weighted < bp {
						bp = weighted
					}
				}
				blackPoint[idx] = bp
			} else {
				blackPoint[idx] = blockMean[idx]
			}
		}
	}

	// Step 3: the threshold for each block is the average of its 5×5
	// neighborhood of block black-points, with the neighborhood's center
	// clamped to [2, num_blocks-3] so it never runs off either edge.
	clamp := func(v, lo, hi int) int {
		if hi < lo {
			return lo
		}
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}

	threshold := make([]int, bw*bh)
	for by := 0; by < bh; by++ {
		cy := clamp(by, 2, bh-3)
		for bx := 0; bx < bw; bx++ {
			cx := clamp(bx, 2, bw-3)
			sum, n := 0, 0
			for dy := -2; dy <= 2; dy++ {
				ny := clamp(cy+dy, 0, bh-1)
				for dx := -2; dx <= 2; dx++ {
					nx := clamp(cx+dx, 0, bw-1)
					sum += blackPoint[ny*bw+nx]
					n++
				}
			}
			threshold[by*bw+bx] = sum / n
		}
	}

	out := NewBitmapWH(w, h)
	for y := 0; y < h; y++ {
		by := y / binarizeBlockSize
		for x := 0; x < w; x++ {
			bx := x / binarizeBlockSize
			if lum[y*w+x] <= threshold[by*bw+bx] {
				out.Set(x, y, Dark)
			} else {
				out.Set(x, y, Light)
			}
		}
	}
	return out, nil
}
