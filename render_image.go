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
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// ToImage renders the matrix as a stdlib image.Gray, scale modules per
// cell. Unset cells (only possible if Matrix was sliced or embedded by a
// caller) render as mid-gray so they remain visually distinct from both
// Dark and Light.
func (b *Bitmap) ToImage(scale int) *image.Gray {
	scaled := b.Scale(scale)
	img := image.NewGray(image.Rect(0, 0, scaled.Width(), scaled.Height()))
	for y := 0; y < scaled.Height(); y++ {
		for x := 0; x < scaled.Width(); x++ {
			var g color.Gray
			switch scaled.Get(x, y) {
			case Dark:
				g = color.Gray{Y: 0}
			case Light:
				g = color.Gray{Y: 255}
			default:
				g = color.Gray{Y: 128}
			}
			img.SetGray(x, y, g)
		}
	}
	return img
}

// ToImage renders the symbol at scale modules per cell.
func (s *Symbol) ToImage(scale int) *image.Gray {
	return s.Matrix.ToImage(scale)
}

// ToPNG renders the symbol at scale modules per cell and encodes it as
// PNG bytes.
func (s *Symbol) ToPNG(scale int) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, s.ToImage(scale)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
