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

// ToGIF renders the symbol at scale modules per cell as an uncompressed
// GIF87a image: a 128-entry global color table (white at index 0, black
// padding elsewhere) and a fixed-table pixel stream that disables real
// LZW compression, one byte per pixel.
func (s *Symbol) ToGIF(scale int) ([]byte, error) {
	scaled := s.Matrix.Scale(scale)
	w, h := scaled.Width(), scaled.Height()

	var buf []byte
	buf = append(buf, "GIF87a"...)

	buf = appendUint16LE(buf, uint16(w))
	buf = appendUint16LE(buf, uint16(h))
	buf = append(buf, 0xF6) // global color table, 128 entries, 8-bit color resolution
	buf = append(buf, 0x00) // background color index
	buf = append(buf, 0x00) // pixel aspect ratio

	buf = append(buf, 0xFF, 0xFF, 0xFF) // index 0: white (Light)
	for i := 1; i < 128; i++ {
		buf = append(buf, 0x00, 0x00, 0x00) // index 1..127: black (Dark, and padding)
	}

	buf = append(buf, 0x2C)              // image separator
	buf = append(buf, 0x00, 0x00)        // left position
	buf = append(buf, 0x00, 0x00)        // top position
	buf = appendUint16LE(buf, uint16(w)) // image width
	buf = appendUint16LE(buf, uint16(h)) // image height
	buf = append(buf, 0x00)              // no local color table, not interlaced

	buf = append(buf, 0x07) // LZW minimum code size

	pixels := make([]byte, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if scaled.Get(x, y) == Dark {
				pixels = append(pixels, 1)
			} else {
				pixels = append(pixels, 0)
			}
		}
	}

	const maxLiteralsPerBlock = 126
	for len(pixels) > 0 {
		n := len(pixels)
		if n > maxLiteralsPerBlock {
			n = maxLiteralsPerBlock
		}
		buf = append(buf, byte(n+1), 0x80)
		buf = append(buf, pixels[:n]...)
		pixels = pixels[n:]
	}
	buf = append(buf, 0x01, 0x81) // end-of-information code, fixed sub-block
	buf = append(buf, 0x00)       // block terminator
	buf = append(buf, 0x3B)       // trailer

	return buf, nil
}

func appendUint16LE(buf []byte, v uint16) []byte {
	return append(buf, byte(v), byte(v>>8))
}
