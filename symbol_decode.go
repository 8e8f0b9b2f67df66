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

// bitAt returns 1 if mat.Get(x,y) == Dark, else 0.
func bitAt(mat *Bitmap, x, y int) int {
	if mat.Get(x, y) == Dark {
		return 1
	}
	return 0
}

// readFormatBitsRaw reads both redundant 15-bit format copies out of an
// already-rectified, unrotated matrix.
func readFormatBitsRaw(mat *Bitmap, size int) (a, b int) {
	for i := 0; i <= 5; i++ {
		a = a<<1 | bitAt(mat, i, 8)
	}
	a = a<<1 | bitAt(mat, 7, 8)
	a = a<<1 | bitAt(mat, 8, 8)
	a = a<<1 | bitAt(mat, 8, 7)
	for i := 5; i >= 0; i-- {
		a = a<<1 | bitAt(mat, 8, i)
	}

	for i := 14; i >= 8; i-- {
		b = b<<1 | bitAt(mat, 8, size-15+i)
	}
	for i := 7; i >= 0; i-- {
		b = b<<1 | bitAt(mat, size-1-i, 8)
	}
	return a, b
}

// readVersionBitsRaw reads both redundant 18-bit version copies.
func readVersionBitsRaw(mat *Bitmap, size int) (a, b int) {
	for i := 17; i >= 0; i-- {
		x := size - 11 + i%3
		y := i / 3
		a = a<<1 | bitAt(mat, x, y)
	}
	for i := 17; i >= 0; i-- {
		x := i / 3
		y := size - 11 + i%3
		b = b<<1 | bitAt(mat, x, y)
	}
	return a, b
}

// decodeFormat tries both redundant copies, returning the first that
// BCH-decodes successfully.
func decodeFormat(mat *Bitmap, size int) (ecc ECC, mask int, err error) {
	a, b := readFormatBitsRaw(mat, size)
	if e, m, ok := formatBCHDecode(a); ok {
		return e, m, nil
	}
	if e, m, ok := formatBCHDecode(b); ok {
		return e, m, nil
	}
	return 0, 0, newErr(WrongFormatPattern, "neither format copy decodes within the BCH(15,5) error budget")
}

// decodeVersionFromBits tries both redundant copies for versions >= 7,
// where the bit-packed version string (as opposed to the symbol's
// module size) is the authoritative source.
func decodeVersionFromBits(mat *Bitmap, size int) (Version, error) {
	a, b := readVersionBitsRaw(mat, size)
	if v, ok := versionBCHDecode(a); ok {
		return v, nil
	}
	if v, ok := versionBCHDecode(b); ok {
		return v, nil
	}
	return 0, newErr(WrongVersionPattern, "neither version copy decodes within the BCH(18,6) error budget")
}

// readSymbol reads format/version metadata, unmasks, de-interleaves and
// RS-corrects mat (an exact, unrotated symbol matrix of some version's
// size), and returns the resulting Symbol and raw data codewords.
func readSymbol(mat *Bitmap) (*Symbol, []byte, error) {
	size := mat.Width()
	if mat.Height() != size {
		return nil, nil, newErr(LayoutMismatch, "symbol matrix must be square, got %dx%d", size, mat.Height())
	}
	version, ok := versionFromSize(size)
	if !ok {
		return nil, nil, newErr(LayoutMismatch, "matrix size %d does not correspond to any QR version", size)
	}

	ecc, mask, err := decodeFormat(mat, size)
	if err != nil {
		return nil, nil, err
	}

	if version >= 7 {
		if bitVersion, verr := decodeVersionFromBits(mat, size); verr == nil && bitVersion != version {
			version = bitVersion
		}
	}

	t := newSymbolTemplate(version)

	unmasked := mat.Clone()
	applyMask(unmasked, t.isFunction, mask)

	raw := readCodewords(unmasked, version)

	data, err := deinterleaveAndCorrect(raw, version, ecc)
	if err != nil {
		return nil, nil, err
	}

	return &Symbol{Version: version, ECC: ecc, Mask: mask, Matrix: mat}, data, nil
}

// parseSegments decodes the segment stream out of data codewords,
// per ISO/IEC 18004 §7.4. ECI designators are skipped and parsing
// continues with the next mode indicator; a kanji segment fails with
// UnsupportedMode.
func parseSegments(data []byte, v Version) ([]Segment, error) {
	r := newBitReader(data)
	var segs []Segment

	for r.bitsLeft() >= 4 {
		modeBits, err := r.readBits(4)
		if err != nil {
			return nil, err
		}
		mode, ok := modeFromBits(modeBits)
		if !ok {
			return nil, newErr(SegmentParse, "unrecognized mode indicator 0x%x", modeBits)
		}
		if mode == modeTerminator {
			break
		}
		if mode == modeECI {
			// ECI designators use a variable-width value; skip past it
			// without attempting to interpret the assignment.
			first, err := r.readBits(8)
			if err != nil {
				return nil, err
			}
			switch {
			case first>>7 == 0:
				// 8-bit form already fully consumed.
			case first>>6 == 0b10:
				if _, err := r.readBits(8); err != nil {
					return nil, err
				}
			case first>>5 == 0b110:
				if _, err := r.readBits(16); err != nil {
					return nil, err
				}
			default:
				return nil, newErr(SegmentParse, "malformed ECI designator")
			}
			continue
		}
		if mode == modeKanji {
			return nil, newErr(UnsupportedMode, "kanji-mode segments are not supported")
		}

		ccBits := mode.numCharCountBits(v)
		count, err := r.readBits(ccBits)
		if err != nil {
			return nil, err
		}

		seg, err := readSegmentBody(r, mode, count)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}

	return segs, nil
}

func readSegmentBody(r *bitReader, mode Mode, count int) (Segment, error) {
	switch mode {
	case ModeNumeric:
		var sb []byte
		remaining := count
		for remaining > 0 {
			n := minInt(remaining, 3)
			width := n*3 + 1
			v, err := r.readBits(width)
			if err != nil {
				return Segment{}, err
			}
			digits := itoaPadded(v, n)
			sb = append(sb, digits...)
			remaining -= n
		}
		return MakeNumeric(string(sb)), nil
	case ModeAlphanumeric:
		var sb []byte
		remaining := count
		for remaining >= 2 {
			v, err := r.readBits(11)
			if err != nil {
				return Segment{}, err
			}
			sb = append(sb, alphanumericCharset[v/45], alphanumericCharset[v%45])
			remaining -= 2
		}
		if remaining == 1 {
			v, err := r.readBits(6)
			if err != nil {
				return Segment{}, err
			}
			sb = append(sb, alphanumericCharset[v])
		}
		return MakeAlphanumeric(string(sb)), nil
	case ModeByte:
		buf := make([]byte, count)
		for i := range buf {
			v, err := r.readBits(8)
			if err != nil {
				return Segment{}, err
			}
			buf[i] = byte(v)
		}
		return MakeBytes(buf), nil
	default:
		return Segment{}, newErr(UnsupportedMode, "mode %v has no decode-side body reader", mode)
	}
}

func itoaPadded(v, digits int) []byte {
	out := make([]byte, digits)
	for i := digits - 1; i >= 0; i-- {
		out[i] = byte('0' + v%10)
		v /= 10
	}
	return out
}
