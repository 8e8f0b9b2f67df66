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
	"regexp"
	"strconv"
	"strings"
)

// Segment is one mode-tagged run of a QR symbol's data stream: numeric,
// alphanumeric, byte, kanji, or an ECI designator.
type Segment struct {
	Mode     Mode
	NumChars int
	Data     bitBuffer
	// Text is the segment's content as a Go string: the source text for
	// numeric/alphanumeric segments, or a raw byte-for-byte wrapping of
	// the payload for byte-mode segments. Decode populates it directly;
	// Encode-side constructors populate it from their input.
	Text string
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	alphanumericRegexp = regexp.MustCompile(`^[A-Z0-9 $%*+./:-]*$`)
	numericRegexp      = regexp.MustCompile(`^[0-9]*$`)
)

// totalBits returns the bit length segs would occupy in v's size class, or
// false if any segment's character count overflows its length field.
func totalBits(segs []Segment, v Version) (int, bool) {
	result := 0
	for _, seg := range segs {
		ccBits := seg.Mode.numCharCountBits(v)
		if ccBits < 32 && seg.NumChars >= 1<<uint(ccBits) {
			return 0, false
		}
		result += 4 + ccBits + len(seg.Data)
	}
	return result, true
}

// MakeNumeric creates a numeric segment from a digit string, packing three
// digits per ten bits (with a 4- or 7-bit tail group).
func MakeNumeric(digits string) Segment {
	if !numericRegexp.MatchString(digits) {
		panic("qrcodec: string contains non-numeric characters")
	}

	bb := make(bitBuffer, 0, len(digits)*3+(len(digits)+2)/3)
	for i := 0; i < len(digits); {
		n := minInt(len(digits)-i, 3)
		d, _ := strconv.Atoi(digits[i : i+n])
		bb.appendBits(d, n*3+1)
		i += n
	}

	return Segment{Mode: ModeNumeric, NumChars: len(digits), Data: bb, Text: digits}
}

// MakeAlphanumeric creates an alphanumeric segment (uppercase letters,
// digits, and the symbols " $%*+-./:"), packing two characters per 11 bits.
func MakeAlphanumeric(text string) Segment {
	if !alphanumericRegexp.MatchString(text) {
		panic("qrcodec: string contains non-alphanumeric characters")
	}

	bb := make(bitBuffer, 0, len(text)*5+(len(text)+1)/2)
	var i int
	for ; i <= len(text)-2; i += 2 {
		v := strings.IndexByte(alphanumericCharset, text[i])*45 + strings.IndexByte(alphanumericCharset, text[i+1])
		bb.appendBits(v, 11)
	}
	if i < len(text) {
		bb.appendBits(strings.IndexByte(alphanumericCharset, text[i]), 6)
	}

	return Segment{Mode: ModeAlphanumeric, NumChars: len(text), Data: bb, Text: text}
}

// MakeBytes creates a byte-mode segment, one byte per 8 bits, unmodified.
func MakeBytes(data []byte) Segment {
	bb := make(bitBuffer, 0, len(data)*8)
	for _, b := range data {
		bb.appendBits(int(b), 8)
	}
	return Segment{Mode: ModeByte, NumChars: len(data), Data: bb, Text: string(data)}
}

// MakeECI creates a segment carrying an extended channel interpretation
// designator, encoded in its 8/16/24-bit variable-length form.
func MakeECI(assignValue int) (Segment, error) {
	bb := make(bitBuffer, 0, 24)
	switch {
	case assignValue < 0:
		return Segment{}, newErr(InvalidEncoding, "ECI assignment value %d is negative", assignValue)
	case assignValue < 1<<7:
		bb.appendBits(assignValue, 8)
	case assignValue < 1<<14:
		bb.appendBits(2, 2)
		bb.appendBits(assignValue, 14)
	case assignValue < 1_000_000:
		bb.appendBits(6, 3)
		bb.appendBits(assignValue, 21)
	default:
		return Segment{}, newErr(InvalidEncoding, "ECI assignment value %d out of range", assignValue)
	}
	return Segment{Mode: modeECI, NumChars: 0, Data: bb}, nil
}

// ClassifySegment picks the most compact of numeric, alphanumeric, or byte
// mode for text and encodes it as a single segment. qrcodec always emits
// one segment per Encode call; it never splits a string across modes.
func ClassifySegment(text string) Segment {
	switch {
	case numericRegexp.MatchString(text):
		return MakeNumeric(text)
	case alphanumericRegexp.MatchString(text):
		return MakeAlphanumeric(text)
	default:
		return MakeBytes([]byte(text))
	}
}

// Describe returns a short human-readable summary of the segment, e.g.
// "byte(13)" or "alphanumeric(6)".
func (s Segment) Describe() string {
	name := "unknown"
	switch s.Mode {
	case ModeNumeric:
		name = "numeric"
	case ModeAlphanumeric:
		name = "alphanumeric"
	case ModeByte:
		name = "byte"
	case modeKanji:
		name = "kanji"
	case modeECI:
		name = "eci"
	}
	return fmt.Sprintf("%s(%d)", name, s.NumChars)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
