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

// ECC is the error-correction level of a QR symbol.
type ECC int8

// ECC values, in the order the ISO capacity tables are indexed.
const (
	Low      ECC = iota // Recovers ~7% of codewords.
	Medium              // Recovers ~15% of codewords.
	Quartile            // Recovers ~25% of codewords.
	High                // Recovers ~30% of codewords.
)

func (e ECC) String() string {
	switch e {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case Quartile:
		return "Quartile"
	case High:
		return "High"
	default:
		return "Invalid"
	}
}

// formatBits returns the two-bit ECC code used in the 15-bit format
// string. Note the non-monotonic mapping: Low=01, Medium=00,
// Quartile=11, High=10.
func (e ECC) formatBits() int {
	switch e {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("qrcodec: unknown ECC level")
	}
}

// eccFromFormatBits reverses formatBits, or reports false for 4..7.
func eccFromFormatBits(bits int) (ECC, bool) {
	switch bits {
	case 1:
		return Low, true
	case 0:
		return Medium, true
	case 3:
		return Quartile, true
	case 2:
		return High, true
	default:
		return 0, false
	}
}

func validECC(e ECC) bool { return e >= Low && e <= High }
