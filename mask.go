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

const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// maskInvert reports whether mask predicate m inverts the module at
// (x,y). The eight predicates are ISO/IEC 18004 table 10.
func maskInvert(m, x, y int) bool {
	switch m {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	default:
		panic("qrcodec: illegal mask value")
	}
}

// applyMask XORs mask m's predicate into every non-function cell of mat.
func applyMask(mat, isFunction *Bitmap, m int) {
	size := mat.Width()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if isFunction.Get(x, y) == Dark {
				continue
			}
			if !maskInvert(m, x, y) {
				continue
			}
			if mat.Get(x, y) == Dark {
				mat.Set(x, y, Light)
			} else {
				mat.Set(x, y, Dark)
			}
		}
	}
}

// penaltyScore computes the total ISO/IEC 18004 §7.8.3 penalty (rules
// N1..N4) for mat, used to pick the least conspicuous mask.
func penaltyScore(mat *Bitmap) int {
	size := mat.Width()
	result := 0

	for y := 0; y < size; y++ {
		runColor := Light
		runLen := 0
		var history [7]int
		for x := 0; x < size; x++ {
			c := mat.Get(x, y)
			if c == runColor {
				runLen++
				if runLen == 5 {
					result += penaltyN1
				} else if runLen > 5 {
					result++
				}
			} else {
				finderPenaltyAddHistory(runLen, &history, size)
				if runColor == Light {
					result += finderPenaltyCountPatterns(&history) * penaltyN3
				}
				runColor = c
				runLen = 1
			}
		}
		result += finderPenaltyTerminateAndCount(runColor, runLen, &history, size) * penaltyN3
	}

	for x := 0; x < size; x++ {
		runColor := Light
		runLen := 0
		var history [7]int
		for y := 0; y < size; y++ {
			c := mat.Get(x, y)
			if c == runColor {
				runLen++
				if runLen == 5 {
					result += penaltyN1
				} else if runLen > 5 {
					result++
				}
			} else {
				finderPenaltyAddHistory(runLen, &history, size)
				if runColor == Light {
					result += finderPenaltyCountPatterns(&history) * penaltyN3
				}
				runColor = c
				runLen = 1
			}
		}
		result += finderPenaltyTerminateAndCount(runColor, runLen, &history, size) * penaltyN3
	}

	for y := 0; y < size-1; y++ {
		result += mat.Count2x2Boxes(y) * penaltyN2
	}

	dark := mat.Popcount()
	total := size * size
	k := (absInt(dark*20-total*10)+total-1)/total - 1
	result += k * penaltyN4

	return result
}

func finderPenaltyAddHistory(runLen int, history *[7]int, size int) {
	if history[0] == 0 {
		runLen += size
	}
	copy(history[1:], history[:6])
	history[0] = runLen
}

func finderPenaltyCountPatterns(history *[7]int) int {
	n := history[1]
	core := n > 0 && history[2] == n && history[3] == n*3 && history[4] == n && history[5] == n
	count := 0
	if core && history[0] >= n*4 && history[6] >= n {
		count++
	}
	if core && history[6] >= n*4 && history[0] >= n {
		count++
	}
	return count
}

func finderPenaltyTerminateAndCount(runColor Cell, runLen int, history *[7]int, size int) int {
	if runColor == Dark {
		finderPenaltyAddHistory(runLen, history, size)
		runLen = 0
	}
	runLen += size
	finderPenaltyAddHistory(runLen, history, size)
	return finderPenaltyCountPatterns(history)
}

// bestMask tries every applicable mask (or just the one forced by
// forced >= 0) and returns the index with the lowest penalty, along with
// the masked matrix it produced.
func bestMask(t *symbolTemplate, ecc ECC, data []byte, forced int) (int, *Bitmap) {
	if forced >= 0 {
		return forced, t.drawCodewords(ecc, forced, data)
	}
	bestM := 0
	var bestMat *Bitmap
	bestPenalty := -1
	for m := 0; m < 8; m++ {
		mat := t.drawCodewords(ecc, m, data)
		p := penaltyScore(mat)
		if bestPenalty < 0 || p < bestPenalty {
			bestPenalty = p
			bestM = m
			bestMat = mat
		}
	}
	return bestM, bestMat
}
