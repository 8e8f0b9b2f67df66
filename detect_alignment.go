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

import "math"

// alignmentWindowFactors are the expanding search-window side lengths
// (as multiples of moduleSize) tried in order, per spec.md §4.10.
var alignmentWindowFactors = [...]int{4, 8, 16}

// alignmentRunTolerance is the allowed fractional deviation of each of
// the three [L,D,L] run lengths from moduleSize.
const alignmentRunTolerance = 0.5

// findAlignmentPattern searches expanding square windows, of side
// factor·moduleSize for factor ∈ {4, 8, 16}, around (expectedX,
// expectedY) for the 5×5 alignment-pattern signature: a single dark
// center module ringed by light then dark. Within a window it scans
// rows outward from the center looking for the 3-run [L,D,L] cross
// section through the pattern's inner light ring and dark center,
// confirms each horizontal candidate vertically, and returns the
// best-scoring hit. Version 1 has no alignment pattern and is never
// passed here.
func findAlignmentPattern(bmp *Bitmap, expectedX, expectedY, moduleSize float64) (Point, error) {
	for _, factor := range alignmentWindowFactors {
		side := float64(factor) * moduleSize
		if hit, ok := searchAlignmentWindow(bmp, expectedX, expectedY, moduleSize, side); ok {
			return hit, nil
		}
	}
	return Point{}, newErr(AlignmentNotFound, "no alignment pattern near (%.0f,%.0f)", expectedX, expectedY)
}

// searchAlignmentWindow scans the rows of a side×side window centered
// on (expectedX, expectedY), working outward from the center row, and
// returns the first row's best horizontal/vertical-confirmed hit.
func searchAlignmentWindow(bmp *Bitmap, expectedX, expectedY, moduleSize, side float64) (Point, bool) {
	half := int(side / 2)
	cx, cy := int(expectedX), int(expectedY)
	w, h := bmp.Width(), bmp.Height()

	bestScore := math.MaxFloat64
	best := Point{}
	found := false

	for dy := 0; dy <= half; dy++ {
		for _, y := range dedupOffsets(cy, dy) {
			if y < 0 || y >= h {
				continue
			}
			for _, hit := range alignmentCandidatesInRow(bmp, y, cx, half, w, moduleSize) {
				score, ok := confirmAlignmentVertically(bmp, hit.X, hit.Y, moduleSize)
				if !ok {
					continue
				}
				top, bottom := hit.Y, hit.Y
				for top > 0 && bmp.Get(hit.X, top-1) == Dark {
					top--
				}
				for bottom < h-1 && bmp.Get(hit.X, bottom+1) == Dark {
					bottom++
				}
				hit.Y = top + (bottom-top+1)/2
				if score < bestScore {
					bestScore, best, found = score, hit, true
				}
			}
		}
		if found {
			return best, true
		}
	}
	return Point{}, false
}

// dedupOffsets returns {center} for offset 0, or {center-offset,
// center+offset} otherwise, implementing the center-outward scan order.
func dedupOffsets(center, offset int) []int {
	if offset == 0 {
		return []int{center}
	}
	return []int{center - offset, center + offset}
}

// alignmentCandidatesInRow scans row y within [cx-half, cx+half] for
// the horizontal [L,D,L] run signature, one candidate per maximal dark
// run (taking each run's midpoint as the candidate center).
func alignmentCandidatesInRow(bmp *Bitmap, y, cx, half, w int, moduleSize float64) []Point {
	var hits []Point
	x0, x1 := maxInt(0, cx-half), minInt(w-1, cx+half)
	x := 0
	for _, run := range bmp.GetRuns(y) {
		runStart := x
		x += run.Length
		if run.Value != Dark {
			continue
		}
		mid := runStart + run.Length/2
		if mid < x0 || mid > x1 {
			continue
		}
		lengths, ok := threeRunLengths(bmp, mid, y, 1, 0, w, bmp.Height())
		if !ok || !matchesAlignmentRatio(lengths, moduleSize) {
			continue
		}
		hits = append(hits, Point{mid, y})
	}
	return hits
}

// confirmAlignmentVertically re-checks the [L,D,L] signature through
// (x,y) vertically, returning a fit score (lower is better) on success.
func confirmAlignmentVertically(bmp *Bitmap, x, y int, moduleSize float64) (float64, bool) {
	lengths, ok := threeRunLengths(bmp, x, y, 0, 1, bmp.Width(), bmp.Height())
	if !ok || !matchesAlignmentRatio(lengths, moduleSize) {
		return 0, false
	}
	score := 0.0
	for _, l := range lengths {
		score += math.Abs(float64(l) - moduleSize)
	}
	return score, true
}

// threeRunLengths measures the [L,D,L] run lengths centered on the
// dark cell (x,y), expanding along (dx,dy) and its opposite.
func threeRunLengths(bmp *Bitmap, x, y, dx, dy, w, h int) ([3]int, bool) {
	var lengths [3]int
	inBounds := func(px, py int) bool { return px >= 0 && px < w && py >= 0 && py < h }
	if !inBounds(x, y) || bmp.Get(x, y) != Dark {
		return lengths, false
	}

	fx, fy := x, y
	for inBounds(fx+dx, fy+dy) && bmp.Get(fx+dx, fy+dy) == Dark {
		fx += dx
		fy += dy
	}
	bx, by := x, y
	for inBounds(bx-dx, by-dy) && bmp.Get(bx-dx, by-dy) == Dark {
		bx -= dx
		by -= dy
	}
	lengths[1] = stepCount(bx, by, fx, fy, dx, dy) + 1

	forward := countRun(bmp, fx+dx, fy+dy, dx, dy, Light, inBounds)
	if forward == 0 {
		return lengths, false
	}
	lengths[2] = forward

	backward := countRun(bmp, bx-dx, by-dy, -dx, -dy, Light, inBounds)
	if backward == 0 {
		return lengths, false
	}
	lengths[0] = backward

	return lengths, true
}

func matchesAlignmentRatio(lengths [3]int, moduleSize float64) bool {
	maxErr := moduleSize * alignmentRunTolerance
	for _, l := range lengths {
		if math.Abs(float64(l)-moduleSize) > maxErr {
			return false
		}
	}
	return true
}
