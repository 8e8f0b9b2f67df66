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

// finderHit is a candidate finder-pattern center found by run-length
// scanning, with its estimated module size.
type finderHit struct {
	X, Y       float64
	ModuleSize float64
	count      int // number of scan lines that voted for this hit
}

// Allowed fractional deviation of each of the 5 runs from its expected
// 1:1:3:1:1 share, expressed as m/variance per spec.md §4.9.
const (
	straightVariance = 2.0
	diagonalVariance = 4.0 / 3.0

	straightTolerance = 1.0 / straightVariance
	diagonalTolerance = 1.0 / diagonalVariance
)

// findFinderPatterns locates the three finder patterns (top-left,
// top-right, bottom-left) in bmp via row-skipping run-length scanning,
// per spec.md §4.9.
func findFinderPatterns(bmp *Bitmap) ([3]finderHit, error) {
	hits := scanForFinders(bmp)
	if len(hits) < 3 {
		return [3]finderHit{}, newErr(FinderNotFound, "fewer than 3 finder patterns found (got %d)", len(hits))
	}
	return selectBestTriple(hits)
}

// scanForFinders walks bmp row by row, skipping ySkip rows at a time
// (dropping to 2 after the first confirmed hit), looking for the
// [D,L,D,L,D] run signature. Each horizontal candidate is confirmed by
// a vertical extension, a horizontal re-check from the vertical
// center, and a diagonal extension, then merged with prior hits.
// Scanning stops early once three hits with mean module size and
// pairwise spread within 5% are confirmed.
func scanForFinders(bmp *Bitmap) []finderHit {
	h := bmp.Height()
	ySkip := maxInt(3, 3*h/(4*97))

	var hits []finderHit
	jumped := false
	for y := 0; y < h; y += ySkip {
		for _, hit := range candidatesInRow(bmp, y) {
			hits = mergeFinderHits(append(hits, hit))
		}
		if len(hits) >= 1 {
			ySkip = 2
		}
		if len(hits) >= 3 && pairwiseSpreadWithin(hits, 0.05) {
			break
		}
		if len(hits) >= 2 && !jumped {
			y += jumpAhead(hits)
			jumped = true
		}
	}
	return hits
}

// candidatesInRow finds every confirmed finder center on row y.
func candidatesInRow(bmp *Bitmap, y int) []finderHit {
	var out []finderHit
	runs := bmp.GetRuns(y)
	x := 0
	for i := 0; i+4 < len(runs); i++ {
		lengths := [5]int{runs[i].Length, runs[i+1].Length, runs[i+2].Length, runs[i+3].Length, runs[i+4].Length}
		colors := [5]Cell{runs[i].Value, runs[i+1].Value, runs[i+2].Value, runs[i+3].Value, runs[i+4].Value}
		centerX := x + lengths[0] + lengths[1] + lengths[2]/2
		if matchesFinderRatio(lengths, colors, straightTolerance) {
			horizUnit := runUnit(lengths)
			if hit, ok := confirmCandidate(bmp, centerX, y, horizUnit); ok {
				out = append(out, hit)
			}
		}
		x += runs[i].Length
	}
	return out
}

func runUnit(lengths [5]int) float64 {
	total := 0
	for _, l := range lengths {
		total += l
	}
	return float64(total) / 7.0
}

// confirmCandidate re-checks the 1:1:3:1:1 pattern vertically through
// the row-wise candidate, re-checks it horizontally from the new
// vertical center, and finally checks it diagonally, rejecting the
// candidate if any stage fails.
func confirmCandidate(bmp *Bitmap, x, y int, horizUnit float64) (finderHit, bool) {
	if x < 0 || x >= bmp.Width() || bmp.Get(x, y) != Dark {
		return finderHit{}, false
	}

	vLengths, ok := runLengthsAlong(bmp, x, y, 0, 1)
	if !ok || !matchesFinderRatio(vLengths, darkLightDark(), straightTolerance) {
		return finderHit{}, false
	}
	vUnit := runUnit(vLengths)
	if math.Abs(vUnit-horizUnit) > 0.4*horizUnit {
		return finderHit{}, false
	}

	// Re-center vertically on the middle dark run's midpoint.
	top := y
	for top > 0 && bmp.Get(x, top-1) == Dark {
		top--
	}
	bottom := y
	for bottom < bmp.Height()-1 && bmp.Get(x, bottom+1) == Dark {
		bottom++
	}
	cy := (top + bottom) / 2

	hLengths, ok := runLengthsAlong(bmp, x, cy, 1, 0)
	if !ok || !matchesFinderRatio(hLengths, darkLightDark(), straightTolerance) {
		return finderHit{}, false
	}
	left := x
	for left > 0 && bmp.Get(left-1, cy) == Dark {
		left--
	}
	right := x
	for right < bmp.Width()-1 && bmp.Get(right+1, cy) == Dark {
		right++
	}
	cx := (left + right) / 2

	dLengths, ok := runLengthsAlong(bmp, cx, cy, 1, 1)
	if !ok || !matchesFinderRatio(dLengths, darkLightDark(), diagonalTolerance) {
		return finderHit{}, false
	}

	moduleSize := (runUnit(vLengths) + runUnit(hLengths)) / 2
	return finderHit{X: float64(cx), Y: float64(cy), ModuleSize: moduleSize, count: 1}, true
}

func darkLightDark() [5]Cell {
	return [5]Cell{Dark, Light, Dark, Light, Dark}
}

// runLengthsAlong walks the five alternating runs [D,L,D,L,D] centered
// on (x,y) in direction (dx,dy) and its opposite, returning their
// lengths in scan order.
func runLengthsAlong(bmp *Bitmap, x, y, dx, dy int) ([5]int, bool) {
	var lengths [5]int
	w, h := bmp.Width(), bmp.Height()
	inBounds := func(px, py int) bool { return px >= 0 && px < w && py >= 0 && py < h }
	if !inBounds(x, y) || bmp.Get(x, y) != Dark {
		return lengths, false
	}

	// Middle dark run: expand along +/-(dx,dy) from (x,y).
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
	lengths[2] = stepCount(bx, by, fx, fy, dx, dy) + 1

	// Light run forward, then dark run forward.
	n := countRun(bmp, fx+dx, fy+dy, dx, dy, Light, inBounds)
	if n == 0 {
		return lengths, false
	}
	lengths[3] = n
	lx, ly := fx+dx*n, fy+dy*n
	n = countRun(bmp, lx+dx, ly+dy, dx, dy, Dark, inBounds)
	if n == 0 {
		return lengths, false
	}
	lengths[4] = n

	// Light run backward, then dark run backward.
	n = countRun(bmp, bx-dx, by-dy, -dx, -dy, Light, inBounds)
	if n == 0 {
		return lengths, false
	}
	lengths[1] = n
	lx, ly = bx-dx*n, by-dy*n
	n = countRun(bmp, lx-dx, ly-dy, -dx, -dy, Dark, inBounds)
	if n == 0 {
		return lengths, false
	}
	lengths[0] = n

	return lengths, true
}

func stepCount(x0, y0, x1, y1, dx, dy int) int {
	if dx != 0 {
		return absInt((x1 - x0) / dx)
	}
	return absInt((y1 - y0) / dy)
}

// countRun counts consecutive cells of value want starting at (x,y)
// and stepping by (dx,dy), stopping at the bitmap edge.
func countRun(bmp *Bitmap, x, y, dx, dy int, want Cell, inBounds func(int, int) bool) int {
	n := 0
	for inBounds(x, y) && bmp.Get(x, y) == want {
		n++
		x += dx
		y += dy
	}
	return n
}

func matchesFinderRatio(lengths [5]int, colors [5]Cell, tolerance float64) bool {
	if colors[0] != Dark || colors[1] != Light || colors[2] != Dark || colors[3] != Light || colors[4] != Dark {
		return false
	}
	total := 0
	for _, l := range lengths {
		if l == 0 {
			return false
		}
		total += l
	}
	unit := float64(total) / 7.0
	maxErr := unit * tolerance
	want := [5]float64{unit, unit, unit * 3, unit, unit}
	for i, l := range lengths {
		if math.Abs(float64(l)-want[i]) > maxErr {
			return false
		}
	}
	return true
}

// mergeFinderHits combines hits that lie closer together than the mean
// of their two module sizes into a single averaged hit, weighted by vote
// count.
func mergeFinderHits(hits []finderHit) []finderHit {
	var merged []finderHit
	for _, h := range hits {
		placed := false
		for i := range merged {
			m := &merged[i]
			dist := math.Hypot(m.X-h.X, m.Y-h.Y)
			if dist < m.ModuleSize/2+h.ModuleSize/2 {
				total := float64(m.count + h.count)
				m.X = (m.X*float64(m.count) + h.X*float64(h.count)) / total
				m.Y = (m.Y*float64(m.count) + h.Y*float64(h.count)) / total
				m.ModuleSize = (m.ModuleSize*float64(m.count) + h.ModuleSize*float64(h.count)) / total
				m.count += h.count
				placed = true
				break
			}
		}
		if !placed {
			merged = append(merged, h)
		}
	}
	return merged
}

// pairwiseSpreadWithin reports whether every pair of hits' module
// sizes differ by no more than frac of their mean.
func pairwiseSpreadWithin(hits []finderHit, frac float64) bool {
	for i := range hits {
		for j := i + 1; j < len(hits); j++ {
			mean := (hits[i].ModuleSize + hits[j].ModuleSize) / 2
			if mean == 0 {
				continue
			}
			if math.Abs(hits[i].ModuleSize-hits[j].ModuleSize)/mean > frac {
				return false
			}
		}
	}
	return true
}

// jumpAhead estimates how far to advance the row cursor once two
// finder hits are confirmed, skipping past the data modules between
// them rather than scanning every intervening row.
func jumpAhead(hits []finderHit) int {
	maxModule := 0.0
	for _, h := range hits {
		if h.ModuleSize > maxModule {
			maxModule = h.ModuleSize
		}
	}
	return int(maxModule * 4)
}

// selectBestTriple picks, from all confirmed hits, the triple of
// pairwise squared distances a ≤ b ≤ c minimizing |c−2b|+|c−2a| (a
// near-isoceles right triangle), subject to a module-size-ratio
// filter, then classifies the triple into TL/TR/BL.
func selectBestTriple(hits []finderHit) ([3]finderHit, error) {
	n := len(hits)
	bestScore := math.Inf(1)
	var best [3]finderHit
	found := false

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				p, q, r := hits[i], hits[j], hits[k]
				if !moduleSizesCompatible(p, q, r) {
					continue
				}
				dPQ := sqDist(p, q)
				dQR := sqDist(q, r)
				dPR := sqDist(p, r)
				a, b, c := sortThree(dPQ, dQR, dPR)
				score := math.Abs(c-2*b) + math.Abs(c-2*a)
				if score < bestScore {
					bestScore = score
					best = [3]finderHit{p, q, r}
					found = true
				}
			}
		}
	}
	if !found {
		return [3]finderHit{}, newErr(FinderNotFound, "no compatible triple of finder hits")
	}
	return classifyTriple(best), nil
}

func moduleSizesCompatible(hits ...finderHit) bool {
	minM, maxM := math.Inf(1), 0.0
	for _, h := range hits {
		if h.ModuleSize < minM {
			minM = h.ModuleSize
		}
		if h.ModuleSize > maxM {
			maxM = h.ModuleSize
		}
	}
	return maxM <= 1.4*minM
}

func sqDist(a, b finderHit) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

func sortThree(a, b, c float64) (float64, float64, float64) {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return a, b, c
}

// classifyTriple identifies the hypotenuse of the near-right triangle
// formed by the three hits as the TR-BL edge (so the vertex opposite
// it, joined by the two legs, is TL), then uses the sign of the cross
// product (TR-TL) × (BL-TL) to correct for mirrored images.
func classifyTriple(hits [3]finderHit) [3]finderHit {
	d01 := sqDist(hits[0], hits[1])
	d12 := sqDist(hits[1], hits[2])
	d20 := sqDist(hits[2], hits[0])

	var topLeft, p1, p2 finderHit
	switch {
	case d12 >= d01 && d12 >= d20:
		topLeft, p1, p2 = hits[0], hits[1], hits[2]
	case d20 >= d01 && d20 >= d12:
		topLeft, p1, p2 = hits[1], hits[2], hits[0]
	default:
		topLeft, p1, p2 = hits[2], hits[0], hits[1]
	}

	cross := (p1.X-topLeft.X)*(p2.Y-topLeft.Y) - (p1.Y-topLeft.Y)*(p2.X-topLeft.X)
	topRight, bottomLeft := p1, p2
	if cross < 0 {
		topRight, bottomLeft = p2, p1
	}

	return [3]finderHit{topLeft, topRight, bottomLeft}
}
