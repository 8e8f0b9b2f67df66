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
	"math"
	"strings"

	"github.com/rs/zerolog"
)

// FinderTriple is the three detected finder-pattern centers, in
// (topLeft, topRight, bottomLeft) order.
type FinderTriple [3]Point

// DecodeResult is the outcome of a successful Decode.
type DecodeResult struct {
	Symbol   *Symbol
	Segments []Segment
	Text     string
}

type decodeConfig struct {
	logger      zerolog.Logger
	cropToSquare bool
	onBitmap    func(*Bitmap)
	onDetect    func(FinderTriple)
	onResult    func(*DecodeResult)
}

// DecodeOption configures a Decode call.
type DecodeOption func(*decodeConfig)

// WithDecodeLogger attaches a zerolog.Logger that Decode emits one
// debug-level entry to once a symbol decodes (its version, ECC level and
// mask).
func WithDecodeLogger(logger zerolog.Logger) DecodeOption {
	return func(c *decodeConfig) { c.logger = logger }
}

// WithCropToSquare center-crops the longer dimension of the binarized
// bitmap so it is square before detection, for source images that aren't
// already square.
func WithCropToSquare(crop bool) DecodeOption {
	return func(c *decodeConfig) { c.cropToSquare = crop }
}

// WithOnBitmap registers a callback invoked with the binarized image,
// before detection runs.
func WithOnBitmap(f func(*Bitmap)) DecodeOption {
	return func(c *decodeConfig) { c.onBitmap = f }
}

// WithOnDetect registers a callback invoked with the three detected
// finder-pattern centers, before perspective rectification.
func WithOnDetect(f func(FinderTriple)) DecodeOption {
	return func(c *decodeConfig) { c.onDetect = f }
}

// WithOnResult registers a callback invoked with the final decoded
// result.
func WithOnResult(f func(*DecodeResult)) DecodeOption {
	return func(c *decodeConfig) { c.onResult = f }
}

// Decode locates, rectifies, and decodes a single QR symbol within img.
func Decode(img image.Image, opts ...DecodeOption) (*DecodeResult, error) {
	cfg := decodeConfig{logger: defaultLogger}
	for _, o := range opts {
		o(&cfg)
	}

	bmp, err := binarize(img)
	if err != nil {
		return nil, err
	}
	if cfg.cropToSquare && bmp.Width() != bmp.Height() {
		side := minInt(bmp.Width(), bmp.Height())
		origin := Point{(bmp.Width() - side) / 2, (bmp.Height() - side) / 2}
		bmp = bmp.RectSlice(origin, Size{side, side})
	}
	if cfg.onBitmap != nil {
		cfg.onBitmap(bmp)
	}

	triple, err := findFinderPatterns(bmp)
	if err != nil {
		return nil, err
	}
	if cfg.onDetect != nil {
		cfg.onDetect(FinderTriple{
			{int(triple[0].X), int(triple[0].Y)},
			{int(triple[1].X), int(triple[1].Y)},
			{int(triple[2].X), int(triple[2].Y)},
		})
	}

	topLeft, topRight, bottomLeft := triple[0], triple[1], triple[2]
	moduleSize := (topLeft.ModuleSize + topRight.ModuleSize + bottomLeft.ModuleSize) / 3

	dim := estimateDimension(topLeft, topRight, bottomLeft, moduleSize)
	version, ok := versionFromSize(dim)
	if !ok {
		return nil, newErr(LayoutMismatch, "estimated dimension %d does not match any QR version", dim)
	}

	bottomRightX := topRight.X + bottomLeft.X - topLeft.X
	bottomRightY := topRight.Y + bottomLeft.Y - topLeft.Y

	if version >= 2 {
		positions := alignmentPatternPositions[version]
		alignModule := positions[len(positions)-1]
		expectedX := topLeft.X + (topRight.X-topLeft.X)/float64(dim-7)*float64(int(alignModule)-3) + (bottomLeft.X-topLeft.X)/float64(dim-7)*float64(int(alignModule)-3)
		expectedY := topLeft.Y + (topRight.Y-topLeft.Y)/float64(dim-7)*float64(int(alignModule)-3) + (bottomLeft.Y-topLeft.Y)/float64(dim-7)*float64(int(alignModule)-3)
		if pt, err := findAlignmentPattern(bmp, expectedX, expectedY, moduleSize); err == nil {
			bottomRightX, bottomRightY = float64(pt.X), float64(pt.Y)
		}
	}

	sizeF := float64(dim)
	refCorner := bottomRightAdj(sizeF, version)

	moduleToUnitSquare := squareToQuadrilateral(
		3.5, 3.5,
		sizeF-3.5, 3.5,
		refCorner, refCorner,
		3.5, sizeF-3.5,
	).buildAdjoint()
	unitSquareToPixel := squareToQuadrilateral(
		topLeft.X, topLeft.Y,
		topRight.X, topRight.Y,
		bottomRightX, bottomRightY,
		bottomLeft.X, bottomLeft.Y,
	)
	transform := unitSquareToPixel.times(moduleToUnitSquare)

	symbolBitmap, err := sampleGrid(bmp, dim, transform)
	if err != nil {
		return nil, err
	}

	sym, data, err := readSymbol(symbolBitmap)
	if err != nil {
		return nil, err
	}

	segs, err := parseSegments(data, sym.Version)
	if err != nil {
		return nil, err
	}

	var text strings.Builder
	for _, seg := range segs {
		text.WriteString(seg.Text)
	}

	result := &DecodeResult{Symbol: sym, Segments: segs, Text: text.String()}

	cfg.logger.Debug().
		Int("version", int(sym.Version)).
		Str("ecc", sym.ECC.String()).
		Int("mask", sym.Mask).
		Msg("qrcodec: decode succeeded")

	if cfg.onResult != nil {
		cfg.onResult(result)
	}
	return result, nil
}

func bottomRightAdj(sizeF float64, v Version) float64 {
	if v == 1 {
		return sizeF - 3.5
	}
	positions := alignmentPatternPositions[v]
	return float64(positions[len(positions)-1])
}

// estimateDimension derives the module count from the finder-to-finder
// pixel distances and the averaged module size, rounding to the nearest
// valid "4k+1" QR dimension (17 + 4·version).
func estimateDimension(topLeft, topRight, bottomLeft finderHit, moduleSize float64) int {
	distTop := math.Hypot(topRight.X-topLeft.X, topRight.Y-topLeft.Y) / moduleSize
	distSide := math.Hypot(bottomLeft.X-topLeft.X, bottomLeft.Y-topLeft.Y) / moduleSize
	avg := (distTop + distSide) / 2
	dim := int(math.Round(avg)) + 7
	// Round to the nearest 17+4k.
	k := (dim - 17 + 2) / 4
	if k < 1 {
		k = 1
	}
	if k > 40 {
		k = 40
	}
	return 17 + 4*k
}
