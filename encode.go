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
	"github.com/rs/zerolog"
)

// Symbol is a fully laid-out QR code: its chosen version, ECC level,
// mask, and the final masked module matrix (including the border of
// Light modules added by WithBorder, if any).
type Symbol struct {
	Version Version
	ECC     ECC
	Mask    int
	Matrix  *Bitmap
}

// encodeConfig collects Encode's functional options.
type encodeConfig struct {
	ecc        ECC
	boostECC   bool
	minVersion Version
	maxVersion Version
	mask       int // -1 means auto-select.
	border     int
	logger     zerolog.Logger
}

// EncodeOption configures an Encode call.
type EncodeOption func(*encodeConfig)

// WithECC sets the minimum error-correction level to encode at. If
// WithBoostECC is left at its default of true, a higher level is used
// when the chosen version has spare capacity.
func WithECC(ecc ECC) EncodeOption {
	return func(c *encodeConfig) { c.ecc = ecc }
}

// WithBoostECC controls whether Encode opportunistically raises the ECC
// level when the chosen version has room to spare. Defaults to true.
func WithBoostECC(boost bool) EncodeOption {
	return func(c *encodeConfig) { c.boostECC = boost }
}

// WithMinVersion sets the smallest version Encode may choose.
func WithMinVersion(v Version) EncodeOption {
	return func(c *encodeConfig) { c.minVersion = v }
}

// WithMaxVersion sets the largest version Encode may choose.
func WithMaxVersion(v Version) EncodeOption {
	return func(c *encodeConfig) { c.maxVersion = v }
}

// WithMask forces a specific mask (0..7) instead of auto-selecting by
// penalty score.
func WithMask(mask int) EncodeOption {
	return func(c *encodeConfig) { c.mask = mask }
}

// WithAutoMask restores automatic, lowest-penalty mask selection (the
// default).
func WithAutoMask() EncodeOption {
	return func(c *encodeConfig) { c.mask = -1 }
}

// WithBorder adds an n-module quiet zone of Light cells around the
// returned Symbol's Matrix.
func WithBorder(n int) EncodeOption {
	return func(c *encodeConfig) { c.border = n }
}

// WithLogger attaches a zerolog.Logger that Encode emits debug-level
// tracing to (chosen version/ECC, data codeword count, and mask).
func WithLogger(logger zerolog.Logger) EncodeOption {
	return func(c *encodeConfig) { c.logger = logger }
}

// Encode classifies text into a single segment (numeric, alphanumeric,
// or byte) and encodes it into a Symbol.
func Encode(text string, opts ...EncodeOption) (*Symbol, error) {
	return EncodeSegments([]Segment{ClassifySegment(text)}, opts...)
}

// EncodeBytes encodes arbitrary binary data as a single byte-mode
// segment.
func EncodeBytes(data []byte, opts ...EncodeOption) (*Symbol, error) {
	return EncodeSegments([]Segment{MakeBytes(data)}, opts...)
}

// EncodeSegments lays out one or more pre-built segments into a Symbol,
// choosing the smallest version (within [WithMinVersion,WithMaxVersion])
// that fits, then the lowest-penalty mask (unless WithMask forces one).
func EncodeSegments(segs []Segment, opts ...EncodeOption) (*Symbol, error) {
	cfg := encodeConfig{
		ecc:        Low,
		boostECC:   true,
		minVersion: MinVersion,
		maxVersion: MaxVersion,
		mask:       -1,
		logger:     defaultLogger,
	}
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.minVersion < MinVersion || cfg.maxVersion > MaxVersion || cfg.maxVersion < cfg.minVersion {
		return nil, newErr(InvalidVersion, "version range [%d,%d] invalid", cfg.minVersion, cfg.maxVersion)
	}
	if cfg.mask < -1 || cfg.mask > 7 {
		return nil, newErr(InvalidMask, "mask %d out of range", cfg.mask)
	}

	version := cfg.minVersion
	var usedBits int
	for {
		capBits := numDataCodewords[cfg.ecc][version] * 8
		bits, ok := totalBits(segs, version)
		if ok && bits <= capBits {
			usedBits = bits
			break
		}
		if version >= cfg.maxVersion {
			return nil, newErr(CapacityOverflow, "data does not fit in any version up to %d at ECC %s", cfg.maxVersion, cfg.ecc)
		}
		version++
	}

	ecc := cfg.ecc
	if cfg.boostECC {
		for newECC := Medium; newECC <= High; newECC++ {
			if usedBits <= numDataCodewords[newECC][version]*8 {
				ecc = newECC
			}
		}
	}

	bb := make(bitBuffer, 0, numDataCodewords[ecc][version]*8)
	for _, seg := range segs {
		bb.appendBits(seg.Mode.bits, 4)
		bb.appendBits(seg.NumChars, seg.Mode.numCharCountBits(version))
		bb = append(bb, seg.Data...)
	}

	capBits := numDataCodewords[ecc][version] * 8
	bb.appendBits(0, minInt(4, capBits-len(bb)))
	bb.appendBits(0, (8-len(bb)%8)%8)

	for padByte := 0xec; len(bb) < capBits; padByte ^= 0xec ^ 0x11 {
		bb.appendBits(padByte, 8)
	}

	dataCodewords := bb.packBytes()

	cfg.logger.Debug().
		Int("version", int(version)).
		Str("ecc", ecc.String()).
		Int("dataCodewords", len(dataCodewords)).
		Msg("qrcodec: version selected")

	raw := addECCAndInterleave(dataCodewords, version, ecc)

	t := newSymbolTemplate(version)
	chosenMask, mat := bestMask(t, ecc, raw, cfg.mask)

	cfg.logger.Debug().Int("mask", chosenMask).Msg("qrcodec: mask selected")

	if cfg.border > 0 {
		mat = mat.Border(cfg.border, Light)
	}

	return &Symbol{Version: version, ECC: ecc, Mask: chosenMask, Matrix: mat}, nil
}
