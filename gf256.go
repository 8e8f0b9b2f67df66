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

// gf256 implements arithmetic over GF(256) with the QR-mandated
// primitive polynomial 0x11D, via precomputed log/exp tables.
const gfPrimitive = 0x11D

var gfExp [512]byte // doubled so gfExp[i] == gfExp[i%255] for i in [0,510]
var gfLog [256]int

func init() {
	x := 1
	for i := 0; i < 255; i++ {
		gfExp[i] = byte(x)
		gfLog[x] = i
		x <<= 1
		if x&0x100 != 0 {
			x ^= gfPrimitive
		}
	}
	for i := 255; i < 512; i++ {
		gfExp[i] = gfExp[i-255]
	}
}

func gfAdd(a, b byte) byte { return a ^ b }

func gfMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return gfExp[(gfLog[a]+gfLog[b])%255]
}

func gfPow(a byte, n int) byte {
	if a == 0 {
		if n == 0 {
			return 1
		}
		return 0
	}
	e := (gfLog[a] * n) % 255
	if e < 0 {
		e += 255
	}
	return gfExp[e]
}

func gfInv(a byte) byte {
	if a == 0 {
		panic("qrcodec: gf256 inverse of zero")
	}
	return gfExp[255-gfLog[a]]
}

// gfPoly is a polynomial over GF(256), coefficients highest-degree
// first, always stripped of leading zeros (the zero polynomial is
// []byte{0}).
type gfPoly []byte

func gfPolyStrip(p gfPoly) gfPoly {
	i := 0
	for i < len(p)-1 && p[i] == 0 {
		i++
	}
	return p[i:]
}

func gfPolyDeg(p gfPoly) int {
	p = gfPolyStrip(p)
	if len(p) == 1 && p[0] == 0 {
		return -1
	}
	return len(p) - 1
}

func gfPolyAdd(a, b gfPoly) gfPoly {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make(gfPoly, len(a))
	copy(out, a)
	off := len(a) - len(b)
	for i, c := range b {
		out[off+i] ^= c
	}
	return gfPolyStrip(out)
}

func gfPolyMulScalar(p gfPoly, s byte) gfPoly {
	if s == 0 {
		return gfPoly{0}
	}
	out := make(gfPoly, len(p))
	for i, c := range p {
		out[i] = gfMul(c, s)
	}
	return gfPolyStrip(out)
}

// gfPolyMulMonomial multiplies p by s·x^degree.
func gfPolyMulMonomial(p gfPoly, degree int, s byte) gfPoly {
	if s == 0 {
		return gfPoly{0}
	}
	out := make(gfPoly, len(p)+degree)
	for i, c := range p {
		out[i] = gfMul(c, s)
	}
	return gfPolyStrip(out)
}

func gfPolyMul(a, b gfPoly) gfPoly {
	if gfPolyDeg(a) < 0 || gfPolyDeg(b) < 0 {
		return gfPoly{0}
	}
	out := make(gfPoly, len(a)+len(b)-1)
	for i, ac := range a {
		if ac == 0 {
			continue
		}
		for j, bc := range b {
			out[i+j] ^= gfMul(ac, bc)
		}
	}
	return gfPolyStrip(out)
}

// gfPolyRemainder returns a mod b (polynomial long division remainder).
func gfPolyRemainder(a, b gfPoly) gfPoly {
	rem := append(gfPoly(nil), a...)
	db := gfPolyDeg(b)
	if db < 0 {
		panic("qrcodec: division by zero polynomial")
	}
	lead := b[0]
	for gfPolyDeg(rem) >= db {
		rem = gfPolyStrip(rem)
		if gfPolyDeg(rem) < db {
			break
		}
		factor := gfMul(rem[0], gfInv(lead))
		term := gfPolyMulMonomial(b, gfPolyDeg(rem)-db, factor)
		rem = gfPolyAdd(rem, term)
	}
	return gfPolyStrip(rem)
}

// gfPolyEval evaluates p at x using Horner's method, coefficients
// ordered highest-degree first.
func gfPolyEval(p gfPoly, x byte) byte {
	var y byte
	for _, c := range p {
		y = gfMul(y, x) ^ c
	}
	return y
}

// gfGenerator returns ∏ (x - 2^i) for i in [0,deg), highest-degree
// first, with leading coefficient 1.
func gfGenerator(deg int) gfPoly {
	g := gfPoly{1}
	for i := 0; i < deg; i++ {
		g = gfPolyMul(g, gfPoly{1, gfPow(2, i)})
	}
	return g
}
