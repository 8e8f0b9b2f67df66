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

// rsEncode returns the k error-correction bytes for data: the remainder
// of data·x^k modulo the degree-k generator polynomial.
func rsEncode(data []byte, k int) []byte {
	gen, ok := reedSolomonGenerators[k]
	if !ok {
		gen = gfGenerator(k)
	}

	padded := make(gfPoly, len(data)+k)
	copy(padded, data)

	rem := gfPolyRemainder(padded, gen)
	ecc := make([]byte, k)
	// rem is highest-degree-first and has degree < k; right-align into
	// the k-byte ECC output.
	copy(ecc[k-len(rem):], rem)
	return ecc
}

// rsDecode corrects codeword (data‖ecc, len(ecc) == k) using syndromes
// and the extended Euclidean algorithm, returning a (possibly repaired)
// copy; codeword itself is not modified. If every syndrome is zero the
// copy equals the input.
func rsDecode(codeword []byte, k int) ([]byte, error) {
	n := len(codeword)
	poly := make(gfPoly, n)
	copy(poly, codeword)

	syn := make(gfPoly, k)
	noError := true
	for i := 0; i < k; i++ {
		s := gfPolyEval(poly, gfPow(2, i))
		syn[k-1-i] = s
		if s != 0 {
			noError = false
		}
	}
	if noError {
		return codeword, nil
	}
	syn = gfPolyStrip(syn)

	sigma, omega, err := rsEuclid(gfPolyMonomial(k, 1), syn, k)
	if err != nil {
		return nil, err
	}

	locations, err := rsFindErrorLocations(sigma)
	if err != nil {
		return nil, err
	}
	if err := rsCorrect(poly, sigma, omega, locations); err != nil {
		return nil, err
	}

	out := make([]byte, n)
	copy(out, poly)
	return out, nil
}

// gfPolyMonomial returns scale·x^degree.
func gfPolyMonomial(degree int, scale byte) gfPoly {
	if scale == 0 {
		return gfPoly{0}
	}
	p := make(gfPoly, degree+1)
	p[0] = scale
	return p
}

// rsEuclid runs the extended Euclidean algorithm on (a, b), stopping
// once 2·deg(r) < target, and returns (Λ, Ω) normalized so Λ(0) = 1.
func rsEuclid(a, b gfPoly, target int) (sigma, omega gfPoly, err error) {
	if gfPolyDeg(a) < gfPolyDeg(b) {
		a, b = b, a
	}
	rLast, r := a, b
	tLast, t := gfPoly{0}, gfPoly{1}

	for 2*gfPolyDeg(r) >= target {
		rLastLast, tLastLast := rLast, tLast
		rLast, tLast = r, t

		if gfPolyDeg(rLast) < 0 {
			return nil, nil, newErr(RsUndecodable, "Euclidean algorithm: r[i-1] is zero")
		}
		r = rLastLast
		q := gfPoly{0}
		denom := rLast[0]
		denomInv := gfInv(denom)
		for gfPolyDeg(r) >= gfPolyDeg(rLast) && gfPolyDeg(r) >= 0 {
			degreeDiff := gfPolyDeg(r) - gfPolyDeg(rLast)
			scale := gfMul(r[0], denomInv)
			q = gfPolyAdd(q, gfPolyMonomial(degreeDiff, scale))
			r = gfPolyAdd(r, gfPolyMulMonomial(rLast, degreeDiff, scale))
		}
		t = gfPolyAdd(gfPolyMul(q, tLast), tLastLast)

		if gfPolyDeg(r) >= gfPolyDeg(rLast) {
			return nil, nil, newErr(RsUndecodable, "Euclidean algorithm failed to reduce remainder")
		}
	}

	sigmaTildeAtZero := t[len(t)-1]
	if sigmaTildeAtZero == 0 {
		return nil, nil, newErr(RsUndecodable, "sigma(0) is zero")
	}
	inv := gfInv(sigmaTildeAtZero)
	return gfPolyMulScalar(t, inv), gfPolyMulScalar(r, inv), nil
}

// rsFindErrorLocations returns, for each root of sigma, the inverse of
// that root (the conventional "error location" X_i), searching every
// nonzero field element.
func rsFindErrorLocations(sigma gfPoly) ([]byte, error) {
	numErrors := gfPolyDeg(sigma)
	if numErrors == 0 {
		return nil, nil
	}
	locations := make([]byte, 0, numErrors)
	for v := 1; v <= 255; v++ {
		x := byte(v)
		if gfPolyEval(sigma, x) == 0 {
			locations = append(locations, gfInv(x))
			if len(locations) == numErrors {
				break
			}
		}
	}
	if len(locations) != numErrors {
		return nil, newErr(RsUndecodable, "error locator degree %d does not match %d roots found", numErrors, len(locations))
	}
	return locations, nil
}

// rsCorrect applies Forney's formula to compute each error magnitude and
// XORs it into codeword at the corresponding position.
func rsCorrect(codeword gfPoly, sigma, omega gfPoly, locations []byte) error {
	n := len(codeword)
	for _, xi := range locations {
		xiInv := gfInv(xi) // = X_i^{-1}, the root of sigma
		var denom byte = 1
		for _, xj := range locations {
			if xj == xi {
				continue
			}
			term := gfMul(xj, xiInv)
			termPlus1 := term ^ 1
			denom = gfMul(denom, termPlus1)
		}
		magnitude := gfMul(gfPolyEval(omega, xiInv), gfInv(denom))

		pos := n - 1 - gfLog[xi]
		if pos < 0 || pos >= n {
			return newErr(RsUndecodable, "error position %d outside codeword of length %d", pos, n)
		}
		codeword[pos] ^= magnitude
	}
	return nil
}
