// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fe12 implements the floating-point field element
// representation of GF(2^255 - 19) that is the hot path of
// curve13318's group law.
//
// An element represents the integer
//
//	t[0] + t[1] + t[2] + ... + t[11]
//
// where limb i is divisible by 2^e(i), e = (0,22,43,64,85,107,128,
// 149,170,192,213,234). This "floating point radix 2^21.25" layout
// is from [NEONCrypto2012]; it depends on IEEE-754 double-precision
// round-to-nearest-ties-to-even arithmetic with exceptions masked and
// forbids FMA contraction of a*b+c (the bound analysis assumes two
// roundings). See internal/fpmode for the collaborator that pins this
// for the duration of a computation.
package fe12

import "math"

// B is the curve13318 curve constant: y^2 = x^3 - 3x + B.
const B = 13318

// FE12 is an element of GF(2^255-19) in 12-limb floating-point radix
// 2^21.25. The zero value is a valid zero element.
type FE12 [12]float64

// Zero sets z to 0 and returns z.
func (z *FE12) Zero() *FE12 {
	*z = FE12{}
	return z
}

// One sets z to 1 and returns z.
func (z *FE12) One() *FE12 {
	*z = FE12{1}
	return z
}

// Set sets z = x and returns z.
func (z *FE12) Set(x *FE12) *FE12 {
	*z = *x
	return z
}

// Add sets z = x + y and returns z.
func (z *FE12) Add(x, y *FE12) *FE12 {
	for i := range z {
		z[i] = x[i] + y[i]
	}
	return z
}

// Sub sets z = x - y and returns z.
func (z *FE12) Sub(x, y *FE12) *FE12 {
	for i := range z {
		z[i] = x[i] - y[i]
	}
	return z
}

// MulSmall multiplies every limb of z by the small constant n.
func (z *FE12) MulSmall(n float64) *FE12 {
	for i := range z {
		z[i] *= n
	}
	return z
}

// AddB adds the curve constant B to z[0].
func (z *FE12) AddB() *FE12 {
	z[0] += B
	return z
}

// MulB sets h = B*f. The result is not squeezed.
func (h *FE12) MulB(f *FE12) *FE12 {
	*h = *f
	return h.MulSmall(B)
}

// CMov sets z = x if b == 1, leaving z unchanged if b == 0, in
// constant time. b must be exactly 0 or 1; any other value is
// undefined. The selection operates on the raw IEEE-754 bit pattern
// of each limb, mirroring the union{double;uint64} trick the
// reference implementation uses for its table lookups.
func (z *FE12) CMov(x *FE12, b uint64) *FE12 {
	mask := -b
	for i := range z {
		zb := math.Float64bits(z[i])
		xb := math.Float64bits(x[i])
		zb ^= mask & (zb ^ xb)
		z[i] = math.Float64frombits(zb)
	}
	return z
}

// Squeeze runs two interleaved 8-round carry chains ("round to nearest
// by adding and subtracting a large constant") to force every limb
// back into its target bit width. Precondition: every limb's absolute
// value is at most 0.99*2^53*2^e(i). Postcondition: |limb_i| <=
// 1.01*2^(e(i)+b_i), b alternating 22,21. The wraparound from limb 11
// multiplies by 19*2^-255 and folds into limb 0.
func (z *FE12) Squeeze() *FE12 {
	var t0, t1 float64

	t0 = z[0] + 0x3p73 - 0x3p73
	z[0] -= t0
	z[1] += t0
	t1 = z[6] + 0x3p200 - 0x3p200
	z[6] -= t1
	z[7] += t1

	t0 = z[1] + 0x3p94 - 0x3p94
	z[1] -= t0
	z[2] += t0
	t1 = z[7] + 0x3p221 - 0x3p221
	z[7] -= t1
	z[8] += t1

	t0 = z[2] + 0x3p115 - 0x3p115
	z[2] -= t0
	z[3] += t0
	t1 = z[8] + 0x3p243 - 0x3p243
	z[8] -= t1
	z[9] += t1

	t0 = z[3] + 0x3p136 - 0x3p136
	z[3] -= t0
	z[4] += t0
	t1 = z[9] + 0x3p264 - 0x3p264
	z[9] -= t1
	z[10] += t1

	t0 = z[4] + 0x3p158 - 0x3p158
	z[4] -= t0
	z[5] += t0
	t1 = z[10] + 0x3p285 - 0x3p285
	z[10] -= t1
	z[11] += t1

	t0 = z[5] + 0x3p179 - 0x3p179
	z[5] -= t0
	z[6] += t0
	t1 = z[11] + 0x3p306 - 0x3p306
	z[11] -= t1
	z[0] += 0x13p-255 * t1

	t0 = z[6] + 0x3p200 - 0x3p200
	z[6] -= t0
	z[7] += t0
	t1 = z[0] + 0x3p73 - 0x3p73
	z[0] -= t1
	z[1] += t1

	t0 = z[7] + 0x3p221 - 0x3p221
	z[7] -= t0
	z[8] += t0
	t1 = z[1] + 0x3p94 - 0x3p94
	z[1] -= t1
	z[2] += t1

	return z
}
