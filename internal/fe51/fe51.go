// Copyright (c) 2017 George Tankersley. All rights reserved.
// Copyright (c) 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fe51 implements the integer radix 2^51 representation of
// GF(2^255 - 19) used by curve13318 only at the tail of a scalar
// multiplication: inversion of the projective Z coordinate and
// final byte packing. It is a port of the amd64-51-30k SUPERCOP field
// arithmetic that ships in several Go ed25519/ristretto255
// implementations.
package fe51

import (
	"encoding/binary"
	"math/bits"
)

// B is the curve13318 curve constant: y^2 = x^3 - 3x + B.
const B = 13318

// FE51 represents an element of GF(2^255-19). An element v represents
// the integer v[0] + v[1]*2^51 + v[2]*2^102 + v[3]*2^153 + v[4]*2^204.
// Between operations, all limbs are expected to be below 2^52. The
// zero value is a valid zero element.
type FE51 [5]uint64

const maskLow51Bits = uint64(1)<<51 - 1

// Zero sets z to 0 and returns z.
func (z *FE51) Zero() *FE51 {
	*z = FE51{}
	return z
}

// One sets z to 1 and returns z.
func (z *FE51) One() *FE51 {
	*z = FE51{1}
	return z
}

// Set sets z = x and returns z.
func (z *FE51) Set(x *FE51) *FE51 {
	*z = *x
	return z
}

func (z *FE51) carryPropagate() *FE51 {
	z[1] += z[0] >> 51
	z[0] &= maskLow51Bits
	z[2] += z[1] >> 51
	z[1] &= maskLow51Bits
	z[3] += z[2] >> 51
	z[2] &= maskLow51Bits
	z[4] += z[3] >> 51
	z[3] &= maskLow51Bits
	z[0] += (z[4] >> 51) * 19
	z[4] &= maskLow51Bits
	return z
}

// reduce reduces z modulo 2^255-19 into the canonical range [0, p).
func (z *FE51) reduce() *FE51 {
	z.carryPropagate()

	c := (z[0] + 19) >> 51
	c = (z[1] + c) >> 51
	c = (z[2] + c) >> 51
	c = (z[3] + c) >> 51
	c = (z[4] + c) >> 51

	z[0] += 19 * c

	z[1] += z[0] >> 51
	z[0] &= maskLow51Bits
	z[2] += z[1] >> 51
	z[1] &= maskLow51Bits
	z[3] += z[2] >> 51
	z[2] &= maskLow51Bits
	z[4] += z[3] >> 51
	z[3] &= maskLow51Bits
	z[4] &= maskLow51Bits

	return z
}

// Add sets z = x + y and returns z.
func (z *FE51) Add(x, y *FE51) *FE51 {
	z[0] = x[0] + y[0]
	z[1] = x[1] + y[1]
	z[2] = x[2] + y[2]
	z[3] = x[3] + y[3]
	z[4] = x[4] + y[4]
	return z.carryPropagate()
}

// Sub sets z = x - y and returns z.
func (z *FE51) Sub(x, y *FE51) *FE51 {
	z[0] = (x[0] + 0xFFFFFFFFFFFDA) - y[0]
	z[1] = (x[1] + 0xFFFFFFFFFFFFE) - y[1]
	z[2] = (x[2] + 0xFFFFFFFFFFFFE) - y[2]
	z[3] = (x[3] + 0xFFFFFFFFFFFFE) - y[3]
	z[4] = (x[4] + 0xFFFFFFFFFFFFE) - y[4]
	return z.carryPropagate()
}

// AddB adds the curve constant B to z[0].
func (z *FE51) AddB() *FE51 {
	z[0] += B
	return z
}

func mul64(a, b uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	return
}

func addMul64(sumLo, sumHi, a, b uint64) (lo, hi uint64) {
	hi2, lo2 := bits.Mul64(a, b)
	var carry uint64
	lo, carry = bits.Add64(sumLo, lo2, 0)
	hi, _ = bits.Add64(sumHi, hi2, carry)
	return
}

// shiftRightBy51 returns the 64-bit value whose low 64 bits are
// (lo>>51)|(hi<<13), i.e. the 128-bit value (hi:lo) shifted right 51
// bits and truncated to 64 bits; hi is always small enough that the
// result fits in 64 bits for the operands this package produces.
func shiftRightBy51(lo, hi uint64) uint64 {
	return (lo >> 51) | (hi << 13)
}

// Mul sets z = x*y and returns z. Each output limb is formed from five
// 64x64->128 products, positioning the terms that wrap around the
// top of the 255-bit field by pre-multiplying them by 19 (the
// reduction identity 2^255 = 19 mod p), then the five 128-bit
// accumulators are each folded back into 51-bit limbs by carry
// propagation.
func (z *FE51) Mul(x, y *FE51) *FE51 {
	a0, a1, a2, a3, a4 := x[0], x[1], x[2], x[3], x[4]
	b0, b1, b2, b3, b4 := y[0], y[1], y[2], y[3], y[4]

	b119 := b1 * 19
	b219 := b2 * 19
	b319 := b3 * 19
	b419 := b4 * 19

	r0lo, r0hi := mul64(a0, b0)
	r0lo, r0hi = addMul64(r0lo, r0hi, a1, b419)
	r0lo, r0hi = addMul64(r0lo, r0hi, a2, b319)
	r0lo, r0hi = addMul64(r0lo, r0hi, a3, b219)
	r0lo, r0hi = addMul64(r0lo, r0hi, a4, b119)

	r1lo, r1hi := mul64(a0, b1)
	r1lo, r1hi = addMul64(r1lo, r1hi, a1, b0)
	r1lo, r1hi = addMul64(r1lo, r1hi, a2, b419)
	r1lo, r1hi = addMul64(r1lo, r1hi, a3, b319)
	r1lo, r1hi = addMul64(r1lo, r1hi, a4, b219)

	r2lo, r2hi := mul64(a0, b2)
	r2lo, r2hi = addMul64(r2lo, r2hi, a1, b1)
	r2lo, r2hi = addMul64(r2lo, r2hi, a2, b0)
	r2lo, r2hi = addMul64(r2lo, r2hi, a3, b419)
	r2lo, r2hi = addMul64(r2lo, r2hi, a4, b319)

	r3lo, r3hi := mul64(a0, b3)
	r3lo, r3hi = addMul64(r3lo, r3hi, a1, b2)
	r3lo, r3hi = addMul64(r3lo, r3hi, a2, b1)
	r3lo, r3hi = addMul64(r3lo, r3hi, a3, b0)
	r3lo, r3hi = addMul64(r3lo, r3hi, a4, b419)

	r4lo, r4hi := mul64(a0, b4)
	r4lo, r4hi = addMul64(r4lo, r4hi, a1, b3)
	r4lo, r4hi = addMul64(r4lo, r4hi, a2, b2)
	r4lo, r4hi = addMul64(r4lo, r4hi, a3, b1)
	r4lo, r4hi = addMul64(r4lo, r4hi, a4, b0)

	c0 := r0lo & maskLow51Bits
	c1 := (r1lo & maskLow51Bits) + shiftRightBy51(r0lo, r0hi)
	c2 := (r2lo & maskLow51Bits) + shiftRightBy51(r1lo, r1hi)
	c3 := (r3lo & maskLow51Bits) + shiftRightBy51(r2lo, r2hi)
	c4 := (r4lo & maskLow51Bits) + shiftRightBy51(r3lo, r3hi)
	c0 += 19 * shiftRightBy51(r4lo, r4hi)

	*z = FE51{c0, c1, c2, c3, c4}
	return z.carryPropagate()
}

// Square sets z = x*x and returns z.
func (z *FE51) Square(x *FE51) *FE51 {
	return z.Mul(x, x)
}

// NSquare sets z = x^(2^n) by squaring n times and returns z.
func (z *FE51) NSquare(x *FE51, n int) *FE51 {
	z.Set(x)
	for i := 0; i < n; i++ {
		var tmp FE51
		tmp.Mul(z, z)
		*z = tmp
	}
	return z
}

// Invert sets z = 1/x mod p using the same 254-squaring, 11-multiply
// addition chain for the p-2 exponent as fe10.Invert, and returns z.
// If x == 0, Invert returns z = 0.
func (z *FE51) Invert(x *FE51) *FE51 {
	var z2, z9, z11, z2_5_0, z2_10_0, z2_20_0, z2_50_0, z2_100_0, t FE51

	z2.Square(x)            // 2
	t.NSquare(&z2, 2)       // 8
	z9.Mul(&t, x)           // 9
	z11.Mul(&z9, &z2)       // 11
	t.Square(&z11)          // 22
	z2_5_0.Mul(&t, &z9)     // 2^5 - 2^0 = 31
	t.NSquare(&z2_5_0, 5)   // 2^10 - 2^5
	z2_10_0.Mul(&t, &z2_5_0) // 2^10 - 2^0

	t.NSquare(&z2_10_0, 10)
	z2_20_0.Mul(&t, &z2_10_0) // 2^20 - 2^0

	t.NSquare(&z2_20_0, 20)
	t.Mul(&t, &z2_20_0) // 2^40 - 2^0

	t.NSquare(&t, 10)
	z2_50_0.Mul(&t, &z2_10_0) // 2^50 - 2^0

	t.NSquare(&z2_50_0, 50)
	z2_100_0.Mul(&t, &z2_50_0) // 2^100 - 2^0

	t.NSquare(&z2_100_0, 100)
	t.Mul(&t, &z2_100_0) // 2^200 - 2^0

	t.NSquare(&t, 50)
	t.Mul(&t, &z2_50_0) // 2^250 - 2^0

	t.NSquare(&t, 5) // 2^255 - 2^5

	return z.Mul(&t, &z11) // 2^255 - 21
}

// Pack returns the canonical 32-byte little-endian encoding of z.
func (z *FE51) Pack() [32]byte {
	t := *z
	t.reduce()

	var out [32]byte
	var buf [8]byte
	for i, l := range t {
		bitsOffset := i * 51
		binary.LittleEndian.PutUint64(buf[:], l<<uint(bitsOffset%8))
		for j, bb := range buf {
			off := bitsOffset/8 + j
			if off >= len(out) {
				break
			}
			out[off] |= bb
		}
	}
	return out
}
