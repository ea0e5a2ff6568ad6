package fe12

import "math"

// unsetBit59 clears bit 59 of x's IEEE-754 bit pattern. For the shifted
// high limbs (A[7..10]) this divides the value by 2^128 without a
// multiply: those limbs are always either zero or lie in a range where
// bit 59 is the exponent bit that separates "divide by 2^128" from
// "leave as-is", so clearing it is equivalent to, and cheaper than,
// a floating multiply by 0x1p-128.
func unsetBit59(x float64) float64 {
	return math.Float64frombits(math.Float64bits(x) & 0xF7FFFFFFFFFFFFFF)
}

// Mul sets h = f*g using a three-product Karatsuba split at the limb-6
// boundary (bit 128). The six low limbs of f and g are multiplied
// schoolbook-style into L; the six (scaled-down) high limbs into H;
// and the differences (f_lo - f_hi, g_hi - g_lo) into M, so that
// M + L + H recovers the cross terms without a fourth set of products.
// The result is unsqueezed; callers must call Squeeze before using it
// in another Mul, Square, on-curve check, or byte encoding.
func (h *FE12) Mul(f, g *FE12) *FE12 {
	var l0, l1, l2, l3, l4, l5, l6, l7, l8, l9, l10 float64
	var hh0, hh1, hh2, hh3, hh4, hh5, hh6, hh7, hh8, hh9, hh10 float64
	var m0, m1, m2, m3, m4, m5, m6, m7, m8, m9, m10 float64

	A, B := f, g

	l0 = A[0] * B[0]
	l1 = A[0] * B[1]
	l2 = A[0] * B[2]
	l3 = A[0] * B[3]
	l4 = A[0] * B[4]
	l5 = A[0] * B[5]
	l1 += A[1] * B[0]
	l2 += A[1] * B[1]
	l3 += A[1] * B[2]
	l4 += A[1] * B[3]
	l5 += A[1] * B[4]
	l6 = A[1] * B[5]
	l2 += A[2] * B[0]
	l3 += A[2] * B[1]
	l4 += A[2] * B[2]
	l5 += A[2] * B[3]
	l6 += A[2] * B[4]
	l7 = A[2] * B[5]
	l3 += A[3] * B[0]
	l4 += A[3] * B[1]
	l5 += A[3] * B[2]
	l6 += A[3] * B[3]
	l7 += A[3] * B[4]
	l8 = A[3] * B[5]
	l4 += A[4] * B[0]
	l5 += A[4] * B[1]
	l6 += A[4] * B[2]
	l7 += A[4] * B[3]
	l8 += A[4] * B[4]
	l9 = A[4] * B[5]
	l5 += A[5] * B[0]
	l6 += A[5] * B[1]
	l7 += A[5] * B[2]
	l8 += A[5] * B[3]
	l9 += A[5] * B[4]
	l10 = A[5] * B[5]

	a6 := 0x1p-128 * A[6]
	a7 := unsetBit59(A[7])
	a8 := unsetBit59(A[8])
	a9 := unsetBit59(A[9])
	a10 := unsetBit59(A[10])
	a11 := 0x1p-128 * A[11]
	b6 := 0x1p-128 * B[6]
	b7 := unsetBit59(B[7])
	b8 := unsetBit59(B[8])
	b9 := unsetBit59(B[9])
	b10 := unsetBit59(B[10])
	b11 := 0x1p-128 * B[11]

	hh0 = a6 * b6
	hh1 = a6 * b7
	hh2 = a6 * b8
	hh3 = a6 * b9
	hh4 = a6 * b10
	hh5 = a6 * b11
	hh1 += a7 * b6
	hh2 += a7 * b7
	hh3 += a7 * b8
	hh4 += a7 * b9
	hh5 += a7 * b10
	hh6 = a7 * b11
	hh2 += a8 * b6
	hh3 += a8 * b7
	hh4 += a8 * b8
	hh5 += a8 * b9
	hh6 += a8 * b10
	hh7 = a8 * b11
	hh3 += a9 * b6
	hh4 += a9 * b7
	hh5 += a9 * b8
	hh6 += a9 * b9
	hh7 += a9 * b10
	hh8 = a9 * b11
	hh4 += a10 * b6
	hh5 += a10 * b7
	hh6 += a10 * b8
	hh7 += a10 * b9
	hh8 += a10 * b10
	hh9 = a10 * b11
	hh5 += a11 * b6
	hh6 += a11 * b7
	hh7 += a11 * b8
	hh8 += a11 * b9
	hh9 += a11 * b10
	hh10 = a11 * b11

	mA0 := A[0] - a6
	mA1 := A[1] - a7
	mA2 := A[2] - a8
	mA3 := A[3] - a9
	mA4 := A[4] - a10
	mA5 := A[5] - a11
	mB0 := b6 - B[0]
	mB1 := b7 - B[1]
	mB2 := b8 - B[2]
	mB3 := b9 - B[3]
	mB4 := b10 - B[4]
	mB5 := b11 - B[5]

	m0 = mA0 * mB0
	m1 = mA0 * mB1
	m2 = mA0 * mB2
	m3 = mA0 * mB3
	m4 = mA0 * mB4
	m5 = mA0 * mB5
	m1 += mA1 * mB0
	m2 += mA1 * mB1
	m3 += mA1 * mB2
	m4 += mA1 * mB3
	m5 += mA1 * mB4
	m6 = mA1 * mB5
	m2 += mA2 * mB0
	m3 += mA2 * mB1
	m4 += mA2 * mB2
	m5 += mA2 * mB3
	m6 += mA2 * mB4
	m7 = mA2 * mB5
	m3 += mA3 * mB0
	m4 += mA3 * mB1
	m5 += mA3 * mB2
	m6 += mA3 * mB3
	m7 += mA3 * mB4
	m8 = mA3 * mB5
	m4 += mA4 * mB0
	m5 += mA4 * mB1
	m6 += mA4 * mB2
	m7 += mA4 * mB3
	m8 += mA4 * mB4
	m9 = mA4 * mB5
	m5 += mA5 * mB0
	m6 += mA5 * mB1
	m7 += mA5 * mB2
	m8 += mA5 * mB3
	m9 += mA5 * mB4
	m10 = mA5 * mB5

	h[0] = l0 + 0x26*(0x1p-128*(m6+l6+hh6)+hh0)
	h[1] = l1 + 0x26*(0x1p-128*(m7+l7+hh7)+hh1)
	h[2] = l2 + 0x26*(0x1p-128*(m8+l8+hh8)+hh2)
	h[3] = l3 + 0x26*(0x1p-128*(m9+l9+hh9)+hh3)
	h[4] = l4 + 0x26*(0x1p-128*(m10+l10+hh10)+hh4)
	h[5] = l5 + 0x26*hh5
	h[6] = l6 + 0x1p128*(m0+l0+hh0) + 0x26*hh6
	h[7] = l7 + 0x1p128*(m1+l1+hh1) + 0x26*hh7
	h[8] = l8 + 0x1p128*(m2+l2+hh2) + 0x26*hh8
	h[9] = l9 + 0x1p128*(m3+l3+hh3) + 0x26*hh9
	h[10] = l10 + 0x1p128*(m4+l4+hh4) + 0x26*hh10
	h[11] = 0x1p128 * (m5 + l5 + hh5)

	return h
}

// MulSchoolbook sets dest = A*B via direct 12x12 schoolbook reduction.
// It serves as an oracle against Mul's Karatsuba split in tests and is
// not used on the hot path.
func (dest *FE12) MulSchoolbook(A, B *FE12) *FE12 {
	var C FE12

	b19 := [11]float64{}
	for i := 1; i < 12; i++ {
		b19[i-1] = 0x13p-255 * B[i]
	}

	for i := 0; i < 12; i++ {
		C[i] = A[0] * B[i]
	}
	for k := 1; k < 12; k++ {
		ak := A[k]
		for i := 0; i < 12; i++ {
			j := i - k
			if j >= 0 {
				C[i] += ak * B[j]
			} else {
				C[i] += ak * b19[j+12-1]
			}
		}
	}

	*dest = C
	return dest
}

// Square sets h = f*f using the same Karatsuba split as Mul, but with
// each unique off-diagonal product computed once and doubled, then
// added to the diagonal squares. The M accumulator
// enters with a negative sign: squaring flips mB's sign relative to
// Mul because there f and g are independent inputs but here mA and mB
// would otherwise be identical, so the M subterm is fed in negated to
// preserve L + H - M*(-1) == the cross term identity.
func (h *FE12) Square(f *FE12) *FE12 {
	A := f

	a6 := 0x1p-128 * A[6]
	a7 := unsetBit59(A[7])
	a8 := unsetBit59(A[8])
	a9 := unsetBit59(A[9])
	a10 := unsetBit59(A[10])
	a11 := 0x1p-128 * A[11]

	l00 := A[0] * A[0]
	l01 := A[0] * A[1]
	l02 := A[0] * A[2]
	l03 := A[0] * A[3]
	l04 := A[0] * A[4]
	l05 := A[0] * A[5]
	l11 := A[1] * A[1]
	l12 := A[1] * A[2]
	l13 := A[1] * A[3]
	l14 := A[1] * A[4]
	l15 := A[1] * A[5]
	l22 := A[2] * A[2]
	l23 := A[2] * A[3]
	l24 := A[2] * A[4]
	l25 := A[2] * A[5]
	l33 := A[3] * A[3]
	l34 := A[3] * A[4]
	l35 := A[3] * A[5]
	l44 := A[4] * A[4]
	l45 := A[4] * A[5]
	l55 := A[5] * A[5]

	l1 := l01
	l2 := l02
	l3 := l03 + l12
	l4 := l04 + l13
	l5 := l05 + l14 + l23
	l6 := l15 + l24
	l7 := l25 + l34
	l8 := l35
	l9 := l45

	l0 := l00
	l1 = l1 + l1
	l2 = l2 + l11 + l2
	l3 = l3 + l3
	l4 = l4 + l22 + l4
	l5 = l5 + l5
	l6 = l6 + l33 + l6
	l7 = l7 + l7
	l8 = l8 + l44 + l8
	l9 = l9 + l9
	l10 := l55

	h00 := a6 * a6
	h01 := a6 * a7
	h02 := a6 * a8
	h03 := a6 * a9
	h04 := a6 * a10
	h05 := a6 * a11
	h11 := a7 * a7
	h12 := a7 * a8
	h13 := a7 * a9
	h14 := a7 * a10
	h15 := a7 * a11
	h22 := a8 * a8
	h23 := a8 * a9
	h24 := a8 * a10
	h25 := a8 * a11
	h33 := a9 * a9
	h34 := a9 * a10
	h35 := a9 * a11
	h44 := a10 * a10
	h45 := a10 * a11
	h55 := a11 * a11

	hh1 := h01
	hh2 := h02
	hh3 := h03 + h12
	hh4 := h04 + h13
	hh5 := h05 + h14 + h23
	hh6 := h15 + h24
	hh7 := h25 + h34
	hh8 := h35
	hh9 := h45

	hh0 := h00
	hh1 = hh1 + hh1
	hh2 = hh2 + h11 + hh2
	hh3 = hh3 + hh3
	hh4 = hh4 + h22 + hh4
	hh5 = hh5 + hh5
	hh6 = hh6 + h33 + hh6
	hh7 = hh7 + hh7
	hh8 = hh8 + h44 + hh8
	hh9 = hh9 + hh9
	hh10 := h55

	mA0 := A[0] - a6
	mA1 := A[1] - a7
	mA2 := A[2] - a8
	mA3 := A[3] - a9
	mA4 := A[4] - a10
	mA5 := A[5] - a11

	m00 := mA0 * mA0
	m01 := mA0 * mA1
	m02 := mA0 * mA2
	m03 := mA0 * mA3
	m04 := mA0 * mA4
	m05 := mA0 * mA5
	m11 := mA1 * mA1
	m12 := mA1 * mA2
	m13 := mA1 * mA3
	m14 := mA1 * mA4
	m15 := mA1 * mA5
	m22 := mA2 * mA2
	m23 := mA2 * mA3
	m24 := mA2 * mA4
	m25 := mA2 * mA5
	m33 := mA3 * mA3
	m34 := mA3 * mA4
	m35 := mA3 * mA5
	m44 := mA4 * mA4
	m45 := mA4 * mA5
	m55 := mA5 * mA5

	m1 := m01
	m2 := m02
	m3 := m03 + m12
	m4 := m04 + m13
	m5 := m05 + m14 + m23
	m6 := m15 + m24
	m7 := m25 + m34
	m8 := m35
	m9 := m45

	m0 := m00
	m1 = m1 + m1
	m2 = m2 + m11 + m2
	m3 = m3 + m3
	m4 = m4 + m22 + m4
	m5 = m5 + m5
	m6 = m6 + m33 + m6
	m7 = m7 + m7
	m8 = m8 + m44 + m8
	m9 = m9 + m9
	m10 := m55

	h[0] = l0 + 0x26*0x1p-128*(-m6+l6+hh6) + 0x26*hh0
	h[1] = l1 + 0x26*0x1p-128*(-m7+l7+hh7) + 0x26*hh1
	h[2] = l2 + 0x26*0x1p-128*(-m8+l8+hh8) + 0x26*hh2
	h[3] = l3 + 0x26*0x1p-128*(-m9+l9+hh9) + 0x26*hh3
	h[4] = l4 + 0x26*0x1p-128*(-m10+l10+hh10) + 0x26*hh4
	h[5] = l5 + 0x26*hh5
	h[6] = l6 + 0x1p128*(-m0+l0+hh0) + 0x26*hh6
	h[7] = l7 + 0x1p128*(-m1+l1+hh1) + 0x26*hh7
	h[8] = l8 + 0x1p128*(-m2+l2+hh2) + 0x26*hh8
	h[9] = l9 + 0x1p128*(-m3+l3+hh3) + 0x26*hh9
	h[10] = l10 + 0x1p128*(-m4+l4+hh4) + 0x26*hh10
	h[11] = 0x1p128 * (-m5 + l5 + hh5)

	return h
}
