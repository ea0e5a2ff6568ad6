// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve13318

import (
	"github.com/dsprenkels/curve13318/internal/convert"
	"github.com/dsprenkels/curve13318/internal/fe10"
	"github.com/dsprenkels/curve13318/internal/fe12"
	"github.com/dsprenkels/curve13318/internal/fe51"
)

// ge is a group element of E : y^2 = x^3 - 3x + 13318 in projective
// (X : Y : Z) coordinates, held in the fe12 floating-point
// representation used throughout the group law.
type ge [3]fe12.FE12

// neutral sets p to the identity (0 : 1 : 0) and returns p.
func (p *ge) neutral() *ge {
	p[0].Zero()
	p[1].One()
	p[2].Zero()
	return p
}

// set sets p = q and returns p.
func (p *ge) set(q *ge) *ge {
	p[0].Set(&q[0])
	p[1].Set(&q[1])
	p[2].Set(&q[2])
	return p
}

// cneg conditionally negates p in place. c must be exactly 0 or 1.
func (p *ge) cneg(c uint8) *ge {
	n := float64(1 - 2*int(c))
	p[1].MulSmall(n)
	return p
}

// cmov sets p = q if b == 1, leaving p unchanged if b == 0, in
// constant time. b must be exactly 0 or 1.
func (p *ge) cmov(q *ge, b uint64) *ge {
	p[0].CMov(&q[0], b)
	p[1].CMov(&q[1], b)
	p[2].CMov(&q[2], b)
	return p
}

// affineOnCurve reports whether the affine coordinates held in a
// squeezed (x, y) pair satisfy y^2 = x^3 - 3x + 13318, checked in the
// fe10 integer representation.
func affineOnCurve(x, y *fe12.FE12) bool {
	fx := convert.FE12ToFE10(x)
	fy := convert.FE12ToFE10(y)

	var lhs, rhs, t0 fe10.FE10
	lhs.Square(fy) // y^2

	t0.Square(fx)
	rhs.Mul(&t0, fx) // x^3

	t0.Zero()
	t0.Add2P()
	t0.Sub(&t0, fx) // -x

	rhs.Add(&rhs, &t0) // x^3 - x
	rhs.Add(&rhs, &t0) // x^3 - 2x
	rhs.Add(&rhs, &t0) // x^3 - 3x
	rhs.AddB()         // x^3 - 3x + B
	rhs.Carry()

	lhs.Add2P()
	lhs.Sub(&lhs, &rhs)
	lhs.Carry()

	var frozen fe10.Frozen
	fe10.Reduce(&frozen, &lhs)
	var nonzero uint64
	for _, limb := range frozen {
		nonzero |= limb
	}
	return nonzero == 0
}

// fromBytes decodes p from a 64-byte (x, y) affine encoding. The
// point at infinity is encoded as (0, 0). Points not on the curve are
// rejected.
func (p *ge) fromBytes(s *[64]byte) bool {
	var xb, yb [32]byte
	copy(xb[:], s[0:32])
	copy(yb[:], s[32:64])

	p[0] = *fe12.FromBytes(&xb)
	p[1] = *fe12.FromBytes(&yb)

	infinity := true
	for _, limb := range p[0] {
		if limb != 0 {
			infinity = false
		}
	}
	for _, limb := range p[1] {
		if limb != 0 {
			infinity = false
		}
	}

	if infinity {
		p[1].One()
		p[2].Zero()
		return true
	}

	p[2].One()
	return affineOnCurve(&p[0], &p[1])
}

// toBytes encodes p as a 64-byte (x, y) affine encoding. If p is the
// point at infinity (Z == 0), the fe51 inversion of Z produces
// 0, which in turn yields the (0, 0) infinity encoding.
func (p *ge) toBytes() [64]byte {
	x := convert.FE12ToFE51(&p[0])
	y := convert.FE12ToFE51(&p[1])
	z := convert.FE12ToFE51(&p[2])

	var zInv, xAffine, yAffine fe51.FE51
	zInv.Invert(z)
	xAffine.Mul(x, &zInv)
	yAffine.Mul(y, &zInv)

	var out [64]byte
	xb := xAffine.Pack()
	yb := yAffine.Pack()
	copy(out[0:32], xb[:])
	copy(out[32:64], yb[:])
	return out
}

// add sets p3 = p1 + p2 using the complete Renes-Costello-Batina
// addition law (Algorithm 4) for curves with a = -3. Squeeze calls
// are placed before each Mul whose inputs would otherwise be too large
// for the accumulated double-word bound documented in [Hash127]
// theorem 3.2 (sums of two squeezed values are multiplied directly); the
// squeeze points below are load-bearing and match the derivation in
// the original addition routine exactly.
func add(p3, p1, p2 *ge) {
	x1, y1, z1 := p1[0], p1[1], p1[2]
	x2, y2, z2 := p2[0], p2[1], p2[2]

	var t0, t1, t2, t3, t4, x3, y3, z3 fe12.FE12

	t0.Mul(&x1, &x2)
	t1.Mul(&y1, &y2)
	t2.Mul(&z1, &z2)
	t3.Add(&x1, &y1)
	t4.Add(&x2, &y2)
	t3.Mul(&t3, &t4)
	t4.Add(&t0, &t1)
	t3.Sub(&t3, &t4)
	t4.Add(&y1, &z1)
	x3.Add(&y2, &z2)
	t4.Mul(&t4, &x3)
	x3.Add(&t1, &t2)
	t4.Sub(&t4, &x3)
	x3.Add(&x1, &z1)
	y3.Add(&x2, &z2)
	x3.Mul(&x3, &y3)
	y3.Add(&t0, &t2)
	y3.Sub(&x3, &y3)

	y3.Squeeze()
	t0.Squeeze()
	t1.Squeeze()
	t2.Squeeze()

	z3.MulB(&t2)
	x3.Sub(&y3, &z3)
	z3.Add(&x3, &x3)
	x3.Add(&x3, &z3)
	z3.Sub(&t1, &x3)
	x3.Add(&t1, &x3)
	y3.MulB(&y3)
	t1.Add(&t2, &t2)
	t2.Add(&t1, &t2)
	y3.Sub(&y3, &t2)
	y3.Sub(&y3, &t0)

	t1.Add(&y3, &y3)
	y3.Add(&t1, &y3)
	t1.Add(&t0, &t0)
	t0.Add(&t1, &t0)
	t0.Sub(&t0, &t2)

	t4.Squeeze()
	x3.Squeeze()
	y3.Squeeze()
	z3.Squeeze()
	t0.Squeeze()

	t1.Mul(&t4, &y3)
	t2.Mul(&t0, &y3)
	y3.Mul(&x3, &z3)

	t3.Squeeze()

	y3.Add(&y3, &t2)
	x3.Mul(&x3, &t3)
	x3.Sub(&x3, &t1)
	z3.Mul(&z3, &t4)
	t1.Mul(&t3, &t0)
	z3.Add(&z3, &t1)

	x3.Squeeze()
	y3.Squeeze()
	z3.Squeeze()

	p3[0] = x3
	p3[1] = y3
	p3[2] = z3
}

// double sets p3 = 2*p using the complete Renes-Costello-Batina
// doubling law adapted from Algorithm 6 for a = -3. The squeeze
// points mirror add's and are equally load-bearing.
func double(p3, p *ge) {
	x, y, z := p[0], p[1], p[2]

	var x3, y3, z3, t0, t1, t2, t3 fe12.FE12

	t0.Square(&x)
	t1.Square(&y)
	t2.Square(&z)
	t3.Mul(&x, &y)
	t3.Add(&t3, &t3)

	t2.Squeeze()
	t3.Squeeze()

	z3.Mul(&x, &z)
	z3.Add(&z3, &z3)
	y3.MulB(&t2)
	y3.Sub(&y3, &z3)
	x3.Add(&y3, &y3)
	y3.Add(&x3, &y3)
	x3.Sub(&t1, &y3)
	y3.Add(&t1, &y3)

	x3.Squeeze()
	y3.Squeeze()
	z3.Squeeze()

	y3.Mul(&x3, &y3)
	x3.Mul(&x3, &t3)
	t3.Add(&t2, &t2)
	t2.Add(&t2, &t3)
	z3.MulB(&z3)
	z3.Sub(&z3, &t2)
	z3.Sub(&z3, &t0)

	t3.Add(&z3, &z3)
	z3.Add(&z3, &t3)
	t3.Add(&t0, &t0)
	t0.Add(&t3, &t0)
	t0.Sub(&t0, &t2)

	t0.Squeeze()
	z3.Squeeze()

	t0.Mul(&t0, &z3)
	y3.Add(&y3, &t0)
	t0.Mul(&y, &z)
	t0.Add(&t0, &t0)

	t0.Squeeze()

	z3.Mul(&t0, &z3)
	x3.Sub(&x3, &z3)

	t0.Squeeze()
	t1.Squeeze()

	z3.Mul(&t0, &t1)
	z3.Add(&z3, &z3)
	z3.Add(&z3, &z3)

	x3.Squeeze()
	y3.Squeeze()
	z3.Squeeze()

	p3[0] = x3
	p3[1] = y3
	p3[2] = z3
}
