// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package convert bridges the floating-point fe12 representation used
// by the group law to the integer fe10 and fe51 representations used
// for on-curve checks and final packing.
package convert

import (
	"github.com/dsprenkels/curve13318/internal/fe10"
	"github.com/dsprenkels/curve13318/internal/fe12"
	"github.com/dsprenkels/curve13318/internal/fe51"
)

const (
	mask42 = uint64(0xFFFFFC0000000000)
	mask43 = uint64(0xFFFFF80000000000)
)

// sixLimbs collapses a squeezed fe12 value's 12 limbs into 6, pairing
// adjacent limbs at the 2^43/2^85/2^128/2^170/2^213 boundaries, then
// adds 8*p so that every limb is positive regardless of the sign left
// over from fe12.Squeeze's final carry round.
func sixLimbs(z *fe12.FE12) [6]uint64 {
	z0 := uint64(z[0] + z[1])
	z1 := uint64((z[2] + z[3]) * 0x1p-43)
	z2 := uint64((z[4] + z[5]) * 0x1p-85)
	z3 := uint64((z[6] + z[7]) * 0x1p-128)
	z4 := uint64((z[8] + z[9]) * 0x1p-170)
	z5 := uint64((z[10] + z[11]) * 0x1p-213)

	z0 += 0x1FFFFFFFFF68
	z1 += 0x0FFFFFFFFFFC
	z2 += 0x1FFFFFFFFFFC
	z3 += 0x0FFFFFFFFFFC
	z4 += 0x1FFFFFFFFFFC
	z5 += 0x1FFFFFFFFFFC

	return [6]uint64{z0, z1, z2, z3, z4, z5}
}

// FE12ToFE10 converts a squeezed fe12 element into the fe10
// representation, ready for on-curve membership checks.
func FE12ToFE10(in *fe12.FE12) *fe10.FE10 {
	limbs := sixLimbs(in)
	z0, z1, z2, z3, z4, z5 := limbs[0], limbs[1], limbs[2], limbs[3], limbs[4], limbs[5]

	t0 := z0 & mask43
	z0 ^= t0
	z1 += t0 >> 43
	t1 := z3 & mask42
	z3 ^= t1
	z4 += t1 >> 42
	t0 = z1 & mask42
	z1 ^= t0
	z2 += t0 >> 42
	t1 = z4 & mask43
	z4 ^= t1
	z5 += t1 >> 43
	t0 = z2 & mask43
	z2 ^= t0
	z3 += t0 >> 43
	t1 = z5 & mask42
	z5 ^= t1
	z0 += 19 * (t1 >> 42)

	var out fe10.FE10
	out[0] = z0 & 0x3FFFFFF
	out[1] = z0 >> 26
	out[1] += (z1 & 0x00000FF) << 17
	out[2] = (z1 >> 8) & 0x3FFFFFF
	out[3] = z1 >> 34
	out[3] += (z2 & 0x001FFFF) << 8
	out[4] = z2 >> 17
	out[5] = z3 & 0x1FFFFFF
	out[6] = z3 >> 25
	out[6] += (z4 & 0x00001FF) << 17
	out[7] = (z4 >> 9) & 0x1FFFFFF
	out[8] = z4 >> 34
	out[8] += (z5 & 0x001FFFF) << 9
	out[9] = z5 >> 17
	return &out
}

// FE12ToFE51 converts a squeezed fe12 element into the fe51
// representation, used for the final inversion and byte packing.
func FE12ToFE51(in *fe12.FE12) *fe51.FE51 {
	limbs := sixLimbs(in)
	u0, u1, u2, u3, u4, u5 := limbs[0], limbs[1], limbs[2], limbs[3], limbs[4], limbs[5]

	var out fe51.FE51
	out[0] = u0
	out[0] += (u1 & 0x00000000000000FF) << 43
	out[1] = u1 >> 8
	out[1] += (u2 & 0x000000000001FFFF) << 34
	out[2] = u2 >> 17
	out[2] += (u3 & 0x0000000001FFFFFF) << 26
	out[3] = u3 >> 25
	out[3] += (u4 & 0x00000003FFFFFFFF) << 17
	out[4] = u4 >> 34
	out[4] += (u5 & 0x000003FFFFFFFFFF) << 9
	out[0] += 19 * (u5 >> 42)
	return &out
}
