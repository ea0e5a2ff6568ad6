// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve13318

import (
	"math/big"
	"testing"
)

// naiveDoubleAndAdd is an independent, non-constant-time MSB-first
// double-and-add used only to cross-check the windowed ladder.
func naiveDoubleAndAdd(k *big.Int, p *ge) ge {
	var q ge
	q.neutral()
	for i := 254; i >= 0; i-- {
		double(&q, &q)
		if k.Bit(i) == 1 {
			add(&q, &q, p)
		}
	}
	return q
}

// TestScalarMultIdentity covers S1: [1]P = P exactly, byte for byte.
func TestScalarMultIdentity(t *testing.T) {
	s := basePointBytes(t)
	var key [32]byte
	key[0] = 1

	var out [64]byte
	if err := ScalarMult(&out, &key, &s); err != nil {
		t.Fatalf("ScalarMult: %v", err)
	}
	if out != s {
		t.Fatalf("[1]P = %x, want %x", out, s)
	}
}

// TestScalarMultZero covers S2: [0]P = infinity.
func TestScalarMultZero(t *testing.T) {
	s := basePointBytes(t)
	var key [32]byte

	var out [64]byte
	if err := ScalarMult(&out, &key, &s); err != nil {
		t.Fatalf("ScalarMult: %v", err)
	}
	var want [64]byte
	if out != want {
		t.Fatalf("[0]P = %x, want all zero", out)
	}
}

// TestScalarMultDouble covers S3: [2]P = double(P).
func TestScalarMultDouble(t *testing.T) {
	s := basePointBytes(t)
	var p, want ge
	if !p.fromBytes(&s) {
		t.Fatalf("fromBytes rejected the base point")
	}
	double(&want, &p)

	var key [32]byte
	key[0] = 2

	var out [64]byte
	if err := ScalarMult(&out, &key, &s); err != nil {
		t.Fatalf("ScalarMult: %v", err)
	}
	if out != want.toBytes() {
		t.Fatalf("[2]P = %x, want %x", out, want.toBytes())
	}
}

// TestScalarMultRejectsOffCurvePoint covers S4.
func TestScalarMultRejectsOffCurvePoint(t *testing.T) {
	var in [64]byte
	in[0] = 1
	in[32] = 1
	var key [32]byte
	key[0] = 1

	var out [64]byte
	err := ScalarMult(&out, &key, &in)
	if err != ErrInvalidPoint {
		t.Fatalf("ScalarMult((1,1)) error = %v, want ErrInvalidPoint", err)
	}
}

// TestScalarMultInfinityInput covers S5: any nonzero scalar applied to
// the encoded point at infinity yields the encoded point at infinity.
func TestScalarMultInfinityInput(t *testing.T) {
	var in [64]byte // (0,0)
	var key [32]byte
	for i := range key {
		key[i] = 0xAB
	}

	var out [64]byte
	if err := ScalarMult(&out, &key, &in); err != nil {
		t.Fatalf("ScalarMult: %v", err)
	}
	var want [64]byte
	if out != want {
		t.Fatalf("[k]infinity = %x, want all zero", out)
	}
}

// TestScalarMultLargeScalar covers S6: the top scalar bit is ignored,
// and the windowed ladder's treatment of the topmost 5-bit window
// (documented in spec.md's Open Questions) makes an all-ones low 255
// bits evaluate to [2^254-1]P rather than the naively expected
// [2^255-1]P. This is the reference's own documented behavior, not a
// bug this package should paper over.
func TestScalarMultLargeScalar(t *testing.T) {
	s := basePointBytes(t)
	var p ge
	if !p.fromBytes(&s) {
		t.Fatalf("fromBytes rejected the base point")
	}

	var key [32]byte
	for i := range key {
		key[i] = 0xFF
	}
	key[31] = 0x7F // top bit cleared by ScalarMult itself regardless

	var out [64]byte
	if err := ScalarMult(&out, &key, &s); err != nil {
		t.Fatalf("ScalarMult: %v", err)
	}

	effective := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 254), big.NewInt(1))
	want := naiveDoubleAndAdd(effective, &p)
	if out != want.toBytes() {
		t.Fatalf("[2^255-1]P (windowed) = %x, want [2^254-1]P = %x", out, want.toBytes())
	}
}

// TestScalarMultLinearitySmallScalars covers the universal property
// [k+k']P = [k]P + [k']P for small k, k', cross-checked with the
// package's own group addition (an independent code path from the
// ladder: ladder output is decoded back to a ge and combined with
// add(), not recomputed by the ladder itself).
func TestScalarMultLinearitySmallScalars(t *testing.T) {
	s := basePointBytes(t)
	scalars := []uint16{0, 1, 2, 3, 5, 8, 13, 21, 34, 55}

	for _, k1 := range scalars {
		for _, k2 := range scalars {
			sum := k1 + k2
			if sum > 255 {
				continue
			}

			var key1, key2, keySum [32]byte
			key1[0] = byte(k1)
			key2[0] = byte(k2)
			keySum[0] = byte(sum)

			var o1, o2, oSum [64]byte
			if err := ScalarMult(&o1, &key1, &s); err != nil {
				t.Fatalf("ScalarMult(%d): %v", k1, err)
			}
			if err := ScalarMult(&o2, &key2, &s); err != nil {
				t.Fatalf("ScalarMult(%d): %v", k2, err)
			}
			if err := ScalarMult(&oSum, &keySum, &s); err != nil {
				t.Fatalf("ScalarMult(%d): %v", sum, err)
			}

			var p1, p2, expected, got ge
			if !p1.fromBytes(&o1) || !p2.fromBytes(&o2) || !got.fromBytes(&oSum) {
				t.Fatalf("decoding a ScalarMult output rejected it as off-curve")
			}
			add(&expected, &p1, &p2)

			if expected.toBytes() != got.toBytes() {
				t.Fatalf("[%d]P + [%d]P != [%d]P", k1, k2, sum)
			}
		}
	}
}

// TestScalarMultTopBitIgnored checks that setting bit 255 of the
// scalar has no effect on the result.
func TestScalarMultTopBitIgnored(t *testing.T) {
	s := basePointBytes(t)
	var key, keyWithTopBit [32]byte
	key[0] = 7
	keyWithTopBit[0] = 7
	keyWithTopBit[31] = 0x80

	var out, outWithTopBit [64]byte
	if err := ScalarMult(&out, &key, &s); err != nil {
		t.Fatalf("ScalarMult: %v", err)
	}
	if err := ScalarMult(&outWithTopBit, &keyWithTopBit, &s); err != nil {
		t.Fatalf("ScalarMult: %v", err)
	}
	if out != outWithTopBit {
		t.Fatalf("setting the top scalar bit changed the result: %x vs %x", out, outWithTopBit)
	}
}
