// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve13318 implements constant-time scalar multiplication on
// the short Weierstrass curve E : y^2 = x^3 - 3x + 13318 over
// GF(2^255 - 19).
//
// Points are represented on the wire as 64-byte (x, y) affine
// encodings, 32 little-endian bytes each; the point at infinity is
// the all-zero 64-byte string. ScalarMult is the package's single
// entry point: it decodes a point, validates it lies on the curve,
// and multiplies it by a 255-bit scalar using a fixed 5-bit signed-
// window ladder whose control flow and memory access pattern never
// depend on the scalar's value.
package curve13318
