// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build amd64,!purego

package fpmode

import "golang.org/x/sys/cpu"

// appMXCSR is round-to-nearest, no exception flags set, every
// exception masked.
const appMXCSR = 0x1F80

// precisionFlag is bit 5 of MXCSR, the precision exception sticky
// flag. fe12.Squeeze's carry trick sets it on purpose, so Restore
// ignores it when checking for tampering.
const precisionFlag = 1 << 5

// haveMXCSR mirrors the teacher's internal/radix51 init-time CPU
// feature probe (there: cpu.Initialized && cpu.X86.HasBMI2, gating a
// BMI2 assembly path). Every amd64 target Go supports has SSE2, so
// this is always true in practice; the probe is kept so the amd64
// build tag doesn't silently assume a feature it never checks, and so
// the fallback path below is reachable and testable.
var haveMXCSR = cpu.Initialized && cpu.X86.HasSSE2

//go:noescape
func getMXCSR() uint32

//go:noescape
func setMXCSR(v uint32)

// Replace saves the current MXCSR and overwrites it with appMXCSR. If
// the CPU feature probe didn't confirm SSE2, it falls back to the
// portable no-op behavior of the generic build.
func Replace() Word {
	if !haveMXCSR {
		return 0
	}
	prev := getMXCSR()
	setMXCSR(appMXCSR)
	return Word(prev)
}

// Restore puts back the MXCSR value captured by Replace and reports
// ErrPerturbed if, apart from the precision flag, it no longer reads
// as appMXCSR.
func Restore(saved Word) error {
	if !haveMXCSR {
		return nil
	}
	cur := getMXCSR()
	setMXCSR(uint32(saved))
	if cur&^precisionFlag != appMXCSR {
		return ErrPerturbed
	}
	return nil
}
