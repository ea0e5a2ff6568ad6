// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fpmode pins the CPU's floating-point control state for the
// duration of a curve13318 scalar multiplication.
//
// fe12 arithmetic depends on round-to-nearest-ties-to-even rounding
// with all exceptions masked, matching the app MXCSR value 0x1F80:
// round-to-nearest, no flags raised, every exception masked. A caller
// that has altered this state (via cgo, a signal handler, or another
// library sharing the OS thread) could otherwise silently corrupt
// results without any error at all. Replace saves and overwrites the
// control word; Restore puts the caller's value back and reports
// whether the control word was still intact at that overwritten
// value, ignoring the precision-exception flag, which our own rounding
// trick sets on purpose.
package fpmode

import "errors"

// ErrPerturbed is returned by Restore when the floating-point control
// word was modified during the computation it guarded.
var ErrPerturbed = errors.New("fpmode: floating-point control word was perturbed during computation")

// Word is an opaque snapshot of the floating-point control state,
// returned by Replace and consumed by Restore.
type Word uint32
