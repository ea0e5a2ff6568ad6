// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build !amd64 purego

package fpmode

// Replace is a no-op on platforms without an MXCSR-equivalent control
// word exposed to Go. Go's float64 arithmetic is specified to round
// to nearest regardless, so there is nothing to pin outside of amd64;
// there is also nothing to detect tampering against.
func Replace() Word {
	return 0
}

// Restore always succeeds on this build.
func Restore(saved Word) error {
	return nil
}
