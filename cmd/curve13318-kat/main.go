// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command curve13318-kat replays known-answer scalar multiplication
// vectors and optionally benchmarks the ladder over a fixed input, the
// Go analogue of the excluded bench.c harness (spec.md §1 places the
// benchmarking harness itself out of the package's correctness scope;
// this command is the external collaborator that exercises it).
//
// Each KAT line on stdin is "key point [want]", all hex-encoded: a
// 32-byte scalar, a 64-byte affine point, and an optional 64-byte
// expected output. A bare dash ("-") in place of want records a
// vector that is expected to fail with curve13318.ErrInvalidPoint.
// With no input, curve13318-kat replays the six scenarios S1-S6 from
// spec.md §8.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dsprenkels/curve13318"
)

func main() {
	bench := flag.Bool("bench", false, "report wall-clock timing for each vector instead of just pass/fail")
	count := flag.Int("count", 1, "number of times to repeat each vector when -bench is set")
	flag.Parse()

	var failed bool
	if isPipe(os.Stdin) {
		failed = runFromReader(os.Stdin, *bench, *count)
	} else {
		failed = runBuiltinVectors(*bench, *count)
	}
	if failed {
		os.Exit(1)
	}
}

func isPipe(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}

type vector struct {
	name    string
	key     [32]byte
	in      [64]byte
	want    *[64]byte // nil means "any success"; ignored when invalid is set
	invalid bool      // true means ScalarMult is expected to return ErrInvalidPoint
}

// basePointY is the affine y-coordinate used throughout spec scenario
// S1-S6: x = 0.
const basePointY = "b32b6af7ceb0c94d89e07ab04c5d1d45be89116769acecace148f3075e80f011"

func builtinVectors() []vector {
	var p [64]byte
	yb, err := hex.DecodeString(basePointY)
	if err != nil {
		panic(err)
	}
	copy(p[32:], yb)

	s1 := vector{name: "S1 [1]P = P", in: p, want: &p}
	s1.key[0] = 1

	s2 := vector{name: "S2 [0]P = infinity"}
	s2.in = p
	var zero [64]byte
	s2.want = &zero

	s3 := vector{name: "S3 [2]P", in: p}
	s3.key[0] = 2

	var offCurve [64]byte
	offCurve[0] = 1
	offCurve[32] = 1
	s4 := vector{name: "S4 invalid point", in: offCurve, invalid: true}
	s4.key[0] = 1

	s5 := vector{name: "S5 infinity input"}
	for i := range s5.key {
		s5.key[i] = 0xAB
	}
	s5.want = &zero

	s6 := vector{name: "S6 top bit cleared", in: p}
	for i := range s6.key {
		s6.key[i] = 0xFF
	}

	return []vector{s1, s2, s3, s4, s5, s6}
}

func runBuiltinVectors(bench bool, count int) bool {
	var failed bool
	for _, v := range builtinVectors() {
		if !runVector(v, bench, count) {
			failed = true
		}
	}
	return failed
}

func runVector(v vector, bench bool, count int) bool {
	var out [64]byte
	var elapsed time.Duration
	var err error

	for i := 0; i < count; i++ {
		start := time.Now()
		err = curve13318.ScalarMult(&out, &v.key, &v.in)
		elapsed += time.Since(start)
	}

	if v.invalid {
		if err != curve13318.ErrInvalidPoint {
			fmt.Printf("FAIL %s: got err=%v, want ErrInvalidPoint\n", v.name, err)
			return false
		}
		fmt.Printf("ok   %s: rejected as expected\n", v.name)
		return true
	}

	if err != nil {
		fmt.Printf("FAIL %s: ScalarMult: %v\n", v.name, err)
		return false
	}
	if v.want != nil && out != *v.want {
		fmt.Printf("FAIL %s: out=%x want=%x\n", v.name, out, *v.want)
		return false
	}

	if bench {
		fmt.Printf("ok   %s: %s/op\n", v.name, (elapsed / time.Duration(count)).String())
	} else {
		fmt.Printf("ok   %s\n", v.name)
	}
	return true
}

func runFromReader(r io.Reader, bench bool, count int) bool {
	scanner := bufio.NewScanner(r)
	var failed bool
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := parseLine(line)
		if err != nil {
			fmt.Printf("FAIL line %d: %v\n", lineNo, err)
			failed = true
			continue
		}
		v.name = fmt.Sprintf("line %d", lineNo)
		if !runVector(v, bench, count) {
			failed = true
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Printf("FAIL: reading input: %v\n", err)
		failed = true
	}
	return failed
}

func parseLine(line string) (vector, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return vector{}, fmt.Errorf("expected \"key point [want]\", got %d fields", len(fields))
	}

	var v vector
	keyB, err := hex.DecodeString(fields[0])
	if err != nil || len(keyB) != 32 {
		return vector{}, fmt.Errorf("key: want 32 hex-encoded bytes: %v", err)
	}
	copy(v.key[:], keyB)

	inB, err := hex.DecodeString(fields[1])
	if err != nil || len(inB) != 64 {
		return vector{}, fmt.Errorf("point: want 64 hex-encoded bytes: %v", err)
	}
	copy(v.in[:], inB)

	if len(fields) == 3 {
		if fields[2] == "-" {
			v.invalid = true
		} else {
			wantB, err := hex.DecodeString(fields[2])
			if err != nil || len(wantB) != 64 {
				return vector{}, fmt.Errorf("want: want 64 hex-encoded bytes: %v", err)
			}
			var want [64]byte
			copy(want[:], wantB)
			v.want = &want
		}
	}

	return v, nil
}
