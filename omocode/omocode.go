/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package omocode converts between a fiscal code and its omocode variants.
//
// When two people would receive the same fiscal code, the later one gets a
// variant in which some of the 7 digits are replaced by letters:
//     0=L 1=M 2=N 3=P 4=Q 5=R 6=S 7=T 8=U 9=V
// Substitutions start from the rightmost digit (the last place digit) and
// move left, one digit at a time, and the control character is recomputed
// for the result.
package omocode

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/charset"
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/checksum"
	"github.com/pkg/errors"
)

// Positions are the 0-indexed positions of the digits that may be replaced,
// in the order substitutions are applied.
var Positions = [7]int{14, 13, 12, 10, 9, 7, 6}

// minLength is the shortest code every position fits in.
const minLength = 15

// Normalize returns code with the omocode letters replaced by the digits they
// stand for.
//
// Positions are visited in substitution order. The walk stops at the first
// position that doesn't hold a letter, keeping the replacements made so far.
// If a position holds a letter that isn't an omocode letter, code is returned
// unmodified. Letters of either case are recognized; the control character
// is left alone. Codes too short to hold every position are returned as-is.
//
// Normalize is idempotent.
func Normalize(code string) string {
	if len(code) < minLength {
		return code
	}

	var b []byte
	for _, pos := range Positions {
		c := code[pos]
		if !charset.IsLetter(c) {
			break
		}
		d, ok := charset.OmocodeDigit(c)
		if !ok {
			return code
		}
		if b == nil {
			b = []byte(code)
		}
		b[pos] = d
	}

	if b == nil {
		return code
	}
	return string(b)
}

// IsOmocode returns true if Normalize would change code.
func IsOmocode(code string) bool {
	return Normalize(code) != code
}

// Enumerate returns the 7 omocode variants of a normalized code.
//
// The n'th variant has the first n Positions replaced by their letters and a
// recomputed control character, so every variant normalizes back to code's
// digits. The first 15 characters of code must be those of a normalized code,
// i.e., every position holds a digit; otherwise, this returns an error.
// Characters past the 16th are dropped.
func Enumerate(code string) ([]string, error) {
	if len(code) < minLength {
		return nil, errors.Errorf("code must have at least %d characters, "+
			"but has %d", minLength, len(code))
	}

	b := make([]byte, checksum.Length+1)
	copy(b, code[:checksum.Length])

	variants := make([]string, 0, len(Positions))
	for _, pos := range Positions {
		l, ok := charset.OmocodeLetter(b[pos])
		if !ok {
			return nil, errors.Errorf("position %d must be a digit, "+
				"but is %q; normalize the code first", pos, b[pos])
		}
		b[pos] = l
		b[checksum.Length] = checksum.Compute(string(b[:checksum.Length]))
		variants = append(variants, string(b))
	}
	return variants, nil
}
