/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package checksum computes the control character of a fiscal code.
package checksum

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/charset"
)

// Length is the number of leading characters that contribute to the checksum.
const Length = 15

// partialSum returns the portion of the checksum that code contributes,
// given that code's first character sits at the 1-indexed position p1.
//
// Like the GS1 check digit, this lets the sum be computed in pieces; the
// control character is Alphabet[sum(parts) % 26]. Only the first Length-p1+1
// characters of code are considered.
func partialSum(code string, p1 int) (sum int) {
	for i := 0; i < len(code) && p1+i <= Length; i++ {
		c := charset.Upper(code[i])
		if (p1+i)&1 == 0 {
			sum += charset.EvenValue(c)
		} else {
			sum += charset.OddValue(c)
		}
	}
	return
}

// Compute returns the control character of code, computed from its first 15
// characters regardless of case.
//
// Characters outside A-Z, a-z and 0-9 contribute nothing; if code is shorter
// than 15 characters, only what's there is summed. Neither happens for codes
// that made it past the first checks of verify.Verify.
func Compute(code string) byte {
	return charset.Letter(partialSum(code, 1) % len(charset.Alphabet))
}

// Valid returns true if code has at least 16 characters and its 16th
// character is exactly the control character of the first 15.
func Valid(code string) bool {
	return len(code) > Length && code[Length] == Compute(code)
}
