/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package charset holds the fixed lookup tables used to build and check
// fiscal codes: the alphabet, vowels, month letters, the checksum parity
// tables and the omocode letter/digit bijection.
//
// Every table is indexed by ASCII byte value. Bytes outside the table map to
// the zero value, which callers treat as "not a member".
package charset

import "time"

// Alphabet is the 26-letter alphabet used to render checksums and random draws.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Months holds the month letters, January first. They are not contiguous so
// that no month letter can be confused with the day digits that follow it.
const Months = "ABCDEHLMPRST"

// OmocodeLetters holds the letters that stand in for the digits 0-9 at
// omocode positions, indexed by digit value.
const OmocodeLetters = "LMNPQRSTUV"

var (
	// vowels in the name and surname encoding
	vowels = [128]uint8{
		'A': 1, 'E': 1, 'I': 1, 'O': 1, 'U': 1,
		'a': 1, 'e': 1, 'i': 1, 'o': 1, 'u': 1,
	}

	// monthIndex maps a month letter to its month number (1-12)
	monthIndex = [128]uint8{
		'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'H': 6,
		'L': 7, 'M': 8, 'P': 9, 'R': 10, 'S': 11, 'T': 12,
	}

	// omocodeDigits maps an omocode letter, in either case, to digit+1 so
	// that 0 still means "no mapping".
	omocodeDigits = [128]uint8{
		'L': 1, 'M': 2, 'N': 3, 'P': 4, 'Q': 5, 'R': 6, 'S': 7, 'T': 8, 'U': 9, 'V': 10,
		'l': 1, 'm': 2, 'n': 3, 'p': 4, 'q': 5, 'r': 6, 's': 7, 't': 8, 'u': 9, 'v': 10,
	}

	// evenValues are the checksum contributions of characters in even
	// (1-indexed) positions; digits alias the letter of the same index.
	evenValues = [128]uint8{
		'A': 0, 'B': 1, 'C': 2, 'D': 3, 'E': 4, 'F': 5, 'G': 6, 'H': 7, 'I': 8,
		'J': 9, 'K': 10, 'L': 11, 'M': 12, 'N': 13, 'O': 14, 'P': 15, 'Q': 16,
		'R': 17, 'S': 18, 'T': 19, 'U': 20, 'V': 21, 'W': 22, 'X': 23, 'Y': 24,
		'Z': 25,
		'0': 0, '1': 1, '2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	}

	// oddValues are the checksum contributions of characters in odd
	// (1-indexed) positions.
	oddValues = [128]uint8{
		'A': 1, 'B': 0, 'C': 5, 'D': 7, 'E': 9, 'F': 13, 'G': 15, 'H': 17, 'I': 19,
		'J': 21, 'K': 2, 'L': 4, 'M': 18, 'N': 20, 'O': 11, 'P': 3, 'Q': 6,
		'R': 8, 'S': 12, 'T': 14, 'U': 16, 'V': 10, 'W': 22, 'X': 25, 'Y': 24,
		'Z': 23,
		'0': 1, '1': 0, '2': 5, '3': 7, '4': 9, '5': 13, '6': 15, '7': 17, '8': 19, '9': 21,
	}
)

// IsLetter returns true if c is an ASCII letter of either case.
func IsLetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

// IsDigit returns true if c is an ASCII digit.
func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsAlphanumeric returns true if c is an ASCII letter or digit.
func IsAlphanumeric(c byte) bool {
	return IsLetter(c) || IsDigit(c)
}

// IsVowel returns true if c is one of AEIOU, in either case.
func IsVowel(c byte) bool {
	return c < 128 && vowels[c] == 1
}

// Upper returns the upper-case form of an ASCII letter; other bytes are
// returned as they are.
func Upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// Letter returns the i'th letter of the alphabet.
//
// It panics if i isn't in [0, 25].
func Letter(i int) byte {
	return Alphabet[i]
}

// MonthCode returns the letter for the month m.
//
// It panics if m isn't in [January, December].
func MonthCode(m time.Month) byte {
	return Months[m-1]
}

// IsMonthCode returns true if c is one of the upper-case month letters.
func IsMonthCode(c byte) bool {
	return c < 128 && monthIndex[c] != 0
}

// MonthFromCode returns the month a month letter stands for, or false if c
// isn't a month letter.
func MonthFromCode(c byte) (time.Month, bool) {
	if !IsMonthCode(c) {
		return 0, false
	}
	return time.Month(monthIndex[c]), true
}

// OmocodeDigit returns the digit an omocode letter stands for. The letter may
// be either case. If c isn't an omocode letter, it returns false.
func OmocodeDigit(c byte) (byte, bool) {
	if c >= 128 || omocodeDigits[c] == 0 {
		return 0, false
	}
	return '0' + omocodeDigits[c] - 1, true
}

// OmocodeLetter returns the upper-case omocode letter that stands in for the
// digit c, or false if c isn't a digit.
func OmocodeLetter(c byte) (byte, bool) {
	if !IsDigit(c) {
		return 0, false
	}
	return OmocodeLetters[c-'0'], true
}

// EvenValue returns the checksum contribution of c in an even position. The
// caller is expected to pass upper-case letters; anything outside A-Z and 0-9
// contributes 0.
func EvenValue(c byte) int {
	if c >= 128 {
		return 0
	}
	return int(evenValues[c])
}

// OddValue returns the checksum contribution of c in an odd position. The
// caller is expected to pass upper-case letters; anything outside A-Z and 0-9
// contributes 0.
func OddValue(c byte) int {
	if c >= 128 {
		return 0
	}
	return int(oddValues[c])
}
