/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package verify checks that a string is a well-formed fiscal code with a
// correct control character.
//
// Rules are checked in a fixed order and the first one broken is reported;
// errors are never aggregated:
//     1. 16 characters
//     2. only ASCII letters and digits
//     3. (omocode letters are replaced by their digits for steps 4-9)
//     4. surname: 3 letters
//     5. name: 3 letters
//     6. birth year: 2 digits
//     7. birth month: a month letter
//     8. birth day and gender: 2 digits in [1,31] or [41,71]
//     9. birth place: 1 letter and 3 digits
//    10. control character, computed from the code as given
// The place code is only checked for its shape; whether it names a real
// municipality or country is up to the caller.
package verify

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/charset"
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/checksum"
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/layout"
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/omocode"
	"strconv"
)

// CodeLength is the length of a fiscal code.
const CodeLength = 16

const monthCodes = charset.Months

// fieldChecks are applied, in order, to the fields of the normalized code.
var fieldChecks = []struct {
	field int
	check func(string) error
}{
	{layout.Surname, verifySurname},
	{layout.Name, verifyName},
	{layout.Year, verifyBirthYear},
	{layout.Month, verifyBirthMonth},
	{layout.DayGender, verifyBirthDayAndGender},
	{layout.Place, verifyBirthPlace},
}

// Verify returns code, case preserved, if it's a valid fiscal code, or the
// *Error describing the first rule it broke.
func Verify(code string) (string, error) {
	if len(code) != CodeLength {
		return "", &Error{Kind: InvalidLength, Length: len(code)}
	}

	if err := verifyCharacters(code); err != nil {
		return "", err
	}

	fields := make([]string, layout.Standard.NumFields())
	layout.Standard.ExplodeTo(fields, omocode.Normalize(code))
	for _, fc := range fieldChecks {
		if err := fc.check(fields[fc.field]); err != nil {
			return "", err
		}
	}

	if err := verifyControlCharacter(code); err != nil {
		return "", err
	}
	return code, nil
}

// DayAndGenderInRange returns true if v is a valid day of month for a man
// (1-31) or for a woman (41-71).
func DayAndGenderInRange(v uint64) bool {
	return (1 <= v && v <= 31) || (41 <= v && v <= 71)
}

func verifyCharacters(code string) error {
	for i := 0; i < len(code); i++ {
		if !charset.IsAlphanumeric(code[i]) {
			return &Error{Kind: NonAlphanumericCharacter, Index: i}
		}
	}
	return nil
}

func allLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if !charset.IsLetter(s[i]) {
			return false
		}
	}
	return true
}

func verifySurname(field string) error {
	if len(field) != 3 || !allLetters(field) {
		return &Error{Kind: InvalidSurname, Field: field}
	}
	return nil
}

func verifyName(field string) error {
	if len(field) != 3 || !allLetters(field) {
		return &Error{Kind: InvalidName, Field: field}
	}
	return nil
}

func verifyBirthYear(field string) error {
	if _, err := strconv.ParseUint(field, 10, 32); err != nil {
		return &Error{Kind: InvalidBirthYear, Field: field}
	}
	return nil
}

func verifyBirthMonth(field string) error {
	if len(field) != 1 || !charset.IsMonthCode(field[0]) {
		return &Error{Kind: InvalidBirthMonth, Field: field}
	}
	return nil
}

func verifyBirthDayAndGender(field string) error {
	v, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return &Error{Kind: InvalidBirthDayAndGender, Field: field}
	}
	if !DayAndGenderInRange(v) {
		return &Error{Kind: InvalidBirthDayAndGenderRange, Value: v}
	}
	return nil
}

// IsPlaceCode returns true if s has the shape of a place code: 1 ASCII
// letter and 3 ASCII digits.
func IsPlaceCode(s string) bool {
	return len(s) == 4 && charset.IsLetter(s[0]) &&
		charset.IsDigit(s[1]) && charset.IsDigit(s[2]) && charset.IsDigit(s[3])
}

func verifyBirthPlace(field string) error {
	if !IsPlaceCode(field) {
		return &Error{Kind: InvalidBirthPlace, Field: field}
	}
	return nil
}

func verifyControlCharacter(code string) error {
	expected := checksum.Compute(code)
	if found := code[checksum.Length]; found != expected {
		return &Error{Kind: InvalidControlCharacter, Found: found, Expected: expected}
	}
	return nil
}
