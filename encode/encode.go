/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package encode turns personal data into the leading fragments of a fiscal
// code: three letters each for surname and name, and five characters for the
// birth date and gender.
package encode

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/charset"
	"github.com/pkg/errors"
	"strconv"
	"time"
)

const (
	// NamePartLen is the length of the surname and name fragments.
	NamePartLen = 3
	// DateGenderLen is the length of the birth date and gender fragment.
	DateGenderLen = 5

	// FemaleDayOffset is added to the day of month of women.
	FemaleDayOffset = 40

	padding = 'X'
)

// Gender is the gender encoded along with the day of birth.
type Gender int

const (
	Male   = Gender(0)
	Female = Gender(1)
)

// ParseGender accepts "M" or "F", in either case.
func ParseGender(s string) (Gender, error) {
	switch s {
	case "M", "m":
		return Male, nil
	case "F", "f":
		return Female, nil
	}
	return 0, errors.Errorf("gender must be M or F, but is %q", s)
}

// IsValid returns false if g is neither Male nor Female.
func (g Gender) IsValid() bool {
	return g == Male || g == Female
}

func (g Gender) String() string {
	switch g {
	case Male:
		return "M"
	case Female:
		return "F"
	}
	return "Unknown gender: " + strconv.Itoa(int(g))
}

// NamePart reduces a name or surname to its 3-letter fragment: its consonants
// in order, then its vowels in order, then 'X's, taking the first 3.
//
// The result is upper-case. Anything that isn't an ASCII letter is skipped;
// callers wanting to reject such input should validate it first.
func NamePart(value string) string {
	var consonants, vowels []byte
	for i := 0; i < len(value); i++ {
		c := charset.Upper(value[i])
		switch {
		case !charset.IsLetter(c):
		case charset.IsVowel(c):
			vowels = append(vowels, c)
		default:
			consonants = append(consonants, c)
		}
	}

	part := consonants
	if len(part) < NamePartLen {
		part = append(part, vowels...)
	}
	for len(part) < NamePartLen {
		part = append(part, padding)
	}
	return string(part[:NamePartLen])
}

// DateGender returns the 5-character fragment for a birth date and gender:
// the year's last 2 digits, the month letter, and the day of month, plus 40
// for women, as 2 digits.
//
// Only the date's year, month and day are used; its time zone and clock are
// ignored. It returns an error if the gender is neither Male nor Female, or
// the year is negative.
func DateGender(date time.Time, g Gender) (string, error) {
	year, month, day := date.Date()
	if year < 0 {
		return "", errors.Errorf("birth year must not be negative, but is %d", year)
	}

	switch g {
	case Male:
	case Female:
		day += FemaleDayOffset
	default:
		return "", errors.Errorf("invalid gender %d", int(g))
	}

	return fmt.Sprintf("%02d%c%02d", year%100, charset.MonthCode(month), day), nil
}
