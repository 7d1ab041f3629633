/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package verify

import (
	"fmt"
	"strconv"
)

// Kind identifies the rule a fiscal code broke.
type Kind int

const (
	InvalidLength = Kind(iota + 1)
	NonAlphanumericCharacter
	InvalidSurname
	InvalidName
	InvalidBirthYear
	InvalidBirthMonth
	InvalidBirthDayAndGender
	InvalidBirthDayAndGenderRange
	InvalidBirthPlace
	InvalidControlCharacter
)

func (k Kind) String() string {
	switch k {
	case InvalidLength:
		return "InvalidLength"
	case NonAlphanumericCharacter:
		return "NonAlphanumericCharacter"
	case InvalidSurname:
		return "InvalidSurname"
	case InvalidName:
		return "InvalidName"
	case InvalidBirthYear:
		return "InvalidBirthYear"
	case InvalidBirthMonth:
		return "InvalidBirthMonth"
	case InvalidBirthDayAndGender:
		return "InvalidBirthDayAndGender"
	case InvalidBirthDayAndGenderRange:
		return "InvalidBirthDayAndGenderRange"
	case InvalidBirthPlace:
		return "InvalidBirthPlace"
	case InvalidControlCharacter:
		return "InvalidControlCharacter"
	}
	return "Unknown kind: " + strconv.Itoa(int(k))
}

// Error describes the first rule a fiscal code broke. Only the members
// relevant to its Kind are set:
//     InvalidLength                  Length
//     NonAlphanumericCharacter       Index
//     InvalidSurname ... BirthPlace  Field (except the range error)
//     InvalidBirthDayAndGenderRange  Value
//     InvalidControlCharacter        Found, Expected
type Error struct {
	Kind     Kind
	Length   int
	Index    int
	Field    string
	Value    uint64
	Found    byte
	Expected byte
}

// Sentinels for use with errors.Is; an *Error matches the sentinel of its Kind.
var (
	ErrInvalidLength                 = &Error{Kind: InvalidLength}
	ErrNonAlphanumericCharacter      = &Error{Kind: NonAlphanumericCharacter}
	ErrInvalidSurname                = &Error{Kind: InvalidSurname}
	ErrInvalidName                   = &Error{Kind: InvalidName}
	ErrInvalidBirthYear              = &Error{Kind: InvalidBirthYear}
	ErrInvalidBirthMonth             = &Error{Kind: InvalidBirthMonth}
	ErrInvalidBirthDayAndGender      = &Error{Kind: InvalidBirthDayAndGender}
	ErrInvalidBirthDayAndGenderRange = &Error{Kind: InvalidBirthDayAndGenderRange}
	ErrInvalidBirthPlace             = &Error{Kind: InvalidBirthPlace}
	ErrInvalidControlCharacter       = &Error{Kind: InvalidControlCharacter}
)

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidLength:
		return fmt.Sprintf("the fiscal code length should be %d, but is %d",
			CodeLength, e.Length)
	case NonAlphanumericCharacter:
		return fmt.Sprintf("the fiscal code should not contain any non-alphanumeric "+
			"character, but has one at position %d", e.Index)
	case InvalidSurname:
		return fmt.Sprintf("the fiscal code surname part should be 3 letters, "+
			"but is %q", e.Field)
	case InvalidName:
		return fmt.Sprintf("the fiscal code name part should be 3 letters, "+
			"but is %q", e.Field)
	case InvalidBirthYear:
		return fmt.Sprintf("the fiscal code birth year part should be a 2 digit number, "+
			"but is %q", e.Field)
	case InvalidBirthMonth:
		return fmt.Sprintf("the fiscal code birth month part should be 1 of %q, "+
			"but is %q", monthCodes, e.Field)
	case InvalidBirthDayAndGender:
		return fmt.Sprintf("the fiscal code birth day and gender part should be "+
			"a 2 digit number, but is %q", e.Field)
	case InvalidBirthDayAndGenderRange:
		return fmt.Sprintf("the fiscal code birth day and gender part should be "+
			"a 2 digit number in [1,31] or [41,71], but is %d", e.Value)
	case InvalidBirthPlace:
		return fmt.Sprintf("the fiscal code birth place part should be 1 letter "+
			"and 3 digits, but is %q", e.Field)
	case InvalidControlCharacter:
		return fmt.Sprintf("the fiscal code control character is invalid: "+
			"found %q, expected %q", e.Found, e.Expected)
	}
	return "invalid fiscal code: " + e.Kind.String()
}
