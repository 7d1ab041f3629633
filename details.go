/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package fiscalcode

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/charset"
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/encode"
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/layout"
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/omocode"
	"strconv"
	"strings"
	"time"
)

// Details is a fiscal code broken into its fields, with omocode letters
// replaced by their digits and letters in upper case.
//
// Only the surname and name fragments are available, not the full names they
// came from; the birth year has only its last 2 digits.
type Details struct {
	fields  [layout.Check + 1]string
	omocode bool
}

// Decode is a convenience function that verifies raw and returns its Details.
func Decode(raw string) (Details, error) {
	fc, err := New(raw)
	if err != nil {
		return Details{}, err
	}
	return fc.Details(), nil
}

// Details decodes the code's fields.
//
// It'll panic if fc is the zero FiscalCode.
func (fc FiscalCode) Details() Details {
	d := Details{omocode: fc.IsOmocode()}
	layout.Standard.ExplodeTo(d.fields[:], strings.ToUpper(omocode.Normalize(fc.code)))
	return d
}

// Field returns one of the fields, indexed by the layout package constants.
//
// It'll panic if the index is outside the number of fields.
func (d Details) Field(idx int) string {
	return d.fields[idx]
}

// Surname returns the 3-letter surname fragment.
func (d Details) Surname() string {
	return d.fields[layout.Surname]
}

// Name returns the 3-letter name fragment.
func (d Details) Name() string {
	return d.fields[layout.Name]
}

// BirthYear returns the last 2 digits of the year of birth.
func (d Details) BirthYear() int {
	return d.number(layout.Year)
}

// BirthMonth returns the month of birth.
func (d Details) BirthMonth() time.Month {
	m, _ := charset.MonthFromCode(d.fields[layout.Month][0])
	return m
}

// BirthDay returns the day of month of birth, regardless of gender.
func (d Details) BirthDay() int {
	day := d.number(layout.DayGender)
	if day > encode.FemaleDayOffset {
		day -= encode.FemaleDayOffset
	}
	return day
}

// Gender returns the gender encoded with the day of birth.
func (d Details) Gender() Gender {
	if d.number(layout.DayGender) > encode.FemaleDayOffset {
		return Female
	}
	return Male
}

// Place returns the 4-character place of birth code.
func (d Details) Place() string {
	return d.fields[layout.Place]
}

// Control returns the control character as it appears in the code.
func (d Details) Control() byte {
	return d.fields[layout.Check][0]
}

// IsOmocode returns true if the decoded code had omocode letters.
func (d Details) IsOmocode() bool {
	return d.omocode
}

// BirthDate returns the date of birth in the century that places it at or
// before ref, the latest such date. Codes don't record the century, so this
// is a best guess: someone born in 1920 and someone born in 2020 share a code
// prefix.
//
// The result is in UTC. Dates the calendar doesn't have, like February 30th,
// are normalized the way time.Date does.
func (d Details) BirthDate(ref time.Time) time.Time {
	year := ref.Year() - ref.Year()%100 + d.BirthYear()
	date := time.Date(year, d.BirthMonth(), d.BirthDay(), 0, 0, 0, 0, time.UTC)
	if date.After(ref) {
		date = time.Date(year-100, d.BirthMonth(), d.BirthDay(), 0, 0, 0, 0, time.UTC)
	}
	return date
}

// String formats the fields as a "." separated list.
func (d Details) String() string {
	return strings.Join(d.fields[:], ".")
}

func (d Details) number(idx int) int {
	n, _ := strconv.Atoi(d.fields[idx])
	return n
}
