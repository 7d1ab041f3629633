/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package encode

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"testing"
	"time"
)

func TestNamePart(t *testing.T) {
	for i, tt := range []struct {
		name, value, part string
	}{
		{"three consonants", "SUCCHIO", "SCC"},
		{"more consonants", "GIOVANNI", "GVN"},
		{"consonants first", "PLUTO", "PLT"},
		{"vowels fill", "PI", "PIX"},
		{"vowel order kept", "MARIO", "MRA"},
		{"one consonant", "EVA", "VEA"},
		{"only vowels", "AI", "AIX"},
		{"single vowel", "O", "OXX"},
		{"empty", "", "XXX"},
		{"lower case", "rossi", "RSS"},
		{"mixed case", "dE sAnTiS", "DSN"},
		{"non letters skipped", "D'ANGELO", "DNG"},
		{"only X", "XX", "XXX"},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			expect.WrapT(t).ShouldBeEqual(NamePart(tt.value), tt.part)
		})
	}
}

func TestDateGender(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	for i, tt := range []struct {
		name   string
		date   time.Time
		gender Gender
		part   string
	}{
		{"female", date(1998, time.July, 8), Female, "98L48"},
		{"male", date(1998, time.July, 8), Male, "98L08"},
		{"january", date(2023, time.January, 7), Male, "23A07"},
		{"october female", date(2022, time.October, 2), Female, "22R42"},
		{"december 31st", date(1974, time.December, 31), Male, "74T31"},
		{"female 31st", date(1974, time.December, 31), Female, "74T71"},
		{"year 2000", date(2000, time.June, 1), Female, "00H41"},
		{"year 1905", date(1905, time.August, 15), Male, "05M15"},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			part := w.ShouldHaveResult(DateGender(tt.date, tt.gender)).(string)
			w.ShouldBeEqual(part, tt.part)
			w.ShouldBeEqual(len(part), DateGenderLen)
		})
	}
}

func TestDateGender_ignoresClockAndZone(t *testing.T) {
	w := expect.WrapT(t)
	rome := time.FixedZone("CET", 3600)
	d := time.Date(1980, time.January, 1, 23, 59, 0, 0, rome)
	w.ShouldBeEqual(w.ShouldHaveResult(DateGender(d, Male)).(string), "80A01")
}

func TestDateGender_invalid(t *testing.T) {
	w := expect.WrapT(t)
	d := time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)
	w.ShouldHaveError(DateGender(d, Gender(2)))
	w.ShouldHaveError(DateGender(d, Gender(-1)))
	w.ShouldHaveError(DateGender(time.Date(-5, time.January, 1, 0, 0, 0, 0, time.UTC), Male))
}

func TestGender(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldBeEqual(w.ShouldHaveResult(ParseGender("M")).(Gender), Male)
	w.ShouldBeEqual(w.ShouldHaveResult(ParseGender("f")).(Gender), Female)
	w.ShouldHaveError(ParseGender("X"))
	w.ShouldHaveError(ParseGender(""))

	w.ShouldBeEqual(Male.String(), "M")
	w.ShouldBeEqual(Female.String(), "F")
	w.ShouldContainStr(Gender(7).String(), "Unknown")
	w.ShouldBeTrue(Female.IsValid())
	w.ShouldBeFalse(Gender(3).IsValid())
}
