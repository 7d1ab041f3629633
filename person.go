/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package fiscalcode

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/charset"
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/verify"
	"github.com/pkg/errors"
	"time"
)

// Person holds the data a fiscal code is derived from.
type Person struct {
	Name      string
	Surname   string
	Birthdate time.Time
	Gender    Gender
	// Place is the 4-character code of the municipality or foreign country
	// of birth: 1 letter and 3 digits. Only its shape is checked.
	Place string
}

// NewPerson returns a Person with the given values, or an error if they
// aren't consistent with a fiscal code. In that case, the Person is still
// returned, but Generate will refuse it.
func NewPerson(name, surname string, birthdate time.Time, gender Gender, place string) (Person, error) {
	p := Person{
		Name:      name,
		Surname:   surname,
		Birthdate: birthdate,
		Gender:    gender,
		Place:     place,
	}
	return p, p.Validate()
}

// Validate returns an error if the name or surname is empty or has anything
// but ASCII letters, the birth date is missing or before year 0, the gender is
// neither Male nor Female, or the place isn't 1 letter followed by 3 digits.
//
// Names with spaces, apostrophes or accents are rejected rather than
// silently stripped; transliterating them is up to the caller.
func (p Person) Validate() error {
	if err := validateNamePart("name", p.Name); err != nil {
		return err
	}
	if err := validateNamePart("surname", p.Surname); err != nil {
		return err
	}
	if p.Birthdate.IsZero() {
		return errors.New("birthdate is missing")
	}
	if p.Birthdate.Year() < 0 {
		return errors.Errorf("birthdate year must not be negative, but is %d",
			p.Birthdate.Year())
	}
	if !p.Gender.IsValid() {
		return errors.Errorf("gender must be Male or Female, but is %s", p.Gender)
	}
	if !verify.IsPlaceCode(p.Place) {
		return errors.Errorf("place must be 1 letter and 3 digits, but is %q", p.Place)
	}
	return nil
}

func validateNamePart(field, value string) error {
	if value == "" {
		return errors.Errorf("%s is empty", field)
	}
	for i := 0; i < len(value); i++ {
		if !charset.IsLetter(value[i]) {
			return errors.Errorf("%s may only contain ASCII letters, "+
				"but %q has %q at position %d", field, value, value[i], i)
		}
	}
	return nil
}
