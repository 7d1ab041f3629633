/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package fiscalcode

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/checksum"
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/encode"
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/omocode"
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/verify"
	"github.com/pkg/errors"
	"strings"
)

// Gender is the gender encoded along with the day of birth.
type Gender = encode.Gender

const (
	Male   = encode.Male
	Female = encode.Female
)

// FiscalCode is a valid 16-character fiscal code.
//
// The zero value is not valid; get one from New, Generate or GenerateRandom.
type FiscalCode struct {
	code string
}

// New returns raw as a FiscalCode if it's valid. Otherwise, it returns the
// *verify.Error describing the first rule raw broke.
//
// Case is preserved, and codes with omocode letters are accepted.
func New(raw string) (FiscalCode, error) {
	code, err := verify.Verify(raw)
	if err != nil {
		return FiscalCode{}, err
	}
	return FiscalCode{code: code}, nil
}

// MustNew is like New, but panics if raw isn't valid.
func MustNew(raw string) FiscalCode {
	fc, err := New(raw)
	if err != nil {
		panic(err)
	}
	return fc
}

// String returns the code as it was given or generated.
func (fc FiscalCode) String() string {
	return fc.code
}

// IsOmocode returns true if the code has letters standing in for digits.
func (fc FiscalCode) IsOmocode() bool {
	return omocode.IsOmocode(fc.code)
}

// Canonical returns the upper-case code with every omocode letter replaced
// by its digit and the control character recomputed to match.
//
// The omocode variants of a code all share its canonical form.
func (fc FiscalCode) Canonical() FiscalCode {
	if fc.code == "" {
		return fc
	}
	b := []byte(strings.ToUpper(omocode.Normalize(fc.code)))
	b[checksum.Length] = checksum.Compute(string(b[:checksum.Length]))
	return FiscalCode{code: string(b)}
}

// Equivalent returns true if both codes have the same canonical form, i.e.,
// they differ only in case or omocode substitutions.
func (fc FiscalCode) Equivalent(other FiscalCode) bool {
	return fc.Canonical() == other.Canonical()
}

// Omocodes returns the 7 omocode variants of the code's canonical form. The
// n'th variant has n digits replaced, starting from the last place digit.
//
// Every variant is itself a valid FiscalCode. If fc is already an omocode,
// one of the variants is fc in upper case.
func (fc FiscalCode) Omocodes() ([]FiscalCode, error) {
	if fc.code == "" {
		return nil, errors.New("fiscal code is empty")
	}
	variants, err := omocode.Enumerate(fc.Canonical().code)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to enumerate omocodes of %s", fc.code)
	}

	codes := make([]FiscalCode, len(variants))
	for i, v := range variants {
		codes[i] = FiscalCode{code: v}
	}
	return codes, nil
}
