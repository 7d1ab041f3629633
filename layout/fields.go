/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package layout

import (
	"fmt"
	"github.com/pkg/errors"
	"io"
	"strconv"
	"strings"
)

// FieldExploder explodes a code into a series of consecutive fields of
// predefined character widths.
type FieldExploder struct {
	length     int // sum of all widths
	extractors []FieldExtractor
}

// NewFieldExploder returns a new FieldExploder that explodes codes into a
// series of consecutive fields according to the given widths.
func NewFieldExploder(widths []int) (FieldExploder, error) {
	exp := FieldExploder{}

	if err := exp.SetWidths(widths); err != nil {
		return exp, err
	}

	return exp, nil
}

// Explode returns the code's fields, in order.
//
// Characters past the exploder's Length are ignored.
func (exp FieldExploder) Explode(code string) ([]string, error) {
	if len(code) < exp.length {
		return nil, errors.Errorf("invalid code length %d; expected %d characters",
			len(code), exp.length)
	}

	fields := make([]string, len(exp.extractors))
	exp.ExplodeTo(fields, code)
	return fields, nil
}

// ExplodeTo explodes the code into the dst slice.
//
// If there aren't enough destination strings, or the code is too short,
// ExplodeTo will panic.
func (exp FieldExploder) ExplodeTo(dst []string, code string) {
	if len(dst) < len(exp.extractors) {
		panic(fmt.Sprintf("not enough destination strings (%d) to "+
			"extract %d fields", len(dst), len(exp.extractors)))
	}
	for idx, fe := range exp.extractors {
		// panics if len(code) < fe.End()
		dst[idx] = fe.Extract(code)
	}
}

// Field returns the idx'th field of code.
//
// It panics if idx is outside the number of fields or code is too short.
func (exp FieldExploder) Field(code string, idx int) string {
	return exp.extractors[idx].Extract(code)
}

// Extractor returns the FieldExtractor of the idx'th field.
func (exp FieldExploder) Extractor(idx int) FieldExtractor {
	return exp.extractors[idx]
}

// FieldReader uses a FieldExploder to return consecutive fields from an
// underlying code.
type FieldReader struct {
	exp   FieldExploder
	field int
	code  string
}

// NewFieldReader creates a new FieldReader around a code using the
// FieldExploder.
func (exp FieldExploder) NewFieldReader(code string) (*FieldReader, error) {
	fr := &FieldReader{exp: exp}
	return fr, fr.SetCode(code)
}

// Reset resets the reader so that future calls to Next start at field 0.
func (r *FieldReader) Reset() {
	r.field = 0
}

// SetCode changes the reader's underlying code, resetting it in the process.
func (r *FieldReader) SetCode(code string) error {
	if len(code) < r.exp.length {
		return errors.Errorf("not enough characters: this exploder needs "+
			"at least %d characters, but code has only %d", r.exp.length, len(code))
	}
	r.code = code
	r.field = 0
	return nil
}

// Next returns the reader's current field and advances the field index so
// that the next call returns the next field.
//
// After all fields have been read, subsequent calls return "", io.EOF. Use
// SetCode or Reset to make use of this reader again.
func (r *FieldReader) Next() (string, error) {
	if r.field >= r.exp.NumFields() {
		return "", io.EOF
	}
	s := r.exp.extractors[r.field].Extract(r.code)
	r.field++
	return s, nil
}

// NumFields returns the number of fields this exploder has.
func (exp FieldExploder) NumFields() int {
	return len(exp.extractors)
}

// Length returns the number of characters covered by all fields.
func (exp FieldExploder) Length() int {
	return exp.length
}

// Widths returns a copy of this exploder's field widths.
func (exp FieldExploder) Widths() []int {
	widths := make([]int, len(exp.extractors))
	for i, fe := range exp.extractors {
		widths[i] = fe.Length()
	}
	return widths
}

// SplitWidths is a helper function for validating and converting a slice of
// field widths from a configuration string delimited by a particular delimiter.
//
// It splits the string on the delimiter, trims spaces around entries, converts
// the elements into ints, and returns the result. The purpose of this function
// is to allow calls like:
//     w, err := SplitWidths("3.3.2.1.2.4.1", ".")
//     if err != nil {
//         return err
//     }
//     NewFieldExploder(w)
func SplitWidths(conf, delim string) ([]int, error) {
	var r []int
	for i, wStr := range strings.Split(conf, delim) {
		wStr = strings.TrimSpace(wStr)
		if wStr == "" {
			return nil, errors.Errorf("width %d is empty", i)
		}
		w, err := strconv.Atoi(wStr)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to convert width %d", i)
		}
		r = append(r, w)
	}
	return r, nil
}

// SetWidths sets the exploder's expected field widths.
func (exp *FieldExploder) SetWidths(widths []int) error {
	if len(widths) == 0 {
		return errors.New("widths slice is empty")
	}

	length := 0
	extractors := make([]FieldExtractor, len(widths))
	for i, w := range widths {
		if w <= 0 {
			return errors.Errorf("widths must be >0, but width %d is %d", i, w)
		}
		extractors[i] = New(length, w)
		length += w
	}
	exp.extractors = extractors
	exp.length = length
	return nil
}
