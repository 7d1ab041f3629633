/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package layout splits fixed-width character codes into their fields.
package layout

import (
	"fmt"
)

// FieldExtractor extracts a run of characters from a code according to a
// character offset and length.
//
// Create a new one with New(start, length), then use Extract(src) or
// ExtractTo(dst, src) to extract characters from codes.
//
// FieldExtractors are safe for concurrent extractions, provided callers don't
// use SetBounds during their use.
type FieldExtractor struct {
	start, length int
}

// New returns a new FieldExtractor for the length characters starting at the
// 0-indexed start.
func New(start, length int) (fe FieldExtractor) {
	fe = FieldExtractor{}
	fe.SetBounds(start, length)
	return fe
}

// SetBounds changes the FieldExtractor's start and length.
func (fe *FieldExtractor) SetBounds(start, length int) {
	if start < 0 || length < 1 {
		panic(fmt.Sprintf("illegal start (%d) or length (%d)", start, length))
	}
	if start+length < 0 {
		// check for overflow
		panic(fmt.Sprintf("cannot handle such a large start (%d) and length (%d)",
			start, length))
	}
	fe.start = start
	fe.length = length
}

// Start returns the index of the first character this extractor extracts.
func (fe FieldExtractor) Start() int {
	return fe.start
}

// Length returns the number of characters this extractor extracts.
func (fe FieldExtractor) Length() int {
	return fe.length
}

// End returns the index just past the last character this extractor extracts.
func (fe FieldExtractor) End() int {
	return fe.start + fe.length
}

// Extract returns the field's characters from src.
//
// It panics if src is too short to hold the field.
func (fe FieldExtractor) Extract(src string) string {
	if len(src) < fe.End() {
		panic(fmt.Sprintf("cannot extract %d characters from source[%d:%d], "+
			"as it only has %d total characters",
			fe.length, fe.start, fe.End(), len(src)))
	}
	return src[fe.start:fe.End()]
}

// ExtractTo copies the field's characters from src into dst.
//
// It panics if src is too short to hold the field or dst is too short to
// receive it.
func (fe FieldExtractor) ExtractTo(dst []byte, src string) {
	if len(dst) < fe.length {
		panic(fmt.Sprintf("destination size %d is too small "+
			"(should be at least %d)", len(dst), fe.length))
	}
	copy(dst, fe.Extract(src))
}
