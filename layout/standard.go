/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package layout

// Field indices of the Standard layout.
const (
	Surname = iota
	Name
	Year
	Month
	DayGender
	Place
	Check
)

// StandardWidths is the fiscal code layout in configuration string form.
const StandardWidths = "3.3.2.1.2.4.1"

// Standard is the layout of a 16-character fiscal code:
//     surname(3) name(3) year(2) month(1) day+gender(2) place(4) check(1)
var Standard = mustExploder(StandardWidths)

func mustExploder(conf string) FieldExploder {
	widths, err := SplitWidths(conf, ".")
	if err != nil {
		panic(err)
	}
	exp, err := NewFieldExploder(widths)
	if err != nil {
		panic(err)
	}
	return exp
}
