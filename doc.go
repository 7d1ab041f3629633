/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package fiscalcode generates and verifies Italian fiscal codes ("codici
// fiscali"), the 16-character personal identifiers derived from a person's
// surname, name, date of birth, gender and place of birth.
//
// A fiscal code is made of fixed-width fields:
//     RSS MRA 80 A 01 H501 U
//      |   |   |  |  |   |  \_ control character, computed from the rest
//      |   |   |  |  |   \____ place of birth: 1 letter, 3 digits
//      |   |   |  |  \________ day of birth; +40 for women
//      |   |   |  \___________ month of birth: A B C D E H L M P R S T
//      |   |   \______________ last 2 digits of the year of birth
//      |   \__________________ 3 letters from the name
//      \______________________ 3 letters from the surname
//
// The code is not a unique identifier on its own: two people with similar
// names born on the same day in the same place get the same 15 leading
// characters. In that case, the code assigned later is an "omocode": one or
// more of its 7 digits are replaced, starting with the last place digit and
// moving left, by the letters L M N P Q R S T U V (standing for 0-9), and the
// control character is recomputed. An omocode is just as valid as the
// original; use FiscalCode.Canonical or FiscalCode.Equivalent to compare
// codes regardless of such substitutions, and FiscalCode.Omocodes to list
// the variants of a code.
//
// The place of birth is a cadastral ("Belfiore") code for Italian
// municipalities, or a 'Z' code for foreign countries. This package only
// checks its shape; looking it up in a registry is left to the caller.
//
// The sub-packages hold the building blocks: charset (lookup tables),
// checksum (the control character), encode (name and date fragments),
// omocode (digit/letter substitutions), layout (field boundaries) and verify
// (the validation rules and their errors).
package fiscalcode
