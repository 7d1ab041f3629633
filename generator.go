/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package fiscalcode

import (
	crand "crypto/rand"
	"encoding/binary"
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/charset"
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/checksum"
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/encode"
	"github.com/pkg/errors"
	"math/rand"
	"strings"
	"time"
)

// Generate returns the fiscal code of the Person.
//
// The result is upper-case and never an omocode; use its Omocodes method to
// get the variants assigned when two people share a code. It returns an
// error if the Person doesn't pass Validate.
func Generate(p Person) (FiscalCode, error) {
	if err := p.Validate(); err != nil {
		return FiscalCode{}, errors.Wrap(err, "invalid person data")
	}

	dateGender, err := encode.DateGender(p.Birthdate, p.Gender)
	if err != nil {
		return FiscalCode{}, err
	}

	b := &strings.Builder{}
	b.Grow(checksum.Length + 1)
	b.WriteString(encode.NamePart(p.Surname))
	b.WriteString(encode.NamePart(p.Name))
	b.WriteString(dateGender)
	b.WriteString(strings.ToUpper(p.Place))
	b.WriteByte(checksum.Compute(b.String()))
	return FiscalCode{code: b.String()}, nil
}

// RandomGenerator produces random, valid fiscal codes.
//
// Like the *rand.Rand it wraps, a RandomGenerator must not be shared between
// goroutines; create one per goroutine instead.
type RandomGenerator struct {
	rng *rand.Rand
}

// NewRandomGenerator returns a RandomGenerator. If seed is non-nil, the
// generator always produces the same sequence of codes for it; otherwise, it's
// seeded from crypto/rand.
func NewRandomGenerator(seed *uint64) *RandomGenerator {
	var s int64
	if seed != nil {
		s = int64(*seed)
	} else {
		s = entropySeed()
	}
	return &RandomGenerator{rng: rand.New(rand.NewSource(s))}
}

// GenerateRandom returns a random, valid fiscal code using a fresh generator
// created with NewRandomGenerator(seed).
func GenerateRandom(seed *uint64) FiscalCode {
	return NewRandomGenerator(seed).Next()
}

// Next returns the generator's next code.
//
// Letters of the surname, name and place are drawn from B-Z ('A' is never
// drawn), digits from 0-9, the day of month from 1-31 and the gender evenly,
// so the result is valid, though not necessarily a real calendar date.
func (g *RandomGenerator) Next() FiscalCode {
	b := make([]byte, 0, checksum.Length+1)
	for i := 0; i < 2*encode.NamePartLen; i++ {
		b = append(b, g.letter())
	}
	b = append(b, g.digit(), g.digit())
	b = append(b, charset.Months[g.rng.Intn(len(charset.Months))])

	day := 1 + g.rng.Intn(31)
	if g.rng.Intn(2) == 1 {
		day += encode.FemaleDayOffset
	}
	b = append(b, byte('0'+day/10), byte('0'+day%10))

	b = append(b, g.letter(), g.digit(), g.digit(), g.digit())
	b = append(b, checksum.Compute(string(b)))
	return FiscalCode{code: string(b)}
}

// letter draws from the alphabet, skipping index 0.
func (g *RandomGenerator) letter() byte {
	return charset.Letter(1 + g.rng.Intn(len(charset.Alphabet)-1))
}

func (g *RandomGenerator) digit() byte {
	return byte('0' + g.rng.Intn(10))
}

// entropySeed returns a seed from crypto/rand, falling back to the clock if
// it's unavailable.
func entropySeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.BigEndian.Uint64(buf[:]))
}
