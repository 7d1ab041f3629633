/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package fiscalcode

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/verify"
	"github.com/pkg/errors"
	"sync"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerate(t *testing.T) {
	for i, tt := range []struct {
		name, surname string
		birthdate     time.Time
		gender        Gender
		place, code   string
	}{
		{"PI", "SUCCHIO", date(1998, time.July, 8), Female, "M256", "SCCPIX98L48M256N"},
		{"PI", "SUCCHIO", date(1998, time.July, 8), Male, "M256", "SCCPIX98L08M256J"},
		{"PIPPO", "PLUTO", date(2023, time.January, 7), Male, "B544", "PLTPPP23A07B544K"},
		{"PIPPO", "PLUTO", date(2022, time.October, 2), Female, "T567", "PLTPPP22R42T567K"},
		{"mario", "rossi", date(1980, time.January, 1), Male, "h501", "RSSMRA80A01H501U"},
	} {
		t.Run(fmt.Sprintf("%02d_%s_%s", i, tt.surname, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			p := w.ShouldHaveResult(NewPerson(tt.name, tt.surname, tt.birthdate,
				tt.gender, tt.place)).(Person)

			fc := w.ShouldHaveResult(Generate(p)).(FiscalCode)
			w.ShouldBeEqual(fc.String(), tt.code)
			w.ShouldBeFalse(fc.IsOmocode())

			// deterministic
			again := w.ShouldHaveResult(Generate(p)).(FiscalCode)
			w.ShouldBeEqual(again, fc)

			// valid
			w.ShouldBeEqual(w.ShouldHaveResult(New(fc.String())).(FiscalCode), fc)
		})
	}
}

func TestGenerate_invalidPerson(t *testing.T) {
	valid := Person{
		Name:      "MARIO",
		Surname:   "ROSSI",
		Birthdate: date(1980, time.January, 1),
		Gender:    Male,
		Place:     "H501",
	}

	for i, tt := range []struct {
		name   string
		modify func(p *Person)
	}{
		{"empty name", func(p *Person) { p.Name = "" }},
		{"empty surname", func(p *Person) { p.Surname = "" }},
		{"name with space", func(p *Person) { p.Name = "GIAN LUCA" }},
		{"surname with apostrophe", func(p *Person) { p.Surname = "D'ANGELO" }},
		{"accented name", func(p *Person) { p.Name = "NICOLÒ" }},
		{"digit in name", func(p *Person) { p.Name = "MARIO2" }},
		{"missing birthdate", func(p *Person) { p.Birthdate = time.Time{} }},
		{"negative year", func(p *Person) { p.Birthdate = date(-1, time.January, 1) }},
		{"invalid gender", func(p *Person) { p.Gender = Gender(5) }},
		{"short place", func(p *Person) { p.Place = "H50" }},
		{"long place", func(p *Person) { p.Place = "H5011" }},
		{"place without letter", func(p *Person) { p.Place = "1501" }},
		{"place with letters", func(p *Person) { p.Place = "HH01" }},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			p := valid
			tt.modify(&p)

			w.ShouldFail(p.Validate())
			_, err := NewPerson(p.Name, p.Surname, p.Birthdate, p.Gender, p.Place)
			w.ShouldFail(err)
			fc, err := Generate(p)
			w.ShouldFail(err)
			w.ShouldBeEqual(fc, FiscalCode{})
			w.Logf("%v", err)
		})
	}

	expect.WrapT(t).ShouldSucceed(valid.Validate())
}

func TestNew(t *testing.T) {
	w := expect.WrapT(t)

	fc := w.ShouldHaveResult(New("cTMTBT74E05B506W")).(FiscalCode)
	w.ShouldBeEqual(fc.String(), "cTMTBT74E05B506W")
	w.ShouldBeEqual(fmt.Sprintf("%s", fc), "cTMTBT74E05B506W")

	_, err := New("CTMTB")
	w.ShouldBeTrue(errors.Is(err, verify.ErrInvalidLength))
	w.ShouldBeEqual(err, error(&verify.Error{Kind: verify.InvalidLength, Length: 5}))

	_, err = New("CTmTBT74E05B506Y")
	w.ShouldBeEqual(err, error(&verify.Error{
		Kind: verify.InvalidControlCharacter, Found: 'Y', Expected: 'W'}))
}

func TestMustNew(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldBeEqual(MustNew("BRNPRZ72D52F83VC").String(), "BRNPRZ72D52F83VC")

	defer func() {
		w.ShouldBeTrue(recover() != nil)
	}()
	MustNew("BRNPRZ72D52F83V")
	t.Fatal("expected MustNew to panic, but it didn't")
}

func TestFiscalCode_IsOmocode(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldBeTrue(MustNew("BRNPRZ72D52F83VC").IsOmocode())
	w.ShouldBeFalse(MustNew("RSSMRA80A01H501U").IsOmocode())
}

func TestFiscalCode_Canonical(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldBeEqual(MustNew("BRNPRZ72D52F83VC").Canonical().String(), "BRNPRZ72D52F839N")
	w.ShouldBeEqual(MustNew("RSSMRAULALMHRLMD").Canonical().String(), "RSSMRA80A01H501U")
	w.ShouldBeEqual(MustNew("cTMTBT74E05B506W").Canonical().String(), "CTMTBT74E05B506W")
	w.ShouldBeEqual(FiscalCode{}.Canonical(), FiscalCode{})

	w.ShouldBeTrue(MustNew("RSSMRAULALMHRLMD").Equivalent(MustNew("RSSMRA80A01H5LMX")))
	w.ShouldBeTrue(MustNew("ctmtbt74E05b506W").Equivalent(MustNew("CTMTBT74E05B506W")))
	w.ShouldBeFalse(MustNew("SCCPIX98L48M256N").Equivalent(MustNew("SCCPIX98L08M256J")))
}

func TestFiscalCode_Omocodes(t *testing.T) {
	w := expect.WrapT(t)

	omocodes := w.ShouldHaveResult(MustNew("ZLKESP25B55Y463L").Omocodes()).([]FiscalCode)
	w.StopOnMismatch().ShouldHaveLength(omocodes, 7)
	w.ShouldBeEqual(omocodes[0].String(), "ZLKESP25B55Y46PH")

	omocodes = w.ShouldHaveResult(MustNew("BRNPRZ72D52F83VC").Omocodes()).([]FiscalCode)
	w.StopOnMismatch().ShouldHaveLength(omocodes, 7)
	w.ShouldBeEqual(omocodes[0].String(), "BRNPRZ72D52F83VC")

	_, err := FiscalCode{}.Omocodes()
	w.ShouldFail(err)
}

func TestFiscalCode_Omocodes_valid(t *testing.T) {
	w := expect.WrapT(t)
	gen := NewRandomGenerator(seedOf(42))
	for i := 0; i < 200; i++ {
		base := gen.Next()
		omocodes := w.ShouldHaveResult(base.Omocodes()).([]FiscalCode)
		w.As(base).StopOnMismatch().ShouldHaveLength(omocodes, 7)

		seen := map[string]bool{base.String(): true}
		for _, o := range omocodes {
			w.As(o).ShouldBeFalse(seen[o.String()])
			seen[o.String()] = true

			w.As(o).ShouldBeEqual(w.ShouldHaveResult(New(o.String())).(FiscalCode), o)
			w.As(o).ShouldBeTrue(o.IsOmocode())
			w.As(o).ShouldBeTrue(o.Equivalent(base))
		}
	}
}

func seedOf(s uint64) *uint64 {
	return &s
}

func TestGenerateRandom(t *testing.T) {
	w := expect.WrapT(t)

	for i := 0; i < 10000; i++ {
		fc := GenerateRandom(nil)
		_, err := verify.Verify(fc.String())
		w.As(fc).StopOnMismatch().ShouldSucceed(err)
		w.As(fc).ShouldBeFalse(fc.IsOmocode())
	}
}

func TestGenerateRandom_seeded(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldBeEqual(GenerateRandom(seedOf(19)), GenerateRandom(seedOf(19)))
	w.ShouldBeEqual(GenerateRandom(seedOf(0)), GenerateRandom(seedOf(0)))

	a, b := NewRandomGenerator(seedOf(7)), NewRandomGenerator(seedOf(7))
	distinct := map[FiscalCode]bool{}
	for i := 0; i < 100; i++ {
		fa, fb := a.Next(), b.Next()
		w.ShouldBeEqual(fa, fb)
		distinct[fa] = true
	}
	w.ShouldBeTrue(len(distinct) > 90)
}

func TestGenerateRandom_fieldGrammar(t *testing.T) {
	w := expect.WrapT(t)
	gen := NewRandomGenerator(seedOf(1))
	genders := map[Gender]int{}
	for i := 0; i < 2000; i++ {
		d := gen.Next().Details()
		for _, s := range []string{d.Surname(), d.Name(), d.Place()[:1]} {
			for j := 0; j < len(s); j++ {
				w.As(d).ShouldBeTrue('B' <= s[j] && s[j] <= 'Z')
			}
		}
		w.As(d).ShouldBeTrue(1 <= d.BirthDay() && d.BirthDay() <= 31)
		genders[d.Gender()]++
	}
	w.ShouldBeTrue(genders[Male] > 0)
	w.ShouldBeTrue(genders[Female] > 0)
}

func TestGenerateRandom_concurrent(t *testing.T) {
	w := expect.WrapT(t)
	results := make([][]FiscalCode, 8)
	wg := sync.WaitGroup{}
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			gen := NewRandomGenerator(seedOf(99))
			for j := 0; j < 100; j++ {
				results[i] = append(results[i], gen.Next())
			}
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(results); i++ {
		w.ShouldBeEqual(results[i], results[0])
	}
}
