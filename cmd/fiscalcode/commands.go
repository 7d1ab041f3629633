/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"flag"
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode"
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/encode"
	"github.com/intel/rsp-sw-toolkit-im-suite-fiscalcode/verify"
	"github.com/pkg/errors"
	"io"
	"log/slog"
	"strconv"
	"time"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2

	dateLayout = "2006-01-02"
)

type command struct {
	name  string
	usage string
	run   func(env *environment, args []string) int
}

// environment is shared by every command invocation.
type environment struct {
	cfg    config
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time
}

var commands = []command{
	{"verify", "verify CODE...", runVerify},
	{"decode", "decode CODE...", runDecode},
	{"generate", "generate -name NAME -surname SURNAME -birthdate YYYY-MM-DD -gender M|F -place X000 [-omocodes]", runGenerate},
	{"random", "random [-n N] [-seed S]", runRandom},
	{"omocodes", "omocodes CODE...", runOmocodes},
}

func run(args []string, stdout, stderr io.Writer, lookup lookupFunc) int {
	cfg, err := loadConfig(lookup)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	env := &environment{
		cfg:    cfg,
		log:    slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel})),
		stdout: stdout,
		stderr: stderr,
		now:    time.Now,
	}

	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}
	for _, c := range commands {
		if c.name == args[0] {
			env.log.Debug("running command", "command", c.name, "args", args[1:])
			return c.run(env, args[1:])
		}
	}

	env.log.Error("unknown command", "command", args[0])
	usage(stderr)
	return exitUsage
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage:")
	for _, c := range commands {
		fmt.Fprintln(w, "  fiscalcode", c.usage)
	}
}

func newFlagSet(env *environment, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	return fs
}

// codeArgs parses a command taking only positional codes.
func codeArgs(env *environment, name string, args []string) ([]string, bool) {
	fs := newFlagSet(env, name)
	if err := fs.Parse(args); err != nil {
		return nil, false
	}
	if fs.NArg() == 0 {
		env.log.Error("no fiscal code given", "command", name)
		return nil, false
	}
	return fs.Args(), true
}

func runVerify(env *environment, args []string) int {
	codes, ok := codeArgs(env, "verify", args)
	if !ok {
		return exitUsage
	}

	status := exitOK
	for _, code := range codes {
		if _, err := verify.Verify(code); err != nil {
			logInvalid(env, code, err)
			fmt.Fprintf(env.stdout, "%s: %v\n", code, err)
			status = exitInvalid
			continue
		}
		fmt.Fprintf(env.stdout, "%s: valid\n", code)
	}
	return status
}

func runDecode(env *environment, args []string) int {
	codes, ok := codeArgs(env, "decode", args)
	if !ok {
		return exitUsage
	}

	status := exitOK
	now := env.now()
	for _, code := range codes {
		d, err := fiscalcode.Decode(code)
		if err != nil {
			logInvalid(env, code, err)
			fmt.Fprintf(env.stdout, "%s: %v\n", code, err)
			status = exitInvalid
			continue
		}
		fmt.Fprintf(env.stdout, "%s: surname=%s name=%s birthdate=%s gender=%s place=%s omocode=%t\n",
			code, d.Surname(), d.Name(), d.BirthDate(now).Format(dateLayout),
			d.Gender(), d.Place(), d.IsOmocode())
	}
	return status
}

func runGenerate(env *environment, args []string) int {
	fs := newFlagSet(env, "generate")
	name := fs.String("name", "", "first name")
	surname := fs.String("surname", "", "surname")
	birthdate := fs.String("birthdate", "", "birth date as YYYY-MM-DD")
	gender := fs.String("gender", "", "M or F")
	place := fs.String("place", "", "birth place code, e.g. H501")
	omocodes := fs.Bool("omocodes", false, "also print the omocode variants")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	p, err := parsePerson(*name, *surname, *birthdate, *gender, *place)
	if err != nil {
		env.log.Error("invalid person data", "error", err)
		fmt.Fprintln(env.stdout, err)
		return exitInvalid
	}

	fc, err := fiscalcode.Generate(p)
	if err != nil {
		env.log.Error("unable to generate fiscal code", "error", err)
		fmt.Fprintln(env.stdout, err)
		return exitInvalid
	}
	fmt.Fprintln(env.stdout, fc)

	if *omocodes {
		return printOmocodes(env, fc)
	}
	return exitOK
}

func parsePerson(name, surname, birthdate, gender, place string) (fiscalcode.Person, error) {
	bd, err := time.Parse(dateLayout, birthdate)
	if err != nil {
		return fiscalcode.Person{}, errors.Wrap(err, "invalid birthdate")
	}
	g, err := encode.ParseGender(gender)
	if err != nil {
		return fiscalcode.Person{}, err
	}
	return fiscalcode.NewPerson(name, surname, bd, g, place)
}

func runRandom(env *environment, args []string) int {
	fs := newFlagSet(env, "random")
	n := fs.Int("n", 1, "number of codes to generate")
	seedFlag := fs.String("seed", "", "seed for reproducible output")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *n < 0 {
		env.log.Error("negative count", "n", *n)
		return exitUsage
	}

	seed := env.cfg.Seed
	if *seedFlag != "" {
		s, err := strconv.ParseUint(*seedFlag, 10, 64)
		if err != nil {
			env.log.Error("invalid seed", "seed", *seedFlag, "error", err)
			return exitUsage
		}
		seed = &s
	}

	gen := fiscalcode.NewRandomGenerator(seed)
	for i := 0; i < *n; i++ {
		fmt.Fprintln(env.stdout, gen.Next())
	}
	env.log.Debug("generated random fiscal codes", "count", *n, "seeded", seed != nil)
	return exitOK
}

func runOmocodes(env *environment, args []string) int {
	codes, ok := codeArgs(env, "omocodes", args)
	if !ok {
		return exitUsage
	}

	status := exitOK
	for _, code := range codes {
		fc, err := fiscalcode.New(code)
		if err != nil {
			logInvalid(env, code, err)
			fmt.Fprintf(env.stdout, "%s: %v\n", code, err)
			status = exitInvalid
			continue
		}
		if s := printOmocodes(env, fc); s != exitOK {
			status = s
		}
	}
	return status
}

func printOmocodes(env *environment, fc fiscalcode.FiscalCode) int {
	variants, err := fc.Omocodes()
	if err != nil {
		env.log.Error("unable to compute omocodes", "code", fc.String(), "error", err)
		return exitInvalid
	}
	for _, v := range variants {
		fmt.Fprintln(env.stdout, v)
	}
	return exitOK
}

func logInvalid(env *environment, code string, err error) {
	var vErr *verify.Error
	if errors.As(err, &vErr) {
		env.log.Info("invalid fiscal code", "code", code, "kind", vErr.Kind.String())
		return
	}
	env.log.Info("invalid fiscal code", "code", code, "error", err)
}
