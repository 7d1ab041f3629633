/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"log/slog"
	"os"
	"strconv"
)

const (
	envFileVar  = "FISCALCODE_ENV_FILE"
	seedVar     = "FISCALCODE_SEED"
	logLevelVar = "FISCALCODE_LOG_LEVEL"

	defaultEnvFile = ".env"
)

// config holds settings read from the environment and an optional .env file.
type config struct {
	// Seed is the default seed of the random command; nil means unseeded.
	Seed     *uint64
	LogLevel slog.Level
}

// lookupFunc has the signature of os.LookupEnv.
type lookupFunc func(key string) (string, bool)

// loadConfig builds a config from the process environment, falling back on
// the .env file named by FISCALCODE_ENV_FILE (default ".env"). A missing file
// is not an error; variables already in the environment win over the file.
func loadConfig(lookup lookupFunc) (config, error) {
	path := defaultEnvFile
	if p, ok := lookup(envFileVar); ok && p != "" {
		path = p
	}

	fileEnv, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config{}, errors.Wrapf(err, "unable to read %s", path)
		}
		fileEnv = map[string]string{}
	}

	get := func(key string) string {
		if v, ok := lookup(key); ok {
			return v
		}
		return fileEnv[key]
	}

	cfg := config{LogLevel: slog.LevelInfo}
	if s := get(seedVar); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return config{}, errors.Wrapf(err, "invalid %s", seedVar)
		}
		cfg.Seed = &seed
	}
	if s := get(logLevelVar); s != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(s)); err != nil {
			return config{}, errors.Wrapf(err, "invalid %s", logLevelVar)
		}
	}
	return cfg, nil
}
