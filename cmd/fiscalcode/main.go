/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Command fiscalcode verifies, decodes and generates fiscal codes.
//
// Usage:
//     fiscalcode verify CODE...
//     fiscalcode decode CODE...
//     fiscalcode generate -name NAME -surname SURNAME -birthdate YYYY-MM-DD -gender M|F -place X000 [-omocodes]
//     fiscalcode random [-n N] [-seed S]
//     fiscalcode omocodes CODE...
//
// Results go to stdout, one per line; logs go to stderr. The exit status is
// 1 if any code is invalid and 2 on usage errors.
//
// Environment (also read from a .env file):
//     FISCALCODE_SEED       default seed for random
//     FISCALCODE_LOG_LEVEL  debug, info, warn or error
//     FISCALCODE_ENV_FILE   path of the .env file
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv))
}
