// SPDX-License-Identifier: MIT
// Command sparsemat walks through every operation of the matrix package on a
// small fixed set of sparse and tridiagonal matrices, then prints one random
// matrix per configured storage kind.
//
// Usage:
//
//	sparsemat [-config file.yaml] [-seed N] [-size N] [-fill PCT]
//	          [-min V] [-max V] [-kinds sparse,tridiagonal]
//	          [-no-color] [-log-level debug]
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
