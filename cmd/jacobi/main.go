// SPDX-License-Identifier: MIT

// Command jacobi generates test matrices and compares the Jacobi pivot
// strategies against each other and against a reference dense eigensolver.
//
// Usage:
//
//	jacobi solve --matrix hilbert --size 9 --eps 1e-5,1e-7,1e-9
//	jacobi solve --config run.yaml --log-level debug
//	jacobi dominant --matrix random --size 4 --seed 7
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
