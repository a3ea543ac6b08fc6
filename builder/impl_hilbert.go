// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_hilbert.go - implementation of Hilbert(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooSmall).
//   - a_ij = 1/(i+j+1) with 0-based indices; symmetric positive definite.
//   - Deterministic, no RNG.
//
// Complexity:
//   - Time O(n²), Space O(n²).

package builder

import "github.com/katalvlaran/jacobi/matrix"

const (
	methodHilbert = "Hilbert"
	minHilbert    = 1
)

// Hilbert returns a Constructor that builds the n×n Hilbert matrix.
func Hilbert(n int) Constructor {
	return func(_ builderConfig) (*matrix.Dense, error) {
		if err := validateMin(methodHilbert, n, minHilbert); err != nil {
			return nil, err
		}
		m, err := matrix.NewDense(n, n)
		if err != nil {
			return nil, builderErrorf(methodHilbert, err, "NewDense(%d,%d)", n, n)
		}

		var i, j int
		var row []float64
		for i = 0; i < n; i++ {
			row = m.RawRowView(i)
			for j = 0; j < n; j++ {
				row[j] = 1.0 / float64(i+j+1)
			}
		}

		return m, nil
	}
}
