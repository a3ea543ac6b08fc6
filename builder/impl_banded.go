// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_banded.go - Tridiagonal(n) and Diagonal(n) constructors.
//
// Contract:
//   - n ≥ 1 (else ErrTooSmall); RNG required (else ErrNeedRandSource).
//   - Tridiagonal: a_ij = a_ji = (i·j+1)·U[0,1) for |i−j| ≤ 1, zero elsewhere.
//     One draw per upper-triangle cell, mirrored, so the result is symmetric.
//   - Diagonal: a_ii = 2(i+1)·U[0,1), zero elsewhere.
//
// Determinism:
//   - Draw order is row-major over the upper band; fixed for a given seed.

package builder

import "github.com/katalvlaran/jacobi/matrix"

const (
	methodTridiagonal = "Tridiagonal"
	methodDiagonal    = "Diagonal"
	minBanded         = 1
)

// Tridiagonal returns a Constructor for a random symmetric tridiagonal matrix.
func Tridiagonal(n int) Constructor {
	return func(cfg builderConfig) (*matrix.Dense, error) {
		if err := validateMin(methodTridiagonal, n, minBanded); err != nil {
			return nil, err
		}
		if err := requireRNG(methodTridiagonal, cfg); err != nil {
			return nil, err
		}
		m, err := matrix.NewDense(n, n)
		if err != nil {
			return nil, builderErrorf(methodTridiagonal, err, "NewDense(%d,%d)", n, n)
		}

		var v float64
		for i := 0; i < n; i++ {
			// diagonal cell, then the super-diagonal mirrored below
			m.RawRowView(i)[i] = float64(i*i+1) * cfg.rng.Float64()
			if i+1 < n {
				v = float64(i*(i+1)+1) * cfg.rng.Float64()
				m.RawRowView(i)[i+1] = v
				m.RawRowView(i + 1)[i] = v
			}
		}

		return m, nil
	}
}

// Diagonal returns a Constructor for a random diagonal matrix.
func Diagonal(n int) Constructor {
	return func(cfg builderConfig) (*matrix.Dense, error) {
		if err := validateMin(methodDiagonal, n, minBanded); err != nil {
			return nil, err
		}
		if err := requireRNG(methodDiagonal, cfg); err != nil {
			return nil, err
		}
		d := make([]float64, n)
		for i := range d {
			d[i] = float64(i+1) * cfg.rng.Float64() * 2.0
		}
		m, err := matrix.NewDiagonal(d)
		if err != nil {
			return nil, builderErrorf(methodDiagonal, err, "NewDiagonal(len=%d)", n)
		}

		return m, nil
	}
}
