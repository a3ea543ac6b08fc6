// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random.go - RandomSymmetric(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooSmall); RNG required (else ErrNeedRandSource).
//   - a_ij = a_ji = scale·U[0,1) drawn once per upper-triangle cell (i ≤ j),
//     row-major; scale defaults to 100 (WithScale overrides).
//
// Complexity:
//   - Time O(n²), Space O(n²); n(n+1)/2 RNG draws.

package builder

import "github.com/katalvlaran/jacobi/matrix"

const (
	methodRandomSymmetric = "RandomSymmetric"
	minRandomSymmetric    = 1
)

// RandomSymmetric returns a Constructor for a dense random symmetric matrix.
func RandomSymmetric(n int) Constructor {
	return func(cfg builderConfig) (*matrix.Dense, error) {
		if err := validateMin(methodRandomSymmetric, n, minRandomSymmetric); err != nil {
			return nil, err
		}
		if err := requireRNG(methodRandomSymmetric, cfg); err != nil {
			return nil, err
		}
		m, err := matrix.NewDense(n, n)
		if err != nil {
			return nil, builderErrorf(methodRandomSymmetric, err, "NewDense(%d,%d)", n, n)
		}

		scale := cfg.scaleOr(defaultSymmetricScale)
		var i, j int
		var v float64
		for i = 0; i < n; i++ {
			for j = i; j < n; j++ {
				v = scale * cfg.rng.Float64()
				m.RawRowView(i)[j] = v
				m.RawRowView(j)[i] = v
			}
		}

		return m, nil
	}
}
