// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the similarity-invariant diagnostics used to monitor and verify
//     spectral methods: diagonal, trace, Frobenius norm and off-diagonal mass.
//
// Exposed API:
//   - Diagonal(A)           -> []a_ii
//   - Trace(A)              -> Σ a_ii                       (invariant under RᵗAR)
//   - FrobeniusNorm(A)      -> √(Σ a_ij²)                   (invariant under RᵗAR)
//   - OffDiagonalRowSums(A) -> [Σ_{j≠i} |a_ij|]_i           (Gershgorin radii, Jacobi stop rule)
//   - OffDiagonalNorm(A)    -> √(Σ_{i≠j} a_ij²)             (mass driven to zero by Jacobi)
//
// Determinism & Performance:
//   - Fixed i→j traversal; *Dense fast paths walk the flat buffer.
//   - NaN entries propagate into the returned values; callers decide policy.

package matrix

import (
	"fmt"
	"math"
)

const (
	opDiagonal       = "Diagonal"
	opTrace          = "Trace"
	opFrobenius      = "FrobeniusNorm"
	opOffDiagRowSums = "OffDiagonalRowSums"
	opOffDiagNorm    = "OffDiagonalNorm"
)

// Diagonal returns a copy of the main diagonal of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Diagonal(m Matrix) ([]float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}

	n := m.Rows()
	out := make([]float64, n)
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			out[i] = d.data[i*n+i]
		}

		return out, nil
	}

	var err error
	for i := 0; i < n; i++ {
		if out[i], err = m.At(i, i); err != nil {
			return nil, matrixErrorf(opDiagonal, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
	}

	return out, nil
}

// Trace returns Σ a_ii of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Trace(m Matrix) (float64, error) {
	diag, err := Diagonal(m)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	sum := ZeroSum
	for _, v := range diag {
		sum += v
	}

	return sum, nil
}

// FrobeniusNorm returns ‖A‖_F = √(Σ_ij a_ij²) for any shape.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func FrobeniusNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}

	if d, ok := m.(*Dense); ok {
		return Norm2(d.data), nil
	}

	rows, cols := m.Rows(), m.Cols()
	buf := make([]float64, 0, rows*cols)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, matrixErrorf(opFrobenius, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			buf = append(buf, v)
		}
	}

	return Norm2(buf), nil
}

// OffDiagonalRowSums returns, for each row i, Σ_{j≠i} |a_ij|.
// These are the Gershgorin radii and the per-row quantity of the Jacobi stop rule.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func OffDiagonalRowSums(m Matrix) ([]float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opOffDiagRowSums, err)
	}

	n := m.Rows()
	sums := make([]float64, n)
	var (
		i, j int
		acc  float64
	)
	if d, ok := m.(*Dense); ok {
		var row []float64
		for i = 0; i < n; i++ {
			row = d.data[i*n : (i+1)*n]
			acc = ZeroSum
			for j = 0; j < n; j++ {
				if j != i {
					acc += math.Abs(row[j])
				}
			}
			sums[i] = acc
		}

		return sums, nil
	}

	var v float64
	var err error
	for i = 0; i < n; i++ {
		acc = ZeroSum
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opOffDiagRowSums, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += math.Abs(v)
		}
		sums[i] = acc
	}

	return sums, nil
}

// OffDiagonalNorm returns √(Σ_{i≠j} a_ij²), the off-diagonal mass.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func OffDiagonalNorm(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opOffDiagNorm, err)
	}

	n := m.Rows()
	off := make([]float64, 0, n*(n-1))
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if v, err = m.At(i, j); err != nil {
				return 0, matrixErrorf(opOffDiagNorm, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			off = append(off, v)
		}
	}

	return Norm2(off), nil
}
