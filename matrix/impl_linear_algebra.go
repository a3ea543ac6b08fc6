// SPDX-License-Identifier: MIT
// Package matrix provides linear-algebra kernels over any Matrix implementation:
// matrix product, transpose, matrix-vector products and vector reductions.
// All kernels validate fail-fast, never mutate their inputs, and use fixed
// loop orders so results are reproducible bit for bit.
//
// Notes:
//   - Every kernel has a *Dense fast path over the flat buffer and an
//     At/Set fallback for foreign Matrix implementations.
//   - Errors are sentinels wrapped with the operation tag via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for dot-product style accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opMatTVec   = "MatTVec"
	opDot       = "Dot"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil; wrapping nil with %w yields a non-nil error.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes C = A × B into a freshly allocated *Dense.
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil, A.Cols == B.Rows).
//   - Stage 2: *Dense × *Dense runs i→k→j over row-major strides;
//     otherwise a fixed i→j→k loop through At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed loop orders; identical inputs give identical bits.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// Notes:
//   - Zero entries of A are not skipped: a NaN in B must still propagate.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		av, bv  float64
		acc     float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				acc += av * bv
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MatVec computes y = m·x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, rows)
	var (
		i, j int
		acc  float64
	)
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			acc = ZeroSum
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += v * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// MatTVec computes y = mᵀ·x without materializing the transpose.
//
// Contract: m non-nil; len(x) == m.Rows().
// Complexity: Time O(r*c), Space O(c) for y.
func MatTVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatTVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, rows); err != nil {
		return nil, matrixErrorf(opMatTVec, err)
	}

	y := make([]float64, cols)
	var i, j int
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ { // row-major walk, scatter into y
			base = i * cols
			for j = 0; j < cols; j++ {
				y[j] += d.data[base+j] * x[i]
			}
		}

		return y, nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatTVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[j] += v * x[i]
		}
	}

	return y, nil
}

// Dot returns Σ x[i]·y[i].
// Errors: ErrNilMatrix (nil slice), ErrDimensionMismatch (length differs).
// Complexity: O(n).
func Dot(x, y []float64) (float64, error) {
	if x == nil {
		return 0, matrixErrorf(opDot, ErrNilMatrix)
	}
	if err := ValidateVecLen(y, len(x)); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	acc := ZeroSum
	for i := range x {
		acc += x[i] * y[i]
	}

	return acc, nil
}

// Norm2 returns the Euclidean norm ‖x‖₂, scaled to avoid overflow on large entries.
// Complexity: O(n).
func Norm2(x []float64) float64 {
	var scale, ssq float64 = 0, 1
	var ax float64
	for _, v := range x {
		if v == 0 {
			continue
		}
		if math.IsNaN(v) {
			return math.NaN()
		}
		if math.IsInf(v, 0) {
			return math.Inf(1)
		}
		ax = math.Abs(v)
		if scale < ax {
			ssq = 1 + ssq*(scale/ax)*(scale/ax)
			scale = ax
		} else {
			ssq += (ax / scale) * (ax / scale)
		}
	}

	return scale * math.Sqrt(ssq)
}
