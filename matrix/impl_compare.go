// SPDX-License-Identifier: MIT
// Package: matrix
//
// impl_compare.go - tolerance-based comparison of two matrices.

package matrix

import "math"

const opAllClose = "AllClose"

// AllClose reports whether |a_ij − b_ij| ≤ atol + rtol·|b_ij| for every entry.
//
// Policy:
//   - a and b must be non-nil with identical shapes.
//   - rtol, atol are taken by absolute value; NaN/Inf tolerances are rejected.
//   - A NaN entry on either side is never close.
//
// Errors: ErrNaNInf (tolerance), ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time, O(1) space; early exit on the first violation.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !withinTol(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j) // indices valid after ValidateSameShape
			bv, _ = b.At(i, j)
			if !withinTol(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// withinTol is the scalar relation behind AllClose; false for NaN.
func withinTol(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
