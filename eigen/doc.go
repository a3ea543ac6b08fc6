// Package eigen computes eigenvalues of real symmetric dense matrices with
// the Jacobi rotation method, plus the small toolbox around it.
//
// What is inside:
//
//   - Solve: repeated plane rotations Rᵗ·A·R drive the off-diagonal mass of a
//     private working copy to zero; the diagonal left behind is the spectrum.
//   - PivotSelector strategies deciding which entry each rotation annihilates:
//     LargestOffDiagonal (classic Jacobi), CyclicSweep (row-major cursor) and
//     RowNormWeighted (row with the largest off-diagonal energy first).
//   - BuildRotation: the closed-form, cancellation-free rotation angle.
//   - GershgorinBounds: disc intervals that must contain every eigenvalue,
//     an independent sanity check on any result.
//   - PowerIteration and ScalarProductMethod for the dominant eigenvalue only.
//
// Determinism:
//
//   - All loops run in fixed order; ties always resolve to the first
//     candidate in row-major order. The optional parallel scan of
//     LargestOffDiagonal reduces per-block winners in block order, so the
//     chosen pivot sequence is identical to the sequential scan.
//
// Errors:
//
//   - ErrInvalidInput for contract violations detected before iterating,
//     ErrNumericDivergence for NaN/Inf during iteration or an exhausted cap.
//     Both are matched with errors.Is; matrix sentinels are joined where one applies.
//
// Example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 2}})
//	res, err := eigen.Solve(a, eigen.KindRowNormWeighted, 1e-9, 100)
//	// res.Values ≈ [1 3], res.Steps == 1
package eigen
