// Package matrix provides dense real matrices and the linear-algebra kernels
// the Jacobi eigen solver is built on.
//
// The matrix package provides:
//
//   - Matrix, a small interface (Rows, Cols, At, Set, Clone) accepted by every kernel.
//   - Dense, a row-major implementation with bounds-checked accessors, an
//     optional finite-only numeric policy and a RawRowView hot-path accessor.
//   - Kernels: Mul, Transpose, MatVec, MatTVec, Dot, Norm2.
//   - Similarity invariants: Trace, FrobeniusNorm, OffDiagonalRowSums,
//     OffDiagonalNorm, Diagonal.
//   - Validators (ValidateSquare, ValidateSymmetric, ...) returning sentinel
//     errors that callers match with errors.Is.
//
// Loop orders are fixed everywhere so results are reproducible.
package matrix
