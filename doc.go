// Package jacobi is a small numerical toolkit for the symmetric eigenvalue
// problem: dense matrices, reproducible test-matrix generators and the
// Jacobi rotation method with pluggable pivot strategies.
//
// What is inside?
//
//	• Dense row-major matrices with safe accessors and hot-path row views
//	• Linear-algebra kernels: Mul, Transpose, MatVec, Dot, Norm2, AllClose
//	• Similarity invariants: trace, Frobenius norm, off-diagonal row sums
//	• Generators: Hilbert, symmetric tridiagonal, diagonal, random symmetric
//	• Jacobi solver with three pivot strategies and eigenvector accumulation
//	• Gershgorin bounds and the dominant eigenvalue by power iteration
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/       Dense, validators, kernels and spectral diagnostics
//	builder/      seeded matrix and vector generators (MatrixSource)
//	eigen/        Solve, PivotSelector strategies, BuildRotation, GershgorinBounds
//	cmd/jacobi/   CLI comparing strategies against a reference eigensolver
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 2}})
//	res, _ := eigen.Solve(a, eigen.KindRowNormWeighted, 1e-9, 100)
//	fmt.Println(res.Sorted(), res.Steps) // [1 3] 1
//
//	go get github.com/katalvlaran/jacobi
package jacobi
