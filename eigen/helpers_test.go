package eigen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jacobi/builder"
	"github.com/katalvlaran/jacobi/matrix"
)

// mustDense builds a *Dense from literal rows or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// randomSymmetric returns a seeded n×n symmetric matrix with entries in [0,100).
func randomSymmetric(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := builder.BuildMatrix(builder.RandomSymmetric(n), builder.WithSeed(seed))
	require.NoError(t, err)

	return m
}

// hilbert returns the n×n Hilbert matrix.
func hilbert(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := builder.BuildMatrix(builder.Hilbert(n))
	require.NoError(t, err)

	return m
}

// sumSquares returns Σ v².
func sumSquares(v []float64) float64 {
	var acc float64
	for _, x := range v {
		acc += x * x
	}

	return acc
}

// nearlyEqualSorted compares two ascending spectra element-wise.
func nearlyEqualSorted(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}

	return true
}

// rotated returns the explicit product Rᵗ·A·R.
func rotated(a, R matrix.Matrix) (matrix.Matrix, error) {
	rt, err := matrix.Transpose(R)
	if err != nil {
		return nil, err
	}
	tmp, err := matrix.Mul(rt, a)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(tmp, R)
}
