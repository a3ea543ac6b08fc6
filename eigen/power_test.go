package eigen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jacobi/builder"
	"github.com/katalvlaran/jacobi/eigen"
	"github.com/katalvlaran/jacobi/matrix"
)

type dominantFn func(matrix.Matrix, []float64, float64, int) (*eigen.Dominant, error)

var dominantMethods = map[string]dominantFn{
	"power":  eigen.PowerIteration,
	"scalar": eigen.ScalarProductMethod,
}

func TestDominant_Simple(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]float64{{2, 1}, {1, 2}})
	for name, fn := range dominantMethods {
		d, err := fn(a, []float64{1, 0}, 1e-10, 1000)
		require.NoError(t, err, name)
		assert.InDelta(t, 3.0, d.Value, 1e-9, name)
		assert.LessOrEqual(t, d.Error, 1e-10, name)
		assert.InDelta(t, 1.0, matrix.Norm2(d.Vector), 1e-12, name)
		assert.InDelta(t, math.Abs(d.Vector[0]), math.Abs(d.Vector[1]), 1e-6, name)
		assert.Positive(t, d.Steps, name)
	}
}

// TestDominant_NegativeValue: a negative dominant eigenvalue keeps its sign.
func TestDominant_NegativeValue(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]float64{{-5, 0}, {0, 1}})
	for name, fn := range dominantMethods {
		d, err := fn(a, []float64{1, 1}, 1e-9, 1000)
		require.NoError(t, err, name)
		assert.InDelta(t, -5.0, d.Value, 1e-8, name)
	}
}

// TestDominant_MatchesJacobi cross-checks against the full solver.
func TestDominant_MatchesJacobi(t *testing.T) {
	t.Parallel()

	a := randomSymmetric(t, 6, 8)
	res, err := eigen.Solve(a, eigen.KindLargestOffDiagonal, 1e-10, 10_000)
	require.NoError(t, err)
	sorted := res.Sorted()
	want := sorted[len(sorted)-1] // positive entries ⇒ Perron root dominates

	x0, err := builder.RandomVector(6, builder.WithSeed(1))
	require.NoError(t, err)
	orig := append([]float64(nil), x0...)
	for name, fn := range dominantMethods {
		d, err := fn(a, x0, 1e-9, 10_000)
		require.NoError(t, err, name)
		assert.InDelta(t, want, d.Value, 1e-6, name)
	}
	assert.Equal(t, orig, x0, "start vector must not be modified")
}

func TestDominant_Errors(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]float64{{2, 1}, {1, 2}})
	for name, fn := range dominantMethods {
		_, err := fn(nil, []float64{1, 0}, 1e-9, 10)
		assert.ErrorIs(t, err, eigen.ErrInvalidInput, name)
		_, err = fn(a, []float64{1}, 1e-9, 10)
		assert.ErrorIs(t, err, eigen.ErrInvalidInput, name)
		_, err = fn(a, []float64{0, 0}, 1e-9, 10)
		assert.ErrorIs(t, err, eigen.ErrInvalidInput, name)
		_, err = fn(a, []float64{1, 0}, 0, 10)
		assert.ErrorIs(t, err, eigen.ErrInvalidInput, name)
		_, err = fn(a, []float64{1, 0}, 1e-9, 0)
		assert.ErrorIs(t, err, eigen.ErrInvalidInput, name)

		// ±λ of equal magnitude never settles.
		osc := mustDense(t, [][]float64{{0, 1}, {1, 0}})
		_, err = fn(osc, []float64{1, 0}, 1e-12, 50)
		assert.ErrorIs(t, err, eigen.ErrNumericDivergence, name)
	}
}
