package eigen_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jacobi/eigen"
)

// TestBuildRotation_UnitCircle checks cos²+sin² = 1 over random and edge inputs.
func TestBuildRotation_UnitCircle(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	cases := [][3]float64{ // aii, ajj, aij
		{2, 2, 1},          // degenerate
		{1, 1 + 1e-17, 5},  // degenerate within machine epsilon
		{1e300, -1e300, 1}, // extreme y
		{0, 0, 0},
		{3, 1, 0},   // nothing to rotate
		{1, 3, -4},  // negative pivot
		{-2, 5, 1e-200},
	}
	for i := 0; i < 200; i++ {
		cases = append(cases, [3]float64{rng.NormFloat64() * 50, rng.NormFloat64() * 50, rng.NormFloat64() * 50})
	}

	for _, c := range cases {
		a := mustDense(t, [][]float64{{c[0], c[2]}, {c[2], c[1]}})
		r := eigen.BuildRotation(eigen.Pivot{I: 0, J: 1}, a)
		assert.InDeltaf(t, 1.0, r.Cos*r.Cos+r.Sin*r.Sin, 1e-12, "case %v", c)
		assert.GreaterOrEqual(t, r.Cos, math.Sqrt2/2-1e-15)
	}
}

// TestBuildRotation_Degenerate checks the π/4 fallback flag.
func TestBuildRotation_Degenerate(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]float64{{2, 1}, {1, 2}})
	r := eigen.BuildRotation(eigen.Pivot{I: 0, J: 1}, a)
	assert.True(t, r.Degenerate)
	assert.Equal(t, r.Cos, r.Sin)
	assert.InDelta(t, 1/math.Sqrt2, r.Cos, 1e-15)

	b := mustDense(t, [][]float64{{4, 1}, {1, 2}})
	assert.False(t, eigen.BuildRotation(eigen.Pivot{I: 0, J: 1}, b).Degenerate)
}

// TestRotation_Embed verifies the materialized matrix is orthogonal and
// annihilates the pivot in Rᵗ·A·R.
func TestRotation_Embed(t *testing.T) {
	t.Parallel()

	a := randomSymmetric(t, 5, 11)
	p := eigen.Pivot{I: 1, J: 3}
	r := eigen.BuildRotation(p, a)
	R, err := r.Embed(5)
	require.NoError(t, err)

	v, _ := R.At(1, 3)
	assert.Equal(t, r.Sin, v)
	v, _ = R.At(3, 1)
	assert.Equal(t, -r.Sin, v)

	b, err := rotated(a, R)
	require.NoError(t, err)
	v, _ = b.At(1, 3)
	assert.InDelta(t, 0, v, 1e-12)

	_, err = r.Embed(3)
	assert.ErrorIs(t, err, eigen.ErrInvalidInput)
}
