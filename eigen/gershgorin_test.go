package eigen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jacobi/eigen"
	"github.com/katalvlaran/jacobi/matrix"
)

func TestGershgorinBounds(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]float64{
		{10, -1, 2},
		{-1, 5, 0},
		{2, 0, -3},
	})
	ivs, err := eigen.GershgorinBounds(a)
	require.NoError(t, err)
	require.Equal(t, []eigen.Interval{
		{Center: 10, Radius: 3},
		{Center: 5, Radius: 1},
		{Center: -3, Radius: 2},
	}, ivs)

	assert.Equal(t, 7.0, ivs[0].Lo())
	assert.Equal(t, 13.0, ivs[0].Hi())
	assert.True(t, ivs[2].Contains(-5))
	assert.False(t, ivs[2].Contains(-5.0001))
	assert.True(t, ivs[2].ContainsTol(-5.0001, 1e-3))
	assert.Equal(t, "-5.00 <= z <= -1.00", ivs[2].String())

	assert.True(t, eigen.InUnion(ivs, 4.5))
	assert.False(t, eigen.InUnion(ivs, 0))
}

func TestGershgorinBounds_Errors(t *testing.T) {
	t.Parallel()

	_, err := eigen.GershgorinBounds(nil)
	assert.ErrorIs(t, err, eigen.ErrInvalidInput)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = eigen.GershgorinBounds(mustDense(t, [][]float64{{1, 2}}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	bad, err := matrix.NewDenseFromRows([][]float64{{math.NaN(), 0}, {0, 1}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	_, err = eigen.GershgorinBounds(bad)
	assert.ErrorIs(t, err, eigen.ErrNumericDivergence)
}
