package eigen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jacobi/builder"
	"github.com/katalvlaran/jacobi/matrix"
)

// TestApplySimilarity_MatchesProduct compares the in-place update with the
// explicit Rᵗ·A·R product for every pivot of a random matrix, both orders.
func TestApplySimilarity_MatchesProduct(t *testing.T) {
	t.Parallel()

	const n = 5
	base, err := builder.BuildMatrix(builder.RandomSymmetric(n), builder.WithSeed(5))
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			p := Pivot{I: i, J: j}
			work := base.Clone().(*matrix.Dense)
			r := BuildRotation(p, work)

			R, err := r.Embed(n)
			require.NoError(t, err)
			Rt, err := matrix.Transpose(R)
			require.NoError(t, err)
			tmp, err := matrix.Mul(Rt, base)
			require.NoError(t, err)
			want, err := matrix.Mul(tmp, R)
			require.NoError(t, err)

			applySimilarity(work, r)
			ok, err := matrix.AllClose(work, want, 0, 1e-10)
			require.NoError(t, err)
			assert.Truef(t, ok, "pivot %v:\n%v\nwant\n%v", p, work, want)
			require.NoError(t, matrix.ValidateSymmetric(work, 0))
			g, _ := work.At(i, j)
			assert.InDelta(t, 0, g, 1e-10)
		}
	}
}

// TestAccumulate_MatchesProduct checks V·R against matrix.Mul.
func TestAccumulate_MatchesProduct(t *testing.T) {
	t.Parallel()

	const n = 4
	v, err := builder.BuildMatrix(builder.RandomSymmetric(n), builder.WithSeed(9))
	require.NoError(t, err)
	r := Rotation{Pivot: Pivot{I: 2, J: 0}, Cos: 0.8, Sin: -0.6}
	R, err := r.Embed(n)
	require.NoError(t, err)
	want, err := matrix.Mul(v, R)
	require.NoError(t, err)

	accumulate(v, r)
	ok, err := matrix.AllClose(v, want, 0, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok)
}
