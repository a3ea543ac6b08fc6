// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed and ordering with WithRand.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, rng should be nil (deterministic behavior)
	cfgDefault := newBuilderConfig()
	assert.Nil(t, cfgDefault.rng)

	// 2. Same seed, same stream
	a := newBuilderConfig(WithSeed(7))
	b := newBuilderConfig(WithSeed(7))
	require.NotNil(t, a.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())

	// 3. Later option wins
	r := rand.New(rand.NewSource(1))
	cfg := newBuilderConfig(WithSeed(7), WithRand(r))
	assert.Same(t, r, cfg.rng)

	// 4. nil options are ignored
	assert.NotPanics(t, func() { _ = newBuilderConfig(nil) })
}

// TestScaleOptions verifies scale resolution and the panicking guard.
func TestScaleOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, defaultVectorScale, newBuilderConfig().scaleOr(defaultVectorScale))
	assert.Equal(t, 3.0, newBuilderConfig(WithScale(3)).scaleOr(defaultVectorScale))

	assert.Panics(t, func() { WithScale(0) })
	assert.Panics(t, func() { WithScale(-1) })
	assert.Panics(t, func() { WithScale(math.NaN()) })
	assert.Panics(t, func() { WithRand(nil) })
}
