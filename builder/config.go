// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng   = nil (pure/deterministic unless seeded)
//   • scale = 0, resolved per constructor (RandomSymmetric: 100, RandomVector: 70)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic entries; nil means "no randomness".
	rng *rand.Rand
	// Upper bound of U[0,scale) draws; only meaningful when scaleSet.
	scale    float64
	scaleSet bool
}

// Per-constructor default scales (named, no magic numbers).
const (
	defaultSymmetricScale = 100.0 // RandomSymmetric entries in [0,100)
	defaultVectorScale    = 70.0  // RandomVector entries in [0,70)
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// scaleOr returns the configured scale or def when none was set.
func (c builderConfig) scaleOr(def float64) float64 {
	if c.scaleSet {
		return c.scale
	}

	return def
}
