// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a constructor by mutating a builderConfig
// instance before the matrix is generated.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithScale sets the upper bound of uniformly drawn entries for
// RandomSymmetric and RandomVector. Panics unless scale is finite and > 0.
func WithScale(scale float64) BuilderOption {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		panic("builder: WithScale: scale must be finite and > 0")
	}
	return func(c *builderConfig) {
		c.scale = scale
		c.scaleSet = true
	}
}
