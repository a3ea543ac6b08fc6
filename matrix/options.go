// SPDX-License-Identifier: MIT
// Package matrix: functional options for the numeric policy.
//
// Contract:
//   - Options are functional (type Option func(*Options)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs; kernels never panic.
//   - Defaults live in exactly one place (defaultOptions) and are documented below.
//
// Deterministic defaults:
//   - eps            = DefaultEpsilon        (symmetry / closeness checks)
//   - validateNaNInf = DefaultValidateNaNInf (reject NaN/±Inf in Set/Apply)

package matrix

import "math"

// ---------- Default numeric policy ----------

const (
	// DefaultEpsilon is the tolerance used by structural checks when none is given.
	DefaultEpsilon = 1e-12

	// DefaultValidateNaNInf rejects NaN and ±Inf at Set/Apply when true.
	DefaultValidateNaNInf = true
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates the resolved Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; use the accessors for read-only inspection.
type Options struct {
	eps            float64 // >= 0
	validateNaNInf bool    // numeric guard for newly created matrices
}

// Epsilon returns the resolved structural tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether finite-only admission is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithEpsilon sets the numeric tolerance used by structural checks.
// Panics when eps is NaN, ±Inf or negative (programmer error).
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value admission (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN/±Inf pass through Set and Apply.
//
// Notes:
//   - Iterative solvers use this on their private working copy so that a
//     numerical blow-up can be observed and reported as divergence instead
//     of being rejected mid-update.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves option setters against the documented defaults.
// Last writer wins. Complexity: O(len(opts)).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user setters on top of defaultOptions in order.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o) // last-writer-wins
		}
	}

	return o
}
