// SPDX-License-Identifier: MIT
// Package: eigen
//
// options.go: functional options for Solve.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (programmer error); Solve itself never panics on user data.
//   • Defaults live in newConfig only.
//
// Deterministic defaults:
//   • vectors   = false (no eigenvector accumulation)
//   • hook      = nil
//   • logger    = discard
//   • workers   = 1 (sequential LargestOffDiagonal scan)
//   • symmetry  = not checked

package eigen

import (
	"io"
	"log/slog"
	"math"
)

// Option customizes a Solve call.
type Option func(*config)

// config is the resolved option set of one Solve call.
type config struct {
	vectors  bool
	hook     func(Step)
	logger   *slog.Logger
	workers  int
	checkSym bool
	symTol   float64
}

// newConfig applies opts over the defaults, in order (last writer wins).
func newConfig(opts ...Option) config {
	cfg := config{
		logger:  slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
		workers: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithEigenvectors accumulates V = R₁·R₂·…·R_k; its columns are returned in
// Result.Vectors, column c pairing with Result.Values[c].
func WithEigenvectors() Option {
	return func(c *config) { c.vectors = true }
}

// WithStepHook registers fn to observe every rotation after it is applied.
// Panics on nil fn.
func WithStepHook(fn func(Step)) Option {
	if fn == nil {
		panic("eigen: WithStepHook(nil)")
	}

	return func(c *config) { c.hook = fn }
}

// WithLogger routes per-step Debug records and a completion record to l.
// Panics on nil l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("eigen: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}

// WithParallelScan lets KindLargestOffDiagonal scan rows with up to workers
// goroutines. The chosen pivots are identical to the sequential scan.
// Ignored by the other kinds. Panics when workers < 1.
func WithParallelScan(workers int) Option {
	if workers < 1 {
		panic("eigen: WithParallelScan: workers must be >= 1")
	}

	return func(c *config) { c.workers = workers }
}

// WithSymmetryCheck rejects inputs with |a_ij − a_ji| > tol before iterating.
// Panics unless tol is finite and ≥ 0.
func WithSymmetryCheck(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic("eigen: WithSymmetryCheck: tol must be finite and >= 0")
	}

	return func(c *config) {
		c.checkSym = true
		c.symTol = tol
	}
}
