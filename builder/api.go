// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildMatrix(con, opts...). Resolves cfg, runs con, returns the matrix.
//   - Public constructors are declared in impl_*.go and return a Constructor closure.
//   - Determinism: same constructor, options and seed ⇒ identical matrices.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/jacobi/matrix"
)

// Constructor produces a square symmetric matrix from the resolved builderConfig.
// Constructors MUST validate parameters early and return sentinel errors.
type Constructor func(cfg builderConfig) (*matrix.Dense, error)

// MatrixSource supplies a dense n×n real matrix on demand.
// The solver side only relies on "returns a valid n×n real array".
type MatrixSource func() (*matrix.Dense, error)

// BuildMatrix resolves options and runs the constructor.
// Constructor errors are wrapped with "BuildMatrix: %w".
// Complexity: O(len(opts)) + cost of the constructor.
func BuildMatrix(con Constructor, opts ...BuilderOption) (*matrix.Dense, error) {
	if con == nil {
		return nil, fmt.Errorf("BuildMatrix: nil constructor: %w", ErrUnknownKind)
	}
	cfg := newBuilderConfig(opts...)
	m, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("BuildMatrix: %w", err)
	}

	return m, nil
}

// Source binds a constructor and its options into a MatrixSource.
// Options are resolved on every call, so a WithSeed source yields the same
// matrix each time while a shared WithRand stream advances.
func Source(con Constructor, opts ...BuilderOption) MatrixSource {
	return func() (*matrix.Dense, error) {
		return BuildMatrix(con, opts...)
	}
}

// Generator kind names accepted by ByName.
const (
	KindHilbert     = "hilbert"
	KindTridiagonal = "tridiagonal"
	KindDiagonal    = "diagonal"
	KindRandom      = "random"
)

var byName = map[string]func(n int) Constructor{
	KindHilbert:     Hilbert,
	KindTridiagonal: Tridiagonal,
	KindDiagonal:    Diagonal,
	KindRandom:      RandomSymmetric,
}

// ByName resolves a generator kind ("hilbert", "tridiagonal", "diagonal",
// "random") into a Constructor of size n.
// Errors: ErrUnknownKind.
func ByName(kind string, n int) (Constructor, error) {
	ctor, ok := byName[kind]
	if !ok {
		return nil, fmt.Errorf("ByName(%q): %w", kind, ErrUnknownKind)
	}

	return ctor(n), nil
}

// Kinds lists the names accepted by ByName in sorted order.
func Kinds() []string {
	out := make([]string, 0, len(byName))
	for k := range byName {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
