// SPDX-License-Identifier: MIT
// Package: eigen
//
// solver.go: the Jacobi eigenvalue iteration.
//
// Flow:
//   1. Validate (fail fast, before any iteration).
//   2. Copy the input into a private *matrix.Dense admitting NaN/Inf, so a
//      numerical blow-up is observed and reported instead of rejected mid-update.
//   3. Loop: stop test → Choose → BuildRotation → Rᵗ·A·R in place → Update.
//   4. Return the diagonal in original row order with the step count.
//
// Termination:
//   - Converged when every row satisfies Σ_{j≠i} |a_ij| < ε, tested before
//     each step (an already diagonal input returns after 0 steps).
//   - The cap bounds the number of rotations; exhausting it is divergence,
//     and no partial result is returned.

package eigen

import (
	"math"
	"sort"

	"github.com/katalvlaran/jacobi/matrix"
)

// DefaultEpsilon is the stop tolerance used by the CLI when none is given.
const DefaultEpsilon = 1e-9

// defaultIterationsPerEntry scales DefaultMaxIterations with n².
const defaultIterationsPerEntry = 50

// DefaultMaxIterations returns a generous rotation cap for an n×n input.
// Classic Jacobi needs a handful of sweeps of n(n−1)/2 rotations each.
func DefaultMaxIterations(n int) int {
	return defaultIterationsPerEntry * n * n
}

// Step describes one applied rotation, as seen by a WithStepHook observer.
type Step struct {
	Index          int      // 1-based rotation count
	Pivot          Pivot    // annihilated entry
	Rotation       Rotation // rotation applied
	PivotMagnitude float64  // |a_ij| before the rotation
	OffDiagonal    float64  // max_i Σ_{j≠i}|a_ij| before the rotation
}

// Result is the outcome of a converged Solve.
type Result struct {
	// Values are the diagonal of the converged matrix in original row order
	// (not sorted).
	Values []float64
	// Steps is the number of rotations applied.
	Steps int
	// Vectors holds eigenvectors as columns when WithEigenvectors was given.
	Vectors *matrix.Dense
	// Selector is the strategy that produced the result.
	Selector SelectorKind
	// Epsilon is the tolerance the result satisfies.
	Epsilon float64
	// OffDiagonal is the final max_i Σ_{j≠i}|a_ij| (< Epsilon).
	OffDiagonal float64
}

// Sorted returns the eigenvalues in ascending order; Values is untouched.
func (r *Result) Sorted() []float64 {
	out := make([]float64, len(r.Values))
	copy(out, r.Values)
	sort.Float64s(out)

	return out
}

// Solve computes all eigenvalues of the real symmetric matrix m.
//
// Implementation:
//   - Stage 1: reject nil/non-square m, n ≤ 1, ε not finite or ≤ 0,
//     maxIterations < 0, unknown kind (and asymmetry with WithSymmetryCheck).
//   - Stage 2: private working copy; fresh selector of the requested kind.
//   - Stage 3: rotate until every off-diagonal row sum is below ε.
//
// Inputs:
//   - m: symmetric matrix (assumed; see WithSymmetryCheck). Never modified.
//   - kind: pivot strategy.
//   - epsilon: per-row off-diagonal tolerance, > 0.
//   - maxIterations: rotation cap, ≥ 0.
//
// Errors:
//   - ErrInvalidInput (joined with matrix.ErrNilMatrix / ErrNonSquare /
//     ErrAsymmetry where applicable).
//   - ErrNumericDivergence on NaN during iteration or an exhausted cap.
//
// Complexity:
//   - Per step: O(n²) stop test, O(n²) or O(n) pivot choice, O(n) update.
//   - Memory: O(n²) working copy (+ O(n²) with eigenvectors).
//
// AI-Hints:
//   - Result.Sorted() for ascending values; GershgorinBounds(m) to bound them.
func Solve(m matrix.Matrix, kind SelectorKind, epsilon float64, maxIterations int, opts ...Option) (*Result, error) {
	// Stage 1: validate
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, invalidInput(opSolve, err)
	}
	n := m.Rows()
	if n <= 1 {
		return nil, eigenErrorf(opSolve, ErrInvalidInput, "n=%d, need at least 2×2", n)
	}
	if math.IsNaN(epsilon) || math.IsInf(epsilon, 0) || epsilon <= 0 {
		return nil, eigenErrorf(opSolve, ErrInvalidInput, "epsilon=%g must be finite and > 0", epsilon)
	}
	if maxIterations < 0 {
		return nil, eigenErrorf(opSolve, ErrInvalidInput, "maxIterations=%d < 0", maxIterations)
	}
	if !kind.Valid() {
		return nil, eigenErrorf(opSolve, ErrInvalidInput, "unknown selector %v", kind)
	}
	cfg := newConfig(opts...)
	if cfg.checkSym {
		if err := matrix.ValidateSymmetric(m, cfg.symTol); err != nil {
			return nil, invalidInput(opSolve, err)
		}
	}

	// Stage 2: working copy and selector
	work, err := matrix.ToDense(m, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, invalidInput(opSolve, err)
	}
	sel, err := newSelector(kind, work, cfg.workers)
	if err != nil {
		return nil, err
	}
	var vectors *matrix.Dense
	if cfg.vectors {
		if vectors, err = matrix.NewIdentity(n, matrix.WithNoValidateNaNInf()); err != nil {
			return nil, invalidInput(opSolve, err)
		}
	}

	// Stage 3: iterate
	var (
		steps int
		off   float64
		p     Pivot
		rot   Rotation
		mag   float64
	)
	for {
		if off, err = offDiagonalExtent(work); err != nil {
			cfg.logger.Warn("jacobi diverged", "selector", kind.String(), "steps", steps)

			return nil, err
		}
		if off < epsilon {
			break
		}
		if steps == maxIterations {
			cfg.logger.Warn("jacobi iteration cap exhausted",
				"selector", kind.String(), "steps", steps, "off_diagonal", off, "epsilon", epsilon)

			return nil, eigenErrorf(opSolve, ErrNumericDivergence,
				"no convergence after %d rotations (off-diagonal %g ≥ %g)", steps, off, epsilon)
		}

		if p, err = sel.Choose(work); err != nil {
			return nil, eigenErrorf(opSolve, err, "step %d", steps+1)
		}
		mag = math.Abs(work.RawRowView(p.I)[p.J])
		rot = BuildRotation(p, work)
		applySimilarity(work, rot)
		if vectors != nil {
			accumulate(vectors, rot)
		}
		sel.Update(p, work)
		steps++

		cfg.logger.Debug("jacobi rotation",
			"step", steps, "pivot", p.String(), "magnitude", mag,
			"cos", rot.Cos, "sin", rot.Sin, "degenerate", rot.Degenerate)
		if cfg.hook != nil {
			cfg.hook(Step{Index: steps, Pivot: p, Rotation: rot, PivotMagnitude: mag, OffDiagonal: off})
		}
	}

	// Stage 4: finalize
	values, err := matrix.Diagonal(work)
	if err != nil {
		return nil, invalidInput(opSolve, err)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, eigenErrorf(opSolve, ErrNumericDivergence, "non-finite diagonal entry %d", i)
		}
	}
	cfg.logger.Info("jacobi converged",
		"selector", kind.String(), "n", n, "steps", steps, "epsilon", epsilon, "off_diagonal", off)

	return &Result{
		Values:      values,
		Steps:       steps,
		Vectors:     vectors,
		Selector:    kind,
		Epsilon:     epsilon,
		OffDiagonal: off,
	}, nil
}

// offDiagonalExtent returns max_i Σ_{j≠i}|a_ij|.
// Errors: ErrNumericDivergence when any row sum is NaN.
// Complexity: O(n²).
func offDiagonalExtent(a *matrix.Dense) (float64, error) {
	n := a.Rows()
	var (
		i, j  int
		acc   float64
		worst float64
		row   []float64
	)
	for i = 0; i < n; i++ {
		row = a.RawRowView(i)
		acc = matrix.ZeroSum
		for j = 0; j < n; j++ {
			if j != i {
				acc += math.Abs(row[j])
			}
		}
		if math.IsNaN(acc) {
			return 0, eigenErrorf(opSolve, ErrNumericDivergence, "NaN in row %d", i)
		}
		if acc > worst {
			worst = acc
		}
	}

	return worst, nil
}
