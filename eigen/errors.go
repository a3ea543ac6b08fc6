// SPDX-License-Identifier: MIT
// Package: eigen
//
// errors.go: sentinel errors for the eigen package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached at the detection site: "<Op>: <detail>: %w".
//   • When a matrix validator rejected the input, its sentinel is joined
//     next to ErrInvalidInput so both match.
//   • A degenerate rotation (a_ii ≈ a_jj) is handled inside BuildRotation
//     and never surfaces as an error.

package eigen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates a contract violation detected before iteration:
	// nil or non-square matrix, n ≤ 1, non-positive or non-finite epsilon,
	// negative iteration cap, unknown selector kind.
	ErrInvalidInput = errors.New("eigen: invalid input")

	// ErrNumericDivergence indicates NaN/Inf appeared during iteration, or the
	// iteration cap was exhausted before the tolerance was met.
	ErrNumericDivergence = errors.New("eigen: numeric divergence")
)

// Operation tags used in wrapped errors.
const (
	opSolve      = "Solve"
	opChoose     = "Choose"
	opGershgorin = "GershgorinBounds"
	opPower      = "PowerIteration"
	opScalar     = "ScalarProductMethod"
	opEmbed      = "Rotation.Embed"
	opSelector   = "SelectorKind.New"
)

// eigenErrorf wraps sentinel with an operation tag and a formatted detail.
// Complexity: O(len(format)).
func eigenErrorf(op string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), sentinel)
}

// invalidInput joins ErrInvalidInput with the underlying validator error so
// errors.Is matches either sentinel.
func invalidInput(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrInvalidInput, cause)
}
