// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with builderErrorf (method prefix + %w).
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates that a size parameter (n) is smaller than the
// allowed minimum for the requested constructor.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownKind indicates that ByName received a generator name it does not know.
var ErrUnknownKind = errors.New("builder: unknown matrix kind")

// builderErrorf prefixes err with the constructor name and a formatted detail,
// preserving the sentinel for errors.Is: "<Method>: <detail>: <err>".
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
