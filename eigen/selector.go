// SPDX-License-Identifier: MIT
// Package: eigen
//
// selector.go: pivot selection strategy abstraction.
//
// Contract:
//   - Choose returns an off-diagonal pivot of the current working matrix.
//   - Update runs after the rotation for that pivot has been applied, so
//     stateful strategies can refresh cached data in O(n).
//   - A selector is created fresh for every Solve call from the working
//     matrix and must not be shared between solves.

package eigen

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/jacobi/matrix"
)

// PivotSelector decides which off-diagonal entry the next rotation annihilates.
type PivotSelector interface {
	// Choose returns the next pivot. NaN in the data it inspects yields
	// ErrNumericDivergence.
	Choose(a *matrix.Dense) (Pivot, error)

	// Update informs the selector that the rotation at p was applied to a.
	Update(p Pivot, a *matrix.Dense)
}

// Compile-time conformance.
var (
	_ PivotSelector = (*LargestOffDiagonal)(nil)
	_ PivotSelector = (*CyclicSweep)(nil)
	_ PivotSelector = (*RowNormWeighted)(nil)
)

// SelectorKind enumerates the built-in strategies. The zero value is not a
// valid kind.
type SelectorKind int

const (
	// KindLargestOffDiagonal picks max |a_ij| over the whole matrix.
	KindLargestOffDiagonal SelectorKind = iota + 1
	// KindCyclicSweep walks (i<j) pairs in row-major order, wrapping around.
	KindCyclicSweep
	// KindRowNormWeighted picks the row with the largest Σ_{j≠i} a_ij², then its largest entry.
	KindRowNormWeighted
)

var kindNames = map[SelectorKind]string{
	KindLargestOffDiagonal: "largest",
	KindCyclicSweep:        "cyclic",
	KindRowNormWeighted:    "row-norm",
}

// Kinds lists every valid kind in declaration order.
func Kinds() []SelectorKind {
	return []SelectorKind{KindLargestOffDiagonal, KindCyclicSweep, KindRowNormWeighted}
}

// String returns the short name ("largest", "cyclic", "row-norm").
func (k SelectorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("SelectorKind(%d)", int(k))
}

// Valid reports whether k names a built-in strategy.
func (k SelectorKind) Valid() bool {
	_, ok := kindNames[k]

	return ok
}

// ParseSelectorKind resolves a short name (case-insensitive).
// Errors: ErrInvalidInput for unknown names.
func ParseSelectorKind(name string) (SelectorKind, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, k := range Kinds() {
		if kindNames[k] == want {
			return k, nil
		}
	}

	return 0, eigenErrorf("ParseSelectorKind", ErrInvalidInput, "unknown selector %q", name)
}

// New creates a fresh selector of kind k bound to the working matrix a.
// Errors: ErrInvalidInput for an unknown kind or a matrix smaller than 2×2.
// Complexity: O(n²) for RowNormWeighted (initial row sums), O(1) otherwise.
func (k SelectorKind) New(a *matrix.Dense) (PivotSelector, error) {
	return newSelector(k, a, 1)
}

// newSelector is New with the parallel-scan width of LargestOffDiagonal.
func newSelector(k SelectorKind, a *matrix.Dense, workers int) (PivotSelector, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, invalidInput(opSelector, err)
	}
	n := a.Rows()
	if n < 2 {
		return nil, eigenErrorf(opSelector, ErrInvalidInput, "n=%d < 2", n)
	}

	switch k {
	case KindLargestOffDiagonal:
		return newLargestOffDiagonal(workers), nil
	case KindCyclicSweep:
		return NewCyclicSweep(n), nil
	case KindRowNormWeighted:
		return NewRowNormWeighted(a), nil
	default:
		return nil, eigenErrorf(opSelector, ErrInvalidInput, "unknown kind %v", k)
	}
}
