// SPDX-License-Identifier: MIT
// Package: eigen
//
// gershgorin.go: Gershgorin disc bounds.
//
// For a symmetric matrix every eigenvalue lies in the union of the real
// intervals [a_ii − r_i, a_ii + r_i] with r_i = Σ_{j≠i} |a_ij|. The bounds
// are an independent check on any computed spectrum; Solve never consults them.

package eigen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/jacobi/matrix"
)

// Interval is the real Gershgorin disc of one row.
type Interval struct {
	Center float64 // a_ii
	Radius float64 // Σ_{j≠i} |a_ij|, never negative
}

// Lo is Center − Radius.
func (iv Interval) Lo() float64 { return iv.Center - iv.Radius }

// Hi is Center + Radius.
func (iv Interval) Hi() float64 { return iv.Center + iv.Radius }

// Contains reports whether Lo ≤ x ≤ Hi.
func (iv Interval) Contains(x float64) bool {
	return iv.Lo() <= x && x <= iv.Hi()
}

// ContainsTol is Contains with both ends widened by tol.
func (iv Interval) ContainsTol(x, tol float64) bool {
	return iv.Lo()-tol <= x && x <= iv.Hi()+tol
}

// String renders "lo <= z <= hi" with two decimals.
func (iv Interval) String() string {
	return fmt.Sprintf("%.2f <= z <= %.2f", iv.Lo(), iv.Hi())
}

// InUnion reports whether x lies in at least one interval.
func InUnion(ivs []Interval, x float64) bool {
	for _, iv := range ivs {
		if iv.Contains(x) {
			return true
		}
	}

	return false
}

// GershgorinBounds returns one interval per row of the square matrix m.
// Errors: ErrInvalidInput (joined with matrix.ErrNilMatrix / ErrNonSquare);
// ErrNumericDivergence when an entry is NaN.
// Complexity: O(n²).
func GershgorinBounds(m matrix.Matrix) ([]Interval, error) {
	centers, err := matrix.Diagonal(m)
	if err != nil {
		return nil, invalidInput(opGershgorin, err)
	}
	radii, err := matrix.OffDiagonalRowSums(m)
	if err != nil {
		return nil, invalidInput(opGershgorin, err)
	}

	out := make([]Interval, len(centers))
	for i := range centers {
		if math.IsNaN(centers[i]) || math.IsNaN(radii[i]) {
			return nil, eigenErrorf(opGershgorin, ErrNumericDivergence, "NaN in row %d", i)
		}
		out[i] = Interval{Center: centers[i], Radius: radii[i]}
	}

	return out, nil
}
