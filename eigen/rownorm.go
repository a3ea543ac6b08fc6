// SPDX-License-Identifier: MIT
// Package: eigen
//
// rownorm.go: pivot selection weighted by off-diagonal row energy.
//
// State:
//   - sums[i] = Σ_{j≠i} a_ij², computed once in O(n²).
//
// Incremental update:
//   - A rotation in plane (i,j) rewrites rows/columns i and j only. For any
//     other row k the pair (a_ki, a_kj) is rotated, so a_ki² + a_kj² and
//     therefore sums[k] are unchanged. Only sums[i] and sums[j] are
//     recomputed, in O(n).

package eigen

import (
	"math"

	"github.com/katalvlaran/jacobi/matrix"
)

// RowNormWeighted selects the row with the largest off-diagonal energy and,
// within it, the entry of largest magnitude.
type RowNormWeighted struct {
	sums []float64
}

// NewRowNormWeighted initialises the cached row sums from a.
// Complexity: O(n²).
func NewRowNormWeighted(a *matrix.Dense) *RowNormWeighted {
	n := a.Rows()
	s := &RowNormWeighted{sums: make([]float64, n)}
	for i := 0; i < n; i++ {
		s.sums[i] = rowEnergy(a, i)
	}

	return s
}

// Choose picks i = argmax sums (first on ties), then j = argmax_{j≠i} |a_ij|
// (first on ties). The returned pivot may have I > J.
// Errors: ErrNumericDivergence on NaN.
// Complexity: O(n).
func (s *RowNormWeighted) Choose(a *matrix.Dense) (Pivot, error) {
	bi, best := -1, -1.0
	for i, v := range s.sums {
		if math.IsNaN(v) {
			return Pivot{}, eigenErrorf(opChoose, ErrNumericDivergence, "NaN row energy at row %d", i)
		}
		if v > best {
			bi, best = i, v
		}
	}

	row := a.RawRowView(bi)
	bj, best := -1, -1.0
	var v float64
	for j := range row {
		if j == bi {
			continue
		}
		v = math.Abs(row[j])
		if math.IsNaN(v) {
			return Pivot{}, eigenErrorf(opChoose, ErrNumericDivergence, "NaN at %v", Pivot{I: bi, J: j})
		}
		if v > best {
			bj, best = j, v
		}
	}

	return Pivot{I: bi, J: bj}, nil
}

// Update recomputes the cached sums of rows p.I and p.J.
// Complexity: O(n).
func (s *RowNormWeighted) Update(p Pivot, a *matrix.Dense) {
	s.sums[p.I] = rowEnergy(a, p.I)
	s.sums[p.J] = rowEnergy(a, p.J)
}

// Sums returns a copy of the cached row energies.
func (s *RowNormWeighted) Sums() []float64 {
	out := make([]float64, len(s.sums))
	copy(out, s.sums)

	return out
}

// rowEnergy returns Σ_{j≠i} a_ij².
func rowEnergy(a *matrix.Dense, i int) float64 {
	row := a.RawRowView(i)
	acc := matrix.ZeroSum
	for j, v := range row {
		if j != i {
			acc += v * v
		}
	}

	return acc
}
