// SPDX-License-Identifier: MIT

package eigen

import "github.com/katalvlaran/jacobi/matrix"

// CyclicSweep visits the pairs (i<j) in row-major order:
// (0,1),(0,2),…,(0,n−1),(1,2),…,(n−2,n−1), then wraps to (0,1).
// The sequence ignores matrix values entirely.
type CyclicSweep struct {
	n    int
	i, j int
}

// NewCyclicSweep returns a cursor positioned at (0,1) for an n×n matrix, n ≥ 2.
func NewCyclicSweep(n int) *CyclicSweep {
	return &CyclicSweep{n: n, i: 0, j: 1}
}

// Choose returns the pivot under the cursor. It never fails.
func (s *CyclicSweep) Choose(*matrix.Dense) (Pivot, error) {
	return Pivot{I: s.i, J: s.j}, nil
}

// Update advances the cursor to the next pair, wrapping after (n−2,n−1).
func (s *CyclicSweep) Update(Pivot, *matrix.Dense) {
	s.j++
	if s.j < s.n {
		return
	}
	s.i++
	s.j = s.i + 1
	if s.j >= s.n {
		s.i, s.j = 0, 1
	}
}
