// SPDX-License-Identifier: MIT
// Package: eigen
//
// largest.go: classic Jacobi pivot: the largest off-diagonal magnitude.
//
// Determinism:
//   - Row-major scan with strict '>' keeps the FIRST maximal entry.
//   - The parallel variant splits rows into contiguous blocks, finds each
//     block's first maximum and reduces the winners in block order with the
//     same strict '>', which selects exactly the sequential answer.

package eigen

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/jacobi/matrix"
)

// minRowsPerWorker keeps tiny blocks from paying goroutine overhead.
const minRowsPerWorker = 32

// LargestOffDiagonal selects argmax_{i≠j} |a_ij|. It keeps no state.
type LargestOffDiagonal struct {
	workers int
}

// NewLargestOffDiagonal returns the sequential scanner.
func NewLargestOffDiagonal() *LargestOffDiagonal {
	return newLargestOffDiagonal(1)
}

func newLargestOffDiagonal(workers int) *LargestOffDiagonal {
	if workers < 1 {
		workers = 1
	}

	return &LargestOffDiagonal{workers: workers}
}

// blockBest is the first maximum found in one row block.
type blockBest struct {
	pivot Pivot
	mag   float64
	found bool
}

// Choose scans every off-diagonal entry.
// Errors: ErrNumericDivergence on NaN.
// Complexity: O(n²) time, O(workers) extra space.
func (s *LargestOffDiagonal) Choose(a *matrix.Dense) (Pivot, error) {
	n := a.Rows()
	workers := s.workers
	if limit := n / minRowsPerWorker; workers > limit {
		workers = limit
	}
	if workers <= 1 {
		best, err := scanRows(a, 0, n)
		if err != nil {
			return Pivot{}, err
		}

		return best.pivot, nil
	}

	// Contiguous row blocks; the last one absorbs the remainder.
	per := n / workers
	bests := make([]blockBest, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo, hi := w*per, (w+1)*per
		if w == workers-1 {
			hi = n
		}
		g.Go(func() error {
			b, err := scanRows(a, lo, hi)
			bests[w] = b

			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Pivot{}, err
	}

	winner := blockBest{mag: -1}
	for _, b := range bests {
		if b.found && b.mag > winner.mag {
			winner = b
		}
	}

	return winner.pivot, nil
}

// Update is a no-op: the scan is recomputed on every Choose.
func (s *LargestOffDiagonal) Update(Pivot, *matrix.Dense) {}

// scanRows returns the first maximum |a_ij| (j ≠ i) over rows [lo, hi).
func scanRows(a *matrix.Dense, lo, hi int) (blockBest, error) {
	best := blockBest{mag: -1}
	var (
		i, j int
		v    float64
		row  []float64
	)
	for i = lo; i < hi; i++ {
		row = a.RawRowView(i)
		for j = 0; j < len(row); j++ {
			if j == i {
				continue
			}
			v = math.Abs(row[j])
			if math.IsNaN(v) {
				return best, eigenErrorf(opChoose, ErrNumericDivergence, "NaN at %v", Pivot{I: i, J: j})
			}
			if v > best.mag {
				best = blockBest{pivot: Pivot{I: i, J: j}, mag: v, found: true}
			}
		}
	}

	return best, nil
}
