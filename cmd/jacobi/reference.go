// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/jacobi/matrix"
)

var errReferenceFailed = errors.New("reference eigensolver did not converge")

// referenceValues returns the ascending spectrum of the symmetric matrix a
// computed by gonum's LAPACK-backed EigenSym.
func referenceValues(a *matrix.Dense) ([]float64, error) {
	n := a.Rows()
	data := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		data = append(data, a.RawRowView(i)...)
	}

	var es mat.EigenSym
	if !es.Factorize(mat.NewSymDense(n, data), false) {
		return nil, errReferenceFailed
	}

	return es.Values(nil), nil
}

// maxAbsDiff returns max_i |a_i − b_i| over equal-length slices.
func maxAbsDiff(a, b []float64) float64 {
	var d float64
	for i := range a {
		d = math.Max(d, math.Abs(a[i]-b[i]))
	}

	return d
}

// dominantOf returns the value of largest magnitude in an ascending spectrum.
func dominantOf(sorted []float64) float64 {
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if math.Abs(lo) > math.Abs(hi) {
		return lo
	}

	return hi
}
