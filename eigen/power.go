// SPDX-License-Identifier: MIT
// Package: eigen
//
// power.go: the partial eigenvalue problem: the dominant eigenvalue only.
//
// Both methods iterate x_{k+1} = A·x_k from a caller-supplied start vector
// and stop on the a-posteriori error ‖x_{k+1} − λ·x_k‖ / ‖x_k‖ ≤ ε.
// The iterate is rescaled to unit length every step; the estimate and the
// error ratio are invariant under that scaling, and overflow is avoided.

package eigen

import (
	"math"

	"github.com/katalvlaran/jacobi/matrix"
)

// Dominant is the outcome of PowerIteration or ScalarProductMethod.
type Dominant struct {
	Value  float64   // eigenvalue estimate of largest magnitude
	Vector []float64 // unit-length eigenvector estimate
	Error  float64   // final a-posteriori error
	Steps  int       // matrix-vector products with A
}

// PowerIteration estimates the dominant eigenvalue with λ_k = ±‖A·x_k‖/‖x_k‖.
// The sign is that of x_k·A·x_k, so a negative dominant eigenvalue converges too.
//
// Errors:
//   - ErrInvalidInput: m nil/non-square, len(x0) ≠ n, x0 zero or non-finite,
//     ε not finite or ≤ 0, maxIterations < 1.
//   - ErrNumericDivergence: NaN/Inf during iteration or cap exhausted.
//
// Complexity: O(n²) per step.
func PowerIteration(m matrix.Matrix, x0 []float64, epsilon float64, maxIterations int) (*Dominant, error) {
	x, err := validatePartial(opPower, m, x0, epsilon, maxIterations)
	if err != nil {
		return nil, err
	}

	var (
		y          []float64
		lambda, nx float64
		dot        float64
		residual   float64
	)
	for step := 1; step <= maxIterations; step++ {
		if y, err = matrix.MatVec(m, x); err != nil {
			return nil, invalidInput(opPower, err)
		}
		nx = matrix.Norm2(y) // ‖x‖ = 1
		dot, _ = matrix.Dot(x, y)
		lambda = math.Copysign(nx, dot)
		residual = posteriorError(x, y, lambda)
		if math.IsNaN(residual) || math.IsInf(residual, 0) {
			return nil, eigenErrorf(opPower, ErrNumericDivergence, "non-finite iterate at step %d", step)
		}
		if nx == 0 {
			// A·x = 0: x is an eigenvector for 0.
			return &Dominant{Value: 0, Vector: x, Error: 0, Steps: step}, nil
		}
		x = scaled(y, 1/nx)
		if residual <= epsilon {
			return &Dominant{Value: lambda, Vector: x, Error: residual, Steps: step}, nil
		}
	}

	return nil, eigenErrorf(opPower, ErrNumericDivergence,
		"no convergence after %d steps (error %g > %g)", maxIterations, residual, epsilon)
}

// ScalarProductMethod estimates the dominant eigenvalue with
// λ_k = (x_{k+1}·y_{k+1}) / (x_k·y_{k+1}), where x iterates on A and y on Aᵗ.
// It converges faster than PowerIteration for symmetric A.
//
// Errors: as PowerIteration; a vanishing denominator is divergence.
// Complexity: O(n²) per step.
func ScalarProductMethod(m matrix.Matrix, x0 []float64, epsilon float64, maxIterations int) (*Dominant, error) {
	x, err := validatePartial(opScalar, m, x0, epsilon, maxIterations)
	if err != nil {
		return nil, err
	}
	y := append([]float64(nil), x...)

	var (
		xn, yn     []float64
		num, den   float64
		lambda     float64
		residual   float64
		normX, nyn float64
	)
	for step := 1; step <= maxIterations; step++ {
		if xn, err = matrix.MatVec(m, x); err != nil {
			return nil, invalidInput(opScalar, err)
		}
		if yn, err = matrix.MatTVec(m, y); err != nil {
			return nil, invalidInput(opScalar, err)
		}
		num, _ = matrix.Dot(xn, yn)
		den, _ = matrix.Dot(x, yn)
		lambda = num / den
		residual = posteriorError(x, xn, lambda)
		if math.IsNaN(residual) || math.IsInf(residual, 0) {
			return nil, eigenErrorf(opScalar, ErrNumericDivergence, "non-finite estimate at step %d", step)
		}

		normX, nyn = matrix.Norm2(xn), matrix.Norm2(yn)
		if normX == 0 || nyn == 0 {
			return &Dominant{Value: 0, Vector: x, Error: 0, Steps: step}, nil
		}
		x, y = scaled(xn, 1/normX), scaled(yn, 1/nyn)
		if residual <= epsilon {
			return &Dominant{Value: lambda, Vector: x, Error: residual, Steps: step}, nil
		}
	}

	return nil, eigenErrorf(opScalar, ErrNumericDivergence,
		"no convergence after %d steps (error %g > %g)", maxIterations, residual, epsilon)
}

// validatePartial checks the shared contract and returns x0 scaled to unit length.
func validatePartial(op string, m matrix.Matrix, x0 []float64, epsilon float64, maxIterations int) ([]float64, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, invalidInput(op, err)
	}
	if err := matrix.ValidateVecLen(x0, m.Rows()); err != nil {
		return nil, invalidInput(op, err)
	}
	if math.IsNaN(epsilon) || math.IsInf(epsilon, 0) || epsilon <= 0 {
		return nil, eigenErrorf(op, ErrInvalidInput, "epsilon=%g must be finite and > 0", epsilon)
	}
	if maxIterations < 1 {
		return nil, eigenErrorf(op, ErrInvalidInput, "maxIterations=%d < 1", maxIterations)
	}
	norm := matrix.Norm2(x0)
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return nil, eigenErrorf(op, ErrInvalidInput, "start vector norm %g", norm)
	}

	return scaled(x0, 1/norm), nil
}

// posteriorError returns ‖next − λ·prev‖ / ‖prev‖.
func posteriorError(prev, next []float64, lambda float64) float64 {
	diff := make([]float64, len(prev))
	for i := range prev {
		diff[i] = next[i] - lambda*prev[i]
	}

	return matrix.Norm2(diff) / matrix.Norm2(prev)
}

// scaled returns a new slice f·v.
func scaled(v []float64, f float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = f * x
	}

	return out
}
