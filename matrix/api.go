// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common construction tasks.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.

package matrix

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewDiagonal returns a square matrix with d on the main diagonal.
// Errors: ErrInvalidDimensions when d is empty, ErrNaNInf for non-finite entries
// under the default policy.
// Complexity: O(n²).
func NewDiagonal(d []float64, opts ...Option) (*Dense, error) {
	n := len(d)
	D, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err = D.Set(i, i, d[i]); err != nil {
			return nil, err
		}
	}

	return D, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ToDense copies any Matrix into a new *Dense with the given numeric policy.
// *Dense inputs are copied through the flat buffer.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNaNInf (policy), At errors.
// Complexity: O(r*c).
func ToDense(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToDense", err)
	}
	out, err := NewDense(m.Rows(), m.Cols(), opts...)
	if err != nil {
		return nil, matrixErrorf("ToDense", err)
	}

	if d, ok := m.(*Dense); ok && !out.validateNaNInf {
		copy(out.data, d.data)

		return out, nil
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf("ToDense", err)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, matrixErrorf("ToDense", err)
			}
		}
	}

	return out, nil
}
