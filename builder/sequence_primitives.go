// SPDX-License-Identifier: MIT
// Package: builder
//
// sequence_primitives.go: start vectors for iterative eigen methods.
//
// Contract:
//   - Ramp and Constant are pure; RandomVector needs an RNG.
//   - n ≥ 1 for every helper (else ErrTooSmall).

package builder

const (
	methodRandomVector = "RandomVector"
	methodRamp         = "Ramp"
	methodConstant     = "Constant"
	minVector          = 1
)

// RandomVector returns n values drawn from scale·U[0,1) (scale defaults to 70).
func RandomVector(n int, opts ...BuilderOption) ([]float64, error) {
	if err := validateMin(methodRandomVector, n, minVector); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	if err := requireRNG(methodRandomVector, cfg); err != nil {
		return nil, err
	}

	scale := cfg.scaleOr(defaultVectorScale)
	out := make([]float64, n)
	for i := range out {
		out[i] = scale * cfg.rng.Float64()
	}

	return out, nil
}

// Ramp returns the vector (0, 1, 4, ..., (n-1)²).
func Ramp(n int) ([]float64, error) {
	if err := validateMin(methodRamp, n, minVector); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i * i)
	}

	return out, nil
}

// Constant returns a vector of n copies of v.
func Constant(n int, v float64) ([]float64, error) {
	if err := validateMin(methodConstant, n, minVector); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out, nil
}
