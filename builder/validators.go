// Package builder provides validation helpers to enforce parameter contracts
// in matrix constructors.
package builder

// validateMin ensures that the provided size 'got' is ≥ 'min'.
// Returns "<Method>: n=<got> < min=<min>: builder: parameter too small" otherwise.
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooSmall, "n=%d < min=%d", got, min)
	}

	return nil
}

// requireRNG ensures a stochastic constructor has an RNG to draw from.
// Complexity: O(1).
func requireRNG(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return builderErrorf(method, ErrNeedRandSource, "use WithSeed or WithRand")
	}

	return nil
}
