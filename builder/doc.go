// Package builder generates the dense test matrices and start vectors that
// feed the eigen solvers. Every generator is a deterministic function of its
// size and the configured RNG, so fixtures are reproducible under WithSeed.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the RNG and the scale of stochastic entries.
//   - Matrix constructors (Constructor implementations):
//     – Hilbert:          a_ij = 1/(i+j+1), notoriously ill-conditioned.
//     – Tridiagonal:      symmetric band, a_ij = (i·j+1)·U[0,1) for |i−j| ≤ 1.
//     – Diagonal:         a_ii = 2(i+1)·U[0,1), zero elsewhere.
//     – RandomSymmetric:  a_ij = a_ji = scale·U[0,1).
//   - Vector helpers: RandomVector, Ramp, Constant.
//   - MatrixSource: a zero-argument producer the solvers and the CLI consume.
//
// Guarantees:
//
//   - Every matrix constructor returns a symmetric *matrix.Dense.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime parameter errors are sentinels (ErrTooSmall, ErrNeedRandSource,
//     ErrUnknownKind) wrapped with the constructor name.
package builder
