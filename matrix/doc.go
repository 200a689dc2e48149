// Package matrix provides the dense storage and small numeric kernels used to
// describe finite Markov chains.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe accessors (At/Set return
//     errors instead of panicking) and an optional finite-only numeric policy.
//   - NewDenseFrom for ingesting [][]float64 with strict shape checks
//     (rectangular, non-empty).
//   - Validators for the structure of transition and generator matrices
//     (square, finite, row sums, nonnegative off-diagonals).
//   - Kernels for the row-vector product x·A, row sums and L1 normalization,
//     which is everything a stationary-distribution check needs.
//
// All loops run in a fixed i→j order so results are reproducible bit for bit.
//
// See the examples in this package and in gth for usage patterns.
package matrix
