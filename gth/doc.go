// Package gth computes stationary distributions of finite Markov chains with
// the Grassmann–Taksar–Heyman (GTH) algorithm.
//
// What is GTH?
//
//	GTH is Gaussian elimination on I-P (or on a generator Q) carried out as
//	state elimination: the highest-index state is removed and its transition
//	mass is redistributed to the remaining states in proportion to where it
//	would have gone. The update
//
//	  B[i][j] += B[i][k] * (B[k][j] / S),   S = Σ_{j<k} B[k][j]
//
//	never subtracts, so there is no cancellation and the result is
//	nonnegative to machine precision, nearly reducible chains included.
//
// Inputs:
//
//   - a transition matrix (entries >= 0, rows sum to 1), or
//   - a generator matrix (off-diagonals >= 0, rows sum to 0).
//
//	The kernel never reads the diagonal, so no mode flag is needed.
//
// Entry points:
//
//	x, err := gth.Solve([][]float64{{0.4, 0.6}, {0.2, 0.8}}) // [0.25 0.75]
//	x, err := gth.SolveMatrix(dense)                          // any matrix.Matrix
//	x, err := gth.SolveArray([]int{2, 2}, flat)               // flat buffer + shape
//	xs, err := gth.SolveBatch(ctx, ms, gth.WithWorkers(4))    // bounded pool
//
// Reducible chains:
//
//	Elimination order is fixed (index n-1 first, index 0 last). When several
//	closed classes exist the returned distribution is one valid stationary
//	distribution, determined by that order; the identity matrix yields a
//	point mass on state 0. Reorder states to select a different class;
//	chains.ClosedClasses reports how many closed classes there are.
//
// Concurrency:
//
//	Every call works on a private copy of its input and shares nothing, so
//	calls are safe from any number of goroutines.
//
// Performance:
//
//   - Time:   O(n³)
//   - Memory: O(n²) for the scratch copy
package gth
