// Package stationary computes stationary distributions of finite Markov
// chains with the Grassmann–Taksar–Heyman (GTH) state-elimination algorithm.
//
// GTH is a variant of Gaussian elimination that never subtracts: every
// intermediate value is a sum of nonnegative products, so the result stays
// componentwise accurate even for nearly reducible chains whose stationary
// weights span many orders of magnitude.
//
// The same call accepts a row-stochastic transition matrix P (x·P = x) and a
// continuous-time generator Q (x·Q = 0); the kernel reads only off-diagonal
// entries, so no mode flag is needed.
//
// Layout:
//
//	gth/       Solve, SolveMatrix, SolveArray, SolveBatch; Classify, Residual, Verify
//	matrix/    Dense row-major storage, validators, x·A and vector helpers
//	chains/    chain constructors (KMR, birth–death, random), uniformization,
//	           block composition, communicating classes
//	cmd/gthsolve
//	           command-line solver for YAML/JSON matrix files
//
// Quick start:
//
//	x, err := gth.Solve([][]float64{
//		{0.4, 0.6},
//		{0.2, 0.8},
//	})
//	// x == [0.25 0.75]
//
// Reducible chains have more than one stationary distribution; the solver
// returns one of them, determined by the fixed elimination order (last state
// eliminated first). chains.ClosedClasses tells whether that happened.
package stationary
