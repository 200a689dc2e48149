// SPDX-License-Identifier: MIT
// Package: stationary/chains
//
// random.go - seeded random stochastic matrices.
//
// Canonical model:
//   - Each off-diagonal entry (i,j) is kept with probability density and
//     then drawn from U(0,1); the diagonal always draws from U(0,1).
//   - Rows are normalized to sum to one.
//
// Determinism:
//   - Trial order is fixed: i asc, then j asc; one Float64 draw for the
//     keep decision (when density < 1) and one for the weight.
//   - Same seed and options ⇒ identical matrix on every platform.

package chains

import (
	"github.com/katalvlaran/stationary/matrix"
)

const (
	methodRandom    = "RandomStochastic"
	minRandomStates = 1
	minDiagonalDraw = 1e-3 // keeps every row strictly positive before normalization
)

// RandomStochastic returns a seeded n×n row-stochastic matrix.
// With density 1 the chain is irreducible and aperiodic; lower densities
// produce sparse and possibly reducible chains.
//
// Errors: ErrTooFewStates (n < 1).
// Complexity: O(n²).
func RandomStochastic(n int, opts ...Option) (*matrix.Dense, error) {
	if n < minRandomStates {
		return nil, chainErrorf(methodRandom, "n=%d < %d", ErrTooFewStates, n, minRandomStates)
	}
	cfg := newConfig(opts...)
	rng := cfg.rng

	P, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	row := make([]float64, n)
	var i, j int
	var sum float64
	for i = 0; i < n; i++ {
		sum = 0
		for j = 0; j < n; j++ {
			row[j] = 0
			if i != j && cfg.density < 1 && rng.Float64() >= cfg.density {
				continue
			}
			row[j] = rng.Float64()
			if i == j {
				row[j] += minDiagonalDraw
			}
			sum += row[j]
		}
		for j = 0; j < n; j++ {
			_ = P.Set(i, j, row[j]/sum)
		}
	}

	return P, nil
}
