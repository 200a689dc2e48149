// SPDX-License-Identifier: MIT
// Package: stationary/chains
//
// birthdeath.go - tridiagonal chains (discrete and continuous time).
//
// Birth–death chains satisfy detailed balance, so their stationary
// distribution has the closed form π[i+1]/π[i] = up[i]/down[i]; tests use it
// as an independent reference for the solver.

package chains

import (
	"math"

	"github.com/katalvlaran/stationary/matrix"
)

const (
	methodBirthDeath    = "BirthDeath"
	methodBirthDeathGen = "BirthDeathGenerator"
)

// BirthDeath returns the (len(up)+1)-state transition matrix with
// P[i][i+1] = up[i], P[i+1][i] = down[i] and the remaining mass on the diagonal.
//
// Errors:
//   - ErrLengthMismatch when len(up) != len(down).
//   - ErrInvalidProbability when an entry is outside [0,1] or a row's
//     outgoing mass exceeds 1.
//
// Complexity: O(n²) allocation, O(n) writes.
func BirthDeath(up, down []float64) (*matrix.Dense, error) {
	if len(up) != len(down) {
		return nil, chainErrorf(methodBirthDeath, "len(up)=%d len(down)=%d", ErrLengthMismatch, len(up), len(down))
	}
	for i := range up {
		if !isProbability(up[i]) || !isProbability(down[i]) {
			return nil, chainErrorf(methodBirthDeath, "edge %d: up=%g down=%g", ErrInvalidProbability, i, up[i], down[i])
		}
	}

	n := len(up) + 1
	P, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var out float64
	for i := 0; i < n; i++ {
		out = 0
		if i < n-1 {
			_ = P.Set(i, i+1, up[i])
			out += up[i]
		}
		if i > 0 {
			_ = P.Set(i, i-1, down[i-1])
			out += down[i-1]
		}
		if out > 1 {
			return nil, chainErrorf(methodBirthDeath, "row %d leaves with mass %g", ErrInvalidProbability, i, out)
		}
		_ = P.Set(i, i, 1-out)
	}

	return P, nil
}

// BirthDeathGenerator returns the (len(birth)+1)-state generator with
// Q[i][i+1] = birth[i], Q[i+1][i] = death[i] and Q[i][i] = -(row sum).
//
// Errors: ErrLengthMismatch, ErrInvalidRate (negative or non-finite rate).
// Complexity: O(n²) allocation, O(n) writes.
func BirthDeathGenerator(birth, death []float64) (*matrix.Dense, error) {
	if len(birth) != len(death) {
		return nil, chainErrorf(methodBirthDeathGen, "len(birth)=%d len(death)=%d", ErrLengthMismatch, len(birth), len(death))
	}
	for i := range birth {
		if !isRate(birth[i]) || !isRate(death[i]) {
			return nil, chainErrorf(methodBirthDeathGen, "edge %d: birth=%g death=%g", ErrInvalidRate, i, birth[i], death[i])
		}
	}

	n := len(birth) + 1
	Q, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var out float64
	for i := 0; i < n; i++ {
		out = 0
		if i < n-1 {
			_ = Q.Set(i, i+1, birth[i])
			out += birth[i]
		}
		if i > 0 {
			_ = Q.Set(i, i-1, death[i-1])
			out += death[i-1]
		}
		_ = Q.Set(i, i, -out)
	}

	return Q, nil
}

// DetailedBalance returns the normalized product-form distribution
// π[0] ∝ 1, π[i+1] = π[i]*fwd[i]/bwd[i] shared by BirthDeath and
// BirthDeathGenerator. Every bwd[i] must be positive.
//
// Errors: ErrLengthMismatch, ErrInvalidRate (bwd[i] <= 0 or non-finite input).
func DetailedBalance(fwd, bwd []float64) ([]float64, error) {
	if len(fwd) != len(bwd) {
		return nil, chainErrorf("DetailedBalance", "len(fwd)=%d len(bwd)=%d", ErrLengthMismatch, len(fwd), len(bwd))
	}
	pi := make([]float64, len(fwd)+1)
	pi[0] = 1
	for i := range fwd {
		if !isRate(fwd[i]) || !isRate(bwd[i]) || bwd[i] == 0 {
			return nil, chainErrorf("DetailedBalance", "edge %d", ErrInvalidRate, i)
		}
		pi[i+1] = pi[i] * fwd[i] / bwd[i]
	}
	if err := matrix.Normalize(pi); err != nil {
		return nil, err
	}

	return pi, nil
}

func isRate(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
