// SPDX-License-Identifier: MIT
// Package: stationary/chains
//
// kmr.go - Kandori–Mailath–Rob (KMR) evolutionary chain with sequential moves.
//
// Model:
//   - N players play a symmetric 2×2 coordination game; the state is the
//     number n ∈ {0..N} of players choosing action 1.
//   - Each period one uniformly drawn player revises. With probability 1-ε
//     they best-respond to the other N-1 players, with probability ε they
//     pick an action uniformly at random (a "mutation").
//   - Action 1 is the best response when the share q of opponents playing 1
//     exceeds the p-dominance level p; on q == p both actions tie (½ each).
//
// For small ε the chain is nearly reducible: the two monomorphic states are
// almost absorbing and the stationary weights of interior states are tiny.

package chains

import (
	"math"

	"github.com/katalvlaran/stationary/matrix"
)

const (
	methodKMR     = "KMRSequential"
	minKMRPlayers = 2
)

// KMRSequential returns the (n+1)×(n+1) transition matrix of the KMR model
// with sequential moves for n players, p-dominance level p and mutation
// probability epsilon.
//
// Row 0 and row n are the monomorphic states (leave only by mutation, with
// probability ε/2). For 0 < k < n:
//
//	P[k][k-1] = (k/n)     * (ε/2 + (1-ε)*[ (k-1)/(n-1) <  p ] + (1-ε)/2*[ (k-1)/(n-1) == p ])
//	P[k][k+1] = ((n-k)/n) * (ε/2 + (1-ε)*[  k/(n-1)    >  p ] + (1-ε)/2*[  k/(n-1)    == p ])
//	P[k][k]   = 1 - P[k][k-1] - P[k][k+1]
//
// Errors: ErrTooFewStates (n < 2), ErrInvalidProbability (p or ε outside [0,1]).
// Complexity: O(n²) allocation, O(n) writes.
func KMRSequential(n int, p, epsilon float64) (*matrix.Dense, error) {
	if n < minKMRPlayers {
		return nil, chainErrorf(methodKMR, "n=%d < %d", ErrTooFewStates, n, minKMRPlayers)
	}
	if !isProbability(p) {
		return nil, chainErrorf(methodKMR, "p=%g", ErrInvalidProbability, p)
	}
	if !isProbability(epsilon) {
		return nil, chainErrorf(methodKMR, "epsilon=%g", ErrInvalidProbability, epsilon)
	}

	P, err := matrix.NewDense(n+1, n+1)
	if err != nil {
		return nil, err
	}
	N := float64(n)
	half := epsilon / 2

	_ = P.Set(0, 0, 1-half)
	_ = P.Set(0, 1, half)
	for k := 1; k < n; k++ {
		fk := float64(k)
		qDown := (fk - 1) / (N - 1) // share of opponents playing 1 for a revising 1-player
		qUp := fk / (N - 1)         // same for a revising 0-player

		down := (fk / N) * (half + (1-epsilon)*(indicator(qDown < p)+indicator(qDown == p)*0.5))
		up := ((N - fk) / N) * (half + (1-epsilon)*(indicator(qUp > p)+indicator(qUp == p)*0.5))

		_ = P.Set(k, k-1, down)
		_ = P.Set(k, k+1, up)
		_ = P.Set(k, k, 1-down-up)
	}
	_ = P.Set(n, n-1, half)
	_ = P.Set(n, n, 1-half)

	return P, nil
}

func indicator(b bool) float64 {
	if b {
		return 1
	}

	return 0
}

func isProbability(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}
