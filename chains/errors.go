// SPDX-License-Identifier: MIT
// Package: stationary/chains
//
// errors.go - sentinel errors for the chains package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w (method tag + offending value).
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package chains

import (
	"errors"
	"fmt"
)

// ErrTooFewStates indicates that a size parameter is below the minimum the
// constructor supports (e.g. KMR needs at least two players).
var ErrTooFewStates = errors.New("chains: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1], or a row whose
// remaining self-loop probability would be negative.
var ErrInvalidProbability = errors.New("chains: probability out of range")

// ErrInvalidRate indicates a negative or non-finite transition rate.
var ErrInvalidRate = errors.New("chains: invalid transition rate")

// ErrLengthMismatch indicates parallel parameter slices of different lengths.
var ErrLengthMismatch = errors.New("chains: parameter lengths differ")

// ErrInvalidPermutation indicates a permutation that is not a bijection on 0..n-1.
var ErrInvalidPermutation = errors.New("chains: invalid permutation")

// ErrNoBlocks indicates BlockDiagonal was called without blocks.
var ErrNoBlocks = errors.New("chains: no blocks")

// chainErrorf wraps err with a method tag and a formatted detail.
func chainErrorf(method, format string, err error, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
