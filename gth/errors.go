// SPDX-License-Identifier: MIT
// Package: stationary/gth
//
// errors.go - sentinel errors for the gth package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w at the detection site.
//   • Shape errors are programming errors: fix the input, do not retry.

package gth

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape indicates the input is not exactly a two-dimensional,
	// non-empty, rectangular array (wrong rank, ragged rows, no rows, or a
	// flat buffer whose length disagrees with its shape).
	ErrInvalidShape = errors.New("gth: input is not a 2-dimensional array")

	// ErrNotSquare indicates a two-dimensional input whose row count differs
	// from its column count. It is always returned together with
	// ErrInvalidShape, so errors.Is matches both.
	ErrNotSquare = errors.New("gth: matrix is not square")

	// ErrNilMatrix indicates that a nil matrix was passed to SolveMatrix.
	ErrNilMatrix = errors.New("gth: nil matrix")

	// ErrNotChain is returned in strict mode (WithStrictChain) when the input
	// is neither a stochastic nor a generator matrix within the tolerance.
	ErrNotChain = errors.New("gth: matrix is neither stochastic nor a generator")

	// ErrNotNormalized is returned by Verify when Σx differs from 1 beyond tol.
	ErrNotNormalized = errors.New("gth: distribution does not sum to one")

	// ErrNegativeMass is returned by Verify when some x[i] < -tol.
	ErrNegativeMass = errors.New("gth: distribution has negative mass")

	// ErrNotStationary is returned by Verify when x·A deviates from the
	// stationary identity beyond tol.
	ErrNotStationary = errors.New("gth: distribution is not stationary")
)

// Method tags used in error wrappers.
const (
	opSolve       = "gth.Solve"
	opSolveMatrix = "gth.SolveMatrix"
	opSolveArray  = "gth.SolveArray"
	opSolveBatch  = "gth.SolveBatch"
	opResidual    = "gth.Residual"
	opVerify      = "gth.Verify"
	opClassify    = "gth.Classify"
)

// notSquare builds the combined InvalidShape/NotSquare error for an r×c input.
func notSquare(op string, r, c int) error {
	return fmt.Errorf("%s: %dx%d: %w: %w", op, r, c, ErrInvalidShape, ErrNotSquare)
}

// invalidShape wraps ErrInvalidShape with a short reason.
func invalidShape(op, reason string) error {
	return fmt.Errorf("%s: %s: %w", op, reason, ErrInvalidShape)
}
