// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every function returns these sentinels (optionally wrapped with
// call-site context via %w) and tests match them with errors.Is.
// No exported function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Context is
// attached at the detection site with fmt.Errorf("Tag: %w", ErrX); callers
// still branch with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> NaN/Inf -> dimension mismatch -> structural violations.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when input data cannot be read as a rectangular
	// two-dimensional array (no rows, empty rows, or wrong rank).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRaggedRows signals that row slices of a [][]float64 have different lengths.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a vector whose length differs from the matrix row count in VecMat.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrRowSum signals that a row sum deviates from the required constant
	// (1 for stochastic, 0 for generator matrices) by more than eps.
	ErrRowSum = errors.New("matrix: row sum violates constraint")

	// ErrNegativeOffDiagonal signals a negative off-diagonal entry beyond -eps.
	ErrNegativeOffDiagonal = errors.New("matrix: negative off-diagonal entry")

	// ErrZeroSum is returned by Normalize when the vector has no mass to rescale.
	ErrZeroSum = errors.New("matrix: vector sums to zero")
)
