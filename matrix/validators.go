// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/structure checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Structural checks scan rows in a fixed i→j order and fail fast.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Square → Finite → structure).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether m is nil, including a typed-nil *Dense inside the interface.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return true
	}

	return false
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has length n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans m for NaN or ±Inf entries.
//
// Returns the first offending coordinates wrapped around ErrNaNInf.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	var bad error
	visit(m, func(i, j int, v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			bad = fmt.Errorf("ValidateFinite(%d,%d): %w", i, j, ErrNaNInf)

			return false
		}

		return true
	})

	return bad
}

// ValidateRowSums checks that every row of the square matrix m sums to
// target within the configured epsilon (see WithEpsilon).
//
// target is 1 for stochastic matrices and 0 for generator matrices.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrRowSum (wrapped with the row index).
// Complexity: O(n²).
func ValidateRowSums(m Matrix, target float64, opts ...Option) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	o := gatherOptions(opts...)
	sums, err := RowSums(m)
	if err != nil {
		return err
	}
	for i, s := range sums {
		if math.Abs(s-target) > o.eps {
			return fmt.Errorf("ValidateRowSums: row %d sums to %g, want %g: %w", i, s, target, ErrRowSum)
		}
	}

	return nil
}

// ValidateOffDiagonalNonNegative checks A[i,j] >= -eps for every i != j.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNegativeOffDiagonal.
// Complexity: O(n²).
func ValidateOffDiagonalNonNegative(m Matrix, opts ...Option) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	o := gatherOptions(opts...)
	var bad error
	visit(m, func(i, j int, v float64) bool {
		if i != j && v < -o.eps {
			bad = fmt.Errorf("ValidateOffDiagonalNonNegative(%d,%d): %w", i, j, ErrNegativeOffDiagonal)

			return false
		}

		return true
	})

	return bad
}

// visit iterates m in row-major order, using the Dense fast path when possible.
// The callback returns false to stop early.
func visit(m Matrix, f func(i, j int, v float64) bool) {
	if d, ok := m.(*Dense); ok {
		d.Do(f)

		return
	}
	r, c := m.Rows(), m.Cols()
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, _ = m.At(i, j) // indices are in range by construction
			if !f(i, j, v) {
				return
			}
		}
	}
}
