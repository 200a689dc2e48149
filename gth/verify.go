// SPDX-License-Identifier: MIT

// Package gth - verification helpers.
//
// These helpers state the stationary-distribution laws as executable checks,
// for tests and for callers that want to assert a result before using it:
//   - normalization:  |Σx - 1| <= tol
//   - nonnegativity:  x[i] >= -tol
//   - fixed point:    x·P = x (stochastic) or x·Q = 0 (generator)

package gth

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stationary/matrix"
)

// Kind classifies a square matrix by the chain it describes.
type Kind int

const (
	// Unknown is neither stochastic nor a generator within the tolerance.
	Unknown Kind = iota
	// Stochastic has nonnegative entries and rows summing to 1.
	Stochastic
	// Generator has nonnegative off-diagonal entries and rows summing to 0.
	Generator
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Stochastic:
		return "stochastic"
	case Generator:
		return "generator"
	default:
		return "unknown"
	}
}

// Classify reports whether m is a stochastic or a generator matrix within eps.
// A zero matrix classifies as Generator (every row sums to 0).
//
// Errors: ErrNilMatrix, ErrNotSquare (with ErrInvalidShape).
// Complexity: O(n²).
func Classify(m matrix.Matrix, eps float64) (Kind, error) {
	if matrix.ValidateNotNil(m) != nil {
		return Unknown, fmt.Errorf("%s: %w", opClassify, ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return Unknown, notSquare(opClassify, m.Rows(), m.Cols())
	}
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		return Unknown, fmt.Errorf("%s: eps: %w", opClassify, matrix.ErrNaNInf)
	}
	eps = math.Abs(eps)
	tol := matrix.WithEpsilon(eps)
	if matrix.ValidateOffDiagonalNonNegative(m, tol) != nil {
		return Unknown, nil
	}
	if matrix.ValidateRowSums(m, 0, tol) == nil {
		return Generator, nil
	}
	if matrix.ValidateRowSums(m, 1, tol) == nil && diagonalNonNegative(m, eps) {
		return Stochastic, nil
	}

	return Unknown, nil
}

func diagonalNonNegative(m matrix.Matrix, eps float64) bool {
	for i := 0; i < m.Rows(); i++ {
		if v, _ := m.At(i, i); v < -eps {
			return false
		}
	}

	return true
}

// Residual returns max_j |(x·A)[j] - λ·x[j]| with λ = 0 for generator
// matrices and λ = 1 otherwise, classifying m with DefaultTolerance.
//
// Errors: ErrNilMatrix, ErrNotSquare, matrix.ErrDimensionMismatch.
// Complexity: O(n²).
func Residual(m matrix.Matrix, x []float64) (float64, error) {
	return ResidualWithin(m, x, DefaultTolerance)
}

// ResidualWithin is Residual with m classified within eps, so a caller that
// classified m with its own tolerance measures against the same Kind.
func ResidualWithin(m matrix.Matrix, x []float64, eps float64) (float64, error) {
	kind, err := Classify(m, eps)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opResidual, err)
	}
	y, err := matrix.VecMat(x, m)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opResidual, err)
	}
	if kind == Generator {
		var r float64
		for _, v := range y {
			r = math.Max(r, math.Abs(v))
		}

		return r, nil
	}
	r, err := matrix.MaxAbsDiff(y, x)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opResidual, err)
	}

	return r, nil
}

// Verify checks that x is a stationary distribution of m within tol.
// Checks run in order normalization, nonnegativity, fixed point; the first
// failure is returned. The fixed point is taken for m classified within tol.
//
// Errors: ErrNotNormalized, ErrNegativeMass, ErrNotStationary, plus the
// structural errors of Residual.
func Verify(m matrix.Matrix, x []float64, tol float64) error {
	if s := matrix.Sum(x); math.Abs(s-1) > tol || math.IsNaN(s) {
		return fmt.Errorf("%s: sum %g: %w", opVerify, s, ErrNotNormalized)
	}
	for i, v := range x {
		if v < -tol {
			return fmt.Errorf("%s: x[%d] = %g: %w", opVerify, i, v, ErrNegativeMass)
		}
	}
	r, err := ResidualWithin(m, x, tol)
	if err != nil {
		return fmt.Errorf("%s: %w", opVerify, err)
	}
	if r > tol {
		return fmt.Errorf("%s: residual %g: %w", opVerify, r, ErrNotStationary)
	}

	return nil
}
