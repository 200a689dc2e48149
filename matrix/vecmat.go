// SPDX-License-Identifier: MIT

// Package matrix - row-vector kernels for distributions over chain states.
//
// A probability distribution over the states of a chain is a row vector, so
// the products here are x·A (left multiplication), not A·x. Sums use plain
// left-to-right accumulation in index order for reproducibility.

package matrix

import (
	"fmt"
	"math"
)

const (
	opVecMat    = "VecMat"
	opRowSums   = "RowSums"
	opNormalize = "Normalize"
)

// VecMat returns y = x·A for a row vector x of length Rows(A).
//
// Implementation:
//   - Stage 1: validate A non-nil and len(x) == Rows(A).
//   - Stage 2: y[j] = Σ_i x[i]*A[i,j], accumulated row by row so the *Dense
//     fast path walks the flat buffer sequentially.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func VecMat(x []float64, a Matrix) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opVecMat, err)
	}
	if err := ValidateVecLen(x, a.Rows()); err != nil {
		return nil, fmt.Errorf("%s: %w", opVecMat, err)
	}
	r, c := a.Rows(), a.Cols()
	y := make([]float64, c)
	var i, j int
	var xi, v float64

	if d, ok := a.(*Dense); ok {
		for i = 0; i < r; i++ {
			xi = x[i]
			if xi == 0 {
				continue
			}
			row := d.data[i*c : (i+1)*c]
			for j = 0; j < c; j++ {
				y[j] += xi * row[j]
			}
		}

		return y, nil
	}

	for i = 0; i < r; i++ {
		xi = x[i]
		if xi == 0 {
			continue
		}
		for j = 0; j < c; j++ {
			v, _ = a.At(i, j)
			y[j] += xi * v
		}
	}

	return y, nil
}

// RowSums returns s[i] = Σ_j A[i,j].
// Errors: ErrNilMatrix. Complexity: O(r*c).
func RowSums(a Matrix) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opRowSums, err)
	}
	s := make([]float64, a.Rows())
	visit(a, func(i, _ int, v float64) bool {
		s[i] += v

		return true
	})

	return s, nil
}

// Sum returns Σ x[i]. Complexity: O(n).
func Sum(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v
	}

	return s
}

// Normalize rescales x in place so that it sums to one.
//
// Errors:
//   - ErrZeroSum when Σx is zero, ErrNaNInf when Σx is not finite.
//
// Complexity: O(n).
func Normalize(x []float64) error {
	s := Sum(x)
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return fmt.Errorf("%s: %w", opNormalize, ErrNaNInf)
	}
	if s == 0 {
		return fmt.Errorf("%s: %w", opNormalize, ErrZeroSum)
	}
	for i := range x {
		x[i] /= s
	}

	return nil
}

// MaxAbsDiff returns max_i |a[i]-b[i]|.
// Errors: ErrDimensionMismatch on length mismatch. Complexity: O(n).
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("MaxAbsDiff: %w", ErrDimensionMismatch)
	}
	var m float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > m {
			m = d
		}
	}

	return m, nil
}
