// SPDX-License-Identifier: MIT

package gth

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stationary/matrix"
)

// Solve returns the stationary distribution of the chain described by the
// square matrix a, given either as a transition matrix (rows sum to 1) or as a
// generator matrix (rows sum to 0). The result has len(a) nonnegative entries
// summing to one, and a is not modified.
//
// Errors:
//   - ErrInvalidShape: no rows, an empty row, or rows of different lengths.
//   - ErrNotSquare (together with ErrInvalidShape): len(a) != len(a[0]).
//   - matrix.ErrNaNInf: a non-finite entry (unless WithNoValidateNaNInf).
//   - ErrNotChain: only with WithStrictChain.
//
// For reducible chains the result is one valid stationary distribution; which
// one depends on the fixed elimination order (highest index first). Reorder
// the states to target a specific closed class.
//
// Example:
//
//	x, err := gth.Solve([][]float64{{0.4, 0.6}, {0.2, 0.8}})
//	// x == [0.25 0.75]
func Solve(a [][]float64, opts ...Option) ([]float64, error) {
	m, err := matrix.NewDenseFrom(a, matrix.WithNoValidateNaNInf())
	if err != nil {
		if errors.Is(err, matrix.ErrBadShape) || errors.Is(err, matrix.ErrRaggedRows) {
			return nil, fmt.Errorf("%s: %w: %w", opSolve, ErrInvalidShape, err)
		}

		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	if m.Rows() != m.Cols() {
		return nil, notSquare(opSolve, m.Rows(), m.Cols())
	}

	return solveSquare(opSolve, m, m.Rows(), gatherOptions(opts...))
}

// SolveMatrix is Solve for any matrix.Matrix implementation. *matrix.Dense
// inputs are copied with a single buffer copy; other implementations are
// read through At.
func SolveMatrix(m matrix.Matrix, opts ...Option) ([]float64, error) {
	if matrix.ValidateNotNil(m) != nil {
		return nil, fmt.Errorf("%s: %w", opSolveMatrix, ErrNilMatrix)
	}
	r, c := m.Rows(), m.Cols()
	if r <= 0 || c <= 0 {
		return nil, invalidShape(opSolveMatrix, fmt.Sprintf("%dx%d", r, c))
	}
	if r != c {
		return nil, notSquare(opSolveMatrix, r, c)
	}

	return solveSquare(opSolveMatrix, m, r, gatherOptions(opts...))
}

// SolveArray is Solve for a flat row-major buffer with an explicit shape, the
// natural form for data coming from n-dimensional array formats. The shape
// must have exactly two positive extents whose product is len(data).
//
// SolveArray([]int{2}, []float64{0.4, 0.6}) fails with ErrInvalidShape;
// SolveArray([]int{1, 2}, []float64{0.4, 0.6}) fails with ErrNotSquare.
func SolveArray(shape []int, data []float64, opts ...Option) ([]float64, error) {
	if len(shape) != 2 {
		return nil, invalidShape(opSolveArray, fmt.Sprintf("rank %d", len(shape)))
	}
	r, c := shape[0], shape[1]
	if r <= 0 || c <= 0 {
		return nil, invalidShape(opSolveArray, fmt.Sprintf("shape %v", shape))
	}
	if len(data) != r*c {
		return nil, invalidShape(opSolveArray, fmt.Sprintf("%d values for shape %v", len(data), shape))
	}
	if r != c {
		return nil, notSquare(opSolveArray, r, c)
	}

	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = data[i*c : (i+1)*c]
	}
	m, err := matrix.NewDenseFrom(rows, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveArray, err)
	}

	return solveSquare(opSolveArray, m, r, gatherOptions(opts...))
}

// solveSquare runs the optional guards and the kernel on a validated n×n matrix.
func solveSquare(op string, m matrix.Matrix, n int, o options) ([]float64, error) {
	if o.validateNaNInf {
		if err := matrix.ValidateFinite(m); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	if o.strict {
		kind, err := Classify(m, o.eps)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if kind == Unknown {
			return nil, fmt.Errorf("%s: %w", op, ErrNotChain)
		}
	}

	x, err := solveInPlace(scratch(m, n), n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return x, nil
}

// scratch returns a private row-major copy of m.
func scratch(m matrix.Matrix, n int) []float64 {
	if d, ok := m.(*matrix.Dense); ok {
		return d.RawData()
	}
	b := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			b[i*n+j], _ = m.At(i, j) // in range: shape validated by the caller
		}
	}

	return b
}
