// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Both directions copy: a Dense never aliases gonum storage and vice versa.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const opFromGonum = "FromGonum"

// FromGonum copies any gonum matrix into a new Dense. The numeric policy of
// opts applies as in NewDenseFrom.
//
// Errors: ErrNilMatrix, ErrNaNInf (policy on), ErrBadShape for a 0×0 input.
// Complexity: O(r*c).
func FromGonum(a mat.Matrix, opts ...Option) (*Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, ErrNilMatrix)
	}
	r, _ := a.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, a)
	}
	m, err := NewDenseFrom(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, err)
	}

	return m, nil
}

// ToGonum returns a gonum copy of m, e.g. for factorizations the solver does
// not provide. Complexity: O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	return mat.NewDense(m.r, m.c, m.RawData())
}
