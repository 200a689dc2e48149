// SPDX-License-Identifier: MIT
// Package: stationary/chains
//
// compose.go - transformations between chains.
//
//   • Uniformize: continuous-time generator → discrete-time transition matrix
//     with the same stationary distribution.
//   • BlockDiagonal: disjoint union of chains (reducible by construction).
//   • Permute: relabel states, used to move a closed class to a different
//     position in the elimination order.

package chains

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stationary/matrix"
)

const (
	methodUniformize = "Uniformize"
	methodBlockDiag  = "BlockDiagonal"
	methodPermute    = "Permute"
)

// Uniformize returns P = I + Q/λ with λ = max_i |Q[i][i]| (λ = 1 when every
// diagonal entry is zero). P is stochastic whenever Q is a generator, and
// πQ = 0 ⇔ πP = π.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: O(n²).
func Uniformize(q matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(q); err != nil {
		return nil, fmt.Errorf("%s: %w", methodUniformize, err)
	}
	n := q.Rows()
	var lambda float64
	for i := 0; i < n; i++ {
		v, _ := q.At(i, i)
		lambda = math.Max(lambda, math.Abs(v))
	}
	if lambda == 0 {
		lambda = 1
	}

	P, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	err = P.Apply(func(i, j int, _ float64) float64 {
		v, _ := q.At(i, j)
		if i == j {
			return 1 + v/lambda
		}

		return v / lambda
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodUniformize, err)
	}

	return P, nil
}

// BlockDiagonal places the square blocks along the diagonal of a new matrix,
// leaving all cross-block entries zero. With two or more blocks the result
// describes a reducible chain with at least one closed class per block.
//
// Errors: ErrNoBlocks, matrix.ErrNilMatrix, matrix.ErrNonSquare (wrapped with the block index).
// Complexity: O(N²) for the N×N result.
func BlockDiagonal(blocks ...matrix.Matrix) (*matrix.Dense, error) {
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%s: %w", methodBlockDiag, ErrNoBlocks)
	}
	total := 0
	for b, blk := range blocks {
		if err := matrix.ValidateSquare(blk); err != nil {
			return nil, fmt.Errorf("%s: block %d: %w", methodBlockDiag, b, err)
		}
		total += blk.Rows()
	}

	out, err := matrix.NewDense(total, total)
	if err != nil {
		return nil, err
	}
	off := 0
	for _, blk := range blocks {
		k := blk.Rows()
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				v, _ := blk.At(i, j)
				if err = out.Set(off+i, off+j, v); err != nil {
					return nil, fmt.Errorf("%s: %w", methodBlockDiag, err)
				}
			}
		}
		off += k
	}

	return out, nil
}

// Permute relabels states: state perm[i] of m becomes state i of the result,
// i.e. out[i][j] = m[perm[i]][perm[j]]. A stationary distribution x of m maps
// to y[i] = x[perm[i]].
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrInvalidPermutation.
// Complexity: O(n²).
func Permute(m matrix.Matrix, perm []int) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%s: %w", methodPermute, err)
	}
	n := m.Rows()
	if len(perm) != n {
		return nil, chainErrorf(methodPermute, "len(perm)=%d, n=%d", ErrInvalidPermutation, len(perm), n)
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, chainErrorf(methodPermute, "index %d", ErrInvalidPermutation, p)
		}
		seen[p] = true
	}

	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	err = out.Apply(func(i, j int, _ float64) float64 {
		v, _ := m.At(perm[i], perm[j])

		return v
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPermute, err)
	}

	return out, nil
}
