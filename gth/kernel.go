// SPDX-License-Identifier: MIT

// Package gth - GTH state-elimination kernel.
//
// The kernel works on a private flat row-major scratch buffer b of length n*n
// and never sees the caller's matrix. It reads only off-diagonal entries, so
// stochastic and generator matrices go through the same code.
//
// Numeric contract:
//   - The elimination update is b[i][j] += b[i][k] * (b[k][j] / S). Only
//     additions, multiplications and one division by the pivot row sum S.
//     No difference of two computed quantities ever appears, which is what
//     keeps every intermediate value nonnegative for nonnegative input.
//   - Pivots run in the fixed order n-1 down to 1.

package gth

import "github.com/katalvlaran/stationary/matrix"

// elimination records what back-substitution needs from the elimination pass.
type elimination struct {
	div    []float64 // div[k] = pivot row sum S_k when positive, 1 for skipped pivots
	anchor int       // state whose weight is fixed to 1 before substitution
}

// eliminate runs GTH elimination on b in place.
//
// Implementation:
//   - Stage 1: for k = n-1 down to 1, S = Σ_{j<k} b[k][j].
//   - Stage 2: S > 0 → scale the pivot row once (w[j] = b[k][j]/S) and fold
//     every i<k row: b[i][j] += b[i][k]*w[j] for j<k. Rows with b[i][k] == 0
//     receive nothing and are skipped.
//   - Stage 3: S <= 0 → state k has no outflow into the remaining states.
//     If no remaining state flows into k either, k is isolated: skip the
//     update and record div[k] = 1 (its weight comes out as zero).
//     If some b[i][k] > 0, k is absorbing for the censored chain on 0..k and
//     the mass of 0..k-1 drains into it. The unit mass is anchored at k and
//     elimination stops; states below k get zero weight.
//
// Complexity:
//   - Time O(n³) worst case, Space O(n) besides b.
func eliminate(b []float64, n int) elimination {
	e := elimination{div: make([]float64, n)}
	if n > 0 {
		e.div[0] = 1
	}
	w := make([]float64, n)

	var i, j, k int
	var s, bik float64
	for k = n - 1; k >= 1; k-- {
		rowK := b[k*n : k*n+k]
		s = 0
		for j = 0; j < k; j++ {
			s += rowK[j]
		}

		if s <= 0 {
			e.div[k] = 1
			if hasInflow(b, n, k) {
				e.anchor = k

				return e
			}
			continue
		}
		e.div[k] = s

		for j = 0; j < k; j++ {
			w[j] = rowK[j] / s
		}
		for i = 0; i < k; i++ {
			bik = b[i*n+k]
			if bik == 0 {
				continue
			}
			rowI := b[i*n : i*n+k]
			for j = 0; j < k; j++ {
				rowI[j] += bik * w[j]
			}
		}
	}

	return e
}

// hasInflow reports whether any state i<k still sends mass to k.
func hasInflow(b []float64, n, k int) bool {
	for i := 0; i < k; i++ {
		if b[i*n+k] > 0 {
			return true
		}
	}

	return false
}

// substitute recovers unnormalized stationary weights from the elimination record.
//
// x[anchor] = 1, x[i] = 0 for i < anchor, and for k > anchor:
//
//	x[k] = (Σ_{i<k} x[i]*b[i][k]) / div[k]
//
// Column k above the diagonal is final once pivot k has been processed:
// later (smaller) pivots only touch rows and columns below their own index.
//
// Complexity: O(n²).
func substitute(b []float64, n int, e elimination) []float64 {
	x := make([]float64, n)
	x[e.anchor] = 1

	var i, k int
	var acc float64
	for k = e.anchor + 1; k < n; k++ {
		acc = 0
		for i = e.anchor; i < k; i++ {
			acc += x[i] * b[i*n+k]
		}
		x[k] = acc / e.div[k]
	}

	return x
}

// solveInPlace runs elimination, substitution and normalization on the scratch
// buffer b (destroyed) and returns the distribution.
//
// With nonnegative off-diagonals Σx >= 1: the anchor weight is 1 and every
// other term is a sum of nonnegative products. Normalize fails only when a
// non-finite entry got past WithNoValidateNaNInf.
func solveInPlace(b []float64, n int) ([]float64, error) {
	if n == 1 {
		return []float64{1}, nil
	}
	x := substitute(b, n, eliminate(b, n))
	if err := matrix.Normalize(x); err != nil {
		return nil, err
	}

	return x, nil
}
