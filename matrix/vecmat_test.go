// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/stationary/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type and force the generic path.
type hide struct{ matrix.Matrix }

// TestVecMat_FastPathMatchesFallback checks x·A on *Dense and on a wrapped Matrix.
func TestVecMat_FastPathMatchesFallback(t *testing.T) {
	a := MustDense(t, [][]float64{{0.4, 0.6}, {0.2, 0.8}})
	x := []float64{0.25, 0.75}

	fast, err := matrix.VecMat(x, a)
	require.NoError(t, err)
	slow, err := matrix.VecMat(x, hide{a})
	require.NoError(t, err)

	assert.Equal(t, fast, slow)
	assert.InDeltaSlice(t, x, fast, 1e-15, "stationary vector is a fixed point")
}

// TestVecMat_Errors covers nil matrices and length mismatch.
func TestVecMat_Errors(t *testing.T) {
	a := MustDense(t, [][]float64{{1, 0}, {0, 1}})

	_, err := matrix.VecMat([]float64{1}, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.VecMat([]float64{1, 0}, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestRowSumsAndNormalize exercises the remaining vector helpers.
func TestRowSumsAndNormalize(t *testing.T) {
	a := MustDense(t, [][]float64{{-1, 1}, {4, -4}, {1, 2}})
	s, err := matrix.RowSums(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 3}, s)

	x := []float64{1, 3}
	require.NoError(t, matrix.Normalize(x))
	assert.Equal(t, []float64{0.25, 0.75}, x)
	assert.ErrorIs(t, matrix.Normalize([]float64{0, 0}), matrix.ErrZeroSum)

	d, err := matrix.MaxAbsDiff([]float64{1, 2}, []float64{1.5, 1})
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
	_, err = matrix.MaxAbsDiff([]float64{1}, nil)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
