// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and ingestion.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/stationary/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MustDense builds a *Dense from rows or fails the test.
func MustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// TestNewDense_InvalidDimensions verifies the strict constructor rejects r<=0 or c<=0.
func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, rc := range [][2]int{{0, 1}, {1, 0}, {-1, 2}, {0, 0}} {
		_, err := matrix.NewDense(rc[0], rc[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "NewDense(%d,%d)", rc[0], rc[1])
	}
}

// TestNewDenseFrom_Shapes covers empty, ragged and rectangular inputs.
func TestNewDenseFrom_Shapes(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]float64
		wantErr error
		r, c    int
	}{
		{"nil", nil, matrix.ErrBadShape, 0, 0},
		{"no rows", [][]float64{}, matrix.ErrBadShape, 0, 0},
		{"empty first row", [][]float64{{}}, matrix.ErrBadShape, 0, 0},
		{"ragged", [][]float64{{1, 2}, {3}}, matrix.ErrRaggedRows, 0, 0},
		{"1x2", [][]float64{{0.4, 0.6}}, nil, 1, 2},
		{"2x2", [][]float64{{0.4, 0.6}, {0.2, 0.8}}, nil, 2, 2},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewDenseFrom(tc.rows)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, m)

				return
			}
			require.NoError(t, err)
			r, c := m.Shape()
			assert.Equal(t, tc.r, r)
			assert.Equal(t, tc.c, c)
		})
	}
}

// TestNewDenseFrom_NaNPolicy checks that non-finite input is rejected by default
// and accepted when the policy is relaxed.
func TestNewDenseFrom_NaNPolicy(t *testing.T) {
	rows := [][]float64{{math.NaN(), 1}, {0, math.Inf(1)}}

	_, err := matrix.NewDenseFrom(rows)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.NewDenseFrom(rows, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))
}

// TestNewDenseFrom_NoAliasing ensures later writes to the source slices do not leak in.
func TestNewDenseFrom_NoAliasing(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m := MustDense(t, rows)
	rows[0][0] = 99

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

// TestDense_AtSetBounds verifies safe accessors never panic and wrap ErrOutOfRange.
func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	_, err = m.Row(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDense_CloneIndependence checks Clone and RawData return independent buffers.
func TestDense_CloneIndependence(t *testing.T) {
	m := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	cl := m.Clone()
	require.NoError(t, cl.Set(0, 0, -1))

	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v, "mutating the clone must not touch the original")

	raw := m.RawData()
	raw[3] = 0
	v, _ = m.At(1, 1)
	assert.Equal(t, 4.0, v, "RawData must return a copy")

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, row)
}

// TestDense_ApplyAndDo exercises the visitor and the in-place map.
func TestDense_ApplyAndDo(t *testing.T) {
	m := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 2 }))

	var sum float64
	var visits int
	m.Do(func(i, j int, v float64) bool {
		sum += v
		visits++

		return visits < 3 // stop after three cells
	})
	assert.Equal(t, 3, visits)
	assert.Equal(t, 2.0+4.0+6.0, sum)

	err := m.Apply(func(i, j int, v float64) float64 { return math.Inf(-1) })
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestDense_String checks the diagnostic dump format.
func TestDense_String(t *testing.T) {
	m := MustDense(t, [][]float64{{0.25, 0.75}, {1, 0}})
	assert.Equal(t, "[0.25, 0.75]\n[1, 0]\n", m.String())
}

// TestWithEpsilon_Panics verifies invalid option values panic with a stable message.
func TestWithEpsilon_Panics(t *testing.T) {
	assert.Panics(t, func() { matrix.WithEpsilon(-1) })
	assert.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	assert.NotPanics(t, func() { matrix.WithEpsilon(0) })
}
