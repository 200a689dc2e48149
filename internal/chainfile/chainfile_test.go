// SPDX-License-Identifier: MIT

package chainfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stationary/gth"
	"github.com/katalvlaran/stationary/internal/chainfile"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

// TestDecode_Layouts accepts both document layouts and both syntaxes.
func TestDecode_Layouts(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantName string
	}{
		{"yaml rows", "- [0.4, 0.6]\n- [0.2, 0.8]\n", "fallback"},
		{"json rows", "[[0.4, 0.6], [0.2, 0.8]]", "fallback"},
		{"yaml mapping", "name: two-state\nmatrix:\n  - [0.4, 0.6]\n  - [0.2, 0.8]\n", "two-state"},
		{"json mapping", `{"name": "two-state", "matrix": [[0.4, 0.6], [0.2, 0.8]]}`, "two-state"},
		{"mapping without name", "matrix: [[0.4, 0.6], [0.2, 0.8]]\n", "fallback"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			doc, err := chainfile.Decode([]byte(tc.body), "fallback")
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, doc.Name)
			assert.Equal(t, []float64{0.4, 0.6, 0.2, 0.8}, doc.Matrix.RawData())
		})
	}
}

// TestDecode_Rejects covers every rejection path and the sentinel it maps to.
func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"empty", "", chainfile.ErrEmptyDocument},
		{"1-dimensional", "[0.4, 0.6]", gth.ErrInvalidShape},
		{"3-dimensional", "[[[1]]]", gth.ErrInvalidShape},
		{"ragged", "[[1, 0], [1]]", gth.ErrInvalidShape},
		{"no rows", "[]", gth.ErrInvalidShape},
		{"scalar", "42", chainfile.ErrUnsupportedDocument},
		{"mapping without matrix", "name: x\n", chainfile.ErrUnsupportedDocument},
		{"matrix is scalar", "matrix: 3\n", gth.ErrInvalidShape},
		{"not a number", "[[1, abc], [0, 1]]", chainfile.ErrBadEntry},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := chainfile.Decode([]byte(tc.body), "x")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestDecode_NonFiniteKept leaves NaN/Inf to the solver policy.
func TestDecode_NonFiniteKept(t *testing.T) {
	doc, err := chainfile.Decode([]byte("[[.nan, 1], [0, .inf]]"), "x")
	require.NoError(t, err)
	_, err = gth.SolveMatrix(doc.Matrix)
	assert.Error(t, err)
}

// TestLoad uses the file name when the document has none.
func TestLoad(t *testing.T) {
	p := writeFile(t, "weather.yaml", "- [0.9, 0.1]\n- [0.5, 0.5]\n")
	doc, err := chainfile.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "weather", doc.Name)
	assert.Equal(t, 2, doc.Matrix.Rows())

	_, err = chainfile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestWriteReport writes both formats and rejects unknown extensions.
func TestWriteReport(t *testing.T) {
	r := chainfile.Report{
		Name:          "two-state",
		States:        2,
		Kind:          "stochastic",
		ClosedClasses: 1,
		Distribution:  []float64{0.25, 0.75},
		Residual:      0,
	}
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "out.yaml")
	require.NoError(t, chainfile.WriteReport(yamlPath, r))
	got, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "name: two-state\nstates: 2\nkind: stochastic\nclosed_classes: 1\ndistribution:\n    - 0.25\n    - 0.75\nresidual: 0\n", string(got))

	jsonPath := filepath.Join(dir, "out.json")
	require.NoError(t, chainfile.WriteReport(jsonPath, r))
	got, err = os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"two-state","states":2,"kind":"stochastic","closed_classes":1,"distribution":[0.25,0.75],"residual":0}`, string(got))

	err = chainfile.WriteReport(filepath.Join(dir, "out.txt"), r)
	assert.ErrorIs(t, err, chainfile.ErrUnknownFormat)
	_, statErr := os.Stat(filepath.Join(dir, "out.txt"))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}
