// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stationary/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "gthsolve.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, config.DefaultTolerance, cfg.Tolerance)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Workers)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.False(t, cfg.Strict)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.DB)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load(writeConfig(t, "tolerance: 1e-6\nworkers: 2\nstrict: true\nformat: json\ndb: runs.db\n"))
	require.NoError(t, err)
	assert.Equal(t, "runs.db", cfg.DB)
	assert.Equal(t, 1e-6, cfg.Tolerance)
	assert.Equal(t, 2, cfg.Workers)
	assert.True(t, cfg.Strict)
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.False(t, cfg.Debug, "unset keys keep their defaults")

	cfg, err = config.Load(writeConfig(t, ""))
	require.NoError(t, err, "an empty file is the default configuration")
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"negative tolerance", "tolerance: -1\n", config.ErrInvalidConfig},
		{"zero workers", "workers: 0\n", config.ErrInvalidConfig},
		{"bad format", "format: xml\n", config.ErrInvalidConfig},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tc.body))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := config.Load(writeConfig(t, "tolerence: 1e-6\n"))
	assert.ErrorContains(t, err, "tolerence", "unknown keys are reported")

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
