// SPDX-License-Identifier: MIT

// Package config holds the gthsolve settings: built-in defaults, overridden
// by an optional YAML file, overridden in turn by command-line flags.
//
//	# gthsolve.yaml
//	tolerance: 1e-9   # residual bound used to verify every result
//	workers: 4        # concurrent solves for multi-file runs
//	strict: false     # reject matrices that are neither stochastic nor generators
//	format: text      # log format: text | json
//	debug: false      # debug-level logging
//	db: runs.db       # record every result in this SQLite file (empty: off)
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultTolerance bounds the verification residual when nothing else is set.
const DefaultTolerance = 1e-9

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the resolved CLI configuration.
type Config struct {
	Tolerance float64 `yaml:"tolerance"`
	Workers   int     `yaml:"workers"`
	Strict    bool    `yaml:"strict"`
	Format    string  `yaml:"format"`
	Debug     bool    `yaml:"debug"`
	DB        string  `yaml:"db"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tolerance: DefaultTolerance,
		Workers:   runtime.GOMAXPROCS(0),
		Format:    FormatText,
	}
}

// Load returns Default overlaid with the YAML file at path. An empty path
// means no file. Unknown keys are rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance < 0:
		return fmt.Errorf("%w: tolerance %g must be finite and >= 0", ErrInvalidConfig, c.Tolerance)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers %d must be >= 1", ErrInvalidConfig, c.Workers)
	case c.Format != FormatText && c.Format != FormatJSON:
		return fmt.Errorf("%w: format %q must be %q or %q", ErrInvalidConfig, c.Format, FormatText, FormatJSON)
	}

	return nil
}
