// SPDX-License-Identifier: MIT

package chainfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat indicates a report path whose extension is not .yaml, .yml or .json.
var ErrUnknownFormat = errors.New("chainfile: unknown report format")

// Report is the persisted result of one solve. ClosedClasses > 1 means the
// chain is reducible and Distribution is one of several stationary laws.
type Report struct {
	Name          string    `yaml:"name" json:"name"`
	States        int       `yaml:"states" json:"states"`
	Kind          string    `yaml:"kind" json:"kind"`
	ClosedClasses int       `yaml:"closed_classes" json:"closed_classes"`
	Distribution  []float64 `yaml:"distribution" json:"distribution"`
	Residual      float64   `yaml:"residual" json:"residual"`
}

// MarshalReport encodes r as YAML or JSON according to the extension of path.
func MarshalReport(path string, r Report) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Marshal(r)
	case ".json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// WriteReport writes r to path atomically: readers see either the previous
// file or the complete new one.
func WriteReport(path string, r Report) error {
	data, err := MarshalReport(path, r)
	if err != nil {
		return err
	}
	if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("chainfile: write %s: %w", path, err)
	}

	return nil
}
