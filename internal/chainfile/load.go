// SPDX-License-Identifier: MIT

// Package chainfile reads chain matrices from YAML or JSON documents and
// writes solution reports.
//
// Accepted input documents (JSON is parsed by the same YAML decoder):
//
//	# bare sequence of rows
//	- [0.4, 0.6]
//	- [0.2, 0.8]
//
//	# named mapping
//	name: two-state
//	matrix:
//	  - [0.4, 0.6]
//	  - [0.2, 0.8]
//
// The loader checks the document rank before anything else: a sequence of
// scalars is one-dimensional and is rejected with gth.ErrInvalidShape, as are
// deeper nestings and ragged rows. Numeric policy (NaN/±Inf) is left to the
// solver options.
package chainfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stationary/gth"
	"github.com/katalvlaran/stationary/matrix"
)

var (
	// ErrEmptyDocument indicates a file with no YAML/JSON document in it.
	ErrEmptyDocument = errors.New("chainfile: empty document")

	// ErrUnsupportedDocument indicates a document that is neither a sequence
	// of rows nor a mapping with a matrix key.
	ErrUnsupportedDocument = errors.New("chainfile: unsupported document layout")

	// ErrBadEntry indicates a matrix entry that does not decode as a number.
	ErrBadEntry = errors.New("chainfile: matrix entry is not a number")
)

const (
	keyName   = "name"
	keyMatrix = "matrix"
)

// Document is one loaded chain.
type Document struct {
	Name   string
	Matrix *matrix.Dense
}

// Load reads and decodes the document at path. When the document carries no
// name, the file's base name without extension is used.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("chainfile: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	doc, err := Decode(data, base)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Decode parses a document from data; fallbackName is used when the document
// has no name of its own.
func Decode(data []byte, fallbackName string) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("chainfile: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrEmptyDocument
	}

	doc := &Document{Name: fallbackName}
	body := root.Content[0]
	switch body.Kind {
	case yaml.SequenceNode:
	case yaml.MappingNode:
		var rows *yaml.Node
		for i := 0; i+1 < len(body.Content); i += 2 {
			key, val := body.Content[i], body.Content[i+1]
			switch key.Value {
			case keyName:
				if err := val.Decode(&doc.Name); err != nil {
					return nil, fmt.Errorf("line %d: name: %w", val.Line, err)
				}
			case keyMatrix:
				rows = val
			}
		}
		if rows == nil {
			return nil, fmt.Errorf("line %d: missing %q key: %w", body.Line, keyMatrix, ErrUnsupportedDocument)
		}
		body = rows
	default:
		return nil, fmt.Errorf("line %d: %w", body.Line, ErrUnsupportedDocument)
	}

	m, err := decodeRows(body)
	if err != nil {
		return nil, err
	}
	doc.Matrix = m

	return doc, nil
}

// decodeRows turns a sequence-of-sequences node into a Dense matrix.
func decodeRows(node *yaml.Node) (*matrix.Dense, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: matrix must be a sequence of rows: %w", node.Line, gth.ErrInvalidShape)
	}
	rows := make([][]float64, len(node.Content))
	for i, rowNode := range node.Content {
		if rowNode.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("line %d: row %d is not a sequence (1-dimensional input): %w",
				rowNode.Line, i, gth.ErrInvalidShape)
		}
		row := make([]float64, len(rowNode.Content))
		for j, cell := range rowNode.Content {
			if cell.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: entry (%d,%d) is nested: %w", cell.Line, i, j, gth.ErrInvalidShape)
			}
			if err := cell.Decode(&row[j]); err != nil {
				return nil, fmt.Errorf("line %d: entry (%d,%d) %q: %w", cell.Line, i, j, cell.Value, ErrBadEntry)
			}
		}
		rows[i] = row
	}

	m, err := matrix.NewDenseFrom(rows, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("line %d: %w: %w", node.Line, gth.ErrInvalidShape, err)
	}

	return m, nil
}
