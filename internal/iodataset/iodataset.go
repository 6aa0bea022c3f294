// Package iodataset reads and writes key datasets as YAML files or
// SQLite archives.
package iodataset

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gnkey/pkg/dataset"
	"gopkg.in/yaml.v3"
)

// Format of a dataset file.
type Format int

const (
	UnknownFormat Format = iota
	YAML
	SQLite
)

// String returns a human-readable name of the format.
func (f Format) String() string {
	switch f {
	case YAML:
		return "YAML"
	case SQLite:
		return "SQLite"
	default:
		return "unknown"
	}
}

// FormatOf detects format of a dataset from the file extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	case ".sqlite", ".sqlite3", ".db":
		return SQLite
	default:
		return UnknownFormat
	}
}

// Load reads a dataset from a YAML file or a SQLite archive. The dataset
// is not validated.
func Load(ctx context.Context, path string) (*dataset.Dataset, error) {
	switch FormatOf(path) {
	case YAML:
		return loadYAML(path)
	case SQLite:
		return loadSQLite(ctx, path)
	default:
		return nil, FormatError(path)
	}
}

// Write saves a dataset in the format given by the file extension.
// Existing file is replaced.
func Write(ctx context.Context, d *dataset.Dataset, path string) error {
	switch FormatOf(path) {
	case YAML:
		return writeYAML(d, path)
	case SQLite:
		return writeSQLite(ctx, d, path)
	default:
		return FormatError(path)
	}
}

func loadYAML(path string) (*dataset.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadError(path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var res dataset.Dataset
	if err = dec.Decode(&res); err != nil {
		return nil, ReadError(path, err)
	}
	return &res, nil
}

func writeYAML(d *dataset.Dataset, path string) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return WriteError(path, err)
	}
	if err := enc.Close(); err != nil {
		return WriteError(path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return WriteError(path, err)
	}
	return nil
}
