// Package design loads multi-factorial study designs from YAML files.
//
// A design file captures everything one randomization run needs, so a
// study's parameters can be reviewed and version-controlled instead of
// living on a shell history line:
//
//	list_length: 120
//	factor_count: 3
//	file_prefix: out/trial
//	seed: 42          # optional; omit for a fresh random list
//
// Unknown keys are rejected: a typo in a study design should fail
// loudly, not silently fall back to a default.
package design

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrPrefixRequired indicates a design file without a file_prefix.
var ErrPrefixRequired = errors.New("design: file_prefix is required")

// Design is one parsed study design. Range validation of ListLength
// and FactorCount is owned by factorial.Generate; the design layer only
// enforces what the generator cannot see (the output prefix).
type Design struct {
	// ListLength is the requested number of participant slots; the
	// generated list rounds up to whole blocks.
	ListLength int `yaml:"list_length"`

	// FactorCount is the number of boolean factors (1..16).
	FactorCount int `yaml:"factor_count"`

	// FilePrefix is the path prefix of the per-factor CSV files.
	FilePrefix string `yaml:"file_prefix"`

	// Seed locks the permutation stream when non-zero; zero (or absent)
	// requests a fresh crypto-random seed.
	Seed int64 `yaml:"seed"`
}

// Load reads and parses the design file at path.
func Load(path string) (Design, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Design{}, fmt.Errorf("design: read %s: %w", path, err)
	}

	d, err := Parse(data)
	if err != nil {
		return Design{}, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Parse decodes a YAML design document. Unknown fields are an error.
func Parse(data []byte) (Design, error) {
	var d Design

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return Design{}, fmt.Errorf("parse design: %w", err)
	}

	if d.FilePrefix == "" {
		return Design{}, ErrPrefixRequired
	}

	return d, nil
}
