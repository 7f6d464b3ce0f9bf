package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// modelFile is the YAML shape of a model file.
type modelFile struct {
	Model     string     `yaml:"model"`
	Particles []Particle `yaml:"particles"`
}

// Load reads, validates and indexes a model file.
// Fail-fast: the first schema violation aborts the load.
func Load(path string) (*Spectrum, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model file: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse validates model-file bytes against the schema and builds the
// spectrum.
func Parse(data []byte) (*Spectrum, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse model file: %w", err)
	}

	if errs := ValidateDocument(doc); len(errs) > 0 {
		return nil, fmt.Errorf("invalid model file: %w", errs[0])
	}

	var file modelFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode model file: %w", err)
	}

	s, err := NewSpectrum(file.Particles)
	if err != nil {
		return nil, err
	}
	s.name = file.Model
	return s, nil
}

// Check validates model-file bytes and reports every schema violation.
// Collect-all counterpart of Parse, used by the validate command.
func Check(data []byte) []SchemaError {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return []SchemaError{{Message: fmt.Sprintf("parse model file: %v", err)}}
	}
	return ValidateDocument(doc)
}
