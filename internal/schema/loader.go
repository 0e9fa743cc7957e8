package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var sf File

	err := yaml.Unmarshal(data, &sf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&sf)

	return &sf, nil
}

// applyDefaults fills in default values for optional schema attributes.
func applyDefaults(sf *File) {
	if sf.Version == "" {
		sf.Version = "1"
	}

	for i := range sf.Builders {
		b := &sf.Builders[i]
		if b.Finalize == "" {
			b.Finalize = "Build"
		}

		for j := range b.Fields {
			f := &b.Fields[j]
			if f.Setter == "" {
				f.Setter = "With" + f.GoName()
			}

			if f.Accessor == "" {
				f.Accessor = f.GoName()
			}
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(sf *File) ([]byte, error) {
	return yaml.Marshal(sf)
}

// WriteFile writes a File to the given path.
func WriteFile(sf *File, path string) error {
	data, err := Marshal(sf)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}

	return nil
}
