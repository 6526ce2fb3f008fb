package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseInterfaceSchema parses a single interface schema from YAML
// bytes and validates it.
func ParseInterfaceSchema(data []byte) (*InterfaceSchema, error) {
	var s InterfaceSchema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing interface schema: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadInterfaceSchema loads and parses an interface schema from a file.
func LoadInterfaceSchema(path string) (*InterfaceSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseInterfaceSchema(data)
}

// schemaFile is the on-disk shape of a multi-schema file.
type schemaFile struct {
	Schemas []InterfaceSchema `yaml:"schemas"`
}

// ParseInterfaceSchemas parses a file containing a `schemas:` list and
// validates each entry.
func ParseInterfaceSchemas(data []byte) ([]*InterfaceSchema, error) {
	var f schemaFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing interface schemas: %w", err)
	}

	schemas := make([]*InterfaceSchema, 0, len(f.Schemas))
	for i := range f.Schemas {
		s := &f.Schemas[i]
		if err := s.Validate(); err != nil {
			return nil, err
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}

// LoadInterfaceSchemas loads and parses a multi-schema file.
func LoadInterfaceSchemas(path string) ([]*InterfaceSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseInterfaceSchemas(data)
}
