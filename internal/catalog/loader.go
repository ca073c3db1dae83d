package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk catalog layout
type File struct {
	Symbols []Entry `yaml:"symbols"`
}

// LoadFile reads a YAML catalog and validates it
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrContextReadCatalog, path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextParseCatalog, err)
	}
	return New(f.Symbols)
}

// Load returns the catalog at path, or the default catalog when path is empty
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
