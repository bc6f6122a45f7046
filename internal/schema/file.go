package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rebeliceyang/lazyfilter/internal/models"
)

// File is the on-disk schema format
type File struct {
	Columns []FileColumn `yaml:"columns"`
}

// FileColumn is one column entry. Options may be written as label/value
// pairs or, when label and value are the same, in the short "values" form.
type FileColumn struct {
	Field   string            `yaml:"field"`
	Type    models.ColumnKind `yaml:"type"`
	Options []models.Option   `yaml:"options,omitempty"`
	Values  []string          `yaml:"values,omitempty"`
}

// Parse decodes and validates a YAML schema document
func Parse(data []byte) ([]models.ColumnDef, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	columns := make([]models.ColumnDef, 0, len(f.Columns))
	for _, fc := range f.Columns {
		col := models.ColumnDef{Field: fc.Field, Kind: fc.Type}
		if len(fc.Options) > 0 || len(fc.Values) > 0 {
			col.Options = append(append([]models.Option{}, fc.Options...), OptionsFromValues(fc.Values)...)
		}
		columns = append(columns, col)
	}

	if err := Validate(columns); err != nil {
		return nil, err
	}
	return columns, nil
}

// LoadFile reads a YAML schema from path
func LoadFile(path string) ([]models.ColumnDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return Parse(data)
}

// Marshal encodes columns in the schema file format
func Marshal(columns []models.ColumnDef) ([]byte, error) {
	f := File{Columns: make([]FileColumn, 0, len(columns))}
	for _, col := range columns {
		f.Columns = append(f.Columns, FileColumn{Field: col.Field, Type: col.Kind, Options: col.Options})
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
