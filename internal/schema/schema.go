// Package schema loads and checks the column definitions a filter input is
// mounted with.
package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rebeliceyang/lazyfilter/internal/filter"
	"github.com/rebeliceyang/lazyfilter/internal/models"
)

// ErrInvalidSchema is wrapped by every error returned from Validate
var ErrInvalidSchema = errors.New("invalid schema")

// Validate checks that fields are unique and every column is usable:
// a known kind, and for multi-select columns a non-empty option list whose
// values are unique and free of the multi-value delimiter.
func Validate(columns []models.ColumnDef) error {
	if len(columns) == 0 {
		return fmt.Errorf("%w: no columns", ErrInvalidSchema)
	}

	seen := make(map[string]bool, len(columns))
	for i, col := range columns {
		if strings.TrimSpace(col.Field) == "" {
			return fmt.Errorf("%w: column %d has no field", ErrInvalidSchema, i)
		}
		if seen[col.Field] {
			return fmt.Errorf("%w: duplicate field '%s'", ErrInvalidSchema, col.Field)
		}
		seen[col.Field] = true

		if len(filter.OperatorsFor(col.Kind)) == 0 {
			return fmt.Errorf("%w: column '%s' has unknown type '%s'", ErrInvalidSchema, col.Field, col.Kind)
		}

		if col.Kind != models.KindMultiSelect {
			if len(col.Options) > 0 {
				return fmt.Errorf("%w: column '%s' of type %s cannot have options", ErrInvalidSchema, col.Field, col.Kind)
			}
			continue
		}

		if err := validateOptions(col); err != nil {
			return err
		}
	}
	return nil
}

func validateOptions(col models.ColumnDef) error {
	if len(col.Options) == 0 {
		return fmt.Errorf("%w: multi-select column '%s' has no options", ErrInvalidSchema, col.Field)
	}

	values := make(map[string]bool, len(col.Options))
	for _, opt := range col.Options {
		if opt.Value == "" {
			return fmt.Errorf("%w: column '%s' has an option without value", ErrInvalidSchema, col.Field)
		}
		if strings.Contains(opt.Value, filter.ValueDelimiter) {
			return fmt.Errorf("%w: option value '%s' of column '%s' contains '%s'",
				ErrInvalidSchema, opt.Value, col.Field, filter.ValueDelimiter)
		}
		if values[opt.Value] {
			return fmt.Errorf("%w: column '%s' repeats option value '%s'", ErrInvalidSchema, col.Field, opt.Value)
		}
		values[opt.Value] = true
	}
	return nil
}

// OptionsFromValues builds options whose label is the value itself
func OptionsFromValues(values []string) []models.Option {
	opts := make([]models.Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, models.Option{Label: v, Value: v})
	}
	return opts
}
