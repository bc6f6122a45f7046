package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/rebeliceyang/lazyfilter/internal/filter"
	"github.com/rebeliceyang/lazyfilter/internal/models"
)

// Format is an export file format
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// FormatForPath picks the format from a .json or .csv extension. Any other
// path uses fallback, or JSON when fallback is empty.
func FormatForPath(path string, fallback Format) Format {
	switch ext := filepath.Ext(path); {
	case strings.EqualFold(ext, ".csv"):
		return FormatCSV
	case strings.EqualFold(ext, ".json"):
		return FormatJSON
	case fallback == "":
		return FormatJSON
	default:
		return fallback
	}
}

// MarshalJSON renders clauses as indented JSON. An empty list renders as [].
func MarshalJSON(clauses []models.Clause) ([]byte, error) {
	if clauses == nil {
		clauses = []models.Clause{}
	}
	data, err := json.MarshalIndent(clauses, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal clauses to JSON: %w", err)
	}
	return data, nil
}

// ExportToJSON exports clauses to a JSON file
func ExportToJSON(clauses []models.Clause, path string) error {
	data, err := MarshalJSON(clauses)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}
	return nil
}

// ExportToCSV exports clauses to a CSV file, one row per clause
func ExportToCSV(clauses []models.Clause, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)

	header := []string{"ID", "Field", "Type", "Operator", "Operator Label", "Value", "Description"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, c := range clauses {
		row := []string{
			c.ID,
			c.Column.Field,
			string(c.Column.Kind),
			string(c.Operator),
			filter.OperatorLabel(c.Column.Kind, c.Operator),
			c.Value,
			filter.Describe(c),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file: %w", err)
	}
	return nil
}

// ExportToFile writes clauses in the format implied by the path, falling back
// to fallback for paths without a known extension
func ExportToFile(clauses []models.Clause, path string, fallback Format) error {
	switch FormatForPath(path, fallback) {
	case FormatCSV:
		return ExportToCSV(clauses, path)
	default:
		return ExportToJSON(clauses, path)
	}
}

// CopyToClipboard places the JSON form of clauses on the system clipboard
func CopyToClipboard(clauses []models.Clause) error {
	data, err := MarshalJSON(clauses)
	if err != nil {
		return err
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
