package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rebeliceyang/lazyfilter/internal/models"
)

func testClauses() []models.Clause {
	return []models.Clause{
		{
			ID:       "test-1",
			Column:   models.StringColumn("name"),
			Operator: models.OpContains,
			Value:    `O'Brien, "Jr"`,
		},
		{
			ID: "test-2",
			Column: models.MultiSelectColumn("favorite_foods",
				models.Option{Label: "Pizza", Value: "pizza"},
				models.Option{Label: "Ramen", Value: "ramen"},
			),
			Operator: models.OpDoesNotContain,
			Value:    "pizza|ramen",
		},
	}
}

func TestExportToCSV(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "clauses.csv")

	if err := ExportToCSV(testClauses(), csvPath); err != nil {
		t.Fatalf("ExportToCSV failed: %v", err)
	}

	info, err := os.Stat(csvPath)
	if err != nil {
		t.Fatalf("Failed to stat file: %v", err)
	}
	if info.Mode().Perm()&0600 != 0600 {
		t.Errorf("Expected file to be readable and writable by owner, got %o", info.Mode().Perm())
	}

	file, err := os.Open(csvPath)
	if err != nil {
		t.Fatalf("Failed to open CSV: %v", err)
	}
	defer func() { _ = file.Close() }()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) != 3 { // header + 2 rows
		t.Fatalf("Expected 3 records, got %d", len(records))
	}
	if records[0][0] != "ID" || records[0][6] != "Description" {
		t.Errorf("Unexpected header: %v", records[0])
	}

	first := records[1]
	if first[0] != "test-1" || first[1] != "name" || first[3] != "CONTAINS" {
		t.Errorf("Unexpected first row: %v", first)
	}
	if first[5] != `O'Brien, "Jr"` {
		t.Errorf("Expected value with special chars to survive, got %q", first[5])
	}

	second := records[2]
	if second[4] != "does not have" {
		t.Errorf("Expected operator label 'does not have', got %q", second[4])
	}
	if second[6] != "Favorite foods does not have Pizza, Ramen" {
		t.Errorf("Unexpected description: %q", second[6])
	}
}

func TestExportToJSON(t *testing.T) {
	jsonPath := filepath.Join(t.TempDir(), "clauses.json")

	if err := ExportToJSON(testClauses(), jsonPath); err != nil {
		t.Fatalf("ExportToJSON failed: %v", err)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("Failed to read JSON: %v", err)
	}

	var decoded []models.Clause
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}

	if len(decoded) != 2 {
		t.Fatalf("Expected 2 clauses, got %d", len(decoded))
	}
	for i, want := range testClauses() {
		if !decoded[i].Equal(want) {
			t.Errorf("clause %d: got %+v, want %+v", i, decoded[i], want)
		}
	}
}

func TestMarshalJSON_Empty(t *testing.T) {
	data, err := MarshalJSON(nil)
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Expected [], got %s", data)
	}
}

func TestExportToFile_PicksFormat(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		path     string
		fallback Format
		want     Format
	}{
		{"out.CSV", FormatJSON, FormatCSV},
		{"out.json", FormatCSV, FormatJSON},
		{"out", "", FormatJSON},
		{"out", FormatCSV, FormatCSV},
		{"out.txt", FormatCSV, FormatCSV},
	}
	for _, tt := range tests {
		if got := FormatForPath(tt.path, tt.fallback); got != tt.want {
			t.Errorf("FormatForPath(%q, %q) = %q, want %q", tt.path, tt.fallback, got, tt.want)
		}
	}

	csvPath := filepath.Join(dir, "out.csv")
	if err := ExportToFile(testClauses(), csvPath, FormatJSON); err != nil {
		t.Fatalf("ExportToFile failed: %v", err)
	}
	data, _ := os.ReadFile(csvPath)
	if len(data) == 0 || data[0] != 'I' {
		t.Errorf("Expected CSV header, got %q", data)
	}
}

func TestExportToJSON_InvalidPath(t *testing.T) {
	err := ExportToJSON(testClauses(), filepath.Join(t.TempDir(), "missing", "out.json"))
	if err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestExportToFile_FallbackFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clauses")
	if err := ExportToFile(testClauses(), path, FormatCSV); err != nil {
		t.Fatalf("ExportToFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "ID,Field,Type") {
		t.Errorf("Expected CSV for a path without extension, got %q", data)
	}
}
