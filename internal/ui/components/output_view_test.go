package components

import (
	"strings"
	"testing"

	"github.com/rebeliceyang/lazyfilter/internal/models"
)

func outputClauses() []models.Clause {
	return []models.Clause{
		{ID: "c1", Column: models.StringColumn("name"), Operator: models.OpContains, Value: "ann"},
		{ID: "c2", Column: models.NumberColumn("age"), Operator: models.OpGreaterThan, Value: "18"},
	}
}

func TestOutputView_JSON(t *testing.T) {
	ov := NewOutputView(testTheme())
	ov.Height = 100

	if err := ov.SetClauses(outputClauses()); err != nil {
		t.Fatalf("SetClauses failed: %v", err)
	}

	if !strings.Contains(ov.JSON(), `"operator": "GREATER_THAN"`) {
		t.Errorf("Expected JSON to contain the operator key, got:\n%s", ov.JSON())
	}

	view := ov.View()
	for _, want := range []string{`"id"`, `"c1"`, `"ann"`} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %s", want)
		}
	}
}

func TestOutputView_Summary(t *testing.T) {
	ov := NewOutputView(testTheme())
	ov.SetClauses(outputClauses())
	ov.Update(keyMsg("2"))

	if ov.Mode() != OutputSummary {
		t.Fatal("Expected summary mode")
	}

	view := ov.View()
	if !strings.Contains(view, "where Name contains ann") {
		t.Errorf("Expected first summary line, got:\n%s", view)
	}
	if !strings.Contains(view, "and Age is greater than 18") {
		t.Errorf("Expected second summary line, got:\n%s", view)
	}
}

func TestOutputView_SummaryEmpty(t *testing.T) {
	ov := NewOutputView(testTheme())
	ov.Update(keyMsg("2"))

	if !strings.Contains(ov.View(), "(no filters)") {
		t.Error("Expected empty placeholder")
	}
}

func TestOutputView_ScrollClamps(t *testing.T) {
	ov := NewOutputView(testTheme())
	ov.Height = 3
	ov.SetClauses(outputClauses())

	total := len(strings.Split(ov.JSON(), "\n"))
	for i := 0; i < total+10; i++ {
		ov.Update(keyMsg("down"))
	}
	if ov.offset != total-3 {
		t.Errorf("Expected offset %d, got %d", total-3, ov.offset)
	}

	ov.Update(keyMsg("up"))
	if ov.offset != total-4 {
		t.Errorf("Expected offset %d, got %d", total-4, ov.offset)
	}
}
