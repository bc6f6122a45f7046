package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rebeliceyang/lazyfilter/internal/filter"
	"github.com/rebeliceyang/lazyfilter/internal/models"
)

func newFocusedForm(ctx *filter.FilterContext, clause *models.Clause) (*ClauseForm, func(tea.KeyMsg)) {
	if clause == nil {
		ctx.Dispatch(filter.EditNewClause())
	} else {
		ctx.Dispatch(filter.EditClause(*clause))
	}
	form := NewClauseForm(ctx, clause, testTheme(), FormOptions{})
	form.Focus()
	return form, func(msg tea.KeyMsg) { form.Update(msg) }
}

func TestClauseForm_CreateNumberClause(t *testing.T) {
	ctx := newTestContext()
	form, update := newFocusedForm(ctx, nil)

	typeInto(update, "ag")
	update(keyMsg("enter"))
	if form.focus != fieldOperator {
		t.Fatalf("Expected focus to advance to operator, got %d", form.focus)
	}

	update(keyMsg("down"))
	update(keyMsg("enter"))
	if form.focus != fieldValue {
		t.Fatalf("Expected focus to advance to value, got %d", form.focus)
	}

	typeInto(update, "42")
	update(keyMsg("tab"))

	clauses := ctx.Clauses()
	if len(clauses) != 1 {
		t.Fatalf("Expected 1 clause, got %d", len(clauses))
	}
	c := clauses[0]
	if c.Column.Field != "age" || c.Operator != models.OpLessThan || c.Value != "42" {
		t.Errorf("Unexpected clause: %+v", c)
	}
	if ctx.State().ActiveEdit() != models.EditNone {
		t.Errorf("Expected edit mode to end after the last clause, got %q", ctx.State().ActiveEdit())
	}
}

func TestClauseForm_RefusedCommitShowsErrors(t *testing.T) {
	ctx := newTestContext()
	form, update := newFocusedForm(ctx, nil)

	update(keyMsg("tab"))
	update(keyMsg("tab"))
	update(keyMsg("tab"))

	if len(ctx.Clauses()) != 0 {
		t.Errorf("Expected no clause to be stored, got %d", len(ctx.Clauses()))
	}
	if ctx.State().ActiveEdit() != models.EditNew {
		t.Errorf("Expected edit mode to stay on the new clause, got %q", ctx.State().ActiveEdit())
	}

	view := form.View()
	for _, want := range []string{"column is required", "operator is required", "value is required"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}
}

func TestClauseForm_InvalidNumberRefused(t *testing.T) {
	ctx := newTestContext()
	form, update := newFocusedForm(ctx, nil)

	typeInto(update, "ag")
	update(keyMsg("enter"))
	update(keyMsg("enter"))
	typeInto(update, "old")
	update(keyMsg("enter"))

	if len(ctx.Clauses()) != 0 {
		t.Fatal("Expected commit to be refused")
	}
	if msg := form.Editor().Errors()[filter.FieldValue]; !strings.Contains(msg, "not a number") {
		t.Errorf("Expected 'not a number' error, got %q", msg)
	}
}

func TestClauseForm_ColumnChangeResetsDependents(t *testing.T) {
	ctx := newTestContext()
	ctx.Dispatch(filter.AddClause{Column: models.NumberColumn("age"), Operator: models.OpLessThan, Value: "42"})
	existing := ctx.Clauses()[0]

	form, update := newFocusedForm(ctx, &existing)
	for range "Age" {
		update(keyMsg("backspace"))
	}
	typeInto(update, "nam")
	update(keyMsg("enter"))

	values := form.Editor().Values()
	if values.ColumnField != "name" {
		t.Errorf("Expected column 'name', got %q", values.ColumnField)
	}
	if values.Operator != "" || values.Value != "" {
		t.Errorf("Expected operator and value to be cleared, got %+v", values)
	}
	if got := ctx.Clauses()[0]; !got.Equal(existing) {
		t.Error("Expected the stored clause to be untouched before commit")
	}
}

func TestClauseForm_BooleanValue(t *testing.T) {
	ctx := newTestContext()
	_, update := newFocusedForm(ctx, nil)

	typeInto(update, "18")
	update(keyMsg("enter"))
	update(keyMsg("enter"))
	typeInto(update, "fa")
	update(keyMsg("enter"))
	update(keyMsg("tab"))

	clauses := ctx.Clauses()
	if len(clauses) != 1 {
		t.Fatalf("Expected 1 clause, got %d", len(clauses))
	}
	if clauses[0].Operator != models.OpEqual || clauses[0].Value != "false" {
		t.Errorf("Unexpected clause: %+v", clauses[0])
	}
}

func TestClauseForm_MultiSelectValue(t *testing.T) {
	ctx := newTestContext()
	_, update := newFocusedForm(ctx, nil)

	typeInto(update, "fav")
	update(keyMsg("enter"))
	update(keyMsg("enter"))
	update(keyMsg("enter")) // Pizza
	update(keyMsg("down"))
	update(keyMsg("enter")) // Ramen
	update(keyMsg("tab"))

	clauses := ctx.Clauses()
	if len(clauses) != 1 {
		t.Fatalf("Expected 1 clause, got %d", len(clauses))
	}
	c := clauses[0]
	if c.Operator != models.OpContains || c.Value != "pizza|ramen" {
		t.Errorf("Unexpected clause: %+v", c)
	}
	if got := filter.Describe(c); got != "Favorite foods has Pizza, Ramen" {
		t.Errorf("Unexpected description %q", got)
	}
}

func TestClauseForm_DateValue(t *testing.T) {
	ctx := newTestContext()
	_, update := newFocusedForm(ctx, nil)

	typeInto(update, "birth")
	update(keyMsg("enter"))
	update(keyMsg("down"))
	update(keyMsg("down"))
	update(keyMsg("enter"))
	typeInto(update, "2000/2/29")
	update(keyMsg("enter"))

	clauses := ctx.Clauses()
	if len(clauses) != 1 {
		t.Fatalf("Expected 1 clause, got %d", len(clauses))
	}
	if clauses[0].Operator != models.OpGreaterThan || clauses[0].Value != "2000/02/29" {
		t.Errorf("Unexpected clause: %+v", clauses[0])
	}
}

func seedClauses(ctx *filter.FilterContext) []models.Clause {
	ctx.Dispatch(filter.AddClause{Column: models.StringColumn("name"), Operator: models.OpContains, Value: "ann"})
	ctx.Dispatch(filter.AddClause{Column: models.NumberColumn("age"), Operator: models.OpGreaterThan, Value: "18"})
	ctx.Dispatch(filter.AddClause{Column: models.BooleanColumn("is_18_or_over"), Operator: models.OpEqual, Value: "true"})
	return ctx.Clauses()
}

func TestClauseForm_EditMovesToNextClause(t *testing.T) {
	ctx := newTestContext()
	clauses := seedClauses(ctx)

	_, update := newFocusedForm(ctx, &clauses[0])
	update(keyMsg("tab"))
	update(keyMsg("tab"))
	typeInto(update, "e")
	update(keyMsg("tab"))

	if got := ctx.Clauses()[0].Value; got != "anne" {
		t.Errorf("Expected updated value 'anne', got %q", got)
	}
	if ctx.State().ActiveEdit() != models.EditID(clauses[1].ID) {
		t.Errorf("Expected the next clause to become active, got %q", ctx.State().ActiveEdit())
	}
}

func TestClauseForm_ShiftTabStepsBack(t *testing.T) {
	ctx := newTestContext()
	clauses := seedClauses(ctx)

	_, update := newFocusedForm(ctx, &clauses[2])
	update(keyMsg("shift+tab"))

	if ctx.State().ActiveEdit() != models.EditID(clauses[1].ID) {
		t.Errorf("Expected previous clause to become active, got %q", ctx.State().ActiveEdit())
	}
}

func TestClauseForm_DeleteRetargets(t *testing.T) {
	ctx := newTestContext()
	clauses := seedClauses(ctx)

	_, update := newFocusedForm(ctx, &clauses[1])
	update(keyMsg("ctrl+h"))

	if len(ctx.Clauses()) != 2 {
		t.Fatalf("Expected 2 clauses after delete, got %d", len(ctx.Clauses()))
	}
	if ctx.State().ActiveEdit() != models.EditID(clauses[2].ID) {
		t.Errorf("Expected the clause taking its place to become active, got %q", ctx.State().ActiveEdit())
	}
}

func TestClauseForm_DeleteNewClears(t *testing.T) {
	ctx := newTestContext()
	form, update := newFocusedForm(ctx, nil)

	typeInto(update, "ag")
	update(keyMsg("enter"))
	update(keyMsg("ctrl+h"))

	if form.Editor().Values().ColumnField != "" {
		t.Error("Expected the new clause form to be cleared")
	}
	if form.focus != fieldColumn {
		t.Errorf("Expected focus back on the column field, got %d", form.focus)
	}
}

func TestClauseForm_EscLeavesEditMode(t *testing.T) {
	ctx := newTestContext()
	_, update := newFocusedForm(ctx, nil)

	update(keyMsg("esc"))

	if ctx.State().ActiveEdit() != models.EditNone {
		t.Errorf("Expected edit mode to end, got %q", ctx.State().ActiveEdit())
	}
}
