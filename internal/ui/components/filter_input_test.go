package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rebeliceyang/lazyfilter/internal/models"
)

// collectMsgs runs cmd and flattens batches. Only use it when no input
// gained focus, since a focused input returns a blinking cursor command.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestFilterInput_RendersChips(t *testing.T) {
	ctx := newTestContext()
	seedClauses(ctx)

	fi := NewFilterInput(ctx, testTheme(), FormOptions{})
	defer fi.Close()
	fi.Width = 120

	view := fi.View()
	for _, want := range []string{"Name", "contains", "ann", "Age", "is greater than", "and"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}
	if fi.Editing() {
		t.Error("Expected nothing to be in edit mode")
	}
}

func TestFilterInput_NavigateAndOpen(t *testing.T) {
	ctx := newTestContext()
	clauses := seedClauses(ctx)

	fi := NewFilterInput(ctx, testTheme(), FormOptions{})
	defer fi.Close()

	fi.Update(keyMsg("right"))
	if fi.Cursor() != 1 {
		t.Fatalf("Expected cursor 1, got %d", fi.Cursor())
	}

	fi.Update(keyMsg("enter"))
	if !fi.Editing() {
		t.Fatal("Expected edit mode")
	}
	if fi.Form().EditID() != models.EditID(clauses[1].ID) {
		t.Errorf("Expected form for %s, got %s", clauses[1].ID, fi.Form().EditID())
	}
	if !fi.Form().Focused() {
		t.Error("Expected the active form to have focus")
	}

	fi.Update(keyMsg("esc"))
	if fi.Editing() {
		t.Error("Expected esc to leave edit mode")
	}
	if fi.Form().EditID() != models.EditNew {
		t.Errorf("Expected the blank new clause form, got %s", fi.Form().EditID())
	}
	if fi.Form().Focused() {
		t.Error("Expected the new clause form to be unfocused outside edit mode")
	}
}

func TestFilterInput_CursorBounds(t *testing.T) {
	ctx := newTestContext()
	seedClauses(ctx)

	fi := NewFilterInput(ctx, testTheme(), FormOptions{})
	defer fi.Close()

	fi.Update(keyMsg("left"))
	if fi.Cursor() != 0 {
		t.Errorf("Expected cursor to stay at 0, got %d", fi.Cursor())
	}
	for i := 0; i < 5; i++ {
		fi.Update(keyMsg("right"))
	}
	if fi.Cursor() != 3 {
		t.Errorf("Expected cursor to stop at the new clause slot, got %d", fi.Cursor())
	}

	fi.Update(keyMsg("enter"))
	if ctx.State().ActiveEdit() != models.EditNew {
		t.Errorf("Expected the new clause to be active, got %q", ctx.State().ActiveEdit())
	}
}

func TestFilterInput_AddClauseEndToEnd(t *testing.T) {
	ctx := newTestContext()
	fi := NewFilterInput(ctx, testTheme(), FormOptions{})
	defer fi.Close()

	update := func(msg tea.KeyMsg) { fi.Update(msg) }

	update(keyMsg("a"))
	typeInto(update, "nam")
	update(keyMsg("enter"))
	update(keyMsg("enter"))
	typeInto(update, "Bob")
	update(keyMsg("enter"))

	clauses := ctx.Clauses()
	if len(clauses) != 1 || clauses[0].Value != "Bob" {
		t.Fatalf("Expected one clause with value Bob, got %+v", clauses)
	}
	if fi.Editing() {
		t.Error("Expected edit mode to end after adding")
	}
	if !strings.Contains(fi.View(), "Bob") {
		t.Error("Expected the new chip to render")
	}
}

func TestFilterInput_DeleteEmitsChange(t *testing.T) {
	ctx := newTestContext()
	seedClauses(ctx)

	fi := NewFilterInput(ctx, testTheme(), FormOptions{})
	defer fi.Close()

	_, cmd := fi.Update(keyMsg("d"))

	if len(ctx.Clauses()) != 2 {
		t.Fatalf("Expected 2 clauses, got %d", len(ctx.Clauses()))
	}

	var changed *ClausesChangedMsg
	for _, msg := range collectMsgs(cmd) {
		if m, ok := msg.(ClausesChangedMsg); ok {
			changed = &m
		}
	}
	if changed == nil {
		t.Fatal("Expected a ClausesChangedMsg")
	}
	if len(changed.State.Clauses) != 2 {
		t.Errorf("Expected message to carry 2 clauses, got %d", len(changed.State.Clauses))
	}
}

func TestFilterInput_ConfirmDelete(t *testing.T) {
	ctx := newTestContext()
	seedClauses(ctx)

	fi := NewFilterInput(ctx, testTheme(), FormOptions{})
	defer fi.Close()
	fi.ConfirmDelete = true

	fi.Update(keyMsg("d"))
	if len(ctx.Clauses()) != 3 {
		t.Fatal("Expected the first delete to only ask for confirmation")
	}
	if !strings.Contains(fi.View(), "press delete again") {
		t.Error("Expected a confirmation hint")
	}

	fi.Update(keyMsg("d"))
	if len(ctx.Clauses()) != 2 {
		t.Errorf("Expected the second delete to remove the clause, got %d", len(ctx.Clauses()))
	}
}

func TestFilterInput_ConfirmDeleteCancelledByNavigation(t *testing.T) {
	ctx := newTestContext()
	seedClauses(ctx)

	fi := NewFilterInput(ctx, testTheme(), FormOptions{})
	defer fi.Close()
	fi.ConfirmDelete = true

	fi.Update(keyMsg("d"))
	fi.Update(keyMsg("right"))
	fi.Update(keyMsg("left"))
	fi.Update(keyMsg("d"))

	if len(ctx.Clauses()) != 3 {
		t.Errorf("Expected navigation to cancel the pending delete, got %d clauses", len(ctx.Clauses()))
	}
}

func TestFilterInput_CloseStopsNotifications(t *testing.T) {
	ctx := newTestContext()
	fi := NewFilterInput(ctx, testTheme(), FormOptions{})
	fi.Close()

	seedClauses(ctx)
	if fi.dirty {
		t.Error("Expected a closed widget to ignore store changes")
	}
}
