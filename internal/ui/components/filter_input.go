package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rebeliceyang/lazyfilter/internal/filter"
	"github.com/rebeliceyang/lazyfilter/internal/models"
	"github.com/rebeliceyang/lazyfilter/internal/ui/theme"
)

// ClausesChangedMsg is sent after every change to the filter state
type ClausesChangedMsg struct {
	State models.FilterState
}

// FilterInput is the whole filter widget: the clause chips, the form of the
// clause in edit mode, and the blank new clause form.
type FilterInput struct {
	Width int
	Theme theme.Theme

	// ConfirmDelete asks for a second delete keystroke before removing a chip
	ConfirmDelete bool

	ctx         *filter.FilterContext
	opts        FormOptions
	form        *ClauseForm
	cursor      int
	pending     string
	dirty       bool
	unsubscribe func()
}

// NewFilterInput creates the widget over ctx and subscribes to its store
func NewFilterInput(ctx *filter.FilterContext, th theme.Theme, opts FormOptions) *FilterInput {
	f := &FilterInput{
		Width: 80,
		Theme: th,
		ctx:   ctx,
		opts:  opts,
	}
	f.unsubscribe = ctx.Store().Subscribe(func(models.FilterState) {
		f.dirty = true
	})
	f.syncForm()
	return f
}

// Close detaches the widget from the store
func (f *FilterInput) Close() {
	if f.unsubscribe != nil {
		f.unsubscribe()
		f.unsubscribe = nil
	}
}

// Context returns the filter context
func (f *FilterInput) Context() *filter.FilterContext {
	return f.ctx
}

// Form returns the form currently shown for editing
func (f *FilterInput) Form() *ClauseForm {
	return f.form
}

// Cursor returns the chip position used for keyboard navigation.
// len(clauses) is the new clause slot.
func (f *FilterInput) Cursor() int {
	return f.cursor
}

// Editing reports whether a clause is in edit mode and owns the keyboard
func (f *FilterInput) Editing() bool {
	return f.ctx.State().ActiveEdit() != models.EditNone
}

// Update handles keyboard and mouse input
func (f *FilterInput) Update(msg tea.Msg) (*FilterInput, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if f.Editing() {
			cmds = append(cmds, f.form.Update(msg))
		} else {
			cmds = append(cmds, f.handleListKey(msg))
		}
	case tea.MouseMsg:
		cmds = append(cmds, f.handleMouse(msg))
	}

	cmds = append(cmds, f.flush()...)
	return f, tea.Batch(cmds...)
}

// flush reports store changes and keeps the form in step with the active edit
func (f *FilterInput) flush() []tea.Cmd {
	var cmds []tea.Cmd
	if f.dirty {
		f.dirty = false
		state := f.ctx.State()
		cmds = append(cmds, func() tea.Msg {
			return ClausesChangedMsg{State: state}
		})
	}
	return append(cmds, f.syncForm())
}

func (f *FilterInput) syncForm() tea.Cmd {
	state := f.ctx.State()
	active := state.ActiveEdit()

	target := active
	if target == models.EditNone {
		target = models.EditNew
	}

	if f.form == nil || f.form.EditID() != target {
		var clause *models.Clause
		if c, ok := state.ActiveClause(); ok {
			clause = &c
		}
		f.form = NewClauseForm(f.ctx, clause, f.Theme, f.opts)
	}

	switch active {
	case models.EditNone:
		f.cursor = min(max(f.cursor, 0), len(state.Clauses))
		if f.form.Focused() {
			f.form.Blur()
		}
		return nil
	case models.EditNew:
		f.cursor = len(state.Clauses)
	default:
		f.cursor = state.IndexOf(string(active))
	}

	if !f.form.Focused() {
		return f.form.Focus()
	}
	return nil
}

func (f *FilterInput) handleListKey(msg tea.KeyMsg) tea.Cmd {
	clauses := f.ctx.Clauses()

	key := msg.String()
	if key != "ctrl+h" && key != "ctrl+backspace" && key != "d" && key != "x" && key != "delete" {
		f.pending = ""
	}

	switch key {
	case "left", "h", "up", "k":
		if f.cursor > 0 {
			f.cursor--
		}
	case "right", "l", "down", "j":
		if f.cursor < len(clauses) {
			f.cursor++
		}
	case "home", "g":
		f.cursor = 0
	case "end", "G":
		f.cursor = len(clauses)
	case "enter", "e":
		f.open(f.cursor)
	case "a", "n", "/":
		f.ctx.Dispatch(filter.EditNewClause())
	case "ctrl+h", "ctrl+backspace", "d", "x", "delete":
		if f.cursor < len(clauses) {
			f.requestDelete(clauses[f.cursor])
		}
	}
	return nil
}

// open puts the clause at i in edit mode, or the new clause form past the end
func (f *FilterInput) open(i int) {
	clauses := f.ctx.Clauses()
	if i >= 0 && i < len(clauses) {
		f.ctx.Dispatch(filter.EditClause(clauses[i]))
		return
	}
	f.ctx.Dispatch(filter.EditNewClause())
}

func (f *FilterInput) requestDelete(c models.Clause) {
	if f.ConfirmDelete && f.pending != c.ID {
		f.pending = c.ID
		return
	}
	f.pending = ""
	filter.NewEditor(f.ctx, &c).Delete()
}

func (f *FilterInput) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if handled, cmd := f.form.HandleMouse(msg); handled {
		return cmd
	}

	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return nil
	}

	clauses := f.ctx.Clauses()
	for _, c := range clauses {
		if zone.Get(ChipDeleteZone(c.ID)).InBounds(msg) {
			f.requestDelete(c)
			return nil
		}
	}
	for i, c := range clauses {
		if zone.Get(ChipZone(c.ID)).InBounds(msg) {
			f.cursor = i
			f.ctx.Dispatch(filter.EditClause(c))
			return nil
		}
	}
	return nil
}

// View renders the chips with the active form in place
func (f *FilterInput) View() string {
	state := f.ctx.State()
	active := state.ActiveEdit()

	muted := lipgloss.NewStyle().Foreground(f.Theme.Muted)
	rows := make([]string, 0, len(state.Clauses)+2)

	for i, c := range state.Clauses {
		if models.EditID(c.ID) == active {
			form := f.form.View()
			if i > 0 {
				form = lipgloss.JoinHorizontal(lipgloss.Top, muted.Padding(1, 1, 0, 0).Render("and"), form)
			}
			rows = append(rows, form)
			continue
		}

		chip := ClauseChip{
			Clause:   c,
			First:    i == 0,
			Selected: active == models.EditNone && i == f.cursor,
			Theme:    f.Theme,
		}.View()
		if f.pending == c.ID {
			chip = lipgloss.JoinHorizontal(lipgloss.Center, chip,
				lipgloss.NewStyle().Foreground(f.Theme.Warning).Render("  press delete again to remove"))
		}
		rows = append(rows, chip)
	}

	if active == models.EditNone || active == models.EditNew {
		marker := "+ "
		if active == models.EditNone && f.cursor == len(state.Clauses) {
			marker = "▶ "
		}
		prefix := lipgloss.NewStyle().Foreground(f.Theme.Info).Padding(1, 0, 0, 0).Render(marker)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, prefix, f.form.View()))
	}

	return lipgloss.NewStyle().Width(f.Width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
