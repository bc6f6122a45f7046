package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rebeliceyang/lazyfilter/internal/filter"
	"github.com/rebeliceyang/lazyfilter/internal/models"
	"github.com/rebeliceyang/lazyfilter/internal/selection"
	"github.com/rebeliceyang/lazyfilter/internal/ui/theme"
)

// valueField is the widget bound to a clause value. Its concrete type
// depends on the column kind.
type valueField interface {
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Update(msg tea.KeyMsg) (bool, tea.Cmd)
	HandleMouse(msg tea.MouseMsg) bool
	View() string
}

type formField int

const (
	fieldColumn formField = iota
	fieldOperator
	fieldValue
)

// FormOptions tune the widgets of a ClauseForm
type FormOptions struct {
	DateLayout  string
	PopupHeight int
	FieldWidth  int
}

// ClauseForm edits one clause: a column picker, an operator picker and a
// value field whose widget follows the column type.
type ClauseForm struct {
	Theme theme.Theme

	ctx    *filter.FilterContext
	editor *filter.Editor
	opts   FormOptions
	zoneID string

	column   *Autocomplete
	operator *Autocomplete
	value    valueField

	focus   formField
	focused bool
	advance bool
}

// NewClauseForm starts an edit session for clause, or for a new clause when nil
func NewClauseForm(ctx *filter.FilterContext, clause *models.Clause, th theme.Theme, opts FormOptions) *ClauseForm {
	if opts.PopupHeight <= 0 {
		opts.PopupHeight = DefaultPopupHeight
	}
	if opts.FieldWidth <= 0 {
		opts.FieldWidth = 24
	}

	f := &ClauseForm{
		Theme:  th,
		ctx:    ctx,
		editor: filter.NewEditor(ctx, clause),
		opts:   opts,
	}
	f.zoneID = "clause-" + string(f.editor.EditID())
	f.build()
	return f
}

// EditID returns the edit marker this form corresponds to
func (f *ClauseForm) EditID() models.EditID {
	return f.editor.EditID()
}

// Editor returns the edit session
func (f *ClauseForm) Editor() *filter.Editor {
	return f.editor
}

// fieldZone returns the zone id of a field, for mouse focus
func (f *ClauseForm) fieldZone(field formField) string {
	switch field {
	case fieldColumn:
		return f.zoneID + "-column"
	case fieldOperator:
		return f.zoneID + "-operator"
	default:
		return f.zoneID + "-value"
	}
}

func (f *ClauseForm) build() {
	columns := f.ctx.Columns()
	options := make([]selection.Option[string], 0, len(columns))
	for _, col := range columns {
		options = append(options, selection.Option[string]{Label: col.Label(), Value: col.Field})
	}

	f.column = NewAutocomplete(f.fieldZone(fieldColumn), "Column", options, f.Theme)
	f.column.SetPopupHeight(f.opts.PopupHeight)
	f.column.Width = f.opts.FieldWidth
	f.column.SetValue(f.editor.Values().ColumnField)
	f.column.OnChange(f.onColumn)

	f.buildOperator()
	f.buildValue()
}

func (f *ClauseForm) buildOperator() {
	ops := f.editor.Operators()
	options := make([]selection.Option[string], 0, len(ops))
	for _, op := range ops {
		options = append(options, selection.Option[string]{Label: op.Label, Value: string(op.Value)})
	}

	f.operator = NewAutocomplete(f.fieldZone(fieldOperator), "Operator", options, f.Theme)
	f.operator.SetPopupHeight(f.opts.PopupHeight)
	f.operator.Width = f.opts.FieldWidth
	f.operator.SetValue(f.editor.Values().Operator)
	f.operator.OnChange(func(op string) {
		f.editor.SetOperator(models.Operator(op))
		f.advance = true
	})
}

func (f *ClauseForm) buildValue() {
	zoneID := f.fieldZone(fieldValue)
	current := f.editor.Values().Value

	col, ok := f.editor.Column()
	if !ok {
		ti := NewTextInput(zoneID, "Value", f.Theme)
		ti.Width = f.opts.FieldWidth
		ti.OnChange(func(v string) { f.editor.SetValue(v) })
		f.value = ti
		return
	}

	switch col.Kind {
	case models.KindBoolean:
		ac := NewAutocomplete(zoneID, "Value", []selection.Option[string]{
			{Label: "true", Value: "true"},
			{Label: "false", Value: "false"},
		}, f.Theme)
		ac.Width = f.opts.FieldWidth
		ac.SetValue(current)
		ac.OnChange(func(v string) { f.editor.SetValue(v) })
		f.value = ac
	case models.KindMultiSelect:
		options := make([]selection.Option[string], 0, len(col.Options))
		for _, opt := range col.Options {
			options = append(options, selection.Option[string]{Label: opt.Label, Value: opt.Value})
		}
		mac := NewMultiAutocomplete(zoneID, "Values", options, f.Theme)
		mac.SetPopupHeight(f.opts.PopupHeight)
		mac.Width = f.opts.FieldWidth
		mac.SetValues(filter.SplitValues(current))
		mac.OnChange(func(v []string) { f.editor.SetValue(v) })
		f.value = mac
	case models.KindDate:
		di := NewDateInput(zoneID, f.opts.DateLayout, f.Theme)
		di.Width = f.opts.FieldWidth
		di.SetValue(current)
		di.OnChange(func(v string) { f.editor.SetValue(v) })
		f.value = di
	default:
		placeholder := "Value"
		if col.Kind == models.KindNumber {
			placeholder = "Number"
		}
		ti := NewTextInput(zoneID, placeholder, f.Theme)
		ti.Width = f.opts.FieldWidth
		ti.SetValue(current)
		ti.OnChange(func(v string) { f.editor.SetValue(v) })
		f.value = ti
	}
}

// onColumn rebinds the dependent fields when the column changes
func (f *ClauseForm) onColumn(field string) {
	prev := f.editor.Values().ColumnField
	f.editor.SetColumnField(field)
	if field != prev {
		f.buildOperator()
		f.buildValue()
	}
	f.advance = true
}

// Focus gives the form keyboard focus, starting at the column field
func (f *ClauseForm) Focus() tea.Cmd {
	f.focused = true
	return f.setFocus(fieldColumn)
}

// Blur removes keyboard focus from every field
func (f *ClauseForm) Blur() {
	f.focused = false
	f.column.Blur()
	f.operator.Blur()
	f.value.Blur()
}

// Focused reports whether the form has keyboard focus
func (f *ClauseForm) Focused() bool {
	return f.focused
}

func (f *ClauseForm) setFocus(field formField) tea.Cmd {
	f.column.Blur()
	f.operator.Blur()
	f.value.Blur()

	f.focus = field
	switch field {
	case fieldColumn:
		return f.column.Focus()
	case fieldOperator:
		return f.operator.Focus()
	default:
		return f.value.Focus()
	}
}

type keyHandler interface {
	Update(msg tea.KeyMsg) (bool, tea.Cmd)
}

func (f *ClauseForm) focusedField() keyHandler {
	switch f.focus {
	case fieldColumn:
		return f.column
	case fieldOperator:
		return f.operator
	default:
		return f.value
	}
}

// Update handles a keystroke while the form has focus
func (f *ClauseForm) Update(msg tea.KeyMsg) tea.Cmd {
	if !f.focused {
		return nil
	}

	switch msg.String() {
	case "tab":
		if f.focus == fieldValue {
			f.Commit()
			return nil
		}
		return f.setFocus(f.focus + 1)
	case "shift+tab":
		if f.focus == fieldColumn {
			f.editor.StepBack()
			return nil
		}
		return f.setFocus(f.focus - 1)
	case "ctrl+h", "ctrl+backspace":
		f.Delete()
		return nil
	case "esc":
		f.ctx.Dispatch(filter.StopEditing())
		return nil
	}

	consumed, cmd := f.focusedField().Update(msg)

	if f.advance {
		f.advance = false
		if f.focus < fieldValue {
			return tea.Batch(cmd, f.setFocus(f.focus+1))
		}
	}

	if !consumed && msg.String() == "enter" {
		if f.focus == fieldValue {
			f.Commit()
			return cmd
		}
		return tea.Batch(cmd, f.setFocus(f.focus+1))
	}
	return cmd
}

// HandleMouse routes mouse events to the popups and focuses clicked fields.
// It reports whether the event was used.
func (f *ClauseForm) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	if f.focused {
		var handled bool
		switch f.focus {
		case fieldColumn:
			handled = f.column.HandleMouse(msg)
		case fieldOperator:
			handled = f.operator.HandleMouse(msg)
		default:
			handled = f.value.HandleMouse(msg)
		}
		if handled {
			var cmd tea.Cmd
			if f.advance {
				f.advance = false
				if f.focus < fieldValue {
					cmd = f.setFocus(f.focus + 1)
				}
			}
			return true, cmd
		}
	}

	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return false, nil
	}
	for _, field := range []formField{fieldColumn, fieldOperator, fieldValue} {
		if zone.Get(f.fieldZone(field)).InBounds(msg) {
			if !f.focused {
				f.focused = true
				f.ctx.Dispatch(filter.SetActiveEdit{ID: f.EditID()})
			}
			return true, f.setFocus(field)
		}
	}
	return false, nil
}

// Commit validates and stores the clause. On failure the field errors are
// shown and the store is untouched.
func (f *ClauseForm) Commit() bool {
	if err := f.editor.Commit(); err != nil {
		return false
	}
	f.build()
	if f.focused {
		f.setFocus(fieldColumn)
	}
	return true
}

// Delete removes the clause being edited. A new clause form is cleared instead.
func (f *ClauseForm) Delete() {
	if f.editor.Delete() {
		return
	}
	f.editor.Reset()
	f.build()
	if f.focused {
		f.setFocus(fieldColumn)
	}
}

// View renders the three fields side by side with any field errors below
func (f *ClauseForm) View() string {
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		f.column.View(), " ",
		f.operator.View(), " ",
		f.value.View(),
	)

	errs := f.editor.Errors()
	if len(errs) == 0 {
		return row
	}

	errStyle := lipgloss.NewStyle().Foreground(f.Theme.Error)
	lines := []string{row}
	for _, field := range []filter.Field{filter.FieldColumn, filter.FieldOperator, filter.FieldValue} {
		if msg, ok := errs[field]; ok {
			lines = append(lines, errStyle.Render(fmt.Sprintf("✗ %s", msg)))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
