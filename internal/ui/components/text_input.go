package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rebeliceyang/lazyfilter/internal/ui/theme"
)

// TextInput is a free text value field
type TextInput struct {
	ZoneID string
	Theme  theme.Theme
	Width  int

	input    textinput.Model
	onChange func(string)
}

// NewTextInput creates a text value field
func NewTextInput(zoneID, placeholder string, th theme.Theme) *TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 256

	return &TextInput{
		ZoneID: zoneID,
		Theme:  th,
		Width:  24,
		input:  ti,
	}
}

// OnChange registers the callback fired whenever the text changes
func (t *TextInput) OnChange(fn func(string)) {
	t.onChange = fn
}

// SetValue replaces the text without firing OnChange
func (t *TextInput) SetValue(v string) {
	t.input.SetValue(v)
	t.input.CursorEnd()
}

// Value returns the text
func (t *TextInput) Value() string {
	return t.input.Value()
}

func (t *TextInput) Focus() tea.Cmd {
	return t.input.Focus()
}

func (t *TextInput) Blur() {
	t.input.Blur()
}

func (t *TextInput) Focused() bool {
	return t.input.Focused()
}

// Update handles a keystroke. Enter is left to the caller.
func (t *TextInput) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !t.input.Focused() || msg.String() == "enter" {
		return false, nil
	}

	before := t.input.Value()
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	if after := t.input.Value(); after != before && t.onChange != nil {
		t.onChange(after)
	}
	return true, cmd
}

// HandleMouse is a no-op: a text field has no popup
func (t *TextInput) HandleMouse(tea.MouseMsg) bool {
	return false
}

// View renders the field
func (t *TextInput) View() string {
	border := t.Theme.Border
	if t.input.Focused() {
		border = t.Theme.BorderFocused
	}
	t.input.Width = max(t.Width-4, 4)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(t.Width)

	return zone.Mark(t.ZoneID, box.Render(t.input.View()))
}
