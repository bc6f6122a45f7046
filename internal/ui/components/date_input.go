package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rebeliceyang/lazyfilter/internal/filter"
	"github.com/rebeliceyang/lazyfilter/internal/ui/theme"
)

// DateInput is a date value field. It only reports a value once the typed
// text parses, normalized to the layout; clearing the text reports "".
type DateInput struct {
	*TextInput
	Layout string

	value    string
	err      string
	onChange func(string)
}

// NewDateInput creates a date field using layout, or filter.DefaultDateLayout
func NewDateInput(zoneID, layout string, th theme.Theme) *DateInput {
	if layout == "" {
		layout = filter.DefaultDateLayout
	}

	d := &DateInput{
		TextInput: NewTextInput(zoneID, dateHint(layout), th),
		Layout:    layout,
	}
	d.TextInput.OnChange(d.parse)
	return d
}

// OnChange registers the callback fired with each newly parsed date
func (d *DateInput) OnChange(fn func(string)) {
	d.onChange = fn
}

// SetValue replaces the text and the current value without firing OnChange
func (d *DateInput) SetValue(v string) {
	d.TextInput.SetValue(v)
	d.value = v
	d.err = ""
}

// Value returns the last parsed date
func (d *DateInput) Value() string {
	return d.value
}

// Err returns the parse error for the current text, if any
func (d *DateInput) Err() string {
	return d.err
}

func (d *DateInput) parse(text string) {
	if strings.TrimSpace(text) == "" {
		d.err = ""
		d.emit("")
		return
	}

	t, err := filter.ParseDate(text, d.Layout)
	if err != nil {
		d.err = err.Error()
		return
	}
	d.err = ""
	d.emit(filter.FormatDate(t, d.Layout))
}

func (d *DateInput) emit(v string) {
	if v == d.value {
		return
	}
	d.value = v
	if d.onChange != nil {
		d.onChange(v)
	}
}

// Update handles a keystroke
func (d *DateInput) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	return d.TextInput.Update(msg)
}

// View renders the field with its format hint or parse error
func (d *DateInput) View() string {
	field := d.TextInput.View()
	if !d.Focused() {
		return field
	}

	hint := lipgloss.NewStyle().Foreground(d.Theme.Muted).Italic(true).Render(dateHint(d.Layout))
	if d.err != "" {
		hint = lipgloss.NewStyle().Foreground(d.Theme.Error).Render(d.err)
	}
	return lipgloss.JoinVertical(lipgloss.Left, field, hint)
}

func dateHint(layout string) string {
	r := strings.NewReplacer("2006", "yyyy", "01", "MM", "02", "dd")
	return r.Replace(layout)
}
