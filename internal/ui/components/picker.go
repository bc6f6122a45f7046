package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rebeliceyang/lazyfilter/internal/selection"
	"github.com/rebeliceyang/lazyfilter/internal/ui/theme"
)

// DefaultPopupHeight is the number of candidates a popup shows at once
const DefaultPopupHeight = 6

// pickerEngine is the part of the selection engine the views drive.
// Both selection.Autocomplete and selection.MultiAutocomplete satisfy it.
type pickerEngine interface {
	Candidates() []selection.Option[string]
	IsSelected(opt selection.Option[string]) bool
	Display() string
	Input(text string)
	Focus()
	Focused() bool
	Blur(intoPopup bool) bool
	HandleKey(k selection.Key) bool
	Hover(i int)
	Click(i int) bool
	Index() int
	SetPageSize(n int)
	Viewport(count int) (int, int)
	Scroll(delta, count int)
	PointerEnter()
	PointerLeave()
	PointerInside() bool
}

// picker renders a selection engine as a text input with a candidate popup
type picker struct {
	ZoneID string
	Theme  theme.Theme
	Width  int

	engine pickerEngine
	input  textinput.Model
}

func newPicker(zoneID, placeholder string, engine pickerEngine, th theme.Theme) picker {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 256

	engine.SetPageSize(DefaultPopupHeight)

	p := picker{
		ZoneID: zoneID,
		Theme:  th,
		Width:  24,
		engine: engine,
		input:  ti,
	}
	p.sync()
	return p
}

// engineKey maps a keystroke to the keys the selection engine understands
func engineKey(msg tea.KeyMsg) selection.Key {
	switch msg.String() {
	case "up", "ctrl+p":
		return selection.KeyUp
	case "down", "ctrl+n":
		return selection.KeyDown
	case "enter":
		return selection.KeyEnter
	}
	return selection.KeyOther
}

// SetPopupHeight sets how many candidates are visible at once
func (p *picker) SetPopupHeight(n int) {
	p.engine.SetPageSize(n)
}

// Focus opens the popup
func (p *picker) Focus() tea.Cmd {
	p.engine.Focus()
	p.sync()
	return p.input.Focus()
}

// Blur closes the popup
func (p *picker) Blur() {
	p.engine.Blur(false)
	p.engine.PointerLeave()
	p.input.Blur()
	p.sync()
}

// Focused reports whether the popup is open
func (p *picker) Focused() bool {
	return p.engine.Focused()
}

// Update handles a keystroke. It reports false for keys left to the caller,
// which is only ever an enter with no candidate to commit.
func (p *picker) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !p.engine.Focused() {
		return false, nil
	}

	if k := engineKey(msg); k != selection.KeyOther {
		if p.engine.HandleKey(k) {
			p.sync()
			return true, nil
		}
		return k != selection.KeyEnter, nil
	}

	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if after := p.input.Value(); after != before {
		p.engine.Input(after)
	}
	return true, cmd
}

// HandleMouse handles wheel, hover and click over the popup.
// It reports whether the event landed inside the popup.
func (p *picker) HandleMouse(msg tea.MouseMsg) bool {
	if !p.engine.Focused() {
		return false
	}

	if !zone.Get(p.popupZone()).InBounds(msg) {
		if p.engine.PointerInside() {
			p.engine.PointerLeave()
		}
		return false
	}
	p.engine.PointerEnter()

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		p.engine.Scroll(-1, len(p.engine.Candidates()))
		return true
	case tea.MouseButtonWheelDown:
		p.engine.Scroll(1, len(p.engine.Candidates()))
		return true
	}

	candidates := p.engine.Candidates()
	start, end := p.engine.Viewport(len(candidates))
	for i := start; i < end; i++ {
		if !zone.Get(p.optionZone(i)).InBounds(msg) {
			continue
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
			if p.engine.Click(i) {
				p.sync()
			}
		} else {
			p.engine.Hover(i)
		}
		break
	}
	return true
}

// sync copies the engine's display text into the input
func (p *picker) sync() {
	p.input.SetValue(p.engine.Display())
	p.input.CursorEnd()
}

func (p *picker) popupZone() string {
	return p.ZoneID + "-popup"
}

func (p *picker) optionZone(i int) string {
	return fmt.Sprintf("%s-opt-%d", p.ZoneID, i)
}

func (p *picker) inputView() string {
	border := p.Theme.Border
	if p.engine.Focused() {
		border = p.Theme.BorderFocused
	}
	p.input.Width = max(p.Width-4, 4)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(p.Width)

	return zone.Mark(p.ZoneID, box.Render(p.input.View()))
}

func (p *picker) popupView() string {
	candidates := p.engine.Candidates()

	popupStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Theme.PopupBorder).
		Width(p.Width)

	if len(candidates) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(p.Theme.PopupPlaceholder).
			Italic(true).
			Render("No results.")
		return zone.Mark(p.popupZone(), popupStyle.Render(empty))
	}

	start, end := p.engine.Viewport(len(candidates))
	rows := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		opt := candidates[i]

		marker := "  "
		style := lipgloss.NewStyle().Foreground(p.Theme.Foreground).Width(p.Width - 2)
		if p.engine.IsSelected(opt) {
			marker = "✓ "
			style = style.Foreground(p.Theme.PopupSelected)
		}
		if i == p.engine.Index() {
			style = style.Background(p.Theme.PopupHighlight).Bold(true)
		}
		rows = append(rows, zone.Mark(p.optionZone(i), style.Render(marker+opt.Label)))
	}

	if end-start < len(candidates) {
		more := lipgloss.NewStyle().
			Foreground(p.Theme.Muted).
			Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(candidates)))
		rows = append(rows, more)
	}

	return zone.Mark(p.popupZone(), popupStyle.Render(strings.Join(rows, "\n")))
}

func (p *picker) view() string {
	if !p.engine.Focused() {
		return p.inputView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, p.inputView(), p.popupView())
}

// Autocomplete is a single value picker
type Autocomplete struct {
	picker
	ac *selection.Autocomplete[string]
}

// NewAutocomplete creates a single value picker over options
func NewAutocomplete(zoneID, placeholder string, options []selection.Option[string], th theme.Theme) *Autocomplete {
	ac := selection.NewAutocomplete(options)
	return &Autocomplete{
		picker: newPicker(zoneID, placeholder, ac, th),
		ac:     ac,
	}
}

// OnChange registers the callback fired when a candidate is committed
func (a *Autocomplete) OnChange(fn func(string)) {
	a.ac.OnChange(fn)
}

// SetOptions replaces the candidates
func (a *Autocomplete) SetOptions(options []selection.Option[string]) {
	a.ac.SetOptions(options)
	a.sync()
}

// SetValue sets the committed value. An empty value clears it.
func (a *Autocomplete) SetValue(v string) {
	if v == "" {
		a.ac.ClearValue()
	} else {
		a.ac.SetValue(v)
	}
	a.sync()
}

// Value returns the committed value
func (a *Autocomplete) Value() (string, bool) {
	return a.ac.Value()
}

// View renders the input and, while focused, the popup
func (a *Autocomplete) View() string {
	return a.view()
}

// MultiAutocomplete picks any number of values
type MultiAutocomplete struct {
	picker
	mac *selection.MultiAutocomplete[string]
}

// NewMultiAutocomplete creates a multi value picker over options
func NewMultiAutocomplete(zoneID, placeholder string, options []selection.Option[string], th theme.Theme) *MultiAutocomplete {
	mac := selection.NewMultiAutocomplete(options)
	return &MultiAutocomplete{
		picker: newPicker(zoneID, placeholder, mac, th),
		mac:    mac,
	}
}

// OnChange registers the callback fired on every toggle
func (m *MultiAutocomplete) OnChange(fn func([]string)) {
	m.mac.OnChange(fn)
}

// SetValues sets the committed values
func (m *MultiAutocomplete) SetValues(values []string) {
	m.mac.SetValues(values)
	m.sync()
}

// Values returns the committed values in option order
func (m *MultiAutocomplete) Values() []string {
	return m.mac.Values()
}

// View renders the input and, while focused, the selection summary and popup
func (m *MultiAutocomplete) View() string {
	if !m.Focused() {
		return m.view()
	}

	summary := m.mac.Summary()
	if summary == "" {
		return m.view()
	}
	line := lipgloss.NewStyle().
		Foreground(m.Theme.ChipValue).
		Width(m.Width).
		Render(summary)
	return lipgloss.JoinVertical(lipgloss.Left, line, m.view())
}
