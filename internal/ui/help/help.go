package help

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rebeliceyang/lazyfilter/internal/ui/theme"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key         string
	Description string
}

// Section is a titled group of key bindings
type Section struct {
	Title string
	Keys  []KeyBinding
}

// GetGlobalKeys returns global key bindings
func GetGlobalKeys() []KeyBinding {
	return []KeyBinding{
		{"?", "Toggle help"},
		{"q, Ctrl+C", "Quit application"},
		{"Esc/Enter", "Dismiss error"},
		{"Tab", "Switch between filters and output"},
		{"y", "Copy clauses as JSON"},
		{"w", "Write clauses to the --out file"},
	}
}

// GetChipKeys returns key bindings for the clause list
func GetChipKeys() []KeyBinding {
	return []KeyBinding{
		{"←/h, →/l", "Move between clauses"},
		{"Enter, e", "Edit clause"},
		{"a, n, /", "Add clause"},
		{"d, x, Ctrl+H", "Delete clause"},
		{"Click", "Edit clause (✕ deletes)"},
	}
}

// GetEditKeys returns key bindings for the clause form
func GetEditKeys() []KeyBinding {
	return []KeyBinding{
		{"↑/↓", "Move through candidates"},
		{"Enter", "Choose candidate / save clause"},
		{"Tab", "Next field, save from value"},
		{"Shift+Tab", "Previous field or clause"},
		{"Ctrl+Backspace/H", "Delete clause"},
		{"Esc", "Stop editing"},
	}
}

// GetOutputKeys returns key bindings for the output panel
func GetOutputKeys() []KeyBinding {
	return []KeyBinding{
		{"1", "JSON"},
		{"2", "Summary"},
		{"↑/k, ↓/j", "Scroll"},
		{"Ctrl+U/D", "Page up/down"},
	}
}

// Sections returns every help section in display order
func Sections() []Section {
	return []Section{
		{"Global", GetGlobalKeys()},
		{"Clauses", GetChipKeys()},
		{"Editing", GetEditKeys()},
		{"Output", GetOutputKeys()},
	}
}

// Render creates the help view
func Render(width, height int, th theme.Theme) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(th.BorderFocused).
		Padding(1, 0)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(th.Info).
		Padding(0, 0, 0, 2)

	keyStyle := lipgloss.NewStyle().
		Foreground(th.Warning).
		Width(20)

	descStyle := lipgloss.NewStyle().
		Foreground(th.Foreground)

	var b strings.Builder

	b.WriteString(titleStyle.Render("lazyfilter - Keyboard Shortcuts"))
	b.WriteString("\n\n")

	for _, s := range Sections() {
		b.WriteString(sectionStyle.Render(s.Title))
		b.WriteString("\n")
		for _, kb := range s.Keys {
			b.WriteString("  ")
			b.WriteString(keyStyle.Render(kb.Key))
			b.WriteString(descStyle.Render(kb.Description))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Faint(true).Render("Press '?' or Esc to close help"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.BorderFocused).
		Padding(1, 2).
		Width(max(width-4, 20)).
		Height(max(height-4, 10))

	return boxStyle.Render(b.String())
}
