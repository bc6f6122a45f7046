package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rebeliceyang/lazyfilter/internal/ui/theme"
)

// ErrorOverlay is a modal box showing an error until dismissed
type ErrorOverlay struct {
	Width int
	Theme theme.Theme

	title   string
	message string
}

// NewErrorOverlay creates an empty overlay
func NewErrorOverlay(th theme.Theme) *ErrorOverlay {
	return &ErrorOverlay{
		Width: 60,
		Theme: th,
	}
}

// SetError replaces the displayed error
func (e *ErrorOverlay) SetError(title, message string) {
	e.title = title
	e.message = message
}

// Title returns the error title
func (e *ErrorOverlay) Title() string {
	return e.title
}

// View renders the overlay box
func (e *ErrorOverlay) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(e.Theme.Error)

	msgStyle := lipgloss.NewStyle().
		Foreground(e.Theme.Foreground).
		Width(e.Width - 4)

	hintStyle := lipgloss.NewStyle().
		Foreground(e.Theme.Muted).
		Italic(true)

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("✗ "+e.title),
		"",
		msgStyle.Render(e.message),
		"",
		hintStyle.Render("Esc/Enter: dismiss"),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(e.Theme.Error).
		Padding(1, 2).
		Width(e.Width).
		Render(content)
}
