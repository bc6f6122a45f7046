package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme and styling
type Theme struct {
	Name string

	// Background colors
	Background lipgloss.Color
	Foreground lipgloss.Color

	// UI elements
	Border        lipgloss.Color
	BorderFocused lipgloss.Color
	Selection     lipgloss.Color
	Cursor        lipgloss.Color
	Muted         lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// Clause chips
	ChipColumn   lipgloss.Color
	ChipOperator lipgloss.Color
	ChipValue    lipgloss.Color
	ChipBorder   lipgloss.Color

	// Candidate popups
	PopupBorder      lipgloss.Color
	PopupHighlight   lipgloss.Color
	PopupSelected    lipgloss.Color
	PopupPlaceholder lipgloss.Color

	// JSON output
	JSONKey     lipgloss.Color
	JSONString  lipgloss.Color
	JSONNumber  lipgloss.Color
	JSONBoolean lipgloss.Color
	JSONNull    lipgloss.Color
}

// Names lists the selectable themes
var Names = []string{"default", "catppuccin"}

// GetTheme returns a theme by name, falling back to the default theme
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin", "catppuccin-mocha":
		return CatppuccinMochaTheme()
	default:
		return DefaultTheme()
	}
}
