package theme

import "github.com/charmbracelet/lipgloss"

// DefaultTheme returns the default dark theme
func DefaultTheme() Theme {
	return Theme{
		Name: "default",

		// Background colors
		Background: lipgloss.Color("235"),
		Foreground: lipgloss.Color("252"),

		// UI elements
		Border:        lipgloss.Color("240"),
		BorderFocused: lipgloss.Color("62"),
		Selection:     lipgloss.Color("237"),
		Cursor:        lipgloss.Color("248"),
		Muted:         lipgloss.Color("244"),

		// Status colors
		Success: lipgloss.Color("42"),
		Warning: lipgloss.Color("220"),
		Error:   lipgloss.Color("196"),
		Info:    lipgloss.Color("75"),

		// Clause chips
		ChipColumn:   lipgloss.Color("75"),
		ChipOperator: lipgloss.Color("252"),
		ChipValue:    lipgloss.Color("180"),
		ChipBorder:   lipgloss.Color("240"),

		// Candidate popups
		PopupBorder:      lipgloss.Color("62"),
		PopupHighlight:   lipgloss.Color("237"),
		PopupSelected:    lipgloss.Color("42"),
		PopupPlaceholder: lipgloss.Color("244"),

		// JSON colors
		JSONKey:     lipgloss.Color("117"),
		JSONString:  lipgloss.Color("180"),
		JSONNumber:  lipgloss.Color("150"),
		JSONBoolean: lipgloss.Color("75"),
		JSONNull:    lipgloss.Color("244"),
	}
}
