package theme

import "github.com/charmbracelet/lipgloss"

// CatppuccinMochaTheme returns the Catppuccin Mocha theme
// Based on: https://github.com/catppuccin/catppuccin
func CatppuccinMochaTheme() Theme {
	return Theme{
		Name: "catppuccin-mocha",

		// Background colors
		Background: lipgloss.Color("#1e1e2e"), // Base
		Foreground: lipgloss.Color("#cdd6f4"), // Text

		// UI elements
		Border:        lipgloss.Color("#45475a"), // Surface1
		BorderFocused: lipgloss.Color("#89b4fa"), // Blue
		Selection:     lipgloss.Color("#313244"), // Surface0
		Cursor:        lipgloss.Color("#f5e0dc"), // Rosewater
		Muted:         lipgloss.Color("#6c7086"), // Overlay0

		// Status colors
		Success: lipgloss.Color("#a6e3a1"), // Green
		Warning: lipgloss.Color("#f9e2af"), // Yellow
		Error:   lipgloss.Color("#f38ba8"), // Red
		Info:    lipgloss.Color("#89dceb"), // Sky

		// Clause chips
		ChipColumn:   lipgloss.Color("#cba6f7"), // Mauve
		ChipOperator: lipgloss.Color("#a6adc8"), // Subtext0
		ChipValue:    lipgloss.Color("#fab387"), // Peach
		ChipBorder:   lipgloss.Color("#45475a"), // Surface1

		// Candidate popups
		PopupBorder:      lipgloss.Color("#89b4fa"), // Blue
		PopupHighlight:   lipgloss.Color("#313244"), // Surface0
		PopupSelected:    lipgloss.Color("#a6e3a1"), // Green
		PopupPlaceholder: lipgloss.Color("#6c7086"), // Overlay0

		// JSON colors
		JSONKey:     lipgloss.Color("#89b4fa"), // Blue
		JSONString:  lipgloss.Color("#a6e3a1"), // Green
		JSONNumber:  lipgloss.Color("#fab387"), // Peach
		JSONBoolean: lipgloss.Color("#f9e2af"), // Yellow
		JSONNull:    lipgloss.Color("#6c7086"), // Overlay0
	}
}
