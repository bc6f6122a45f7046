package models

// AppState holds the host application state
type AppState struct {
	Width        int
	Height       int
	FocusedPanel PanelType
	ViewMode     ViewMode
}

// PanelType identifies which panel is focused
type PanelType int

const (
	FilterPanel PanelType = iota
	OutputPanel
)

// ViewMode identifies the current view
type ViewMode int

const (
	NormalMode ViewMode = iota
	HelpMode
)

// NewAppState creates a new AppState with defaults
func NewAppState() AppState {
	return AppState{
		Width:        80,
		Height:       24,
		FocusedPanel: FilterPanel,
		ViewMode:     NormalMode,
	}
}
