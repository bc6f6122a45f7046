package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/rebeliceyang/lazyfilter/internal/config"
	"github.com/rebeliceyang/lazyfilter/internal/export"
	"github.com/rebeliceyang/lazyfilter/internal/filter"
	"github.com/rebeliceyang/lazyfilter/internal/models"
	"github.com/rebeliceyang/lazyfilter/internal/ui/components"
	"github.com/rebeliceyang/lazyfilter/internal/ui/help"
	"github.com/rebeliceyang/lazyfilter/internal/ui/theme"
)

// App is the main application model
type App struct {
	state  models.AppState
	config *config.Config
	theme  theme.Theme
	logger *zap.Logger

	filterCtx   *filter.FilterContext
	filterInput *components.FilterInput
	outputView  *components.OutputView
	filterPanel components.Panel
	outputPanel components.Panel

	outPath string
	status  string

	// Error overlay
	showError    bool
	errorOverlay *components.ErrorOverlay
}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Title   string
	Message string
}

// CopiedMsg is sent after the clauses were copied to the clipboard
type CopiedMsg struct {
	Count int
	Err   error
}

// WrittenMsg is sent after the clauses were written to the output file
type WrittenMsg struct {
	Path string
	Err  error
}

// Option configures an App
type Option func(*App)

// WithLogger sets the application logger
func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithOutPath sets the file written by "w"
func WithOutPath(path string) Option {
	return func(a *App) {
		a.outPath = path
	}
}

// New creates a new App filtering over columns
func New(cfg *config.Config, columns []models.ColumnDef, opts ...Option) *App {
	if cfg == nil {
		cfg = config.GetDefaults()
	}
	th := theme.GetTheme(cfg.UI.Theme)

	a := &App{
		state:        models.NewAppState(),
		config:       cfg,
		theme:        th,
		logger:       zap.NewNop(),
		outputView:   components.NewOutputView(th),
		errorOverlay: components.NewErrorOverlay(th),
		filterPanel: components.Panel{
			Title: "Filters",
			Style: lipgloss.NewStyle().BorderForeground(th.BorderFocused),
		},
		outputPanel: components.Panel{
			Title: "Output",
			Style: lipgloss.NewStyle().BorderForeground(th.Border),
		},
	}
	for _, opt := range opts {
		opt(a)
	}

	store := filter.NewStore(filter.WithLogger(a.logger))
	a.filterCtx = filter.NewFilterContext(columns, store,
		filter.WithValidator(filter.TypeValidator{DateLayout: cfg.Filter.DateFormat}),
		filter.WithContextLogger(a.logger),
	)
	a.filterInput = components.NewFilterInput(a.filterCtx, th, components.FormOptions{
		DateLayout:  cfg.Filter.DateFormat,
		PopupHeight: cfg.UI.PopupHeight,
	})
	a.filterInput.ConfirmDelete = cfg.Filter.ConfirmDelete

	a.updatePanelDimensions()
	a.updatePanelStyles()
	return a
}

// Clauses returns the committed clauses
func (a *App) Clauses() []models.Clause {
	return a.filterCtx.Clauses()
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ErrorMsg:
		a.ShowError(msg.Title, msg.Message)
		return a, nil

	case components.ClausesChangedMsg:
		if err := a.outputView.SetClauses(msg.State.Clauses); err != nil {
			a.ShowError("Output Error", err.Error())
		}
		a.logger.Debug("clauses changed",
			zap.Int("count", len(msg.State.Clauses)),
			zap.String("edit_id", string(msg.State.EditID)),
		)
		return a, nil

	case CopiedMsg:
		if msg.Err != nil {
			a.ShowError("Clipboard Error", fmt.Sprintf("Failed to copy clauses:\n\n%v", msg.Err))
			return a, nil
		}
		a.status = fmt.Sprintf("Copied %d clause(s)", msg.Count)
		return a, nil

	case WrittenMsg:
		if msg.Err != nil {
			a.ShowError("Export Error", fmt.Sprintf("Failed to write clauses:\n\n%v", msg.Err))
			return a, nil
		}
		a.status = "Wrote " + msg.Path
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		if !a.config.UI.MouseEnabled || a.showError || a.state.ViewMode == models.HelpMode {
			return a, nil
		}
		var cmd tea.Cmd
		a.filterInput, cmd = a.filterInput.Update(msg)
		return a, cmd

	case tea.WindowSizeMsg:
		a.state.Width = msg.Width
		a.state.Height = msg.Height
		a.updatePanelDimensions()
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Handle error overlay dismissal first if visible
	if a.showError {
		switch key {
		case "esc", "enter":
			a.DismissError()
		case "ctrl+c":
			return a, tea.Quit
		}
		return a, nil
	}

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if a.state.ViewMode == models.HelpMode {
		switch key {
		case "?", "esc", "q":
			a.state.ViewMode = models.NormalMode
		}
		return a, nil
	}

	// The clause form owns the keyboard while editing
	if a.filterInput.Editing() {
		var cmd tea.Cmd
		a.filterInput, cmd = a.filterInput.Update(msg)
		return a, cmd
	}

	a.status = ""
	switch key {
	case "q":
		return a, tea.Quit
	case "?":
		a.state.ViewMode = models.HelpMode
		return a, nil
	case "tab":
		if a.state.FocusedPanel == models.FilterPanel {
			a.state.FocusedPanel = models.OutputPanel
		} else {
			a.state.FocusedPanel = models.FilterPanel
		}
		a.updatePanelStyles()
		return a, nil
	case "y":
		return a, a.copyClauses()
	case "w":
		return a, a.writeClauses()
	}

	if a.state.FocusedPanel == models.OutputPanel {
		var cmd tea.Cmd
		a.outputView, cmd = a.outputView.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.filterInput, cmd = a.filterInput.Update(msg)
	return a, cmd
}

func (a *App) copyClauses() tea.Cmd {
	clauses := a.Clauses()
	return func() tea.Msg {
		err := export.CopyToClipboard(clauses)
		return CopiedMsg{Count: len(clauses), Err: err}
	}
}

func (a *App) writeClauses() tea.Cmd {
	if a.outPath == "" {
		return func() tea.Msg {
			return ErrorMsg{Title: "Export Error", Message: "No output file configured. Start with --out <file.json|file.csv>."}
		}
	}
	clauses := a.Clauses()
	path := a.outPath
	format := export.Format(a.config.Export.DefaultFormat)
	return func() tea.Msg {
		return WrittenMsg{Path: path, Err: export.ExportToFile(clauses, path, format)}
	}
}

// View implements tea.Model
func (a *App) View() string {
	if a.showError {
		return lipgloss.Place(
			a.state.Width, a.state.Height,
			lipgloss.Center, lipgloss.Center,
			a.errorOverlay.View(),
		)
	}

	if a.state.ViewMode == models.HelpMode {
		return help.Render(a.state.Width, a.state.Height, a.theme)
	}

	return zone.Scan(a.renderNormalView())
}

// renderNormalView renders the filter and output panels between the status bars
func (a *App) renderNormalView() string {
	topBarLeft := "lazyfilter"
	topBarRight := fmt.Sprintf("%d clause(s)", len(a.Clauses()))
	topBar := lipgloss.NewStyle().
		Width(a.state.Width).
		Background(a.theme.BorderFocused).
		Foreground(lipgloss.Color("230")).
		Padding(0, 2).
		Render(a.formatStatusBar(topBarLeft, topBarRight))

	bottomBarLeft := "[a] Add | [enter] Edit | [y] Copy | [tab] Switch panel | [?] Help | [q] Quit"
	if a.filterInput.Editing() {
		bottomBarLeft = "[tab] Next/Save | [shift+tab] Back | [ctrl+h] Delete | [esc] Stop editing"
	}
	bottomBar := lipgloss.NewStyle().
		Width(a.state.Width).
		Background(a.theme.Selection).
		Foreground(a.theme.Foreground).
		Padding(0, 2).
		Render(a.formatStatusBar(bottomBarLeft, a.status))

	a.filterInput.Width = a.filterPanel.Width
	a.filterPanel.Content = a.filterInput.View()

	a.outputView.Width = a.outputPanel.Width
	a.outputView.Height = max(a.outputPanel.Height-1, 1)
	a.outputPanel.Content = a.outputView.View()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		topBar,
		a.filterPanel.View(),
		a.outputPanel.View(),
		bottomBar,
	)
}

// updatePanelDimensions splits the height between the filter and output panels
func (a *App) updatePanelDimensions() {
	if a.state.Width <= 0 || a.state.Height <= 0 {
		return
	}

	// Two status bars, and two borders per panel
	contentHeight := max(a.state.Height-2-4, 6)
	filterHeight := max(contentHeight*3/5, 3)
	outputHeight := max(contentHeight-filterHeight, 3)

	width := max(a.state.Width-2, 20)
	a.filterPanel.Width = width
	a.filterPanel.Height = filterHeight
	a.outputPanel.Width = width
	a.outputPanel.Height = outputHeight
}

// updatePanelStyles updates panel styling based on focus
func (a *App) updatePanelStyles() {
	if a.state.FocusedPanel == models.FilterPanel {
		a.filterPanel.Style = lipgloss.NewStyle().BorderForeground(a.theme.BorderFocused)
		a.outputPanel.Style = lipgloss.NewStyle().BorderForeground(a.theme.Border)
	} else {
		a.filterPanel.Style = lipgloss.NewStyle().BorderForeground(a.theme.Border)
		a.outputPanel.Style = lipgloss.NewStyle().BorderForeground(a.theme.BorderFocused)
	}
}

// formatStatusBar formats a status bar with left and right aligned content
func (a *App) formatStatusBar(left, right string) string {
	availableWidth := max(a.state.Width-4, 0)

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)

	if leftLen+rightLen > availableWidth {
		return lipgloss.NewStyle().MaxWidth(availableWidth).Render(left + " " + right)
	}

	spacing := availableWidth - leftLen - rightLen
	return left + lipgloss.NewStyle().Width(spacing).Render("") + right
}

// ShowError displays an error overlay with the given title and message
func (a *App) ShowError(title, message string) {
	a.errorOverlay.SetError(title, message)
	a.showError = true
	a.logger.Warn("error shown", zap.String("title", title), zap.String("message", message))
}

// DismissError hides the error overlay
func (a *App) DismissError() {
	a.showError = false
}
