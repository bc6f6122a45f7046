package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rebeliceyang/lazyfilter/internal/export"
	"github.com/rebeliceyang/lazyfilter/internal/filter"
	"github.com/rebeliceyang/lazyfilter/internal/models"
	"github.com/rebeliceyang/lazyfilter/internal/ui/theme"
)

// OutputMode is the display mode of the output view
type OutputMode int

const (
	OutputJSON OutputMode = iota
	OutputSummary
)

// OutputView shows the committed clauses as JSON or as a readable summary
type OutputView struct {
	Width  int
	Height int
	Theme  theme.Theme

	mode    OutputMode
	clauses []models.Clause
	json    string
	offset  int
}

// NewOutputView creates an empty output view
func NewOutputView(th theme.Theme) *OutputView {
	return &OutputView{
		Width:  80,
		Height: 10,
		Theme:  th,
		json:   "[]",
	}
}

// SetClauses replaces the displayed clauses
func (ov *OutputView) SetClauses(clauses []models.Clause) error {
	data, err := export.MarshalJSON(clauses)
	if err != nil {
		return err
	}
	ov.clauses = clauses
	ov.json = string(data)
	ov.offset = min(ov.offset, ov.maxOffset())
	return nil
}

// JSON returns the JSON text currently displayed
func (ov *OutputView) JSON() string {
	return ov.json
}

// Mode returns the display mode
func (ov *OutputView) Mode() OutputMode {
	return ov.mode
}

// Update handles mode switching and scrolling
func (ov *OutputView) Update(msg tea.KeyMsg) (*OutputView, tea.Cmd) {
	switch msg.String() {
	case "1":
		ov.mode = OutputJSON
		ov.offset = 0
	case "2":
		ov.mode = OutputSummary
		ov.offset = 0
	case "up", "k":
		if ov.offset > 0 {
			ov.offset--
		}
	case "down", "j":
		if ov.offset < ov.maxOffset() {
			ov.offset++
		}
	case "ctrl+u":
		ov.offset = max(ov.offset-ov.Height/2, 0)
	case "ctrl+d":
		ov.offset = min(ov.offset+ov.Height/2, ov.maxOffset())
	}
	return ov, nil
}

func (ov *OutputView) lines() []string {
	if ov.mode == OutputSummary {
		if len(ov.clauses) == 0 {
			return []string{"(no filters)"}
		}
		lines := make([]string, len(ov.clauses))
		for i, c := range ov.clauses {
			prefix := "where "
			if i > 0 {
				prefix = "  and "
			}
			lines[i] = prefix + filter.Describe(c)
		}
		return lines
	}
	return strings.Split(ov.json, "\n")
}

func (ov *OutputView) maxOffset() int {
	return max(len(ov.lines())-ov.Height, 0)
}

// View renders the visible lines
func (ov *OutputView) View() string {
	lines := ov.lines()

	end := min(ov.offset+ov.Height, len(lines))
	start := min(ov.offset, end)
	visible := lines[start:end]

	rendered := make([]string, len(visible))
	for i, line := range visible {
		if ov.mode == OutputJSON {
			rendered[i] = ov.colorJSONLine(line)
		} else {
			rendered[i] = lipgloss.NewStyle().Foreground(ov.Theme.Foreground).Render(line)
		}
	}
	return strings.Join(rendered, "\n")
}

// colorJSONLine colors one line of indented JSON by token type
func (ov *OutputView) colorJSONLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]

	key := ""
	value := trimmed
	if strings.HasPrefix(trimmed, `"`) {
		if idx := strings.Index(trimmed, `": `); idx > 0 {
			key = trimmed[:idx+1]
			value = trimmed[idx+3:]
		}
	}

	var b strings.Builder
	b.WriteString(indent)
	if key != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(ov.Theme.JSONKey).Render(key))
		b.WriteString(": ")
	}
	b.WriteString(ov.colorJSONValue(value))
	return b.String()
}

func (ov *OutputView) colorJSONValue(value string) string {
	token := strings.TrimSuffix(value, ",")

	var color lipgloss.Color
	switch {
	case strings.HasPrefix(token, `"`):
		color = ov.Theme.JSONString
	case token == "true" || token == "false":
		color = ov.Theme.JSONBoolean
	case token == "null":
		color = ov.Theme.JSONNull
	case token != "" && (token[0] == '-' || (token[0] >= '0' && token[0] <= '9')):
		color = ov.Theme.JSONNumber
	default:
		return lipgloss.NewStyle().Foreground(ov.Theme.Foreground).Render(value)
	}
	return lipgloss.NewStyle().Foreground(color).Render(token) + value[len(token):]
}
