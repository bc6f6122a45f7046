package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rebeliceyang/lazyfilter/internal/filter"
	"github.com/rebeliceyang/lazyfilter/internal/models"
	"github.com/rebeliceyang/lazyfilter/internal/ui/theme"
)

func init() {
	// Initialize bubblezone for tests that call View() methods
	zone.NewGlobal()
}

// keyMsg builds the key message a terminal would send for s
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+h":
		return tea.KeyMsg{Type: tea.KeyCtrlH}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeInto sends text one rune at a time
func typeInto(update func(tea.KeyMsg), text string) {
	for _, r := range text {
		update(keyMsg(string(r)))
	}
}

func peopleColumns() []models.ColumnDef {
	return []models.ColumnDef{
		models.StringColumn("name"),
		models.NumberColumn("age"),
		models.DateColumn("date_of_birth"),
		models.BooleanColumn("is_18_or_over"),
		models.MultiSelectColumn("favorite_foods",
			models.Option{Label: "Pizza", Value: "pizza"},
			models.Option{Label: "Ramen", Value: "ramen"},
			models.Option{Label: "Tacos", Value: "tacos"},
		),
	}
}

func newTestContext() *filter.FilterContext {
	n := 0
	store := filter.NewStore(filter.WithIDFunc(func() string {
		n++
		return fmt.Sprintf("c%d", n)
	}))
	return filter.NewFilterContext(peopleColumns(), store)
}

func testTheme() theme.Theme {
	return theme.DefaultTheme()
}
