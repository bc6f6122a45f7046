package components

import (
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rebeliceyang/lazyfilter/internal/filter"
	"github.com/rebeliceyang/lazyfilter/internal/models"
	"github.com/rebeliceyang/lazyfilter/internal/ui/theme"
)

// Zone prefixes for chip mouse targets
const (
	ZoneChipPrefix       = "chip-"
	ZoneChipDeletePrefix = "chip-delete-"
)

// ChipZone returns the zone id of a clause chip
func ChipZone(id string) string {
	return ZoneChipPrefix + id
}

// ChipDeleteZone returns the zone id of a chip's delete control
func ChipDeleteZone(id string) string {
	return ZoneChipDeletePrefix + id
}

// ClauseChip is the read-only rendering of a committed clause
type ClauseChip struct {
	Clause   models.Clause
	First    bool
	Selected bool
	Theme    theme.Theme
}

// View renders "and <column> <operator> <value> ✕"; the first chip has no "and"
func (c ClauseChip) View() string {
	th := c.Theme

	border := th.ChipBorder
	if c.Selected {
		border = th.BorderFocused
	}

	column := lipgloss.NewStyle().Foreground(th.ChipColumn).Bold(true).Render(c.Clause.Column.Label())
	op := lipgloss.NewStyle().Foreground(th.ChipOperator).
		Render(filter.OperatorLabel(c.Clause.Column.Kind, c.Clause.Operator))
	value := lipgloss.NewStyle().Foreground(th.ChipValue).Render(filter.DisplayValue(c.Clause.Column, c.Clause.Value))
	del := zone.Mark(ChipDeleteZone(c.Clause.ID),
		lipgloss.NewStyle().Foreground(th.Muted).Render("✕"))

	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(column + " " + op + " " + value + "  " + del)

	chip := zone.Mark(ChipZone(c.Clause.ID), body)
	if c.First {
		return chip
	}

	and := lipgloss.NewStyle().
		Foreground(th.Muted).
		Padding(1, 1, 0, 0).
		Render("and")
	return lipgloss.JoinHorizontal(lipgloss.Top, and, chip)
}
