package components

import (
	"charm.land/lipgloss/v2"

	"github.com/skillmatch/skillmatch/internal/ui/theme"
)

// ContentWidth returns the inner width used for stacked cards so they
// line up.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 76 {
		w = 76
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border box at content width cw.
func Card(content string, cw int, highlighted bool) string {
	border := theme.Border
	if highlighted {
		border = theme.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw - 2).
		Padding(0, 1).
		Render(content)
}

// Center places content in the middle of a width x height area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
