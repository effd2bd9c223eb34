package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/skillmatch/skillmatch/internal/ui/theme"
)

// StepBar shows quiz progress as one segment per question: answered
// questions are filled, the current one is highlighted.
type StepBar struct {
	Done    []bool
	Current int
	Width   int
}

func (s StepBar) View() string {
	n := len(s.Done)
	if n == 0 {
		return ""
	}
	seg := (s.Width - (n - 1)) / n
	if seg < 1 {
		seg = 1
	}

	done := lipgloss.NewStyle().Foreground(theme.Secondary)
	current := lipgloss.NewStyle().Foreground(theme.Accent)
	pending := lipgloss.NewStyle().Foreground(theme.Border)

	parts := make([]string, n)
	for i, answered := range s.Done {
		bar := strings.Repeat("━", seg)
		switch {
		case i == s.Current:
			parts[i] = current.Render(bar)
		case answered:
			parts[i] = done.Render(bar)
		default:
			parts[i] = pending.Render(bar)
		}
	}
	return strings.Join(parts, " ")
}
