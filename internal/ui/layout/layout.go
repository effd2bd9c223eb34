// Package layout draws the frame around every screen: a header naming the
// screen and the logged-in user, the content area, and a footer of key
// hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/skillmatch/skillmatch/internal/ui/theme"
)

// Terminal size limits. Below the minimum only a resize notice is drawn;
// below the compact height screens drop decorative sections.
const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3

	CompactHeightThreshold = 30
)

const brand = "SkillMatch"

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactHeight reports whether a terminal of height rows is short
// enough to drop optional content.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall reports whether the terminal is below MinWidth x MinHeight.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// RenderMinSizeMessage fills the terminal with a centered resize notice.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small\n\nResize to at least %d x %d\n(currently %d x %d)",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(msg))
}

// RenderHeader draws the brand on the left, title in the middle and the
// session on the right. user and role are empty when nobody is logged in.
func RenderHeader(title, user, role string, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(" " + brand)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	var right string
	if user != "" {
		right = lipgloss.NewStyle().Foreground(theme.Text).Render(user) +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(" · ") +
			lipgloss.NewStyle().Foreground(theme.Accent).Render(role) + " "
	}

	inner := max(width-2, 0)
	side := max((inner-lipgloss.Width(center))/2, 0)
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.PlaceHorizontal(side, lipgloss.Left, left),
		center,
		lipgloss.PlaceHorizontal(max(inner-side-lipgloss.Width(center), 0), lipgloss.Right, right),
	)
	return bar.Width(width).Render(row)
}

// RenderFooter draws the key hints on one line.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar.Width(width).Render(" " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer, padding the content to
// fill whatever height the bars leave.
func RenderFrame(header, content, footer string, width, height int) string {
	rest := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rest).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
