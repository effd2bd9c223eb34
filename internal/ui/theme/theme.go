// Package theme holds the SkillMatch palette and shared text styles.
package theme

import "charm.land/lipgloss/v2"

// Palette. Indigo and teal on slate, with amber for highlights.
var (
	Primary   = lipgloss.Color("#6366F1")
	Secondary = lipgloss.Color("#14B8A6")
	Accent    = lipgloss.Color("#F59E0B")
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#EF4444")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

var (
	Title     = lipgloss.NewStyle().Foreground(Primary).Bold(true).Align(lipgloss.Center)
	Subtitle  = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Label     = lipgloss.NewStyle().Foreground(TextDim).Bold(true)
	Hint      = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	ErrorText = lipgloss.NewStyle().Foreground(Error)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)
	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// Score bands shared by results, the dashboard and the shortlist.
const (
	StrongScore = 80
	FairScore   = 50
)

// ScoreColor picks a color band for a 0-100 score.
func ScoreColor(score int) lipgloss.Style {
	c := Error
	switch {
	case score >= StrongScore:
		c = Success
	case score >= FairScore:
		c = Accent
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
