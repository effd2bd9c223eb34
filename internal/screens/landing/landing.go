// Package landing is the start screen for visitors who are not logged in.
package landing

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skillmatch/skillmatch/internal/account"
	"github.com/skillmatch/skillmatch/internal/router"
	"github.com/skillmatch/skillmatch/internal/screen"
	"github.com/skillmatch/skillmatch/internal/screens/auth"
	"github.com/skillmatch/skillmatch/internal/ui/components"
	"github.com/skillmatch/skillmatch/internal/ui/layout"
	"github.com/skillmatch/skillmatch/internal/ui/theme"
)

const (
	headline = "Hire for real skills, not résumés"
	pitch    = "Candidates complete short role quizzes. Employers get a ranked shortlist with explainable scores."
)

var features = []struct{ title, desc string }{
	{"Bias-Free Hiring", "Objective, skill-based assessments regardless of background."},
	{"Speed to Hire", "Shortlist qualified candidates in minutes, not weeks."},
	{"Data-Driven Decisions", "Detailed scores and summaries behind every candidate."},
}

// LandingScreen offers log in, sign up and quit.
type LandingScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*LandingScreen)(nil)
var _ screen.KeyHintProvider = (*LandingScreen)(nil)

// New creates a LandingScreen whose auth forms use accounts.
func New(accounts *account.Store) *LandingScreen {
	items := []components.MenuItem{
		{Label: "Log In", Key: "l", Hint: "Pick up where you left off", Action: func() tea.Cmd {
			return router.Open(auth.NewLogin(accounts))
		}},
		{Label: "Sign Up", Key: "s", Hint: "Create a seeker or employer account", Action: func() tea.Cmd {
			return router.Open(auth.NewSignup(accounts))
		}},
		{Label: "Quit", Key: "q", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return &LandingScreen{menu: components.NewMenu(items)}
}

func (l *LandingScreen) Init() tea.Cmd {
	return nil
}

func (l *LandingScreen) Title() string {
	return "Welcome"
}

func (l *LandingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LandingScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections,
		theme.Title.Width(cw).Render(headline),
		theme.Subtitle.Width(cw).Render(pitch),
	)

	if !layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight) {
		var fb strings.Builder
		for i, f := range features {
			if i > 0 {
				fb.WriteString("\n")
			}
			fb.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("✓ " + f.title))
			fb.WriteString("  ")
			fb.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(f.desc))
		}
		sections = append(sections, components.Card(fb.String(), cw, false))
	}

	sections = append(sections, l.menu.View())

	return components.Center(strings.Join(sections, "\n\n"), width, height)
}
