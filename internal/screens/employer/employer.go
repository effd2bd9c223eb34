// Package employer is the employer dashboard: describe a role and browse
// the candidate shortlist.
package employer

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skillmatch/skillmatch/internal/account"
	"github.com/skillmatch/skillmatch/internal/screen"
	"github.com/skillmatch/skillmatch/internal/talent"
	"github.com/skillmatch/skillmatch/internal/ui/components"
	"github.com/skillmatch/skillmatch/internal/ui/layout"
	"github.com/skillmatch/skillmatch/internal/ui/theme"
)

const (
	fieldRole = iota
	fieldSkills
)

type logoutFailedMsg struct{ Err error }

// EmployerScreen searches the shortlist by job role.
type EmployerScreen struct {
	user       account.User
	accounts   *account.Store
	form       components.Form
	candidates []talent.Candidate
	searched   bool
	errMsg     string
}

var _ screen.Screen = (*EmployerScreen)(nil)
var _ screen.KeyHintProvider = (*EmployerScreen)(nil)

// New creates the employer dashboard for user.
func New(user account.User, accounts *account.Store) *EmployerScreen {
	return &EmployerScreen{
		user:     user,
		accounts: accounts,
		form: components.NewForm(
			components.NewTextInput("Job Role", "e.g. Product Manager", 80),
			components.NewTextInput("Key Skills / Responsibilities", "e.g. roadmap planning, user research", 200),
		),
	}
}

func (s *EmployerScreen) Init() tea.Cmd {
	return s.form.Init()
}

func (s *EmployerScreen) Title() string {
	return "Find Talent"
}

func (s *EmployerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Find candidates"},
		{Key: "Ctrl+L", Description: "Log out"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *EmployerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case logoutFailedMsg:
		s.errMsg = msg.Err.Error()
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			s.find()
			return s, nil
		case "ctrl+l":
			accounts := s.accounts
			return s, func() tea.Msg {
				if err := accounts.Logout(context.Background()); err != nil {
					return logoutFailedMsg{Err: err}
				}
				return screen.SessionChangedMsg{}
			}
		}
	}

	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	return s, cmd
}

// find fills the shortlist. The skills field is informational only.
func (s *EmployerScreen) find() {
	cands, err := talent.Shortlist(s.form.Value(fieldRole))
	if err != nil {
		s.errMsg = err.Error()
		s.candidates = nil
		s.searched = false
		return
	}
	s.errMsg = ""
	s.candidates = cands
	s.searched = true
}

func (s *EmployerScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Find Verified Talent"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).
		Render("Describe your ideal candidate and see top scorers from our skill assessments."))
	b.WriteString("\n\n")
	b.WriteString(s.form.View())
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.ErrorText.Render(s.errMsg))
		b.WriteString("\n")
	}

	if s.searched {
		b.WriteString("\n")
		b.WriteString(theme.Label.Render(fmt.Sprintf("Top candidates for %s", s.candidates[0].Role)))
		b.WriteString("\n")
		for _, c := range s.candidates {
			b.WriteString(renderCandidate(c, cw))
			b.WriteString("\n")
		}
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func renderCandidate(c talent.Candidate, cw int) string {
	head := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Name) +
		"  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(c.Role)
	score := theme.ScoreColor(c.Score).Render(fmt.Sprintf("%d", c.Score))

	gap := cw - 4 - lipgloss.Width(head) - lipgloss.Width(score)
	if gap < 1 {
		gap = 1
	}
	line := head + strings.Repeat(" ", gap) + score
	body := lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw - 4).Render(c.Summary)
	return components.Card(line+"\n"+body, cw, false)
}
