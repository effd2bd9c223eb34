// Package seeker is the job seeker dashboard: browse roles, start a quiz
// and review scorecards from this run.
package seeker

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skillmatch/skillmatch/internal/account"
	"github.com/skillmatch/skillmatch/internal/assessment"
	"github.com/skillmatch/skillmatch/internal/evaluation"
	"github.com/skillmatch/skillmatch/internal/logger"
	"github.com/skillmatch/skillmatch/internal/quiz"
	"github.com/skillmatch/skillmatch/internal/router"
	"github.com/skillmatch/skillmatch/internal/screen"
	quizscreen "github.com/skillmatch/skillmatch/internal/screens/quiz"
	"github.com/skillmatch/skillmatch/internal/ui/components"
	"github.com/skillmatch/skillmatch/internal/ui/layout"
	"github.com/skillmatch/skillmatch/internal/ui/theme"
)

// Deps are the services the dashboard and its quizzes use.
type Deps struct {
	Accounts  *account.Store
	Selector  *quiz.Selector
	Evaluator evaluation.Evaluator
	Board     *assessment.Board
	Log       *logger.Logger
}

type logoutFailedMsg struct{ Err error }

// SeekerScreen lists catalogue roles filtered by search text and category.
type SeekerScreen struct {
	user     account.User
	deps     Deps
	search   components.TextInput
	category components.Choice
	roles    []quiz.Role
	selected int
	errMsg   string
}

var _ screen.Screen = (*SeekerScreen)(nil)
var _ screen.KeyHintProvider = (*SeekerScreen)(nil)

// New creates the dashboard for user.
func New(user account.User, deps Deps) *SeekerScreen {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	cats := make([]string, len(quiz.Categories))
	for i, c := range quiz.Categories {
		cats[i] = string(c)
	}
	s := &SeekerScreen{
		user:     user,
		deps:     deps,
		search:   components.NewTextInput("", "Search for a role, e.g. 'Frontend Developer'", 60),
		category: components.NewChoice("", cats),
	}
	s.refilter()
	return s
}

func (s *SeekerScreen) Init() tea.Cmd {
	return s.search.Focus()
}

func (s *SeekerScreen) Title() string {
	return "Dashboard"
}

func (s *SeekerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Role"},
		{Key: "Tab", Description: "Category"},
		{Key: "Enter", Description: "Start quiz"},
		{Key: "Ctrl+L", Description: "Log out"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SeekerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case logoutFailedMsg:
		s.errMsg = msg.Err.Error()
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down":
			if s.selected < len(s.roles)-1 {
				s.selected++
			}
			return s, nil
		case "tab":
			s.category.Next()
			s.refilter()
			return s, nil
		case "shift+tab":
			n := len(s.category.Options)
			s.category.Selected = (s.category.Selected - 1 + n) % n
			s.refilter()
			return s, nil
		case "enter":
			return s, s.startQuiz()
		case "ctrl+l":
			return s, s.logout()
		}
	}

	before := s.search.Value()
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	if s.search.Value() != before {
		s.refilter()
	}
	return s, cmd
}

// refilter recomputes the visible roles and clamps the selection.
func (s *SeekerScreen) refilter() {
	s.roles = quiz.FilterRoles(s.search.Value(), quiz.Category(s.category.Value()))
	if s.selected >= len(s.roles) {
		s.selected = max(len(s.roles)-1, 0)
	}
}

func (s *SeekerScreen) startQuiz() tea.Cmd {
	if len(s.roles) == 0 {
		return nil
	}
	role := s.roles[s.selected].Title
	qs := quizscreen.New(role, s.deps.Selector, s.deps.Evaluator, s.deps.Board, s.deps.Log)
	return router.Open(qs)
}

func (s *SeekerScreen) logout() tea.Cmd {
	accounts := s.deps.Accounts
	return func() tea.Msg {
		if err := accounts.Logout(context.Background()); err != nil {
			return logoutFailedMsg{Err: err}
		}
		return screen.SessionChangedMsg{}
	}
}

func firstName(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return name
}

func (s *SeekerScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Welcome, %s!", firstName(s.user.Name))))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Find your perfect role by proving your skills."))
	b.WriteString("\n\n")
	b.WriteString(s.search.View())
	b.WriteString("\n")
	b.WriteString(s.category.View())
	b.WriteString("\n\n")

	if len(s.roles) == 0 {
		b.WriteString(theme.Hint.Render("No roles found matching your search."))
		b.WriteString("\n")
	}
	for i, r := range s.roles {
		title := lipgloss.NewStyle().Bold(true).Render(r.Title) + "  " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(string(r.Category))
		body := title
		if i == s.selected {
			body += "\n" + lipgloss.NewStyle().Foreground(theme.Text).Render(r.Description)
		}
		b.WriteString(components.Card(body, cw, i == s.selected))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.renderScorecards())

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorText.Render(s.errMsg))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *SeekerScreen) renderScorecards() string {
	var b strings.Builder
	b.WriteString(theme.Label.Render("My Scorecards"))
	b.WriteString("\n")

	cards := s.deps.Board.All()
	if len(cards) == 0 {
		b.WriteString(theme.Hint.Render("Complete a quiz to see your score here."))
		return b.String()
	}
	for _, c := range cards {
		b.WriteString(fmt.Sprintf("%-28s %s  %s\n",
			c.Role,
			theme.ScoreColor(c.Score).Render(fmt.Sprintf("%3d", c.Score)),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(c.Date.Format("Jan 2"))))
	}
	return strings.TrimRight(b.String(), "\n")
}
