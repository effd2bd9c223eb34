package auth

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/skillmatch/skillmatch/internal/account"
	"github.com/skillmatch/skillmatch/internal/router"
	"github.com/skillmatch/skillmatch/internal/screen"
	"github.com/skillmatch/skillmatch/internal/ui/components"
	"github.com/skillmatch/skillmatch/internal/ui/layout"
)

const (
	loginEmail = iota
	loginPassword
)

// LoginScreen asks for email and password.
type LoginScreen struct {
	accounts *account.Store
	form     components.Form
	errMsg   string
	pending  bool
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// NewLogin creates a LoginScreen backed by accounts.
func NewLogin(accounts *account.Store) *LoginScreen {
	return &LoginScreen{
		accounts: accounts,
		form: components.NewForm(
			components.NewTextInput("Email Address", "you@example.com", 254),
			components.NewPasswordInput("Password", "••••••"),
		),
	}
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.form.Init()
}

func (s *LoginScreen) Title() string {
	return "Log In"
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Log in"},
		{Key: "Ctrl+N", Description: "Sign up instead"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		s.pending = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, screen.SessionChanged(msg.User)

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			return s, s.submit()
		case "ctrl+n":
			signup := NewSignup(s.accounts)
			return s, router.Swap(signup)
		}
	}

	if s.pending {
		return s, nil
	}
	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	return s, cmd
}

func (s *LoginScreen) submit() tea.Cmd {
	if s.pending {
		return nil
	}
	form := account.LoginForm{
		Email:    s.form.Value(loginEmail),
		Password: s.form.RawValue(loginPassword),
	}
	if err := form.Validate(); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""
	s.pending = true
	accounts := s.accounts
	return func() tea.Msg {
		u, err := accounts.Login(context.Background(), form.Email, form.Password)
		return resultMsg{User: u, Err: err}
	}
}

func (s *LoginScreen) View(width, height int) string {
	return renderForm("Welcome Back", "Log in to find your perfect match.",
		s.form.View(), s.errMsg, "No account? Ctrl+N to sign up.", s.pending, width, height)
}
