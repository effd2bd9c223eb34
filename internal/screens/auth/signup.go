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
	signupName = iota
	signupEmail
	signupPassword
)

// roleOptions are shown in this order; the index maps to signupRoles.
var (
	roleOptions = []string{account.RoleSeeker.Label(), account.RoleEmployer.Label()}
	signupRoles = []account.Role{account.RoleSeeker, account.RoleEmployer}
)

// SignupScreen collects name, email, password and account role.
type SignupScreen struct {
	accounts *account.Store
	form     components.Form
	errMsg   string
	pending  bool
}

var _ screen.Screen = (*SignupScreen)(nil)
var _ screen.KeyHintProvider = (*SignupScreen)(nil)

// NewSignup creates a SignupScreen backed by accounts.
func NewSignup(accounts *account.Store) *SignupScreen {
	form := components.NewForm(
		components.NewTextInput("Full Name", "Ada Lovelace", 100),
		components.NewTextInput("Email Address", "you@example.com", 254),
		components.NewPasswordInput("Password", "at least 6 characters"),
	).WithChoice(components.NewChoice("I am a...", roleOptions))

	return &SignupScreen{accounts: accounts, form: form}
}

func (s *SignupScreen) Init() tea.Cmd {
	return s.form.Init()
}

func (s *SignupScreen) Title() string {
	return "Sign Up"
}

func (s *SignupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Role"},
		{Key: "Enter", Description: "Create account"},
		{Key: "Ctrl+N", Description: "Log in instead"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SignupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
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
			login := NewLogin(s.accounts)
			return s, router.Swap(login)
		}
	}

	if s.pending {
		return s, nil
	}
	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	return s, cmd
}

func (s *SignupScreen) selectedRole() account.Role {
	idx := 0
	if len(s.form.Choices) > 0 {
		idx = s.form.Choices[0].Selected
	}
	return signupRoles[idx]
}

func (s *SignupScreen) submit() tea.Cmd {
	if s.pending {
		return nil
	}
	form := account.SignupForm{
		Name:     s.form.Value(signupName),
		Email:    s.form.Value(signupEmail),
		Password: s.form.RawValue(signupPassword),
		Role:     s.selectedRole(),
	}
	if err := form.Validate(); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""
	s.pending = true
	accounts := s.accounts
	return func() tea.Msg {
		u, err := accounts.Signup(context.Background(), form.Name, form.Email, form.Password, form.Role)
		return resultMsg{User: u, Err: err}
	}
}

func (s *SignupScreen) View(width, height int) string {
	return renderForm("Create Your Account", "Join SkillMatch to get started.",
		s.form.View(), s.errMsg, "Have an account? Ctrl+N to log in.", s.pending, width, height)
}
