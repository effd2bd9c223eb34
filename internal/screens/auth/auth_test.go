package auth

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/skillmatch/skillmatch/internal/account"
	"github.com/skillmatch/skillmatch/internal/router"
	"github.com/skillmatch/skillmatch/internal/screen"
	"github.com/skillmatch/skillmatch/internal/store"
)

func typeInto(s screen.Screen, text string) screen.Screen {
	for _, r := range text {
		s, _ = s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return s
}

func press(s screen.Screen, code rune) (screen.Screen, tea.Cmd) {
	return s.Update(tea.KeyPressMsg{Code: code})
}

// run executes cmd and feeds its message back into s until a message
// the screen does not consume appears.
func run(t *testing.T, s screen.Screen, cmd tea.Cmd) tea.Msg {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if _, ok := msg.(resultMsg); !ok {
			return msg
		}
		s, cmd = s.Update(msg)
	}
	return nil
}

func newAccounts(t *testing.T) *account.Store {
	t.Helper()
	return account.NewStore(store.NewMemoryKV())
}

func TestLoginSuccess(t *testing.T) {
	accounts := newAccounts(t)
	_, err := accounts.Signup(context.Background(), "Ada", "ada@example.com", "secret1", account.RoleSeeker)
	if err != nil {
		t.Fatal(err)
	}

	var s screen.Screen = NewLogin(accounts)
	s.Init()
	s = typeInto(s, "ada@example.com")
	s, _ = press(s, tea.KeyTab)
	s = typeInto(s, "secret1")
	s, cmd := press(s, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("expected login command")
	}

	msg := run(t, s, cmd)
	changed, ok := msg.(screen.SessionChangedMsg)
	if !ok {
		t.Fatalf("expected SessionChangedMsg, got %T", msg)
	}
	if changed.User == nil || changed.User.Email != "ada@example.com" {
		t.Errorf("unexpected user %+v", changed.User)
	}
}

func TestLoginWrongPasswordShowsError(t *testing.T) {
	accounts := newAccounts(t)
	_, _ = accounts.Signup(context.Background(), "Ada", "ada@example.com", "secret1", account.RoleSeeker)

	ls := NewLogin(accounts)
	ls.Init()
	var s screen.Screen = ls
	s = typeInto(s, "ada@example.com")
	s, _ = press(s, tea.KeyTab)
	s = typeInto(s, "wrong")
	_, cmd := press(s, tea.KeyEnter)

	if msg := run(t, ls, cmd); msg != nil {
		t.Fatalf("no further message expected, got %T", msg)
	}
	if ls.errMsg != account.ErrInvalidCredentials.Error() {
		t.Errorf("errMsg = %q", ls.errMsg)
	}
	if !strings.Contains(ls.View(100, 40), account.ErrInvalidCredentials.Error()) {
		t.Error("error should be rendered inline")
	}
}

func TestLoginRequiresFields(t *testing.T) {
	ls := NewLogin(newAccounts(t))
	ls.Init()
	_, cmd := ls.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("empty form must not call the store")
	}
	if ls.errMsg != "Email is required" {
		t.Errorf("errMsg = %q", ls.errMsg)
	}
}

func TestLoginSwitchToSignup(t *testing.T) {
	ls := NewLogin(newAccounts(t))
	_, cmd := ls.Update(tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected replace command")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if replace.Screen.Title() != "Sign Up" {
		t.Errorf("replaced with %q", replace.Screen.Title())
	}
}

func fillSignup(s screen.Screen, name, email, password string) screen.Screen {
	s = typeInto(s, name)
	s, _ = press(s, tea.KeyTab)
	s = typeInto(s, email)
	s, _ = press(s, tea.KeyTab)
	return typeInto(s, password)
}

func TestSignupAsEmployer(t *testing.T) {
	accounts := newAccounts(t)
	ss := NewSignup(accounts)
	ss.Init()

	var s screen.Screen = fillSignup(ss, "Grace", "grace@example.com", "hopper1")
	s, _ = press(s, tea.KeyTab)
	s, _ = press(s, tea.KeyRight)
	s, cmd := press(s, tea.KeyEnter)

	msg := run(t, s, cmd)
	changed, ok := msg.(screen.SessionChangedMsg)
	if !ok {
		t.Fatalf("expected SessionChangedMsg, got %T (err %q)", msg, ss.errMsg)
	}
	if changed.User.Role != account.RoleEmployer {
		t.Errorf("role = %q, want employer", changed.User.Role)
	}

	current, err := accounts.CurrentSession(context.Background())
	if err != nil || current == nil || current.Email != "grace@example.com" {
		t.Errorf("session not written: %+v, %v", current, err)
	}
}

func TestSignupDefaultsToSeeker(t *testing.T) {
	ss := NewSignup(newAccounts(t))
	ss.Init()
	var s screen.Screen = fillSignup(ss, "Ada", "ada@example.com", "secret1")
	s, cmd := press(s, tea.KeyEnter)

	changed, ok := run(t, s, cmd).(screen.SessionChangedMsg)
	if !ok {
		t.Fatal("expected SessionChangedMsg")
	}
	if changed.User.Role != account.RoleSeeker {
		t.Errorf("role = %q, want seeker", changed.User.Role)
	}
}

func TestSignupShortPassword(t *testing.T) {
	ss := NewSignup(newAccounts(t))
	ss.Init()
	var s screen.Screen = fillSignup(ss, "Ada", "ada@example.com", "abc")
	_, cmd := press(s, tea.KeyEnter)
	if cmd != nil {
		t.Error("invalid form must not call the store")
	}
	if ss.errMsg != "Password must be at least 6 characters" {
		t.Errorf("errMsg = %q", ss.errMsg)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	accounts := newAccounts(t)
	_, _ = accounts.Signup(context.Background(), "Ada", "ada@example.com", "secret1", account.RoleSeeker)

	ss := NewSignup(accounts)
	ss.Init()
	var s screen.Screen = fillSignup(ss, "Imposter", "ada@example.com", "secret2")
	_, cmd := press(s, tea.KeyEnter)
	run(t, ss, cmd)

	if ss.errMsg != account.ErrDuplicateEmail.Error() {
		t.Errorf("errMsg = %q", ss.errMsg)
	}
}
