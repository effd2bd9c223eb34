package landing

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/skillmatch/skillmatch/internal/account"
	"github.com/skillmatch/skillmatch/internal/router"
	"github.com/skillmatch/skillmatch/internal/store"
)

func newLanding() *LandingScreen {
	return New(account.NewStore(store.NewMemoryKV()))
}

func TestMenuPushesLogin(t *testing.T) {
	l := newLanding()
	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if push.Screen.Title() != "Log In" {
		t.Errorf("pushed %q, want Log In", push.Screen.Title())
	}
}

func TestMenuPushesSignup(t *testing.T) {
	l := newLanding()
	l.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if push.Screen.Title() != "Sign Up" {
		t.Errorf("pushed %q, want Sign Up", push.Screen.Title())
	}
}

func TestMenuQuit(t *testing.T) {
	l := newLanding()
	l.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	l.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestViewShowsPitch(t *testing.T) {
	view := newLanding().View(100, 40)
	for _, want := range []string{"Log In", "Sign Up", "Bias-Free Hiring"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHotkeyOpensSignup(t *testing.T) {
	l := newLanding()
	_, cmd := l.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	if cmd == nil {
		t.Fatal("expected a command from hotkey")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok || push.Screen.Title() != "Sign Up" {
		t.Errorf("hotkey s should open Sign Up, got %T", cmd())
	}
}
