// Package screen defines what the router stacks and the messages screens
// use to talk to the root model.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/skillmatch/skillmatch/internal/account"
	"github.com/skillmatch/skillmatch/internal/ui/layout"
)

// Screen is one page of the TUI. View draws only the area between the
// header and footer.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// SessionChangedMsg reports a login, signup or logout. User is nil after a
// logout. The root model routes to the matching home screen.
type SessionChangedMsg struct {
	User *account.User
}

// SessionChanged returns a command emitting SessionChangedMsg.
func SessionChanged(u *account.User) tea.Cmd {
	return func() tea.Msg { return SessionChangedMsg{User: u} }
}
