// Package auth holds the log in and sign up forms.
package auth

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/skillmatch/skillmatch/internal/account"
	"github.com/skillmatch/skillmatch/internal/ui/components"
	"github.com/skillmatch/skillmatch/internal/ui/theme"
)

// resultMsg carries the outcome of a login or signup call.
type resultMsg struct {
	User *account.User
	Err  error
}

// renderForm lays out a centered auth card.
func renderForm(title, subtitle, body, errMsg, switchHint string, pending bool, width, height int) string {
	cw := min(components.ContentWidth(width), 56)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw - 4).Render(title))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw - 4).Render(subtitle))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")

	if errMsg != "" {
		b.WriteString(theme.ErrorText.Render(errMsg))
		b.WriteString("\n\n")
	}
	if pending {
		b.WriteString(theme.Hint.Render("Working..."))
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(switchHint))
	}

	return components.Center(components.Card(b.String(), cw, true), width, height)
}
