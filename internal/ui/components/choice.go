package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skillmatch/skillmatch/internal/ui/theme"
)

// Choice is a horizontal single-select, cycled with left and right.
type Choice struct {
	Label    string
	Options  []string
	Selected int
	Active   bool
}

// NewChoice creates a choice with the first option selected.
func NewChoice(label string, options []string) Choice {
	return Choice{Label: label, Options: options}
}

// Update handles left/right when the choice is active.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if !c.Active || len(c.Options) == 0 {
		return c, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, nil
	}
	switch kmsg.String() {
	case "left", "h":
		c.Selected = (c.Selected - 1 + len(c.Options)) % len(c.Options)
	case "right", "l":
		c.Selected = (c.Selected + 1) % len(c.Options)
	}
	return c, nil
}

// Next selects the following option, wrapping around.
func (c *Choice) Next() {
	if len(c.Options) > 0 {
		c.Selected = (c.Selected + 1) % len(c.Options)
	}
}

// Value returns the selected option.
func (c Choice) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// View renders the options on one line.
func (c Choice) View() string {
	parts := make([]string, len(c.Options))
	for i, opt := range c.Options {
		if i == c.Selected {
			parts[i] = theme.ButtonActive.Render(opt)
		} else {
			parts[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 2).Render(opt)
		}
	}
	line := strings.Join(parts, " ")
	if c.Label == "" {
		return line
	}
	label := theme.Label
	if c.Active {
		label = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return label.Render(c.Label) + "\n" + line
}
