package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/skillmatch/skillmatch/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Key, when set, selects and runs the
// item directly.
type MenuItem struct {
	Label    string
	Hint     string
	Key      string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of buttons. Navigation wraps and skips disabled
// items.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.move(1)
	return m
}

// move steps the selection by dir until an enabled item is found.
func (m *Menu) move(dir int) {
	n := len(m.Items)
	if n == 0 {
		return
	}
	i := m.Selected
	for range n {
		i = (i + dir + n) % n
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k", "shift+tab":
		m.move(-1)
	case "down", "j", "tab":
		m.move(1)
	case "enter":
		return m, m.run(m.Selected)
	default:
		for i, item := range m.Items {
			if item.Key != "" && item.Key == key {
				m.Selected = i
				return m, m.run(i)
			}
		}
	}
	return m, nil
}

func (m Menu) run(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	item := m.Items[i]
	if item.Disabled || item.Action == nil {
		return nil
	}
	return item.Action()
}

func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		label := " " + item.Label + " "
		if item.Key != "" {
			label = " " + item.Label + " (" + item.Key + ") "
		}
		switch {
		case i == m.Selected:
			b.WriteString(theme.ButtonActive.Render("▸" + label))
			if item.Hint != "" {
				b.WriteString("  " + theme.Hint.Render(item.Hint))
			}
		case item.Disabled:
			b.WriteString(theme.Hint.Render(" " + label))
		default:
			b.WriteString(theme.ButtonInactive.Render(" " + label))
		}
	}
	return b.String()
}
