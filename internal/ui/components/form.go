package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// Form is a vertical list of text inputs followed by optional choices,
// with one element focused at a time. Tab and the arrow keys move focus;
// other keys go to the focused element.
type Form struct {
	Fields  []TextInput
	Choices []Choice
	Focus   int
}

// NewForm creates a form over fields.
func NewForm(fields ...TextInput) Form {
	return Form{Fields: fields}
}

// WithChoice appends a choice after the text fields.
func (f Form) WithChoice(c Choice) Form {
	f.Choices = append(f.Choices, c)
	return f
}

func (f Form) size() int {
	return len(f.Fields) + len(f.Choices)
}

// Init focuses the first element.
func (f *Form) Init() tea.Cmd {
	if f.size() == 0 {
		return nil
	}
	return f.setFocus(0)
}

// Update handles focus movement and forwards other messages.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if f.size() == 0 {
		return f, nil
	}
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return f, f.setFocus((f.Focus + 1) % f.size())
		case "shift+tab", "up":
			return f, f.setFocus((f.Focus - 1 + f.size()) % f.size())
		}
	}

	var cmd tea.Cmd
	if f.Focus < len(f.Fields) {
		f.Fields[f.Focus], cmd = f.Fields[f.Focus].Update(msg)
	} else {
		i := f.Focus - len(f.Fields)
		f.Choices[i], cmd = f.Choices[i].Update(msg)
	}
	return f, cmd
}

func (f *Form) setFocus(idx int) tea.Cmd {
	f.Focus = idx
	var cmd tea.Cmd
	for i := range f.Fields {
		if i == idx {
			cmd = f.Fields[i].Focus()
		} else {
			f.Fields[i].Blur()
		}
	}
	for i := range f.Choices {
		f.Choices[i].Active = len(f.Fields)+i == idx
	}
	return cmd
}

// Value returns the trimmed value of field i.
func (f Form) Value(i int) string {
	if i < 0 || i >= len(f.Fields) {
		return ""
	}
	return f.Fields[i].TrimmedValue()
}

// RawValue returns field i untrimmed. Passwords are compared as typed.
func (f Form) RawValue(i int) string {
	if i < 0 || i >= len(f.Fields) {
		return ""
	}
	return f.Fields[i].Value()
}

// ChoiceValue returns the selected option of choice i.
func (f Form) ChoiceValue(i int) string {
	if i < 0 || i >= len(f.Choices) {
		return ""
	}
	return f.Choices[i].Value()
}

// View renders the elements separated by blank lines.
func (f Form) View() string {
	parts := make([]string, 0, f.size())
	for _, fld := range f.Fields {
		parts = append(parts, fld.View())
	}
	for _, c := range f.Choices {
		parts = append(parts, c.View())
	}
	return strings.Join(parts, "\n\n")
}
