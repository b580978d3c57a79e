package styles

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModel is a yes/no question shown over another screen.
// It starts on "No"; y and n answer at once.
type ConfirmModel struct {
	Message string
	// Detail is an optional second line under the question.
	Detail string

	Yes      bool
	answered bool
	canceled bool

	keys  confirmKeyMap
	theme *Theme
}

type confirmKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Toggle key.Binding
	Submit key.Binding
	Cancel key.Binding
}

// NewConfirm creates a confirmation dialog.
func NewConfirm(theme *Theme, message string) ConfirmModel {
	return ConfirmModel{
		Message: message,
		theme:   theme,
		keys: confirmKeyMap{
			Yes:    key.NewBinding(key.WithKeys("y", "Y")),
			No:     key.NewBinding(key.WithKeys("n", "N")),
			Toggle: key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab")),
			Submit: key.NewBinding(key.WithKeys("enter")),
			Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c")),
		},
	}
}

// Update handles a key press.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Yes):
		m.Yes, m.answered = true, true
	case key.Matches(keyMsg, m.keys.No):
		m.Yes, m.answered = false, true
	case key.Matches(keyMsg, m.keys.Toggle):
		m.Yes = !m.Yes
	case key.Matches(keyMsg, m.keys.Submit):
		m.answered = true
	case key.Matches(keyMsg, m.keys.Cancel):
		m.canceled = true
	}
	return m, nil
}

// View renders the dialog.
func (m ConfirmModel) View() string {
	t := m.theme

	no, yes := t.AccentBadge("No"), t.MutedBadge("Yes")
	if m.Yes {
		no, yes = t.MutedBadge("No"), t.AccentBadge("Yes")
	}

	lines := []string{t.Title.Render(m.Message)}
	if m.Detail != "" {
		lines = append(lines, t.Subtle.Render(m.Detail))
	}
	lines = append(lines,
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, no, "  ", yes),
		"",
		t.Subtle.Render("y/n to answer • ←/→ to switch • esc to go back"),
	)
	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// Done reports whether the dialog was answered or canceled.
func (m ConfirmModel) Done() bool {
	return m.answered || m.canceled
}

// Result reports whether the answer was yes.
func (m ConfirmModel) Result() bool {
	return m.answered && m.Yes
}
