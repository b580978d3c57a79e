package styles_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/keymapper-dev/keymapper/internal/cli/styles"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmModel(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		done     bool
		accepted bool
	}{
		{name: "y answers yes", keys: []tea.KeyMsg{runes("y")}, done: true, accepted: true},
		{name: "n answers no", keys: []tea.KeyMsg{runes("n")}, done: true},
		{name: "enter keeps default no", keys: []tea.KeyMsg{{Type: tea.KeyEnter}}, done: true},
		{name: "toggle then enter", keys: []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyEnter}}, done: true, accepted: true},
		{name: "esc cancels", keys: []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyEsc}}, done: true},
		{name: "other keys wait", keys: []tea.KeyMsg{runes("x")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := styles.NewConfirm(styles.NewTheme(), "Discard unsaved changes?")
			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}

			assert.Equal(t, tt.done, m.Done())
			assert.Equal(t, tt.accepted, m.Result())
		})
	}
}

func TestConfirmModel_View(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(), "Discard unsaved changes?")
	m.Detail = "2 trigger keys"

	out := m.View()

	assert.Contains(t, out, "Discard unsaved changes?")
	assert.Contains(t, out, "2 trigger keys")
	assert.Contains(t, out, "Yes")
}
