package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// TriggerKeyMap defines keybindings for the trigger editor.
type TriggerKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Record    key.Binding
	Parallel  key.Binding
	Sequence  key.Binding
	ClickType key.Binding
	KeyClick  key.Binding
	DontRemap key.Binding
	Device    key.Binding
	Remove    key.Binding
	Fix       key.Binding
	Dismiss   key.Binding
	Save      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k TriggerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Record, k.Up, k.Down, k.Remove, k.Save, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k TriggerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.MoveUp, k.MoveDown},
		{k.Record, k.Parallel, k.Sequence, k.ClickType},
		{k.KeyClick, k.DontRemap, k.Device, k.Remove},
		{k.Fix, k.Dismiss, k.Save, k.Help, k.Quit},
	}
}

// DefaultTriggerKeyMap returns the default trigger editor keybindings.
func DefaultTriggerKeyMap() TriggerKeyMap {
	return TriggerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("shift+up", "K"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("shift+down", "J"),
			key.WithHelp("J", "move down"),
		),
		Record: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "record"),
		),
		Parallel: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "parallel"),
		),
		Sequence: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sequence"),
		),
		ClickType: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "click type"),
		),
		KeyClick: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "key click type"),
		),
		DontRemap: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "don't remap"),
		),
		Device: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "device"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "remove"),
		),
		Fix: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "fix error"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open message"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s", "w"),
			key.WithHelp("w", "save"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DialogKeyMap defines keybindings for dialogs over the trigger editor.
type DialogKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Never   key.Binding
	Cancel  key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k DialogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Never, k.Cancel}
}

// FullHelp returns keybindings for expanded help.
func (k DialogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Confirm, k.Never, k.Cancel},
	}
}

// DefaultDialogKeyMap returns the default dialog keybindings.
func DefaultDialogKeyMap() DialogKeyMap {
	return DialogKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Never: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "never show again"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
