// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the base colors of a theme. Each color adapts to the
// terminal background.
type Palette struct {
	Text      lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Selection lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
}

// DefaultPalette is the palette used by every command.
func DefaultPalette() Palette {
	return Palette{
		Text:      lipgloss.AdaptiveColor{Light: "#1f2328", Dark: "#f5f5f5"},
		Muted:     lipgloss.AdaptiveColor{Light: "#6e7781", Dark: "#909090"},
		Accent:    lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#4ade80"},
		Border:    lipgloss.AdaptiveColor{Light: "#d0d7de", Dark: "#333333"},
		Selection: lipgloss.AdaptiveColor{Light: "#eaeef2", Dark: "#2d2d2d"},
		Error:     lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#ef4444"},
		Warning:   lipgloss.AdaptiveColor{Light: "#9a6700", Dark: "#f59e0b"},
	}
}

// Theme holds the palette colors and the styles derived from them.
type Theme struct {
	Text    lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Accent  lipgloss.AdaptiveColor
	Border  lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Success lipgloss.AdaptiveColor

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Recording marks the record button while a session listens.
	Recording lipgloss.Style

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style

	accentBadge lipgloss.Style
	mutedBadge  lipgloss.Style
}

// NewTheme creates a theme from the default palette.
func NewTheme() *Theme {
	return NewThemeFromPalette(DefaultPalette())
}

// NewThemeFromPalette creates a Theme from a Palette.
func NewThemeFromPalette(p Palette) *Theme {
	fg := func(c lipgloss.TerminalColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	t := &Theme{
		Text:    p.Text,
		Muted:   p.Muted,
		Accent:  p.Accent,
		Border:  p.Border,
		Error:   p.Error,
		Warning: p.Warning,
		Success: p.Accent,
	}

	t.Title = fg(p.Text).Bold(true)
	t.Subtitle = fg(p.Muted).Bold(true)
	t.Normal = fg(p.Text)
	t.Subtle = fg(p.Muted)
	t.Highlight = fg(p.Accent).Bold(true)
	t.ErrorStyle = fg(p.Error)
	t.WarningStyle = fg(p.Warning)
	t.SuccessStyle = fg(p.Accent)
	t.Recording = fg(p.Error).Bold(true)

	t.ListItem = fg(p.Text).PaddingLeft(2)
	t.ListItemSelected = fg(p.Accent).Background(p.Selection).PaddingLeft(2).Bold(true)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)
	t.BoxHeader = fg(p.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(p.Border).
		MarginBottom(1)

	// Badge text takes the inverse of the text color so it stays readable on the accent.
	t.accentBadge = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: p.Text.Dark, Dark: p.Text.Light}).
		Background(p.Accent).
		Padding(0, 1)
	t.mutedBadge = fg(p.Text).Background(p.Selection).Padding(0, 1)

	return t
}

// AccentBadge renders text as a highlighted badge.
func (t *Theme) AccentBadge(text string) string {
	return t.accentBadge.Render(text)
}

// MutedBadge renders text as a dimmed badge.
func (t *Theme) MutedBadge(text string) string {
	return t.mutedBadge.Render(text)
}
