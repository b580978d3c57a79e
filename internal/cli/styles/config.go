package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// ConfigPaths are the files a session reads.
type ConfigPaths struct {
	Config  string
	KeyMaps string
	// Profile is empty when the built-in device profile is used.
	Profile string
}

// RenderConfigInfo renders the files in use.
func (r *ConfigRenderer) RenderConfigInfo(paths ConfigPaths) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	labelStyle := r.theme.Normal.Width(9)
	pathStyle := r.theme.Subtle

	profile := paths.Profile
	if profile == "" {
		profile = "built-in"
	}

	return fmt.Sprintf(
		"\n  %s %s%s\n  %s %s%s\n  %s %s%s\n",
		iconStyle.Render(IconConfig), labelStyle.Render("Config"), pathStyle.Render(paths.Config),
		iconStyle.Render(IconKeyboard), labelStyle.Render("Key maps"), pathStyle.Render(paths.KeyMaps),
		iconStyle.Render(IconPhone), labelStyle.Render("Device"), pathStyle.Render(profile),
	)
}

// RenderSet renders the confirmation of a changed key.
func (r *ConfigRenderer) RenderSet(key, value string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s %s = %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(key),
		r.theme.Normal.Render(value),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
