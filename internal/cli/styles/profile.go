package styles

import (
	"fmt"
	"strings"
)

// ProfileView is the device profile summary shown by the profile command.
type ProfileView struct {
	Name          string
	Source        string
	Sdk           int
	Keyboard      string
	Accessibility string
	Shizuku       string
	Granted       []string
	InputDevices  []string
}

// ProfileRenderer renders device profile summaries.
type ProfileRenderer struct {
	theme *Theme
}

// NewProfileRenderer creates a new profile renderer.
func NewProfileRenderer(theme *Theme) *ProfileRenderer {
	return &ProfileRenderer{theme: theme}
}

// Render renders the profile summary.
func (r *ProfileRenderer) Render(p ProfileView) string {
	t := r.theme
	var sb strings.Builder

	sb.WriteString(t.BoxHeader.Render(IconPhone+" "+p.Name) + "\n")

	row := func(label, value string) {
		sb.WriteString(fmt.Sprintf("  %s %s\n", t.Subtle.Render(fmt.Sprintf("%-14s", label)), t.Normal.Render(value)))
	}
	row("Source", p.Source)
	row("Android SDK", fmt.Sprint(p.Sdk))
	row("Keyboard", valueOr(p.Keyboard, "none"))
	row("Accessibility", p.Accessibility)
	row("Shizuku", p.Shizuku)
	row("Granted", valueOr(strings.Join(p.Granted, ", "), "nothing"))

	if len(p.InputDevices) > 0 {
		sb.WriteString("\n" + t.Subtitle.Render("  Input devices") + "\n")
		for _, d := range p.InputDevices {
			sb.WriteString("    " + IconKeyboard + " " + t.Normal.Render(d) + "\n")
		}
	}
	return sb.String()
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
