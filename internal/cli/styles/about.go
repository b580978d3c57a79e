package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/keymapper-dev/keymapper/internal/domain/build"
)

// AboutRenderer renders build information.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

type aboutRow struct {
	icon  string
	label string
	value string
}

// Render renders the version block followed by the project links.
func (r *AboutRenderer) Render(info build.Info) string {
	t := r.theme

	name := t.Title.Render("keymapper")
	if info.IsDev() {
		name += " " + t.MutedBadge("dev build")
	}

	rows := []aboutRow{
		{IconVersion, "Version", info.Version},
		{IconGitBranch, "Commit", info.Commit},
		{IconCalendar, "Built", info.BuildDate},
		{IconGo, "Go", info.GoVersion},
		{IconGithub, "Source", build.RepoURL()},
		{IconKeyboard, "Authors", strings.Join(build.Contributors(), ", ")},
	}

	icon := lipgloss.NewStyle().Foreground(t.Accent)
	var sb strings.Builder
	sb.WriteString(t.BoxHeader.Render(IconKeyboard+" "+name) + "\n")
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			icon.Render(row.icon),
			t.Subtle.Render(fmt.Sprintf("%-8s", row.label)),
			t.Highlight.Render(row.value),
		))
	}
	return sb.String()
}
