package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/keymapper-dev/keymapper/internal/application/port"
	"github.com/keymapper-dev/keymapper/internal/application/usecase"
)

// CheckRenderer renders key map check reports.
type CheckRenderer struct {
	theme   *Theme
	trigger *TriggerRenderer
}

// NewCheckRenderer creates a new check renderer.
func NewCheckRenderer(theme *Theme, strings port.ResourceProvider) *CheckRenderer {
	return &CheckRenderer{theme: theme, trigger: NewTriggerRenderer(theme, strings)}
}

// Render renders every report followed by a summary line.
func (r *CheckRenderer) Render(reports []usecase.KeyMapReport) string {
	if len(reports) == 0 {
		return r.theme.Subtle.Render("No key maps found.")
	}

	var b strings.Builder
	broken := 0
	for _, report := range reports {
		if !report.OK() {
			broken++
		}
		b.WriteString(r.renderReport(report))
		b.WriteString("\n")
	}

	b.WriteString(r.renderSummary(len(reports), broken))
	return b.String()
}

func (r *CheckRenderer) renderReport(report usecase.KeyMapReport) string {
	var b strings.Builder

	status := lipgloss.NewStyle().Foreground(r.theme.Success).Render(IconCheck)
	if !report.OK() {
		status = lipgloss.NewStyle().Foreground(r.theme.Error).Render(IconX)
	}
	title := r.theme.Title.Render(report.KeyMap.UID)
	if !report.KeyMap.IsEnabled {
		title += " " + r.theme.MutedBadge("disabled")
	}
	b.WriteString(fmt.Sprintf("%s %s\n", status, title))

	b.WriteString(r.trigger.RenderErrors(report.TriggerErrors))

	for _, action := range report.KeyMap.Actions {
		id := "UNKNOWN"
		if action.Data != nil {
			id = string(action.Data.ID())
		}
		err := report.ActionErrors[action.UID]
		if err == nil {
			b.WriteString(fmt.Sprintf("    %s %s\n", r.theme.SuccessStyle.Render(IconBolt), r.theme.Normal.Render(id)))
			continue
		}
		b.WriteString(fmt.Sprintf("    %s %s %s\n",
			r.theme.ErrorStyle.Render(IconBolt),
			r.theme.Normal.Render(id),
			r.theme.ErrorStyle.Render(err.Error()),
		))
	}
	return b.String()
}

func (r *CheckRenderer) renderSummary(total, broken int) string {
	if broken == 0 {
		return r.theme.SuccessStyle.Render(fmt.Sprintf("%s %d key maps ready", IconCheck, total))
	}
	return r.theme.WarningStyle.Render(fmt.Sprintf("%s %d of %d key maps need attention", IconWarning, broken, total))
}

// RenderError renders an error message.
func (r *CheckRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("%s %v", iconStyle.Render(IconX), err)
}
