package styles

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/keymapper-dev/keymapper/internal/application/usecase"
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
)

// ActionsRenderer renders the action catalog listing.
type ActionsRenderer struct {
	theme *Theme
}

// NewActionsRenderer creates a new actions renderer.
func NewActionsRenderer(theme *Theme) *ActionsRenderer {
	return &ActionsRenderer{theme: theme}
}

// Render renders the listings. Without a query they are grouped under category headers.
func (r *ActionsRenderer) Render(listings []usecase.ActionListing, grouped bool) string {
	if len(listings) == 0 {
		return r.theme.Subtle.Render("No matching actions.")
	}

	var b strings.Builder
	var category entity.ActionCategory
	for i, l := range listings {
		if grouped && (i == 0 || l.Category != category) {
			if i > 0 {
				b.WriteString("\n")
			}
			category = l.Category
			b.WriteString(r.theme.Subtitle.Render(string(category)) + "\n")
		}
		b.WriteString(r.renderListing(l) + "\n")
	}
	return b.String()
}

func (r *ActionsRenderer) renderListing(l usecase.ActionListing) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Success).Render(IconCheck)
	if l.Unsupported != nil {
		icon = lipgloss.NewStyle().Foreground(r.theme.Error).Render(IconX)
	}

	line := fmt.Sprintf("  %s %s", icon, r.highlightMatches(string(l.ID), l.MatchedIndexes))

	var tags []string
	if l.CanUseIme {
		tags = append(tags, r.theme.MutedBadge("ime"))
	}
	if l.CanUseShizuku {
		tags = append(tags, r.theme.MutedBadge("shizuku"))
	}
	if len(tags) > 0 {
		line += " " + strings.Join(tags, " ")
	}

	if l.Unsupported != nil {
		line += "  " + r.theme.ErrorStyle.Render(l.Unsupported.Error())
	} else if len(l.Permissions) > 0 {
		perms := make([]string, len(l.Permissions))
		for i, p := range l.Permissions {
			perms[i] = string(p)
		}
		line += "  " + r.theme.Subtle.Render("needs "+strings.Join(perms, ", "))
	}
	return line
}

func (r *ActionsRenderer) highlightMatches(name string, matched []int) string {
	if len(matched) == 0 {
		return r.theme.Normal.Render(name)
	}

	var b strings.Builder
	for i, c := range name {
		if slices.Contains(matched, i) {
			b.WriteString(r.theme.Highlight.Render(string(c)))
		} else {
			b.WriteString(r.theme.Normal.Render(string(c)))
		}
	}
	return b.String()
}
