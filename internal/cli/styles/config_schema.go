package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/keymapper-dev/keymapper/internal/domain/entity"
)

// ConfigSchemaRenderer renders the settings keys as one table per section.
type ConfigSchemaRenderer struct {
	theme *Theme
}

func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

const (
	colKey = iota
	colValue
	colAllowed
	colDescription
)

// Render lists keys grouped by section in order of first appearance.
// values holds the effective value per key; a value equal to the default
// is shown plain, anything else is highlighted next to the default.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo, values map[string]string) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	header := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconConfig) + " " +
		r.theme.Title.Render("Configuration Keys")

	var sb strings.Builder
	sb.WriteString(header + "\n\n")
	for _, section := range sectionsOf(keys) {
		sb.WriteString(r.theme.Highlight.Render(section.name) + "\n")
		sb.WriteString(r.sectionTable(section.keys, values) + "\n\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RenderJSON renders the keys as indented JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

type schemaSection struct {
	name string
	keys []entity.ConfigKeyInfo
}

func sectionsOf(keys []entity.ConfigKeyInfo) []schemaSection {
	var sections []schemaSection
	index := make(map[string]int)
	for _, key := range keys {
		i, ok := index[key.Section]
		if !ok {
			i = len(sections)
			index[key.Section] = i
			sections = append(sections, schemaSection{name: key.Section})
		}
		sections[i].keys = append(sections[i].keys, key)
	}
	return sections
}

func (r *ConfigSchemaRenderer) sectionTable(keys []entity.ConfigKeyInfo, values map[string]string) string {
	changed := make(map[int]bool)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("KEY", "VALUE", "ALLOWED", "DESCRIPTION")

	for i, key := range keys {
		value := key.Default
		if current, ok := values[key.Key]; ok && current != key.Default {
			value = current + " (default " + key.Default + ")"
			changed[i] = true
		}
		t.Row(key.Key+" "+key.Type, value, allowedValues(key), key.Description)
	}

	return t.StyleFunc(func(row, col int) lipgloss.Style {
		style := lipgloss.NewStyle().Padding(0, 1)
		switch {
		case row == table.HeaderRow:
			return style.Inherit(r.theme.Subtitle)
		case col == colKey:
			return style.Inherit(r.theme.Normal).Bold(true)
		case col == colValue && changed[row]:
			return style.Inherit(r.theme.WarningStyle)
		case col == colValue:
			return style.Foreground(r.theme.Accent)
		case col == colAllowed, col == colDescription:
			return style.Inherit(r.theme.Subtle)
		}
		return style
	}).String()
}

func allowedValues(key entity.ConfigKeyInfo) string {
	if len(key.Values) > 0 {
		return strings.Join(key.Values, ", ")
	}
	return key.Range
}
