package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/keymapper-dev/keymapper/internal/application/port"
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"github.com/keymapper-dev/keymapper/internal/domain/service"
)

// TriggerRenderer renders the trigger screen state.
type TriggerRenderer struct {
	theme   *Theme
	strings port.ResourceProvider
}

// NewTriggerRenderer creates a new trigger renderer.
func NewTriggerRenderer(theme *Theme, strings port.ResourceProvider) *TriggerRenderer {
	return &TriggerRenderer{theme: theme, strings: strings}
}

// RenderKeys renders the key list. selected is the highlighted row, -1 for none.
func (r *TriggerRenderer) RenderKeys(state service.TriggerState, selected int) string {
	if len(state.Keys) == 0 {
		return r.theme.Subtle.Render("  No trigger keys. Record a trigger to add some.") + "\n"
	}

	var sb strings.Builder
	for i, key := range state.Keys {
		style := r.theme.ListItem
		cursor := "  "
		if i == selected {
			style = r.theme.ListItemSelected
			cursor = lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconCursor) + " "
		}
		line := key.Description
		if key.ExtraInfo != "" {
			line += "  " + r.theme.Subtle.Render(key.ExtraInfo)
		}
		sb.WriteString(cursor + style.Render(line) + "\n")
		if link := r.linkGlyph(key.LinkType); link != "" {
			sb.WriteString("      " + r.theme.Subtle.Render(link) + "\n")
		}
	}
	return sb.String()
}

func (r *TriggerRenderer) linkGlyph(link service.LinkType) string {
	switch link {
	case service.LinkPlus:
		return "+"
	case service.LinkArrow:
		return "↓"
	default:
		return ""
	}
}

// RenderMode renders the mode and click type selectors.
func (r *TriggerRenderer) RenderMode(state service.TriggerState) string {
	var sb strings.Builder

	modes := []struct {
		label  string
		active bool
	}{
		{r.strings.GetString(port.StringTriggerModeParallel), state.Mode.IsParallel()},
		{r.strings.GetString(port.StringTriggerModeSequence), state.Mode.IsSequence()},
	}
	sb.WriteString(r.theme.Subtitle.Render("  Mode  "))
	for _, m := range modes {
		sb.WriteString(r.option(m.label, m.active, state.IsModeButtonsEnabled) + " ")
	}
	sb.WriteString("\n")

	if len(state.AvailableClickTypes) > 0 {
		sb.WriteString(r.theme.Subtitle.Render("  Click "))
		for _, ct := range state.AvailableClickTypes {
			active := state.ClickType != nil && *state.ClickType == ct
			sb.WriteString(r.option(r.ClickTypeLabel(ct), active, true) + " ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *TriggerRenderer) option(label string, active, enabled bool) string {
	switch {
	case !enabled:
		return r.theme.Subtle.Render(IconCheckboxEmpty + " " + label)
	case active:
		return r.theme.Highlight.Render(IconCheckboxChecked + " " + label)
	default:
		return r.theme.Normal.Render(IconCheckboxEmpty + " " + label)
	}
}

// ClickTypeLabel returns the user-facing name of a click type.
func (r *TriggerRenderer) ClickTypeLabel(ct entity.ClickType) string {
	switch ct {
	case entity.ClickTypeLongPress:
		return r.strings.GetString(port.StringClickTypeLongPress)
	case entity.ClickTypeDoublePress:
		return r.strings.GetString(port.StringClickTypeDoublePress)
	default:
		return r.strings.GetString(port.StringClickTypeShortPress)
	}
}

// RenderErrors renders the trigger errors, numbered from 1 for the fix shortcuts.
func (r *TriggerRenderer) RenderErrors(errs []entity.KeyMapTriggerError) string {
	if len(errs) == 0 {
		return ""
	}
	icon := lipgloss.NewStyle().Foreground(r.theme.Warning).Render(IconWarning)

	var sb strings.Builder
	for i, e := range errs {
		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			icon,
			r.theme.Subtle.Render(fmt.Sprintf("%d.", i+1)),
			r.theme.WarningStyle.Render(r.TriggerErrorText(e)),
		))
	}
	return sb.String()
}

// TriggerErrorText returns the explanation of a trigger error.
func (r *TriggerRenderer) TriggerErrorText(e entity.KeyMapTriggerError) string {
	switch e {
	case entity.TriggerErrorDndAccessDenied:
		return r.strings.GetString(port.StringTriggerErrorDndAccessDenied)
	case entity.TriggerErrorScreenOffRootDenied:
		return r.strings.GetString(port.StringTriggerErrorScreenOffRootDenied)
	case entity.TriggerErrorCantDetectInPhoneCall:
		return r.strings.GetString(port.StringTriggerErrorCantDetectInPhoneCall)
	case entity.TriggerErrorDeviceNotConnected:
		return r.strings.GetString(port.StringTriggerErrorDeviceNotConnected)
	default:
		return string(e)
	}
}

// RenderRecordButton renders the record button or the countdown.
func (r *TriggerRenderer) RenderRecordButton(state entity.RecordTriggerState) string {
	if state.IsCountingDown() {
		return r.theme.Recording.Render(fmt.Sprintf("%s Recording… %ds", IconRecord, state.SecondsRemaining))
	}
	return r.theme.Highlight.Render(IconRecord + " Record trigger")
}

// RenderState renders the whole trigger screen without interactive hints.
func (r *TriggerRenderer) RenderState(title string, state service.TriggerState, selected int) string {
	var sb strings.Builder
	sb.WriteString(r.theme.BoxHeader.Render(IconKeyboard+" "+title) + "\n")
	sb.WriteString(r.RenderKeys(state, selected))
	sb.WriteString("\n")
	sb.WriteString(r.RenderMode(state))
	if errs := r.RenderErrors(state.Errors); errs != "" {
		sb.WriteString("\n" + errs)
	}
	return sb.String()
}

// DeviceLabel returns the user-facing name of a trigger key device.
func (r *TriggerRenderer) DeviceLabel(d entity.TriggerKeyDevice) string {
	switch d.Kind {
	case entity.TriggerKeyDeviceAny:
		return r.strings.GetString(port.StringAnyDevice)
	case entity.TriggerKeyDeviceExternal:
		return d.Name
	default:
		return r.strings.GetString(port.StringThisDevice)
	}
}

// RenderDevicePicker renders the device choices of a trigger key, marking selected.
func (r *TriggerRenderer) RenderDevicePicker(devices []entity.TriggerKeyDevice, selected entity.TriggerKeyDevice) string {
	var sb strings.Builder
	sb.WriteString(r.theme.Title.Render("Choose device") + "\n\n")
	for _, d := range devices {
		active := d == selected
		sb.WriteString("  " + r.option(r.DeviceLabel(d), active, true) + "\n")
	}
	return r.theme.Box.Render(strings.TrimSuffix(sb.String(), "\n"))
}

// RenderDndExplanation renders the explanation shown before asking for DND access.
func (r *TriggerRenderer) RenderDndExplanation() string {
	return r.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left,
		r.theme.Title.Render("Do not disturb access"),
		"",
		r.theme.Normal.Render(r.strings.GetString(port.StringDndAccessExplanation)),
	))
}
