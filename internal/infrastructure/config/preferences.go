package config

import (
	"context"

	"github.com/keymapper-dev/keymapper/internal/application/port"
)

var _ port.TriggerPreferences = (*Manager)(nil)

// ShowDeviceDescriptors reports display.show_device_descriptors.
func (m *Manager) ShowDeviceDescriptors() bool {
	return m.Get().Display.ShowDeviceDescriptors
}

// NeverShowDndError reports trigger.never_show_dnd_error.
func (m *Manager) NeverShowDndError() bool {
	return m.Get().Trigger.NeverShowDndError
}

// SetNeverShowDndError persists trigger.never_show_dnd_error.
func (m *Manager) SetNeverShowDndError(never bool) error {
	cfg := m.Get()
	cfg.Trigger.NeverShowDndError = never
	return m.Save(context.Background(), cfg)
}

// RecordCountdownSeconds reports record.countdown_seconds.
func (m *Manager) RecordCountdownSeconds() int {
	return m.Get().Record.CountdownSeconds
}
