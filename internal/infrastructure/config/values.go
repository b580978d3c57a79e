package config

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"github.com/spf13/viper"
)

// ErrUnknownKey is returned by Set for a key missing from the schema.
var ErrUnknownKey = errors.New("unknown configuration key")

// Values returns the effective value of every schema key, formatted for display.
func (m *Manager) Values() map[string]string {
	v := m.snapshot()

	values := make(map[string]string)
	for _, key := range NewSchemaProvider().GetSchema() {
		values[key.Key] = fmt.Sprint(v.Get(key.Key))
	}
	return values
}

// Set parses raw as the value of key and saves the result.
func (m *Manager) Set(ctx context.Context, key, raw string) error {
	known := slices.ContainsFunc(NewSchemaProvider().GetSchema(), func(k entity.ConfigKeyInfo) bool {
		return k.Key == key
	})
	if !known {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	v := m.snapshot()
	v.Set(key, raw)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("invalid value %q for %s: %w", raw, key, err)
	}
	return m.Save(ctx, cfg)
}

// snapshot copies the current configuration into a standalone viper instance.
func (m *Manager) snapshot() *viper.Viper {
	cfg := m.Get()

	v := viper.New()
	v.Set("logging.level", cfg.Logging.Level)
	v.Set("logging.format", cfg.Logging.Format)
	v.Set("logging.file", cfg.Logging.File)
	v.Set("display.show_device_descriptors", cfg.Display.ShowDeviceDescriptors)
	v.Set("record.countdown_seconds", cfg.Record.CountdownSeconds)
	v.Set("trigger.never_show_dnd_error", cfg.Trigger.NeverShowDndError)
	v.Set("device.profile", cfg.Device.Profile)
	v.Set("keymaps.file", cfg.KeyMaps.File)
	return v
}
