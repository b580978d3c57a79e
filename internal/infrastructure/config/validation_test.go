package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "json logs", mutate: func(c *Config) { c.Logging.Format = "json" }},
		{name: "shortest countdown", mutate: func(c *Config) { c.Record.CountdownSeconds = 1 }},
		{name: "longest countdown", mutate: func(c *Config) { c.Record.CountdownSeconds = 60 }},
		{name: "yml key maps", mutate: func(c *Config) { c.KeyMaps.File = "/tmp/maps.YML" }},
		{name: "unknown level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "unknown format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
		{name: "zero countdown", mutate: func(c *Config) { c.Record.CountdownSeconds = 0 }, wantErr: "record.countdown_seconds"},
		{name: "countdown too long", mutate: func(c *Config) { c.Record.CountdownSeconds = 61 }, wantErr: "record.countdown_seconds"},
		{name: "json key maps", mutate: func(c *Config) { c.KeyMaps.File = "maps.json" }, wantErr: "keymaps.file"},
		{name: "profile without extension", mutate: func(c *Config) { c.Device.Profile = "pixel" }, wantErr: "device.profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr != "" {
				require.ErrorIs(t, err, ErrInvalidConfig)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateConfig_ReportsEveryError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Format = "xml"
	cfg.Record.CountdownSeconds = -1

	err := validateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.format must be one of: console, json (got: xml)")
	assert.Contains(t, err.Error(), "record.countdown_seconds")

	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "logging.format", fieldErr.Key)
}
