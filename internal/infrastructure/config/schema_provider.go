package config

import (
	"strconv"

	"github.com/keymapper-dev/keymapper/internal/application/port"
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionLogging = "Logging"
	SectionDisplay = "Display"
	SectionRecord  = "Record"
	SectionTrigger = "Trigger"
	SectionDevice  = "Device"
	SectionKeyMaps = "Key Maps"
)

var _ port.ConfigSchemaProvider = (*SchemaProvider)(nil)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (*SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "disabled"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.file",
			Type:        "string",
			Default:     defaults.Logging.File,
			Description: "Write logs to this file instead of stderr",
			Section:     SectionLogging,
		},
		{
			Key:         "display.show_device_descriptors",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Display.ShowDeviceDescriptors),
			Description: "Append a short descriptor to external device names",
			Section:     SectionDisplay,
		},
		{
			Key:         "record.countdown_seconds",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Record.CountdownSeconds),
			Description: "Length of a trigger recording session",
			Range:       strconv.Itoa(minCountdownSeconds) + "-" + strconv.Itoa(maxCountdownSeconds),
			Section:     SectionRecord,
		},
		{
			Key:         "trigger.never_show_dnd_error",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Trigger.NeverShowDndError),
			Description: "Hide the do-not-disturb access trigger error",
			Section:     SectionTrigger,
		},
		{
			Key:         "device.profile",
			Type:        "string",
			Default:     defaults.Device.Profile,
			Description: "YAML device profile the capability checks run against (empty uses the built-in profile)",
			Section:     SectionDevice,
		},
		{
			Key:         "keymaps.file",
			Type:        "string",
			Default:     defaults.KeyMaps.File,
			Description: "Key map document (empty uses keymaps.yaml in the data directory)",
			Section:     SectionKeyMaps,
		},
	}
}
