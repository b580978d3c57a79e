package config

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration for keymapper.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Display controls how triggers are rendered.
	Display DisplayConfig `mapstructure:"display" toml:"display" json:"display"`
	// Record controls trigger recording sessions.
	Record  RecordConfig  `mapstructure:"record" toml:"record" json:"record"`
	Trigger TriggerConfig `mapstructure:"trigger" toml:"trigger" json:"trigger"`
	// Device selects the device profile the platform adapters answer from.
	Device  DeviceConfig  `mapstructure:"device" toml:"device" json:"device"`
	KeyMaps KeyMapsConfig `mapstructure:"keymaps" toml:"keymaps" json:"keymaps"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File receives log lines instead of stderr when set.
	// Interactive commands fall back to the state directory log file.
	File string `mapstructure:"file" toml:"file" json:"file,omitempty"`
}

type DisplayConfig struct {
	// ShowDeviceDescriptors appends a short device descriptor to external device names.
	ShowDeviceDescriptors bool `mapstructure:"show_device_descriptors" toml:"show_device_descriptors" json:"show_device_descriptors"`
}

type RecordConfig struct {
	// CountdownSeconds is how long a recording session listens for keys.
	CountdownSeconds int `mapstructure:"countdown_seconds" toml:"countdown_seconds" json:"countdown_seconds" jsonschema:"minimum=1,maximum=60"`
}

type TriggerConfig struct {
	// NeverShowDndError hides the do-not-disturb access trigger error.
	NeverShowDndError bool `mapstructure:"never_show_dnd_error" toml:"never_show_dnd_error" json:"never_show_dnd_error"`
}

type DeviceConfig struct {
	// Profile is the path of a YAML device profile. Empty uses the built-in profile.
	Profile string `mapstructure:"profile" toml:"profile" json:"profile,omitempty"`
}

type KeyMapsConfig struct {
	// File is the key map document. Empty uses keymaps.yaml in the data directory.
	File string `mapstructure:"file" toml:"file" json:"file,omitempty"`
}
