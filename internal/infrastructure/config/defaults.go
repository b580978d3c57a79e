package config

// Default configuration constants
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	// Record defaults
	defaultCountdownSeconds = 5 // seconds
	minCountdownSeconds     = 1
	maxCountdownSeconds     = 60
)

// DefaultConfig returns the configuration used for keys absent from the file.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Display: DisplayConfig{
			ShowDeviceDescriptors: false,
		},
		Record: RecordConfig{
			CountdownSeconds: defaultCountdownSeconds,
		},
		Trigger: TriggerConfig{
			NeverShowDndError: false,
		},
	}
}
