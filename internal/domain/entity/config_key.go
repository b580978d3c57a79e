package entity

// ConfigKeyInfo describes one configuration key for the config listing and schema output.
type ConfigKeyInfo struct {
	// Key is the dotted path, e.g. "record.countdown_seconds".
	Key string `json:"key"`

	// Type is the Go type name of the value.
	Type string `json:"type"`

	Default     string `json:"default"`
	Description string `json:"description"`

	// Values lists accepted values for enum-like strings.
	Values []string `json:"values,omitempty"`

	// Range is the accepted numeric range, e.g. "1-60".
	Range string `json:"range,omitempty"`

	Section string `json:"section"`
}
