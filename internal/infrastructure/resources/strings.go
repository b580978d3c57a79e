// Package resources serves the user-facing strings of the application.
package resources

import (
	_ "embed"
	"fmt"

	"github.com/keymapper-dev/keymapper/internal/application/port"
	"gopkg.in/yaml.v3"
)

//go:embed strings_en.yaml
var englishStrings []byte

var _ port.ResourceProvider = (*Strings)(nil)

// Strings is a string table keyed by port.StringKey.
type Strings struct {
	table map[port.StringKey]string
}

// English returns the built-in English strings.
func English() *Strings {
	s, err := Parse(englishStrings)
	if err != nil {
		panic(fmt.Sprintf("built-in strings: %v", err))
	}
	return s
}

// Parse reads a YAML mapping of string keys to text.
func Parse(data []byte) (*Strings, error) {
	table := make(map[port.StringKey]string)
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse strings: %w", err)
	}
	return &Strings{table: table}, nil
}

// GetString returns the text for key, or the key itself when it is missing.
func (s *Strings) GetString(key port.StringKey) string {
	if text, ok := s.table[key]; ok {
		return text
	}
	return string(key)
}
