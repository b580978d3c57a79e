// Package device answers the platform adapter ports from a YAML device profile.
package device

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"gopkg.in/yaml.v3"
)

//go:embed default_profile.yaml
var defaultProfile []byte

// AccessibilityState is the state of the accessibility service that captures keys.
type AccessibilityState string

const (
	AccessibilityEnabled  AccessibilityState = "enabled"
	AccessibilityDisabled AccessibilityState = "disabled"
	AccessibilityCrashed  AccessibilityState = "crashed"
)

// ErrInvalidProfile is returned for profiles that parse but make no sense.
var ErrInvalidProfile = errors.New("invalid device profile")

// Profile describes the capability state of one Android device.
type Profile struct {
	Name           string                    `yaml:"name"`
	Sdk            int                       `yaml:"sdk"`
	Features       []entity.SystemFeature    `yaml:"features"`
	Granted        []entity.Permission       `yaml:"granted"`
	InputMethods   []entity.ImeInfo          `yaml:"input_methods"`
	Apps           map[string]entity.AppInfo `yaml:"apps"`
	VoiceAssistant bool                      `yaml:"voice_assistant"`
	Flash          []entity.CameraLens       `yaml:"flash"`
	Sounds         []string                  `yaml:"sounds"`
	Shizuku        ShizukuState              `yaml:"shizuku"`
	InputDevices   []entity.InputDevice      `yaml:"input_devices"`
	// Accessibility defaults to enabled.
	Accessibility AccessibilityState `yaml:"accessibility"`
}

type ShizukuState struct {
	Installed bool `yaml:"installed"`
	Started   bool `yaml:"started"`
}

// DefaultProfile returns the built-in profile.
func DefaultProfile() Profile {
	p, err := ParseProfile(bytes.NewReader(defaultProfile))
	if err != nil {
		panic(fmt.Sprintf("built-in device profile: %v", err))
	}
	return p
}

// DefaultProfileYAML returns the source of the built-in profile.
func DefaultProfileYAML() []byte {
	return slices.Clone(defaultProfile)
}

// LoadProfile reads the profile at path. An empty path yields DefaultProfile.
func LoadProfile(path string) (Profile, error) {
	if path == "" {
		return DefaultProfile(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Profile{}, fmt.Errorf("open device profile: %w", err)
	}
	defer f.Close()

	p, err := ParseProfile(f)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParseProfile decodes and validates a YAML profile. Unknown fields are rejected.
func ParseProfile(r io.Reader) (Profile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, fmt.Errorf("decode device profile: %w", err)
	}
	if p.Accessibility == "" {
		p.Accessibility = AccessibilityEnabled
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks the profile only refers to known permissions, lenses and states.
func (p Profile) Validate() error {
	var problems []error
	if p.Sdk < 1 {
		problems = append(problems, fmt.Errorf("sdk must be positive (got %d)", p.Sdk))
	}
	for _, perm := range p.Granted {
		if !entity.IsKnownPermission(perm) {
			problems = append(problems, fmt.Errorf("unknown permission %q", perm))
		}
	}
	for _, lens := range p.Flash {
		if lens != entity.CameraLensFront && lens != entity.CameraLensBack {
			problems = append(problems, fmt.Errorf("unknown camera lens %q", lens))
		}
	}
	chosen := 0
	for _, ime := range p.InputMethods {
		if ime.ID == "" {
			problems = append(problems, errors.New("input method without id"))
		}
		if ime.IsChosen {
			chosen++
			if !ime.IsEnabled {
				problems = append(problems, fmt.Errorf("input method %s is chosen but not enabled", ime.ID))
			}
		}
	}
	if chosen > 1 {
		problems = append(problems, fmt.Errorf("%d input methods are chosen, at most one can be", chosen))
	}
	switch p.Accessibility {
	case AccessibilityEnabled, AccessibilityDisabled, AccessibilityCrashed:
	default:
		problems = append(problems, fmt.Errorf("unknown accessibility state %q", p.Accessibility))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, errors.Join(problems...))
	}
	return nil
}

// clone deep-copies the slices and map so a Device never shares them with callers.
func (p Profile) clone() Profile {
	c := p
	c.Features = slices.Clone(p.Features)
	c.Granted = slices.Clone(p.Granted)
	c.InputMethods = slices.Clone(p.InputMethods)
	c.Flash = slices.Clone(p.Flash)
	c.Sounds = slices.Clone(p.Sounds)
	c.InputDevices = slices.Clone(p.InputDevices)
	c.Apps = maps.Clone(p.Apps)
	return c
}
