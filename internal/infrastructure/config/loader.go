package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/keymapper-dev/keymapper/internal/logging"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
// It also serves the trigger preferences stored in the config file.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	subs       map[chan struct{}]struct{}
	watching   bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithConfigFile reads and writes path instead of the XDG config file.
func WithConfigFile(path string) Option {
	return func(m *Manager) {
		m.configFile = path
	}
}

// NewManager creates a new configuration manager.
func NewManager(opts ...Option) (*Manager, error) {
	m := &Manager{
		viper: viper.New(),
		subs:  make(map[chan struct{}]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}

	v := m.viper
	v.SetConfigType("toml")
	if m.configFile != "" {
		v.SetConfigFile(m.configFile)
	} else {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.SetConfigName("config")
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	// KEYMAPPER_RECORD_COUNTDOWN_SECONDS overrides record.countdown_seconds and so on.
	v.SetEnvPrefix("KEYMAPPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "KEYMAPPER_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind KEYMAPPER_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "KEYMAPPER_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind KEYMAPPER_LOG_FORMAT: %w", err)
	}

	return m, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.configFile == "" {
		if err := EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to ensure directories: %w", err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.path(), err)
	}

	if err := m.createDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create default config at %s: %w\nTry creating the directory manually or check permissions", m.path(), err)
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read newly created config file: %w", err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}
	config.Logging.File = strings.TrimSpace(config.Logging.File)
	config.Device.Profile = strings.TrimSpace(config.Device.Profile)
	config.KeyMaps.File = strings.TrimSpace(config.KeyMaps.File)
}

// Get returns a copy of the current configuration, or the defaults before Load.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg, writes it to the config file and notifies listeners.
func (m *Manager) Save(ctx context.Context, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	m.mu.Lock()

	normalized := *cfg
	normalizeConfig(&normalized)
	if err := validateConfig(&normalized); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := WriteConfigOrdered(&normalized, m.path()); err != nil {
		m.mu.Unlock()
		return err
	}

	// Keep viper in sync so a later reload compares against what was written.
	if err := m.viper.ReadInConfig(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to sync viper config after save")
	}

	changed := m.config == nil || *m.config != normalized
	m.config = &normalized
	if !changed {
		m.mu.Unlock()
		return nil
	}
	m.notifyLocked()
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.path()
}

func (m *Manager) path() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	if m.configFile != "" {
		return m.configFile
	}
	path, err := GetConfigFile()
	if err != nil {
		return configName
	}
	return path
}

// createDefaultConfig writes the defaults and the JSON schema next to them.
func (m *Manager) createDefaultConfig() error {
	configFile := m.path()
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	m.viper.SetConfigFile(configFile)

	if err := WriteSchemaFile(filepath.Dir(configFile)); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("display.show_device_descriptors", defaults.Display.ShowDeviceDescriptors)
	m.viper.SetDefault("record.countdown_seconds", defaults.Record.CountdownSeconds)
	m.viper.SetDefault("trigger.never_show_dnd_error", defaults.Trigger.NeverShowDndError)
	m.viper.SetDefault("device.profile", defaults.Device.Profile)
	m.viper.SetDefault("keymaps.file", defaults.KeyMaps.File)
}

// KeyMapsFile resolves the key map document path.
func (m *Manager) KeyMapsFile() (string, error) {
	if file := m.Get().KeyMaps.File; file != "" {
		return file, nil
	}
	return GetKeyMapsFile()
}
