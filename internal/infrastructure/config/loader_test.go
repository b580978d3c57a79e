package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, content string) (*Manager, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), filePerm))
	}
	mgr, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	return mgr, path
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
	assert.Equal(t, 5, mgr.viper.GetInt("record.countdown_seconds"))
	assert.False(t, mgr.viper.GetBool("trigger.never_show_dnd_error"))
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	mgr, path := newTestManager(t, "")

	require.NoError(t, mgr.Load())

	assert.Equal(t, DefaultConfig(), mgr.Get())
	assert.FileExists(t, path)
	assert.FileExists(t, filepath.Join(filepath.Dir(path), schemaName))
}

func TestManager_LoadReadsFile(t *testing.T) {
	mgr, _ := newTestManager(t, `
[logging]
level = "DEBUG"
format = "json"

[display]
show_device_descriptors = true

[record]
countdown_seconds = 3

[device]
profile = " /etc/keymapper/pixel.yaml "
`)

	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/etc/keymapper/pixel.yaml", cfg.Device.Profile)
	assert.True(t, mgr.ShowDeviceDescriptors())
	assert.Equal(t, 3, mgr.RecordCountdownSeconds())
	assert.False(t, mgr.NeverShowDndError())
}

func TestManager_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("KEYMAPPER_RECORD_COUNTDOWN_SECONDS", "9")
	t.Setenv("KEYMAPPER_LOG_LEVEL", "warn")
	mgr, _ := newTestManager(t, "[record]\ncountdown_seconds = 3\n")

	require.NoError(t, mgr.Load())

	assert.Equal(t, 9, mgr.RecordCountdownSeconds())
	assert.Equal(t, "warn", mgr.Get().Logging.Level)
}

func TestManager_LoadRejectsInvalidConfig(t *testing.T) {
	mgr, _ := newTestManager(t, "[record]\ncountdown_seconds = 0\n")

	err := mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "record.countdown_seconds")
}

func TestManager_LoadRejectsMalformedFile(t *testing.T) {
	mgr, _ := newTestManager(t, "[record\ncountdown_seconds = ")

	assert.Error(t, mgr.Load())
}

func TestManager_GetBeforeLoadReturnsDefaults(t *testing.T) {
	mgr, _ := newTestManager(t, "")

	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestManager_SaveWritesAndNotifies(t *testing.T) {
	mgr, path := newTestManager(t, "")
	require.NoError(t, mgr.Load())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	updates := mgr.Updates(ctx)

	var seen *Config
	mgr.OnConfigChange(func(c *Config) { seen = c })

	require.NoError(t, mgr.SetNeverShowDndError(true))

	assert.True(t, mgr.NeverShowDndError())
	require.NotNil(t, seen)
	assert.True(t, seen.Trigger.NeverShowDndError)
	select {
	case <-updates:
	case <-time.After(time.Second):
		t.Fatal("expected an update after saving")
	}

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "never_show_dnd_error = true")

	reloaded, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.True(t, reloaded.NeverShowDndError())
}

func TestManager_SaveUnchangedDoesNotNotify(t *testing.T) {
	mgr, _ := newTestManager(t, "")
	require.NoError(t, mgr.Load())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	updates := mgr.Updates(ctx)

	require.NoError(t, mgr.Save(ctx, mgr.Get()))

	select {
	case <-updates:
		t.Fatal("saving the same configuration must not notify")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestManager_SaveRejectsInvalidConfig(t *testing.T) {
	mgr, path := newTestManager(t, "")
	require.NoError(t, mgr.Load())
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	cfg := mgr.Get()
	cfg.Logging.Format = "xml"

	require.Error(t, mgr.Save(context.Background(), cfg))
	require.Error(t, mgr.Save(context.Background(), nil))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, "console", mgr.Get().Logging.Format)
}

func TestManager_WatchReloadsExternalChanges(t *testing.T) {
	mgr, path := newTestManager(t, "")
	require.NoError(t, mgr.Load())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, mgr.Watch(ctx))
	require.NoError(t, mgr.Watch(ctx))
	updates := mgr.Updates(ctx)

	cfg := DefaultConfig()
	cfg.Record.CountdownSeconds = 12
	require.NoError(t, WriteConfigOrdered(cfg, path))

	select {
	case <-updates:
	case <-time.After(3 * time.Second):
		t.Fatal("expected an update after an external edit")
	}
	assert.Equal(t, 12, mgr.RecordCountdownSeconds())
}

func TestManager_KeyMapsFile(t *testing.T) {
	mgr, _ := newTestManager(t, "[keymaps]\nfile = \"/tmp/maps.yaml\"\n")
	require.NoError(t, mgr.Load())

	file, err := mgr.KeyMapsFile()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/maps.yaml", file)
}

func TestUpdates_ClosedWhenContextDone(t *testing.T) {
	mgr, _ := newTestManager(t, "")
	ctx, cancel := context.WithCancel(context.Background())

	updates := mgr.Updates(ctx)
	cancel()

	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-updates:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}
