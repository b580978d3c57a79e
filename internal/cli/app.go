// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/keymapper-dev/keymapper/internal/application/usecase"
	"github.com/keymapper-dev/keymapper/internal/cli/styles"
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"github.com/keymapper-dev/keymapper/internal/domain/repository"
	"github.com/keymapper-dev/keymapper/internal/infrastructure/cache"
	"github.com/keymapper-dev/keymapper/internal/infrastructure/config"
	"github.com/keymapper-dev/keymapper/internal/infrastructure/device"
	"github.com/keymapper-dev/keymapper/internal/infrastructure/keymapfile"
	"github.com/keymapper-dev/keymapper/internal/infrastructure/persistence/memory"
	"github.com/keymapper-dev/keymapper/internal/infrastructure/resources"
	"github.com/keymapper-dev/keymapper/internal/logging"
)

const (
	logMaxSizeMB  = 5
	logMaxBackups = 3

	// actionErrorsCacheSize bounds the memoised action error results, one per
	// distinct action list.
	actionErrorsCacheSize = 256
)

// Options selects the files a CLI session works on. Empty paths fall back to
// the configuration, then to the XDG locations.
type Options struct {
	ConfigFile  string
	ProfileFile string
	KeyMapsFile string

	// Interactive sessions log to a file so log lines don't corrupt the TUI.
	Interactive bool
}

// App holds CLI dependencies.
type App struct {
	Config  *config.Manager
	Theme   *styles.Theme
	Strings *resources.Strings
	Device  *device.Device
	KeyMaps repository.KeyMapRepository

	KeyMapsFile string
	// ProfileFile is empty when the built-in profile is used.
	ProfileFile string

	// Use cases
	ActionErrorsUC *usecase.GetActionErrorsUseCase
	ActionErrors   *usecase.CachedActionErrors
	DisplayUC      *usecase.DisplayKeyMapUseCase
	CheckUC        *usecase.CheckKeyMapsUseCase
	ListActionsUC  *usecase.ListActionsUseCase
	ConfigSchemaUC *usecase.GetConfigSchemaUseCase

	actionErrorsCache *cache.LRU[string, map[string]*entity.ActionError]

	// Context with logger
	ctx        context.Context
	cancel     context.CancelFunc
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	var managerOpts []config.Option
	if opts.ConfigFile != "" {
		managerOpts = append(managerOpts, config.WithConfigFile(opts.ConfigFile))
	}
	mgr, err := config.NewManager(managerOpts...)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	loadErr := mgr.Load()
	cfg := mgr.Get()

	logger, logCleanup, err := newLogger(cfg, opts.Interactive)
	if err != nil {
		return nil, err
	}
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	}
	ctx, cancel := context.WithCancel(logging.WithContext(context.Background(), logger))

	app := &App{
		Config:     mgr,
		Theme:      styles.NewTheme(),
		Strings:    resources.English(),
		ctx:        ctx,
		cancel:     cancel,
		logCleanup: logCleanup,
	}

	app.ProfileFile = firstNonEmpty(opts.ProfileFile, cfg.Device.Profile)
	profile := device.DefaultProfile()
	if app.ProfileFile != "" {
		if profile, err = device.LoadProfile(app.ProfileFile); err != nil {
			app.Close()
			return nil, fmt.Errorf("load device profile: %w", err)
		}
	}
	app.Device = device.New(profile)

	app.KeyMapsFile = opts.KeyMapsFile
	if app.KeyMapsFile == "" {
		if app.KeyMapsFile, err = mgr.KeyMapsFile(); err != nil {
			app.Close()
			return nil, fmt.Errorf("resolve key maps file: %w", err)
		}
	}
	keyMaps, err := keymapfile.Load(app.KeyMapsFile)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("load key maps: %w", err)
	}
	app.KeyMaps = memory.NewKeyMapRepository(keyMaps...)

	logger.Debug().
		Str("config", mgr.GetConfigFile()).
		Str("keymaps", app.KeyMapsFile).
		Str("profile", app.ProfileFile).
		Int("key_maps", len(keyMaps)).
		Msg("cli app ready")

	app.ActionErrorsUC = usecase.NewGetActionErrorsUseCase(app.Ports())
	app.actionErrorsCache = cache.NewLRU[string, map[string]*entity.ActionError](actionErrorsCacheSize)
	app.ActionErrors = usecase.NewCachedActionErrors(app.ActionErrorsUC, app.actionErrorsCache)
	app.DisplayUC = usecase.NewDisplayKeyMapUseCase(app.Ports(), app.Device.InputDevices(), mgr)
	app.CheckUC = usecase.NewCheckKeyMapsUseCase(app.KeyMaps, app.ActionErrors, app.DisplayUC)
	app.ListActionsUC = usecase.NewListActionsUseCase(app.ActionErrorsUC)
	app.ConfigSchemaUC = usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())

	return app, nil
}

func newLogger(cfg *config.Config, interactive bool) (zerolog.Logger, func(), error) {
	level, ok := logging.ParseLevel(cfg.Logging.Level)
	if !ok {
		level = zerolog.InfoLevel
	}
	logCfg := logging.ApplyEnv(logging.Config{Level: level, Format: cfg.Logging.Format, TimeFormat: "15:04:05"})

	path := cfg.Logging.File
	if path == "" && interactive {
		var err error
		if path, err = config.GetLogFile(); err != nil {
			return zerolog.Logger{}, nil, fmt.Errorf("resolve log file: %w", err)
		}
	}
	if path == "" {
		logCfg.Output = os.Stderr
		return logging.New(logCfg), func() {}, nil
	}

	w, err := logging.NewFileWriter(path, logMaxSizeMB, logMaxBackups)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("open log file: %w", err)
	}
	logCfg.Output = w
	return logging.New(logCfg), func() { _ = w.Close() }, nil
}

// Ports returns the platform capability ports of the device.
func (a *App) Ports() usecase.CapabilityPorts {
	return usecase.CapabilityPorts{
		Permissions:  a.Device.Permissions(),
		InputMethods: a.Device.InputMethods(),
		Packages:     a.Device.Packages(),
		Camera:       a.Device.Camera(),
		Sounds:       a.Device.Sounds(),
		Shizuku:      a.Device.Shizuku(),
		System:       a.Device.System(),
	}
}

// NewTriggerViewModel wires the trigger editor for one session.
func (a *App) NewTriggerViewModel() (*usecase.TriggerViewModel, *usecase.ConfigKeyMapUseCase) {
	configUC := usecase.NewConfigKeyMapUseCase(a.KeyMaps, a.Device.InputDevices())
	recordUC := usecase.NewRecordTriggerUseCase(a.Device.KeyCapture(), a.Config)
	return usecase.NewTriggerViewModel(configUC, a.DisplayUC, recordUC, a.Strings), configUC
}

// Watch reloads the configuration and the device profile when their files change.
// Cached action errors are dropped whenever a capability changes.
func (a *App) Watch(ctx context.Context) error {
	if err := a.Config.Watch(ctx); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	if a.ProfileFile != "" {
		if err := device.WatchProfile(ctx, a.Device, a.ProfileFile); err != nil {
			return err
		}
	}
	a.ActionErrors.Start(ctx, nil)
	return nil
}

// SaveKeyMaps writes every stored key map back to the key maps file.
func (a *App) SaveKeyMaps(ctx context.Context) error {
	stored, err := a.KeyMaps.List(ctx)
	if err != nil {
		return fmt.Errorf("list key maps: %w", err)
	}
	keyMaps := make([]entity.KeyMap, len(stored))
	for i, km := range stored {
		keyMaps[i] = *km
	}
	if err := keymapfile.Save(a.KeyMapsFile, keyMaps); err != nil {
		return err
	}
	logging.FromContext(ctx).Info().Str("path", a.KeyMapsFile).Int("key_maps", len(keyMaps)).Msg("key maps saved")
	return nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.actionErrorsCache != nil {
		stats := a.actionErrorsCache.Stats()
		logging.FromContext(a.ctx).Debug().
			Uint64("hits", stats.Hits).
			Uint64("misses", stats.Misses).
			Uint64("evictions", stats.Evictions).
			Msg("action error cache")
	}
	if a.cancel != nil {
		a.cancel()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
