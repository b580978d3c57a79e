package config

import (
	"context"

	"github.com/fsnotify/fsnotify"
	"github.com/keymapper-dev/keymapper/internal/logging"
)

// Watch starts watching the config file for changes and reloads automatically.
// Listeners are only notified when the reloaded configuration differs.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	log := logging.FromContext(ctx).With().Str("component", "config").Logger()

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

		m.mu.Lock()
		previous := m.config
		if err := m.reload(); err != nil {
			m.mu.Unlock()
			log.Warn().Err(err).Msg("failed to reload config")
			return
		}
		if previous != nil && *previous == *m.config {
			m.mu.Unlock()
			return
		}
		log.Info().Msg("configuration reloaded")
		m.notifyLocked()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// Updates returns a channel signalled after every configuration change.
// The channel is closed once ctx is done.
func (m *Manager) Updates(ctx context.Context) <-chan struct{} {
	ch := make(chan struct{}, 1)

	m.mu.Lock()
	m.subs[ch] = struct{}{}
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		delete(m.subs, ch)
		close(ch)
		m.mu.Unlock()
	}()
	return ch
}

// notifyLocked signals subscribers, releases the lock, then runs callbacks.
// Must be called with m.mu held for write.
func (m *Manager) notifyLocked() {
	for ch := range m.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}

	configCopy := *m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		c := configCopy
		callback(&c)
	}
}

// reload reloads the configuration. Must be called with m.mu held for write.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return err
	}

	m.config = config
	return nil
}
