package device

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/keymapper-dev/keymapper/internal/logging"
)

// WatchProfile reloads the profile at path into d whenever the file changes.
// The directory is watched so editors that replace the file are picked up too.
// Invalid profiles are logged and ignored. Watching stops when ctx is done.
func WatchProfile(ctx context.Context, d *Device, path string) error {
	path = filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create profile watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	log := logging.FromContext(ctx).With().Str("component", "device").Str("profile", path).Logger()

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path || !event.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				p, err := LoadProfile(path)
				if err != nil {
					log.Warn().Err(err).Msg("ignoring device profile change")
					continue
				}
				d.Replace(p)
				log.Info().Str("name", p.Name).Msg("device profile reloaded")
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("device profile watcher error")
			}
		}
	}()
	return nil
}
