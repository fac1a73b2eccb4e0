package file

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/astrolabe/internal/logger"
)

// Watch reloads the configuration whenever the file changes and calls
// onChange after each successful reload. The directory is watched rather
// than the file so that editors which replace the file on save are seen.
// Watch blocks until ctx is cancelled.
func (s *ConfigStore) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logger.Debug("Watching %s for changes", s.path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !s.isConfigChange(event) {
				continue
			}
			if err := s.Reload(); err != nil {
				logger.Warn("Reloading %s failed: %v", s.path, err)
				continue
			}
			logger.Info("Configuration reloaded from %s", s.path)
			if onChange != nil {
				onChange()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Config watcher error: %v", err)
		}
	}
}

// isConfigChange reports whether an event touched the config file's content.
func (s *ConfigStore) isConfigChange(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(s.path) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
