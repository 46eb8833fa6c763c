package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"adpilot/internal/logging"
)

// Watch reloads the logging configuration whenever the workspace config file
// changes, and invokes onChange (may be nil) with the freshly loaded config.
// It blocks until the watcher fails or stop is closed.
func Watch(workspace string, stop <-chan struct{}, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on save and
	// a file watch dies with the old inode.
	configPath := Path(workspace)
	if err := watcher.Add(filepath.Dir(configPath)); err != nil {
		return fmt.Errorf("failed to watch config directory: %w", err)
	}

	for {
		select {
		case <-stop:
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != configPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := logging.ReloadConfig(); err != nil {
				logging.BootError("config reload failed: %v", err)
				continue
			}
			logging.Boot("config reloaded after change to %s", event.Name)
			if onChange != nil {
				cfg, err := Load(workspace)
				if err != nil {
					logging.BootError("config reload parse failed: %v", err)
					continue
				}
				onChange(cfg)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.BootError("config watcher error: %v", err)
		}
	}
}
