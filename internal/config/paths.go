package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// SearchPaths lists the directories scanned for config.json, in order: the
// working directory, then $XDG_CONFIG_HOME/milestone (or ~/.config/milestone).
func SearchPaths() []string {
	paths := []string{"."}

	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		if home, err := os.UserHomeDir(); err == nil {
			base = filepath.Join(home, ".config")
		}
	}
	if base != "" {
		paths = append(paths, filepath.Join(base, "milestone"))
	}
	return paths
}

// EnsureDirectories creates the data directory and the log file's parent if
// they do not already exist.
func EnsureDirectories(cfg *Config) error {
	dirs := []string{cfg.DataDir}
	if cfg.Log.File != "" {
		dirs = append(dirs, filepath.Dir(cfg.Log.File))
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}
	return nil
}
