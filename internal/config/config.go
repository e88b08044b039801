package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the effective configuration for the milestone board, assembled
// from config.json, MILESTONE_* environment variables and CLI flags.
type Config struct {
	DataDir     string            `json:"dataDir" mapstructure:"dataDir"`
	Theme       ThemeConfig       `json:"theme" mapstructure:"theme"`
	Grid        GridConfig        `json:"grid" mapstructure:"grid"`
	Celebration CelebrationConfig `json:"celebration" mapstructure:"celebration"`
	Log         LogConfig         `json:"log" mapstructure:"log"`
}

// ThemeConfig picks the palette used before any preference is stored.
type ThemeConfig struct {
	Default string `json:"default" mapstructure:"default"` // "dark" or "light"
}

// GridConfig controls the cell layout. Columns == 0 derives the column count
// from the terminal width.
type GridConfig struct {
	Columns int `json:"columns" mapstructure:"columns"`
}

// CelebrationConfig sets how long the celebration stays on screen.
type CelebrationConfig struct {
	Seconds int `json:"seconds" mapstructure:"seconds"`
}

// LogConfig controls the zap log sink. The TUI owns the terminal, so logs go
// to a file.
type LogConfig struct {
	File  string `json:"file" mapstructure:"file"`
	Level string `json:"level" mapstructure:"level"`
}

// EnvPrefix is prepended to environment overrides, e.g. MILESTONE_DATADIR.
const EnvPrefix = "MILESTONE"

// EnvKeyReplacer maps nested keys to environment names, so celebration.seconds
// is read from MILESTONE_CELEBRATION_SECONDS.
func EnvKeyReplacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}

// DefaultDataDir returns ~/.local/share/milestone, or ./.milestone when the
// home directory cannot be resolved.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".milestone"
	}
	return filepath.Join(home, ".local", "share", "milestone")
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("dataDir", DefaultDataDir())
	v.SetDefault("theme.default", "light")
	v.SetDefault("grid.columns", 0)
	v.SetDefault("celebration.seconds", 3)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// Load unmarshals v into a Config and fills derived paths.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir()
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(cfg.DataDir, "milestone.log")
	}
	return &cfg, nil
}

// DarkByDefault reports whether the configured fallback theme is dark.
func (c *Config) DarkByDefault() bool {
	return c.Theme.Default == "dark"
}

// CelebrationDuration is the visible window of one celebration.
func (c *Config) CelebrationDuration() time.Duration {
	if c.Celebration.Seconds <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.Celebration.Seconds) * time.Second
}
