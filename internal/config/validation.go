package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// ValidationError describes a single config validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface for a single validation error.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// Validate checks the Config for consistency. It returns every issue found
// rather than stopping at the first one.
func Validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	if cfg.DataDir == "" {
		errs = append(errs, ValidationError{Field: "dataDir", Message: "required field is empty"})
	}

	switch cfg.Theme.Default {
	case "dark", "light":
	default:
		errs = append(errs, ValidationError{
			Field:   "theme.default",
			Message: fmt.Sprintf("must be \"dark\" or \"light\", got %q", cfg.Theme.Default),
		})
	}

	if c := cfg.Grid.Columns; c != 0 && (c < 5 || c > 25) {
		errs = append(errs, ValidationError{
			Field:   "grid.columns",
			Message: fmt.Sprintf("must be 0 (auto) or between 5 and 25, got %d", c),
		})
	}

	if s := cfg.Celebration.Seconds; s < 1 || s > 60 {
		errs = append(errs, ValidationError{
			Field:   "celebration.seconds",
			Message: fmt.Sprintf("must be between 1 and 60, got %d", s),
		})
	}

	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("unknown level %q", cfg.Log.Level),
		})
	}

	return errs
}
