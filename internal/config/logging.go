// Package config holds ecostep's runtime settings.
package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rshade/ecostep/internal/logging"
)

// Default logging settings. Interactive sessions keep stderr quiet unless
// something goes wrong.
const (
	DefaultLogLevel  = "warn"
	DebugLogLevel    = "debug"
	DefaultLogFormat = logging.FormatConsole
)

// LoggingConfig is the logging section of the configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"  json:"level"`
	Format string `yaml:"format" json:"format"`
	Caller bool   `yaml:"caller" json:"caller"`
}

// DefaultLoggingConfig returns the logging settings used when no override applies.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:  DefaultLogLevel,
		Format: DefaultLogFormat,
	}
}

// WithDebug returns a copy switched to debug level console output with caller info.
func (lc LoggingConfig) WithDebug() LoggingConfig {
	lc.Level = DebugLogLevel
	lc.Format = logging.FormatConsole
	lc.Caller = true
	return lc
}

// Validate checks the level and format names.
func (lc LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(lc.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", lc.Level, err)
	}
	switch strings.ToLower(lc.Format) {
	case logging.FormatConsole, logging.FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid log format %q: must be %q or %q",
			lc.Format, logging.FormatConsole, logging.FormatJSON)
	}
}

// ToLoggingConfig converts LoggingConfig to logging.Config for use with the
// internal/logging package.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Caller: lc.Caller,
	}
}
