// Package config provides configuration for the pgn-planes tools.
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/pgn-planes-go/internal/errors"
)

// Log output formats.
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// Config holds all program configuration.
type Config struct {
	// Logging
	LogFile   io.Writer
	LogLevel  string
	LogFormat string

	Convert ConvertConfig
	Filter  FilterConfig
	Grid    GridConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		LogFile:   os.Stderr,
		LogLevel:  zerolog.LevelInfoValue,
		LogFormat: LogFormatConsole,
		Convert:   *NewConvertConfig(),
		Filter:    *NewFilterConfig(),
		Grid:      *NewGridConfig(),
	}
}

// SetLogOutput sets the log destination.
func (c *Config) SetLogOutput(w io.Writer) {
	c.LogFile = w
}

// Validate checks every sub-config.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, errors.ErrInvalidConfig)
	}
	switch c.LogFormat {
	case LogFormatJSON, LogFormatConsole:
	default:
		return fmt.Errorf("log format %q: %w", c.LogFormat, errors.ErrInvalidConfig)
	}
	if err := c.Convert.Validate(); err != nil {
		return err
	}
	if err := c.Filter.Validate(); err != nil {
		return err
	}
	return c.Grid.Validate()
}

// Logger builds the zerolog logger described by the config.
func (c *Config) Logger() zerolog.Logger {
	w := c.LogFile
	if w == nil {
		w = os.Stderr
	}
	if c.LogFormat == LogFormatConsole {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	}
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
