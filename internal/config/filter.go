package config

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"

	"github.com/lgbarn/pgn-planes-go/internal/errors"
)

// FilterConfig holds settings for selecting games during conversion.
type FilterConfig struct {
	// MinElo requires both players to be rated at least this much.
	MinElo int

	// Since and Until bound the game start time (inclusive).
	Since time.Time
	Until time.Time

	// Termination, when set, must equal the Termination tag.
	Termination string
}

// NewFilterConfig creates a FilterConfig with default values.
// All fields use Go zero values - filters are disabled by default.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// Active reports whether any filter is set.
func (f *FilterConfig) Active() bool {
	return f.MinElo > 0 || !f.Since.IsZero() || !f.Until.IsZero() || f.Termination != ""
}

// Validate checks that the filter configuration is valid.
func (f *FilterConfig) Validate() error {
	if f.MinElo < 0 {
		return fmt.Errorf("minimum elo (%d) is negative: %w", f.MinElo, errors.ErrInvalidConfig)
	}
	if !f.Since.IsZero() && !f.Until.IsZero() && f.Since.After(f.Until) {
		return fmt.Errorf("since (%s) is after until (%s): %w",
			f.Since.Format(time.DateOnly), f.Until.Format(time.DateOnly), errors.ErrInvalidConfig)
	}
	return nil
}

// ParseDate reads a date in any layout dateparse understands, in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: %v: %w", s, err, errors.ErrInvalidConfig)
	}
	return t, nil
}
