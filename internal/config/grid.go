package config

import (
	"fmt"

	"github.com/lgbarn/pgn-planes-go/internal/errors"
	"github.com/lgbarn/pgn-planes-go/internal/grid"
)

// GridConfig holds settings for position encoding.
type GridConfig struct {
	// PlaneFile is an optional JSON file of plane switches.
	PlaneFile string

	Planes grid.PlaneConfig

	// Workers is the number of concurrent encoders.
	Workers int

	// IncludeTensor adds the raw tensor values to JSON output.
	IncludeTensor bool
}

// NewGridConfig creates a GridConfig with every plane enabled.
func NewGridConfig() *GridConfig {
	return &GridConfig{
		Planes:  grid.DefaultPlaneConfig(),
		Workers: 1,
	}
}

// Load reads PlaneFile, if set, into Planes.
func (g *GridConfig) Load() error {
	if g.PlaneFile == "" {
		return nil
	}
	planes, err := grid.LoadPlaneConfigFile(g.PlaneFile)
	if err != nil {
		return err
	}
	g.Planes = planes
	return nil
}

// Validate checks the grid settings.
func (g *GridConfig) Validate() error {
	if g.Workers < 1 {
		return fmt.Errorf("grid workers must be positive, got %d: %w", g.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
