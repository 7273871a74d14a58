package config

import (
	"fmt"

	"github.com/lgbarn/pgn-planes-go/internal/errors"
	"github.com/lgbarn/pgn-planes-go/internal/output"
	"github.com/lgbarn/pgn-planes-go/internal/pgn"
)

// Defaults for archive conversion.
const (
	DefaultGamesPerFile = 10000
	DefaultQueueSize    = 1024
)

// ConvertConfig holds settings for converting a PGN archive into record
// files.
type ConvertConfig struct {
	// Input is a path, optionally .zst or .bz2, or an s3://bucket/key URL.
	Input string

	// OutputDir must exist; files are named 0.csv.gz, 1.csv.gz, ...
	OutputDir string

	// GamesPerFile caps the records per output file.
	GamesPerFile int

	// ChunkSize is the size of a single read from the decompressed input.
	ChunkSize int

	// QueueSize bounds the channels between pipeline stages.
	QueueSize int

	// Separator is the CSV field separator.
	Separator rune

	Format   output.Format
	Strategy pgn.Strategy
}

// NewConvertConfig creates a ConvertConfig with default values.
func NewConvertConfig() *ConvertConfig {
	return &ConvertConfig{
		OutputDir:    ".",
		GamesPerFile: DefaultGamesPerFile,
		ChunkSize:    pgn.DefaultChunkSize,
		QueueSize:    DefaultQueueSize,
		Separator:    ',',
		Format:       output.CSVGzip,
		Strategy:     pgn.HeaderScan,
	}
}

// Validate checks the conversion settings.
func (c *ConvertConfig) Validate() error {
	if c.GamesPerFile < 1 {
		return fmt.Errorf("games per file must be positive, got %d: %w", c.GamesPerFile, errors.ErrInvalidConfig)
	}
	if c.ChunkSize < 1 {
		return fmt.Errorf("chunk size must be positive, got %d: %w", c.ChunkSize, errors.ErrInvalidConfig)
	}
	if c.QueueSize < 1 {
		return fmt.Errorf("queue size must be positive, got %d: %w", c.QueueSize, errors.ErrInvalidConfig)
	}
	switch c.Separator {
	case 0, '"', '\r', '\n', 0xFFFD:
		return fmt.Errorf("separator %q cannot delimit csv fields: %w", c.Separator, errors.ErrInvalidConfig)
	}
	return nil
}
