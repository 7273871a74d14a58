package config

import (
	"io"

	"github.com/lgbarn/pgn-planes-go/internal/output"
	"github.com/lgbarn/pgn-planes-go/internal/pgn"
)

// ConfigBuilder provides a fluent API for building Config instances.
// The first invalid value is reported by Build.
type ConfigBuilder struct {
	cfg *Config
	err error
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

func (b *ConfigBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build loads referenced files, validates and returns the Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.cfg.Grid.Load(); err != nil {
		return nil, err
	}
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithLogOutput sets the log destination.
func (b *ConfigBuilder) WithLogOutput(w io.Writer) *ConfigBuilder {
	b.cfg.SetLogOutput(w)
	return b
}

// WithLogLevel sets the zerolog level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithLogFormat selects console or json log lines.
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.cfg.LogFormat = format
	return b
}

// WithInput sets the archive to convert.
func (b *ConfigBuilder) WithInput(path string) *ConfigBuilder {
	b.cfg.Convert.Input = path
	return b
}

// WithOutputDir sets the destination directory.
func (b *ConfigBuilder) WithOutputDir(dir string) *ConfigBuilder {
	b.cfg.Convert.OutputDir = dir
	return b
}

// WithGamesPerFile sets the rotation size.
func (b *ConfigBuilder) WithGamesPerFile(n int) *ConfigBuilder {
	b.cfg.Convert.GamesPerFile = n
	return b
}

// WithChunkSize sets the read size.
func (b *ConfigBuilder) WithChunkSize(n int) *ConfigBuilder {
	b.cfg.Convert.ChunkSize = n
	return b
}

// WithQueueSize sets the capacity of pipeline channels.
func (b *ConfigBuilder) WithQueueSize(n int) *ConfigBuilder {
	b.cfg.Convert.QueueSize = n
	return b
}

// WithSeparator sets the CSV separator.
func (b *ConfigBuilder) WithSeparator(r rune) *ConfigBuilder {
	b.cfg.Convert.Separator = r
	return b
}

// WithFormat sets the output format by name.
func (b *ConfigBuilder) WithFormat(name string) *ConfigBuilder {
	f, err := output.ParseFormat(name)
	if err != nil {
		b.fail(err)
		return b
	}
	b.cfg.Convert.Format = f
	return b
}

// WithStrategy sets the PGN parse strategy by name.
func (b *ConfigBuilder) WithStrategy(name string) *ConfigBuilder {
	s, err := pgn.ParseStrategy(name)
	if err != nil {
		b.fail(err)
		return b
	}
	b.cfg.Convert.Strategy = s
	return b
}

// WithMinElo requires both players to be rated at least elo.
func (b *ConfigBuilder) WithMinElo(elo int) *ConfigBuilder {
	b.cfg.Filter.MinElo = elo
	return b
}

// WithSince keeps games started on or after date. Empty clears it.
func (b *ConfigBuilder) WithSince(date string) *ConfigBuilder {
	if date == "" {
		return b
	}
	t, err := ParseDate(date)
	if err != nil {
		b.fail(err)
		return b
	}
	b.cfg.Filter.Since = t
	return b
}

// WithUntil keeps games started on or before date. Empty clears it.
func (b *ConfigBuilder) WithUntil(date string) *ConfigBuilder {
	if date == "" {
		return b
	}
	t, err := ParseDate(date)
	if err != nil {
		b.fail(err)
		return b
	}
	b.cfg.Filter.Until = t
	return b
}

// WithTermination keeps games whose Termination tag equals term.
func (b *ConfigBuilder) WithTermination(term string) *ConfigBuilder {
	b.cfg.Filter.Termination = term
	return b
}

// WithPlaneFile sets a JSON plane config, read during Build.
func (b *ConfigBuilder) WithPlaneFile(path string) *ConfigBuilder {
	b.cfg.Grid.PlaneFile = path
	return b
}

// WithGridWorkers sets the number of concurrent encoders.
func (b *ConfigBuilder) WithGridWorkers(n int) *ConfigBuilder {
	b.cfg.Grid.Workers = n
	return b
}

// WithTensorOutput includes raw tensors in encoder output.
func (b *ConfigBuilder) WithTensorOutput(enabled bool) *ConfigBuilder {
	b.cfg.Grid.IncludeTensor = enabled
	return b
}
