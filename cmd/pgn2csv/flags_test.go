package main

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/pgn-planes-go/internal/config"
	"github.com/lgbarn/pgn-planes-go/internal/errors"
	"github.com/lgbarn/pgn-planes-go/internal/output"
	"github.com/lgbarn/pgn-planes-go/internal/pgn"
)

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyIOFlags(t *testing.T) {
	t.Run("input from first argument", func(t *testing.T) {
		defer saveRestoreString(inputFile, "")()
		cfg, err := applyFlags(config.NewConfigBuilder(), []string{"games.pgn.zst"}).Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if cfg.Convert.Input != "games.pgn.zst" {
			t.Errorf("Input = %q; want games.pgn.zst", cfg.Convert.Input)
		}
	})

	t.Run("-i wins over arguments", func(t *testing.T) {
		defer saveRestoreString(inputFile, "s3://bucket/a.pgn")()
		cfg, err := applyFlags(config.NewConfigBuilder(), []string{"other.pgn"}).Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if cfg.Convert.Input != "s3://bucket/a.pgn" {
			t.Errorf("Input = %q; want s3://bucket/a.pgn", cfg.Convert.Input)
		}
	})

	t.Run("format and separator", func(t *testing.T) {
		defer saveRestoreString(outputFormat, "sqlite")()
		defer saveRestoreString(separator, `\t`)()
		defer saveRestoreInt(gamesPerFile, 25)()
		cfg, err := applyFlags(config.NewConfigBuilder(), nil).Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if cfg.Convert.Format != output.SQLite {
			t.Errorf("Format = %v; want sqlite", cfg.Convert.Format)
		}
		if cfg.Convert.Separator != '\t' {
			t.Errorf("Separator = %q; want tab", cfg.Convert.Separator)
		}
		if cfg.Convert.GamesPerFile != 25 {
			t.Errorf("GamesPerFile = %d; want 25", cfg.Convert.GamesPerFile)
		}
	})

	t.Run("bad separator rejected", func(t *testing.T) {
		defer saveRestoreString(separator, ";;")()
		_, err := applyFlags(config.NewConfigBuilder(), nil).Build()
		if !stderrors.Is(err, errors.ErrInvalidConfig) {
			t.Errorf("Build() error = %v; want ErrInvalidConfig", err)
		}
	})
}

func TestApplyParseAndFilterFlags(t *testing.T) {
	defer saveRestoreString(strategy, "library")()
	defer saveRestoreInt(chunkSize, 4096)()
	defer saveRestoreInt(minElo, 2200)()
	defer saveRestoreString(since, "2024-02-01")()

	cfg, err := applyFlags(config.NewConfigBuilder(), nil).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if cfg.Convert.Strategy != pgn.Library {
		t.Errorf("Strategy = %v; want library", cfg.Convert.Strategy)
	}
	if cfg.Convert.ChunkSize != 4096 {
		t.Errorf("ChunkSize = %d; want 4096", cfg.Convert.ChunkSize)
	}
	if cfg.Filter.MinElo != 2200 {
		t.Errorf("MinElo = %d; want 2200", cfg.Filter.MinElo)
	}
	if cfg.Filter.Since.Month() != 2 {
		t.Errorf("Since = %v; want February", cfg.Filter.Since)
	}
}

func TestParseSeparator(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{",", ',', false},
		{";", ';', false},
		{`\t`, '\t', false},
		{"|", '|', false},
		{"", 0, true},
		{",,", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSeparator(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSeparator(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseSeparator(%q) = %q; want %q", tt.in, got, tt.want)
			}
		})
	}
}
