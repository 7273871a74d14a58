package convert

import (
	"bytes"
	"context"
	"encoding/csv"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/pgn-planes-go/internal/config"
	"github.com/lgbarn/pgn-planes-go/internal/errors"
	"github.com/lgbarn/pgn-planes-go/internal/pgn"
	"github.com/lgbarn/pgn-planes-go/internal/testutil"
)

const archiveText = testutil.MultiGameText + "\n" + testutil.LichessGame

func writeZst(t *testing.T, dir, text string) string {
	t.Helper()
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = enc.Write([]byte(text))
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	path := filepath.Join(dir, "games.pgn.zst")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	rows, err := csv.NewReader(gz).ReadAll()
	require.NoError(t, err)
	return rows
}

func build(t *testing.T, b *config.ConfigBuilder) *config.Config {
	t.Helper()
	cfg, err := b.Build()
	require.NoError(t, err)
	return cfg
}

func TestRunZstToCSVGzip(t *testing.T) {
	for _, strategy := range []string{"header-scan", "whole-game", "library"} {
		t.Run(strategy, func(t *testing.T) {
			in := writeZst(t, t.TempDir(), archiveText)
			out := t.TempDir()
			cfg := build(t, config.NewConfigBuilder().
				WithInput(in).
				WithOutputDir(out).
				WithGamesPerFile(3).
				WithChunkSize(64).
				WithQueueSize(2).
				WithStrategy(strategy))

			var logs bytes.Buffer
			stats, err := New(cfg, WithLogger(zerolog.New(&logs)), WithProgressEvery(2)).Run(context.Background())
			require.NoError(t, err)

			assert.Equal(t, 4, stats.Games)
			assert.Equal(t, 4, stats.Written)
			assert.Zero(t, stats.Skipped)
			assert.Equal(t, 2, stats.Files)
			assert.Equal(t, int64(len(archiveText)), stats.Bytes)

			first := readRows(t, filepath.Join(out, "0.csv.gz"))
			second := readRows(t, filepath.Join(out, "1.csv.gz"))
			require.Len(t, first, 4)
			require.Len(t, second, 2)
			assert.Equal(t, pgn.Columns(), first[0])
			assert.Equal(t, pgn.Columns(), second[0])

			assert.Equal(t, "First", first[1][0])
			assert.Equal(t, "e4 e5 Qh5 Nc6 Bc4 Nf6 Qxf7", first[1][17])
			assert.Equal(t, "Third", first[3][0])
			assert.Equal(t, "Rated Blitz game", second[1][0])
			assert.Equal(t, "1850", second[1][7])

			assert.Contains(t, logs.String(), "conversion completed")
			assert.Contains(t, logs.String(), "parsed games")
		})
	}
}

func TestRunFilters(t *testing.T) {
	tests := []struct {
		name        string
		b           func(*config.ConfigBuilder) *config.ConfigBuilder
		wantWritten int
	}{
		{"min elo", func(b *config.ConfigBuilder) *config.ConfigBuilder { return b.WithMinElo(1700) }, 1},
		{"min elo too high", func(b *config.ConfigBuilder) *config.ConfigBuilder { return b.WithMinElo(1800) }, 0},
		{"same day", func(b *config.ConfigBuilder) *config.ConfigBuilder {
			return b.WithSince("2023-07-21").WithUntil("2023-07-21")
		}, 1},
		{"before range", func(b *config.ConfigBuilder) *config.ConfigBuilder { return b.WithSince("2024-01-01") }, 0},
		{"termination", func(b *config.ConfigBuilder) *config.ConfigBuilder { return b.WithTermination("normal") }, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := writeZst(t, t.TempDir(), archiveText)
			cfg := build(t, tt.b(config.NewConfigBuilder().WithInput(in).WithOutputDir(t.TempDir())))

			stats, err := New(cfg).Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 4, stats.Games)
			assert.Equal(t, tt.wantWritten, stats.Written)
			assert.Equal(t, 4-tt.wantWritten, stats.Skipped)
			assert.Equal(t, min(tt.wantWritten, 1), stats.Files)
		})
	}
}

func TestRunJSONLines(t *testing.T) {
	in := writeZst(t, t.TempDir(), archiveText)
	out := t.TempDir()
	cfg := build(t, config.NewConfigBuilder().WithInput(in).WithOutputDir(out).WithFormat("jsonl"))

	stats, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Files)

	data, err := os.ReadFile(filepath.Join(out, "0.jsonl"))
	require.NoError(t, err)
	assert.Equal(t, 4, bytes.Count(data, []byte("\n")))
}

func TestRunInputErrors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.pgn")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	good := writeZst(t, dir, archiveText)

	tests := []struct {
		name   string
		input  string
		outDir string
		is     error
	}{
		{"missing input", filepath.Join(dir, "missing.pgn.zst"), dir, os.ErrNotExist},
		{"empty input", empty, dir, errors.ErrInvalidConfig},
		{"missing output dir", good, filepath.Join(dir, "nowhere"), os.ErrNotExist},
		{"unsupported scheme", "ftp://host/games.pgn", dir, errors.ErrUnsupportedSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := build(t, config.NewConfigBuilder().WithInput(tt.input).WithOutputDir(tt.outDir))
			_, err := New(cfg).Run(context.Background())
			assert.True(t, stderrors.Is(err, tt.is), "err = %v", err)
		})
	}
}

func TestRunCancelled(t *testing.T) {
	in := writeZst(t, t.TempDir(), archiveText)
	cfg := build(t, config.NewConfigBuilder().WithInput(in).WithOutputDir(t.TempDir()).WithChunkSize(16).WithQueueSize(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(cfg).Run(ctx)
	assert.True(t, stderrors.Is(err, context.Canceled), "err = %v", err)
}
