// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"unicode/utf8"

	"github.com/lgbarn/pgn-planes-go/internal/config"
	"github.com/lgbarn/pgn-planes-go/internal/errors"
	"github.com/lgbarn/pgn-planes-go/internal/pgn"
)

var (
	// Input and output
	inputFile    = flag.String("i", "", "Input archive: .pgn, .pgn.zst, .pgn.bz2, .pgn.gz or s3://bucket/key (default: first argument)")
	outputDir    = flag.String("o", ".", "Destination directory (must exist)")
	gamesPerFile = flag.Int("n", config.DefaultGamesPerFile, "Maximum number of games per output file")
	outputFormat = flag.String("format", "csv", "Output format: csv, jsonl, sqlite")
	separator    = flag.String("sep", ",", "CSV field separator")

	// Parsing
	strategy  = flag.String("strategy", "header-scan", "PGN parse strategy: header-scan, whole-game, library")
	chunkSize = flag.Int("chunk", pgn.DefaultChunkSize, "Bytes per read from the decompressed input")
	queueSize = flag.Int("queue", config.DefaultQueueSize, "Capacity of the queues between pipeline stages")

	// Filtering
	minElo      = flag.Int("minelo", 0, "Keep games where both players are rated at least this")
	since       = flag.String("since", "", "Keep games played on or after this date")
	until       = flag.String("until", "", "Keep games played on or before this date")
	termination = flag.String("termination", "", "Keep games with this Termination tag (e.g. Normal)")

	// Logging
	logFile   = flag.String("l", "", "Write log to file (default: stderr)")
	logLevel  = flag.String("loglevel", "info", "Log level: trace, debug, info, warn, error")
	logFormat = flag.String("logformat", config.LogFormatConsole, "Log format: console, json")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration builder.
func applyFlags(b *config.ConfigBuilder, args []string) *config.ConfigBuilder {
	applyIOFlags(b, args)
	applyParseFlags(b)
	applyFilterFlags(b)
	return b.WithLogLevel(*logLevel).WithLogFormat(*logFormat)
}

// applyIOFlags configures input, output and format settings.
func applyIOFlags(b *config.ConfigBuilder, args []string) {
	input := *inputFile
	if input == "" && len(args) > 0 {
		input = args[0]
	}
	b.WithInput(input).
		WithOutputDir(*outputDir).
		WithGamesPerFile(*gamesPerFile).
		WithFormat(*outputFormat)

	if sep, err := parseSeparator(*separator); err == nil {
		b.WithSeparator(sep)
	} else {
		b.WithSeparator(0)
	}
}

// applyParseFlags configures the parser and pipeline sizes.
func applyParseFlags(b *config.ConfigBuilder) {
	b.WithStrategy(*strategy).
		WithChunkSize(*chunkSize).
		WithQueueSize(*queueSize)
}

// applyFilterFlags configures game filter settings.
func applyFilterFlags(b *config.ConfigBuilder) {
	b.WithMinElo(*minElo).
		WithSince(*since).
		WithUntil(*until).
		WithTermination(*termination)
}

// parseSeparator accepts a single character, or "\t" for tab.
func parseSeparator(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("separator %q must be one character: %w", s, errors.ErrInvalidConfig)
	}
	return r, nil
}
