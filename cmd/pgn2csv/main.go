// pgn2csv converts a PGN archive into numbered CSV (or JSON Lines, or
// SQLite) files with one row per game.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/lgbarn/pgn-planes-go/internal/config"
	"github.com/lgbarn/pgn-planes-go/internal/convert"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("pgn2csv version %s\n", programVersion)
		os.Exit(0)
	}

	b := applyFlags(config.NewConfigBuilder(), flag.Args())
	if w := setupLogFile(); w != nil {
		b.WithLogOutput(w)
	}
	cfg, err := b.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if cfg.Convert.Input == "" {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := cfg.Logger()
	stats, err := convert.New(cfg, convert.WithLogger(logger)).Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !*quiet {
		fmt.Fprintf(os.Stderr, "%d games parsed, %d written, %d skipped, %d files in %s\n",
			stats.Games, stats.Written, stats.Skipped, stats.Files, stats.Duration.Round(time.Millisecond))
	}
}

// setupLogFile opens the -l log file, if given.
func setupLogFile() io.Writer {
	if *logFile == "" {
		return nil
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	return file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: pgn2csv [options] input\n\n")
	fmt.Fprintf(os.Stderr, "Converts a PGN archive into files of one row per game.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput files are named 0.csv.gz, 1.csv.gz, ... in the -o directory.\n")
}
