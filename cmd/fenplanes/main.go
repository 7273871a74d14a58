// fenplanes encodes FEN positions as 8x8x31 planes and reports what the
// planes hold.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/lgbarn/pgn-planes-go/internal/config"
	"github.com/lgbarn/pgn-planes-go/internal/grid"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	cfg, err := applyFlags(config.NewConfigBuilder()).Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	logger := cfg.Logger()

	fens := flag.Args()
	if len(fens) == 0 {
		fens, err = readFENs(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failed, err := run(ctx, os.Stdout, fens, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info().Int("positions", len(fens)).Int("failed", failed).Msg("encoded positions")
	if failed > 0 {
		os.Exit(1)
	}
}

// run encodes fens and writes one report per FEN in input order. It
// returns the number of FENs that could not be encoded.
func run(ctx context.Context, w io.Writer, fens []string, cfg *config.Config) (int, error) {
	enc := grid.NewEncoder(grid.WithPlaneConfig(cfg.Grid.Planes))
	out := bufio.NewWriter(w)
	jsonEnc := json.NewEncoder(out)

	failed := 0
	for _, r := range enc.EncodeBatch(ctx, fens, cfg.Grid.Workers) {
		rep := newReport(r, enc.Config(), *withDecode, cfg.Grid.IncludeTensor)
		if rep.Error != "" {
			failed++
		}
		var err error
		if *textOutput {
			err = writeText(out, rep)
		} else {
			err = jsonEnc.Encode(rep)
		}
		if err != nil {
			return failed, err
		}
	}
	return failed, out.Flush()
}

// readFENs returns the non-blank lines of r.
func readFENs(r io.Reader) ([]string, error) {
	var fens []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" && !strings.HasPrefix(line, "#") {
			fens = append(fens, line)
		}
	}
	return fens, sc.Err()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: fenplanes [options] [fen...]\n\n")
	fmt.Fprintf(os.Stderr, "Encodes FEN positions (arguments, or one per line on stdin) as planes.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
