// pgngen writes random test archives: a .pgn file, the same games as
// .pgn.zst, and a .csv holding the rows a conversion should produce.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/lgbarn/pgn-planes-go/internal/errors"
	"github.com/lgbarn/pgn-planes-go/internal/pgn"
)

var (
	numGames = flag.Int("n", 5, "Number of games to generate")
	plies    = flag.Int("plies", 16, "Half-moves per game")
	comments = flag.Bool("comments", false, "Add eval and clock comments after each move")
	seed     = flag.Int64("seed", 0, "Random seed (0 = time based)")
	outDir   = flag.String("o", ".", "Destination directory")
	baseName = flag.String("name", "games", "Base file name")
	help     = flag.Bool("h", false, "Show help")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	paths, err := generate(NewGenerator(s, *plies, *comments, time.Now()), *numGames, *outDir, *baseName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, p := range paths {
		fmt.Println(p)
	}
}

// generate writes base.pgn, base.pgn.zst and base.csv into dir.
func generate(g *Generator, n int, dir, base string) ([]string, error) {
	texts := make([]string, n)
	recs := make([]*pgn.GameRecord, n)
	for i := 0; i < n; i++ {
		texts[i], recs[i] = g.Game(i)
	}
	pgnText := strings.Join(texts, "\n")

	pgnPath := filepath.Join(dir, base+".pgn")
	zstPath := pgnPath + ".zst"
	csvPath := filepath.Join(dir, base+".csv")

	if err := os.WriteFile(pgnPath, []byte(pgnText), 0644); err != nil { //nolint:gosec // G306: generated test data
		return nil, errors.Wrap(err, "write pgn")
	}
	if err := writeZst(zstPath, pgnText); err != nil {
		return nil, err
	}
	if err := writeCSV(csvPath, recs); err != nil {
		return nil, err
	}
	return []string{pgnPath, zstPath, csvPath}, nil
}

func writeZst(path, text string) error {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return errors.Wrap(err, "zstd encoder")
	}
	defer enc.Close()
	data := enc.EncodeAll([]byte(text), nil)
	return errors.Wrap(os.WriteFile(path, data, 0644), "write zst") //nolint:gosec // G306: generated test data
}

func writeCSV(path string, recs []*pgn.GameRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(pgn.Columns()); err != nil {
		return errors.Wrap(err, "write csv")
	}
	for _, rec := range recs {
		if err := w.Write(rec.Row()); err != nil {
			return errors.Wrap(err, "write csv")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrap(err, "write csv")
	}
	return errors.Wrap(f.Close(), "close csv")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: pgngen [options]\n\n")
	fmt.Fprintf(os.Stderr, "Writes random legal games for testing the converter.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
