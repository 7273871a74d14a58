package output

import (
	"encoding/csv"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/lgbarn/pgn-planes-go/internal/errors"
	"github.com/lgbarn/pgn-planes-go/internal/pgn"
)

// CSVGzipWriter writes gzip-compressed CSV with a header row of
// pgn.Columns().
type CSVGzipWriter struct {
	gz  *gzip.Writer
	csv *csv.Writer
}

// NewCSVGzipWriter writes the header row to w and returns the writer.
// A zero comma means ','.
func NewCSVGzipWriter(w io.Writer, comma rune) (*CSVGzipWriter, error) {
	gz := gzip.NewWriter(w)
	cw := csv.NewWriter(gz)
	if comma != 0 {
		cw.Comma = comma
	}
	if err := cw.Write(pgn.Columns()); err != nil {
		return nil, errors.Wrap(err, "write csv header")
	}
	return &CSVGzipWriter{gz: gz, csv: cw}, nil
}

// WriteRecord writes one row.
func (w *CSVGzipWriter) WriteRecord(rec *pgn.GameRecord) error {
	return w.csv.Write(rec.Row())
}

// Flush flushes the CSV buffer and the gzip block.
func (w *CSVGzipWriter) Flush() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return errors.Wrap(err, "flush csv")
	}
	return w.gz.Flush()
}

// Close flushes and writes the gzip trailer.
func (w *CSVGzipWriter) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return errors.Wrap(err, "flush csv")
	}
	return w.gz.Close()
}
