// Package output writes game records to CSV, JSON Lines and SQLite sinks.
package output

import (
	"fmt"
	"strings"

	"github.com/lgbarn/pgn-planes-go/internal/errors"
	"github.com/lgbarn/pgn-planes-go/internal/pgn"
)

// RecordWriter is the interface for writing game records to a sink.
type RecordWriter interface {
	// WriteRecord writes a single record.
	WriteRecord(rec *pgn.GameRecord) error

	// Flush pushes buffered data to the underlying sink.
	Flush() error

	// Close flushes and releases the writer. It does not close a writer
	// or file handed to the constructor.
	Close() error
}

// Format selects a sink implementation.
type Format int

const (
	CSVGzip Format = iota
	JSONLines
	SQLite
)

var formatNames = map[Format]string{
	CSVGzip:   "csv",
	JSONLines: "jsonl",
	SQLite:    "sqlite",
}

var formatExtensions = map[Format]string{
	CSVGzip:   ".csv.gz",
	JSONLines: ".jsonl",
	SQLite:    ".sqlite",
}

// String returns the flag name of the format.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Extension returns the file suffix used for the format.
func (f Format) Extension() string {
	return formatExtensions[f]
}

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if strings.EqualFold(s, name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}
