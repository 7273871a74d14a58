package output

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/lgbarn/pgn-planes-go/internal/errors"
	"github.com/lgbarn/pgn-planes-go/internal/pgn"
)

// SplitWriter spreads records over numbered files of at most perFile
// records each: 0.csv.gz, 1.csv.gz, ... A file is only created once it
// has a record to hold.
type SplitWriter struct {
	dir     string
	format  Format
	perFile int
	comma   rune
	logger  zerolog.Logger

	file    *os.File
	cur     RecordWriter
	inFile  int
	counter int
	written int
	files   []string
}

// SplitOption configures a SplitWriter.
type SplitOption func(*SplitWriter)

// WithComma sets the CSV field separator.
func WithComma(r rune) SplitOption {
	return func(s *SplitWriter) {
		s.comma = r
	}
}

// WithSplitLogger sets the logger used for file rotation messages.
func WithSplitLogger(l zerolog.Logger) SplitOption {
	return func(s *SplitWriter) {
		s.logger = l
	}
}

// NewSplitWriter writes into dir, which must exist.
func NewSplitWriter(dir string, format Format, perFile int, opts ...SplitOption) (*SplitWriter, error) {
	if perFile < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "games per file must be positive, got %d", perFile)
	}
	if _, ok := formatNames[format]; !ok {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "format %v", format)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrap(err, "output directory")
	}
	if !info.IsDir() {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "%s is not a directory", dir)
	}

	s := &SplitWriter{
		dir:     dir,
		format:  format,
		perFile: perFile,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *SplitWriter) open() error {
	path := filepath.Join(s.dir, strconv.Itoa(s.counter)+s.format.Extension())

	var err error
	switch s.format {
	case SQLite:
		s.cur, err = NewSQLiteWriter(path)
	default:
		s.file, err = os.Create(path)
		if err != nil {
			break
		}
		if s.format == JSONLines {
			s.cur = NewJSONLinesWriter(s.file)
		} else {
			s.cur, err = NewCSVGzipWriter(s.file, s.comma)
		}
	}
	if err != nil {
		if s.file != nil {
			s.file.Close()
			s.file = nil
		}
		return errors.Wrapf(err, "open %s", path)
	}

	s.counter++
	s.inFile = 0
	s.files = append(s.files, path)
	s.logger.Debug().Str("file", path).Msg("opened output file")
	return nil
}

func (s *SplitWriter) closeCurrent() error {
	if s.cur == nil {
		return nil
	}
	err := s.cur.Close()
	if s.file != nil {
		if cerr := s.file.Close(); err == nil {
			err = cerr
		}
	}
	s.logger.Info().
		Str("file", s.files[len(s.files)-1]).
		Int("games", s.inFile).
		Msg("games saved")
	s.cur, s.file = nil, nil
	return err
}

// WriteRecord writes rec, rotating to a new file when the current one is
// full.
func (s *SplitWriter) WriteRecord(rec *pgn.GameRecord) error {
	if s.cur != nil && s.inFile >= s.perFile {
		if err := s.closeCurrent(); err != nil {
			return err
		}
	}
	if s.cur == nil {
		if err := s.open(); err != nil {
			return err
		}
	}
	if err := s.cur.WriteRecord(rec); err != nil {
		return err
	}
	s.inFile++
	s.written++
	return nil
}

// Flush flushes the open file, if any.
func (s *SplitWriter) Flush() error {
	if s.cur == nil {
		return nil
	}
	return s.cur.Flush()
}

// Close finishes the open file.
func (s *SplitWriter) Close() error {
	return s.closeCurrent()
}

// Files returns the paths created so far, in order.
func (s *SplitWriter) Files() []string {
	return append([]string(nil), s.files...)
}

// Written returns the number of records written.
func (s *SplitWriter) Written() int {
	return s.written
}
