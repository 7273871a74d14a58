package pgn

import (
	"io"

	"github.com/rs/zerolog"
)

// DefaultChunkSize is the number of bytes a Scanner reads per refill.
const DefaultChunkSize = 1 << 20

// Scanner streams GameRecords out of an io.Reader. Text is read in fixed
// size chunks; games that straddle a chunk boundary are carried over and
// parsed once the rest of their text has arrived.
//
//	s := pgn.NewScanner(r, pgn.NewParser(pgn.HeaderScan))
//	for s.Scan() {
//		rec := s.Record()
//		...
//	}
//	if err := s.Err(); err != nil {
//		...
//	}
type Scanner struct {
	r         io.Reader
	p         *Parser
	chunkSize int
	logger    zerolog.Logger

	chunk     []byte
	buf       string
	pending   []*GameRecord
	rec       *GameRecord
	err       error
	eof       bool
	bytesRead int64
	games     int
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithChunkSize sets the refill size in bytes. Values below 1 are ignored.
func WithChunkSize(n int) ScannerOption {
	return func(s *Scanner) {
		if n > 0 {
			s.chunkSize = n
		}
	}
}

// WithScannerLogger sets the logger used for per-chunk debug output.
func WithScannerLogger(l zerolog.Logger) ScannerOption {
	return func(s *Scanner) {
		s.logger = l
	}
}

// NewScanner returns a Scanner reading from r with parser p.
func NewScanner(r io.Reader, p *Parser, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		r:         r,
		p:         p,
		chunkSize: DefaultChunkSize,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.chunk = make([]byte, s.chunkSize)
	return s
}

// Scan advances to the next game. It returns false at end of input or on
// a read error; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	for {
		if len(s.pending) > 0 {
			s.rec = s.pending[0]
			s.pending[0] = nil
			s.pending = s.pending[1:]
			s.games++
			return true
		}
		s.rec = nil
		if s.eof || s.err != nil {
			return false
		}
		if !s.fill() {
			return false
		}
		s.parseBuffer()
	}
}

// Record returns the game produced by the last call to Scan.
func (s *Scanner) Record() *GameRecord {
	return s.rec
}

// Err returns the first non-EOF read error.
func (s *Scanner) Err() error {
	return s.err
}

// BytesRead returns the number of input bytes consumed so far.
func (s *Scanner) BytesRead() int64 {
	return s.bytesRead
}

// Games returns the number of games returned by Scan so far.
func (s *Scanner) Games() int {
	return s.games
}

// fill appends the next chunk to the carried buffer.
func (s *Scanner) fill() bool {
	n, err := io.ReadFull(s.r, s.chunk)
	s.bytesRead += int64(n)
	s.buf += string(s.chunk[:n])
	switch err {
	case nil:
	case io.EOF, io.ErrUnexpectedEOF:
		s.eof = true
	default:
		s.err = err
		return false
	}
	s.logger.Debug().
		Int("chunk", n).
		Int("carried", len(s.buf)-n).
		Bool("eof", s.eof).
		Msg("read pgn chunk")
	return true
}

// parseBuffer parses every game in the buffer. Before EOF the last game
// found may be incomplete, so it is left in the buffer for the next fill.
func (s *Scanner) parseBuffer() {
	c := NewCursor(s.buf)
	var starts []int
	for {
		start := c.Pos()
		rec, ok := s.p.ParseOneGame(c)
		if !ok {
			break
		}
		s.pending = append(s.pending, rec)
		starts = append(starts, start)
	}

	switch {
	case s.eof:
		s.buf = ""
	case len(starts) > 0:
		last := len(starts) - 1
		s.buf = s.buf[starts[last]:]
		s.pending[last] = nil
		s.pending = s.pending[:last]
	}
}
