// Package convert turns a PGN archive into fixed-schema record files.
//
// A Converter runs three stages joined by bounded channels: a reader
// that pulls decompressed chunks from the source, a parser that streams
// games out of those chunks and applies filters, and a writer that fills
// numbered output files.
package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/pgn-planes-go/internal/config"
	"github.com/lgbarn/pgn-planes-go/internal/errors"
	"github.com/lgbarn/pgn-planes-go/internal/output"
	"github.com/lgbarn/pgn-planes-go/internal/pgn"
	"github.com/lgbarn/pgn-planes-go/internal/source"
)

// DefaultProgressEvery is the number of parsed games between progress logs.
const DefaultProgressEvery = 1000

// Stats summarises a conversion.
type Stats struct {
	Games    int   // games parsed
	Written  int   // records written
	Skipped  int   // games rejected by filters
	Files    int   // output files created
	Bytes    int64 // decompressed bytes read
	Duration time.Duration
}

// Converter converts one archive.
type Converter struct {
	cfg           *config.Config
	logger        zerolog.Logger
	sourceOpts    []source.Option
	progressEvery int
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Converter) {
		c.logger = l
	}
}

// WithSourceOptions passes options through to source.Open.
func WithSourceOptions(opts ...source.Option) Option {
	return func(c *Converter) {
		c.sourceOpts = append(c.sourceOpts, opts...)
	}
}

// WithProgressEvery sets how many games pass between progress logs.
func WithProgressEvery(n int) Option {
	return func(c *Converter) {
		if n > 0 {
			c.progressEvery = n
		}
	}
}

// New returns a converter for cfg. cfg is expected to be validated.
func New(cfg *config.Config, opts ...Option) *Converter {
	c := &Converter{
		cfg:           cfg,
		logger:        zerolog.Nop(),
		progressEvery: DefaultProgressEvery,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// checkInput rejects local inputs that are missing or empty.
func checkInput(name string) error {
	if strings.Contains(name, "://") {
		return nil
	}
	info, err := os.Stat(name)
	if err != nil {
		return errors.Wrap(err, "input")
	}
	if info.Size() == 0 {
		return fmt.Errorf("input file is empty: %s: %w", name, errors.ErrInvalidConfig)
	}
	return nil
}

// Run performs the conversion. Cancelling ctx stops all stages; the
// output file open at that moment is closed but may hold fewer games
// than requested.
func (c *Converter) Run(ctx context.Context) (Stats, error) {
	start := time.Now()
	cc := c.cfg.Convert
	log := c.logger.With().Str("input", cc.Input).Logger()

	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}
	if err := checkInput(cc.Input); err != nil {
		return Stats{}, err
	}
	sink, err := output.NewSplitWriter(cc.OutputDir, cc.Format, cc.GamesPerFile,
		output.WithComma(cc.Separator),
		output.WithSplitLogger(log))
	if err != nil {
		return Stats{}, err
	}
	src, err := source.Open(ctx, cc.Input, c.sourceOpts...)
	if err != nil {
		return Stats{}, err
	}
	defer src.Close()

	log.Info().
		Str("format", cc.Format.String()).
		Str("strategy", cc.Strategy.String()).
		Int("games_per_file", cc.GamesPerFile).
		Msg("starting conversion")

	chunks := make(chan []byte, cc.QueueSize)
	records := make(chan *pgn.GameRecord, cc.QueueSize)
	var stats Stats

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(chunks)
		return readChunks(gctx, src, cc.ChunkSize, chunks)
	})

	g.Go(func() error {
		defer close(records)
		sc := pgn.NewScanner(&chanReader{ctx: gctx, ch: chunks}, pgn.NewParser(cc.Strategy),
			pgn.WithChunkSize(cc.ChunkSize),
			pgn.WithScannerLogger(log))
		filter := newFilter(&c.cfg.Filter)
		for sc.Scan() {
			stats.Games++
			if stats.Games%c.progressEvery == 0 {
				log.Info().
					Int("games", stats.Games).
					Str("read", bytesize.New(float64(sc.BytesRead())).String()).
					Msg("parsed games")
			}
			if !filter.keep(sc.Record()) {
				stats.Skipped++
				continue
			}
			select {
			case records <- sc.Record():
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		stats.Bytes = sc.BytesRead()
		return sc.Err()
	})

	g.Go(func() error {
		for rec := range records {
			if err := sink.WriteRecord(rec); err != nil {
				return &errors.GameError{Err: err, GameNum: sink.Written() + 1, Offset: -1, File: cc.Input}
			}
		}
		return nil
	})

	err = g.Wait()
	if cerr := sink.Close(); err == nil {
		err = cerr
	}
	stats.Written = sink.Written()
	stats.Files = len(sink.Files())
	stats.Duration = time.Since(start)
	if err != nil {
		log.Error().Err(err).Msg("conversion failed")
		return stats, err
	}

	log.Info().
		Int("games", stats.Games).
		Int("written", stats.Written).
		Int("skipped", stats.Skipped).
		Int("files", stats.Files).
		Str("read", bytesize.New(float64(stats.Bytes)).String()).
		Dur("took", stats.Duration).
		Msg("conversion completed")
	return stats, nil
}

// readChunks copies r into ch in pieces of at most size bytes.
func readChunks(ctx context.Context, r io.Reader, size int, ch chan<- []byte) error {
	for {
		buf := make([]byte, size)
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			select {
			case ch <- buf[:n]:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		switch err {
		case nil:
		case io.EOF, io.ErrUnexpectedEOF:
			return nil
		default:
			return errors.Wrap(err, "read input")
		}
	}
}

// chanReader presents a channel of chunks as an io.Reader.
type chanReader struct {
	ctx  context.Context
	ch   <-chan []byte
	rest []byte
}

func (r *chanReader) Read(p []byte) (int, error) {
	for len(r.rest) == 0 {
		select {
		case b, ok := <-r.ch:
			if !ok {
				return 0, io.EOF
			}
			r.rest = b
		case <-r.ctx.Done():
			return 0, r.ctx.Err()
		}
	}
	n := copy(p, r.rest)
	r.rest = r.rest[n:]
	return n, nil
}
