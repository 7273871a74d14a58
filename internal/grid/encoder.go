package grid

import (
	"context"
	stderrors "errors"
	"fmt"
	"math"

	"github.com/lgbarn/pgn-planes-go/internal/chess"
	"github.com/lgbarn/pgn-planes-go/internal/engine"
	"github.com/lgbarn/pgn-planes-go/internal/errors"
	"github.com/lgbarn/pgn-planes-go/internal/position"
	"github.com/lgbarn/pgn-planes-go/internal/worker"
)

// castlingSegment is the row span lit for one castling right.
type castlingSegment struct {
	row, from, to int // to is inclusive
}

var (
	whiteKingside  = castlingSegment{row: 7, from: 4, to: 7}
	whiteQueenside = castlingSegment{row: 7, from: 0, to: 4}
	blackKingside  = castlingSegment{row: 0, from: 4, to: 7}
	blackQueenside = castlingSegment{row: 0, from: 0, to: 4}
)

// Encoder turns positions into grids. It is safe for concurrent use.
type Encoder struct {
	cfg PlaneConfig
}

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// WithPlaneConfig restricts the planes the encoder fills.
func WithPlaneConfig(cfg PlaneConfig) EncoderOption {
	return func(e *Encoder) {
		e.cfg = cfg
	}
}

// NewEncoder returns an encoder with every plane enabled unless
// configured otherwise.
func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{cfg: DefaultPlaneConfig()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the encoder's plane configuration.
func (e *Encoder) Config() PlaneConfig {
	return e.cfg
}

// Encode builds the grid for p.
func (e *Encoder) Encode(p *position.BoardPosition) *Grid {
	g := New()
	if e.cfg.Pieces {
		for i := 0; i < chess.NumSquares; i++ {
			sq := chess.SquareAt(i)
			if idx := p.PieceAt(sq).PlaneIndex(); idx >= 0 {
				g.Set(sq.Row, sq.Col, PiecePlanes+idx, 1)
			}
		}
	}
	if e.cfg.SideToMove && p.WhiteToMove() {
		g.Fill(SideToMovePlane, 1)
	}
	if e.cfg.Castling {
		encodeCastling(g, p.Castling())
	}
	if e.cfg.EnPassant {
		if sq, ok := p.EnPassant(); ok {
			g.Set(sq.Row, sq.Col, EnPassantPlane, 1)
		}
	}
	if e.cfg.HalfMoves {
		g.Fill(HalfMovePlane, float32(p.HalfMoves()))
	}
	if e.cfg.FullMoves {
		g.Fill(FullMovePlane, float32(p.FullMoves()))
	}
	if e.cfg.Controlled {
		writeControlled(g, p.Controlled())
	}
	if e.cfg.Pins {
		writePins(g, p.Pins())
	}
	return g
}

// EncodeFEN parses fen and encodes it.
func (e *Encoder) EncodeFEN(fen string) (*Grid, error) {
	p, err := position.New(fen)
	if err != nil {
		return nil, err
	}
	return e.Encode(p), nil
}

// BatchResult is the outcome of encoding one FEN in a batch.
type BatchResult struct {
	FEN  string
	Grid *Grid
	Err  error
}

// EncodeBatch encodes fens on a pool of workers. Results are in input
// order. Items not reached before ctx is cancelled carry ctx.Err().
func (e *Encoder) EncodeBatch(ctx context.Context, fens []string, workers int) []BatchResult {
	results := worker.Map(fens, workers, e.EncodeFEN, func() bool {
		return ctx.Err() != nil
	})
	out := make([]BatchResult, len(results))
	for i, r := range results {
		err := r.Err
		if stderrors.Is(err, worker.ErrNotProcessed) && ctx.Err() != nil {
			err = ctx.Err()
		}
		out[i] = BatchResult{FEN: fens[i], Grid: r.Value, Err: err}
	}
	return out
}

func encodeCastling(g *Grid, c engine.Castling) {
	for _, r := range []struct {
		on  bool
		seg castlingSegment
	}{
		{c.WhiteKingside, whiteKingside},
		{c.WhiteQueenside, whiteQueenside},
		{c.BlackKingside, blackKingside},
		{c.BlackQueenside, blackQueenside},
	} {
		if !r.on {
			continue
		}
		for col := r.seg.from; col <= r.seg.to; col++ {
			g.Set(r.seg.row, col, CastlingPlane, 1)
		}
	}
}

func segmentSet(g *Grid, seg castlingSegment) bool {
	for col := seg.from; col <= seg.to; col++ {
		if g.At(seg.row, col, CastlingPlane) != 1 {
			return false
		}
	}
	return true
}

func writeControlled(g *Grid, sets [position.NumControlPlanes]chess.SquareSet) {
	for i, set := range sets {
		g.setSquares(ControlledPlanes+i, set)
	}
}

func writePins(g *Grid, pins [2]chess.SquareSet) {
	g.setSquares(WhitePinsPlane, pins[0])
	g.setSquares(BlackPinsPlane, pins[1])
}

// EncodeControlledSquares returns a grid holding only the controlled
// square planes.
func EncodeControlledSquares(sets [position.NumControlPlanes]chess.SquareSet) *Grid {
	g := New()
	writeControlled(g, sets)
	return g
}

// DecodeControlledSquares reads the controlled square planes.
func DecodeControlledSquares(g *Grid) [position.NumControlPlanes]chess.SquareSet {
	var out [position.NumControlPlanes]chess.SquareSet
	for i := range out {
		out[i] = g.squares(ControlledPlanes + i)
	}
	return out
}

// EncodePins returns a grid holding only the two pin planes.
func EncodePins(pins [2]chess.SquareSet) *Grid {
	g := New()
	writePins(g, pins)
	return g
}

// DecodePins reads the two pin planes: index 0 white, 1 black.
func DecodePins(g *Grid) [2]chess.SquareSet {
	return [2]chess.SquareSet{g.squares(WhitePinsPlane), g.squares(BlackPinsPlane)}
}

// Decode reconstructs the FEN of an encoded grid. Broadcast planes are
// read at cell (0, 0). Clocks are clamped to the smallest legal values and
// en passant is only read from rows 2 and 5, so the result always parses. It fails with errors.ErrInvalidGrid when a square
// is claimed by two piece planes.
func Decode(g *Grid) (string, error) {
	if g == nil || len(g.data) != Size*Size*NumPlanes {
		return "", fmt.Errorf("grid has no 8x8x%d backing: %w", NumPlanes, errors.ErrInvalidGrid)
	}

	var f engine.Fields
	for i := 0; i < chess.NumSquares; i++ {
		sq := chess.SquareAt(i)
		for k := 0; k < 2*chess.NumPieceTypes; k++ {
			if g.At(sq.Row, sq.Col, PiecePlanes+k) != 1 {
				continue
			}
			if !f.Placement.At(sq).IsEmpty() {
				return "", fmt.Errorf("square %s claimed by two piece planes: %w", sq, errors.ErrInvalidGrid)
			}
			cp, _ := chess.PieceFromPlane(k)
			f.Placement.Set(sq, cp)
		}
	}

	f.WhiteToMove = g.At(0, 0, SideToMovePlane) == 1
	f.Castling = engine.Castling{
		WhiteKingside:  segmentSet(g, whiteKingside),
		WhiteQueenside: segmentSet(g, whiteQueenside),
		BlackKingside:  segmentSet(g, blackKingside),
		BlackQueenside: segmentSet(g, blackQueenside),
	}

enPassant:
	for _, row := range []int{2, 5} {
		for col := 0; col < Size; col++ {
			if g.At(row, col, EnPassantPlane) == 1 {
				f.EnPassant = &chess.Square{Row: row, Col: col}
				break enPassant
			}
		}
	}

	f.HalfMoves = max(0, int(math.Round(float64(g.At(0, 0, HalfMovePlane)))))
	f.FullMoves = max(1, int(math.Round(float64(g.At(0, 0, FullMovePlane)))))
	return f.FEN(), nil
}
