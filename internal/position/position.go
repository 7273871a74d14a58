// Package position models a board state read from FEN together with the
// squares each piece kind controls and the pinned pieces of each side.
package position

import (
	"github.com/lgbarn/pgn-planes-go/internal/chess"
	"github.com/lgbarn/pgn-planes-go/internal/engine"
)

// SquareSet is a set of board squares indexed row*8+col, row 0 = rank 8.
type SquareSet = chess.SquareSet

// NumControlPlanes is the number of per-piece controlled-square sets.
const NumControlPlanes = 2 * chess.NumPieceTypes

// BoardPosition is an immutable board state. Controlled squares and pins
// are computed once, at construction.
type BoardPosition struct {
	fen        string
	fields     engine.Fields
	placement  string
	controlled [NumControlPlanes]SquareSet
	pins       [2]SquareSet
}

// New parses fen. Malformed input returns an *errors.InvalidFenError.
func New(fen string) (*BoardPosition, error) {
	f, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return &BoardPosition{
		fen:        fen,
		fields:     *f,
		placement:  f.Placement.String(),
		controlled: engine.ControlledSquares(&f.Placement),
		pins:       engine.Pins(&f.Placement),
	}, nil
}

// MustNew is like New but panics on an invalid FEN.
func MustNew(fen string) *BoardPosition {
	p, err := New(fen)
	if err != nil {
		panic(err)
	}
	return p
}

// FEN returns the FEN the position was built from.
func (p *BoardPosition) FEN() string {
	return p.fen
}

// String implements fmt.Stringer.
func (p *BoardPosition) String() string {
	return p.fen
}

// Equal reports whether both positions have the same FEN.
func (p *BoardPosition) Equal(other *BoardPosition) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.fen == other.fen
}

// Placement returns the 64-character board, rank 8 to rank 1, file a to h,
// with '.' for empty squares.
func (p *BoardPosition) Placement() string {
	return p.placement
}

// PieceAt returns the piece on sq.
func (p *BoardPosition) PieceAt(sq chess.Square) chess.ColouredPiece {
	return p.fields.Placement.At(sq)
}

// WhiteToMove reports the side to move.
func (p *BoardPosition) WhiteToMove() bool {
	return p.fields.WhiteToMove
}

// Castling returns the castling rights.
func (p *BoardPosition) Castling() engine.Castling {
	return p.fields.Castling
}

// EnPassant returns the en passant target square, if any.
func (p *BoardPosition) EnPassant() (chess.Square, bool) {
	if p.fields.EnPassant == nil {
		return chess.Square{}, false
	}
	return *p.fields.EnPassant, true
}

// HalfMoves returns the halfmove clock.
func (p *BoardPosition) HalfMoves() int {
	return p.fields.HalfMoves
}

// FullMoves returns the fullmove number.
func (p *BoardPosition) FullMoves() int {
	return p.fields.FullMoves
}

// Controlled returns the attacked squares per piece kind in plane order
// P,N,B,R,Q,K,p,n,b,r,q,k.
func (p *BoardPosition) Controlled() [NumControlPlanes]SquareSet {
	return p.controlled
}

// Pins returns the pinned pieces of each side: index 0 holds White's
// pinned pieces, index 1 Black's.
func (p *BoardPosition) Pins() [2]SquareSet {
	return p.pins
}

// InCheck reports whether the side to move is attacked on its king square.
func (p *BoardPosition) InCheck() bool {
	colour := chess.Black
	if p.fields.WhiteToMove {
		colour = chess.White
	}
	king, ok := p.fields.Placement.King(colour)
	if !ok {
		return false
	}
	return engine.IsSquareAttacked(&p.fields.Placement, king, colour.Opposite())
}
