// Package engine provides FEN field parsing and attack geometry over a
// piece placement.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/pgn-planes-go/internal/chess"
	"github.com/lgbarn/pgn-planes-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Placement is the board contents in grid order: index 0 is a8, 63 is h1.
type Placement [chess.NumSquares]chess.ColouredPiece

// At returns the piece on sq.
func (p *Placement) At(sq chess.Square) chess.ColouredPiece {
	return p[sq.Index()]
}

// Set puts cp on sq.
func (p *Placement) Set(sq chess.Square, cp chess.ColouredPiece) {
	p[sq.Index()] = cp
}

// String returns the 64-character flattened placement with
// chess.EmptySymbol for empty squares.
func (p *Placement) String() string {
	var sb strings.Builder
	sb.Grow(chess.NumSquares)
	for _, cp := range p {
		sb.WriteByte(cp.Symbol())
	}
	return sb.String()
}

// FEN returns the run-length encoded placement field, ranks separated by
// '/' from rank 8 down to rank 1.
func (p *Placement) FEN() string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		empty := 0
		for col := 0; col < chess.BoardSize; col++ {
			cp := p[row*chess.BoardSize+col]
			if cp.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(cp.Symbol())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// King returns the square of colour's king, if there is one.
func (p *Placement) King(colour chess.Colour) (chess.Square, bool) {
	king := chess.ColouredPiece{Piece: chess.King, Colour: colour}
	for i, cp := range p {
		if cp == king {
			return chess.SquareAt(i), true
		}
	}
	return chess.Square{}, false
}

// Castling holds the four castling availability flags.
type Castling struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// String returns the FEN castling field, "-" when no right remains.
func (c Castling) String() string {
	var sb strings.Builder
	if c.WhiteKingside {
		sb.WriteByte('K')
	}
	if c.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if c.BlackKingside {
		sb.WriteByte('k')
	}
	if c.BlackQueenside {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// Fields is a FEN split into typed fields.
type Fields struct {
	Placement   Placement
	WhiteToMove bool
	Castling    Castling
	EnPassant   *chess.Square
	HalfMoves   int
	FullMoves   int
}

// FEN field names used in InvalidFenError.Field.
const (
	FieldCount     = "fields"
	FieldPlacement = "placement"
	FieldSide      = "side to move"
	FieldCastling  = "castling"
	FieldEnPassant = "en passant"
	FieldHalfMoves = "halfmove clock"
	FieldFullMoves = "fullmove number"
)

// ParseFEN splits and validates all six FEN fields. Errors are
// *errors.InvalidFenError values naming the offending field.
func ParseFEN(fen string) (*Fields, error) {
	parts := strings.Split(fen, " ")
	if len(parts) != 6 {
		return nil, errors.NewInvalidFen(fen, FieldCount, "want 6 space-separated fields, got %d", len(parts))
	}

	f := &Fields{}
	if err := parsePlacement(fen, parts[0], &f.Placement); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		f.WhiteToMove = true
	case "b":
	default:
		return nil, errors.NewInvalidFen(fen, FieldSide, "want w or b, got %q", parts[1])
	}

	castling, err := parseCastling(fen, parts[2])
	if err != nil {
		return nil, err
	}
	f.Castling = castling

	if parts[3] != "-" {
		sq, ok := chess.ParseSquare(parts[3])
		if !ok || (sq.Row != 2 && sq.Row != 5) {
			return nil, errors.NewInvalidFen(fen, FieldEnPassant, "bad target square %q", parts[3])
		}
		f.EnPassant = &sq
	}

	if f.HalfMoves, err = parseClock(parts[4], 0); err != nil {
		return nil, errors.NewInvalidFen(fen, FieldHalfMoves, "%v", err)
	}
	if f.FullMoves, err = parseClock(parts[5], 1); err != nil {
		return nil, errors.NewInvalidFen(fen, FieldFullMoves, "%v", err)
	}
	return f, nil
}

// FEN formats the fields back into a FEN string.
func (f *Fields) FEN() string {
	var sb strings.Builder
	sb.WriteString(f.Placement.FEN())
	if f.WhiteToMove {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(f.Castling.String())
	sb.WriteByte(' ')
	if f.EnPassant != nil {
		sb.WriteString(f.EnPassant.Name())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(f.HalfMoves))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(f.FullMoves))
	return sb.String()
}

// parsePlacement reads the piece placement field: 8 ranks of 8 files.
func parsePlacement(fen, field string, out *Placement) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != chess.BoardSize {
		return errors.NewInvalidFen(fen, FieldPlacement, "want 8 ranks, got %d", len(ranks))
	}
	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			cp, ok := chess.PieceFromSymbol(c)
			if !ok {
				return errors.NewInvalidFen(fen, FieldPlacement, "invalid piece character %q", c)
			}
			if col >= chess.BoardSize {
				return errors.NewInvalidFen(fen, FieldPlacement, "rank %d has more than 8 files", chess.BoardSize-row)
			}
			out.Set(chess.Square{Row: row, Col: col}, cp)
			col++
		}
		if col != chess.BoardSize {
			return errors.NewInvalidFen(fen, FieldPlacement, "rank %d has %d files", chess.BoardSize-row, col)
		}
	}
	return nil
}

func parseCastling(fen, field string) (Castling, error) {
	var c Castling
	if field == "-" {
		return c, nil
	}
	if field == "" {
		return c, errors.NewInvalidFen(fen, FieldCastling, "empty field")
	}
	for i := 0; i < len(field); i++ {
		var flag *bool
		switch field[i] {
		case 'K':
			flag = &c.WhiteKingside
		case 'Q':
			flag = &c.WhiteQueenside
		case 'k':
			flag = &c.BlackKingside
		case 'q':
			flag = &c.BlackQueenside
		default:
			return c, errors.NewInvalidFen(fen, FieldCastling, "invalid character %q", field[i])
		}
		if *flag {
			return c, errors.NewInvalidFen(fen, FieldCastling, "repeated right %q", field[i])
		}
		*flag = true
	}
	return c, nil
}

// parseClock parses a move counter that must be at least lowest.
func parseClock(s string, lowest int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if n < lowest {
		return 0, fmt.Errorf("%d is below %d", n, lowest)
	}
	return n, nil
}
