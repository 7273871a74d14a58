// Package chess provides core chess types shared by the parsers, the
// position model and the grid encoder.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Index returns 0 for White and 1 for Black.
func (c Colour) Index() int {
	return int(c)
}

// Piece represents a chess piece type.
type Piece int

const (
	Empty Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// NumPieceTypes is the number of real piece types (Pawn..King).
const NumPieceTypes = 6

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// IsSlider reports whether the piece moves along rays.
func (p Piece) IsSlider() bool {
	return p == Bishop || p == Rook || p == Queen
}

// EmptySymbol marks an empty square in flattened piece placements.
const EmptySymbol = '.'

// ColouredPiece is a piece together with its colour.
// The zero value is an empty square.
type ColouredPiece struct {
	Piece  Piece
	Colour Colour
}

// NoPiece is the empty square.
var NoPiece = ColouredPiece{}

// IsEmpty reports whether the square holds no piece.
func (cp ColouredPiece) IsEmpty() bool {
	return cp.Piece == Empty
}

// Symbol returns the FEN letter: uppercase for White, lowercase for Black,
// EmptySymbol for an empty square.
func (cp ColouredPiece) Symbol() byte {
	if cp.IsEmpty() {
		return EmptySymbol
	}
	letter := cp.Piece.Letter()
	if cp.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// PlaneIndex returns the piece index in the fixed plane order
// P,N,B,R,Q,K,p,n,b,r,q,k, or -1 for an empty square.
func (cp ColouredPiece) PlaneIndex() int {
	if cp.IsEmpty() {
		return -1
	}
	return int(cp.Piece) - 1 + NumPieceTypes*cp.Colour.Index()
}

// PieceFromSymbol converts a FEN letter into a coloured piece.
func PieceFromSymbol(c byte) (ColouredPiece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	var p Piece
	switch c {
	case 'P':
		p = Pawn
	case 'N':
		p = Knight
	case 'B':
		p = Bishop
	case 'R':
		p = Rook
	case 'Q':
		p = Queen
	case 'K':
		p = King
	default:
		return NoPiece, false
	}
	return ColouredPiece{Piece: p, Colour: colour}, true
}

// PieceFromPlane is the inverse of PlaneIndex.
func PieceFromPlane(index int) (ColouredPiece, bool) {
	if index < 0 || index >= 2*NumPieceTypes {
		return NoPiece, false
	}
	return ColouredPiece{
		Piece:  Piece(index%NumPieceTypes + 1),
		Colour: Colour(index / NumPieceTypes),
	}, true
}

// Board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// Square addresses a board cell by grid coordinates: Row 0 is rank 8 and
// Col 0 is the a-file. Index() = Row*8 + Col.
type Square struct {
	Row int
	Col int
}

// SquareAt returns the square for a 0..63 index.
func SquareAt(index int) Square {
	return Square{Row: index / BoardSize, Col: index % BoardSize}
}

// Index returns the 0..63 row-major index.
func (s Square) Index() int {
	return s.Row*BoardSize + s.Col
}

// OnBoard reports whether the coordinates are inside the board.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square shifted by the given row and column deltas.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// Name returns the algebraic name, e.g. "e3".
func (s Square) Name() string {
	return fmt.Sprintf("%c%d", 'a'+s.Col, BoardSize-s.Row)
}

// String implements fmt.Stringer.
func (s Square) String() string {
	return s.Name()
}

// ParseSquare converts an algebraic name such as "e6" into a Square.
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return Square{}, false
	}
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, false
	}
	return Square{Row: BoardSize - int(rank-'0'), Col: int(file - 'a')}, true
}
