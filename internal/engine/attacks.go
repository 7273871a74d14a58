package engine

import "github.com/lgbarn/pgn-planes-go/internal/chess"

// Direction tables as (row, col) deltas in grid coordinates, where a
// smaller row is a higher rank.
var (
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	knightJumps  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingSteps    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// pawnForward returns the row delta of a pawn's advance.
func pawnForward(colour chess.Colour) int {
	if colour == chess.White {
		return -1
	}
	return 1
}

// Attacks returns the squares attacked by the piece on from. Pawns attack
// the two forward diagonals whatever stands there; sliders stop at the
// first occupied square and include it. An empty square attacks nothing.
func Attacks(p *Placement, from chess.Square) chess.SquareSet {
	var set chess.SquareSet
	cp := p.At(from)
	switch cp.Piece {
	case chess.Pawn:
		dr := pawnForward(cp.Colour)
		set.Add(from.Offset(dr, -1))
		set.Add(from.Offset(dr, 1))
	case chess.Knight:
		for _, d := range knightJumps {
			set.Add(from.Offset(d[0], d[1]))
		}
	case chess.King:
		for _, d := range kingSteps {
			set.Add(from.Offset(d[0], d[1]))
		}
	case chess.Bishop:
		slide(p, from, diagonalDirs, &set)
	case chess.Rook:
		slide(p, from, straightDirs, &set)
	case chess.Queen:
		slide(p, from, diagonalDirs, &set)
		slide(p, from, straightDirs, &set)
	}
	return set
}

func slide(p *Placement, from chess.Square, dirs [][2]int, set *chess.SquareSet) {
	for _, d := range dirs {
		for sq := from.Offset(d[0], d[1]); sq.OnBoard(); sq = sq.Offset(d[0], d[1]) {
			set.Add(sq)
			if !p.At(sq).IsEmpty() {
				break // Blocked
			}
		}
	}
}

// ControlledSquares returns, for each piece kind in plane order
// (P,N,B,R,Q,K,p,n,b,r,q,k), the union of the attack sets of all pieces
// of that kind.
func ControlledSquares(p *Placement) [2 * chess.NumPieceTypes]chess.SquareSet {
	var out [2 * chess.NumPieceTypes]chess.SquareSet
	for i, cp := range p {
		if cp.IsEmpty() {
			continue
		}
		idx := cp.PlaneIndex()
		out[idx] = out[idx].Union(Attacks(p, chess.SquareAt(i)))
	}
	return out
}

// IsSquareAttacked reports whether any piece of byColour attacks sq.
func IsSquareAttacked(p *Placement, sq chess.Square, byColour chess.Colour) bool {
	for i, cp := range p {
		if !cp.IsEmpty() && cp.Colour == byColour && Attacks(p, chess.SquareAt(i)).Has(sq) {
			return true
		}
	}
	return false
}

// Pins returns the absolutely pinned pieces of each colour, indexed by the
// pinned piece's own colour. A piece is pinned when it is the only piece
// between its king and an enemy slider moving along that line. A side
// without a king has no pins.
func Pins(p *Placement) [2]chess.SquareSet {
	var out [2]chess.SquareSet
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		king, ok := p.King(colour)
		if !ok {
			continue
		}
		for _, d := range straightDirs {
			if sq, ok := pinnedOnRay(p, king, d, colour, chess.Rook); ok {
				out[colour.Index()].Add(sq)
			}
		}
		for _, d := range diagonalDirs {
			if sq, ok := pinnedOnRay(p, king, d, colour, chess.Bishop); ok {
				out[colour.Index()].Add(sq)
			}
		}
	}
	return out
}

// pinnedOnRay walks from the king along d. The ray pins when it meets one
// own piece followed by an enemy queen or an enemy piece of kind slider.
func pinnedOnRay(p *Placement, king chess.Square, d [2]int, colour chess.Colour, slider chess.Piece) (chess.Square, bool) {
	var candidate chess.Square
	found := false
	for sq := king.Offset(d[0], d[1]); sq.OnBoard(); sq = sq.Offset(d[0], d[1]) {
		cp := p.At(sq)
		if cp.IsEmpty() {
			continue
		}
		if !found {
			if cp.Colour != colour {
				return chess.Square{}, false
			}
			candidate, found = sq, true
			continue
		}
		if cp.Colour != colour && (cp.Piece == slider || cp.Piece == chess.Queen) {
			return candidate, true
		}
		return chess.Square{}, false
	}
	return chess.Square{}, false
}
