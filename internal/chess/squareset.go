package chess

import "math/bits"

// SquareSet is a set of board squares stored as a 64-bit mask, bit i
// standing for the square with Index() i.
type SquareSet uint64

// NewSquareSet returns a set holding the given squares.
func NewSquareSet(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s.Add(sq)
	}
	return s
}

// Add inserts sq. Squares off the board are ignored.
func (s *SquareSet) Add(sq Square) {
	if sq.OnBoard() {
		*s |= 1 << uint(sq.Index())
	}
}

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	return sq.OnBoard() && s&(1<<uint(sq.Index())) != 0
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Union returns the squares in either set.
func (s SquareSet) Union(other SquareSet) SquareSet {
	return s | other
}

// Equal reports whether both sets hold the same squares.
func (s SquareSet) Equal(other SquareSet) bool {
	return s == other
}

// Squares returns the members in ascending index order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for m := uint64(s); m != 0; m &= m - 1 {
		out = append(out, SquareAt(bits.TrailingZeros64(m)))
	}
	return out
}

// Indices returns the members' 0..63 indices in ascending order.
func (s SquareSet) Indices() []int {
	out := make([]int, 0, s.Len())
	for m := uint64(s); m != 0; m &= m - 1 {
		out = append(out, bits.TrailingZeros64(m))
	}
	return out
}

// Names returns the members' algebraic names in ascending index order.
func (s SquareSet) Names() []string {
	sqs := s.Squares()
	out := make([]string, len(sqs))
	for i, sq := range sqs {
		out[i] = sq.Name()
	}
	return out
}
