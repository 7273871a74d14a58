// Package grid encodes board positions as 8x8x31 float32 tensors and
// decodes them back to FEN.
//
// Plane layout (third axis):
//
//	0-11   pieces P,N,B,R,Q,K,p,n,b,r,q,k (1.0 where the piece stands)
//	12     side to move, 1.0 everywhere when White is to move
//	13     castling rights, one row segment per right
//	14     en passant target square
//	15     halfmove clock, broadcast
//	16     fullmove number, broadcast
//	17-28  controlled squares, same piece order as 0-11
//	29     pinned white pieces
//	30     pinned black pieces
package grid

import (
	"fmt"

	"gorgonia.org/tensor"

	"github.com/lgbarn/pgn-planes-go/internal/chess"
	"github.com/lgbarn/pgn-planes-go/internal/errors"
)

// Plane indices.
const (
	PiecePlanes      = 0
	SideToMovePlane  = 12
	CastlingPlane    = 13
	EnPassantPlane   = 14
	HalfMovePlane    = 15
	FullMovePlane    = 16
	ControlledPlanes = 17
	WhitePinsPlane   = 29
	BlackPinsPlane   = 30
	NumPlanes        = 31
)

var pieceLetters = "PNBRQKpnbrqk"

// PlaneName returns a short label for a plane index, e.g. "P",
// "castling" or "controlled_q".
func PlaneName(plane int) string {
	switch {
	case plane >= PiecePlanes && plane < SideToMovePlane:
		return pieceLetters[plane : plane+1]
	case plane == SideToMovePlane:
		return "side_to_move"
	case plane == CastlingPlane:
		return "castling"
	case plane == EnPassantPlane:
		return "en_passant"
	case plane == HalfMovePlane:
		return "half_moves"
	case plane == FullMovePlane:
		return "full_moves"
	case plane >= ControlledPlanes && plane < WhitePinsPlane:
		i := plane - ControlledPlanes
		return "controlled_" + pieceLetters[i:i+1]
	case plane == WhitePinsPlane:
		return "pins_white"
	case plane == BlackPinsPlane:
		return "pins_black"
	}
	return fmt.Sprintf("plane_%d", plane)
}

// Size is the board edge length.
const Size = chess.BoardSize

// Grid is a row x col x plane tensor of float32.
type Grid struct {
	t    *tensor.Dense
	data []float32
}

// New returns a zeroed grid.
func New() *Grid {
	data := make([]float32, Size*Size*NumPlanes)
	return &Grid{
		t:    tensor.New(tensor.WithShape(Size, Size, NumPlanes), tensor.WithBacking(data)),
		data: data,
	}
}

// FromTensor wraps an existing tensor. It must be float32 with shape
// 8x8x31.
func FromTensor(t *tensor.Dense) (*Grid, error) {
	shape := t.Shape()
	if len(shape) != 3 || shape[0] != Size || shape[1] != Size || shape[2] != NumPlanes {
		return nil, fmt.Errorf("shape %v, want (%d, %d, %d): %w", shape, Size, Size, NumPlanes, errors.ErrInvalidGrid)
	}
	data, ok := t.Data().([]float32)
	if !ok {
		return nil, fmt.Errorf("dtype %v, want float32: %w", t.Dtype(), errors.ErrInvalidGrid)
	}
	return &Grid{t: t, data: data}, nil
}

// Tensor returns the underlying tensor. It shares storage with the grid.
func (g *Grid) Tensor() *tensor.Dense {
	return g.t
}

// Data returns the backing slice in row, col, plane order.
func (g *Grid) Data() []float32 {
	return g.data
}

func offset(row, col, plane int) int {
	return (row*Size+col)*NumPlanes + plane
}

// At returns the value at (row, col, plane).
func (g *Grid) At(row, col, plane int) float32 {
	return g.data[offset(row, col, plane)]
}

// Set stores v at (row, col, plane).
func (g *Grid) Set(row, col, plane int, v float32) {
	g.data[offset(row, col, plane)] = v
}

// Fill sets every cell of a plane to v.
func (g *Grid) Fill(plane int, v float32) {
	for i := plane; i < len(g.data); i += NumPlanes {
		g.data[i] = v
	}
}

// Sum returns the sum of a plane.
func (g *Grid) Sum(plane int) float32 {
	var s float32
	for i := plane; i < len(g.data); i += NumPlanes {
		s += g.data[i]
	}
	return s
}

// Plane copies one plane out as an 8x8 array.
func (g *Grid) Plane(plane int) [Size][Size]float32 {
	var out [Size][Size]float32
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			out[row][col] = g.At(row, col, plane)
		}
	}
	return out
}

// setSquares marks every square of set with 1 on plane.
func (g *Grid) setSquares(plane int, set chess.SquareSet) {
	for _, sq := range set.Squares() {
		g.Set(sq.Row, sq.Col, plane, 1)
	}
}

// squares collects the cells of plane equal to 1.
func (g *Grid) squares(plane int) chess.SquareSet {
	var set chess.SquareSet
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if g.At(row, col, plane) == 1 {
				set.Add(chess.Square{Row: row, Col: col})
			}
		}
	}
	return set
}
