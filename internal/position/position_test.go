package position

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/pgn-planes-go/internal/chess"
	"github.com/lgbarn/pgn-planes-go/internal/errors"
	"github.com/lgbarn/pgn-planes-go/internal/testutil"
)

func TestNewStartPosition(t *testing.T) {
	p, err := New(testutil.StartFEN)
	require.NoError(t, err)

	assert.Equal(t, testutil.StartFEN, p.FEN())
	assert.Equal(t, testutil.StartFEN, p.String())
	assert.Len(t, p.Placement(), 64)
	assert.Equal(t, 32, 64-strings.Count(p.Placement(), "."))
	assert.True(t, p.WhiteToMove())
	assert.Equal(t, "KQkq", p.Castling().String())
	_, ok := p.EnPassant()
	assert.False(t, ok)
	assert.Equal(t, 0, p.HalfMoves())
	assert.Equal(t, 1, p.FullMoves())
	assert.False(t, p.InCheck())

	pins := p.Pins()
	assert.Zero(t, pins[0].Len())
	assert.Zero(t, pins[1].Len())

	e1, _ := chess.ParseSquare("e1")
	assert.Equal(t, chess.ColouredPiece{Piece: chess.King, Colour: chess.White}, p.PieceAt(e1))
}

func TestEnPassantSquare(t *testing.T) {
	p := MustNew("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	sq, ok := p.EnPassant()
	require.True(t, ok)
	assert.Equal(t, chess.Square{Row: 5, Col: 4}, sq)
	assert.False(t, p.WhiteToMove())
}

func TestPlacementOrder(t *testing.T) {
	p := MustNew("r1bqkbnr/ppp1pppp/2n5/1B1p4/3P4/4P3/PPP2PPP/RNBQK1NR b KQkq - 2 3")
	want := "r.bqkbnr" +
		"ppp.pppp" +
		"..n....." +
		".B.p...." +
		"...P...." +
		"....P..." +
		"PPP..PPP" +
		"RNBQK.NR"
	assert.Equal(t, want, p.Placement())
}

func TestEmptyBoard(t *testing.T) {
	p := MustNew("8/8/8/8/8/8/8/8 w - - 0 1")
	assert.Equal(t, strings.Repeat(".", 64), p.Placement())
	for i, set := range p.Controlled() {
		assert.Zerof(t, set.Len(), "controlled plane %d", i)
	}
	pins := p.Pins()
	assert.Zero(t, pins[0].Len())
	assert.Zero(t, pins[1].Len())
	assert.False(t, p.InCheck())
}

func TestNoPinsAfterCentralPawns(t *testing.T) {
	p := MustNew("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	pins := p.Pins()
	assert.Zero(t, pins[0].Len())
	assert.Zero(t, pins[1].Len())
}

func TestPinsIndexedByPinnedColour(t *testing.T) {
	p := MustNew("4r2k/8/8/b7/8/7n/3N4/4K2Q w - - 0 1")
	pins := p.Pins()
	assert.Equal(t, []string{"d2"}, pins[0].Names())
	assert.Equal(t, []string{"h3"}, pins[1].Names())
	assert.True(t, p.InCheck(), "white king on e1 faces the rook on e8")
}

func TestControlledSquareIndexLayout(t *testing.T) {
	p := MustNew(testutil.StartFEN)
	controlled := p.Controlled()

	// White pawns control the whole third rank: row 5, indices 40..47.
	want := chess.NewSquareSet()
	for col := 0; col < chess.BoardSize; col++ {
		want.Add(chess.Square{Row: 5, Col: col})
	}
	assert.True(t, controlled[0].Equal(want))
	assert.Equal(t, []int{40, 41, 42, 43, 44, 45, 46, 47}, controlled[0].Indices())

	// Black knights: a6, c6, d7, e7, f6, h6.
	assert.ElementsMatch(t, []string{"a6", "c6", "d7", "e7", "f6", "h6"}, controlled[7].Names())
}

func TestEqual(t *testing.T) {
	a := MustNew(testutil.StartFEN)
	b := MustNew(testutil.StartFEN)
	c := MustNew("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestNewRejectsInvalidFEN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"five fields", "8/8/8/8/8/8/8/8 w - - 0"},
		{"nine ranks", "8/8/8/8/8/8/8/8/8 w - - 0 1"},
		{"bad piece", "8/8/8/8/8/8/8/7z w - - 0 1"},
		{"bad side", "8/8/8/8/8/8/8/8 white - - 0 1"},
		{"negative clock", "8/8/8/8/8/8/8/8 w - - -3 1"},
		{"zero fullmove", "8/8/8/8/8/8/8/8 w - - 0 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.fen)
			assert.Nil(t, p)
			require.ErrorIs(t, err, errors.ErrInvalidFEN)
			var fenErr *errors.InvalidFenError
			require.True(t, stderrors.As(err, &fenErr))
			assert.Equal(t, tt.fen, fenErr.FEN)
		})
	}

	assert.Panics(t, func() { MustNew("not a fen") })
}

func TestFixturePositionsParse(t *testing.T) {
	for _, fen := range testutil.RoundTripFENs {
		_, err := New(fen)
		assert.NoError(t, err, fen)
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for _, fen := range testutil.RoundTripFENs {
			New(fen)
		}
	}
}
