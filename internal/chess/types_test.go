package chess

import (
	"testing"
)

func TestPieceSymbols(t *testing.T) {
	symbols := "PNBRQKpnbrqk"

	t.Run("symbol round trip", func(t *testing.T) {
		for i := 0; i < len(symbols); i++ {
			cp, ok := PieceFromSymbol(symbols[i])
			if !ok {
				t.Fatalf("PieceFromSymbol(%c) failed", symbols[i])
			}
			if got := cp.Symbol(); got != symbols[i] {
				t.Errorf("Symbol() = %c; want %c", got, symbols[i])
			}
		}
	})

	t.Run("plane order", func(t *testing.T) {
		for i := 0; i < len(symbols); i++ {
			cp, _ := PieceFromSymbol(symbols[i])
			if got := cp.PlaneIndex(); got != i {
				t.Errorf("PlaneIndex(%c) = %d; want %d", symbols[i], got, i)
			}
			back, ok := PieceFromPlane(i)
			if !ok || back != cp {
				t.Errorf("PieceFromPlane(%d) = %v, %v; want %v", i, back, ok, cp)
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, c := range []byte{'x', '1', '/', ' ', EmptySymbol} {
			if _, ok := PieceFromSymbol(c); ok {
				t.Errorf("PieceFromSymbol(%q) succeeded; want failure", c)
			}
		}
		if _, ok := PieceFromPlane(12); ok {
			t.Error("PieceFromPlane(12) succeeded; want failure")
		}
		if NoPiece.PlaneIndex() != -1 {
			t.Errorf("NoPiece.PlaneIndex() = %d; want -1", NoPiece.PlaneIndex())
		}
		if NoPiece.Symbol() != EmptySymbol {
			t.Errorf("NoPiece.Symbol() = %c; want %c", NoPiece.Symbol(), EmptySymbol)
		}
	})
}

func TestSquares(t *testing.T) {
	tests := []struct {
		name  string
		row   int
		col   int
		index int
	}{
		{"a8", 0, 0, 0},
		{"h8", 0, 7, 7},
		{"e6", 2, 4, 20},
		{"e3", 5, 4, 44},
		{"a1", 7, 0, 56},
		{"h1", 7, 7, 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq, ok := ParseSquare(tt.name)
			if !ok {
				t.Fatalf("ParseSquare(%q) failed", tt.name)
			}
			if sq.Row != tt.row || sq.Col != tt.col {
				t.Errorf("ParseSquare(%q) = (%d,%d); want (%d,%d)", tt.name, sq.Row, sq.Col, tt.row, tt.col)
			}
			if sq.Index() != tt.index {
				t.Errorf("Index() = %d; want %d", sq.Index(), tt.index)
			}
			if got := SquareAt(tt.index).Name(); got != tt.name {
				t.Errorf("SquareAt(%d).Name() = %q; want %q", tt.index, got, tt.name)
			}
		})
	}

	for _, bad := range []string{"", "e", "i1", "a9", "a0", "e33"} {
		if _, ok := ParseSquare(bad); ok {
			t.Errorf("ParseSquare(%q) succeeded; want failure", bad)
		}
	}

	if (Square{Row: 0, Col: 0}).Offset(-1, 0).OnBoard() {
		t.Error("square above a8 reported on board")
	}
}

func TestTagNames(t *testing.T) {
	if got := len(TagNameStrings); got != 17 {
		t.Fatalf("len(TagNameStrings) = %d; want 17", got)
	}
	if TagNameStrings[EventTag] != "Event" || TagNameStrings[TerminationTag] != "Termination" {
		t.Errorf("schema ends = %q..%q", TagNameStrings[EventTag], TagNameStrings[TerminationTag])
	}
	for i, name := range TagNameStrings {
		if got, ok := StringToTagName[name]; !ok || got != TagName(i) {
			t.Errorf("StringToTagName[%q] = %v, %v; want %v", name, got, ok, TagName(i))
		}
	}
	if TagName(99).String() != "Unknown" {
		t.Errorf("TagName(99).String() = %q", TagName(99).String())
	}
}
