package parser

import (
	"testing"
)

// Sample movetext for benchmarks
const (
	plainMovetext = `1. e4 e5 2. Nf3 Nc6 3. Bc4 Bc5 4. c3 Nf6 5. d4 exd4 6. cxd4 Bb4+ 7. Nc3 Nxe4
8. O-O Nxc3 9. bxc3 Bxc3 10. Qb3 Bxa1 11. Bxf7+ Kf8 12. Bg5 Ne7 13. Ne5 Bxd4
14. Bg6 d5 15. Qf3+ Bf5 16. Bxf5 Bxe5 17. Be6+ Bf6 18. Bxf6 gxf6 19. Qxf6+ Ke8
20. Qf7# 1-0`

	annotatedMovetext = `1. e4 {Best by test} e5 2. Nf3 Nc6 3. Bb5 {The Ruy Lopez} a6 4. Ba4 Nf6
5. O-O Be7 6. Re1 b5 7. Bb3 d6 8. c3 O-O 9. h3 Nb8!? {A prophylactic retreat}
10. d4 Nbd7 11. Nbd2 Bb7 12. Bc2 Re8 13. Nf1 Bf8 14. Ng3 g6 15. Bg5 h6
16. Bd2 Bg7 17. a4 c5 18. d5 c4 19. b4 Nh7 20. Be3 h5 1-0`

	variationMovetext = `1. e4 (1. d4 d5 2. c4 {Queen's Gambit}) 1... e5 (1... c5 {Sicilian}) 2. Nf3
(2. Nc3 {Vienna Game} (2. f4 exf4)) 2... Nc6 3. Bb5 {Ruy Lopez} *`
)

var benchCases = map[string]string{
	"Plain":      plainMovetext,
	"Annotated":  annotatedMovetext,
	"Variations": variationMovetext,
}

func BenchmarkTokenize(b *testing.B) {
	for name, text := range benchCases {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Tokenize(text)
			}
		})
	}
}

func BenchmarkParseMovetext(b *testing.B) {
	p := NewMovetextParser()
	for name, text := range benchCases {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				p.Parse(text)
			}
		})
	}
}

func BenchmarkClassify(b *testing.B) {
	tokens := map[string]string{
		"Pawn":       "e4",
		"Piece":      "Nf3",
		"Capture":    "Nbxd4",
		"Promotion":  "e8=Q+",
		"Castling":   "O-O-O",
		"MoveNumber": "12...",
		"Comment":    "{comment}",
	}

	for name, tok := range tokens {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Classify(tok)
			}
		})
	}
}
