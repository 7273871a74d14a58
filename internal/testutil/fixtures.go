package testutil

// Positions exercised by round-trip tests in several packages.
var RoundTripFENs = []string{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"r1bqkbnr/ppp1pppp/2n5/1B1p4/3P4/4P3/PPP2PPP/RNBQK1NR b KQkq - 2 3",
	"R7/6p1/P1R2pkp/8/r3P1K1/5P1P/6r1/8 w - - 0 45",
	"r1b1k1nr/ppp1qppp/2n5/1B1p4/1b1p4/1PN1PN2/PBP2PPP/R2QK2R w KQkq - 0 8",
	"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	"8/8/8/8/8/8/8/8 w - - 0 1",
	"4k3/8/8/8/8/8/8/4K2R w K - 12 60",
}

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// LichessGame is a complete game with the full header schema.
const LichessGame = `[Event "Rated Blitz game"]
[Site "https://lichess.org/abcdefgh"]
[Date "2023.07.21"]
[Round "-"]
[White "alpha"]
[Black "beta"]
[Result "1-0"]
[UTCDate "2023.07.21"]
[UTCTime "12:30:05"]
[WhiteElo "1850"]
[BlackElo "1790"]
[WhiteRatingDiff "+6"]
[BlackRatingDiff "-6"]
[ECO "C60"]
[Opening "Ruy Lopez"]
[TimeControl "180+2"]
[Termination "Normal"]

1. e4 { [%clk 0:03:00] } 1... e5 { [%clk 0:03:00] } 2. Nf3 Nc6 3. Bb5 a6?! 4. Ba4 Nf6 5. O-O Be7 1-0
`

// MultiGameText holds three concatenated games.
const MultiGameText = `[Event "First"]
[Result "1-0"]

1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qxf7# 1-0

[Event "Second"]
[Result "0-1"]

1. f3 e5 2. g4 Qh4# 0-1

[Event "Third"]
[Result "1/2-1/2"]

1. d4 d5 2. c4 c6 1/2-1/2
`
