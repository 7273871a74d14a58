package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/pgn-planes-go/internal/chess"
	"github.com/lgbarn/pgn-planes-go/internal/pgn"
)

const lowercase = "abcdefghijklmnopqrstuvwxyz"

var results = []string{"1-0", "0-1", "1/2-1/2"}

// Generator produces random games made of legal moves, together with the
// record the parser is expected to extract from them.
type Generator struct {
	rng      *rand.Rand
	plies    int
	comments bool
	now      time.Time
}

// NewGenerator returns a generator. The same seed and now give the same
// games.
func NewGenerator(seed int64, plies int, comments bool, now time.Time) *Generator {
	return &Generator{
		rng:      rand.New(rand.NewSource(seed)), //nolint:gosec // G404: test data, not security sensitive
		plies:    plies,
		comments: comments,
		now:      now.UTC(),
	}
}

func (g *Generator) letters(set string, lo, hi int) string {
	n := lo + g.rng.Intn(hi-lo+1)
	b := make([]byte, n)
	for i := range b {
		b[i] = set[g.rng.Intn(len(set))]
	}
	return string(b)
}

func (g *Generator) signed(limit int) string {
	return fmt.Sprintf("%+d", g.rng.Intn(2*limit+1)-limit)
}

// Game returns game i as PGN text and as the expected record.
func (g *Generator) Game(i int) (string, *pgn.GameRecord) {
	day := g.now.AddDate(0, 0, -i)
	tags := map[string]string{
		"Event":           fmt.Sprintf("Event %d", i),
		"Site":            "https://lichess.org/" + g.letters(lowercase, 10, 10),
		"Date":            day.Format("2006.01.02"),
		"Round":           "-",
		"White":           g.letters(lowercase, 1, 20),
		"Black":           g.letters(lowercase, 1, 20),
		"Result":          results[g.rng.Intn(len(results))],
		"WhiteElo":        fmt.Sprint(100 + g.rng.Intn(2901)),
		"BlackElo":        fmt.Sprint(100 + g.rng.Intn(2901)),
		"WhiteRatingDiff": g.signed(99),
		"BlackRatingDiff": g.signed(99),
		"ECO":             g.letters(strings.ToUpper(lowercase)+"1234567890", 3, 3),
		"Opening":         g.letters(lowercase, 1, 20),
		"TimeControl":     fmt.Sprintf("%d+%d", 1+g.rng.Intn(999), 1+g.rng.Intn(9)),
		"UTCDate":         day.Format("2006.01.02"),
		"UTCTime":         g.now.Format("15:04:05"),
		"Termination":     "Normal",
	}

	var sb strings.Builder
	for _, name := range chess.TagNameStrings {
		fmt.Fprintf(&sb, "[%s %q]\n", name, tags[name])
	}
	sb.WriteByte('\n')

	game := nchess.NewGame()
	var moves []string
	for ply := 0; ply < g.plies; ply++ {
		valid := game.ValidMoves()
		if len(valid) == 0 {
			break
		}
		m := valid[g.rng.Intn(len(valid))]
		san := nchess.AlgebraicNotation{}.Encode(game.Position(), m)
		if err := game.Move(m); err != nil {
			break
		}

		switch {
		case ply%2 == 0:
			fmt.Fprintf(&sb, "%d. ", ply/2+1)
		case g.comments:
			fmt.Fprintf(&sb, "%d... ", ply/2+1)
		}
		sb.WriteString(san)
		sb.WriteByte(' ')
		if g.comments {
			fmt.Fprintf(&sb, "{ [%%eval %.2f] [%%clk %d:%02d:%02d] } ",
				g.rng.Float64()*2-1, g.rng.Intn(10), g.rng.Intn(60), g.rng.Intn(60))
		}
		moves = append(moves, strings.TrimRight(san, "+#"))
	}
	sb.WriteString(tags["Result"])
	sb.WriteByte('\n')

	return sb.String(), pgn.NewRecord(tags, strings.Join(moves, " "))
}
