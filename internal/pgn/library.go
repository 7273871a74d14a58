package pgn

import (
	"strings"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/pgn-planes-go/internal/chess"
)

// parseLibrary delimits the game like HeaderScan, then lets notnil/chess
// replay it so only legal mainline moves survive. Games the library
// rejects fall back to the header-scan record.
func (p *Parser) parseLibrary(c *Cursor) (*GameRecord, bool) {
	g := p.sliceGame(c.Remaining())
	c.advance(g.end)
	if len(g.tagLines) == 0 && strings.TrimSpace(g.movetext) == "" {
		return nil, false
	}

	opt, err := nchess.PGN(strings.NewReader(g.text()))
	if err != nil {
		return p.fromSlice(g)
	}
	game := nchess.NewGame(opt)

	rec := newRecord()
	for tag, name := range chess.TagNameStrings {
		if pair := game.GetTagPair(name); pair != nil {
			rec.headers[tag] = pair.Value
		}
	}

	moves := game.Moves()
	positions := game.Positions()
	sans := make([]string, 0, len(moves))
	for i, m := range moves {
		san := nchess.AlgebraicNotation{}.Encode(positions[i], m)
		sans = append(sans, strings.TrimRight(san, "+#"))
	}
	rec.moves = strings.Join(sans, " ")
	return rec, true
}
