package pgn

import (
	"fmt"
	"strings"

	"github.com/lgbarn/pgn-planes-go/internal/errors"
)

// Strategy selects how games are located and read.
type Strategy int

const (
	// HeaderScan reads tag lines, then movetext up to the next tag line.
	HeaderScan Strategy = iota
	// WholeGame locates each game with one expression spanning from the
	// Event tag to the result token.
	WholeGame
	// Library hands each game to github.com/notnil/chess.
	Library
)

var strategyNames = [...]string{
	HeaderScan: "header-scan",
	WholeGame:  "whole-game",
	Library:    "library",
}

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return "unknown"
}

// ParseStrategy converts a configuration name into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if strings.EqualFold(name, n) {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("unknown parse strategy %q: %w", name, errors.ErrInvalidConfig)
}

// Parser extracts one game at a time from a Cursor. It holds only compiled
// patterns and is safe for concurrent use on independent cursors.
type Parser struct {
	strategy Strategy
	pat      *patterns
}

// NewParser returns a parser using the given strategy.
func NewParser(strategy Strategy) *Parser {
	return &Parser{strategy: strategy, pat: compilePatterns()}
}

// Strategy returns the parser's strategy.
func (p *Parser) Strategy() Strategy {
	return p.strategy
}

// ParseOneGame reads the next game at c and advances c past it.
// It returns nil, false when no further game exists; trailing whitespace
// or a truncated tail with no terminable game is not an error.
func (p *Parser) ParseOneGame(c *Cursor) (*GameRecord, bool) {
	switch p.strategy {
	case WholeGame:
		return p.parseWholeGame(c)
	case Library:
		return p.parseLibrary(c)
	default:
		return p.parseHeaderScan(c)
	}
}

// ParseAll drains text and returns every game found.
func (p *Parser) ParseAll(text string) []*GameRecord {
	c := NewCursor(text)
	var games []*GameRecord
	for {
		rec, ok := p.ParseOneGame(c)
		if !ok {
			return games
		}
		games = append(games, rec)
	}
}

// gameSlice is one game's text as delimited by the header-scan rules.
type gameSlice struct {
	tagLines []string
	movetext string
	end      int // offset just past the game in the scanned text
}

// text returns the game as PGN.
func (g gameSlice) text() string {
	return strings.Join(g.tagLines, "\n") + "\n\n" + g.movetext
}

// nextLine returns the line starting at pos and the offset after it.
func nextLine(text string, pos int) (string, int) {
	if i := strings.IndexByte(text[pos:], '\n'); i >= 0 {
		return text[pos : pos+i], pos + i + 1
	}
	return text[pos:], len(text)
}

// sliceGame splits off the next game: blank lines are skipped, lines
// starting with '[' are tags, and movetext runs to the next tag line.
// A repeated Event tag also ends the header block, so a game without
// movetext does not swallow the next game's tags.
func (p *Parser) sliceGame(text string) gameSlice {
	var g gameSlice
	pos := 0
	sawEvent := false
	for pos < len(text) {
		line, next := nextLine(text, pos)
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			pos = next
			continue
		}
		if trimmed[0] != '[' {
			break
		}
		if strings.HasPrefix(trimmed, "[Event ") || strings.HasPrefix(trimmed, "[Event\t") {
			if sawEvent {
				g.end = pos
				return g
			}
			sawEvent = true
		}
		g.tagLines = append(g.tagLines, trimmed)
		pos = next
	}

	start := pos
	for pos < len(text) {
		line, next := nextLine(text, pos)
		if strings.HasPrefix(strings.TrimLeft(line, " \t\r"), "[") {
			break
		}
		pos = next
	}
	g.movetext = text[start:pos]
	g.end = pos
	return g
}

// fromSlice builds a record from a sliced game; ok is false when the slice
// holds neither tags, moves nor a termination marker.
func (p *Parser) fromSlice(g gameSlice) (*GameRecord, bool) {
	rec := newRecord()
	for _, line := range g.tagLines {
		p.pat.matchHeaderLine(line, rec)
	}
	rec.moves = p.pat.extractMoves(g.movetext)
	if len(g.tagLines) == 0 && rec.moves == "" && !hasTermination(g.movetext) {
		return nil, false
	}
	return rec, true
}

func (p *Parser) parseHeaderScan(c *Cursor) (*GameRecord, bool) {
	g := p.sliceGame(c.Remaining())
	c.advance(g.end)
	return p.fromSlice(g)
}

func (p *Parser) parseWholeGame(c *Cursor) (*GameRecord, bool) {
	text := c.Remaining()
	loc := p.pat.game.FindStringIndex(text)
	if loc == nil {
		return nil, false
	}
	span := text[loc[0]:loc[1]]
	c.advance(loc[1])

	rec := newRecord()
	p.pat.matchHeaderSpan(span, rec)
	rec.moves = p.pat.extractMoves(p.pat.tagLine.ReplaceAllString(span, ""))
	return rec, true
}
