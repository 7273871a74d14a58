package pgn

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lgbarn/pgn-planes-go/internal/chess"
)

// headerPattern pairs a schema field with its tag-pair expression.
type headerPattern struct {
	tag chess.TagName
	re  *regexp.Regexp
}

// patterns holds every expression a Parser needs, compiled once per Parser.
type patterns struct {
	headers   []headerPattern
	comment   *regexp.Regexp
	variation *regexp.Regexp
	move      *regexp.Regexp
	game      *regexp.Regexp
	tagLine   *regexp.Regexp
}

// sanMove is the combined move grammar: optional move number, the move
// (captured), optional check/mate suffix, optional detached glyph.
const sanMove = `(?:\d+\.+\s*)?` +
	`([PNBRQK]?[a-h]?[1-8]?x?[a-h][1-8](?:=[NBRQ])?` +
	`|O-O(?:-O)?|0-0(?:-0)?` +
	`|[PNBRQK][a-h1-8]?x?[a-h][1-8]?` +
	`|[a-h]x?[a-h][1-8](?:=[NBRQ])?)` +
	`[+#]?(?:\s[!?]+)?`

func compilePatterns() *patterns {
	p := &patterns{
		comment:   regexp.MustCompile(`(?m)\{[^}]*\}|;.*$`),
		variation: regexp.MustCompile(`\([^()]*\)`),
		move:      regexp.MustCompile(sanMove),
		game:      regexp.MustCompile(`(?s)\[Event.*?[^"](1/2-1/2|1-0|0-1|1/2 1/2|\*)`),
		tagLine:   regexp.MustCompile(`(?m)^\s*\[.*$`),
	}
	for tag, name := range chess.TagNameStrings {
		p.headers = append(p.headers, headerPattern{
			tag: chess.TagName(tag),
			re:  regexp.MustCompile(fmt.Sprintf(`(?m)^\s*\[%s\s+"(.*)"\s*\]`, regexp.QuoteMeta(name))),
		})
	}
	return p
}

// matchHeaderLine records a single tag-pair line into rec and reports the
// field it matched.
func (p *patterns) matchHeaderLine(line string, rec *GameRecord) (chess.TagName, bool) {
	for _, h := range p.headers {
		if m := h.re.FindStringSubmatch(line); m != nil {
			rec.headers[h.tag] = m[1]
			return h.tag, true
		}
	}
	return 0, false
}

// matchHeaderSpan applies each field pattern to a whole game span; the first
// occurrence of each tag wins.
func (p *patterns) matchHeaderSpan(span string, rec *GameRecord) {
	for _, h := range p.headers {
		if m := h.re.FindStringSubmatch(span); m != nil {
			rec.headers[h.tag] = m[1]
		}
	}
}

// isTermination reports whether tok is a game termination marker.
func isTermination(tok string) bool {
	switch tok {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	}
	return false
}

// extractMoves strips comments and variations from movetext and returns
// the mainline moves joined by single spaces.
func (p *patterns) extractMoves(movetext string) string {
	text := p.comment.ReplaceAllString(movetext, "")
	for p.variation.MatchString(text) {
		text = p.variation.ReplaceAllString(text, "")
	}

	var moves []string
	for _, m := range p.move.FindAllStringSubmatch(text, -1) {
		moves = append(moves, m[1])
	}
	if n := len(moves); n > 0 && isTermination(moves[n-1]) {
		moves = moves[:n-1]
	}
	return strings.Join(moves, " ")
}

// hasTermination reports whether movetext ends a game explicitly.
func hasTermination(movetext string) bool {
	fields := strings.Fields(movetext)
	return len(fields) > 0 && isTermination(fields[len(fields)-1])
}
