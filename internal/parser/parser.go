package parser

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/pgn-planes-go/internal/chess"
)

// Comment is a comment, annotation, result or variation attached to the
// ply most recently completed.
type Comment struct {
	MoveNumber int
	Side       chess.Colour
	Text       string
}

// ParseResult holds the mainline moves and the comments found in movetext.
type ParseResult struct {
	Moves    []string
	Comments []Comment
}

// MovetextParser parses movetext into moves and attached comments.
// The zero value is ready to use and does not log.
type MovetextParser struct {
	logger zerolog.Logger
	logSet bool
}

// Option configures a MovetextParser.
type Option func(*MovetextParser)

// WithLogger logs tokenization overruns at warn level.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *MovetextParser) {
		p.logger = logger
		p.logSet = true
	}
}

// NewMovetextParser creates a parser with the given options.
func NewMovetextParser(opts ...Option) *MovetextParser {
	p := &MovetextParser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseMovetext parses movetext with a default parser.
func ParseMovetext(text string) ParseResult {
	var p MovetextParser
	return p.Parse(text)
}

// parseState tracks side to move and the pending comment buffer.
type parseState struct {
	result     ParseResult
	moveNumber int
	toMove     chess.Colour
	lastMoved  chess.Colour
	pending    strings.Builder
}

// flushComment attaches the buffered text to the last completed ply.
func (s *parseState) flushComment() {
	text := strings.TrimSpace(s.pending.String())
	s.pending.Reset()
	if text == "" {
		return
	}
	s.result.Comments = append(s.result.Comments, Comment{
		MoveNumber: s.moveNumber,
		Side:       s.lastMoved,
		Text:       text,
	})
}

func (s *parseState) buffer(text string) {
	s.pending.WriteByte(' ')
	s.pending.WriteString(text)
}

// Parse tokenizes and parses movetext.
func (p *MovetextParser) Parse(text string) ParseResult {
	raw, warnings := TokenizeWithWarnings(text)
	if p.logSet {
		for _, w := range warnings {
			p.logger.Warn().Err(w).Int("offset", w.Offset).Str("mode", w.Mode).Msg("flushed unterminated movetext token")
		}
	}

	if len(raw) == 0 {
		return ParseResult{}
	}

	tokens := make([]Token, len(raw))
	onlyComments := true
	for i, r := range raw {
		tokens[i] = Classify(r)
		if tokens[i].Kind != CommentToken {
			onlyComments = false
		}
	}

	if onlyComments {
		return ParseResult{Comments: []Comment{{
			MoveNumber: 0,
			Side:       chess.White,
			Text:       strings.Join(raw, " "),
		}}}
	}

	st := &parseState{toMove: chess.White, lastMoved: chess.Black}
	for _, tok := range tokens {
		switch tok.Kind {
		case MoveNumberToken:
			st.flushComment()
			st.moveNumber = tok.Number()
			if tok.BlackContinuation() {
				st.toMove = chess.Black
			} else {
				st.toMove = chess.White
			}
		case MoveToken:
			st.flushComment()
			st.result.Moves = append(st.result.Moves, tok.Move)
			if tok.Glyph != "" {
				st.result.Comments = append(st.result.Comments, Comment{
					MoveNumber: st.moveNumber,
					Side:       st.toMove,
					Text:       tok.Glyph,
				})
			}
			st.lastMoved = st.toMove
			st.toMove = st.toMove.Opposite()
		case CommentToken, AnnotationToken, ResultToken, VariationToken:
			st.buffer(tok.Text)
		}
	}
	st.flushComment()

	return st.result
}
