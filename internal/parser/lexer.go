package parser

import (
	"strings"

	"github.com/lgbarn/pgn-planes-go/internal/errors"
)

// State is the scanning mode of the tokenizer.
type State int

const (
	Default State = iota
	InComment
	InVariation
)

// String returns the name of the mode as used in overrun warnings.
func (s State) String() string {
	switch s {
	case InComment:
		return "comment"
	case InVariation:
		return "variation"
	}
	return "default"
}

// charClass classifies bytes that drive state transitions.
type charClass uint8

const (
	plainChar charClass = iota
	spaceChar
	commentStart
	commentEnd
	variationStart
	variationEnd
)

// Character classification table
var chTab [256]charClass

func init() {
	for _, c := range []byte{' ', '\t', '\r', '\n', '\v', '\f'} {
		chTab[c] = spaceChar
	}
	chTab['{'] = commentStart
	chTab['}'] = commentEnd
	chTab['('] = variationStart
	chTab[')'] = variationEnd
}

// scanState is threaded through step; depth is only meaningful in
// InVariation.
type scanState struct {
	mode  State
	depth int
}

// lexer accumulates raw tokens for a single Tokenize call.
type lexer struct {
	tokens  []string
	current strings.Builder
	start   int // offset of the current token
}

// flush appends the pending token, trimmed, if it is non-empty.
func (l *lexer) flush() {
	tok := strings.TrimSpace(l.current.String())
	l.current.Reset()
	if tok != "" {
		l.tokens = append(l.tokens, tok)
	}
}

// step consumes one byte at offset i and returns the next state.
func (l *lexer) step(st scanState, c byte, i int) scanState {
	switch st.mode {
	case InComment:
		l.current.WriteByte(c)
		if chTab[c] == commentEnd {
			l.flush()
			return scanState{mode: Default}
		}
		return st

	case InVariation:
		l.current.WriteByte(c)
		switch chTab[c] {
		case variationStart:
			st.depth++
		case variationEnd:
			st.depth--
			if st.depth == 0 {
				l.flush()
				return scanState{mode: Default}
			}
		}
		return st
	}

	switch chTab[c] {
	case commentStart:
		l.flush()
		l.start = i
		l.current.WriteByte(c)
		return scanState{mode: InComment}
	case variationStart:
		l.flush()
		l.start = i
		l.current.WriteByte(c)
		return scanState{mode: InVariation, depth: 1}
	case spaceChar:
		l.flush()
	default:
		if l.current.Len() == 0 {
			l.start = i
		}
		l.current.WriteByte(c)
	}
	return st
}

// Tokenize splits movetext into raw token strings. Comments and variations
// are kept whole, bare move numbers are merged with following lone dots.
// Unterminated comments or variations are flushed as a final token.
func Tokenize(text string) []string {
	tokens, _ := TokenizeWithWarnings(text)
	return tokens
}

// TokenizeWithWarnings is Tokenize that also reports an unterminated
// comment or variation at the end of input.
func TokenizeWithWarnings(text string) ([]string, []*errors.TokenizationOverrun) {
	var l lexer
	st := scanState{mode: Default}
	for i := 0; i < len(text); i++ {
		st = l.step(st, text[i], i)
	}

	var warnings []*errors.TokenizationOverrun
	if st.mode != Default {
		warnings = append(warnings, &errors.TokenizationOverrun{
			Offset:   l.start,
			Mode:     st.mode.String(),
			Fragment: strings.TrimSpace(l.current.String()),
		})
	}
	l.flush()

	return mergeMoveNumbers(l.tokens), warnings
}

// mergeMoveNumbers joins "12" "." into "12." and "12" "." "." into "12..".
func mergeMoveNumbers(raw []string) []string {
	out := make([]string, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		tok := raw[i]
		if isDigits(tok) && i+1 < len(raw) && raw[i+1] == "." {
			tok += "."
			i++
			if i+1 < len(raw) && raw[i+1] == "." {
				tok += "."
				i++
			}
		}
		out = append(out, tok)
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
