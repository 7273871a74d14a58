// Package parser provides movetext tokenizing and parsing.
package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// TokenKind represents the class of a movetext token.
type TokenKind int

const (
	UnknownToken TokenKind = iota
	MoveNumberToken
	MoveToken
	CommentToken
	AnnotationToken
	ResultToken
	VariationToken
)

// tokenKindNames maps token kinds to their string representations.
var tokenKindNames = [...]string{
	UnknownToken:    "UNKNOWN",
	MoveNumberToken: "MOVE_NUMBER",
	MoveToken:       "MOVE",
	CommentToken:    "COMMENT",
	AnnotationToken: "ANNOTATION",
	ResultToken:     "RESULT",
	VariationToken:  "VARIATION",
}

// String returns the string representation of a token kind.
func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "UNKNOWN"
}

// Token is a classified movetext token.
type Token struct {
	Kind TokenKind
	Text string

	// Move and Glyph are set for MoveToken: the SAN text and any trailing
	// !/? annotation.
	Move  string
	Glyph string
}

// Patterns used for classification.
var (
	moveNumberRe = regexp.MustCompile(`^\d+\.{1,3}$`)
	moveRe       = regexp.MustCompile(`^([PNBRQK]?[a-h]?[1-8]?x?[a-h][1-8](?:=[NBRQ])?[+#]?|(?:O-O(?:-O)?|0-0(?:-0)?)[+#]?)([!?]{1,2})?$`)
	annotationRe = regexp.MustCompile(`^(?:[!?]{1,2}|\$\d+)$`)
	resultRe     = regexp.MustCompile(`^(?:1-0|0-1|1/2-1/2|\*)$`)
)

// Classify tags a raw token with its kind, testing in priority order:
// move number, move, comment, annotation, result, variation.
func Classify(text string) Token {
	switch {
	case moveNumberRe.MatchString(text):
		return Token{Kind: MoveNumberToken, Text: text}
	case moveRe.MatchString(text):
		m := moveRe.FindStringSubmatch(text)
		return Token{Kind: MoveToken, Text: text, Move: m[1], Glyph: m[2]}
	case isBracketed(text, '{', '}'):
		return Token{Kind: CommentToken, Text: text}
	case annotationRe.MatchString(text):
		return Token{Kind: AnnotationToken, Text: text}
	case resultRe.MatchString(text):
		return Token{Kind: ResultToken, Text: text}
	case isBracketed(text, '(', ')'):
		return Token{Kind: VariationToken, Text: text}
	}
	return Token{Kind: UnknownToken, Text: text}
}

// Number returns the move number of a MoveNumberToken.
func (t Token) Number() int {
	if t.Kind != MoveNumberToken {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimRight(t.Text, "."))
	if err != nil {
		return 0
	}
	return n
}

// BlackContinuation reports whether a move number is written in the
// "12..." form that resumes with Black's move.
func (t Token) BlackContinuation() bool {
	return t.Kind == MoveNumberToken && strings.HasSuffix(t.Text, "...")
}

func isBracketed(s string, open, close byte) bool {
	return len(s) >= 2 && s[0] == open && s[len(s)-1] == close
}
