// Package errors provides sentinel errors and error types for pgn-planes.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrTokenizationOverrun indicates an unterminated comment or variation.
	ErrTokenizationOverrun = errors.New("unterminated movetext token")

	// ErrInvalidGrid indicates an encoded grid with the wrong shape or
	// contradictory planes.
	ErrInvalidGrid = errors.New("invalid encoded grid")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnsupportedSource indicates an input location that cannot be opened.
	ErrUnsupportedSource = errors.New("unsupported source")
)

// InvalidFenError reports which FEN field could not be parsed.
// It unwraps to ErrInvalidFEN.
type InvalidFenError struct {
	FEN    string // The offending FEN string
	Field  string // Name of the field that failed ("fields", "placement", ...)
	Reason string // Human readable detail
}

// Error returns a formatted error message including the field and FEN.
func (e *InvalidFenError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrInvalidFEN.Error())
	if e.Field != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Field)
	}
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	if e.FEN != "" {
		fmt.Fprintf(&sb, " (%q)", e.FEN)
	}
	return sb.String()
}

// Unwrap returns ErrInvalidFEN so callers can use errors.Is.
func (e *InvalidFenError) Unwrap() error {
	return ErrInvalidFEN
}

// NewInvalidFen builds an InvalidFenError with a formatted reason.
func NewInvalidFen(fen, field, format string, args ...interface{}) *InvalidFenError {
	return &InvalidFenError{FEN: fen, Field: field, Reason: fmt.Sprintf(format, args...)}
}

// TokenizationOverrun records an unterminated comment or variation that the
// tokenizer flushed as a best-effort final token. It is a warning, never a
// hard failure.
type TokenizationOverrun struct {
	Offset   int    // Byte offset where the unterminated token started
	Mode     string // "comment" or "variation"
	Fragment string // The flushed partial token
}

// Error returns a description of the overrun.
func (e *TokenizationOverrun) Error() string {
	return fmt.Sprintf("%v: %s at offset %d: %q", ErrTokenizationOverrun, e.Mode, e.Offset, e.Fragment)
}

// Unwrap returns ErrTokenizationOverrun.
func (e *TokenizationOverrun) Unwrap() error {
	return ErrTokenizationOverrun
}

// GameError wraps errors with game context, including the game number
// and stream offset. It implements the error interface and supports
// unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err     error  // The underlying error
	GameNum int    // 1-based game number in the stream
	Offset  int64  // Byte offset of the game in the decompressed stream (-1 if unknown)
	File    string // Source name (if known)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, e.File)
	}

	parts = append(parts, fmt.Sprintf("game %d", e.GameNum))

	if e.Offset >= 0 {
		parts = append(parts, fmt.Sprintf("offset %d", e.Offset))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
