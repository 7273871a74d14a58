// Package pgn extracts fixed-schema game records from PGN text.
package pgn

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/lgbarn/pgn-planes-go/internal/chess"
)

// Columns returns the 17 header fields followed by the Moves column.
func Columns() []string {
	cols := make([]string, 0, chess.NumHeaderTags+1)
	for _, name := range chess.TagNameStrings {
		cols = append(cols, name)
	}
	return append(cols, chess.MovesColumn)
}

// GameRecord is one parsed game: the fixed header fields and the mainline
// moves joined by single spaces. It is immutable once built.
type GameRecord struct {
	headers [chess.NumHeaderTags]string
	moves   string
}

// newRecord returns a record with every header set to "?".
func newRecord() *GameRecord {
	r := &GameRecord{}
	for i := range r.headers {
		r.headers[i] = chess.UnknownTagValue
	}
	return r
}

// NewRecord builds a record from tag values keyed by PGN tag name.
// Tags outside the schema are ignored.
func NewRecord(tags map[string]string, moves string) *GameRecord {
	r := newRecord()
	for name, value := range tags {
		if tag, ok := chess.StringToTagName[name]; ok {
			r.headers[tag] = value
		}
	}
	r.moves = moves
	return r
}

// Get returns a header field.
func (r *GameRecord) Get(tag chess.TagName) string {
	if tag < 0 || tag >= chess.NumHeaderTags {
		return chess.UnknownTagValue
	}
	return r.headers[tag]
}

// Header returns a header field by PGN tag name.
func (r *GameRecord) Header(name string) (string, bool) {
	tag, ok := chess.StringToTagName[name]
	if !ok {
		return "", false
	}
	return r.headers[tag], true
}

// Moves returns the space-joined mainline moves; empty when the game has none.
func (r *GameRecord) Moves() string {
	return r.moves
}

// MoveList returns the moves as a slice.
func (r *GameRecord) MoveList() []string {
	return strings.Fields(r.moves)
}

// Row returns the record in Columns() order.
func (r *GameRecord) Row() []string {
	row := make([]string, 0, chess.NumHeaderTags+1)
	row = append(row, r.headers[:]...)
	return append(row, r.moves)
}

// PlayedAt returns the UTC start time of the game from UTCDate/UTCTime,
// falling back to Date. PGN dates use dots, e.g. "2023.07.21".
func (r *GameRecord) PlayedAt() (time.Time, bool) {
	date := r.headers[chess.UTCDateTag]
	if !known(date) {
		date = r.headers[chess.DateTag]
	}
	if !known(date) {
		return time.Time{}, false
	}
	stamp := strings.ReplaceAll(date, ".", "-")
	if clock := r.headers[chess.UTCTimeTag]; known(clock) {
		stamp += " " + clock
	}
	t, err := dateparse.ParseIn(stamp, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// known reports whether a header value carries information. PGN uses "?"
// for unknown fields and "????.??.??" style placeholders in dates.
func known(v string) bool {
	return v != "" && !strings.Contains(v, "?")
}
