package pgn

import (
	"testing"
	"time"

	"github.com/lgbarn/pgn-planes-go/internal/chess"
	"github.com/lgbarn/pgn-planes-go/internal/testutil"
)

func TestColumns(t *testing.T) {
	cols := Columns()
	if len(cols) != 18 {
		t.Fatalf("len(Columns()) = %d, want 18", len(cols))
	}
	testutil.AssertEqual(t, cols[:4], []string{"Event", "Site", "Date", "Round"})
	testutil.AssertEqual(t, cols[14:], []string{"UTCDate", "UTCTime", "Termination", "Moves"})
}

func TestNewRecord(t *testing.T) {
	rec := NewRecord(map[string]string{
		"Event":     "Casual",
		"WhiteElo":  "2100",
		"Annotator": "ignored",
	}, "e4 c5")

	if got := rec.Get(chess.EventTag); got != "Casual" {
		t.Errorf("Event = %q, want %q", got, "Casual")
	}
	if got, ok := rec.Header("WhiteElo"); !ok || got != "2100" {
		t.Errorf("Header(WhiteElo) = %q, %v", got, ok)
	}
	if got := rec.Get(chess.SiteTag); got != "?" {
		t.Errorf("Site = %q, want %q", got, "?")
	}
	if got := rec.Get(chess.NumHeaderTags); got != "?" {
		t.Errorf("Get(out of range) = %q, want %q", got, "?")
	}
	testutil.AssertEqual(t, rec.MoveList(), []string{"e4", "c5"})

	row := rec.Row()
	if len(row) != len(Columns()) {
		t.Fatalf("len(Row()) = %d, want %d", len(row), len(Columns()))
	}
	if row[len(row)-1] != "e4 c5" {
		t.Errorf("last column = %q, want %q", row[len(row)-1], "e4 c5")
	}
}

func TestPlayedAt(t *testing.T) {
	tests := []struct {
		name string
		tags map[string]string
		want time.Time
		ok   bool
	}{
		{
			name: "utc date and time",
			tags: map[string]string{"UTCDate": "2023.07.21", "UTCTime": "12:30:05"},
			want: time.Date(2023, 7, 21, 12, 30, 5, 0, time.UTC),
			ok:   true,
		},
		{
			name: "falls back to date",
			tags: map[string]string{"Date": "2019.01.02"},
			want: time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "unknown date",
			tags: map[string]string{"Date": "????.??.??"},
		},
		{
			name: "no date",
			tags: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NewRecord(tt.tags, "").PlayedAt()
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("PlayedAt() = %v, want %v", got, tt.want)
			}
		})
	}
}
