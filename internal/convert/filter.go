package convert

import (
	"strconv"
	"strings"
	"time"

	"github.com/lgbarn/pgn-planes-go/internal/chess"
	"github.com/lgbarn/pgn-planes-go/internal/config"
	"github.com/lgbarn/pgn-planes-go/internal/pgn"
)

// filter applies a FilterConfig to records.
type filter struct {
	minElo      int
	since       time.Time
	until       time.Time
	termination string
	active      bool
}

func newFilter(cfg *config.FilterConfig) *filter {
	f := &filter{
		minElo:      cfg.MinElo,
		since:       cfg.Since,
		until:       cfg.Until,
		termination: cfg.Termination,
		active:      cfg.Active(),
	}
	// A bare date bound covers the whole day.
	if !f.until.IsZero() && f.until.Equal(f.until.Truncate(24*time.Hour)) {
		f.until = f.until.Add(24*time.Hour - time.Nanosecond)
	}
	return f
}

// keep reports whether rec passes every configured filter.
func (f *filter) keep(rec *pgn.GameRecord) bool {
	if !f.active {
		return true
	}
	if f.minElo > 0 && (!ratedAtLeast(rec.Get(chess.WhiteEloTag), f.minElo) ||
		!ratedAtLeast(rec.Get(chess.BlackEloTag), f.minElo)) {
		return false
	}
	if !f.since.IsZero() || !f.until.IsZero() {
		played, ok := rec.PlayedAt()
		if !ok {
			return false
		}
		if !f.since.IsZero() && played.Before(f.since) {
			return false
		}
		if !f.until.IsZero() && played.After(f.until) {
			return false
		}
	}
	if f.termination != "" && !strings.EqualFold(rec.Get(chess.TerminationTag), f.termination) {
		return false
	}
	return true
}

func ratedAtLeast(elo string, floor int) bool {
	n, err := strconv.Atoi(elo)
	return err == nil && n >= floor
}
