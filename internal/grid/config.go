package grid

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/pgn-planes-go/internal/errors"
)

// PlaneConfig selects which plane groups an Encoder fills. Disabled
// groups stay zero.
type PlaneConfig struct {
	Pieces     bool `json:"pieces"`
	SideToMove bool `json:"side_to_move"`
	Castling   bool `json:"castling"`
	EnPassant  bool `json:"en_passant"`
	HalfMoves  bool `json:"half_moves"`
	FullMoves  bool `json:"full_moves"`
	Controlled bool `json:"controlled_squares"`
	Pins       bool `json:"pins"`
}

// DefaultPlaneConfig enables every plane.
func DefaultPlaneConfig() PlaneConfig {
	return PlaneConfig{
		Pieces:     true,
		SideToMove: true,
		Castling:   true,
		EnPassant:  true,
		HalfMoves:  true,
		FullMoves:  true,
		Controlled: true,
		Pins:       true,
	}
}

// LoadPlaneConfig reads a JSON object of plane switches. Keys that are
// absent keep their default (enabled); unknown keys are rejected.
func LoadPlaneConfig(r io.Reader) (PlaneConfig, error) {
	cfg := DefaultPlaneConfig()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return PlaneConfig{}, fmt.Errorf("plane config: %v: %w", err, errors.ErrInvalidConfig)
	}
	return cfg, nil
}

// LoadPlaneConfigFile reads a plane config from a JSON file.
func LoadPlaneConfigFile(path string) (PlaneConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return PlaneConfig{}, errors.Wrap(err, "plane config")
	}
	defer f.Close()
	return LoadPlaneConfig(f)
}

// Planes returns the indices of the enabled planes in ascending order.
func (c PlaneConfig) Planes() []int {
	var out []int
	add := func(on bool, from, to int) {
		if on {
			for p := from; p <= to; p++ {
				out = append(out, p)
			}
		}
	}
	add(c.Pieces, PiecePlanes, PiecePlanes+11)
	add(c.SideToMove, SideToMovePlane, SideToMovePlane)
	add(c.Castling, CastlingPlane, CastlingPlane)
	add(c.EnPassant, EnPassantPlane, EnPassantPlane)
	add(c.HalfMoves, HalfMovePlane, HalfMovePlane)
	add(c.FullMoves, FullMovePlane, FullMovePlane)
	add(c.Controlled, ControlledPlanes, ControlledPlanes+11)
	add(c.Pins, WhitePinsPlane, BlackPinsPlane)
	return out
}
