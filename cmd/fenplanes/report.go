package main

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/pgn-planes-go/internal/chess"
	"github.com/lgbarn/pgn-planes-go/internal/grid"
)

// planeReport is the JSON document written for each FEN.
type planeReport struct {
	FEN        string              `json:"fen"`
	Error      string              `json:"error,omitempty"`
	Sums       map[string]float32  `json:"plane_sums,omitempty"`
	Controlled map[string][]string `json:"controlled,omitempty"`
	Pins       map[string][]string `json:"pins,omitempty"`
	Decoded    string              `json:"decoded,omitempty"`
	Tensor     []float32           `json:"tensor,omitempty"`
}

func sortedNames(set chess.SquareSet) []string {
	names := set.Names()
	slices.Sort(names)
	return names
}

// newReport summarises one encoded grid.
func newReport(r grid.BatchResult, cfg grid.PlaneConfig, withDecode, withTensor bool) *planeReport {
	rep := &planeReport{FEN: r.FEN}
	if r.Err != nil {
		rep.Error = r.Err.Error()
		return rep
	}

	rep.Sums = make(map[string]float32)
	for _, plane := range cfg.Planes() {
		rep.Sums[grid.PlaneName(plane)] = r.Grid.Sum(plane)
	}

	if cfg.Controlled {
		rep.Controlled = make(map[string][]string)
		for i, set := range grid.DecodeControlledSquares(r.Grid) {
			if set.Len() > 0 {
				rep.Controlled[grid.PlaneName(grid.PiecePlanes+i)] = sortedNames(set)
			}
		}
	}
	if cfg.Pins {
		pins := grid.DecodePins(r.Grid)
		rep.Pins = map[string][]string{
			"white": sortedNames(pins[0]),
			"black": sortedNames(pins[1]),
		}
	}

	if withDecode {
		if fen, err := grid.Decode(r.Grid); err == nil {
			rep.Decoded = fen
		} else {
			rep.Error = err.Error()
		}
	}
	if withTensor {
		rep.Tensor = r.Grid.Data()
	}
	return rep
}

// writeText prints a report as aligned "name value" lines.
func writeText(w io.Writer, rep *planeReport) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", rep.FEN)
	if rep.Error != "" {
		fmt.Fprintf(&sb, "  error: %s\n", rep.Error)
	}

	keys := maps.Keys(rep.Sums)
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, "  %-14s %g\n", k, rep.Sums[k])
	}

	pieces := maps.Keys(rep.Controlled)
	slices.Sort(pieces)
	for _, p := range pieces {
		fmt.Fprintf(&sb, "  controlled %s: %s\n", p, strings.Join(rep.Controlled[p], " "))
	}
	for _, side := range []string{"white", "black"} {
		if sq := rep.Pins[side]; len(sq) > 0 {
			fmt.Fprintf(&sb, "  pinned %s: %s\n", side, strings.Join(sq, " "))
		}
	}
	if rep.Decoded != "" {
		fmt.Fprintf(&sb, "  decoded: %s\n", rep.Decoded)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
