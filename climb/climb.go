// Package climb expresses the two hill-climbing traversal modes as rule
// triples for the search engine.
//
// ModeForward starts at the source marker and climbs to the target marker,
// rising at most one level per step. ModeReverse starts at the target marker
// and walks the same graph backwards, descending at most one level per step,
// until it meets any cell of the lowest elevation. The engine itself is the
// same in both cases; only the (start, StepRule, TerminalRule) triple changes.
package climb

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/search"
)

// ClimbRule permits a step that rises at most one level. Any descent is fine.
func ClimbRule(from, to gridgraph.Elevation) bool {
	return to-from <= 1
}

// DescendRule is the mirror of ClimbRule used when walking backwards from the
// peak: a step may drop at most one level and may rise any amount.
func DescendRule(from, to gridgraph.Elevation) bool {
	return from-to <= 1
}

// AtCoord ends the search at exactly one cell.
func AtCoord(target gridgraph.Coord) search.TerminalRule {
	return func(c gridgraph.Coord) bool { return c == target }
}

// AtElevation ends the search at any cell of elevation e in g.
func AtElevation(g *gridgraph.GridGraph, e gridgraph.Elevation) search.TerminalRule {
	return func(c gridgraph.Coord) bool {
		got, ok := g.ElevationAt(c)
		return ok && got == e
	}
}

// Mode selects a traversal direction.
type Mode int

const (
	// ModeForward climbs from Start to End.
	ModeForward Mode = iota
	// ModeReverse descends from End to the nearest lowest cell.
	ModeReverse
)

// Modes returns every mode in report order. Each call returns a new slice.
func Modes() []Mode {
	return []Mode{ModeForward, ModeReverse}
}

// String returns "forward" or "reverse".
func (m Mode) String() string {
	switch m {
	case ModeForward:
		return "forward"
	case ModeReverse:
		return "reverse"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Part returns the puzzle part number answered by m: 1 or 2.
func (m Mode) Part() int { return int(m) + 1 }

// ParseMode accepts "forward"/"reverse" and their part aliases "1"/"2",
// case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "1":
		return ModeForward, nil
	case "reverse", "2":
		return ModeReverse, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Plan returns the (start, rule, terminal) triple for mode m on hm.
func Plan(hm *gridgraph.Heightmap, m Mode) (gridgraph.Coord, search.StepRule, search.TerminalRule, error) {
	if hm == nil || hm.Grid == nil {
		return gridgraph.Coord{}, nil, nil, ErrNilHeightmap
	}
	switch m {
	case ModeForward:
		return hm.Start, ClimbRule, AtCoord(hm.End), nil
	case ModeReverse:
		return hm.End, DescendRule, AtElevation(hm.Grid, gridgraph.MinElevation), nil
	}
	return gridgraph.Coord{}, nil, nil, fmt.Errorf("%w: %v", ErrUnknownMode, m)
}

// Solve runs one traversal mode over hm. Extra options are passed through to
// search.Search. An unreachable goal yields Result.Found == false.
func Solve(hm *gridgraph.Heightmap, m Mode, opts ...search.Option) (*search.Result, error) {
	start, legal, terminal, err := Plan(hm, m)
	if err != nil {
		return nil, err
	}
	return search.Search(hm.Grid, start, legal, terminal, opts...)
}

// Forward returns the fewest steps from the source marker to the target marker.
func Forward(hm *gridgraph.Heightmap) (int, bool) {
	return minCost(hm, ModeForward)
}

// Reverse returns the fewest steps from any lowest cell to the target marker,
// found by descending from the target.
func Reverse(hm *gridgraph.Heightmap) (int, bool) {
	return minCost(hm, ModeReverse)
}

func minCost(hm *gridgraph.Heightmap, m Mode) (int, bool) {
	start, legal, terminal, err := Plan(hm, m)
	if err != nil {
		return 0, false
	}
	return search.FindMinCost(hm.Grid, start, legal, terminal)
}

// SolveAll runs the given modes concurrently over the same heightmap and
// returns one Result per mode. The grid is read-only and every search owns
// its frontier, so no locking is involved. With no modes, all of Modes() run.
//
// opts are shared between the searches; hooks passed here must be safe for
// concurrent use.
func SolveAll(ctx context.Context, hm *gridgraph.Heightmap, modes []Mode, opts ...search.Option) (map[Mode]*search.Result, error) {
	if len(modes) == 0 {
		modes = Modes()
	}
	results := make([]*search.Result, len(modes))
	eg, ctx := errgroup.WithContext(ctx)
	for i, m := range modes {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Solve(hm, m, opts...)
			if err != nil {
				return fmt.Errorf("climb: %v: %w", m, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make(map[Mode]*search.Result, len(modes))
	for i, m := range modes {
		out[m] = results[i]
	}
	return out, nil
}
