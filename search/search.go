// Package search implements a uniform-cost shortest-path search over the
// implicit 4-connected graph of a gridgraph.GridGraph.
//
// The engine knows nothing about climbing or descending. Which steps are
// legal and which cells end the search are injected as a StepRule and a
// TerminalRule, so one loop serves every traversal mode.
//
// Complexity:
//
//   - Time:  O(N log N), N = number of cells; each cell is pushed and popped at most once.
//   - Space: O(N) for the visited flags, the frontier and the optional predecessor table.
package search

import "github.com/katalvlaran/hillclimb/gridgraph"

// FindMinCost returns the minimum number of unit steps from start to the
// nearest cell accepted by terminal, moving only along steps accepted by
// legal. The boolean is false when no terminal cell is reachable.
//
// It never panics: a nil grid, a nil rule or a start outside the grid all
// report "no result".
func FindMinCost(g *gridgraph.GridGraph, start gridgraph.Coord, legal StepRule, terminal TerminalRule) (int, bool) {
	res, err := Search(g, start, legal, terminal)
	if err != nil || !res.Found {
		return 0, false
	}
	return res.Cost, true
}

// Search runs the same loop as FindMinCost and reports the full Result.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. legal and terminal must be non-nil (ErrNilRule).
//  3. Options must be valid (ErrOptionViolation).
//
// A start outside the grid is not an error: the result has Found == false.
func Search(g *gridgraph.GridGraph, start gridgraph.Coord, legal StepRule, terminal TerminalRule, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if legal == nil || terminal == nil {
		return nil, ErrNilRule
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	r := &runner{
		g:        g,
		options:  cfg,
		legal:    legal,
		terminal: terminal,
		visited:  make([]bool, g.Len()),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, g.Len())
		for i := range r.prev {
			r.prev[i] = -1
		}
	}

	return r.run(start), nil
}

// runner holds the mutable state for a single Search execution. Nothing in
// it outlives the call, so concurrent searches over one grid never interact.
type runner struct {
	g        *gridgraph.GridGraph // read-only
	options  Options
	legal    StepRule
	terminal TerminalRule
	visited  []bool   // indexed by g.Index; grows monotonically
	prev     []int    // predecessor index per cell, -1 for none; nil unless ReturnPath
	pq       frontier // min-heap ordered by Less
	res      Result
}

// run seeds the frontier with start and drains it until a terminal pop.
func (r *runner) run(start gridgraph.Coord) *Result {
	elev, ok := r.g.ElevationAt(start)
	if !ok {
		return &r.res
	}
	r.discover(Entry{Cost: 0, Coord: start, Elevation: elev}, -1)

	for r.pq.Len() > 0 {
		cur := r.pq.pop()
		r.res.Expanded++
		r.options.OnPop(cur)

		// Entries leave the heap in non-decreasing cost order,
		// so the first terminal pop is minimal.
		if r.terminal(cur.Coord) {
			r.res.Found = true
			r.res.Cost = cur.Cost
			r.res.Target = cur.Coord
			if r.prev != nil {
				r.res.Path = r.path(cur.Coord)
			}
			return &r.res
		}
		r.expand(cur)
	}

	return &r.res
}

// expand pushes every unvisited, legal, in-bounds neighbor of cur at cost+1.
func (r *runner) expand(cur Entry) {
	next := cur.Cost + 1
	if next > r.options.MaxCost {
		return
	}
	from := r.g.Index(cur.Coord)
	for _, d := range gridgraph.Directions() {
		nc := cur.Coord.Add(d)
		elev, ok := r.g.ElevationAt(nc)
		if !ok {
			continue // off the grid
		}
		if r.visited[r.g.Index(nc)] {
			continue
		}
		if !r.legal(cur.Elevation, elev) {
			continue
		}
		r.discover(Entry{Cost: next, Coord: nc, Elevation: elev}, from)
	}
}

// discover marks e visited, records its predecessor and pushes it.
func (r *runner) discover(e Entry, from int) {
	idx := r.g.Index(e.Coord)
	r.visited[idx] = true
	r.res.Visited++
	if r.prev != nil {
		r.prev[idx] = from
	}
	r.pq.push(e)
	r.options.OnPush(e)
}

// path walks the predecessor table back from target and returns start..target.
func (r *runner) path(target gridgraph.Coord) []gridgraph.Coord {
	var rev []gridgraph.Coord
	for at := r.g.Index(target); at >= 0; at = r.prev[at] {
		rev = append(rev, r.g.Coordinate(at))
	}
	out := make([]gridgraph.Coord, len(rev))
	for i, c := range rev {
		out[len(rev)-1-i] = c
	}
	return out
}
