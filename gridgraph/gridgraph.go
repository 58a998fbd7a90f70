// Package gridgraph provides utilities to treat a 2D grid of elevations
// as a graph. It supports:
//
//   - Four-directional adjacency through a fixed direction table
//   - Lookups that report off-grid coordinates as absent
//   - Parsing of letter heightmaps with 'S' and 'E' markers
//   - Flood fill of the cells reachable under a step rule
package gridgraph

import "fmt"

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// indexed as values[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs and
// ErrElevationRange if a value lies outside [MinElevation, MaxElevation].
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]Elevation) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Flatten into one row-major slice; the caller keeps its own copy.
	cells := make([]Elevation, 0, w*h)
	for y, row := range values {
		for x, e := range row {
			if e < MinElevation || e > MaxElevation {
				return nil, fmt.Errorf("%w: %d at %d,%d", ErrElevationRange, e, x, y)
			}
		}
		cells = append(cells, row...)
	}

	return &GridGraph{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (gg *GridGraph) Width() int { return gg.width }

// Height returns the number of rows.
func (gg *GridGraph) Height() int { return gg.height }

// InBounds reports whether c lies within the grid rectangle and has a stored
// cell. A nil or zero GridGraph has no cells, so nothing is in bounds.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Coord) bool {
	if gg == nil || c.X < 0 || c.X >= gg.width || c.Y < 0 || c.Y >= gg.height {
		return false
	}
	return gg.Index(c) < len(gg.cells)
}

// ElevationAt returns the elevation stored at c. The boolean is false when c
// lies outside the grid or has no stored cell; no default elevation is ever
// reported for it.
// Complexity: O(1).
func (gg *GridGraph) ElevationAt(c Coord) (Elevation, bool) {
	if !gg.InBounds(c) {
		return 0, false
	}
	return gg.cells[gg.Index(c)], true
}

// Len returns the number of cells, the upper bound on any visited set.
func (gg *GridGraph) Len() int {
	if gg == nil {
		return 0
	}
	return len(gg.cells)
}

// Index maps c to a row-major index: Y*width + X.
// The result is meaningful only when InBounds(c) holds.
// Complexity: O(1).
func (gg *GridGraph) Index(c Coord) int {
	return c.Y*gg.width + c.X
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Coord {
	return Coord{X: idx % gg.width, Y: idx / gg.width}
}

// Neighbors returns the in-bounds orthogonal neighbors of c in direction
// table order (up, right, down, left).
func (gg *GridGraph) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(DirectionSet{}))
	for _, d := range Directions() {
		if n := c.Add(d); gg.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Cells calls fn for every cell in row-major order until fn returns false.
func (gg *GridGraph) Cells(fn func(c Coord, e Elevation) bool) {
	if gg == nil {
		return
	}
	for i, e := range gg.cells {
		if !fn(gg.Coordinate(i), e) {
			return
		}
	}
}
