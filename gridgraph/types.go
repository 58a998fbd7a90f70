// Package gridgraph defines core types and the direction table
// for the gridgraph subpackage of github.com/katalvlaran/hillclimb.
package gridgraph

import "strconv"

// Elevation is the height of a single cell, one level per lowercase letter.
type Elevation int

const (
	// MinElevation is the height of 'a' and of the source marker 'S'.
	MinElevation Elevation = 0
	// MaxElevation is the height of 'z' and of the target marker 'E'.
	MaxElevation Elevation = 25
)

// Coord identifies a cell by column X and row Y. It is a plain value type:
// two Coords are the same cell iff their fields are equal.
type Coord struct {
	X, Y int
}

// Add returns the coordinate one step away from c in direction d.
func (c Coord) Add(d Direction) Coord {
	return Coord{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Compare orders coordinates row-major: by Y first, then by X.
// It returns -1, 0 or +1.
func (c Coord) Compare(o Coord) int {
	switch {
	case c.Y < o.Y:
		return -1
	case c.Y > o.Y:
		return 1
	case c.X < o.X:
		return -1
	case c.X > o.X:
		return 1
	}
	return 0
}

// Less reports whether c sorts before o in row-major order.
func (c Coord) Less(o Coord) bool { return c.Compare(o) < 0 }

// String formats c as "x,y".
func (c Coord) String() string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

// Direction is a unit offset between orthogonally adjacent cells.
type Direction struct {
	DX, DY int
}

// Up returns the offset to the row above. Y grows downwards, matching the
// line order of the input.
func Up() Direction { return Direction{DX: 0, DY: -1} }

// Right returns the offset to the next column.
func Right() Direction { return Direction{DX: 1, DY: 0} }

// Down returns the offset to the row below.
func Down() Direction { return Direction{DX: 0, DY: 1} }

// Left returns the offset to the previous column.
func Left() Direction { return Direction{DX: -1, DY: 0} }

// DirectionSet is the fixed table of neighbor offsets used by every adjacency scan.
type DirectionSet [4]Direction

// Directions returns the four unit offsets in the order up, right, down, left.
// Each call builds a fresh array value; there is no shared table to alter.
func Directions() DirectionSet {
	return DirectionSet{Up(), Right(), Down(), Left()}
}

// GridGraph treats a rectangular elevation grid as an implicit 4-connected graph.
// It is immutable once built: width and height define the bounds and cells
// holds the elevations in row-major order. Build one with NewGridGraph or
// ParseHeightmap; the zero value is an empty grid.
type GridGraph struct {
	width, height int
	cells         []Elevation
}

// Heightmap is a parsed puzzle input: the grid plus the coordinates recorded
// for the source marker 'S' and the target marker 'E'.
type Heightmap struct {
	Grid  *GridGraph
	Start Coord
	End   Coord
}
