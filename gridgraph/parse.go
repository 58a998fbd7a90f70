package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	startMarker = 'S'
	endMarker   = 'E'
)

// ParseHeightmap reads a rectangular block of letters and builds a Heightmap.
//
// Each of 'a'..'z' becomes elevation 0..25. The source marker 'S' is pinned
// to MinElevation and the target marker 'E' to MaxElevation; their positions
// are recorded as Start and End. Blank lines around the block are ignored and
// a trailing '\r' on a line is dropped.
//
// Malformed input fails loudly so that no grid ever reaches a search without
// both markers: ErrEmptyGrid, ErrNonRectangular, ErrInvalidCell,
// ErrDuplicateMarker, ErrMissingStart or ErrMissingEnd, each wrapped with the
// line and column where it was detected.
func ParseHeightmap(r io.Reader) (*Heightmap, error) {
	// A bufio.Reader has no per-line limit, so arbitrarily wide rows parse.
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("gridgraph: read heightmap: %w", err)
		}
	}

	// Trim blank lines at both ends; interior blank lines are a shape error.
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	var (
		start, end       Coord
		hasStart, hasEnd bool
	)
	width := len(lines[0])
	rows := make([][]Elevation, len(lines))
	for y, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonRectangular, y+1, len(line), width)
		}
		row := make([]Elevation, width)
		for x := 0; x < width; x++ {
			ch := line[x]
			switch {
			case ch == startMarker:
				if hasStart {
					return nil, fmt.Errorf("%w: %q at %d:%d", ErrDuplicateMarker, ch, y+1, x+1)
				}
				start, hasStart = Coord{X: x, Y: y}, true
				row[x] = MinElevation
			case ch == endMarker:
				if hasEnd {
					return nil, fmt.Errorf("%w: %q at %d:%d", ErrDuplicateMarker, ch, y+1, x+1)
				}
				end, hasEnd = Coord{X: x, Y: y}, true
				row[x] = MaxElevation
			case ch >= 'a' && ch <= 'z':
				row[x] = Elevation(ch - 'a')
			default:
				return nil, fmt.Errorf("%w: %q at %d:%d", ErrInvalidCell, ch, y+1, x+1)
			}
		}
		rows[y] = row
	}
	if !hasStart {
		return nil, ErrMissingStart
	}
	if !hasEnd {
		return nil, ErrMissingEnd
	}

	gg, err := NewGridGraph(rows)
	if err != nil {
		return nil, err
	}
	return &Heightmap{Grid: gg, Start: start, End: end}, nil
}

// ParseHeightmapString is ParseHeightmap over an in-memory string.
func ParseHeightmapString(s string) (*Heightmap, error) {
	return ParseHeightmap(strings.NewReader(s))
}

// Lowest returns every cell at MinElevation in row-major order,
// including the source marker.
func (hm *Heightmap) Lowest() []Coord {
	var out []Coord
	hm.Grid.Cells(func(c Coord, e Elevation) bool {
		if e == MinElevation {
			out = append(out, c)
		}
		return true
	})
	return out
}
