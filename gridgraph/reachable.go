package gridgraph

// Reachable returns every cell that can be reached from start by repeated
// orthogonal steps accepted by legal(from, to). The result includes start
// itself and is sorted row-major. An off-grid start yields nil.
//
// Reachable is a plain flood fill; it answers "can I get there" without
// costs and is the reference against which step counts can be checked.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for seen flags and the queue.
func (gg *GridGraph) Reachable(start Coord, legal func(from, to Elevation) bool) []Coord {
	if !gg.InBounds(start) || legal == nil {
		return nil
	}
	seen := make([]bool, gg.Len())
	i0 := gg.Index(start)
	seen[i0] = true
	queue := []int{i0}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		uc := gg.Coordinate(u)
		for _, d := range Directions() {
			vc := uc.Add(d)
			if !gg.InBounds(vc) {
				continue
			}
			v := gg.Index(vc)
			if seen[v] || !legal(gg.cells[u], gg.cells[v]) {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}

	// Walking the flags in index order yields row-major output for free.
	out := make([]Coord, 0, len(queue))
	for i, ok := range seen {
		if ok {
			out = append(out, gg.Coordinate(i))
		}
	}
	return out
}
