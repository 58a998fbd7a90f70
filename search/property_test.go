package search_test

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/search"
)

// randomGrid builds a w×h grid from seed. Elevations stay in a narrow band
// around a slope so that both reachable and blocked cells are common.
func randomGrid(seed int64, w, h int) *gridgraph.GridGraph {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]gridgraph.Elevation, h)
	for y := range rows {
		rows[y] = make([]gridgraph.Elevation, w)
		for x := range rows[y] {
			e := (x+y)/2 + rng.Intn(4) - 1
			if e < 0 {
				e = 0
			}
			if e > int(gridgraph.MaxElevation) {
				e = int(gridgraph.MaxElevation)
			}
			rows[y][x] = gridgraph.Elevation(e)
		}
	}
	g, err := gridgraph.NewGridGraph(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// bfsDistances is an independent plain-queue breadth-first oracle:
// dist[idx] is the step count from start, -1 when unreachable.
func bfsDistances(g *gridgraph.GridGraph, start gridgraph.Coord, legal search.StepRule) []int {
	dist := make([]int, g.Len())
	for i := range dist {
		dist[i] = -1
	}
	dist[g.Index(start)] = 0
	queue := []gridgraph.Coord{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		eu, _ := g.ElevationAt(u)
		for _, v := range g.Neighbors(u) {
			ev, _ := g.ElevationAt(v)
			if dist[g.Index(v)] >= 0 || !legal(eu, ev) {
				continue
			}
			dist[g.Index(v)] = dist[g.Index(u)] + 1
			queue = append(queue, v)
		}
	}
	return dist
}

type scenario struct {
	g      *gridgraph.GridGraph
	start  gridgraph.Coord
	target gridgraph.Coord
}

func newScenario(seed int64, w, h int) scenario {
	g := randomGrid(seed, w, h)
	rng := rand.New(rand.NewSource(seed ^ 0x5eed))
	return scenario{
		g:      g,
		start:  gridgraph.Coord{X: rng.Intn(w), Y: rng.Intn(h)},
		target: gridgraph.Coord{X: rng.Intn(w), Y: rng.Intn(h)},
	}
}

// TestSearchProperties checks the engine's invariants on random grids.
func TestSearchProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	seeds := gen.Int64()
	widths := gen.IntRange(1, 12)
	heights := gen.IntRange(1, 12)

	// Property 1: repeated calls are identical, path included.
	properties.Property("search is deterministic", prop.ForAll(
		func(seed int64, w, h int) bool {
			s := newScenario(seed, w, h)
			a, err1 := search.Search(s.g, s.start, climb, at(s.target), search.WithReturnPath())
			b, err2 := search.Search(s.g, s.start, climb, at(s.target), search.WithReturnPath())
			return err1 == nil && err2 == nil && reflect.DeepEqual(a, b)
		},
		seeds, widths, heights,
	))

	// Property 2: cost is never negative and is zero exactly when the start is terminal.
	properties.Property("cost is zero iff start is terminal", prop.ForAll(
		func(seed int64, w, h int) bool {
			s := newScenario(seed, w, h)
			cost, ok := search.FindMinCost(s.g, s.start, climb, at(s.target))
			if !ok {
				return s.start != s.target
			}
			return cost >= 0 && (cost == 0) == (s.start == s.target)
		},
		seeds, widths, heights,
	))

	// Property 3: the cost matches an independent BFS, in both directions.
	properties.Property("cost matches breadth-first oracle", prop.ForAll(
		func(seed int64, w, h int) bool {
			s := newScenario(seed, w, h)
			for _, legal := range []search.StepRule{climb, descend} {
				want := bfsDistances(s.g, s.start, legal)[s.g.Index(s.target)]
				cost, ok := search.FindMinCost(s.g, s.start, legal, at(s.target))
				if ok != (want >= 0) || (ok && cost != want) {
					return false
				}
			}
			return true
		},
		seeds, widths, heights,
	))

	// Property 4: no cell is pushed twice and nothing off-grid is pushed.
	properties.Property("visited never exceeds cell count", prop.ForAll(
		func(seed int64, w, h int) bool {
			s := newScenario(seed, w, h)
			seen := map[gridgraph.Coord]bool{}
			clean := true
			res, err := search.Search(s.g, s.start, anyStep, never,
				search.WithOnPush(func(e search.Entry) {
					if seen[e.Coord] || !s.g.InBounds(e.Coord) {
						clean = false
					}
					seen[e.Coord] = true
				}))
			return err == nil && clean && res.Visited == s.g.Len() && len(seen) == s.g.Len()
		},
		seeds, widths, heights,
	))

	// Property 5: found exactly when the flood fill reaches the target.
	properties.Property("found agrees with Reachable", prop.ForAll(
		func(seed int64, w, h int) bool {
			s := newScenario(seed, w, h)
			reach := false
			for _, c := range s.g.Reachable(s.start, descend) {
				if c == s.target {
					reach = true
				}
			}
			_, ok := search.FindMinCost(s.g, s.start, descend, at(s.target))
			return ok == reach
		},
		seeds, widths, heights,
	))

	properties.TestingRun(t)
}
