package gridgraph_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/hillclimb/gridgraph"
)

// randomHeightmap renders an n×n letter grid with markers in opposite corners.
func randomHeightmap(n int, seed int64) string {
	rng := rand.New(rand.NewSource(seed))
	var sb strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			switch {
			case x == 0 && y == 0:
				sb.WriteByte('S')
			case x == n-1 && y == n-1:
				sb.WriteByte('E')
			default:
				sb.WriteByte(byte('a' + rng.Intn(26)))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// BenchmarkParseHeightmap measures parsing of a 500×500 heightmap.
// Complexity: O(W×H)
func BenchmarkParseHeightmap(b *testing.B) {
	in := randomHeightmap(500, 42)
	b.SetBytes(int64(len(in)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.ParseHeightmapString(in); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkReachable measures flood fill on a 1000×1000 random grid.
// Complexity: O(W×H×4)
func BenchmarkReachable(b *testing.B) {
	hm, err := gridgraph.ParseHeightmapString(randomHeightmap(1000, 42))
	if err != nil {
		b.Fatalf("setup ParseHeightmapString failed: %v", err)
	}
	legal := func(from, to gridgraph.Elevation) bool { return from-to <= 1 }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = hm.Grid.Reachable(hm.End, legal)
	}
}
