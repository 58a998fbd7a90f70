// Package gridgraph treats a 2D elevation grid as a graph, enabling
// step-constrained searches over a letter heightmap.
//
// What:
//
//   - GridGraph wraps a rectangular grid of Elevation values (0..25).
//   - ElevationAt reports off-grid coordinates as absent, so scans never
//     invent phantom edges past the boundary.
//   - Directions is the fixed up/right/down/left offset table.
//   - ParseHeightmap turns 'a'..'z' text with one 'S' and one 'E' marker
//     into a Heightmap with both marker positions recorded.
//   - Reachable flood-fills the cells accessible under a step rule.
//
// Why:
//
//   - Hill climbing: shortest walks where each step may rise at most one level.
//   - Terrain analysis: which cells can drain to, or be reached from, a peak.
//
// Complexity:
//
//   - NewGridGraph, ParseHeightmap: O(W×H) time and memory.
//   - ElevationAt, InBounds, Index: O(1).
//   - Reachable: O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrElevationRange: a value lies outside 0..25.
//   - ErrInvalidCell: a character is neither a-z, 'S' nor 'E'.
//   - ErrMissingStart, ErrMissingEnd, ErrDuplicateMarker: marker problems.
package gridgraph
