// Package hillclimb finds the fewest steps across a letter heightmap.
//
// The module is split into small packages:
//
//   - gridgraph: the heightmap as an implicit 4-connected grid graph, plus
//     the text parser and a flood fill for reachability.
//   - search: a uniform-cost search over a grid driven by a step rule and a
//     terminal rule, with a deterministic (cost, row, column) frontier order.
//   - climb: the two traversal modes, climbing from the source to the peak
//     and descending from the peak to any lowest cell.
//   - cmd/hillclimb: the command-line driver.
//
// Quick start:
//
//	hm, _ := gridgraph.ParseHeightmapString(input)
//	steps, ok := climb.Forward(hm)
package hillclimb
