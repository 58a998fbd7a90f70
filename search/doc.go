// Package search provides a deterministic, unit-cost shortest-path search over
// a 2D elevation grid with pluggable step legality and pluggable termination.
//
// Overview:
//
//   - The grid is an implicit graph: each cell links to its up, right, down
//     and left neighbors that exist in the grid. Every step costs 1.
//   - A min-heap frontier pops entries by (cost, row-major coordinate), a
//     strict total order, so ties between equally short paths are broken the
//     same way on every run.
//   - A cell is marked visited the moment it is pushed and is never pushed
//     again. With uniform step cost the first discovery is already the
//     cheapest, so no relaxation pass is needed.
//   - The first popped cell that satisfies the TerminalRule ends the search.
//
// When to use:
//
//   - Climbing from a fixed source to a fixed target where each step may rise
//     at most one level: StepRule "to-from <= 1", TerminalRule "c == end".
//   - Descending from a peak to the nearest lowest cell: the mirrored
//     StepRule "from-to <= 1" and TerminalRule "elevation(c) == 0".
//     Walking backwards from the peak answers "which low cell is closest"
//     with one search instead of one search per low cell.
//
// API reference:
//
//	func FindMinCost(g, start, legal, terminal) (cost int, found bool)
//	func Search(g, start, legal, terminal, opts ...Option) (*Result, error)
//
//	  - WithReturnPath():   fill Result.Path with start..target.
//	  - WithMaxCost(n):     never push cells more than n steps away.
//	  - WithOnPush(fn):     observe every frontier push.
//	  - WithOnPop(fn):      observe every frontier pop.
//
// Error handling:
//
//   - Off-grid neighbors are skipped silently; they are not edges.
//   - An unreachable target yields found == false (Result.Found == false).
//   - ErrNilGrid, ErrNilRule, ErrOptionViolation report caller mistakes from
//     Search; FindMinCost folds them into found == false.
//
// Thread safety:
//
//   - The grid is only read. Each call owns its frontier and visited set, so
//     any number of searches may run concurrently over one grid.
package search
