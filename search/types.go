// Package search defines the frontier entry, the pluggable rules and the
// functional options for the uniform-cost grid search.
package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hillclimb/gridgraph"
)

// Sentinel errors returned by Search. An unreachable target is not an error;
// it is reported through Result.Found.
var (
	// ErrNilGrid indicates that a nil *gridgraph.GridGraph was passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrNilRule indicates that the step rule or the terminal rule is nil.
	ErrNilRule = errors.New("search: step and terminal rules must be non-nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// StepRule decides whether a single step from a cell at elevation from
// to an adjacent cell at elevation to is permitted.
type StepRule func(from, to gridgraph.Elevation) bool

// TerminalRule decides whether reaching c ends the search successfully.
// It is evaluated on the coordinate about to be expanded.
type TerminalRule func(c gridgraph.Coord) bool

// Entry is one frontier record: a discovered cell, its elevation and the
// number of unit steps taken to reach it.
type Entry struct {
	Cost      int
	Coord     gridgraph.Coord
	Elevation gridgraph.Elevation
}

// Compare is the strict total order of the frontier: ascending Cost, then
// row-major Coord. Elevation never participates, because a Coord has exactly
// one elevation. It returns -1, 0 or +1.
func Compare(a, b Entry) int {
	switch {
	case a.Cost < b.Cost:
		return -1
	case a.Cost > b.Cost:
		return 1
	}
	return a.Coord.Compare(b.Coord)
}

// Less reports whether a is expanded before b.
func Less(a, b Entry) bool { return Compare(a, b) < 0 }

// Result is the outcome of one Search call.
//
//   - Found:    a terminal cell was popped; Cost and Target are valid only then.
//   - Cost:     minimum number of unit steps from the start to Target.
//   - Target:   the terminal cell that ended the search.
//   - Path:     start..Target inclusive, only with WithReturnPath.
//   - Expanded: number of entries popped from the frontier.
//   - Visited:  number of cells ever pushed, start included; never exceeds
//     the grid's cell count.
type Result struct {
	Found    bool
	Cost     int
	Target   gridgraph.Coord
	Path     []gridgraph.Coord
	Expanded int
	Visited  int
}

// Option configures Search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for a single Search call.
type Options struct {
	// ReturnPath asks Search to reconstruct Result.Path.
	ReturnPath bool

	// MaxCost stops pushing cells whose cost would exceed it.
	// Default math.MaxInt (no cap).
	MaxCost int

	// OnPush is called for every entry placed on the frontier,
	// including the start.
	OnPush func(e Entry)

	// OnPop is called for every entry taken off the frontier,
	// before the terminal rule is evaluated.
	OnPop func(e Entry)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no path, no cost cap and no-op hooks.
func DefaultOptions() Options {
	return Options{
		ReturnPath: false,
		MaxCost:    math.MaxInt,
		OnPush:     func(Entry) {},
		OnPop:      func(Entry) {},
	}
}

// WithReturnPath enables reconstruction of the start..target path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost limits exploration to cells at most n steps away.
//
//	n >= 0: cap at n
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxCost(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCost = n
	}
}

// WithOnPush registers a callback run on every frontier push.
func WithOnPush(fn func(e Entry)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnPop registers a callback run on every frontier pop.
func WithOnPop(fn func(e Entry)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}
