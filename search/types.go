// Package search defines the shared contract types, tunable options and
// sentinel errors for the grid-search algorithms.
package search

import (
	"errors"

	"github.com/katalvlaran/gridnav/grid"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid is passed to any algorithm.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrStartBlocked is returned when the start cell is out of bounds
	// or not traversable.
	ErrStartBlocked = errors.New("search: start cell is not traversable")

	// ErrGoalBlocked is returned when the goal cell is out of bounds
	// or not traversable.
	ErrGoalBlocked = errors.New("search: goal cell is not traversable")

	// ErrStartEqualsGoal is returned when start and goal name the same cell.
	ErrStartEqualsGoal = errors.New("search: start and goal must differ")

	// ErrNegativeDepth is returned when a depth budget below zero is
	// supplied to DLS or IDDFS.
	ErrNegativeDepth = errors.New("search: depth budget cannot be negative")
)

// Grid is the read-only view the algorithms require of the environment.
// *grid.Grid satisfies it; tests may supply their own implementation.
// The grid must not change for the duration of a search.
type Grid interface {
	Rows() int
	Cols() int
	Start() grid.Coord
	Goal() grid.Coord
	IsTraversable(grid.Coord) bool
}

// Option configures search behavior via functional arguments.
type Option func(*Options)

// Options holds the per-run parameters shared by all algorithms.
type Options struct {
	// Observer receives advisory per-step events; nil disables
	// instrumentation. See the Observer type for the contract.
	Observer Observer
}

// DefaultOptions returns Options with instrumentation disabled.
func DefaultOptions() Options {
	return Options{Observer: nil}
}

// WithObserver registers an advisory per-step callback.
func WithObserver(fn Observer) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observer = fn
		}
	}
}

// Result holds the outcome of one search run.
type Result struct {
	// Path is the discovered route, start → goal inclusive.
	// Nil when Found is false.
	Path grid.Path

	// Cost is the sum of step costs along Path (0 when Found is false).
	// Only UCS guarantees this to be minimal.
	Cost float64

	// Expanded counts the cells expanded during the run. For IDDFS it
	// accumulates over all deepening iterations.
	Expanded int

	// Found reports whether a path to the goal was discovered.
	Found bool
}

// validate applies the shared preconditions of every algorithm:
// a non-nil grid with distinct, traversable start and goal cells.
// A malformed grid is a configuration error, never a silent empty result.
func validate(g Grid) error {
	if g == nil {
		return ErrGridNil
	}
	if !g.IsTraversable(g.Start()) {
		return ErrStartBlocked
	}
	if !g.IsTraversable(g.Goal()) {
		return ErrGoalBlocked
	}
	if g.Start() == g.Goal() {
		return ErrStartEqualsGoal
	}

	return nil
}

// buildOptions folds functional options over the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
