// Package grid defines core types and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridnav.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNoStart indicates the input contains no Start cell.
	ErrNoStart = errors.New("grid: no start cell")
	// ErrNoGoal indicates the input contains no Goal cell.
	ErrNoGoal = errors.New("grid: no goal cell")
	// ErrDuplicateStart indicates the input contains more than one Start cell.
	ErrDuplicateStart = errors.New("grid: more than one start cell")
	// ErrDuplicateGoal indicates the input contains more than one Goal cell.
	ErrDuplicateGoal = errors.New("grid: more than one goal cell")
	// ErrUnknownCell indicates an unrecognized rune in a textual grid.
	ErrUnknownCell = errors.New("grid: unknown cell rune")
	// ErrBlockRate indicates a block rate outside [0, 1).
	ErrBlockRate = errors.New("grid: block rate must be in [0, 1)")
)

// State is the content of a single grid cell.
type State uint8

const (
	// Open cells are traversable and unremarkable.
	Open State = iota
	// Blocked cells are walls; no search may enter them.
	Blocked
	// Start marks the unique search origin. Traversable.
	Start
	// Goal marks the unique search target. Traversable.
	Goal
)

// Runes used by Parse and String for each State, in State order.
const stateRunes = ".#SG"

// Rune returns the textual representation of s, as accepted by Parse.
func (s State) Rune() rune {
	if int(s) >= len(stateRunes) {
		return '?'
	}

	return rune(stateRunes[s])
}

// Coord identifies a cell by zero-based (Row, Col).
// It is a comparable value type, usable as a map key.
type Coord struct {
	Row, Col int
}

// Path is an ordered sequence of mutually adjacent cells,
// start first and goal last.
type Path []Coord
