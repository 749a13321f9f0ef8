// Package grid models a rectangular 2D search environment: a matrix of
// Open/Blocked cells with exactly one Start and one Goal. It supports:
//
//   - Construction from a [][]State matrix or from compact text ('.', '#', 'S', 'G')
//   - A traversability predicate consumed by the search layer
//   - Randomized map generation with a caller-supplied RNG
//
// A Grid is immutable once built; the search layer only ever reads it.
package grid

import (
	"strings"
)

// Grid is a fixed-size rectangular map. Construct via New, Parse or Generate;
// the zero value is not usable.
type Grid struct {
	rows, cols int
	cells      [][]State
	start      Coord
	goal       Coord
}

// New constructs a Grid from a non-empty, rectangular matrix containing
// exactly one Start and one Goal cell. The input is deep-copied to ensure
// immutability. Returns ErrEmptyGrid, ErrNonRectangular, ErrNoStart,
// ErrNoGoal, ErrDuplicateStart or ErrDuplicateGoal on invalid input.
// Complexity: O(rows×cols) time and memory.
func New(cells [][]State) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])

	g := &Grid{rows: rows, cols: cols, cells: make([][]State, rows)}
	var haveStart, haveGoal bool
	for r, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		g.cells[r] = make([]State, cols)
		copy(g.cells[r], row)
		for c, s := range row {
			switch s {
			case Start:
				if haveStart {
					return nil, ErrDuplicateStart
				}
				haveStart = true
				g.start = Coord{Row: r, Col: c}
			case Goal:
				if haveGoal {
					return nil, ErrDuplicateGoal
				}
				haveGoal = true
				g.goal = Coord{Row: r, Col: c}
			}
		}
	}
	if !haveStart {
		return nil, ErrNoStart
	}
	if !haveGoal {
		return nil, ErrNoGoal
	}

	return g, nil
}

// Parse builds a Grid from newline-separated text, one rune per cell:
// '.' open, '#' blocked, 'S' start, 'G' goal. Leading and trailing blank
// lines are ignored so raw string literals read naturally in tests.
// Returns ErrUnknownCell for any other rune, plus every New error.
func Parse(text string) (*Grid, error) {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	cells := make([][]State, 0, len(lines))
	for _, line := range lines {
		row := make([]State, 0, len(line))
		for _, r := range line {
			idx := strings.IndexRune(stateRunes, r)
			if idx < 0 {
				return nil, ErrUnknownCell
			}
			row = append(row, State(idx))
		}
		cells = append(cells, row)
	}

	return New(cells)
}

// Rows reports the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols reports the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the unique start cell.
func (g *Grid) Start() Coord { return g.start }

// Goal returns the unique goal cell.
func (g *Grid) Goal() Coord { return g.goal }

// StateAt returns the state of cell c. Panics if c is out of bounds;
// use InBounds first when the coordinate is untrusted.
func (g *Grid) StateAt(c Coord) State { return g.cells[c.Row][c.Col] }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// IsTraversable reports whether c is within bounds and not Blocked.
// This is the only grid predicate the search layer relies on.
// Complexity: O(1).
func (g *Grid) IsTraversable(c Coord) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col] != Blocked
}

// String renders the grid in the same textual form accepted by Parse.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			b.WriteRune(g.cells[r][c].Rune())
		}
		if r < g.rows-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
