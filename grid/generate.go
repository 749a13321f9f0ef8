package grid

import (
	"fmt"
	"math/rand"
)

// Generate builds a rows×cols map whose cells are independently Blocked with
// probability blockRate, then places Start and Goal on two distinct open
// cells chosen uniformly by rng. If fewer than two open cells survive the
// obstacle pass, all obstacles are cleared before placement so the result is
// always a valid Grid.
//
// Determinism: for a fixed seed the obstacle trials run in row-major order
// and endpoint draws follow, so identical inputs yield identical maps.
//
// Returns ErrEmptyGrid for non-positive dimensions and ErrBlockRate for
// blockRate outside [0, 1). Complexity: O(rows×cols).
func Generate(rows, cols int, blockRate float64, rng *rand.Rand) (*Grid, error) {
	// Two distinct cells are needed for the endpoints, so 1×1 is rejected too.
	if rows < 1 || cols < 1 || rows*cols < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, rows, cols)
	}
	if blockRate < 0 || blockRate >= 1 {
		return nil, fmt.Errorf("%w: %v", ErrBlockRate, blockRate)
	}

	cells := make([][]State, rows)
	open := make([]Coord, 0, rows*cols)
	for r := 0; r < rows; r++ {
		cells[r] = make([]State, cols)
		for c := 0; c < cols; c++ {
			if rng.Float64() < blockRate {
				cells[r][c] = Blocked
			} else {
				open = append(open, Coord{Row: r, Col: c})
			}
		}
	}

	// Degenerate obstacle draw: fall back to a fully open map.
	if len(open) < 2 {
		open = open[:0]
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cells[r][c] = Open
				open = append(open, Coord{Row: r, Col: c})
			}
		}
	}

	si := rng.Intn(len(open))
	start := open[si]
	open[si] = open[len(open)-1]
	open = open[:len(open)-1]
	goal := open[rng.Intn(len(open))]

	cells[start.Row][start.Col] = Start
	cells[goal.Row][goal.Col] = Goal

	return New(cells)
}
