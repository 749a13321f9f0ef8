package scenario

import (
	"fmt"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/search"
)

// Custom builds a board from an obstacle list and fixed endpoints.
// Obstacles overlapping the endpoints are rejected by grid validation.
func Custom(rows, cols int, obstacles []grid.Coord, start, goal grid.Coord) (*grid.Grid, error) {
	cells := make([][]grid.State, rows)
	for r := range cells {
		cells[r] = make([]grid.State, cols)
	}
	for _, o := range obstacles {
		cells[o.Row][o.Col] = grid.Blocked
	}
	cells[start.Row][start.Col] = grid.Start
	cells[goal.Row][goal.Col] = grid.Goal

	return grid.New(cells)
}

// mustCustom wraps Custom for the static suite boards.
func mustCustom(rows, cols int, obstacles []grid.Coord, start, goal grid.Coord) *grid.Grid {
	g, err := Custom(rows, cols, obstacles, start, goal)
	if err != nil {
		panic(fmt.Sprintf("scenario: bad suite board: %v", err))
	}

	return g
}

// rowWall returns the cells of row r spanning columns [from, to).
func rowWall(r, from, to int) []grid.Coord {
	w := make([]grid.Coord, 0, to-from)
	for c := from; c < to; c++ {
		w = append(w, grid.Coord{Row: r, Col: c})
	}

	return w
}

// colWall returns the cells of column c spanning rows [from, to).
func colWall(c, from, to int) []grid.Coord {
	w := make([]grid.Coord, 0, to-from)
	for r := from; r < to; r++ {
		w = append(w, grid.Coord{Row: r, Col: c})
	}

	return w
}

func concat(walls ...[]grid.Coord) []grid.Coord {
	var all []grid.Coord
	for _, w := range walls {
		all = append(all, w...)
	}

	return all
}

const (
	bestCase  = "best case"
	worstCase = "worst case"
)

// Suite returns the full best/worst pairing for every algorithm, in the
// order they are reported.
//
// Depth-bounded entries bind their caps here: DLS gets depth 3 on a goal
// one step away (best) and depth 5 against a goal twenty steps out
// (worst, fails at that cap); IDDFS gets limit 5 on an adjacent goal
// (best) and a serpentine corridor whose sole route is dozens of steps
// deep (worst, maximizing re-descent work across iterations).
func Suite() []Scenario {
	return []Scenario{
		{
			Algorithm: "BFS",
			Name:      bestCase,
			Grid:      mustCustom(8, 8, nil, grid.Coord{Row: 4, Col: 4}, grid.Coord{Row: 3, Col: 4}),
			Run:       search.BFS,
		},
		{
			Algorithm: "BFS",
			Name:      worstCase,
			Grid: mustCustom(15, 15, concat(
				rowWall(1, 1, 14),
				rowWall(3, 0, 13),
				rowWall(5, 2, 15),
				rowWall(7, 0, 13),
				rowWall(9, 2, 15),
				rowWall(11, 0, 13),
			), grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 14, Col: 14}),
			Run: search.BFS,
		},
		{
			Algorithm: "DFS",
			Name:      bestCase,
			Grid:      mustCustom(8, 8, nil, grid.Coord{Row: 5, Col: 4}, grid.Coord{Row: 3, Col: 4}),
			Run:       search.DFS,
		},
		{
			Algorithm: "DFS",
			Name:      worstCase,
			Grid: mustCustom(15, 15, concat(
				rowWall(0, 2, 15),
				colWall(1, 1, 14),
				rowWall(14, 2, 14),
			), grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 14, Col: 14}),
			Run: search.DFS,
		},
		{
			Algorithm: "UCS",
			Name:      bestCase,
			Grid:      mustCustom(8, 8, nil, grid.Coord{Row: 4, Col: 4}, grid.Coord{Row: 4, Col: 5}),
			Run:       search.UCS,
		},
		{
			Algorithm: "UCS",
			Name:      worstCase,
			Grid: mustCustom(12, 12, []grid.Coord{
				{Row: 2, Col: 2}, {Row: 2, Col: 5}, {Row: 2, Col: 8},
				{Row: 5, Col: 1}, {Row: 5, Col: 4}, {Row: 5, Col: 7}, {Row: 5, Col: 10},
				{Row: 8, Col: 2}, {Row: 8, Col: 5}, {Row: 8, Col: 8},
			}, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 11, Col: 11}),
			Run: search.UCS,
		},
		{
			Algorithm: "DLS (depth=3)",
			Name:      bestCase,
			Grid:      mustCustom(8, 8, nil, grid.Coord{Row: 4, Col: 4}, grid.Coord{Row: 3, Col: 4}),
			Run: func(g search.Grid, opts ...search.Option) (*search.Result, error) {
				return search.DLS(g, 3, opts...)
			},
		},
		{
			Algorithm: "DLS (depth=5)",
			Name:      worstCase,
			Grid:      mustCustom(12, 12, nil, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 10, Col: 10}),
			Run: func(g search.Grid, opts ...search.Option) (*search.Result, error) {
				return search.DLS(g, 5, opts...)
			},
		},
		{
			Algorithm: "IDDFS",
			Name:      bestCase,
			Grid:      mustCustom(8, 8, nil, grid.Coord{Row: 4, Col: 4}, grid.Coord{Row: 3, Col: 4}),
			Run: func(g search.Grid, opts ...search.Option) (*search.Result, error) {
				return search.IDDFS(g, 5, opts...)
			},
		},
		{
			Algorithm: "IDDFS",
			Name:      worstCase,
			Grid: mustCustom(12, 12, concat(
				rowWall(1, 0, 11),
				rowWall(3, 1, 12),
				rowWall(5, 0, 11),
				rowWall(7, 1, 12),
				rowWall(9, 0, 11),
			), grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 11, Col: 11}),
			Run: func(g search.Grid, opts ...search.Option) (*search.Result, error) {
				return search.IDDFS(g, 80, opts...)
			},
		},
		{
			Algorithm: "Bidirectional",
			Name:      bestCase,
			Grid:      mustCustom(8, 8, nil, grid.Coord{Row: 4, Col: 2}, grid.Coord{Row: 4, Col: 6}),
			Run:       search.Bidirectional,
		},
		{
			Algorithm: "Bidirectional",
			Name:      worstCase,
			Grid: mustCustom(15, 15,
				colWall(7, 0, 13),
				grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 14}),
			Run: search.Bidirectional,
		},
	}
}
