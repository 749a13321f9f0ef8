package search_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/search"
)

// mustParse builds a grid fixture from text or fails the test.
func mustParse(t *testing.T, text string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(strings.TrimSpace(text))
	if err != nil {
		t.Fatalf("fixture parse error: %v", err)
	}

	return g
}

// openGrid builds a rows×cols obstacle-free grid with the given endpoints.
func openGrid(t *testing.T, rows, cols int, start, goal grid.Coord) *grid.Grid {
	t.Helper()
	cells := make([][]grid.State, rows)
	for r := range cells {
		cells[r] = make([]grid.State, cols)
	}
	cells[start.Row][start.Col] = grid.Start
	cells[goal.Row][goal.Col] = grid.Goal
	g, err := grid.New(cells)
	if err != nil {
		t.Fatalf("fixture build error: %v", err)
	}

	return g
}

// movementOffsets mirrors the package's fixed 6-direction movement set.
var movementOffsets = [6][2]int{
	{-1, 0}, {0, 1}, {1, 0}, {1, 1}, {0, -1}, {-1, -1},
}

// checkPath asserts the shared path properties of every algorithm:
// endpoints match the grid and each consecutive pair is one movement
// offset apart.
func checkPath(t *testing.T, g *grid.Grid, p grid.Path) {
	t.Helper()
	if len(p) == 0 {
		t.Fatal("empty path")
	}
	if p[0] != g.Start() {
		t.Errorf("path starts at %v; want %v", p[0], g.Start())
	}
	if p[len(p)-1] != g.Goal() {
		t.Errorf("path ends at %v; want %v", p[len(p)-1], g.Goal())
	}
	for i := 1; i < len(p); i++ {
		dr, dc := p[i].Row-p[i-1].Row, p[i].Col-p[i-1].Col
		adjacent := false
		for _, d := range movementOffsets {
			if dr == d[0] && dc == d[1] {
				adjacent = true
				break
			}
		}
		if !adjacent {
			t.Errorf("step %v → %v is not a legal move", p[i-1], p[i])
		}
	}
}

// allSearches pairs every algorithm with a uniform closure signature, with
// generous depth budgets for the limited variants.
func allSearches() map[string]func(search.Grid, ...search.Option) (*search.Result, error) {
	return map[string]func(search.Grid, ...search.Option) (*search.Result, error){
		"BFS": search.BFS,
		"DFS": search.DFS,
		"UCS": search.UCS,
		"DLS": func(g search.Grid, opts ...search.Option) (*search.Result, error) {
			return search.DLS(g, 30, opts...)
		},
		"IDDFS": func(g search.Grid, opts ...search.Option) (*search.Result, error) {
			return search.IDDFS(g, 30, opts...)
		},
		"Bidirectional": search.Bidirectional,
	}
}
