package search_test

import (
	"testing"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/search"
)

// TestDFS_UpwardBias: with the goal straight above the start on an open
// grid, the up-first direction order walks directly to it.
func TestDFS_UpwardBias(t *testing.T) {
	g := openGrid(t, 8, 8, grid.Coord{Row: 5, Col: 4}, grid.Coord{Row: 3, Col: 4})
	res, err := search.DFS(g)
	if err != nil {
		t.Fatalf("DFS error: %v", err)
	}
	if !res.Found {
		t.Fatal("DFS did not find the goal")
	}
	want := grid.Path{{Row: 5, Col: 4}, {Row: 4, Col: 4}, {Row: 3, Col: 4}}
	if len(res.Path) != len(want) {
		t.Fatalf("Path = %v; want %v", res.Path, want)
	}
	for i := range want {
		if res.Path[i] != want[i] {
			t.Fatalf("Path = %v; want %v", res.Path, want)
		}
	}
	// Straight-line walk: exactly the three cells on the path expand.
	if res.Expanded != 3 {
		t.Errorf("Expanded = %d; want 3", res.Expanded)
	}
}

// TestDFS_PopOrderMatchesDirectionOrder: the first expansion after the
// start must be the start's first admissible direction (reverse-push makes
// pop order track the forward offset list).
func TestDFS_PopOrderMatchesDirectionOrder(t *testing.T) {
	g := openGrid(t, 3, 3, grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 2, Col: 0})
	var order []grid.Coord
	_, err := search.DFS(g, search.WithObserver(func(ev search.Event) {
		order = append(order, ev.Current)
	}))
	if err != nil {
		t.Fatalf("DFS error: %v", err)
	}
	if len(order) < 2 {
		t.Fatalf("observer saw %d expansions; want at least 2", len(order))
	}
	if want := (grid.Coord{Row: 1, Col: 1}); order[0] != want {
		t.Errorf("first expansion = %v; want start %v", order[0], want)
	}
	// Up is the first offset, so (0,1) must be expanded right after (1,1).
	if want := (grid.Coord{Row: 0, Col: 1}); order[1] != want {
		t.Errorf("second expansion = %v; want %v (up bias)", order[1], want)
	}
}

// TestDFS_FindsDetour: DFS completeness on a solvable grid requiring
// backtracking out of a dead-end corridor.
func TestDFS_FindsDetour(t *testing.T) {
	g := mustParse(t, `
S.#..
#.#.#
..#..
.###.
....G
`)
	res, err := search.DFS(g)
	if err != nil {
		t.Fatalf("DFS error: %v", err)
	}
	if !res.Found {
		t.Fatal("DFS failed on a solvable grid")
	}
	checkPath(t, g, res.Path)
}
