package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/search"
)

// ExampleBFS demonstrates the shortest-step route across a small open map:
// the diagonal offsets let BFS cut straight to the far corner.
func ExampleBFS() {
	g, err := grid.Parse("S..\n...\n..G")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := search.BFS(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Found, res.Path)
	// Output:
	// true [{0 0} {1 1} {2 2}]
}

// ExampleDFS shows the direction bias: depth-first dives along the first
// admissible offsets (right along the top edge from a corner) instead of
// heading straight for the goal.
func ExampleDFS() {
	g, err := grid.Parse("S..\n...\n..G")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := search.DFS(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path)
	// Output:
	// [{0 0} {0 1} {0 2} {1 2} {2 2}]
}

// ExampleUCS reports the cheapest cost under the 1.0/1.414 step model:
// two diagonal moves beat any orthogonal detour.
func ExampleUCS() {
	g, err := grid.Parse("S..\n...\n..G")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := search.UCS(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("cost %.3f via %v\n", res.Cost, res.Path)
	// Output:
	// cost 2.828 via [{0 0} {1 1} {2 2}]
}

// ExampleIDDFS sweeps depth budgets until one reaches the goal; the
// two-diagonal route is found at budget 2.
func ExampleIDDFS() {
	g, err := grid.Parse("S..\n...\n..G")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := search.IDDFS(g, 10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path)
	// Output:
	// [{0 0} {1 1} {2 2}]
}

// ExampleWithObserver streams per-expansion events; here we just count
// them and inspect the terminal status.
func ExampleWithObserver() {
	g, err := grid.Parse("S..\n...\n..G")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	steps := 0
	var status string
	_, err = search.BFS(g, search.WithObserver(func(ev search.Event) {
		steps++
		if ev.Path != nil {
			status = ev.Message
		}
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(steps, status)
	// Output:
	// 9 goal reached
}
