package search

import "github.com/katalvlaran/gridnav/grid"

// DFS runs depth-first search from the grid's start toward its goal.
//
// Neighbors are pushed onto the stack in reverse of the fixed direction
// order, so pops follow the forward order (up before right before down, …):
// the search dives upward first and backtracks through the remaining
// directions. Visited marking is lazy: a cell is marked when popped, and
// stale duplicates left on the stack are skipped then. A cell's recorded
// parent is the most recent pusher, which is exactly the branch that pops
// it first.
//
// The returned path is the first one found under this bias, with no length
// or cost guarantee. Complexity: O(rows×cols) time and memory.
func DFS(g Grid, opts ...Option) (*Result, error) {
	if err := validate(g); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	start, goal := g.Start(), g.Goal()
	stack := []grid.Coord{start}
	visited := make(map[grid.Coord]struct{})
	parents := make(map[grid.Coord]grid.Coord)
	res := &Result{}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := visited[cur]; ok {
			continue // stale duplicate
		}
		visited[cur] = struct{}{}
		res.Expanded++

		if cur == goal {
			res.Path = ReconstructPath(parents, goal, start)
			res.Cost = PathCost(res.Path)
			res.Found = true
			o.notify(Event{Current: cur, Visited: visited, Path: res.Path, Message: msgGoalReached})

			return res, nil
		}

		nbrs := Neighbors(cur, g.Rows(), g.Cols())
		var discovered []grid.Coord
		for i := len(nbrs) - 1; i >= 0; i-- {
			n := nbrs[i]
			if _, ok := visited[n]; ok {
				continue
			}
			if !g.IsTraversable(n) {
				continue
			}
			parents[n] = cur
			stack = append(stack, n)
			discovered = append(discovered, n)
		}
		o.notify(Event{Current: cur, Discovered: discovered, Visited: visited})
	}

	return res, nil
}
