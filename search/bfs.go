package search

import "github.com/katalvlaran/gridnav/grid"

// BFS runs breadth-first search from the grid's start toward its goal.
// Cells are marked discovered on enqueue and never re-enqueued, so the
// frontier expands in strict insertion order and the returned path has the
// fewest steps of any path (all steps counted equally; diagonal cost is
// ignored by the ordering).
//
// Returns a validation error for a malformed grid; an unreachable goal is
// reported via Result.Found=false.
//
// Complexity: O(rows×cols) time and memory.
func BFS(g Grid, opts ...Option) (*Result, error) {
	if err := validate(g); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	start, goal := g.Start(), g.Goal()
	queue := []grid.Coord{start}
	seen := map[grid.Coord]struct{}{start: {}}
	parents := make(map[grid.Coord]grid.Coord)
	visited := make(map[grid.Coord]struct{})
	res := &Result{}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		visited[cur] = struct{}{}
		res.Expanded++

		if cur == goal {
			res.Path = ReconstructPath(parents, goal, start)
			res.Cost = PathCost(res.Path)
			res.Found = true
			o.notify(Event{Current: cur, Visited: visited, Path: res.Path, Message: msgGoalReached})

			return res, nil
		}

		var discovered []grid.Coord
		for _, n := range Neighbors(cur, g.Rows(), g.Cols()) {
			if _, ok := seen[n]; ok {
				continue
			}
			if !g.IsTraversable(n) {
				continue
			}
			seen[n] = struct{}{}
			parents[n] = cur
			queue = append(queue, n)
			discovered = append(discovered, n)
		}
		o.notify(Event{Current: cur, Discovered: discovered, Visited: visited})
	}

	return res, nil
}
