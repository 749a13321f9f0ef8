package search

import "github.com/katalvlaran/gridnav/grid"

// UCS runs uniform-cost search from the grid's start toward its goal,
// expanding cells in order of cumulative step cost (1.0 orthogonal, 1.414
// diagonal). The frontier is a min-priority queue with strict FIFO
// tie-breaking, so equal-cost runs expand in one deterministic order.
//
// Relaxation follows the classic lazy-decrease-key Dijkstra pattern: a
// cheaper route to a not-yet-finalized cell overwrites its recorded cost
// and parent and pushes a fresh queue entry; stale entries are skipped via
// the permanent set when popped. A cell's cost is final once it leaves the
// queue, so the goal's cost is minimal when the goal is popped.
//
// Complexity: O(N log N) time for N = rows×cols, O(N) memory.
func UCS(g Grid, opts ...Option) (*Result, error) {
	if err := validate(g); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	start, goal := g.Start(), g.Goal()
	frontier := newCostQueue(g.Rows() * g.Cols())
	frontier.push(start, 0)
	costs := map[grid.Coord]float64{start: 0}
	permanent := make(map[grid.Coord]struct{})
	parents := make(map[grid.Coord]grid.Coord)
	res := &Result{}

	for !frontier.empty() {
		cur, _ := frontier.pop()
		if _, ok := permanent[cur]; ok {
			continue // stale lazy-decrease-key entry
		}
		permanent[cur] = struct{}{}
		res.Expanded++

		if cur == goal {
			res.Path = ReconstructPath(parents, goal, start)
			res.Cost = costs[goal]
			res.Found = true
			o.notify(Event{Current: cur, Visited: permanent, Path: res.Path, Message: msgGoalReached})

			return res, nil
		}

		var discovered []grid.Coord
		for _, n := range Neighbors(cur, g.Rows(), g.Cols()) {
			if !g.IsTraversable(n) {
				continue
			}
			next := costs[cur] + StepCost(cur, n)
			if old, ok := costs[n]; !ok || next < old {
				costs[n] = next
				parents[n] = cur
				frontier.push(n, next)
				discovered = append(discovered, n)
			}
		}
		o.notify(Event{Current: cur, Discovered: discovered, Visited: permanent})
	}

	return res, nil
}
