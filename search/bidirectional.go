package search

import "github.com/katalvlaran/gridnav/grid"

// Bidirectional runs two breadth-first waves, one from the start and one
// from the goal, alternating exactly one pop-and-expand per side each
// round. Each side keeps a private discovered set and parent map. The
// meeting check runs immediately on pop, before any expansion: the moment
// either side pops a cell the other side has already recorded, the two
// half-paths are bridged at that meeting cell.
//
// Because both sides are plain unweighted BFS and the meeting check runs
// within the round, the combined path minimizes neither step count nor
// diagonal-aware cost in general; completeness, not optimality, is the
// contract here.
//
// Complexity: O(rows×cols) time and memory, typically far less than a
// single-sided BFS on open maps.
func Bidirectional(g Grid, opts ...Option) (*Result, error) {
	if err := validate(g); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	start, goal := g.Start(), g.Goal()
	rows, cols := g.Rows(), g.Cols()

	fwdQueue := []grid.Coord{start}
	bwdQueue := []grid.Coord{goal}
	fwdSeen := map[grid.Coord]struct{}{start: {}}
	bwdSeen := map[grid.Coord]struct{}{goal: {}}
	fwdParents := make(map[grid.Coord]grid.Coord)
	bwdParents := make(map[grid.Coord]grid.Coord)
	visited := make(map[grid.Coord]struct{})
	res := &Result{}

	finish := func(meeting grid.Coord) (*Result, error) {
		res.Path = bridgePaths(fwdParents, bwdParents, meeting, start)
		res.Cost = PathCost(res.Path)
		res.Found = true
		o.notify(Event{Current: meeting, Visited: visited, Path: res.Path, Message: msgGoalReached})

		return res, nil
	}

	for len(fwdQueue) > 0 && len(bwdQueue) > 0 {
		// Forward step.
		cur := fwdQueue[0]
		fwdQueue = fwdQueue[1:]
		visited[cur] = struct{}{}
		res.Expanded++
		if _, met := bwdSeen[cur]; met {
			return finish(cur)
		}
		var discovered []grid.Coord
		for _, n := range Neighbors(cur, rows, cols) {
			if _, ok := fwdSeen[n]; ok {
				continue
			}
			if !g.IsTraversable(n) {
				continue
			}
			fwdSeen[n] = struct{}{}
			fwdParents[n] = cur
			fwdQueue = append(fwdQueue, n)
			discovered = append(discovered, n)
		}
		o.notify(Event{Current: cur, Discovered: discovered, Visited: visited, Message: msgForward})

		// Backward step.
		cur = bwdQueue[0]
		bwdQueue = bwdQueue[1:]
		visited[cur] = struct{}{}
		res.Expanded++
		if _, met := fwdSeen[cur]; met {
			return finish(cur)
		}
		discovered = nil
		for _, n := range Neighbors(cur, rows, cols) {
			if _, ok := bwdSeen[n]; ok {
				continue
			}
			if !g.IsTraversable(n) {
				continue
			}
			bwdSeen[n] = struct{}{}
			bwdParents[n] = cur
			bwdQueue = append(bwdQueue, n)
			discovered = append(discovered, n)
		}
		o.notify(Event{Current: cur, Discovered: discovered, Visited: visited, Message: msgBackward})
	}

	return res, nil
}

// bridgePaths joins the two half-paths at the meeting cell: start → meeting
// via the forward parent map, then meeting's backward parent walked out to
// the goal. The meeting cell itself appears exactly once. When the meeting
// cell is the goal (or the start, on a backward pop), the corresponding
// half is empty and the other half already spans the route.
func bridgePaths(fwdParents, bwdParents map[grid.Coord]grid.Coord, meeting, start grid.Coord) grid.Path {
	path := ReconstructPath(fwdParents, meeting, start)
	cur, ok := bwdParents[meeting]
	for ok {
		path = append(path, cur)
		cur, ok = bwdParents[cur]
	}

	return path
}
