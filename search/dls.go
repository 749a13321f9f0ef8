package search

import "github.com/katalvlaran/gridnav/grid"

// DLS runs depth-limited search: depth-first exploration in the forward
// direction order, cutting every branch off depthCap steps from the start.
// The returned path, if any, has at most depthCap+1 cells.
//
// The explored set covers only the branch currently being extended: a cell
// is recorded on entry and removed again on backtrack, so later branches
// may re-explore it via a different (possibly longer) route. DLS, and IDDFS
// on top of it, therefore re-expands cells exponentially in the worst case
// while keeping memory proportional to the depth budget.
//
// A depthCap below zero yields ErrNegativeDepth. A goal beyond the budget
// is reported via Result.Found=false, which IDDFS reads as "deepen and
// retry".
func DLS(g Grid, depthCap int, opts ...Option) (*Result, error) {
	if depthCap < 0 {
		return nil, ErrNegativeDepth
	}
	if err := validate(g); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	res := &Result{}
	parents := make(map[grid.Coord]grid.Coord)
	visited := make(map[grid.Coord]struct{})
	if path, found := dlsRun(g, &o, depthCap, parents, visited, &res.Expanded); found {
		res.Path = path
		res.Cost = PathCost(path)
		res.Found = true
	}

	return res, nil
}

// dlsFrame is one suspended visit on the explicit recursion stack:
// the cell, its remaining depth budget, and how far through its neighbor
// list the visit has advanced.
type dlsFrame struct {
	coord     grid.Coord
	remaining int
	nbrs      []grid.Coord
	next      int
	entered   bool
}

// dlsRun is the depth-limited core shared by DLS and IDDFS. Recursion is
// modeled with an explicit frame stack; the branch-scoped explored set is
// grown on frame entry and shrunk on frame exit, in lockstep with the
// stack, reproducing recursive explore/backtrack semantics without
// call-stack depth limits.
//
// Neighbor admissibility (explored membership, traversability) is checked
// lazily when the parent frame advances, not when the neighbor list is
// built, so siblings observe the explored-set changes made by earlier
// subtrees exactly as nested recursion would.
func dlsRun(g Grid, o *Options, depthCap int, parents map[grid.Coord]grid.Coord, visited map[grid.Coord]struct{}, expanded *int) (grid.Path, bool) {
	start, goal := g.Start(), g.Goal()
	explored := make(map[grid.Coord]struct{})
	stack := []dlsFrame{{coord: start, remaining: depthCap}}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]

		if !f.entered {
			f.entered = true
			visited[f.coord] = struct{}{}
			*expanded++

			// Goal wins over the cutoff: a budget-exhausted entry that IS
			// the goal still counts.
			if f.coord == goal {
				path := ReconstructPath(parents, goal, start)
				o.notify(Event{Current: f.coord, Visited: visited, Path: path, Message: msgGoalReached})

				return path, true
			}
			if f.remaining <= 0 {
				// Cutoff leaf; never entered the explored set.
				o.notify(Event{Current: f.coord, Visited: visited})
				stack = stack[:len(stack)-1]

				continue
			}

			explored[f.coord] = struct{}{}
			f.nbrs = Neighbors(f.coord, g.Rows(), g.Cols())
			var discovered []grid.Coord
			for _, n := range f.nbrs {
				if _, ok := explored[n]; ok {
					continue
				}
				if g.IsTraversable(n) {
					discovered = append(discovered, n)
				}
			}
			o.notify(Event{Current: f.coord, Discovered: discovered, Visited: visited})
		}

		// Descend into the next admissible neighbor, if any remain.
		descended := false
		for f.next < len(f.nbrs) {
			n := f.nbrs[f.next]
			f.next++
			if _, ok := explored[n]; ok {
				continue
			}
			if !g.IsTraversable(n) {
				continue
			}
			parents[n] = f.coord
			remaining := f.remaining - 1
			// f is invalid after this append; the loop re-peeks.
			stack = append(stack, dlsFrame{coord: n, remaining: remaining})
			descended = true

			break
		}
		if !descended {
			// Backtrack: release the cell for other branches.
			delete(explored, f.coord)
			stack = stack[:len(stack)-1]
		}
	}

	return nil, false
}
