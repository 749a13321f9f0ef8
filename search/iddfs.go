package search

import "github.com/katalvlaran/gridnav/grid"

// IDDFS runs iterative-deepening depth-first search: DLS swept with depth
// budgets 0, 1, 2, … upperLimit, stopping at the first budget that reaches
// the goal. The parent map and branch-scoped explored set are reset for
// every iteration; only Result.Expanded accumulates across the sweep.
//
// If any path of length ≤ upperLimit+1 cells exists, IDDFS finds the first
// path DLS discovers at the smallest sufficient budget, which bounds the
// path's step count but not its cost.
//
// An upperLimit below zero yields ErrNegativeDepth.
func IDDFS(g Grid, upperLimit int, opts ...Option) (*Result, error) {
	if upperLimit < 0 {
		return nil, ErrNegativeDepth
	}
	if err := validate(g); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	res := &Result{}
	for budget := 0; budget <= upperLimit; budget++ {
		parents := make(map[grid.Coord]grid.Coord)
		visited := make(map[grid.Coord]struct{})
		if path, found := dlsRun(g, &o, budget, parents, visited, &res.Expanded); found {
			res.Path = path
			res.Cost = PathCost(path)
			res.Found = true

			return res, nil
		}
	}

	return res, nil
}
