// Package search implements uninformed graph-search strategies over a 2D
// grid: breadth-first (BFS), depth-first (DFS), uniform-cost (UCS),
// depth-limited (DLS), iterative-deepening (IDDFS) and bidirectional BFS.
//
// Every algorithm is a pure function of (grid, options) → *Result: it reads
// the grid through the small Grid interface, keeps all per-run state local,
// and returns the discovered path (start → goal inclusive) together with
// exploration statistics. A goal that cannot be reached is not an error;
// the Result simply reports Found=false.
//
// Shared primitives:
//
//   - Neighbors: the fixed 6-offset movement set of up, right, down,
//     down-right, left, up-left, in that exact order. This order is the
//     direction bias of DFS and DLS and is part of the package contract.
//   - StepCost: 1.414 for diagonal moves, 1.0 for orthogonal ones.
//   - ReconstructPath: parent-map walk-back from goal to start.
//   - An internal min-priority queue with strict FIFO tie-breaking for
//     equal ranks, so UCS expansion order is fully deterministic.
//
// Exploration bias, in brief:
//
//	BFS   — FIFO frontier; fewest-steps path on uniform costs.
//	DFS   — LIFO frontier, neighbors pushed in reverse so pop order matches
//	        the forward direction order; first path found, not shortest.
//	UCS   — cost-ordered frontier with Dijkstra relaxation; cheapest path
//	        under the diagonal/orthogonal cost model.
//	DLS   — depth-budgeted DFS whose explored set covers only the active
//	        branch; cells may be re-explored after backtracking.
//	IDDFS — DLS swept over budgets 0..upperLimit.
//	Bidirectional — two alternating BFS waves bridged at the meeting cell;
//	        no shortest-path guarantee under diagonal costs.
//
// Instrumentation is a single optional Observer callback, advisory only:
// it may block (animation pacing) but never alters the search outcome.
package search
