package search

import (
	"fmt"

	"github.com/katalvlaran/gridnav/grid"
)

// Step costs under the movement model: diagonal moves change both
// coordinates, orthogonal moves exactly one.
const (
	OrthogonalCost = 1.0
	DiagonalCost   = 1.414
)

// neighborOffsets is the fixed movement set, applied in this exact order:
// up, right, down, down-right, left, up-left. The order is the tie-break
// bias of DFS and DLS and must never be reordered.
var neighborOffsets = [6][2]int{
	{-1, 0},  // up
	{0, 1},   // right
	{1, 0},   // down
	{1, 1},   // down-right
	{0, -1},  // left
	{-1, -1}, // up-left
}

// Neighbors returns the in-bounds cells adjacent to c under the fixed
// 6-offset movement set, preserving offset order. Traversability is the
// caller's concern. Complexity: O(1).
func Neighbors(c grid.Coord, rows, cols int) []grid.Coord {
	out := make([]grid.Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := grid.Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if n.Row >= 0 && n.Row < rows && n.Col >= 0 && n.Col < cols {
			out = append(out, n)
		}
	}

	return out
}

// StepCost returns the cost of moving between two adjacent cells:
// DiagonalCost when both coordinates change, OrthogonalCost otherwise.
// Behavior is undefined for non-adjacent inputs; callers only pass pairs
// produced by Neighbors.
func StepCost(src, dest grid.Coord) float64 {
	dr, dc := src.Row-dest.Row, src.Col-dest.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	if dr == 1 && dc == 1 {
		return DiagonalCost
	}

	return OrthogonalCost
}

// PathCost sums the step costs along p. An empty or single-cell path
// costs zero.
func PathCost(p grid.Path) float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += StepCost(p[i-1], p[i])
	}

	return total
}

// ReconstructPath walks parents backward from goal until start and returns
// the forward path, start first. The map must contain a complete chain:
// a missing link means reconstruction was invoked on a cell that was never
// reached, and the walk panics rather than return a truncated path.
func ReconstructPath(parents map[grid.Coord]grid.Coord, goal, start grid.Coord) grid.Path {
	path := grid.Path{goal}
	for cur := goal; cur != start; {
		prev, ok := parents[cur]
		if !ok {
			panic(fmt.Sprintf("search: broken parent chain at %v (goal %v, start %v)", cur, goal, start))
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
