package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/search"
)

// UCSSuite exercises uniform-cost search under the diagonal/orthogonal
// cost model.
type UCSSuite struct {
	suite.Suite
}

func (s *UCSSuite) mustGrid(text string) *grid.Grid {
	g, err := grid.Parse(text)
	require.NoError(s.T(), err)

	return g
}

// TestOrthogonalNeighbor: a single step right costs exactly 1.0.
func (s *UCSSuite) TestOrthogonalNeighbor() {
	g, err := grid.New([][]grid.State{{grid.Start, grid.Goal}})
	require.NoError(s.T(), err)

	res, err := search.UCS(g)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), grid.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, res.Path)
	require.Equal(s.T(), search.OrthogonalCost, res.Cost)
}

// TestDiagonalRun: on an open grid the cheapest route to the opposite
// corner is the pure diagonal chain.
func (s *UCSSuite) TestDiagonalRun() {
	g := s.mustGrid("S..\n...\n..G")

	res, err := search.UCS(g)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found)
	require.Len(s.T(), res.Path, 3)
	require.InDelta(s.T(), 2*search.DiagonalCost, res.Cost, 1e-9)
}

// TestCheaperDetour: UCS must prefer a longer-but-cheaper orthogonal
// corridor over a shorter costly mix when obstacles force the trade.
func (s *UCSSuite) TestCheaperDetour() {
	// The only two routes are along the top edge or the bottom hook;
	// UCS's cost must match the cheapest enumerable alternative.
	g := s.mustGrid("S...G\n.###.\n.....")

	res, err := search.UCS(g)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found)
	require.InDelta(s.T(), 4*search.OrthogonalCost, res.Cost, 1e-9)
	require.Len(s.T(), res.Path, 5)
}

// TestCostMinimality: brute-force every simple path on a small grid and
// confirm no route is cheaper than what UCS reports.
func (s *UCSSuite) TestCostMinimality() {
	g := s.mustGrid("S.#\n.#.\n..G")

	res, err := search.UCS(g)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found)

	best := cheapestPathCost(g)
	require.InDelta(s.T(), best, res.Cost, 1e-9)
}

// TestDeterministicTieBreak: multiple equal-cost routes exist; repeated
// runs must return the identical path (FIFO tie-break on equal ranks).
func (s *UCSSuite) TestDeterministicTieBreak() {
	g := s.mustGrid(`
S.....
.#.#..
..##..
.#....
.....G
`)

	first, err := search.UCS(g)
	require.NoError(s.T(), err)
	require.True(s.T(), first.Found)
	for i := 0; i < 10; i++ {
		again, err := search.UCS(g)
		require.NoError(s.T(), err)
		require.Equal(s.T(), first.Path, again.Path)
		require.Equal(s.T(), first.Expanded, again.Expanded)
	}
}

func TestUCSSuite(t *testing.T) {
	suite.Run(t, new(UCSSuite))
}

// cheapestPathCost exhaustively searches every simple path start → goal.
// Exponential, so only minute fixtures use it.
func cheapestPathCost(g *grid.Grid) float64 {
	best := math.Inf(1)
	onPath := map[grid.Coord]bool{g.Start(): true}

	var walk func(at grid.Coord, cost float64)
	walk = func(at grid.Coord, cost float64) {
		if at == g.Goal() {
			if cost < best {
				best = cost
			}

			return
		}
		for _, n := range search.Neighbors(at, g.Rows(), g.Cols()) {
			if onPath[n] || !g.IsTraversable(n) {
				continue
			}
			onPath[n] = true
			walk(n, cost+search.StepCost(at, n))
			delete(onPath, n)
		}
	}
	walk(g.Start(), 0)

	return best
}
