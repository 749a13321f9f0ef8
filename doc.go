// Package gridnav is a playground for classic uninformed search on 2D
// grid maps — generate or parse a board, run an algorithm, watch it
// explore, compare best and worst cases.
//
// 🚀 What is gridnav?
//
//	A small, focused library that brings together:
//		• Grid maps: parse from ASCII, generate randomly, validate strictly
//		• Traversals: BFS, DFS
//		• Cost-aware search: Uniform-Cost Search with diagonal step costs
//		• Bounded search: Depth-Limited Search, Iterative Deepening DFS
//		• Two-frontier search: Bidirectional BFS
//		• Instrumentation: per-expansion observer events, ASCII animation
//
// ✨ Why choose gridnav?
//
//   - Approachable – a handful of functions, named for what they do
//   - Deterministic – fixed direction order, FIFO tie-breaks, seedable maps
//   - Observable – hook a renderer or collector into any run without
//     changing its result
//
// Everything is organized under five packages:
//
//	grid/     — board representation, parsing, random generation
//	search/   — the six algorithms plus shared movement primitives
//	render/   — ASCII frame renderer consuming observer events
//	scenario/ — curated best/worst boards and a timed report runner
//	cmd/      — the gridnav terminal entry point
//
// Quick example:
//
//	g, _ := grid.Parse("S..\n.#.\n..G")
//	res, _ := search.BFS(g)
//	fmt.Println(res.Found, res.Path)
//
// Movement is six-directional: the four orthogonal steps plus the
// down-right and up-left diagonals, always inspected in that fixed order.
//
//	go get github.com/katalvlaran/gridnav
package gridnav
