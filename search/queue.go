package search

import (
	"container/heap"

	"github.com/katalvlaran/gridnav/grid"
)

// frontierItem is one pending cell in the cost-ordered frontier.
type frontierItem struct {
	coord grid.Coord
	rank  float64 // cumulative cost for UCS
	seq   uint64  // insertion order, breaks rank ties FIFO
}

// frontierHeap is a min-heap of frontierItem ordered by rank, with strict
// FIFO ordering among equal ranks via the monotonically increasing seq.
// This makes expansion order fully deterministic for equal-cost nodes.
type frontierHeap []frontierItem

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].rank != h[j].rank {
		return h[i].rank < h[j].rank
	}

	return h[i].seq < h[j].seq
}

func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap) Push(x any) { *h = append(*h, x.(frontierItem)) }

func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// costQueue wraps frontierHeap with the push/pop/empty surface the
// cost-based algorithms use, owning the sequence counter.
type costQueue struct {
	h       frontierHeap
	nextSeq uint64
}

func newCostQueue(capacity int) *costQueue {
	q := &costQueue{h: make(frontierHeap, 0, capacity)}
	heap.Init(&q.h)

	return q
}

// push enqueues c at the given rank, stamped with the next sequence number.
func (q *costQueue) push(c grid.Coord, rank float64) {
	heap.Push(&q.h, frontierItem{coord: c, rank: rank, seq: q.nextSeq})
	q.nextSeq++
}

// pop removes and returns the lowest-rank (earliest-pushed on ties) cell.
func (q *costQueue) pop() (grid.Coord, float64) {
	item := heap.Pop(&q.h).(frontierItem)

	return item.coord, item.rank
}

// empty reports whether the frontier is exhausted.
func (q *costQueue) empty() bool { return q.h.Len() == 0 }
