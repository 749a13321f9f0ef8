// Package render draws search progress as ASCII frames. It consumes the
// search package's observer events and owns no algorithm state beyond what
// the event stream carries, so any algorithm can be animated unchanged.
//
// Frame legend:
//
//	S start    G goal    # blocked    . open
//	o cell being expanded    + frontier    , visited    * final path
//
// The renderer is an external collaborator of the search core: it may
// pace frames with a delay (blocking the advisory callback), but it never
// feeds anything back into the algorithm.
package render

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/search"
)

// Frame glyphs, keyed by display priority (path over current over
// frontier over visited over the base map).
const (
	glyphStart    = 'S'
	glyphGoal     = 'G'
	glyphBlocked  = '#'
	glyphOpen     = '.'
	glyphCurrent  = 'o'
	glyphFrontier = '+'
	glyphVisited  = ','
	glyphPath     = '*'
)

// Option configures an ASCII renderer.
type Option func(*ASCII)

// WithDelay pauses after each frame, pacing animation. The pause happens
// inside the observer callback, deliberately exercising the contract that
// instrumentation may block without affecting the search.
func WithDelay(d time.Duration) Option {
	return func(a *ASCII) {
		if d > 0 {
			a.delay = d
		}
	}
}

// WithHeader sets a caption printed above every frame.
func WithHeader(h string) Option {
	return func(a *ASCII) { a.header = h }
}

// ASCII accumulates observer events for one search run and writes a full
// frame per event. Not safe for concurrent use; one renderer per run.
type ASCII struct {
	w      io.Writer
	g      *grid.Grid
	header string
	delay  time.Duration

	frontier map[grid.Coord]struct{}
	frames   int
}

// NewASCII builds a renderer over w for one search on g.
// Pass its Observe method to search.WithObserver.
func NewASCII(w io.Writer, g *grid.Grid, opts ...Option) *ASCII {
	a := &ASCII{
		w:        w,
		g:        g,
		frontier: make(map[grid.Coord]struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Frames reports how many frames have been written so far.
func (a *ASCII) Frames() int { return a.frames }

// Observe implements the search observer contract: it folds the event
// into the frontier bookkeeping and emits one frame.
func (a *ASCII) Observe(ev search.Event) {
	for _, c := range ev.Discovered {
		a.frontier[c] = struct{}{}
	}
	delete(a.frontier, ev.Current)

	a.frames++
	a.writeFrame(ev)
	if a.delay > 0 {
		time.Sleep(a.delay)
	}
}

// writeFrame renders the grid with the event's exploration overlay.
func (a *ASCII) writeFrame(ev search.Event) {
	caption := a.header
	if ev.Message != "" {
		if caption != "" {
			caption += " - "
		}
		caption += ev.Message
	}
	if caption != "" {
		fmt.Fprintf(a.w, "[%d] %s\n", a.frames, caption)
	} else {
		fmt.Fprintf(a.w, "[%d]\n", a.frames)
	}

	onPath := make(map[grid.Coord]struct{}, len(ev.Path))
	for _, c := range ev.Path {
		onPath[c] = struct{}{}
	}

	for r := 0; r < a.g.Rows(); r++ {
		line := make([]byte, a.g.Cols())
		for c := 0; c < a.g.Cols(); c++ {
			line[c] = a.glyphAt(grid.Coord{Row: r, Col: c}, ev, onPath)
		}
		fmt.Fprintf(a.w, "%s\n", line)
	}
	fmt.Fprintln(a.w)
}

// glyphAt picks the highest-priority glyph for one cell.
func (a *ASCII) glyphAt(c grid.Coord, ev search.Event, onPath map[grid.Coord]struct{}) byte {
	switch a.g.StateAt(c) {
	case grid.Start:
		return glyphStart
	case grid.Goal:
		return glyphGoal
	case grid.Blocked:
		return glyphBlocked
	}
	if _, ok := onPath[c]; ok {
		return glyphPath
	}
	if c == ev.Current {
		return glyphCurrent
	}
	if _, ok := a.frontier[c]; ok {
		return glyphFrontier
	}
	if _, ok := ev.Visited[c]; ok {
		return glyphVisited
	}

	return glyphOpen
}
