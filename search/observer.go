package search

import "github.com/katalvlaran/gridnav/grid"

// Event is the advisory per-step payload handed to an Observer.
//
// Visited is the algorithm's live expanded-set and is shared for the
// duration of the run: observers must treat it as read-only and must not
// retain it past the callback.
type Event struct {
	// Current is the cell being expanded (or checked, for the
	// bidirectional rounds).
	Current grid.Coord

	// Discovered lists the cells newly added to the frontier by this
	// expansion, in discovery order.
	Discovered []grid.Coord

	// Visited holds every cell expanded so far, Current included.
	Visited map[grid.Coord]struct{}

	// Path carries the final route on the terminal event, nil otherwise.
	Path grid.Path

	// Message is an optional status line ("forward", "goal reached", ...).
	Message string
}

// Observer receives Events as a search progresses. It runs synchronously on
// the search goroutine and may block (e.g. for animation pacing), but it
// must not mutate the grid or any Event state: its return value and side
// effects never influence the search outcome.
type Observer func(Event)

// Terminal status messages shared by the algorithms.
const (
	msgGoalReached = "goal reached"
	msgForward     = "forward"
	msgBackward    = "backward"
)

// notify invokes the observer when one is registered.
func (o *Options) notify(ev Event) {
	if o.Observer != nil {
		o.Observer(ev)
	}
}
