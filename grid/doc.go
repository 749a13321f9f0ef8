// Package grid models the 2D search environment for gridnav.
//
// What
//
//	A Grid is a rows×cols matrix of cells, each Open, Blocked, Start or
//	Goal, with exactly one Start and exactly one Goal. Once constructed it
//	never changes: the search layer reads dimensions, endpoints and the
//	traversability predicate, nothing else.
//
// Construction
//
//   - New: from a [][]State matrix, deep-copied and validated.
//   - Parse: from newline-separated text, one rune per cell
//     ('.' open, '#' blocked, 'S' start, 'G' goal); String round-trips.
//   - Generate: random map from a caller-supplied seeded RNG, with a
//     fully-open fallback when the obstacle draw leaves fewer than two
//     open cells.
//
// Errors
//
//	Every malformed input maps to a sentinel error (ErrEmptyGrid,
//	ErrNonRectangular, ErrNoStart, ErrDuplicateGoal, ...), wrapped with
//	context where useful. A Grid that constructs successfully is always
//	searchable.
//
// See the search package for the algorithms that consume this model.
package grid
