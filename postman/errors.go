package postman

import "errors"

// Input and configuration errors.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("postman: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("postman: invalid option supplied")

	// ErrStartVertexNotFound is returned when WithStart names a vertex
	// that is not in the graph.
	ErrStartVertexNotFound = errors.New("postman: start vertex not found")
)

// "No tour" outcomes. They are expected results, not failures: callers of
// FindChinesePostmanTour see them as a nil tour with a nil error.
var (
	// ErrEmptyGraph indicates a graph without vertices.
	ErrEmptyGraph = errors.New("postman: graph has no vertices")

	// ErrPairingFailed indicates that the matching does not pair every
	// odd-degree vertex (2·|M| ≠ number of odd vertices).
	ErrPairingFailed = errors.New("postman: odd vertices cannot be paired")

	// ErrDisconnected indicates that some vertex is unreachable from the
	// start of the walk.
	ErrDisconnected = errors.New("postman: graph is disconnected")

	// ErrStuckWalk indicates that the walk reached a vertex with no
	// remaining edge while other edges were left untraversed.
	ErrStuckWalk = errors.New("postman: walk stuck with edges remaining")

	// ErrOpenWalk indicates that every edge was traversed but the walk
	// did not return to its start.
	ErrOpenWalk = errors.New("postman: walk does not close")
)

// IsNoTour reports whether err is one of the "no tour" outcomes.
func IsNoTour(err error) bool {
	return errors.Is(err, ErrEmptyGraph) ||
		errors.Is(err, ErrPairingFailed) ||
		errors.Is(err, ErrDisconnected) ||
		errors.Is(err, ErrStuckWalk) ||
		errors.Is(err, ErrOpenWalk)
}
