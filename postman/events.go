package postman

import "github.com/cetusw/g-loc/core"

// EventKind identifies a solver progress event.
type EventKind int

const (
	// EventOddVertices carries the odd-degree vertices in Vertices.
	EventOddVertices EventKind = iota
	// EventBlossom carries a contracted cycle in Vertices and its base in Vertex.
	EventBlossom
	// EventAugment carries an augmenting path in Vertices.
	EventAugment
	// EventDuplicate carries an edge added to the working graph in Edge.
	EventDuplicate
	// EventStep carries one walk step From→To in Vertices; Forced is set
	// when every remaining edge at From was a bridge.
	EventStep
	// EventTour carries the finished tour in Vertices.
	EventTour
)

var eventNames = [...]string{
	EventOddVertices: "odd-vertices",
	EventBlossom:     "blossom",
	EventAugment:     "augment",
	EventDuplicate:   "duplicate",
	EventStep:        "step",
	EventTour:        "tour",
}

// String returns a short lowercase name.
func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}

	return "unknown"
}

// Event is one observable step of a solve.
type Event struct {
	Kind     EventKind
	Vertices []string
	Vertex   string
	Edge     *core.Edge
	Forced   bool
	Depth    int
}
