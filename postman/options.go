package postman

import "fmt"

// Pairing selects the graph on which odd-degree vertices are matched.
type Pairing int

const (
	// PairWholeGraph runs maximum-cardinality matching over the entire
	// input graph and duplicates the matched edges.
	PairWholeGraph Pairing = iota

	// PairOddVertices runs maximum-cardinality matching over the complete
	// graph on the odd-degree vertices. A matched pair is joined by a
	// connector edge weighing as much as the fewest-hop path between them.
	PairOddVertices
)

// String returns the flag spelling of the pairing mode.
func (p Pairing) String() string {
	switch p {
	case PairWholeGraph:
		return "whole"
	case PairOddVertices:
		return "odd"
	default:
		return fmt.Sprintf("Pairing(%d)", int(p))
	}
}

// ParsePairing is the inverse of Pairing.String.
func ParsePairing(s string) (Pairing, error) {
	switch s {
	case "whole", "":
		return PairWholeGraph, nil
	case "odd":
		return PairOddVertices, nil
	default:
		return 0, fmt.Errorf("%w: unknown pairing %q", ErrOptionViolation, s)
	}
}

// Connector selects how a matched pair of odd vertices is priced in
// PairOddVertices mode.
type Connector int

const (
	// ConnectHops weighs a connector as the fewest-hop path between its ends.
	ConnectHops Connector = iota

	// ConnectWeighted weighs a connector as the cheapest path between its
	// ends (Dijkstra).
	ConnectWeighted
)

// String returns the flag spelling of the connector metric.
func (c Connector) String() string {
	switch c {
	case ConnectHops:
		return "hops"
	case ConnectWeighted:
		return "weight"
	default:
		return fmt.Sprintf("Connector(%d)", int(c))
	}
}

// ParseConnector is the inverse of Connector.String.
func ParseConnector(s string) (Connector, error) {
	switch s {
	case "hops", "":
		return ConnectHops, nil
	case "weight":
		return ConnectWeighted, nil
	default:
		return 0, fmt.Errorf("%w: unknown connector %q", ErrOptionViolation, s)
	}
}

// Option configures a Solver or EulerTour via functional arguments.
type Option func(*Options)

// Options holds solver configuration.
type Options struct {
	// Pairing selects how odd vertices are matched.
	Pairing Pairing

	// Connector prices connectors in PairOddVertices mode.
	Connector Connector

	// Start is the first vertex of the walk. Empty means the first vertex
	// in insertion order.
	Start string

	// Observer receives progress events. It is never nil after
	// DefaultOptions.
	Observer func(Event)

	err error
}

// DefaultOptions returns whole-graph pairing, fewest-hop connectors,
// default start and a silent observer.
func DefaultOptions() Options {
	return Options{
		Pairing:   PairWholeGraph,
		Connector: ConnectHops,
		Observer:  func(Event) {},
	}
}

// WithPairing selects the pairing mode.
func WithPairing(p Pairing) Option {
	return func(o *Options) {
		if p != PairWholeGraph && p != PairOddVertices {
			o.err = fmt.Errorf("%w: unknown pairing %d", ErrOptionViolation, int(p))
			return
		}
		o.Pairing = p
	}
}

// WithConnector selects the connector metric for PairOddVertices.
func WithConnector(c Connector) Option {
	return func(o *Options) {
		if c != ConnectHops && c != ConnectWeighted {
			o.err = fmt.Errorf("%w: unknown connector %d", ErrOptionViolation, int(c))
			return
		}
		o.Connector = c
	}
}

// WithStart fixes the first vertex of the walk.
func WithStart(id string) Option {
	return func(o *Options) { o.Start = id }
}

// WithObserver registers a callback for progress events.
func WithObserver(fn func(Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observer = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
