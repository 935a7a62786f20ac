package postman

import (
	"fmt"

	"github.com/cetusw/g-loc/bfs"
	"github.com/cetusw/g-loc/blossom"
	"github.com/cetusw/g-loc/core"
	"github.com/cetusw/g-loc/dijkstra"
	"github.com/cetusw/g-loc/matching"
)

// Solver solves the route-inspection problem on one graph.
// The graph is only read; all edits happen on working copies.
type Solver struct {
	graph *core.Graph
	opts  []Option
}

// Result is the full outcome of Solve.
type Result struct {
	// Tour is the closed walk, first and last vertex equal.
	Tour []string

	// OddVertices are the odd-degree vertices of the input, insertion order.
	OddVertices []string

	// Matching pairs the odd vertices; nil when none were odd. Its edges
	// belong to the input graph (PairWholeGraph) or to the complete graph
	// on OddVertices (PairOddVertices).
	Matching *matching.Matching

	// AddedEdges are the edges inserted into the working multigraph.
	AddedEdges []*core.Edge

	// Cost is the total weight of the tour.
	Cost float64
}

// NewSolver binds a solver to g. Options are validated when solving.
func NewSolver(g *core.Graph, opts ...Option) *Solver {
	return &Solver{graph: g, opts: opts}
}

// FindChinesePostmanTour returns a closed walk covering every edge, or nil
// when no tour can be built (empty graph, unpaired odd vertices,
// disconnected graph, stuck walk). A non-nil error signals bad input or a
// broken internal invariant, never a missing tour.
func (s *Solver) FindChinesePostmanTour() ([]string, error) {
	res, err := s.Solve()
	if IsNoTour(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return res.Tour, nil
}

// Solve runs the full pipeline and reports every intermediate product.
// "No tour" outcomes are returned as the sentinels grouped by IsNoTour.
//
// Implementation:
//   - Stage 1: Reject empty graphs; recompute degrees; collect odd vertices.
//   - Stage 2: Without odd vertices extract the tour right away.
//   - Stage 3: Match (see Pairing), require 2·|M| == odd count.
//   - Stage 4: Copy the graph as a multigraph and add one edge per pair.
//   - Stage 5: Extract the tour from the working copy.
func (s *Solver) Solve() (*Result, error) {
	if s.graph == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(s.opts)
	if err != nil {
		return nil, err
	}
	g := s.graph
	if g.NumVertices() == 0 {
		return nil, ErrEmptyGraph
	}

	res := &Result{OddVertices: oddVertices(g)}
	o.Observer(Event{Kind: EventOddVertices, Vertices: append([]string(nil), res.OddVertices...)})

	working := g
	if len(res.OddVertices) > 0 {
		m, err := pair(g, res.OddVertices, o)
		if err != nil {
			return nil, err
		}
		if 2*m.Size() != len(res.OddVertices) {
			return nil, fmt.Errorf("%w: matching of size %d for %d odd vertices",
				ErrPairingFailed, m.Size(), len(res.OddVertices))
		}
		res.Matching = m

		working = g.CloneMulti()
		for _, e := range m.GetMatchingEdges() {
			added, ok := working.AddEdge(e.From, e.To, e.Weight)
			if !ok {
				return nil, fmt.Errorf("%w: cannot link %s and %s", ErrPairingFailed, e.From, e.To)
			}
			res.AddedEdges = append(res.AddedEdges, added)
			o.Observer(Event{Kind: EventDuplicate, Vertices: []string{added.From, added.To}, Edge: added})
		}
	}

	tour, err := walk(working, o)
	if err != nil {
		return nil, err
	}
	res.Tour = tour
	for _, e := range working.GetAllEdges() {
		res.Cost += e.Weight
	}
	o.Observer(Event{Kind: EventTour, Vertices: append([]string(nil), tour...)})

	return res, nil
}

// oddVertices recomputes degrees and returns odd-degree vertices in
// insertion order.
func oddVertices(g *core.Graph) []string {
	g.UpdateVertexDegrees()
	out := make([]string, 0)
	for _, v := range g.GetAllVertices() {
		if v.Degree%2 != 0 {
			out = append(out, v.ID)
		}
	}

	return out
}

// pair computes the matching selected by o.Pairing.
func pair(g *core.Graph, odd []string, o Options) (*matching.Matching, error) {
	hooks := []blossom.Option{
		blossom.WithOnBlossom(func(cycle []string, base string, depth int) {
			o.Observer(Event{Kind: EventBlossom, Vertices: cycle, Vertex: base, Depth: depth})
		}),
		blossom.WithOnAugment(func(path []string) {
			o.Observer(Event{Kind: EventAugment, Vertices: path})
		}),
	}

	target := g
	if o.Pairing == PairOddVertices {
		k, err := oddClosure(g, odd, o.Connector)
		if err != nil {
			return nil, err
		}
		target = k
	}
	m, err := blossom.MaximumMatchingInitial(target, hooks...)
	if err != nil {
		return nil, fmt.Errorf("postman: matching: %w", err)
	}

	return m, nil
}

// oddClosure builds the complete graph on odd, linking every pair that is
// connected in g by an edge priced by the connector metric.
func oddClosure(g *core.Graph, odd []string, c Connector) (*core.Graph, error) {
	k := core.NewGraph()
	for _, id := range odd {
		_ = k.AddVertexID(id, g.GetVertex(id).Label)
	}
	for i := range odd {
		price, err := pricer(g, odd[i], c)
		if err != nil {
			return nil, fmt.Errorf("postman: connectors from %s: %w", odd[i], err)
		}
		for j := i + 1; j < len(odd); j++ {
			if w, ok := price(odd[j]); ok {
				k.AddEdge(odd[i], odd[j], w)
			}
		}
	}

	return k, nil
}

// pricer returns the connector weight from src to any vertex; ok is false
// for vertices in another component.
func pricer(g *core.Graph, src string, c Connector) (func(dst string) (float64, bool), error) {
	if c == ConnectWeighted {
		res, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
		if err != nil {
			return nil, err
		}
		return func(dst string) (float64, bool) {
			return res.Dist[dst], res.Reaches(dst)
		}, nil
	}

	tree, err := bfs.BFS(g, src)
	if err != nil {
		return nil, err
	}
	return func(dst string) (float64, bool) {
		path, err := tree.PathTo(dst)
		if err != nil {
			return 0, false
		}
		return g.PathWeight(path)
	}, nil
}
