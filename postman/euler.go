// File: euler.go
// Role: Euler-tour extraction by a Fleury walk with online bridge tests.
// AI-HINT (file):
//   - The walk consumes a Clone; the caller's graph is never modified.
//   - Bridge tests remove one edge through the core primitives, count
//     reachable vertices with bfs, and restore the edge in its old slot.

package postman

import (
	"fmt"

	"github.com/cetusw/g-loc/bfs"
	"github.com/cetusw/g-loc/core"
)

// EulerTour walks every edge of g exactly once and returns the closed
// vertex sequence. Parallel edges are walked once each.
//
// Implementation:
//   - Stage 1: Pick the start (WithStart or the first vertex) and require
//     every vertex to be reachable from it.
//   - Stage 2: At each vertex try neighbors in order. Unlink the first edge
//     to the neighbor, count reachable vertices, relink it. Take the first
//     edge whose removal keeps the count unchanged; if all are bridges take
//     the first neighbor.
//   - Stage 3: Remove the taken edge for good and advance.
//   - Stage 4: Require the walk to end where it began.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound.
//   - ErrEmptyGraph, ErrDisconnected, ErrStuckWalk, ErrOpenWalk ("no tour").
//
// Complexity:
//   - Time O(E · d · (V + E)) with d the maximum degree.
func EulerTour(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return walk(g, o)
}

func walk(g *core.Graph, o Options) ([]string, error) {
	w := g.Clone()
	ids := w.VertexIDs()
	if len(ids) == 0 {
		return nil, ErrEmptyGraph
	}
	cur := ids[0]
	if o.Start != "" {
		if !w.HasVertex(o.Start) {
			return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, o.Start)
		}
		cur = o.Start
	}

	reach, err := bfs.Reachable(w, cur)
	if err != nil {
		return nil, err
	}
	if reach != len(ids) {
		return nil, fmt.Errorf("%w: %d of %d vertices reachable from %s", ErrDisconnected, reach, len(ids), cur)
	}

	tour := make([]string, 0, w.NumEdges()+1)
	tour = append(tour, cur)
	for w.NumEdges() > 0 {
		neighbors := w.GetNeighbors(cur)
		if len(neighbors) == 0 {
			return nil, fmt.Errorf("%w: %d edges left at %s", ErrStuckWalk, w.NumEdges(), cur)
		}

		e, forced, err := nextEdge(w, cur, neighbors)
		if err != nil {
			return nil, err
		}
		next := e.Other(cur)
		unlink(w, e)
		o.Observer(Event{Kind: EventStep, Vertices: []string{cur, next}, Edge: e, Forced: forced})

		tour = append(tour, next)
		cur = next
	}

	if tour[0] != tour[len(tour)-1] {
		return nil, fmt.Errorf("%w: %s → %s", ErrOpenWalk, tour[0], tour[len(tour)-1])
	}

	return tour, nil
}

// nextEdge picks the first non-bridge edge leaving cur, or the first edge
// when all of them are bridges.
func nextEdge(w *core.Graph, cur string, neighbors []string) (*core.Edge, bool, error) {
	before, err := bfs.Reachable(w, cur)
	if err != nil {
		return nil, false, err
	}
	for _, nb := range neighbors {
		e := w.GetEdge(cur, nb)
		if e == nil {
			continue
		}
		unlink(w, e)
		after, err := bfs.Reachable(w, cur)
		relink(w, e)
		if err != nil {
			return nil, false, err
		}
		if after == before {
			return e, false, nil
		}
	}

	return w.GetEdge(cur, neighbors[0]), true, nil
}

// unlink removes e from the catalog and both adjacency sides.
func unlink(w *core.Graph, e *core.Edge) {
	w.DeleteEdgeEntry(e.ID)
	w.DeleteAdjacencyEntry(e.From, e.To, e.ID)
	w.DeleteAdjacencyEntry(e.To, e.From, e.ID)
}

// relink restores an edge removed by unlink.
func relink(w *core.Graph, e *core.Edge) {
	w.SetEdgeEntry(e)
	w.SetAdjacencyEntry(e.From, e.To, e)
	w.SetAdjacencyEntry(e.To, e.From, e)
}
