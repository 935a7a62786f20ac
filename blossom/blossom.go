package blossom

import (
	"fmt"

	"github.com/cetusw/g-loc/core"
	"github.com/cetusw/g-loc/matching"
)

// searcher carries the per-call options through the recursion.
type searcher struct {
	opts Options
}

// AugmentingPath returns one augmenting path of g with respect to m as a
// vertex sequence, or an empty slice when m is already maximum.
//
// The topology of g and the edges of m are left untouched: blossoms are
// contracted on snapshots. Snapshots share *core.Vertex values with g, so
// cached degrees of g are recomputed before returning.
//
// Errors:
//   - ErrGraphNil, ErrMatchingNil, ErrOptionViolation for bad input.
//   - ErrDepthExceeded when WithMaxDepth is exceeded.
//   - ErrInvariantViolation (wrapped) when m is inconsistent with g.
func AugmentingPath(g *core.Graph, m *matching.Matching, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if m == nil {
		return nil, ErrMatchingNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	s := &searcher{opts: o}
	defer g.UpdateVertexDegrees()

	return s.search(g, m, nil)
}

// search grows an alternating forest over g and returns the first
// augmenting path it finds. stack holds the contracted blossom bases of the
// enclosing calls, innermost last.
//
// Implementation:
//   - Stage 1: One tree per exposed vertex.
//   - Stage 2: Pick the first unexhausted even vertex u; try each untried
//     edge u–v in neighbor order:
//     v outside the forest: grow u's tree by v and its partner;
//     v even in another tree: splice the two root paths and return;
//     v even in u's tree: contract the blossom, recurse, lift;
//     v odd: skip.
//   - Stage 3: Exhaust u; no candidate left means no augmenting path.
//
// Complexity:
//   - One level is O(V·(V+E)) due to Dist parity checks on tree graphs;
//     nesting adds at most V/2 levels.
func (s *searcher) search(g *core.Graph, m *matching.Matching, stack []string) ([]string, error) {
	f := newForest(g, m)
	vertexMark := make(map[string]bool, g.NumVertices())
	edgeMark := make(map[string]bool, g.NumEdges())

	for {
		u, iu, ok := f.candidate(vertexMark)
		if !ok {
			return []string{}, nil
		}

		for _, v := range g.GetNeighbors(u) {
			eid := core.EdgeID(u, v)
			if edgeMark[eid] {
				continue
			}

			iv, inForest := f.index(v)
			switch {
			case !inForest:
				w, matched := m.MatchedVertex(v)
				if !matched {
					return nil, fmt.Errorf("%w: vertex %s not in forest but not matched", ErrInvariantViolation, v)
				}
				f.grow(iu, u, v, w)

			case !f.even(iv, v):
				// odd level: reached from its own tree already

			case iv != iu:
				return f.augmentingPath(iu, u, iv, v), nil

			default:
				return s.shrink(g, m, f, iu, u, v, stack)
			}
			edgeMark[eid] = true
		}
		vertexMark[u] = true
	}
}

// shrink handles the blossom closed by the edge u–v inside tree i: it
// contracts the cycle onto its base, searches the snapshot and lifts the
// result back into g.
func (s *searcher) shrink(g *core.Graph, m *matching.Matching, f *forest, i int, u, v string, stack []string) ([]string, error) {
	cycle, err := f.cycle(i, u, v)
	if err != nil {
		return nil, err
	}
	base, err := findBase(g, m, cycle)
	if err != nil {
		return nil, err
	}
	depth := len(stack)
	if s.opts.MaxDepth > 0 && depth >= s.opts.MaxDepth {
		return nil, fmt.Errorf("%w: %d nested blossoms", ErrDepthExceeded, depth+1)
	}
	s.opts.OnBlossom(append([]string(nil), cycle...), base, depth)

	gc, mc, err := contract(g, m, cycle, base)
	if err != nil {
		return nil, err
	}

	inner := make([]string, depth, depth+1)
	copy(inner, stack)
	inner = append(inner, base)

	path, err := s.search(gc, mc, inner)
	if err != nil {
		return nil, err
	}

	// The innermost token belongs to this level.
	b := inner[len(inner)-1]
	if len(path) == 0 {
		return path, nil
	}

	return lift(g, m, rotate(cycle, b), path, b)
}

// MaximumMatching augments m in place until no augmenting path remains and
// returns it. By Berge's theorem the result is a maximum-cardinality
// matching of g.
//
// Vertex degrees of g are recomputed before returning, because contraction
// snapshots share *core.Vertex values with g.
//
// Errors: as AugmentingPath; additionally ErrInvariantViolation when an
// augmentation fails to grow m by exactly one edge.
func MaximumMatching(g *core.Graph, m *matching.Matching, opts ...Option) (*matching.Matching, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if m == nil {
		return nil, ErrMatchingNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	s := &searcher{opts: o}
	defer g.UpdateVertexDegrees()

	for {
		path, err := s.search(g, m, nil)
		if err != nil {
			return nil, err
		}
		if len(path) == 0 {
			return m, nil
		}

		edges, ok := matching.PathEdges(g, path)
		if !ok {
			return nil, fmt.Errorf("%w: augmenting path %v leaves the graph", ErrInvariantViolation, path)
		}
		s.opts.OnAugment(append([]string(nil), path...))

		before := m.Size()
		m.Augment(edges)
		if m.Size() != before+1 || !m.IsVertexDisjoint() {
			return nil, fmt.Errorf("%w: path %v is not alternating", ErrInvariantViolation, path)
		}
	}
}

// MaximumMatchingInitial seeds a matching with the first edge of g in
// insertion order (empty when g has no edges) and runs MaximumMatching.
func MaximumMatchingInitial(g *core.Graph, opts ...Option) (*matching.Matching, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	m := matching.New()
	if edges := g.GetAllEdges(); len(edges) > 0 {
		m.Add(edges[0])
	}

	return MaximumMatching(g, m, opts...)
}
