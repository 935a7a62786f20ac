// Package matching provides Matching, a set of vertex-disjoint edges drawn
// from a core.Graph, keyed by edge ID.
//
// A Matching never validates disjointness on insertion: the augmenting-path
// algorithm that feeds it is responsible for keeping it disjoint.
// IsVertexDisjoint is available to verify that after the fact.
//
// Edges are keyed by ID, so a Matching built against one graph stays valid
// against any Clone of it (clones rebuild edges with identical IDs).
package matching

import (
	"sort"

	"github.com/cetusw/g-loc/core"
)

// Matching is a mutable set of edges indexed by edge ID.
// The zero value is not usable; construct with New.
type Matching struct {
	edges map[string]*core.Edge
}

// New returns a Matching seeded with the given edges. Nil edges are skipped.
func New(edges ...*core.Edge) *Matching {
	m := &Matching{edges: make(map[string]*core.Edge, len(edges))}
	for _, e := range edges {
		if e != nil {
			m.edges[e.ID] = e
		}
	}

	return m
}

// ExistsVertex reports whether v is an endpoint of some matching edge.
// Complexity: O(|M|).
func (m *Matching) ExistsVertex(v string) bool {
	_, ok := m.MatchedVertex(v)

	return ok
}

// MatchedVertex returns the partner of v, or ok == false when v is exposed.
// Complexity: O(|M|).
func (m *Matching) MatchedVertex(v string) (partner string, ok bool) {
	for _, e := range m.edges {
		if e.Has(v) {
			return e.Other(v), true
		}
	}

	return "", false
}

// Contains reports membership of e by edge ID.
func (m *Matching) Contains(e *core.Edge) bool {
	if e == nil {
		return false
	}

	return m.ContainsID(e.ID)
}

// ContainsID reports membership by edge ID.
func (m *Matching) ContainsID(id string) bool {
	_, ok := m.edges[id]

	return ok
}

// Add inserts e without any disjointness check.
func (m *Matching) Add(e *core.Edge) {
	if e != nil {
		m.edges[e.ID] = e
	}
}

// Augment replaces the matching with its symmetric difference with path:
// path edges already matched are removed, the others are added.
//
// For an alternating path between two exposed vertices the size grows by
// exactly one. Augmenting twice with the same path restores the original
// edge set.
func (m *Matching) Augment(path []*core.Edge) {
	for _, e := range path {
		if e == nil {
			continue
		}
		if _, ok := m.edges[e.ID]; ok {
			delete(m.edges, e.ID)
			continue
		}
		m.edges[e.ID] = e
	}
}

// RemoveIncidentEdge drops every matching edge touching v.
func (m *Matching) RemoveIncidentEdge(v string) {
	for id, e := range m.edges {
		if e.Has(v) {
			delete(m.edges, id)
		}
	}
}

// GetMatchingEdges returns the matched edges sorted by edge ID.
func (m *Matching) GetMatchingEdges() []*core.Edge {
	out := make([]*core.Edge, 0, len(m.edges))
	for _, e := range m.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Pairs returns the matched endpoint pairs, each ordered (From, To), in the
// order of GetMatchingEdges.
func (m *Matching) Pairs() [][2]string {
	edges := m.GetMatchingEdges()
	out := make([][2]string, len(edges))
	for i, e := range edges {
		out[i] = [2]string{e.From, e.To}
	}

	return out
}

// Size returns the number of matched edges.
func (m *Matching) Size() int { return len(m.edges) }

// Clone returns an independent Matching sharing the *core.Edge values.
func (m *Matching) Clone() *Matching {
	c := &Matching{edges: make(map[string]*core.Edge, len(m.edges))}
	for id, e := range m.edges {
		c.edges[id] = e
	}

	return c
}

// IsVertexDisjoint reports whether no vertex is an endpoint of two edges.
func (m *Matching) IsVertexDisjoint() bool {
	seen := make(map[string]struct{}, 2*len(m.edges))
	for _, e := range m.edges {
		for _, v := range [2]string{e.From, e.To} {
			if _, dup := seen[v]; dup {
				return false
			}
			seen[v] = struct{}{}
		}
	}

	return true
}

// Exposed returns the vertices of g that no matching edge touches, in g's
// vertex insertion order.
func (m *Matching) Exposed(g *core.Graph) []string {
	covered := make(map[string]struct{}, 2*len(m.edges))
	for _, e := range m.edges {
		covered[e.From] = struct{}{}
		covered[e.To] = struct{}{}
	}
	out := make([]string, 0)
	for _, id := range g.VertexIDs() {
		if _, ok := covered[id]; !ok {
			out = append(out, id)
		}
	}

	return out
}

// PathEdges resolves a vertex sequence into the edges of g linking each
// consecutive pair. ok is false when some pair is not adjacent in g.
func PathEdges(g *core.Graph, path []string) (edges []*core.Edge, ok bool) {
	if len(path) < 2 {
		return nil, len(path) == 1
	}
	edges = make([]*core.Edge, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		e := g.GetEdge(path[i], path[i+1])
		if e == nil {
			return nil, false
		}
		edges = append(edges, e)
	}

	return edges, true
}
