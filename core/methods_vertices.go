// File: methods_vertices.go
// Role: Vertex lifecycle & queries, degree recomputation.
//
// Determinism:
//   - GetAllVertices() returns vertices in insertion order.
//
// AI-Hints (file):
//   - Degree is a cache. Call UpdateVertexDegrees after structural edits
//     before reading Vertex.Degree.
package core

// AddVertex inserts v if no vertex with the same ID exists.
//
// Implementation:
//   - Stage 1: Validate v (ErrNilVertex) and its ID (ErrEmptyVertexID).
//   - Stage 2: If the ID is already present, keep the existing vertex.
//   - Stage 3: Register v and bootstrap an empty adjacency entry.
//
// Behavior highlights:
//   - Idempotent on ID: a second AddVertex with the same ID is a no-op.
//   - The *Vertex is stored as-is; clones of the graph share it.
//
// Errors:
//   - ErrNilVertex, ErrEmptyVertexID.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(v *Vertex) error {
	if v == nil {
		return ErrNilVertex
	}
	if v.ID == "" {
		return ErrEmptyVertexID
	}
	if g.vertices.has(v.ID) {
		return nil
	}

	g.vertices.set(v.ID, v)
	g.adjacency[v.ID] = newOrdered[[]*Edge]()

	return nil
}

// AddVertexID is shorthand for AddVertex(NewVertex(id, label)).
func (g *Graph) AddVertexID(id, label string) error {
	return g.AddVertex(NewVertex(id, label))
}

// GetVertex returns the vertex with the given ID, or nil.
func (g *Graph) GetVertex(id string) *Vertex {
	v, _ := g.vertices.get(id)

	return v
}

// HasVertex reports whether the vertex ID exists.
func (g *Graph) HasVertex(id string) bool { return g.vertices.has(id) }

// GetAllVertices returns every vertex in insertion order.
// The slice is fresh; the *Vertex values are live.
// Complexity: O(V).
func (g *Graph) GetAllVertices() []*Vertex {
	out := make([]*Vertex, 0, g.vertices.len())
	g.vertices.each(func(_ string, v *Vertex) bool {
		out = append(out, v)
		return true
	})

	return out
}

// VertexIDs returns every vertex ID in insertion order.
func (g *Graph) VertexIDs() []string {
	out := make([]string, 0, g.vertices.len())
	g.vertices.each(func(id string, _ *Vertex) bool {
		out = append(out, id)
		return true
	})

	return out
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Implementation:
//   - Stage 1: Verify presence (ErrVertexNotFound).
//   - Stage 2: Unlink every incident edge from the catalog and from the
//     neighbor's adjacency, then forget the neighbor slot.
//   - Stage 3: Drop the vertex and its adjacency entry.
//
// Complexity:
//   - Time O(deg(v) · d) where d bounds neighbor adjacency sizes.
func (g *Graph) RemoveVertex(id string) error {
	adj, ok := g.adjacency[id]
	if !ok || !g.vertices.has(id) {
		return ErrVertexNotFound
	}

	adj.each(func(nb string, list []*Edge) bool {
		for _, e := range list {
			g.edges.purge(e.ID)
		}
		if nbAdj := g.adjacency[nb]; nbAdj != nil {
			nbAdj.purge(id)
		}
		return true
	})

	delete(g.adjacency, id)
	g.vertices.purge(id)

	return nil
}

// UpdateVertexDegrees recomputes Vertex.Degree for every vertex by a full
// scan of the edge catalog. Parallel edges each count once.
// Complexity: O(V + E).
func (g *Graph) UpdateVertexDegrees() {
	g.vertices.each(func(_ string, v *Vertex) bool {
		v.Degree = 0
		return true
	})
	g.edges.each(func(_ string, e *Edge) bool {
		if v, ok := g.vertices.get(e.From); ok {
			v.Degree++
		}
		if v, ok := g.vertices.get(e.To); ok {
			v.Degree++
		}
		return true
	})
}
