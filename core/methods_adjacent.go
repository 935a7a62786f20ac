// File: methods_adjacent.go
// Role: Neighborhood APIs (GetNeighbors, IncidentEdges, Degree).
// Determinism:
//   - GetNeighbors() returns neighbor IDs in first-link order.
//   - IncidentEdges() follows neighbor order, parallel edges oldest first.
// AI-HINT (file):
//   - A neighbor whose last edge was removed disappears from GetNeighbors but
//     keeps its slot; relinking it restores the original position.

package core

// GetNeighbors returns the distinct IDs adjacent to id, in insertion order.
// An unknown id yields an empty slice.
//
// Complexity:
//   - Time O(d), Space O(d).
func (g *Graph) GetNeighbors(id string) []string {
	adj, ok := g.adjacency[id]
	if !ok {
		return []string{}
	}
	out := make([]string, 0, adj.len())
	adj.each(func(nb string, list []*Edge) bool {
		if len(list) > 0 {
			out = append(out, nb)
		}
		return true
	})

	return out
}

// IncidentEdges returns every edge touching id, following neighbor order.
func (g *Graph) IncidentEdges(id string) []*Edge {
	adj, ok := g.adjacency[id]
	if !ok {
		return nil
	}
	var out []*Edge
	adj.each(func(_ string, list []*Edge) bool {
		out = append(out, list...)
		return true
	})

	return out
}

// Degree returns the live number of edges incident to id, independent of
// the cached Vertex.Degree.
func (g *Graph) Degree(id string) (int, error) {
	adj, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}
	deg := 0
	adj.each(func(_ string, list []*Edge) bool {
		deg += len(list)
		return true
	})

	return deg, nil
}
