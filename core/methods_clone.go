// File: methods_clone.go
// Role: Working copies of graph instances.
// AI-HINT (file):
//   - Clone shares *Vertex values with the source; edges are rebuilt.
//   - Mutating a clone's topology never touches the source graph.

package core

// Clone returns a working copy with the same options, the same *Vertex
// objects and freshly allocated edges (same IDs and weights).
//
// Determinism & Identity:
//   - Vertex and edge insertion order are preserved.
//   - Parallel-edge counters are carried so further AddEdge calls on a
//     multigraph clone never collide with existing IDs.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := NewGraph()
	c.allowMulti = g.allowMulti
	g.copyInto(c)

	return c
}

// CloneMulti is Clone with parallel edges enabled on the copy.
func (g *Graph) CloneMulti() *Graph {
	c := g.Clone()
	c.allowMulti = true

	return c
}

// copyInto fills an empty graph c with g's vertices and rebuilt edges.
func (g *Graph) copyInto(c *Graph) {
	g.vertices.each(func(id string, v *Vertex) bool {
		c.vertices.set(id, v)
		c.adjacency[id] = newOrdered[[]*Edge]()
		return true
	})
	// Adjacency slots are replayed from the source so neighbor order survives.
	g.vertices.each(func(id string, _ *Vertex) bool {
		g.adjacency[id].each(func(nb string, _ []*Edge) bool {
			c.adjacency[id].set(nb, nil)
			c.adjacency[id].del(nb)
			return true
		})
		return true
	})
	g.edges.each(func(_ string, e *Edge) bool {
		ne := &Edge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight}
		c.SetEdgeEntry(ne)
		c.SetAdjacencyEntry(ne.From, ne.To, ne)
		c.SetAdjacencyEntry(ne.To, ne.From, ne)
		return true
	})
	for k, n := range g.parallel {
		c.parallel[k] = n
	}
}
