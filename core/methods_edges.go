// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/GetEdge/GetAllEdges/ExistEdge,
//       plus the low-level catalog and adjacency primitives.
// Determinism:
//   - GetAllEdges() returns edges in insertion order.
//   - Parallel edge IDs are "<canonical>#<n>" with n counting from 2.
// AI-HINT (file):
//   - AddEdge never errors: rejected edges are reported by ok == false.
//   - The primitives do not cross-check each other; callers pairing
//     DeleteEdgeEntry with DeleteAdjacencyEntry must restore both sides.

package core

import "strconv"

// AddEdge links from and to with an undirected edge of the given weight.
//
// AI-HINT:
//   - from == to ⇒ rejected (no self-loops).
//   - a missing endpoint ⇒ rejected (vertices are never auto-created).
//   - an existing edge for the pair on a simple graph ⇒ rejected.
//   - weight <= 0 ⇒ DefaultWeight.
//
// Steps:
//  1. Validate loop and endpoint presence.
//  2. Compute the canonical ID; on multigraphs suffix parallel edges.
//  3. Store in the catalog and in both adjacency entries.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (*Edge, bool) {
	if from == to {
		return nil, false
	}
	if !g.vertices.has(from) || !g.vertices.has(to) {
		return nil, false
	}

	key := EdgeID(from, to)
	id := key
	switch {
	case !g.allowMulti:
		if g.edges.has(key) {
			return nil, false
		}
	case g.parallel[key] > 0:
		id = key + parallelSeparator + strconv.Itoa(g.parallel[key]+1)
	}
	if g.edges.has(id) {
		return nil, false
	}
	if weight <= 0 {
		weight = DefaultWeight
	}

	e := &Edge{ID: id, From: from, To: to, Weight: weight}
	g.parallel[key]++
	g.SetEdgeEntry(e)
	g.SetAdjacencyEntry(from, to, e)
	g.SetAdjacencyEntry(to, from, e)

	return e, true
}

// GetEdge returns the first edge between a and b, or nil.
// On simple graphs this is the edge with canonical ID EdgeID(a, b).
func (g *Graph) GetEdge(a, b string) *Edge {
	adj, ok := g.adjacency[a]
	if !ok {
		return nil
	}
	list, _ := adj.get(b)
	if len(list) == 0 {
		return nil
	}

	return list[0]
}

// GetEdgeByID returns the edge with the given ID, or nil.
func (g *Graph) GetEdgeByID(id string) *Edge {
	e, _ := g.edges.get(id)

	return e
}

// EdgesBetween returns all (parallel) edges between a and b, oldest first.
func (g *Graph) EdgesBetween(a, b string) []*Edge {
	adj, ok := g.adjacency[a]
	if !ok {
		return nil
	}
	list, _ := adj.get(b)

	return append([]*Edge(nil), list...)
}

// ExistEdge reports whether at least one edge links a and b.
// Complexity: O(1).
func (g *Graph) ExistEdge(a, b string) bool { return g.GetEdge(a, b) != nil }

// GetAllEdges returns every edge in insertion order.
// Complexity: O(E).
func (g *Graph) GetAllEdges() []*Edge {
	out := make([]*Edge, 0, g.edges.len())
	g.edges.each(func(_ string, e *Edge) bool {
		out = append(out, e)
		return true
	})

	return out
}

// RemoveEdge deletes one edge from the catalog and both adjacency sides.
func (g *Graph) RemoveEdge(id string) error {
	e, ok := g.edges.get(id)
	if !ok {
		return ErrEdgeNotFound
	}
	g.DeleteEdgeEntry(id)
	g.DeleteAdjacencyEntry(e.From, e.To, id)
	g.DeleteAdjacencyEntry(e.To, e.From, id)

	return nil
}

//–– Low-level primitives –––––––––––––––––––––––––––––––––––––––––––––––––––

// DeleteEdgeEntry removes id from the edge catalog only.
func (g *Graph) DeleteEdgeEntry(id string) { g.edges.del(id) }

// SetEdgeEntry stores e in the edge catalog only. A previously deleted entry
// regains its original position.
func (g *Graph) SetEdgeEntry(e *Edge) { g.edges.set(e.ID, e) }

// DeleteAdjacencyEntry removes edgeID from the from→to adjacency bucket.
// The neighbor keeps its ordering slot so that a later SetAdjacencyEntry
// restores GetNeighbors order exactly.
func (g *Graph) DeleteAdjacencyEntry(from, to, edgeID string) {
	adj, ok := g.adjacency[from]
	if !ok {
		return
	}
	list, ok := adj.get(to)
	if !ok {
		return
	}
	for i, e := range list {
		if e.ID == edgeID {
			list = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		adj.del(to)
		return
	}
	adj.set(to, list)
}

// SetAdjacencyEntry adds e to the from→to adjacency bucket if absent.
// A missing adjacency entry for from is bootstrapped.
func (g *Graph) SetAdjacencyEntry(from, to string, e *Edge) {
	adj, ok := g.adjacency[from]
	if !ok {
		adj = newOrdered[[]*Edge]()
		g.adjacency[from] = adj
	}
	list, _ := adj.get(to)
	for _, cur := range list {
		if cur.ID == e.ID {
			return
		}
	}
	adj.set(to, insertByID(list, e))
}

// insertByID keeps a parallel bucket ordered oldest first, which for
// canonical IDs and their "#n" suffixes is creation order.
func insertByID(list []*Edge, e *Edge) []*Edge {
	out := make([]*Edge, 0, len(list)+1)
	placed := false
	for _, cur := range list {
		if !placed && edgeOrdinal(e.ID) < edgeOrdinal(cur.ID) {
			out = append(out, e)
			placed = true
		}
		out = append(out, cur)
	}
	if !placed {
		out = append(out, e)
	}

	return out
}

// edgeOrdinal extracts n from "<key>#n"; canonical IDs are ordinal 1.
func edgeOrdinal(id string) int {
	for i := len(id) - 1; i >= 0; i-- {
		if id[i:i+1] == parallelSeparator {
			n, err := strconv.Atoi(id[i+1:])
			if err != nil {
				return 1
			}
			return n
		}
	}

	return 1
}
