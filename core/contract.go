// File: contract.go
// Role: Vertex contraction used by blossom shrinking.
// AI-HINT (file):
//   - Contract mutates the receiver irreversibly. Contract a Clone when the
//     original must survive.

package core

// Contract merges other into center.
//
// Implementation:
//   - Stage 1: Validate both vertices exist and differ.
//   - Stage 2: For each neighbor n of other (n != center), link n to center
//     with a fresh edge of DefaultWeight unless an edge already exists.
//     Original weights are discarded.
//   - Stage 3: Remove other together with its incident edges.
//   - Stage 4: Recompute all vertex degrees.
//
// Behavior highlights:
//   - Never creates a second edge between center and a shared neighbor,
//     even on multigraphs.
//   - center keeps its own edges, including any edge to other's neighbors.
//
// Errors:
//   - ErrVertexNotFound if either vertex is missing or center == other.
//
// Complexity:
//   - Time O(V + E) dominated by the degree recomputation.
func (g *Graph) Contract(center, other string) error {
	if center == other || !g.HasVertex(center) || !g.HasVertex(other) {
		return ErrVertexNotFound
	}

	for _, nb := range g.GetNeighbors(other) {
		if nb == center || g.ExistEdge(center, nb) {
			continue
		}
		g.AddEdge(center, nb, DefaultWeight)
	}

	if err := g.RemoveVertex(other); err != nil {
		return err
	}
	g.UpdateVertexDegrees()

	return nil
}
