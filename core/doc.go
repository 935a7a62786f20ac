// Package core provides the weighted undirected Graph that every algorithm
// in this module runs on.
//
// The Graph G = (V,E) keeps three stores mutually consistent:
//
//   - vertices  : ID → *Vertex, insertion ordered
//   - edges     : edge ID → *Edge, insertion ordered
//   - adjacency : vertex ID → neighbor ID → []*Edge
//
// Every edge appears in exactly two adjacency buckets (one per endpoint) and
// once in the edge catalog; every vertex owns an adjacency entry even when it
// has no incident edge.
//
// Edge identity:
//
//	EdgeID(a, b) = min(a,b) + "-" + max(a,b)
//
// A simple Graph (the default) admits at most one edge per unordered pair and
// no self-loops; AddEdge silently refuses anything else. A Graph built with
// WithMultiEdges admits parallel edges, numbered "a-b#2", "a-b#3", … . The
// route-inspection solver uses multigraph working copies to double edges.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v *Vertex) error            // O(1), idempotent on ID
//	GetVertex(id) *Vertex                 // O(1)
//	GetAllVertices() []*Vertex            // O(V), insertion order
//	RemoveVertex(id) error                // O(deg·d)
//	UpdateVertexDegrees()                 // O(V+E), full edge scan
//
//	// Edge lifecycle
//	AddEdge(from, to, w) (*Edge, bool)    // O(1); ok=false when rejected
//	GetEdge(a, b) *Edge                   // O(1)
//	GetAllEdges() []*Edge                 // O(E), insertion order
//	ExistEdge(a, b) bool                  // O(1)
//	GetNeighbors(id) []string             // O(d), insertion order
//
//	// Queries
//	Dist(a, b) int                        // BFS hops, Infinity if unreachable
//	Path(a, b) []string                   // BFS vertex path, empty if unreachable
//
//	// Rewrites
//	Contract(center, other) error         // merge other into center
//	Clone() *Graph                        // same *Vertex values, rebuilt edges
//
// Degree is cached on Vertex and is only refreshed by UpdateVertexDegrees;
// structural edits do not maintain it.
//
// The low-level primitives DeleteEdgeEntry, SetEdgeEntry,
// DeleteAdjacencyEntry and SetAdjacencyEntry edit one store at a time. They
// exist for walks that speculatively remove and restore an edge; a restored
// entry regains its previous ordering slot.
package core
