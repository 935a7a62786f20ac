// Package dijkstra implements Dijkstra's shortest-path algorithm on
// undirected graphs with non-negative weights.
//
// It processes vertices in order of increasing distance using a min-heap,
// relaxing every incident edge. Distance ties pop in push order, so results
// are deterministic for a fixed graph.
//
// Options:
//
//   - Source(id):               starting vertex (required).
//   - WithMaxDistance(x):       vertices farther than x stay unreached.
//   - WithInfEdgeThreshold(t):  edges with weight ≥ t are treated as walls.
//
// Usage:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
//	if err != nil {
//		return err
//	}
//	path, err := res.PathTo("D")
//
// In this module the solver for route inspection uses Dijkstra to price the
// connectors between odd-degree vertices when weighted connectors are
// requested.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
package dijkstra
