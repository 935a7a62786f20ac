// File: traversal.go
// Role: Unweighted shortest-path queries (Dist, Path) and reachability.
// Determinism:
//   - Neighbors are expanded in GetNeighbors order, so among several
//     shortest paths Path returns the one discovered first.

package core

// Dist returns the hop count of a shortest path between a and b, ignoring
// weights. It returns 0 when a == b (and a exists) and Infinity when b is
// unreachable from a or either vertex is missing.
//
// Complexity: O(V + E).
func (g *Graph) Dist(a, b string) int {
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return Infinity
	}
	depth, _ := g.bfsFrom(a, b)
	d, ok := depth[b]
	if !ok {
		return Infinity
	}

	return d
}

// Path returns a shortest (fewest hops) vertex sequence from a to b, both
// inclusive. The result is empty when b is unreachable or a vertex is missing.
//
// Complexity: O(V + E).
func (g *Graph) Path(a, b string) []string {
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return []string{}
	}
	depth, parent := g.bfsFrom(a, b)
	if _, ok := depth[b]; !ok {
		return []string{}
	}

	path := make([]string, depth[b]+1)
	cur := b
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = cur
		cur = parent[cur]
	}

	return path
}

// PathWeight sums edge weights along a vertex sequence, using the first edge
// between consecutive vertices. Missing edges make the result Infinity-like
// (the function reports ok == false).
func (g *Graph) PathWeight(path []string) (total float64, ok bool) {
	for i := 0; i+1 < len(path); i++ {
		e := g.GetEdge(path[i], path[i+1])
		if e == nil {
			return 0, false
		}
		total += e.Weight
	}

	return total, true
}

// bfsFrom runs a breadth-first search from start and stops early once stop
// has been discovered (stop == "" explores the whole component).
func (g *Graph) bfsFrom(start, stop string) (depth map[string]int, parent map[string]string) {
	depth = map[string]int{start: 0}
	parent = make(map[string]string)
	if start == stop {
		return depth, parent
	}

	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range g.GetNeighbors(cur) {
			if _, seen := depth[nb]; seen {
				continue
			}
			depth[nb] = depth[cur] + 1
			parent[nb] = cur
			if nb == stop {
				return depth, parent
			}
			queue = append(queue, nb)
		}
	}

	return depth, parent
}
