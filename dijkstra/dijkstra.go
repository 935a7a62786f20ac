package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/cetusw/g-loc/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of the undirected graph g. Parallel edges are all relaxed, so the
// cheapest one wins.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. Source must be non-empty (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No edge may have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}
	for _, e := range g.GetAllEdges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s weight=%g", ErrNegativeWeight, e.ID, e.Weight)
		}
	}

	n := g.NumVertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, n),
		prev:    make(map[string]string, n),
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	r.process()

	return &Result{Source: cfg.Source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
	seq     int
}

// init sets every distance to +Inf and queues the source at zero.
func (r *runner) init() {
	for _, v := range r.g.VertexIDs() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

// process pops vertices in distance order until the heap is empty or the
// next distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax improves the neighbors of u through every edge incident to u.
// Edges at or above InfEdgeThreshold are skipped.
func (r *runner) relax(u string) {
	for _, e := range r.g.IncidentEdges(u) {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		v := e.Other(u)
		nd := r.dist[u] + e.Weight
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.push(v, nd)
	}
}

func (r *runner) push(id string, d float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

// nodeItem is a heap entry. seq breaks distance ties in push order.
type nodeItem struct {
	id   string
	dist float64
	seq  int
}

// nodePQ is a min-heap of *nodeItem with lazy decrease-key: improved
// distances are pushed again and stale entries are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
