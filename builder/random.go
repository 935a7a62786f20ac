// Package: builder
//
// random.go: RandomConnected(n, extra) constructor.
//
// Model:
//   - Grow a random spanning tree: repeatedly join a uniformly chosen
//     visited vertex to a uniformly chosen unvisited one.
//   - Then add up to extra distinct edges between uniformly chosen pairs,
//     giving up after attemptFactor·n(n−1)/2 draws.
//   - Every edge weight is a uniform integer in the configured range.
//
// Contract:
//   - n ≥ 1, extra ≥ 0 (else ErrTooFewVertices).
//   - An RNG is required (else ErrNeedRandSource).
//   - The result is connected, simple and has fresh degrees.
//
// Determinism:
//   - Fixed seed and options give the same graph.

package builder

import (
	"fmt"

	"github.com/cetusw/g-loc/core"
)

const (
	methodRandomConnected = "RandomConnected"
	minRandomVertices     = 1
	attemptFactor         = 5
)

// RandomConnected returns a connected random graph on n vertices with up to
// extra edges beyond its spanning tree.
func RandomConnected(n, extra int, opts ...Option) (*core.Graph, error) {
	if n < minRandomVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodRandomConnected, n, minRandomVertices, ErrTooFewVertices)
	}
	if extra < 0 {
		return nil, fmt.Errorf("%s: extra=%d < 0: %w", methodRandomConnected, extra, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomConnected, cfg.err)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
	}

	g, ids, err := addVertices(n, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomConnected, err)
	}
	rng := cfg.rng

	visited := []string{ids[0]}
	unvisited := append([]string(nil), ids[1:]...)
	for len(unvisited) > 0 {
		from := visited[rng.Intn(len(visited))]
		k := rng.Intn(len(unvisited))
		to := unvisited[k]
		g.AddEdge(from, to, cfg.weight())
		visited = append(visited, to)
		unvisited = append(unvisited[:k], unvisited[k+1:]...)
	}

	maxAttempts := n * (n - 1) / 2 * attemptFactor
	for added, attempts := 0, 0; added < extra && attempts < maxAttempts; attempts++ {
		a, b := ids[rng.Intn(n)], ids[rng.Intn(n)]
		if a == b || g.ExistEdge(a, b) {
			continue
		}
		g.AddEdge(a, b, cfg.weight())
		added++
	}

	g.UpdateVertexDegrees()

	return g, nil
}

// addVertices registers n vertices named by cfg.
func addVertices(n int, cfg config) (*core.Graph, []string, error) {
	g := core.NewGraph()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertexID(ids[i], cfg.labelFn(i)); err != nil {
			return nil, nil, fmt.Errorf("AddVertex(%q): %w", ids[i], err)
		}
	}
	if g.NumVertices() != n {
		return nil, nil, fmt.Errorf("ID scheme yields duplicates: %w", ErrOptionViolation)
	}

	return g, ids, nil
}
