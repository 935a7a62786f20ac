// Package: builder
//
// shapes.go: deterministic topologies: Path, Cycle, Complete, Star.
//
// Contract:
//   - Vertices are added in index order; edges in ascending (i, j) order.
//   - Weights come from the configured range; without an RNG every edge
//     gets the minimum weight.

package builder

import (
	"fmt"

	"github.com/cetusw/g-loc/core"
)

// Minimum vertex counts per shape.
const (
	minPathVertices     = 2
	minCycleVertices    = 3
	minCompleteVertices = 1
	minStarVertices     = 2
)

// Path returns P_n: 1-2-...-n.
func Path(n int, opts ...Option) (*core.Graph, error) {
	return shape("Path", n, minPathVertices, opts, func(ids []string, link func(a, b string)) {
		for i := 1; i < len(ids); i++ {
			link(ids[i-1], ids[i])
		}
	})
}

// Cycle returns C_n: a path closed by the edge n-1.
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	return shape("Cycle", n, minCycleVertices, opts, func(ids []string, link func(a, b string)) {
		for i := 1; i < len(ids); i++ {
			link(ids[i-1], ids[i])
		}
		link(ids[len(ids)-1], ids[0])
	})
}

// Complete returns K_n.
func Complete(n int, opts ...Option) (*core.Graph, error) {
	return shape("Complete", n, minCompleteVertices, opts, func(ids []string, link func(a, b string)) {
		for i := range ids {
			for j := i + 1; j < len(ids); j++ {
				link(ids[i], ids[j])
			}
		}
	})
}

// Star returns K_{1,n-1} centered on the first vertex.
func Star(n int, opts ...Option) (*core.Graph, error) {
	return shape("Star", n, minStarVertices, opts, func(ids []string, link func(a, b string)) {
		for i := 1; i < len(ids); i++ {
			link(ids[0], ids[i])
		}
	})
}

func shape(method string, n, min int, opts []Option, edges func([]string, func(a, b string))) (*core.Graph, error) {
	if n < min {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("%s: %w", method, cfg.err)
	}
	g, ids, err := addVertices(n, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	edges(ids, func(a, b string) { g.AddEdge(a, b, cfg.weight()) })
	g.UpdateVertexDegrees()

	return g, nil
}
