// File: forest.go
// Role: alternating forest grown during one augmenting-path search.
// Determinism:
//   - Trees follow the exposed-vertex order of the searched graph.
//   - Even vertices are offered as candidates in discovery order.

package blossom

import (
	"fmt"

	"github.com/cetusw/g-loc/core"
	"github.com/cetusw/g-loc/matching"
)

// forest holds one alternating tree per exposed vertex. Each tree is a
// core.Graph so that parity and in-tree paths reuse Dist and Path.
type forest struct {
	trees  []*core.Graph
	roots  []string
	nodes  []string       // even-level vertices, discovery order
	treeOf map[string]int // vertex → index into trees
}

// newForest seeds a single-vertex tree for every vertex of g exposed by m.
func newForest(g *core.Graph, m *matching.Matching) *forest {
	exposed := m.Exposed(g)
	f := &forest{
		trees:  make([]*core.Graph, 0, len(exposed)),
		roots:  make([]string, 0, len(exposed)),
		nodes:  make([]string, 0, g.NumVertices()),
		treeOf: make(map[string]int, g.NumVertices()),
	}
	for _, v := range exposed {
		t := core.NewGraph()
		_ = t.AddVertexID(v, v)
		f.treeOf[v] = len(f.trees)
		f.trees = append(f.trees, t)
		f.roots = append(f.roots, v)
		f.nodes = append(f.nodes, v)
	}

	return f
}

// index returns the tree holding v.
func (f *forest) index(v string) (int, bool) {
	i, ok := f.treeOf[v]

	return i, ok
}

// candidate returns the first even vertex not yet exhausted.
func (f *forest) candidate(vertexMark map[string]bool) (string, int, bool) {
	for _, v := range f.nodes {
		if !vertexMark[v] {
			return v, f.treeOf[v], true
		}
	}

	return "", -1, false
}

// grow attaches v (odd level) under u and v's partner w (even level) under v.
func (f *forest) grow(i int, u, v, w string) {
	t := f.trees[i]
	_ = t.AddVertexID(v, v)
	_ = t.AddVertexID(w, w)
	t.AddEdge(u, v, core.DefaultWeight)
	t.AddEdge(v, w, core.DefaultWeight)
	f.treeOf[v] = i
	f.treeOf[w] = i
	f.nodes = append(f.nodes, w)
}

// even reports whether v sits at an even distance from its tree root.
func (f *forest) even(i int, v string) bool {
	return f.trees[i].Dist(v, f.roots[i])%2 == 0
}

// augmentingPath joins root(u)→u with v→root(v) across two trees.
func (f *forest) augmentingPath(iu int, u string, iv int, v string) []string {
	left := f.trees[iu].Path(f.roots[iu], u)
	right := f.trees[iv].Path(v, f.roots[iv])

	return append(left, right...)
}

// cycle returns the in-tree path u→v, which closes into an odd cycle
// through the edge u–v.
func (f *forest) cycle(i int, u, v string) ([]string, error) {
	c := f.trees[i].Path(u, v)
	if len(c) < 3 || len(c)%2 == 0 {
		return nil, fmt.Errorf("%w: cycle %v through %s-%s is not odd", ErrInvariantViolation, c, u, v)
	}

	return c, nil
}
