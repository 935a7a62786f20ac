// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in insertion-order guarantees for vertices, edges and neighbors.
//   - Validate the silent-rejection policy of AddEdge.
//   - Anchor Dist/Path laws and Contract invariants.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cetusw/g-loc/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexE = "E"
	VertexX = "X"
	VertexY = "Y"
)

// newGraph builds a simple graph over ids with unit-weight edges given as pairs.
func newGraph(t *testing.T, ids []string, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range ids {
		require.NoError(t, g.AddVertexID(id, id))
	}
	for _, p := range pairs {
		_, ok := g.AddEdge(p[0], p[1], 1)
		require.True(t, ok, "AddEdge(%s,%s)", p[0], p[1])
	}

	return g
}

func TestEdgeID_Canonical(t *testing.T) {
	require.Equal(t, "A-B", core.EdgeID(VertexA, VertexB))
	require.Equal(t, "A-B", core.EdgeID(VertexB, VertexA))
	require.Equal(t, "10-9", core.EdgeID("9", "10"), "lexicographic, not numeric")
}

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(nil), core.ErrNilVertex)
	require.ErrorIs(t, g.AddVertexID("", "empty"), core.ErrEmptyVertexID)

	v := core.NewVertex(VertexA, "first")
	require.NoError(t, g.AddVertex(v))
	require.NoError(t, g.AddVertexID(VertexA, "second"), "duplicate is a no-op")
	require.Equal(t, 1, g.NumVertices())
	require.Same(t, v, g.GetVertex(VertexA))
	require.Equal(t, "first", g.GetVertex(VertexA).Label)
	require.Nil(t, g.GetVertex(VertexB))

	// Isolated vertices still own an (empty) adjacency entry.
	require.Empty(t, g.GetNeighbors(VertexA))
	deg, err := g.Degree(VertexA)
	require.NoError(t, err)
	require.Zero(t, deg)
}

func TestGraph_AddEdge_SilentRejections(t *testing.T) {
	g := newGraph(t, []string{VertexA, VertexB})

	e, ok := g.AddEdge(VertexA, VertexA, 3)
	require.False(t, ok, "self-loop")
	require.Nil(t, e)

	_, ok = g.AddEdge(VertexA, VertexX, 3)
	require.False(t, ok, "missing endpoint")
	require.False(t, g.HasVertex(VertexX), "vertices are never auto-created")

	e, ok = g.AddEdge(VertexB, VertexA, 3)
	require.True(t, ok)
	require.Equal(t, "A-B", e.ID)
	require.Equal(t, 3.0, e.Weight)

	_, ok = g.AddEdge(VertexA, VertexB, 9)
	require.False(t, ok, "duplicate canonical id")
	require.Equal(t, 1, g.NumEdges())
	require.Equal(t, 3.0, g.GetEdge(VertexA, VertexB).Weight, "first edge wins")
}

func TestGraph_AddEdge_DefaultWeight(t *testing.T) {
	g := newGraph(t, []string{VertexA, VertexB, VertexC})
	e, ok := g.AddEdge(VertexA, VertexB, 0)
	require.True(t, ok)
	require.Equal(t, core.DefaultWeight, e.Weight)

	e, ok = g.AddEdge(VertexB, VertexC, -4)
	require.True(t, ok)
	require.Equal(t, core.DefaultWeight, e.Weight)
}

func TestGraph_MultiEdges(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	require.True(t, g.Multigraph())
	require.NoError(t, g.AddVertexID(VertexA, VertexA))
	require.NoError(t, g.AddVertexID(VertexB, VertexB))

	e1, ok := g.AddEdge(VertexA, VertexB, 2)
	require.True(t, ok)
	e2, ok := g.AddEdge(VertexB, VertexA, 5)
	require.True(t, ok)
	e3, ok := g.AddEdge(VertexA, VertexB, 7)
	require.True(t, ok)

	require.Equal(t, "A-B", e1.ID)
	require.Equal(t, "A-B#2", e2.ID)
	require.Equal(t, "A-B#3", e3.ID)
	require.Equal(t, "A-B", e3.Key())
	require.Equal(t, 3, g.NumEdges())
	require.Equal(t, []string{VertexB}, g.GetNeighbors(VertexA), "neighbors are distinct")
	require.Len(t, g.EdgesBetween(VertexA, VertexB), 3)
	require.Same(t, e1, g.GetEdge(VertexB, VertexA), "oldest edge first")

	g.UpdateVertexDegrees()
	require.Equal(t, 3, g.GetVertex(VertexA).Degree)
	require.Equal(t, 3, g.GetVertex(VertexB).Degree)
}

func TestGraph_InsertionOrder(t *testing.T) {
	g := newGraph(t,
		[]string{VertexC, VertexA, VertexB, VertexD},
		[2]string{VertexA, VertexD},
		[2]string{VertexA, VertexB},
		[2]string{VertexA, VertexC},
	)

	require.Equal(t, []string{VertexC, VertexA, VertexB, VertexD}, g.VertexIDs())
	require.Equal(t, []string{VertexD, VertexB, VertexC}, g.GetNeighbors(VertexA))

	ids := make([]string, 0)
	for _, e := range g.GetAllEdges() {
		ids = append(ids, e.ID)
	}
	require.Equal(t, []string{"A-D", "A-B", "A-C"}, ids)
}

func TestGraph_UpdateVertexDegrees_NotIncremental(t *testing.T) {
	g := newGraph(t, []string{VertexA, VertexB, VertexC},
		[2]string{VertexA, VertexB},
		[2]string{VertexB, VertexC},
	)
	require.Zero(t, g.GetVertex(VertexB).Degree, "degree is stale until recomputed")

	g.UpdateVertexDegrees()
	require.Equal(t, 1, g.GetVertex(VertexA).Degree)
	require.Equal(t, 2, g.GetVertex(VertexB).Degree)
	require.Equal(t, 1, g.GetVertex(VertexC).Degree)

	require.NoError(t, g.RemoveEdge("A-B"))
	require.Equal(t, 2, g.GetVertex(VertexB).Degree, "still stale after an edit")
	g.UpdateVertexDegrees()
	require.Equal(t, 1, g.GetVertex(VertexB).Degree)
}

func TestGraph_RemoveVertex(t *testing.T) {
	g := newGraph(t, []string{VertexA, VertexB, VertexC},
		[2]string{VertexA, VertexB},
		[2]string{VertexB, VertexC},
		[2]string{VertexA, VertexC},
	)
	require.ErrorIs(t, g.RemoveVertex(VertexX), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex(VertexB))

	require.False(t, g.HasVertex(VertexB))
	require.Equal(t, 1, g.NumEdges())
	require.Equal(t, []string{VertexC}, g.GetNeighbors(VertexA))
	require.Equal(t, []string{VertexA}, g.GetNeighbors(VertexC))
	require.Nil(t, g.GetEdge(VertexA, VertexB))
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := newGraph(t, []string{VertexA, VertexB}, [2]string{VertexA, VertexB})
	require.ErrorIs(t, g.RemoveEdge("A-X"), core.ErrEdgeNotFound)
	require.NoError(t, g.RemoveEdge("A-B"))
	require.False(t, g.ExistEdge(VertexA, VertexB))
	require.Empty(t, g.GetNeighbors(VertexA))

	// The pair may be linked again after removal.
	_, ok := g.AddEdge(VertexA, VertexB, 1)
	require.True(t, ok)
}

func TestGraph_Primitives_RestoreKeepsOrder(t *testing.T) {
	g := newGraph(t, []string{VertexA, VertexB, VertexC, VertexD},
		[2]string{VertexA, VertexB},
		[2]string{VertexA, VertexC},
		[2]string{VertexA, VertexD},
	)
	e := g.GetEdge(VertexA, VertexB)

	g.DeleteEdgeEntry(e.ID)
	g.DeleteAdjacencyEntry(VertexA, VertexB, e.ID)
	g.DeleteAdjacencyEntry(VertexB, VertexA, e.ID)
	require.Equal(t, 2, g.NumEdges())
	require.Equal(t, []string{VertexC, VertexD}, g.GetNeighbors(VertexA))
	require.Equal(t, core.Infinity, g.Dist(VertexA, VertexB))

	g.SetEdgeEntry(e)
	g.SetAdjacencyEntry(VertexA, VertexB, e)
	g.SetAdjacencyEntry(VertexB, VertexA, e)
	require.Equal(t, 3, g.NumEdges())
	require.Equal(t, []string{VertexB, VertexC, VertexD}, g.GetNeighbors(VertexA))
	require.Equal(t, "A-B", g.GetAllEdges()[0].ID)

	// Setting the same entry twice does not duplicate it.
	g.SetAdjacencyEntry(VertexA, VertexB, e)
	require.Len(t, g.EdgesBetween(VertexA, VertexB), 1)
}

func TestGraph_Clone(t *testing.T) {
	g := newGraph(t, []string{VertexA, VertexB, VertexC},
		[2]string{VertexA, VertexB},
		[2]string{VertexB, VertexC},
	)
	c := g.Clone()

	require.Same(t, g.GetVertex(VertexA), c.GetVertex(VertexA), "vertices are shared")
	require.NotSame(t, g.GetEdge(VertexA, VertexB), c.GetEdge(VertexA, VertexB), "edges are rebuilt")
	require.Equal(t, g.GetEdge(VertexA, VertexB).ID, c.GetEdge(VertexA, VertexB).ID)
	require.Equal(t, g.GetNeighbors(VertexB), c.GetNeighbors(VertexB))

	require.NoError(t, c.RemoveEdge("A-B"))
	require.True(t, g.ExistEdge(VertexA, VertexB), "source untouched")

	m := g.CloneMulti()
	require.True(t, m.Multigraph())
	require.False(t, g.Multigraph())
	dup, ok := m.AddEdge(VertexB, VertexA, 1)
	require.True(t, ok)
	require.Equal(t, "A-B#2", dup.ID)
}

func TestGraph_DistPath(t *testing.T) {
	// A–B–C–D plus shortcut A–C, and isolated E.
	g := newGraph(t, []string{VertexA, VertexB, VertexC, VertexD, VertexE},
		[2]string{VertexA, VertexB},
		[2]string{VertexB, VertexC},
		[2]string{VertexC, VertexD},
		[2]string{VertexA, VertexC},
	)

	for _, v := range g.VertexIDs() {
		require.Zero(t, g.Dist(v, v), "Dist(%s,%s)", v, v)
		require.Equal(t, []string{v}, g.Path(v, v))
	}

	ids := g.VertexIDs()
	for _, a := range ids {
		for _, b := range ids {
			require.Equal(t, g.Dist(a, b), g.Dist(b, a), "symmetry %s,%s", a, b)
			p := g.Path(a, b)
			if g.Dist(a, b) == core.Infinity {
				require.Empty(t, p)
				continue
			}
			require.Len(t, p, g.Dist(a, b)+1)
			require.Equal(t, a, p[0])
			require.Equal(t, b, p[len(p)-1])
		}
	}

	require.Equal(t, 2, g.Dist(VertexA, VertexD))
	require.Equal(t, []string{VertexA, VertexC, VertexD}, g.Path(VertexA, VertexD))
	require.Equal(t, core.Infinity, g.Dist(VertexA, VertexE))
	require.Equal(t, core.Infinity, g.Dist(VertexA, VertexX), "missing vertex")
	require.Empty(t, g.Path(VertexX, VertexA))

	w, ok := g.PathWeight(g.Path(VertexA, VertexD))
	require.True(t, ok)
	require.Equal(t, 2.0, w)
	_, ok = g.PathWeight([]string{VertexA, VertexD})
	require.False(t, ok)
}

func TestGraph_Contract(t *testing.T) {
	// Triangle A–B–C with pendant edges B–D and C–D, plus C–E.
	g := newGraph(t, []string{VertexA, VertexB, VertexC, VertexD, VertexE},
		[2]string{VertexA, VertexB},
		[2]string{VertexB, VertexC},
		[2]string{VertexA, VertexC},
		[2]string{VertexB, VertexD},
		[2]string{VertexC, VertexD},
		[2]string{VertexC, VertexE},
	)
	g.GetEdge(VertexB, VertexD).Weight = 9

	require.ErrorIs(t, g.Contract(VertexB, VertexB), core.ErrVertexNotFound)
	require.ErrorIs(t, g.Contract(VertexB, VertexX), core.ErrVertexNotFound)

	require.NoError(t, g.Contract(VertexB, VertexC))

	require.False(t, g.HasVertex(VertexC))
	require.Equal(t, []string{VertexA, VertexB, VertexD, VertexE}, g.VertexIDs())
	require.Len(t, g.EdgesBetween(VertexB, VertexA), 1, "shared neighbor not duplicated")
	require.Len(t, g.EdgesBetween(VertexB, VertexD), 1, "shared neighbor not duplicated")
	require.Equal(t, 9.0, g.GetEdge(VertexB, VertexD).Weight, "existing edge kept")
	require.True(t, g.ExistEdge(VertexB, VertexE), "relinked")
	require.Equal(t, core.DefaultWeight, g.GetEdge(VertexB, VertexE).Weight)
	require.Equal(t, 3, g.NumEdges())

	// Degrees are refreshed by Contract.
	require.Equal(t, 3, g.GetVertex(VertexB).Degree)
	require.Equal(t, 1, g.GetVertex(VertexE).Degree)

	for _, e := range g.GetAllEdges() {
		require.False(t, e.Has(VertexC))
	}
}

func TestGraph_Contract_OnCloneLeavesOriginal(t *testing.T) {
	g := newGraph(t, []string{VertexA, VertexB, VertexC},
		[2]string{VertexA, VertexB},
		[2]string{VertexB, VertexC},
	)
	c := g.Clone()
	require.NoError(t, c.Contract(VertexA, VertexB))

	require.True(t, g.HasVertex(VertexB))
	require.Equal(t, 2, g.NumEdges())
	require.Equal(t, []string{VertexC}, c.GetNeighbors(VertexA))
}

func TestEdge_Other(t *testing.T) {
	g := newGraph(t, []string{VertexX, VertexY}, [2]string{VertexX, VertexY})
	e := g.GetEdge(VertexY, VertexX)
	require.Equal(t, VertexY, e.Other(VertexX))
	require.Equal(t, VertexX, e.Other(VertexY))
	require.Empty(t, e.Other(VertexA))
	require.True(t, e.Has(VertexX))
	require.False(t, e.Has(VertexA))
}
