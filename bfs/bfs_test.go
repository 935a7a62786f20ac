package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cetusw/g-loc/bfs"
	"github.com/cetusw/g-loc/core"
)

// build creates a simple graph whose vertices are registered in first-mention
// order of the given pairs.
func build(t testing.TB, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		require.NoError(t, g.AddVertexID(p[0], p[0]))
		require.NoError(t, g.AddVertexID(p[1], p[1]))
		g.AddEdge(p[0], p[1], 0)
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertexID("A", "A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertexID("A", "A"))
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, res.Order)
	require.Equal(t, 0, res.Depth["A"])
	require.Equal(t, 1, res.Reached())
}

// TestBFS_CycleAndDepths covers a simple cycle and checks depths.
func TestBFS_CycleAndDepths(t *testing.T) {
	g := build(t,
		[2]string{"A", "B"}, [2]string{"B", "C"},
		[2]string{"C", "D"}, [2]string{"D", "A"},
	)

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	require.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
	require.Equal(t, "B", res.Parent["C"], "first discoverer wins")
}

// TestBFS_Weighted ensures weights do not influence hop distances.
func TestBFS_Weighted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertexID(id, id))
	}
	g.AddEdge("A", "B", 100)
	g.AddEdge("B", "C", 0.5)
	g.AddEdge("A", "C", 1000)

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	require.Equal(t, 1, res.Depth["C"])
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := build(t, [2]string{"X", "Y"}, [2]string{"P", "Q"})

	resX, err := bfs.BFS(g, "X")
	require.NoError(t, err)
	require.Equal(t, []string{"X", "Y"}, resX.Order)
	require.False(t, resX.Reaches("P"))

	resP, err := bfs.BFS(g, "P")
	require.NoError(t, err)
	require.Equal(t, []string{"P", "Q"}, resP.Order)
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := build(t, [2]string{"A", "B"}, [2]string{"B", "C"})

	cases := []struct {
		depth int
		want  []string
	}{
		{1, []string{"A", "B"}},
		{0, []string{"A", "B", "C"}},
		{10, []string{"A", "B", "C"}},
	}
	for _, tc := range cases {
		t.Run(strconv.Itoa(tc.depth), func(t *testing.T) {
			res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(tc.depth))
			require.NoError(t, err)
			require.Equal(t, tc.want, res.Order)
		})
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := build(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	res, err := bfs.BFS(g, "A",
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return !(curr == "B" && nbr == "C")
		}),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Order)
}

// TestBFS_ParallelDedup ensures that parallel edges do not enqueue twice.
func TestBFS_ParallelDedup(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	require.NoError(t, g.AddVertexID("A", "A"))
	require.NoError(t, g.AddVertexID("B", "B"))
	g.AddEdge("A", "B", 0)
	g.AddEdge("A", "B", 0)
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Order)
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := build(t, [2]string{"A", "B"}, [2]string{"B", "C"})

	var enq, deq, vis []string
	entry := func(id string, d int) string { return id + "@" + strconv.Itoa(d) }

	_, err := bfs.BFS(
		g, "A",
		bfs.WithOnEnqueue(func(id string, d int) { enq = append(enq, entry(id, d)) }),
		bfs.WithOnDequeue(func(id string, d int) { deq = append(deq, entry(id, d)) }),
		bfs.WithOnVisit(func(id string, d int) error { vis = append(vis, entry(id, d)); return nil }),
	)
	require.NoError(t, err)

	want := []string{"A@0", "B@1", "C@2"}
	require.Equal(t, want, enq)
	require.Equal(t, want, deq)
	require.Equal(t, want, vis)
}

// TestBFS_OnVisitAbort propagates hook errors.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := build(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	stop := errors.New("stop")
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := build(t, [2]string{"X", "Z"}, [2]string{"Z", "W"})
	require.NoError(t, g.AddVertexID("Y", "Y"))

	res, err := bfs.BFS(g, "X")
	require.NoError(t, err)

	path, err := res.PathTo("X")
	require.NoError(t, err)
	require.Equal(t, []string{"X"}, path)

	path, err = res.PathTo("W")
	require.NoError(t, err)
	require.Equal(t, []string{"X", "Z", "W"}, path)

	_, err = res.PathTo("Y")
	require.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	pairs := make([][2]string, 0, 100)
	for i := 0; i < 100; i++ {
		pairs = append(pairs, [2]string{fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1)})
	}
	g := build(t, pairs...)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, "v0", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestBFS_ConcurrentSafety ensures two concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := build(t, [2]string{"A", "B"})
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS(g, "A"); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		require.NoError(t, <-errs)
	}
}

func TestConnectedAndComponents(t *testing.T) {
	g := build(t, [2]string{"A", "B"}, [2]string{"C", "D"}, [2]string{"B", "E"})
	require.NoError(t, g.AddVertexID("F", "F"))

	ok, err := bfs.Connected(g)
	require.NoError(t, err)
	require.False(t, ok)

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"A", "B", "E"}, {"C", "D"}, {"F"}}, comps)

	n, err := bfs.Reachable(g, "C")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	ok, err = bfs.Connected(core.NewGraph())
	require.NoError(t, err)
	require.False(t, ok, "empty graph")

	_, err = bfs.Connected(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g.AddEdge("E", "C", 0)
	g.AddEdge("D", "F", 0)
	ok, err = bfs.Connected(g)
	require.NoError(t, err)
	require.True(t, ok)
}
