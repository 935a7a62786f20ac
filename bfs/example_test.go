package bfs_test

import (
	"context"
	"fmt"

	"github.com/cetusw/g-loc/bfs"
	"github.com/cetusw/g-loc/core"
)

// link adds both endpoints (if absent) and a unit edge.
func link(g *core.Graph, u, v string) {
	_ = g.AddVertexID(u, u)
	_ = g.AddVertexID(v, v)
	g.AddEdge(u, v, 0)
}

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 vertices).
func ExampleBFS_gridTraversal() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				link(g, fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1))
			}
			if i+1 < 3 {
				link(g, fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j))
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleResult_PathTo finds the fewest-hop path when two routes compete.
func ExampleResult_PathTo() {
	g := core.NewGraph()
	// Route1: A–B–C–D–K (4 hops)
	link(g, "A", "B")
	link(g, "B", "C")
	link(g, "C", "D")
	link(g, "D", "K")
	// Route2: A–E–F–K (3 hops)
	link(g, "A", "E")
	link(g, "E", "F")
	link(g, "F", "K")

	res, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := res.PathTo("K")
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [A E F K]
}

// ExampleWithMaxDepth limits a 10-vertex chain to its first three vertices.
func ExampleWithMaxDepth() {
	g := core.NewGraph()
	for i := 0; i < 9; i++ {
		link(g, fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}

	res, err := bfs.BFS(g, "v0", bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [v0 v1 v2]
}

// ExampleBFS_hooksAndCancellation shows hooks alongside a cancellation
// triggered from inside OnVisit.
func ExampleBFS_hooksAndCancellation() {
	g := core.NewGraph()
	for i := 0; i < 6; i++ {
		link(g, fmt.Sprintf("n%d", i), fmt.Sprintf("n%d", i+1))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var enqSeq, visSeq []string
	hookVisit := func(id string, d int) error {
		visSeq = append(visSeq, fmt.Sprintf("V[%s@%d]", id, d))
		if d == 4 {
			cancel()
		}
		return nil
	}

	_, err := bfs.BFS(
		g, "n0",
		bfs.WithContext(ctx),
		bfs.WithOnEnqueue(func(id string, d int) { enqSeq = append(enqSeq, fmt.Sprintf("E[%s@%d]", id, d)) }),
		bfs.WithOnVisit(hookVisit),
	)

	fmt.Println("error:", err)
	fmt.Println("Enqueued:", enqSeq)
	fmt.Println("Visited: ", visSeq)
	// Output:
	// error: context canceled
	// Enqueued: [E[n0@0] E[n1@1] E[n2@2] E[n3@3] E[n4@4]]
	// Visited:  [V[n0@0] V[n1@1] V[n2@2] V[n3@3] V[n4@4]]
}
