package postman_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cetusw/g-loc/core"
	"github.com/cetusw/g-loc/postman"
)

// figureEight is two triangles sharing A.
func figureEight(t *testing.T) *core.Graph {
	return graphOf(t,
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"},
		[2]string{"A", "D"}, [2]string{"D", "E"}, [2]string{"E", "A"})
}

func TestEulerTour_FigureEight(t *testing.T) {
	tour, err := postman.EulerTour(figureEight(t))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "A", "D", "E", "A"}, tour)
}

func TestEulerTour_AvoidsBridges(t *testing.T) {
	// From B the walk reaches A with C, D and E left. Crossing A-C first
	// would strand the D-E loop, so the walk must go to D.
	type step struct {
		from, to string
		forced   bool
	}
	var steps []step
	tour, err := postman.EulerTour(figureEight(t),
		postman.WithStart("B"),
		postman.WithObserver(func(e postman.Event) {
			steps = append(steps, step{e.Vertices[0], e.Vertices[1], e.Forced})
		}))
	require.NoError(t, err)
	require.Equal(t, []string{"B", "A", "D", "E", "A", "C", "B"}, tour)
	require.Equal(t, step{"A", "D", false}, steps[1])
	require.True(t, steps[len(steps)-1].forced)
}

func TestEulerTour_ParallelEdges(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	require.NoError(t, g.AddVertexID("A", "A"))
	require.NoError(t, g.AddVertexID("B", "B"))
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "B", 1)

	tour, err := postman.EulerTour(g)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "A"}, tour)
	require.Equal(t, 2, g.NumEdges(), "input keeps its edges")
}

func TestEulerTour_NoTour(t *testing.T) {
	t.Run("open walk", func(t *testing.T) {
		g := graphOf(t, [2]string{"A", "B"}, [2]string{"B", "C"})
		_, err := postman.EulerTour(g)
		require.ErrorIs(t, err, postman.ErrOpenWalk)
	})

	t.Run("stuck walk", func(t *testing.T) {
		g := core.NewGraph(core.WithMultiEdges())
		for _, id := range []string{"A", "B", "C"} {
			require.NoError(t, g.AddVertexID(id, id))
		}
		g.AddEdge("A", "B", 1)
		g.AddEdge("B", "C", 1)
		g.AddEdge("A", "B", 1)

		_, err := postman.EulerTour(g)
		require.ErrorIs(t, err, postman.ErrStuckWalk)
	})

	t.Run("disconnected", func(t *testing.T) {
		g := graphOf(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})
		require.NoError(t, g.AddVertexID("Z", "Z"))
		_, err := postman.EulerTour(g)
		require.ErrorIs(t, err, postman.ErrDisconnected)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := postman.EulerTour(core.NewGraph())
		require.ErrorIs(t, err, postman.ErrEmptyGraph)
	})

	t.Run("nil", func(t *testing.T) {
		_, err := postman.EulerTour(nil)
		require.ErrorIs(t, err, postman.ErrGraphNil)
	})
}
