package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates a negative edge weight in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates a negative MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates a non-positive InfEdgeThreshold, which
	// would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath is returned by Result.PathTo for unreachable destinations.
	ErrNoPath = errors.New("dijkstra: no path")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// MaxDistance      – vertices farther than this are left unreached. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ this are impassable. Default +Inf.
type Options struct {
	Source           string
	MaxDistance      float64
	InfEdgeThreshold float64

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithMaxDistance caps the explored distance. Negative values yield
// ErrBadMaxDistance from Dijkstra.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: %g", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
// Non-positive values yield ErrBadInfThreshold from Dijkstra.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			o.err = fmt.Errorf("%w: %g", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns options for source with no distance cap and no
// impassable edges.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Result holds shortest distances and the predecessor tree from Source.
// Dist has an entry for every vertex; unreachable ones hold +Inf.
// Prev maps each reached vertex except Source to its predecessor.
type Result struct {
	Source string
	Dist   map[string]float64
	Prev   map[string]string
}

// Reaches reports whether id was reached.
func (r *Result) Reaches(id string) bool {
	d, ok := r.Dist[id]

	return ok && !math.IsInf(d, 1)
}

// PathTo reconstructs the shortest path Source → dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reaches(dest) {
		return nil, fmt.Errorf("%w: %s → %s", ErrNoPath, r.Source, dest)
	}
	var path []string
	for cur := dest; ; cur = r.Prev[cur] {
		path = append(path, cur)
		if cur == r.Source {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
