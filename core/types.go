// Package core defines the central Graph, Vertex, and Edge types of the
// route-inspection engine.
//
// This file declares Vertex, Edge, Graph, GraphOption, the sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrNilVertex      - vertex pointer is nil.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrNilVertex indicates a nil *Vertex was passed to AddVertex.
	ErrNilVertex = errors.New("core: vertex is nil")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

const (
	// DefaultWeight is assigned to edges created without a positive weight.
	DefaultWeight = 1.0

	// Infinity is the distance reported by Dist for unreachable pairs.
	Infinity = math.MaxInt

	// edgeIDSeparator joins the two endpoint IDs of a canonical edge ID.
	edgeIDSeparator = "-"

	// parallelSeparator prefixes the ordinal of a parallel edge ("a-b#2").
	parallelSeparator = "#"
)

// Vertex represents a node in the graph.
//
// Degree is a cached value: it is only trustworthy after UpdateVertexDegrees.
// IsVisited belongs to traversal collaborators and is ignored by the algorithms.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string

	// Label is a human-readable display name.
	Label string

	// Degree is the number of incident edges as of the last UpdateVertexDegrees.
	Degree int

	// IsVisited is a free flag for external traversals.
	IsVisited bool
}

// NewVertex returns a Vertex with the given ID and label.
func NewVertex(id, label string) *Vertex {
	return &Vertex{ID: id, Label: label}
}

// Edge is an undirected, weighted connection between two vertices.
//
// ID is canonical for the first edge between a pair (see EdgeID). Parallel
// edges, only admitted by multigraphs, carry an ordinal suffix.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the endpoint the edge was created from.
	From string

	// To is the endpoint the edge was created to.
	To string

	// Weight is the positive cost of traversing the edge.
	Weight float64

	// IsTraversed is a free flag for external traversals.
	IsTraversed bool
}

// Other returns the endpoint opposite to id, or "" if id is not an endpoint.
func (e *Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return ""
	}
}

// Key returns the canonical pair ID of the edge, ignoring any parallel suffix.
func (e *Edge) Key() string { return EdgeID(e.From, e.To) }

// Has reports whether id is one of the edge endpoints.
func (e *Edge) Has(id string) bool { return e.From == id || e.To == id }

// EdgeID returns the canonical identifier of the unordered pair {a, b}:
// the smaller ID first, joined by "-".
func EdgeID(a, b string) string {
	if b < a {
		a, b = b, a
	}

	return a + edgeIDSeparator + b
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
// Without it a second AddEdge for the same pair is a silent no-op.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is a weighted undirected graph with insertion-ordered catalogs.
//
// vertices, edges and adjacency are kept mutually consistent: every edge is
// referenced from the adjacency of both endpoints and once from edges, and
// every vertex owns an adjacency entry even when it has no incident edge.
//
// Graph is not safe for concurrent mutation; computations run on their own
// working copies (see Clone).
type Graph struct {
	allowMulti bool

	vertices  *ordered[*Vertex]
	edges     *ordered[*Edge]
	adjacency map[string]*ordered[[]*Edge] // vertex → neighbor → edges

	// parallel counts edges ever created per canonical pair, for suffixes.
	parallel map[string]int
}

// NewGraph creates an empty Graph. By default it is simple: no loops and at
// most one edge between any pair of vertices.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  newOrdered[*Vertex](),
		edges:     newOrdered[*Edge](),
		adjacency: make(map[string]*ordered[[]*Edge]),
		parallel:  make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Multigraph reports whether parallel edges are allowed.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// NumVertices returns the number of vertices.
func (g *Graph) NumVertices() int { return g.vertices.len() }

// NumEdges returns the number of edges.
func (g *Graph) NumEdges() int { return g.edges.len() }
