// Package postman finds closed walks that traverse every edge of an
// undirected graph at least once (route inspection, "Chinese postman").
//
// The pipeline:
//
//  1. Collect the odd-degree vertices of the input.
//  2. Pair them with a maximum-cardinality matching (package blossom).
//     PairWholeGraph matches over the whole input graph; PairOddVertices
//     matches over the complete graph on the odd vertices and joins each
//     pair with a connector weighing as much as its fewest-hop path.
//  3. Copy the graph as a multigraph and add one edge per matched pair,
//     making every degree even.
//  4. Extract an Euler tour with Fleury's rule: never cross a bridge of the
//     remaining graph unless nothing else is left.
//
// Unpairable odd vertices, disconnected graphs and walks that get stuck are
// ordinary outcomes. Solve reports them as sentinels grouped by IsNoTour;
// FindChinesePostmanTour turns them into a nil tour.
//
// The matching is maximum-cardinality, not minimum-weight, so tours are
// valid but not necessarily the cheapest.
//
// The input graph is never modified except for its cached vertex degrees,
// which are recomputed. Solvers are not safe for concurrent use on a shared
// graph; give each goroutine its own graph.
package postman
