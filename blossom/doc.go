// Package blossom implements Edmonds' blossom algorithm for
// maximum-cardinality matching in general undirected graphs.
//
// What
//
//   - AugmentingPath searches one augmenting path with respect to a matching.
//   - MaximumMatching augments until none is left (Berge's theorem).
//   - MaximumMatchingInitial seeds the matching with the first edge of the
//     graph in insertion order and runs MaximumMatching.
//
// How
//
//	The search grows an alternating forest: one core.Graph tree per exposed
//	vertex, extended by an unmatched edge then the forced matched edge. Even
//	vertices are expanded in discovery order, their edges in neighbor order.
//	An edge between even vertices of two trees closes an augmenting path. An
//	edge between even vertices of the same tree closes an odd cycle (a
//	blossom): the cycle is contracted onto its base on a cloned graph and
//	matching, the search recurses, and the recursive path is lifted back
//	through the cycle if it touches the contracted vertex.
//
// Determinism
//
//	Forest order, candidate order and neighbor order all derive from
//	insertion order in core.Graph, so results are reproducible.
//
// Weights
//
//	Edge weights are ignored: the matching has maximum cardinality, not
//	minimum weight.
//
// Options
//
//   - WithOnAugment(fn): observe each augmenting path.
//   - WithOnBlossom(fn): observe each contracted blossom and its base.
//   - WithMaxDepth(d):   bound nested contractions (0 = unlimited).
//
// Errors
//
//   - ErrGraphNil, ErrMatchingNil, ErrOptionViolation: bad input.
//   - ErrDepthExceeded: contraction deeper than MaxDepth.
//   - ErrInvariantViolation: the matching does not fit the graph; the
//     computation is aborted and its partial result discarded.
//
// Complexity
//
//   - Time:   O(V² · (V + E)) per augmentation in this formulation,
//     O(V³ · (V + E)) overall.
//   - Memory: O(V + E) per contraction level.
package blossom
