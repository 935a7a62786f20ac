// Package builder constructs graphs for tests, demos and the command line.
//
// RandomConnected grows a random spanning tree over vertices "1".."n"
// (labelled "V1".."Vn") and sprinkles extra edges on top, so the result is
// always connected. Path, Cycle, Complete and Star build fixed topologies
// with the same naming.
//
// Weights are integers drawn from WithWeightRange (default 1..10). Stochastic
// constructors require WithSeed or WithRand; a fixed seed reproduces the
// same graph.
//
//	g, err := builder.RandomConnected(8, 4, builder.WithSeed(7))
//	if err != nil {
//		return err
//	}
//	tour, err := postman.NewSolver(g).FindChinesePostmanTour()
//
// Errors are sentinels (ErrTooFewVertices, ErrBadWeightRange,
// ErrNeedRandSource, ErrOptionViolation) wrapped with the constructor name.
package builder
