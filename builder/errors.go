// Package: builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the failure site.
//   • Constructors never panic; invalid options surface as ErrOptionViolation.

package builder

import "errors"

// ErrTooFewVertices indicates a vertex count below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadWeightRange indicates min < 1 or max < min in WithWeightRange.
var ErrBadWeightRange = errors.New("builder: invalid weight range")

// ErrNeedRandSource indicates a stochastic constructor without an RNG
// (neither WithSeed nor WithRand was given).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates a meaningless option value, e.g. WithRand(nil)
// or a nil ID scheme.
var ErrOptionViolation = errors.New("builder: invalid option value")
