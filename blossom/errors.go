package blossom

import "errors"

// Sentinel errors for augmenting-path search.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("blossom: graph is nil")

	// ErrMatchingNil is returned if a nil matching pointer is passed.
	ErrMatchingNil = errors.New("blossom: matching is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("blossom: invalid option supplied")

	// ErrDepthExceeded is returned when nested blossom contraction goes
	// deeper than the configured MaxDepth.
	ErrDepthExceeded = errors.New("blossom: contraction depth exceeded")

	// ErrInvariantViolation marks a corrupted graph/matching pairing: a
	// forest vertex with no partner, a blossom without a unique base or a
	// stem not attached to its blossom. The search is aborted; the matching
	// passed in must not be trusted.
	ErrInvariantViolation = errors.New("blossom: invariant violation")
)
