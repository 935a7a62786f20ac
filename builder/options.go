// Package: builder
//
// options.go: functional options for the builder package.
//
// Design:
//   • Options are functional (type Option func(*config)).
//   • They never panic; violations are stored and reported by the
//     constructor as ErrOptionViolation or ErrBadWeightRange.
//   • Later options override earlier ones.

package builder

import (
	"fmt"
	"math/rand"
)

// Deterministic defaults.
const (
	DefaultMinWeight = 1  // smallest sampled edge weight
	DefaultMaxWeight = 10 // largest sampled edge weight
)

// Option customizes a constructor.
type Option func(*config)

// config aggregates all knobs used by constructors.
type config struct {
	idFn      IDFn
	labelFn   IDFn
	rng       *rand.Rand
	minWeight int
	maxWeight int
	err       error
}

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:      DefaultIDFn,
		labelFn:   DefaultLabelFn,
		minWeight: DefaultMinWeight,
		maxWeight: DefaultMaxWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs a caller-owned RNG. The RNG is not safe for concurrent
// use; share it across goroutines only with external locking.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r == nil {
			c.err = fmt.Errorf("WithRand(nil): %w", ErrOptionViolation)
			return
		}
		c.rng = r
	}
}

// WithWeightRange sets the closed integer range edge weights are drawn from.
// Requires 1 ≤ min ≤ max.
func WithWeightRange(min, max int) Option {
	return func(c *config) {
		if min < 1 || max < min {
			c.err = fmt.Errorf("WithWeightRange(%d,%d): %w", min, max, ErrBadWeightRange)
			return
		}
		c.minWeight, c.maxWeight = min, max
	}
}

// WithIDScheme replaces the vertex ID and label functions.
// A nil label function keeps the default "V<id>" labels.
func WithIDScheme(id, label IDFn) Option {
	return func(c *config) {
		if id == nil {
			c.err = fmt.Errorf("WithIDScheme(nil): %w", ErrOptionViolation)
			return
		}
		c.idFn = id
		if label != nil {
			c.labelFn = label
		}
	}
}

// weight draws a uniform integer weight in [minWeight, maxWeight].
func (c config) weight() float64 {
	if c.rng == nil || c.minWeight == c.maxWeight {
		return float64(c.minWeight)
	}

	return float64(c.minWeight + c.rng.Intn(c.maxWeight-c.minWeight+1))
}
