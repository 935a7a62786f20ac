package blossom

import "fmt"

// Option configures the search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search starts.
type Option func(*Options)

// Options holds callbacks and limits for AugmentingPath and MaximumMatching.
type Options struct {
	// OnAugment is called by MaximumMatching with every augmenting path,
	// before the matching is flipped along it.
	OnAugment func(path []string)

	// OnBlossom is called when an odd cycle is contracted. depth is the
	// number of blossoms already on the stack (0 for the outermost graph).
	OnBlossom func(cycle []string, base string, depth int)

	// MaxDepth, if > 0, bounds nested contractions. 0 means no limit.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with no-op hooks and no depth limit.
func DefaultOptions() Options {
	return Options{
		OnAugment: func([]string) {},
		OnBlossom: func([]string, string, int) {},
	}
}

// WithOnAugment registers a callback fired for each augmenting path.
func WithOnAugment(fn func(path []string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}

// WithOnBlossom registers a callback fired for each contracted blossom.
func WithOnBlossom(fn func(cycle []string, base string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBlossom = fn
		}
	}
}

// WithMaxDepth bounds nested blossom contraction.
//
//	d > 0: at most d nested contractions
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
