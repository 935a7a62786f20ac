package matrix

import "fmt"

// DefaultSeparator splits the cells of a row.
const DefaultSeparator = ","

// Option configures Parse and Format.
type Option func(*Options)

// Options holds codec configuration.
type Options struct {
	// StrictSymmetry rejects matrices whose lower triangle disagrees with
	// the upper one. Off by default: only the upper triangle is read.
	StrictSymmetry bool

	// Separator splits cells on input and joins them on output.
	Separator string

	err error
}

// DefaultOptions returns lenient parsing with comma-separated cells.
func DefaultOptions() Options {
	return Options{Separator: DefaultSeparator}
}

// WithStrictSymmetry enables the ErrAsymmetry check.
func WithStrictSymmetry() Option {
	return func(o *Options) { o.StrictSymmetry = true }
}

// WithSeparator replaces the cell separator. It must be non-empty.
func WithSeparator(sep string) Option {
	return func(o *Options) {
		if sep == "" {
			o.err = fmt.Errorf("%w: empty separator", ErrOptionViolation)
			return
		}
		o.Separator = sep
	}
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
