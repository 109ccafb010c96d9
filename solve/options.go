// options.go — functional options and sentinel errors for the solver.
package solve

import (
	"errors"
	"fmt"
)

// Sentinel errors for solver execution.
var (
	// ErrNilNetwork is returned when a nil network pointer is passed.
	ErrNilNetwork = errors.New("solve: network is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solve: invalid option supplied")

	// ErrNetworkTooLarge is returned when the node or segment count
	// exceeds the configured size limit. This is a resource guard, not
	// a validation failure: the network may be perfectly well-formed.
	ErrNetworkTooLarge = errors.New("solve: network exceeds size limit")

	// ErrNonFinite is returned when a computed pressure is NaN or
	// infinite after validation has already passed.
	ErrNonFinite = errors.New("solve: non-finite value computed")
)

// DefaultMaxNetworkSize bounds node and segment counts (each) unless
// overridden with WithMaxNetworkSize.
const DefaultMaxNetworkSize = 10000

// Option configures solver behavior via functional arguments. An
// invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Solve or Validate is invoked.
type Option func(*Options)

// Options holds the resolved solver parameters.
type Options struct {
	// MaxNetworkSize caps the node count and the segment count; larger
	// inputs are rejected before any traversal begins.
	MaxNetworkSize int

	// UseColebrook switches the turbulent friction correlation from
	// Swamee-Jain to the iterative Colebrook-White equation.
	UseColebrook bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the solver defaults: the standard size limit
// and the Swamee-Jain turbulent correlation.
func DefaultOptions() Options {
	return Options{
		MaxNetworkSize: DefaultMaxNetworkSize,
		UseColebrook:   false,
		err:            nil,
	}
}

// WithMaxNetworkSize caps node and segment counts at n.
//
//	n > 0: enforce the limit
//	n ≤ 0: invalid option → ErrOptionViolation
func WithMaxNetworkSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxNetworkSize must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxNetworkSize = n
	}
}

// WithColebrook selects the Colebrook-White friction correlation for
// turbulent segments.
func WithColebrook() Option {
	return func(o *Options) { o.UseColebrook = true }
}

// resolve applies opts over the defaults and reports the first invalid
// option.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
