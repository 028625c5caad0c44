// Package random provides functions which extract a fixed-size random subset of distinct elements from a slice,
// without replacement.
//
// All functions are synchronous and keep no state beyond the call; concurrent calls over disjoint slices are safe
// without coordination.
package random

import "math/rand"

// Source produces independent draws uniformly distributed over [0,1). It is satisfied by *rand.Rand.
type Source interface {
	Float64() float64
}

// Option allows the behavior of a sampling function to be modified for a single call.
type Option func(*options)

// WithSource uses the given source of randomness instead of the shared default source.
func WithSource(source Source) Option {
	return func(o *options) {
		o.source = source
	}
}

// options encapsulates the configurable options for a single call.
type options struct {
	source Source
}

// newOptions returns sampling options populated with sane defaults, which may be overridden using the given options.
func newOptions(opts ...Option) *options {
	defaults := &options{source: defaultSource{}}

	for _, opt := range opts {
		opt(defaults)
	}

	return defaults
}

// defaultSource draws from the shared 'math/rand' source, which is safe for concurrent use.
type defaultSource struct{}

func (defaultSource) Float64() float64 {
	return rand.Float64()
}

// index maps a uniform draw in [0,1) to an integer in [0, n); flooring guarantees 'n' itself is never produced since
// the draw is strictly less than one.
func index(source Source, n int) int {
	return int(float64(n) * source.Float64())
}

// checkPreconditions returns an error if a sample of size 'p' can not be extracted from a source of length 'n'.
func checkPreconditions(n, p int) error {
	if p == 0 || p > n {
		return InvalidSampleSizeError{Size: p, Length: n}
	}

	return nil
}
