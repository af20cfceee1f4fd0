package dense

import "fmt"

// DefaultCapacity is the vertex budget used when WithCapacity is not supplied.
const DefaultCapacity = 10

// Option configures graph construction via functional arguments.
// If an Option is invalid (e.g. non-positive capacity), it will be recorded
// internally and surfaced as ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds the construction parameters of a Graph.
type Options struct {
	// Capacity is the fixed vertex budget; the adjacency matrix is
	// allocated Capacity×Capacity once and never resized.
	Capacity int

	// AllowLoops permits self-loop edges (a single diagonal cell per loop).
	AllowLoops bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Capacity == DefaultCapacity (10 vertices)
//   - self-loops rejected
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Capacity:   DefaultCapacity,
		AllowLoops: false,
		err:        nil,
	}
}

// WithCapacity fixes the vertex budget to n.
//
//	n > 0: the graph holds at most n vertices
//	n ≤ 0: invalid option → ErrOptionViolation
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Capacity must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Capacity = n
	}
}

// WithLoops permits self-loop edges. A loop counts as one edge, occupies a
// single diagonal cell, and stays out of Neighbors and Degree.
func WithLoops() Option {
	return func(o *Options) {
		o.AllowLoops = true
	}
}
