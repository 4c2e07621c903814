// Package clique defines tunable options and error definitions for
// maximal-clique enumeration.
package clique

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for enumeration.
var (
	// ErrNilGraph is returned if a nil graph is passed.
	ErrNilGraph = errors.New("clique: graph is nil")

	// ErrOptionViolation is returned when an invalid Option or callback
	// is supplied.
	ErrOptionViolation = errors.New("clique: invalid option supplied")
)

// Option configures enumeration via functional arguments.
// An invalid Option (e.g. non-positive worker count) is recorded
// internally and surfaced as ErrOptionViolation when enumeration starts.
type Option func(*Options)

// Options holds the tunable parameters of one enumeration run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked at every branch
	// boundary of the search. Defaults to context.Background().
	Ctx context.Context

	// Pivot enables pivot pruning: each level branches only on candidates
	// not adjacent to a chosen high-coverage member of P ∪ X. Pruning
	// changes the number of branches explored, never the result set.
	// Default true.
	Pivot bool

	// Iterative switches the engine from recursion to an explicit stack.
	// Results and their order are identical; only the control mechanism
	// differs. Useful when node counts threaten the goroutine stack.
	// Default false.
	Iterative bool

	// Workers sets how many goroutines share the top-level branches of
	// the search. 1 keeps the run fully sequential. Each branch owns its
	// working sets; only the oracle and masks are shared, read-only.
	// Default 1.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with:
//   - background context
//   - pivot pruning enabled
//   - recursive engine
//   - a single worker (sequential run).
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Pivot:     true,
		Iterative: false,
		Workers:   1,
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithoutPivot disables pivot pruning, branching on every candidate in P
// at every level. The result set is unchanged; the search tree grows.
// Mainly useful for differential testing against the plain formulation.
func WithoutPivot() Option {
	return func(o *Options) {
		o.Pivot = false
	}
}

// WithIterative selects the explicit-stack engine instead of recursion.
func WithIterative() Option {
	return func(o *Options) {
		o.Iterative = true
	}
}

// WithWorkers dispatches independent top-level branches to k goroutines.
//
//	k > 1: parallel top-level branches
//	k == 1: sequential (the default)
//	k < 1: invalid option → ErrOptionViolation
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1, got %d", ErrOptionViolation, k)
			return
		}
		o.Workers = k
	}
}
