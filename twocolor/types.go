// Package twocolor defines options and result types for the diagnostic
// two-category check, including cancellation, per-root and per-tag hooks,
// and odd-cycle witness reconstruction.
package twocolor

import (
	"context"
	"errors"

	"github.com/katalvlaran/colony/core"
)

var (
	// ErrPopulationNil is returned when a nil *core.Population is passed to Check.
	ErrPopulationNil = errors.New("twocolor: population is nil")
)

// Option configures optional behavior of Check.
type Option func(*CheckOptions)

// CheckOptions holds configurable parameters for Check.
type CheckOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnRoot, if non-nil, is invoked before a pass starts at an untagged root.
	// Returning an error aborts the check with that error.
	OnRoot func(id int) error

	// OnTag, if non-nil, is invoked each time an entity receives its category.
	// Returning an error aborts the check with that error.
	OnTag func(id int, c core.Category) error

	// OddCycle, if true, records discovery links so a conflict can be turned
	// into an explicit odd cycle (Result.OddCycle). Costs O(V) extra memory.
	OddCycle bool
}

// DefaultOptions returns a CheckOptions struct with:
//   - Background context
//   - No hooks
//   - No odd-cycle reconstruction
func DefaultOptions() CheckOptions {
	return CheckOptions{
		Ctx:      context.Background(),
		OnRoot:   nil,
		OnTag:    nil,
		OddCycle: false,
	}
}

// WithContext returns an Option that sets the Context for the check.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *CheckOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnRoot returns an Option that installs fn as the per-root hook.
func WithOnRoot(fn func(id int) error) Option {
	return func(o *CheckOptions) {
		o.OnRoot = fn
	}
}

// WithOnTag returns an Option that installs fn as the per-tag hook.
func WithOnTag(fn func(id int, c core.Category) error) Option {
	return func(o *CheckOptions) {
		o.OnTag = fn
	}
}

// WithOddCycle returns an Option that enables odd-cycle reconstruction on conflict.
func WithOddCycle() Option {
	return func(o *CheckOptions) {
		o.OddCycle = true
	}
}

// Result captures the outcome of a two-category check.
type Result struct {
	// Bipartite reports whether every related pair holds opposing categories.
	Bipartite bool

	// Roots lists, in ascending order, the entities a pass started from:
	// one per component visited. On conflict the failing component's root is last.
	Roots []int

	// Partition maps each category to the ascending ids holding it.
	// Only filled when Bipartite is true.
	Partition map[core.Category][]int

	// Conflict is the first conflicting relation found; nil when Bipartite.
	Conflict *core.Conflict

	// OddCycle is a closed walk [x0 x1 … xk x0] along relations with an odd
	// number of edges, proving the conflict. Only set with WithOddCycle.
	OddCycle []int
}
