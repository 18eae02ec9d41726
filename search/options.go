package search

import (
	"fmt"
	"log/slog"
)

// Option configures a strategy via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// strategy is constructed.
type Option func(*Options)

// Options holds the tunables shared by all strategies.
type Options struct {
	// Logger receives Debug-level run tracing. Defaults to a discarding logger.
	Logger *slog.Logger

	// BestCost enables per-state best-cost pruning in A* graph search.
	BestCost bool

	// Reopen lets best-cost graph search expand a state again when a strictly
	// cheaper path to it is generated after its first expansion.
	Reopen bool

	// MaxDepth caps the IDS depth limit; 0 means unbounded.
	MaxDepth int

	// MaxExpansions stops any strategy after that many expansions; 0 means unlimited.
	MaxExpansions int

	// SortSuccessors re-sorts successors by state before expansion.
	SortSuccessors bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - a discarding logger
//   - best-cost pruning and re-opening disabled
//   - no IDS depth ceiling (MaxDepth == 0)
//   - no expansion budget (MaxExpansions == 0)
//   - successors sorted by state.
func DefaultOptions() Options {
	return Options{
		Logger:         slog.New(slog.DiscardHandler),
		BestCost:       false,
		Reopen:         false,
		MaxDepth:       0,
		MaxExpansions:  0,
		SortSuccessors: true,
	}
}

// WithLogger routes Debug-level tracing to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithBestCost enables best-cost pruning in A* graph search: stale fringe
// entries are skipped and successors are pushed only when they improve the
// best known cost of their state.
func WithBestCost() Option {
	return func(o *Options) {
		o.BestCost = true
	}
}

// WithReopen allows re-expansion of a state when a strictly cheaper path is
// found later. It requires WithBestCost; the check happens at construction
// so the order of the two options does not matter.
func WithReopen() Option {
	return func(o *Options) {
		o.Reopen = true
	}
}

// WithMaxDepth caps the depth limit iterative deepening will try.
//
//	d > 0:  the last pass uses limit d
//	d == 0: explicit "no ceiling"
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxExpansions stops the run after n expansions and reports a failed
// Solution with Cutoff set. n == 0 disables the budget; n < 0 is invalid.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithSortSuccessors toggles re-sorting of successors by state.
func WithSortSuccessors(sorted bool) Option {
	return func(o *Options) {
		o.SortSuccessors = sorted
	}
}

// buildOptions applies opts over the defaults and validates combinations.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Reopen && !o.BestCost {
		return o, fmt.Errorf("%w: Reopen requires BestCost", ErrOptionViolation)
	}

	return o, nil
}
