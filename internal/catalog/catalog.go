// Package catalog names the problems the lvsearch driver can build, their
// parameters and heuristics, and runs strategies over them without the
// caller knowing the state type.
package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/katalvlaran/lvsearch/internal/report"
	"github.com/katalvlaran/lvsearch/search"
)

var (
	// ErrUnknownProblem indicates a problem name missing from the catalog.
	ErrUnknownProblem = errors.New("catalog: unknown problem")

	// ErrUnknownParam indicates a parameter the problem does not declare.
	ErrUnknownParam = errors.New("catalog: unknown parameter")

	// ErrBadParam indicates a parameter value that does not parse.
	ErrBadParam = errors.New("catalog: bad parameter value")

	// ErrUnknownHeuristic indicates a heuristic the problem does not offer.
	ErrUnknownHeuristic = errors.New("catalog: unknown heuristic")
)

// ZeroHeuristic is offered by every problem.
const ZeroHeuristic = "zero"

// Param documents one problem parameter. A Name ending in ".*" accepts any
// key with that prefix.
type Param struct {
	Name    string
	Default string
	Usage   string
}

// Entry describes a problem family.
type Entry struct {
	Name    string
	Summary string
	Params  []Param
	// Heuristics lists the heuristic names; the first is the default.
	Heuristics []string

	build func(p params, log *slog.Logger) (Instance, error)
}

// Instance is a built problem. Run may be called concurrently, each call
// constructs its own strategy.
type Instance interface {
	// Problem returns the entry name the instance was built from.
	Problem() string
	// Run solves the problem with the named algorithm and heuristic.
	// An empty heuristic selects the problem's default.
	Run(algorithm, heuristic string, opts ...search.Option) (report.Report, error)
}

var entries = []Entry{jarsEntry, vacuumEntry, nqueensEntry, kiwisEntry, mazeEntry}

// Problems returns every entry, in listing order.
func Problems() []Entry { return slices.Clone(entries) }

// Lookup finds the entry called name.
func Lookup(name string) (Entry, error) {
	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}

	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownProblem, name)
}

// Build looks up name and builds an instance from kv. A nil logger discards.
func Build(name string, kv map[string]string, log *slog.Logger) (Instance, error) {
	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	for k := range kv {
		if !e.declares(k) {
			return nil, fmt.Errorf("%w: %s has no parameter %q", ErrUnknownParam, name, k)
		}
	}

	return e.build(params{entry: e, values: kv}, log.With(slog.String("problem", name)))
}

func (e Entry) declares(key string) bool {
	for _, p := range e.Params {
		if p.Name == key {
			return true
		}
		if prefix, ok := strings.CutSuffix(p.Name, "*"); ok && strings.HasPrefix(key, prefix) {
			return true
		}
	}

	return false
}

// instance binds a typed problem to its named heuristics.
type instance[S comparable, A any] struct {
	name       string
	problem    search.Problem[S, A]
	heuristics []namedHeuristic[S]
	format     func(S) string
}

type namedHeuristic[S comparable] struct {
	name string
	fn   search.Heuristic[S]
}

func (in *instance[S, A]) Problem() string { return in.name }

func (in *instance[S, A]) heuristic(name string) (string, search.Heuristic[S], error) {
	if name == "" {
		h := in.heuristics[0]
		return h.name, h.fn, nil
	}
	if name == ZeroHeuristic {
		return name, search.Zero[S], nil
	}
	for _, h := range in.heuristics {
		if h.name == name {
			return h.name, h.fn, nil
		}
	}

	return "", nil, fmt.Errorf("%w: %s has no heuristic %q", ErrUnknownHeuristic, in.name, name)
}

func (in *instance[S, A]) Run(algorithm, heuristic string, opts ...search.Option) (report.Report, error) {
	hName, h, err := in.heuristic(heuristic)
	if err != nil {
		return report.Report{}, err
	}
	strat, err := search.New(algorithm, in.problem, opts...)
	if err != nil {
		return report.Report{}, err
	}

	start := time.Now()
	sol, err := strat.Run(h)
	if err != nil {
		return report.Report{}, err
	}
	r := report.FromSolution(sol, in.name, in.format)
	r.Elapsed = report.Elapsed(time.Since(start))
	if search.Informed(algorithm) {
		r.Heuristic = hName
	}

	return r, nil
}
