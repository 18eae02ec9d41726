// Package report turns typed search results into a flat, serializable Report
// and renders reports as tables, JSON or YAML.
package report

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvsearch/search"
)

// Stats mirrors search.Stats with serialization tags.
type Stats struct {
	Expanded   int `json:"expanded" yaml:"expanded"`
	Generated  int `json:"generated" yaml:"generated"`
	Skipped    int `json:"skipped" yaml:"skipped"`
	Pruned     int `json:"pruned" yaml:"pruned"`
	MaxFringe  int `json:"max_fringe" yaml:"max_fringe"`
	Iterations int `json:"iterations" yaml:"iterations"`
	DepthLimit int `json:"depth_limit,omitempty" yaml:"depth_limit,omitempty"`
}

// Report is the outcome of one strategy run with states and actions rendered
// as strings, so runs over different state types can be listed together.
type Report struct {
	Algorithm string   `json:"algorithm" yaml:"algorithm"`
	Problem   string   `json:"problem" yaml:"problem"`
	Heuristic string   `json:"heuristic,omitempty" yaml:"heuristic,omitempty"`
	Found     bool     `json:"found" yaml:"found"`
	Cutoff    bool     `json:"cutoff" yaml:"cutoff"`
	TimedOut  bool     `json:"timed_out,omitempty" yaml:"timed_out,omitempty"`
	Cost      float64  `json:"cost" yaml:"cost"`
	Depth     int      `json:"depth" yaml:"depth"`
	States    []string `json:"states,omitempty" yaml:"states,omitempty"`
	Actions   []string `json:"actions,omitempty" yaml:"actions,omitempty"`
	Stats     Stats    `json:"stats" yaml:"stats"`
	Elapsed   string   `json:"elapsed,omitempty" yaml:"elapsed,omitempty"`
}

// FromSolution flattens sol. format renders states; nil means fmt.Sprint.
// Actions are always rendered with fmt.Sprint.
func FromSolution[S comparable, A any](sol *search.Solution[S, A], problem string, format func(S) string) Report {
	if format == nil {
		format = func(s S) string { return fmt.Sprint(s) }
	}
	st := sol.Stats()
	r := Report{
		Algorithm: sol.Algorithm(),
		Problem:   problem,
		Found:     sol.Found(),
		Cutoff:    sol.Cutoff(),
		Cost:      sol.Cost(),
		Depth:     sol.Depth(),
		Stats: Stats{
			Expanded:   st.Expanded,
			Generated:  st.Generated,
			Skipped:    st.Skipped,
			Pruned:     st.Pruned,
			MaxFringe:  st.MaxFringe,
			Iterations: st.Iterations,
			DepthLimit: st.DepthLimit,
		},
	}
	for _, s := range sol.States() {
		r.States = append(r.States, format(s))
	}
	for _, a := range sol.Actions() {
		r.Actions = append(r.Actions, fmt.Sprint(a))
	}

	return r
}

// TimedOut returns the report of a run abandoned after d.
func TimedOut(algorithm, problem string, d time.Duration) Report {
	return Report{
		Algorithm: algorithm,
		Problem:   problem,
		Cutoff:    true,
		TimedOut:  true,
		Depth:     -1,
		Elapsed:   Elapsed(d),
	}
}

// Elapsed renders d rounded to microseconds.
func Elapsed(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}

// Outcome summarizes the report in one word.
func (r Report) Outcome() string {
	switch {
	case r.Found:
		return "solved"
	case r.TimedOut:
		return "timeout"
	case r.Cutoff:
		return "cutoff"
	default:
		return "exhausted"
	}
}
