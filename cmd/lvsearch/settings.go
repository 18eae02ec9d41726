package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/catalog"
	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/internal/logging"
	"github.com/katalvlaran/lvsearch/internal/report"
	"github.com/katalvlaran/lvsearch/search"
)

// runFlags are the flags shared by run and compare.
type runFlags struct {
	algorithm     string
	algorithms    []string
	problem       string
	params        []string
	heuristic     string
	bestCost      bool
	reopen        bool
	maxDepth      int
	maxExpansions int
	timeout       time.Duration
	output        string
}

func bindRunFlags(cmd *cobra.Command, rf *runFlags) {
	f := cmd.Flags()
	f.StringVarP(&rf.problem, "problem", "p", "", "Problem name, see 'lvsearch list' (default jars)")
	f.StringArrayVar(&rf.params, "pp", nil, "Problem parameter key=value (repeatable)")
	f.StringVar(&rf.heuristic, "hf", "", "Heuristic name (default: the problem's first)")
	f.BoolVar(&rf.bestCost, "best-cost", false, "Enable best-cost pruning in A* graph search")
	f.BoolVar(&rf.reopen, "reopen", false, "Re-open expanded states reached more cheaply (needs --best-cost)")
	f.IntVar(&rf.maxDepth, "max-depth", 0, "Deepest IDS pass, 0 = unbounded")
	f.IntVar(&rf.maxExpansions, "max-expansions", 0, "Stop after this many expansions, 0 = unlimited")
	f.DurationVar(&rf.timeout, "timeout", 0, "Abandon a run after this long, 0 = no limit")
	f.StringVarP(&rf.output, "output", "o", "", "Output format: table, markdown, json, yaml (default table)")
}

// resolve loads the config file, applies the flags the user set on top of it,
// validates the result and initializes logging.
func resolve(cmd *cobra.Command, g *globalFlags, rf *runFlags) (config.Config, error) {
	c := config.Default()
	if g.config != "" {
		var err error
		if c, err = config.LoadFromPath(g.config); err != nil {
			return c, err
		}
	}

	f := cmd.Flags()
	if f.Changed("algorithm") {
		if len(rf.algorithms) > 0 {
			c.Algorithms = rf.algorithms
		} else {
			c.Algorithm = rf.algorithm
		}
	}
	if f.Changed("problem") {
		c.Problem = rf.problem
	}
	for _, kv := range rf.params {
		if err := c.SetParam(kv); err != nil {
			return c, err
		}
	}
	if f.Changed("hf") {
		c.Heuristic = rf.heuristic
	}
	if f.Changed("best-cost") {
		c.BestCost = rf.bestCost
	}
	if f.Changed("reopen") {
		c.Reopen = rf.reopen
	}
	if f.Changed("max-depth") {
		c.MaxDepth = rf.maxDepth
	}
	if f.Changed("max-expansions") {
		c.MaxExpansions = rf.maxExpansions
	}
	if f.Changed("timeout") {
		c.Timeout = rf.timeout
	}
	if f.Changed("output") {
		c.Output = rf.output
	}
	if g.logLevel != "" {
		c.Log.Level = g.logLevel
	}
	if g.logFormat != "" {
		c.Log.Format = g.logFormat
	}
	// astar-graph-best always runs in best-cost mode.
	if c.Algorithm == search.AlgAStarGraphBest && len(c.Algorithms) == 0 {
		c.BestCost = true
	}
	if err := c.Validate(); err != nil {
		return c, err
	}

	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return c, err
	}
	format, err := logging.ParseFormat(c.Log.Format)
	if err != nil {
		return c, err
	}
	logging.Init(level, format, cmd.ErrOrStderr())

	return c, nil
}

// searchOptions maps the config onto strategy options.
func searchOptions(c config.Config) []search.Option {
	opts := []search.Option{
		search.WithLogger(logging.New("search")),
		search.WithMaxDepth(c.MaxDepth),
		search.WithMaxExpansions(c.MaxExpansions),
	}
	if c.BestCost {
		opts = append(opts, search.WithBestCost())
	}
	if c.Reopen {
		opts = append(opts, search.WithReopen())
	}

	return opts
}

type runResult struct {
	report report.Report
	err    error
}

// runBounded runs algorithm on in and gives up once timeout (if positive)
// expires or ctx is cancelled. The strategies cannot be interrupted, so an
// abandoned run keeps its goroutine until it finishes on its own and its
// result is dropped.
func runBounded(ctx context.Context, in catalog.Instance, algorithm string, c config.Config) (report.Report, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	done := make(chan runResult, 1)
	go func() {
		r, err := in.Run(algorithm, c.Heuristic, searchOptions(c)...)
		done <- runResult{report: r, err: err}
	}()

	select {
	case res := <-done:
		return res.report, res.err
	case <-ctx.Done():
		if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return report.Report{}, ctx.Err()
		}
		logging.New("cli").Warn("run abandoned",
			slog.String("algorithm", algorithm),
			slog.String("problem", in.Problem()),
			slog.Duration("timeout", c.Timeout))
		return report.TimedOut(algorithm, in.Problem(), c.Timeout), nil
	}
}
