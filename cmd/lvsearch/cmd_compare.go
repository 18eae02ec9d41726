package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/internal/catalog"
	"github.com/katalvlaran/lvsearch/internal/logging"
	"github.com/katalvlaran/lvsearch/internal/report"
	"github.com/katalvlaran/lvsearch/search"
)

func newCompareCmd(g *globalFlags) *cobra.Command {
	var rf runFlags
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run several strategies on one problem concurrently",
		Long: `Run the given strategies (all of them by default) on the same problem
instance at the same time and print one row per strategy.`,
		Example: `  lvsearch compare -p maze --pp conn=8
  lvsearch compare -p kiwis -a ucs -a astar-graph --hf distance -o markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompare(cmd, g, &rf)
		},
	}
	cmd.Flags().StringSliceVarP(&rf.algorithms, "algorithm", "a", nil, "Strategy to include (repeatable, default all)")
	bindRunFlags(cmd, &rf)

	return cmd
}

func runCompare(cmd *cobra.Command, g *globalFlags, rf *runFlags) error {
	c, err := resolve(cmd, g, rf)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(c.Output)
	if err != nil {
		return err
	}
	algorithms := c.Algorithms
	if len(algorithms) == 0 {
		algorithms = search.Algorithms()
	}

	in, err := catalog.Build(c.Problem, c.Params, logging.New("catalog"))
	if err != nil {
		return err
	}

	reports := make([]report.Report, len(algorithms))
	eg, ctx := errgroup.WithContext(cmd.Context())
	for i, alg := range algorithms {
		eg.Go(func() error {
			r, err := runBounded(ctx, in, alg, c)
			if err != nil {
				return fmt.Errorf("%s: %w", alg, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	return report.Write(cmd.OutOrStdout(), format, reports...)
}
