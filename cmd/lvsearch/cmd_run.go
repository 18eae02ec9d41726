package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/catalog"
	"github.com/katalvlaran/lvsearch/internal/logging"
	"github.com/katalvlaran/lvsearch/internal/report"
)

func newRunCmd(g *globalFlags) *cobra.Command {
	var rf runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve one problem with one strategy",
		Example: `  lvsearch run -a astar-graph -p jars --pp capacities=7,4 --pp amount=5
  lvsearch run -a ids -p vacuum --pp position=1 -o json
  lvsearch run -a astar-graph-best -p nqueens --pp n=8 --pp seed=42 --hf repair --timeout 10s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRun(cmd, g, &rf)
		},
	}
	cmd.Flags().StringVarP(&rf.algorithm, "algorithm", "a", "", "Strategy name, see 'lvsearch list' (default astar-graph)")
	bindRunFlags(cmd, &rf)

	return cmd
}

func runRun(cmd *cobra.Command, g *globalFlags, rf *runFlags) error {
	c, err := resolve(cmd, g, rf)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(c.Output)
	if err != nil {
		return err
	}

	in, err := catalog.Build(c.Problem, c.Params, logging.New("catalog"))
	if err != nil {
		return err
	}
	r, err := runBounded(cmd.Context(), in, c.Algorithm, c)
	if err != nil {
		return err
	}
	logging.New("cli").Info("run finished",
		slog.String("algorithm", r.Algorithm),
		slog.String("problem", r.Problem),
		slog.String("outcome", r.Outcome()),
		slog.Int("expanded", r.Stats.Expanded))

	return report.Write(cmd.OutOrStdout(), format, r)
}
