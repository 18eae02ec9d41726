package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/catalog"
	"github.com/katalvlaran/lvsearch/internal/report"
	"github.com/katalvlaran/lvsearch/search"
)

func newListCmd() *cobra.Command {
	var markdown bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List strategies, problems, their parameters and heuristics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode := report.ASCII
			if markdown {
				mode = report.Markdown
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, algorithmTable(mode))
			fmt.Fprintln(out, problemTable(mode))
			return nil
		},
	}
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Render Markdown tables")

	return cmd
}

func algorithmTable(mode report.Mode) string {
	tb := report.NewTable(mode)
	tb.Header("Algorithm", "Uses heuristic")
	for _, name := range search.Algorithms() {
		informed := "no"
		if search.Informed(name) {
			informed = "yes"
		}
		tb.Row(name, informed)
	}

	return tb.String()
}

func problemTable(mode report.Mode) string {
	tb := report.NewTable(mode)
	tb.Header("Problem", "Summary", "Parameters", "Heuristics")
	for _, e := range catalog.Problems() {
		params := make([]string, len(e.Params))
		for i, p := range e.Params {
			params[i] = p.Name
			if p.Default != "" {
				params[i] += "=" + p.Default
			}
		}
		tb.Row(e.Name, e.Summary, strings.Join(params, "\n"), strings.Join(e.Heuristics, ", "))
	}
	tb.Columns(report.ColumnConfig{Number: 2, MaxWidth: 40})

	return tb.String()
}
