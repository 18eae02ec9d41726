// Command lvsearch solves the bundled search problems with any registered
// strategy and prints what each run found and how much work it did.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	config    string
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	var g globalFlags
	root := &cobra.Command{
		Use:   "lvsearch",
		Short: "State-space search over bundled puzzles",
		Long: `lvsearch runs tree BFS, iterative deepening, A* tree/graph search and
uniform-cost search over the bundled problems (jars, vacuum, nqueens,
kiwis, maze) and reports the solution path with search statistics.`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Version: version,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.config, "config", "", "Run configuration file (YAML or JSON)")
	pf.StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error (default warn)")
	pf.StringVar(&g.logFormat, "log-format", "", "Log format: text or json (default text)")

	root.AddCommand(newListCmd())
	root.AddCommand(newRunCmd(&g))
	root.AddCommand(newCompareCmd(&g))

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
