package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/internal/report"
	"github.com/katalvlaran/lvsearch/search"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()

	return out.String(), errOut.String(), err
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	for _, want := range []string{"astar-graph-best", "capacities=5,3", "chebyshev", "var.*", "kiwis"} {
		assert.Contains(t, out, want)
	}

	out, _, err = execute(t, "list", "--markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "| Algorithm")
}

func TestRun_JSON(t *testing.T) {
	out, _, err := execute(t, "run", "-a", "astar-graph", "-p", "jars", "-o", "json")
	require.NoError(t, err)

	var r report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.True(t, r.Found)
	assert.Equal(t, 6.0, r.Cost)
	assert.Equal(t, "diff", r.Heuristic)
	assert.Equal(t, []string{"fill(0)", "pour(0,1)", "empty(1)", "pour(0,1)", "fill(0)", "pour(0,1)"}, r.Actions)
}

func TestRun_ParamsAndYAML(t *testing.T) {
	out, _, err := execute(t, "run", "-a", "ucs", "-p", "jars",
		"--pp", "capacities=3,5", "--pp", "jar=1", "--pp", "amount=4", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "algorithm: ucs")
	assert.Contains(t, out, "cost: 6")
	assert.NotContains(t, out, "heuristic:", "ucs is uninformed")
}

func TestRun_Table(t *testing.T) {
	out, _, err := execute(t, "run", "-a", "tree-bfs", "-p", "vacuum")
	require.NoError(t, err)
	assert.Contains(t, out, "tree-bfs")
	assert.Contains(t, out, "solved")
	assert.Contains(t, out, "--sweep--> (1,(F,F))")
}

func TestRun_ConfigFileWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
algorithm: ids
problem: vacuum
params:
  position: "1"
output: table
`), 0o644))

	out, _, err := execute(t, "run", "--config", path, "-o", "json", "--pp", "dirty-right=false")
	require.NoError(t, err)

	var r report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, search.AlgIDS, r.Algorithm)
	assert.Equal(t, "vacuum", r.Problem)
	assert.Equal(t, "(1,(T,F))", r.States[0])
	assert.Equal(t, 2.0, r.Cost, "left then sweep")
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t, "run", "-p", "jars", "--pp", "colour=red")
	assert.Error(t, err)

	_, _, err = execute(t, "run", "-p", "jars", "--reopen")
	assert.ErrorIs(t, err, config.ErrReopenWithoutBestCost)

	_, _, err = execute(t, "run", "-a", "dfs", "-p", "jars")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	_, _, err = execute(t, "run", "-p", "jars", "-o", "csv")
	assert.ErrorIs(t, err, report.ErrBadFormat)

	_, _, err = execute(t, "run", "-p", "jars", "--log-level", "chatty")
	assert.Error(t, err)
}

func TestRun_BestCostImpliesReopenAllowed(t *testing.T) {
	out, _, err := execute(t, "run", "-a", "astar-graph-best", "--reopen", "-p", "maze", "-o", "json")
	require.NoError(t, err)

	var r report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 17.0, r.Cost)
}

func TestRun_MaxExpansionsCutoff(t *testing.T) {
	out, _, err := execute(t, "run", "-a", "astar-tree", "-p", "maze", "--max-expansions", "3", "-o", "json")
	require.NoError(t, err)

	var r report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.False(t, r.Found)
	assert.True(t, r.Cutoff)
	assert.Equal(t, 3, r.Stats.Expanded)
}

func TestRun_DebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "run", "-p", "vacuum", "--log-level", "debug", "--log-format", "json", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"component":"search"`)
	assert.Contains(t, stderr, `"msg":"run finished"`)
}

func TestCompare_AllStrategies(t *testing.T) {
	out, _, err := execute(t, "compare", "-p", "vacuum", "--pp", "position=1", "-o", "json")
	require.NoError(t, err)

	var rs []report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rs))
	require.Len(t, rs, len(search.Algorithms()))
	for i, r := range rs {
		assert.Equal(t, search.Algorithms()[i], r.Algorithm)
		assert.Equal(t, 3.0, r.Cost, r.Algorithm)
	}
}

func TestCompare_Selected(t *testing.T) {
	out, _, err := execute(t, "compare", "-p", "jars", "-a", "ids", "-a", "ucs", "-o", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "| ids")
	assert.Contains(t, out, "| ucs")
	assert.NotContains(t, out, "tree-bfs")
}

// blockingInstance never finishes until release is closed.
type blockingInstance struct {
	release chan struct{}
}

func (b blockingInstance) Problem() string { return "blocked" }

func (b blockingInstance) Run(algorithm, _ string, _ ...search.Option) (report.Report, error) {
	<-b.release
	return report.Report{Algorithm: algorithm, Found: true}, nil
}

func TestRunBounded_Timeout(t *testing.T) {
	in := blockingInstance{release: make(chan struct{})}
	defer close(in.release)

	c := config.Default()
	c.Timeout = 20 * time.Millisecond
	r, err := runBounded(context.Background(), in, search.AlgIDS, c)
	require.NoError(t, err)
	assert.True(t, r.TimedOut)
	assert.Equal(t, "timeout", r.Outcome())
	assert.Equal(t, "blocked", r.Problem)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.Timeout = 0
	_, err = runBounded(ctx, in, search.AlgIDS, c)
	assert.ErrorIs(t, err, context.Canceled)
}
