package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/internal/config"
)

func TestLoad_YAML(t *testing.T) {
	src := []byte(`
algorithm: astar-graph-best
problem: nqueens
params:
  n: "8"
  seed: "42"
heuristic: repair
reopen: true
best_cost: true
max_expansions: 5000
timeout: 2s
log:
  level: debug
`)
	c, err := config.Load(src, ".yaml")
	require.NoError(t, err)

	want := config.Config{
		Algorithm:     "astar-graph-best",
		Problem:       "nqueens",
		Params:        map[string]string{"n": "8", "seed": "42"},
		Heuristic:     "repair",
		BestCost:      true,
		Reopen:        true,
		MaxExpansions: 5000,
		Timeout:       2 * time.Second,
		Output:        "table",
		Log:           config.Log{Level: "debug", Format: "text"},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromPath_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"problem":"vacuum","algorithms":["ids","ucs"],"output":"json"}`), 0o644))

	c, err := config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "vacuum", c.Problem)
	assert.Equal(t, []string{"ids", "ucs"}, c.Algorithms)
	assert.Equal(t, "json", c.Output)
	assert.Equal(t, "astar-graph", c.Algorithm, "unset fields keep their defaults")
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load([]byte("max_depth: -1\n"), ".yml")
	assert.ErrorIs(t, err, config.ErrNegativeLimit)

	_, err = config.Load([]byte("reopen: true\n"), ".yaml")
	assert.ErrorIs(t, err, config.ErrReopenWithoutBestCost)

	_, err = config.Load([]byte("problem: [\n"), ".yaml")
	assert.Error(t, err)

	_, err = config.LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSetParam(t *testing.T) {
	var c config.Config
	require.NoError(t, c.SetParam("capacities=5,3"))
	require.NoError(t, c.SetParam(" target = 4 "))
	assert.Equal(t, map[string]string{"capacities": "5,3", "target": "4"}, c.Params)

	assert.Error(t, c.SetParam("novalue"))
	assert.Error(t, c.SetParam("=4"))
}
