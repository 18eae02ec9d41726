package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvsearch/action"
	"github.com/katalvlaran/lvsearch/problems/graphpuzzle"
	"github.com/katalvlaran/lvsearch/problems/jars"
	"github.com/katalvlaran/lvsearch/problems/maze"
	"github.com/katalvlaran/lvsearch/problems/nqueens"
	"github.com/katalvlaran/lvsearch/problems/vacuum"
)

var jarsEntry = Entry{
	Name:    "jars",
	Summary: "measure an amount with jars that can be filled, emptied and poured",
	Params: []Param{
		{Name: "capacities", Default: "5,3", Usage: "comma-separated jar capacities"},
		{Name: "jar", Default: "0", Usage: "index of the target jar"},
		{Name: "amount", Default: "4", Usage: "amount wanted in the target jar"},
	},
	Heuristics: []string{"diff", ZeroHeuristic},
	build:      buildJars,
}

func buildJars(p params, _ *slog.Logger) (Instance, error) {
	caps, err := p.integers("capacities")
	if err != nil {
		return nil, err
	}
	jar, err := p.integer("jar")
	if err != nil {
		return nil, err
	}
	amount, err := p.integer("amount")
	if err != nil {
		return nil, err
	}
	pr, err := jars.New(jars.WithCapacities(caps...), jars.WithTarget(jar, amount))
	if err != nil {
		return nil, err
	}

	return &instance[jars.State, action.Call]{
		name:       "jars",
		problem:    pr,
		heuristics: []namedHeuristic[jars.State]{{"diff", pr.DiffFromTarget}},
	}, nil
}

var vacuumEntry = Entry{
	Name:    "vacuum",
	Summary: "two-cell vacuum world",
	Params: []Param{
		{Name: "position", Default: "0", Usage: "starting cell (0 or 1)"},
		{Name: "dirty-left", Default: "true", Usage: "whether cell 0 starts dirty"},
		{Name: "dirty-right", Default: "true", Usage: "whether cell 1 starts dirty"},
	},
	Heuristics: []string{"dirty", ZeroHeuristic},
	build:      buildVacuum,
}

func buildVacuum(p params, _ *slog.Logger) (Instance, error) {
	pos, err := p.integer("position")
	if err != nil {
		return nil, err
	}
	left, err := p.flag("dirty-left")
	if err != nil {
		return nil, err
	}
	right, err := p.flag("dirty-right")
	if err != nil {
		return nil, err
	}
	pr, err := vacuum.New(vacuum.WithInitialPosition(pos), vacuum.WithDirt(left, right))
	if err != nil {
		return nil, err
	}

	return &instance[vacuum.State, action.Call]{
		name:       "vacuum",
		problem:    pr,
		heuristics: []namedHeuristic[vacuum.State]{{"dirty", vacuum.DirtyCells}},
	}, nil
}

var nqueensEntry = Entry{
	Name:    "nqueens",
	Summary: "n-queens by iterative repair from a seeded random board",
	Params: []Param{
		{Name: "n", Default: "8", Usage: "number of movable queens"},
		{Name: "seed", Default: "0", Usage: "start board seed (0 = fixed default)"},
	},
	Heuristics: []string{"repair", "conflicts", ZeroHeuristic},
	build:      buildNQueens,
}

func buildNQueens(p params, log *slog.Logger) (Instance, error) {
	n, err := p.integer("n")
	if err != nil {
		return nil, err
	}
	seed, err := p.integer("seed")
	if err != nil {
		return nil, err
	}
	pr, err := nqueens.New(n, int64(seed))
	if err != nil {
		return nil, err
	}
	start := pr.StartStates()[0]
	log.Debug("drew start board", slog.Int("seed", seed), slog.String("board", start.String()),
		slog.Int("conflicts", nqueens.Conflicts(start)))

	return &instance[nqueens.Board, action.Call]{
		name:    "nqueens",
		problem: pr,
		heuristics: []namedHeuristic[nqueens.Board]{
			{"repair", nqueens.Repair},
			{"conflicts", func(b nqueens.Board) float64 { return float64(nqueens.Conflicts(b)) }},
		},
	}, nil
}

var kiwisEntry = Entry{
	Name:    "kiwis",
	Summary: "move token groups over a conditional graph (kiwis-and-dogs unless file is set)",
	Params: []Param{
		{Name: "file", Usage: "puzzle definition (.yaml, .yml or .hcl)"},
		{Name: "var.*", Usage: "HCL variable, read as var.<name> in the file"},
	},
	Heuristics: []string{"distance", ZeroHeuristic},
	build:      buildKiwis,
}

func buildKiwis(p params, log *slog.Logger) (Instance, error) {
	def, err := loadDefinition(p.text("file"), p.prefixed("var."))
	if err != nil {
		return nil, err
	}
	pr, err := graphpuzzle.New(def)
	if err != nil {
		return nil, err
	}
	log.Debug("loaded puzzle", slog.String("name", pr.Name()), slog.Int("vertices", len(def.Vertices)))

	return &instance[graphpuzzle.State, action.Call]{
		name:       "kiwis",
		problem:    pr,
		heuristics: []namedHeuristic[graphpuzzle.State]{{"distance", pr.Distance}},
		format:     pr.Format,
	}, nil
}

func loadDefinition(path string, vars map[string]string) (*graphpuzzle.Definition, error) {
	if path == "" {
		return graphpuzzle.KiwisAndDogs(), nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return graphpuzzle.LoadHCLFile(path, graphpuzzle.StringVars(vars))
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return graphpuzzle.LoadYAML(f)
	default:
		return nil, fmt.Errorf("%w: file=%q is neither YAML nor HCL", ErrBadParam, path)
	}
}

// DefaultMaze is solved when the maze entry has no file parameter.
const DefaultMaze = `
S..#.....
.#.#.###.
.#..2#...
.####..#.
...9...#G
`

var mazeEntry = Entry{
	Name:    "maze",
	Summary: "weighted grid maze, cost of a move is the value of the cell entered",
	Params: []Param{
		{Name: "file", Usage: "maze text file ('#' wall, '.' or 1-9 open, S start, G goal)"},
		{Name: "conn", Default: "4", Usage: "4 or 8 neighbours"},
	},
	Heuristics: []string{"grid", "manhattan", "chebyshev", ZeroHeuristic},
	build:      buildMaze,
}

func buildMaze(p params, log *slog.Logger) (Instance, error) {
	text := DefaultMaze
	if path := p.text("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		text = string(data)
	}
	var conn maze.Connectivity
	switch c := p.text("conn"); c {
	case "4":
		conn = maze.Conn4
	case "8":
		conn = maze.Conn8
	default:
		return nil, fmt.Errorf("%w: conn=%q, want 4 or 8", ErrBadParam, c)
	}
	pr, err := maze.Parse(text, conn)
	if err != nil {
		return nil, err
	}
	if !pr.Reachable() {
		_, walls, err := pr.Grid().MinBreaches(pr.Start(), pr.Goal())
		if err != nil {
			return nil, err
		}
		log.Warn("goal is walled off from the start",
			slog.String("start", pr.Start().String()),
			slog.String("goal", pr.Goal().String()),
			slog.Int("walls_to_breach", walls))
	}

	return &instance[maze.Cell, string]{
		name:    "maze",
		problem: pr,
		heuristics: []namedHeuristic[maze.Cell]{
			{"grid", pr.Heuristic()},
			{"manhattan", pr.Manhattan},
			{"chebyshev", pr.Chebyshev},
		},
	}, nil
}
