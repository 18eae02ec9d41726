// File: maze/grid_test.go
package maze

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

// TestNewGrid_Errors checks every construction error.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name   string
		values [][]int
		opts   GridOptions
		want   error
	}{
		{"empty", nil, DefaultGridOptions(), ErrEmptyGrid},
		{"empty row", [][]int{{}}, DefaultGridOptions(), ErrEmptyGrid},
		{"ragged", [][]int{{1, 1}, {1}}, DefaultGridOptions(), ErrNonRectangular},
		{"negative", [][]int{{1, -2}}, DefaultGridOptions(), ErrNegativeValue},
		{"threshold", [][]int{{1}}, GridOptions{WallThreshold: 0}, ErrBadThreshold},
	}
	for _, tc := range cases {
		if _, err := NewGrid(tc.values, tc.opts); !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v; want %v", tc.name, err, tc.want)
		}
	}
}

// TestNewGrid_DeepCopy ensures the grid does not alias its input.
func TestNewGrid_DeepCopy(t *testing.T) {
	in := [][]int{{1, 2}, {3, 0}}
	g, err := NewGrid(in, DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	in[0][0] = 9
	if g.Cost(Cell{0, 0}) != 1 {
		t.Errorf("grid aliased its input")
	}
	if g.MinCost() != 1 {
		t.Errorf("MinCost = %d; want 1", g.MinCost())
	}
	if g.Open(Cell{1, 1}) || g.Open(Cell{2, 0}) || !g.Open(Cell{1, 0}) {
		t.Errorf("Open mismatch")
	}
}

// TestComponents_Simple4 tests Components on a 4×3 grid with Conn4.
//
// Grid (1 = open, 0 = wall):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 components of sizes 4 and 2.
func TestComponents_Simple4(t *testing.T) {
	g, err := NewGrid([][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}, DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	comps := g.Components()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	if want := []int{2, 4}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
	if g.Reachable(Cell{1, 0}, Cell{3, 2}) {
		t.Errorf("separate components reported reachable")
	}
	if !g.Reachable(Cell{0, 1}, Cell{2, 0}) {
		t.Errorf("same component reported unreachable")
	}
}

// TestComponents_Diagonal8: the X pattern is one component with Conn8 and
// nine singletons with Conn4.
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
func TestComponents_Diagonal8(t *testing.T) {
	values := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	g8, _ := NewGrid(values, GridOptions{WallThreshold: 1, Conn: Conn8})
	if comps := g8.Components(); len(comps) != 1 || len(comps[0]) != 9 {
		t.Errorf("Conn8: got %d components; want one of size 9", len(comps))
	}
	g4, _ := NewGrid(values, DefaultGridOptions())
	if comps := g4.Components(); len(comps) != 9 {
		t.Errorf("Conn4: got %d components; want 9", len(comps))
	}
}

// TestComponents_Threshold: raising the threshold turns cheap cells into walls.
func TestComponents_Threshold(t *testing.T) {
	g, _ := NewGrid([][]int{{3, 1, 3}}, GridOptions{WallThreshold: 2})
	if comps := g.Components(); len(comps) != 2 {
		t.Errorf("got %d components; want 2", len(comps))
	}
	if g.MinCost() != 3 {
		t.Errorf("MinCost = %d; want 3", g.MinCost())
	}
}

// TestMinBreaches_Line: [1,0,0,0,1] needs three walls broken.
func TestMinBreaches_Line(t *testing.T) {
	g, _ := NewGrid([][]int{{1, 0, 0, 0, 1}}, DefaultGridOptions())
	path, walls, err := g.MinBreaches(Cell{0, 0}, Cell{4, 0})
	if err != nil {
		t.Fatalf("MinBreaches error: %v", err)
	}
	if walls != 3 {
		t.Errorf("walls = %d; want 3", walls)
	}
	want := []Cell{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

// TestMinBreaches_PrefersOpenDetour: an open detour beats one wall.
//
//	1 0 1
//	1 1 1
func TestMinBreaches_PrefersOpenDetour(t *testing.T) {
	g, _ := NewGrid([][]int{{1, 0, 1}, {1, 1, 1}}, DefaultGridOptions())
	path, walls, err := g.MinBreaches(Cell{0, 0}, Cell{2, 0})
	if err != nil {
		t.Fatalf("MinBreaches error: %v", err)
	}
	if walls != 0 {
		t.Errorf("walls = %d; want 0", walls)
	}
	if path[0] != (Cell{0, 0}) || path[len(path)-1] != (Cell{2, 0}) {
		t.Errorf("path endpoints = %v", path)
	}
	if _, _, err := g.MinBreaches(Cell{0, 0}, Cell{5, 5}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("err = %v; want ErrOutOfBounds", err)
	}
}
