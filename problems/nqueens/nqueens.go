// Package nqueens is n-queens by iterative repair: the board starts with one
// queen per column on a random row, and each action moves one queen to
// another row of its column. A goal board has no two queens on a shared row
// or diagonal.
//
// The board is max(4, n) wide; only the first n queens may move. The start
// board is drawn once, in New, from a source seeded explicitly, so every
// run and every IDS pass sees the same start.
package nqueens

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsearch/action"
	"github.com/katalvlaran/lvsearch/search"
)

// MaxSize bounds the board width.
const MaxSize = 32

// minSize is the smallest board New builds.
const minSize = 4

// ErrBadSize is returned by New for n < 1 or n > MaxSize.
var ErrBadSize = errors.New("nqueens: number of queens out of range")

// Board holds, for every column, the row of its queen.
type Board struct {
	size int
	rows [MaxSize]uint8
}

// BoardOf builds a board from explicit rows (at most MaxSize).
func BoardOf(rows ...int) Board {
	b := Board{size: min(len(rows), MaxSize)}
	for i := 0; i < b.size; i++ {
		b.rows[i] = uint8(rows[i])
	}

	return b
}

// Size returns the board width.
func (b Board) Size() int { return b.size }

// Row returns the row of the queen in column col.
func (b Board) Row(col int) int { return int(b.rows[col]) }

// Rows returns the queen rows column by column.
func (b Board) Rows() []int {
	out := make([]int, b.size)
	for i := range out {
		out[i] = int(b.rows[i])
	}

	return out
}

// String renders the rows as [r0 r1 ...].
func (b Board) String() string {
	parts := make([]string, b.size)
	for i := range parts {
		parts[i] = strconv.Itoa(int(b.rows[i]))
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Problem is an n-queens repair instance. It implements search.Problem.
type Problem struct {
	queens  int
	start   Board
	actions *action.Registry[Board]
}

var _ search.Problem[Board, action.Call] = (*Problem)(nil)

// New builds an instance with n movable queens whose start board is drawn
// from seed (0 selects DefaultSeed).
func New(n int, seed int64) (*Problem, error) {
	if n < 1 || n > MaxSize {
		return nil, fmt.Errorf("%w: %d not in [1,%d]", ErrBadSize, n, MaxSize)
	}
	size := max(minSize, n)

	p := &Problem{queens: n, start: randomBoard(rngFromSeed(seed), size)}
	p.actions = action.NewRegistry[Board]()
	err := p.actions.Register("move", action.Fixed(1, move), action.Range(0, n), action.Range(0, size))
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Queens returns the number of movable queens.
func (p *Problem) Queens() int { return p.queens }

// StartStates returns the seeded start board.
func (p *Problem) StartStates() []Board { return []Board{p.start} }

// IsGoal reports whether no two queens attack each other.
func (p *Problem) IsGoal(b Board) bool { return Conflicts(b) == 0 }

// Successors lists every move(queen,row) that changes the board.
func (p *Problem) Successors(b Board) []search.Successor[Board, action.Call] {
	return p.actions.Successors(b)
}

// Compare orders boards column by column.
func (p *Problem) Compare(a, b Board) int {
	for i := 0; i < max(a.size, b.size); i++ {
		if c := cmp.Compare(a.rows[i], b.rows[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(a.size, b.size)
}

// Conflicts counts attacking pairs: queens sharing a row or a diagonal.
func Conflicts(b Board) int {
	n := 0
	for i := 0; i < b.size; i++ {
		for j := i + 1; j < b.size; j++ {
			dr := int(b.rows[i]) - int(b.rows[j])
			if dr == 0 || dr == j-i || dr == i-j {
				n++
			}
		}
	}

	return n
}

// Repair is the largest of three surplus counts: queens beyond the first on
// each row, on each diagonal, and on each anti-diagonal. A move fixes at
// most one surplus queen per line family, so Repair never overestimates.
func Repair(b Board) float64 {
	rows := make(map[int]int, b.size)
	diag := make(map[int]int, b.size)
	anti := make(map[int]int, b.size)
	for col := 0; col < b.size; col++ {
		r := int(b.rows[col])
		rows[r]++
		diag[col-r]++
		anti[col+r]++
	}

	return float64(max(surplus(rows), surplus(diag), surplus(anti)))
}

func surplus(counts map[int]int) int {
	s := 0
	for _, c := range counts {
		if c > 1 {
			s += c - 1
		}
	}

	return s
}

func move(b Board, a action.Args) (Board, bool) {
	queen, row := a.Int(0), a.Int(1)
	if int(b.rows[queen]) == row {
		return b, false
	}
	b.rows[queen] = uint8(row)

	return b, true
}
