package maze

import (
	"bufio"
	"fmt"
	"strings"
)

// Parse reads a text maze, one row per line:
//
//	'#'          wall
//	'.'          open, cost 1
//	'1'..'9'     open, cost of the digit
//	'S', 'G'     start and goal, cost 1; exactly one of each
//
// Leading and trailing blank lines and trailing spaces are ignored.
func Parse(text string, conn Connectivity) (*Problem, error) {
	var (
		values      [][]int
		start, goal []Cell
	)
	sc := bufio.NewScanner(strings.NewReader(strings.Trim(text, "\n")))
	for y := 0; sc.Scan(); y++ {
		line := strings.TrimRight(sc.Text(), " \t\r")
		row := make([]int, len([]rune(line)))
		for x, r := range []rune(line) {
			switch {
			case r == '#':
				row[x] = 0
			case r == '.':
				row[x] = 1
			case r >= '1' && r <= '9':
				row[x] = int(r - '0')
			case r == 'S':
				row[x] = 1
				start = append(start, Cell{X: x, Y: y})
			case r == 'G':
				row[x] = 1
				goal = append(goal, Cell{X: x, Y: y})
			default:
				return nil, fmt.Errorf("%w: line %d col %d: unexpected %q", ErrParse, y+1, x+1, r)
			}
		}
		values = append(values, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(start) != 1 || len(goal) != 1 {
		return nil, fmt.Errorf("%w: want one S and one G, got %d and %d", ErrParse, len(start), len(goal))
	}

	g, err := NewGrid(values, GridOptions{WallThreshold: 1, Conn: conn})
	if err != nil {
		return nil, err
	}

	return New(g, start[0], goal[0])
}
