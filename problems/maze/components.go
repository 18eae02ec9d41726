package maze

// Components finds all contiguous regions of open cells according to g.Conn.
// Each component is a slice of row-major cell indices in BFS order; components
// are listed in row-major order of their first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]int {
	comps, _ := g.label()
	return comps
}

// Reachable reports whether b can be reached from a through open cells.
// Both cells must be open.
func (g *Grid) Reachable(a, b Cell) bool {
	if !g.Open(a) || !g.Open(b) {
		return false
	}
	_, labels := g.label()

	return labels[g.index(a)] == labels[g.index(b)]
}

// label runs the component BFS and returns the components together with the
// component number of every cell (-1 for walls).
func (g *Grid) label() ([][]int, []int) {
	total := g.Width * g.Height
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if labels[i0] >= 0 || !g.Open(g.CellAt(i0)) {
			continue
		}
		// BFS to collect component
		id := len(comps)
		queue := []int{i0}
		labels[i0] = id
		for qi := 0; qi < len(queue); qi++ {
			u := g.CellAt(queue[qi])
			for _, m := range g.moves {
				v := Cell{X: u.X + m.dx, Y: u.Y + m.dy}
				if !g.Open(v) {
					continue
				}
				vi := g.index(v)
				if labels[vi] < 0 {
					labels[vi] = id
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps, labels
}
