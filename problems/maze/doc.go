// Package maze is path finding on a weighted grid: a Grid of integer cells
// where values below a wall threshold block movement and every other value is
// the cost of stepping onto that cell.
//
// What:
//
//   - Grid wraps a rectangular [][]int with a WallThreshold and Conn4 or
//     Conn8 connectivity.
//   - Components labels contiguous regions of open cells; Reachable answers
//     start/goal connectivity in O(1) after one O(W×H) pass.
//   - MinBreaches finds the fewest walls to break between two cells (0-1 BFS),
//     the diagnostic for an unreachable goal.
//   - Problem adapts a Grid, a start and a goal to search.Problem with compass
//     actions N, NE, E, SE, S, SW, W, NW.
//   - Parse reads a text maze ('#' wall, '.' or 'S'/'G' cost 1, '1'..'9' cost).
//
// Heuristics:
//
//   - Manhattan: Conn4, |dx|+|dy| scaled by the cheapest open cell.
//   - Chebyshev: Conn8, max(|dx|,|dy|) scaled the same way; a diagonal step
//     costs the same as a straight one.
//
// Both are admissible and consistent.
//
// Complexity:
//
//   - NewGrid, Components:  O(W×H×d), Memory O(W×H)  (d = 4 or 8).
//   - MinBreaches:          O(W×H×d), Memory O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrNegativeValue, ErrBadThreshold: NewGrid input.
//   - ErrOutOfBounds, ErrOnWall: start or goal placement.
//   - ErrParse: malformed text maze.
package maze
