// Package graphpuzzle models token-moving puzzles on a weighted directed
// graph whose edges may carry occupancy conditions. The kiwis-and-dogs
// puzzle is the built-in instance.
//
// What:
//
//   - A Definition lists the vertices, the edges (cost and conditions) and
//     the token groups (start vertices and a goal vertex per group).
//   - New validates a Definition and compiles it into a Problem whose states
//     are token positions and whose actions are move_<group>(i,V).
//   - One action moves one token along one edge, at the edge's cost, when
//     every condition of the edge holds in the current state.
//   - The goal places every token of every group on its group's goal vertex.
//
// Conditions:
//
//	somebody(X)  at least one token (any group) is on X.
//	nobody(X)    no token is on X.
//
// Several conditions on an edge form a conjunction; a single entry may also
// hold a comma-separated list.
//
// Loading:
//
//   - LoadYAML decodes a Definition with unknown fields rejected.
//   - LoadHCL decodes edge and group blocks; expressions may refer to the
//     caller's variables as var.<name>.
//
// Heuristic:
//
//	Distance sums, over tokens, the unconstrained shortest distance from the
//	token to its goal (Dijkstra over reversed edges, computed once in New).
//	Ignoring conditions and other tokens only removes constraints, so the
//	sum is admissible and consistent.
//
// Errors:
//
//   - ErrNoVertices, ErrDuplicateVertex, ErrUnknownVertex, ErrTooManyVertices
//   - ErrDuplicateEdge, ErrNegativeCost, ErrBadCondition
//   - ErrNoGroups, ErrDuplicateGroup, ErrEmptyGroup, ErrTooManyTokens
//   - ErrDecode: malformed YAML or HCL input.
package graphpuzzle
