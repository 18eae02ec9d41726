package search

// Location tells where a node is in its lifecycle.
type Location int

const (
	// Generated: the node was created and pushed to the fringe.
	Generated Location = iota
	// Expanded: the node was popped and its successors generated.
	Expanded
)

// String returns "generated" or "expanded".
func (l Location) String() string {
	switch l {
	case Generated:
		return "generated"
	case Expanded:
		return "expanded"
	default:
		return "unknown"
	}
}

// Node is one point of a search tree. Nodes are created by the strategies and
// are read-only for callers; the whole forest stays reachable from the
// Solution's roots.
type Node[S comparable, A any] struct {
	state       S
	action      A
	hasAction   bool
	cost        float64
	depth       int
	parent      *Node[S, A]
	successors  []*Node[S, A]
	expandOrder int
	location    Location
}

// newRoot wraps a start state.
func newRoot[S comparable, A any](s S) *Node[S, A] {
	return &Node[S, A]{state: s, location: Generated}
}

// newChild builds the node reached from parent through sc and links it
// into parent's successor list.
func newChild[S comparable, A any](parent *Node[S, A], sc Successor[S, A]) *Node[S, A] {
	n := &Node[S, A]{
		state:     sc.State,
		action:    sc.Action,
		hasAction: true,
		cost:      parent.cost + sc.Cost,
		depth:     parent.depth + 1,
		parent:    parent,
		location:  Generated,
	}
	parent.successors = append(parent.successors, n)

	return n
}

// State returns the wrapped problem state.
func (n *Node[S, A]) State() S { return n.state }

// Action returns the action that produced this node; the zero value for roots.
func (n *Node[S, A]) Action() A { return n.action }

// HasAction reports whether the node was produced by an action (false for roots).
func (n *Node[S, A]) HasAction() bool { return n.hasAction }

// Cost returns g(n), the accumulated path cost from the root.
func (n *Node[S, A]) Cost() float64 { return n.cost }

// Depth returns the number of edges from the root.
func (n *Node[S, A]) Depth() int { return n.depth }

// Parent returns the producing node, or nil for roots.
func (n *Node[S, A]) Parent() *Node[S, A] { return n.parent }

// IsRoot reports whether n has no parent.
func (n *Node[S, A]) IsRoot() bool { return n.parent == nil }

// Successors returns the generated children in generation order.
// The returned slice must not be modified.
func (n *Node[S, A]) Successors() []*Node[S, A] { return n.successors }

// ExpandOrder returns the 1-based expansion sequence number, or 0 if the
// node was never expanded.
func (n *Node[S, A]) ExpandOrder() int { return n.expandOrder }

// Location returns Generated or Expanded.
func (n *Node[S, A]) Location() Location { return n.location }

// Path returns the nodes from the root down to n, inclusive.
func (n *Node[S, A]) Path() []*Node[S, A] {
	if n == nil {
		return nil
	}
	path := make([]*Node[S, A], 0, n.depth+1)
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur)
	}
	// reverse to get root → n
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
