package search

import "errors"

// ErrEmptyFrontier is returned by RemoveOldest on an empty frontier. The
// engine always checks IsEmpty first, so seeing this error means a caller
// misused the frontier, not that a search legitimately ran dry.
var ErrEmptyFrontier = errors.New("frontier is empty")

// Frontier holds the discovered-but-not-yet-expanded nodes of a search in
// FIFO order. The FIFO discipline is what makes the search breadth-first:
// the first time the target is dequeued, the path to it is minimal. Swapping
// this for a stack would still find a path, just not the shortest one.
type Frontier struct {
	nodes  []*Node
	states map[string]int
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{states: make(map[string]int)}
}

// Add appends a node to the end of the frontier.
func (f *Frontier) Add(n *Node) {
	f.nodes = append(f.nodes, n)
	f.states[n.State]++
}

// RemoveOldest removes and returns the earliest-added node.
func (f *Frontier) RemoveOldest() (*Node, error) {
	if len(f.nodes) == 0 {
		return nil, ErrEmptyFrontier
	}
	n := f.nodes[0]
	f.nodes[0] = nil
	f.nodes = f.nodes[1:]
	if f.states[n.State] <= 1 {
		delete(f.states, n.State)
	} else {
		f.states[n.State]--
	}
	return n, nil
}

// IsEmpty reports whether the frontier holds no nodes.
func (f *Frontier) IsEmpty() bool {
	return len(f.nodes) == 0
}

// ContainsState reports whether any queued node carries the given state.
func (f *Frontier) ContainsState(state string) bool {
	_, ok := f.states[state]
	return ok
}

// Len returns the number of queued nodes.
func (f *Frontier) Len() int {
	return len(f.nodes)
}
