package search

// Node is one step of a path under construction: the person reached, the
// movie taken to reach them, and a link to the node it was expanded from.
// Nodes are immutable once created and form a tree through Parent links; the
// root of a search has a nil Parent and an empty Action. Path reconstruction
// walks the links read-only, so a finished search never mutates the tree.
type Node struct {
	State  string
	Parent *Node
	Action string
}
