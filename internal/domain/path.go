package domain

// PathStep is one hop of a connection path: the movie that links the previous
// person on the path to PersonID.
type PathStep struct {
	MovieID  string
	PersonID string
}

// Path is the outcome of a shortest-path search. Found is false when the two
// people are in disconnected components; that is a valid result, not an
// error. A Found path with no steps means source and target are the same
// person (zero degrees of separation).
type Path struct {
	SourceID string
	TargetID string
	Steps    []PathStep
	Found    bool
	// Explored counts the states expanded during the search. Zero for
	// backends that do not track it.
	Explored int
}

// Hops returns the degrees of separation along the path.
func (p Path) Hops() int {
	return len(p.Steps)
}
