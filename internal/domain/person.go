package domain

// Person models a person node in the co-star graph. BirthYear is nil when the
// dataset left the field blank.
type Person struct {
	ID        string
	Name      string
	BirthYear *int
}

// Movie models a shared-context node linking the people who appeared in it.
type Movie struct {
	ID    string
	Title string
	Year  int
}

// CoStar is a single one-hop edge in the projected person-person graph: the
// movie taken and the co-member reached through it.
type CoStar struct {
	MovieID  string
	PersonID string
}
