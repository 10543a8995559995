package domain

// PersonSummary represents lightweight person information for list and
// disambiguation endpoints.
type PersonSummary struct {
	ID         string
	Name       string
	BirthYear  *int
	MovieCount int
}

// MovieSummary represents lightweight movie information for list endpoints.
type MovieSummary struct {
	ID       string
	Title    string
	Year     int
	CastSize int
}

// PersonListResult captures paginated person list results.
type PersonListResult struct {
	Items []PersonSummary
	Total int64
}

// MovieListResult captures paginated movie list results.
type MovieListResult struct {
	Items []MovieSummary
	Total int64
}
