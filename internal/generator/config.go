package generator

// Config drives the synthetic dataset generator.
type Config struct {
	NumPeople           int
	NumMovies           int
	AvgCastSize         int
	DuplicateNameChance float64
	DanglingStarChance  float64
	Seed                int64
}

// DefaultConfig returns baseline settings producing a well-connected graph
// with enough duplicate names to exercise disambiguation.
func DefaultConfig() Config {
	return Config{
		NumPeople:           10000,
		NumMovies:           2500,
		AvgCastSize:         6,
		DuplicateNameChance: 0.02,
		DanglingStarChance:  0,
		Seed:                42,
	}
}
