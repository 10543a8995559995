package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/vanshika/costar/backend/internal/domain"
)

// StarRow is one raw membership row linking a person to a movie. It is kept
// separate from domain.CoStar because generated rows may deliberately
// reference unknown ids to exercise ingestion warnings.
type StarRow struct {
	PersonID string `json:"person_id"`
	MovieID  string `json:"movie_id"`
}

// Dataset contains the generated people, movies, and membership rows. The
// json tags serve the datagen -stdout flag, which emits the whole dataset as
// one JSON document instead of CSV files.
type Dataset struct {
	People []domain.Person `json:"people"`
	Movies []domain.Movie  `json:"movies"`
	Stars  []StarRow       `json:"stars"`
}

// Generator produces synthetic datasets aligned with the CSV ingestion
// schema.
type Generator struct {
	cfg       Config
	rand      *rand.Rand
	fragments nameFragments
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	if cfg.NumPeople <= 0 {
		cfg.NumPeople = DefaultConfig().NumPeople
	}
	if cfg.NumMovies <= 0 {
		cfg.NumMovies = DefaultConfig().NumMovies
	}
	if cfg.AvgCastSize <= 0 {
		cfg.AvgCastSize = DefaultConfig().AvgCastSize
	}
	// A cast needs at least two members for the movie to contribute edges.
	if cfg.AvgCastSize < 2 {
		cfg.AvgCastSize = 2
	}
	if cfg.DuplicateNameChance < 0 {
		cfg.DuplicateNameChance = 0
	}
	if cfg.DanglingStarChance < 0 {
		cfg.DanglingStarChance = 0
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:       cfg,
		rand:      rand.New(rand.NewSource(cfg.Seed)),
		fragments: defaultNameFragments(),
	}
}

// Generate synthesises people, movies, and star rows. It respects context
// cancellation.
func (g *Generator) Generate(ctx context.Context) (Dataset, error) {
	people := make([]domain.Person, g.cfg.NumPeople)
	var usedNames []string

	for i := 0; i < g.cfg.NumPeople; i++ {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}

		name := g.randomName()
		if len(usedNames) > 0 && g.rand.Float64() < g.cfg.DuplicateNameChance {
			name = usedNames[g.rand.Intn(len(usedNames))]
		} else {
			usedNames = append(usedNames, name)
		}

		var birth *int
		if g.rand.Float64() < 0.9 {
			year := 1930 + g.rand.Intn(75)
			birth = &year
		}

		people[i] = domain.Person{
			ID:        fmt.Sprintf("%d", 100000+i),
			Name:      name,
			BirthYear: birth,
		}
	}

	movies := make([]domain.Movie, g.cfg.NumMovies)
	var stars []StarRow

	for i := 0; i < g.cfg.NumMovies; i++ {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}

		movieID := fmt.Sprintf("%d", 500000+i)
		movies[i] = domain.Movie{
			ID:    movieID,
			Title: g.randomTitle(),
			Year:  1960 + g.rand.Intn(65),
		}

		castSize := 2 + g.rand.Intn(g.cfg.AvgCastSize*2-2)
		seen := make(map[string]struct{}, castSize)
		for c := 0; c < castSize; c++ {
			personID := people[g.rand.Intn(len(people))].ID
			if g.rand.Float64() < g.cfg.DanglingStarChance {
				personID = fmt.Sprintf("9%07d", g.rand.Intn(1000000))
			}
			if _, dup := seen[personID]; dup {
				continue
			}
			seen[personID] = struct{}{}
			stars = append(stars, StarRow{PersonID: personID, MovieID: movieID})
		}
	}

	return Dataset{People: people, Movies: movies, Stars: stars}, nil
}

func (g *Generator) randomName() string {
	return fmt.Sprintf("%s %s",
		g.fragments.first[g.rand.Intn(len(g.fragments.first))],
		g.fragments.last[g.rand.Intn(len(g.fragments.last))])
}

func (g *Generator) randomTitle() string {
	adjective := g.fragments.adjectives[g.rand.Intn(len(g.fragments.adjectives))]
	noun := g.fragments.nouns[g.rand.Intn(len(g.fragments.nouns))]
	switch g.rand.Intn(3) {
	case 0:
		return fmt.Sprintf("The %s %s", adjective, noun)
	case 1:
		return fmt.Sprintf("%s of the %s", noun, g.fragments.nouns[g.rand.Intn(len(g.fragments.nouns))])
	default:
		return fmt.Sprintf("%s %s", adjective, noun)
	}
}

type nameFragments struct {
	first      []string
	last       []string
	adjectives []string
	nouns      []string
}

func defaultNameFragments() nameFragments {
	return nameFragments{
		first:      []string{"Jane", "John", "Alex", "Priya", "Liu", "Maria", "Omar", "Sofia", "Noah", "Emma", "Lucas", "Mia", "Ava", "Ethan", "Zara"},
		last:       []string{"Doe", "Smith", "Chen", "Patel", "Garcia", "Khan", "Kim", "Ivanov", "Nguyen", "Silva", "Brown", "Lee"},
		adjectives: []string{"Silent", "Crimson", "Last", "Hidden", "Golden", "Broken", "Distant", "Midnight", "Electric", "Forgotten"},
		nouns:      []string{"Harbor", "Empire", "Garden", "Winter", "Signal", "Horizon", "Shadow", "River", "Machine", "Voyage"},
	}
}
