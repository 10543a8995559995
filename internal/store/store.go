package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vanshika/costar/backend/internal/domain"
)

var (
	// ErrUnknownPerson indicates a membership referenced a person id that is
	// not present in the people table.
	ErrUnknownPerson = errors.New("unknown person id")
	// ErrUnknownMovie indicates a membership referenced a movie id that is
	// not present in the movies table.
	ErrUnknownMovie = errors.New("unknown movie id")
)

// Store owns the in-memory people and movies tables, the name index used for
// disambiguation, and the membership sets linking the two. It is populated
// once during ingestion and treated as read-only afterwards, so concurrent
// searches may share a single Store without locking.
type Store struct {
	people map[string]domain.Person
	movies map[string]domain.Movie

	// names maps a lowercased display name to the set of person ids
	// sharing it.
	names map[string]map[string]struct{}

	personMovies map[string]map[string]struct{}
	movieCast    map[string]map[string]struct{}
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		people:       make(map[string]domain.Person),
		movies:       make(map[string]domain.Movie),
		names:        make(map[string]map[string]struct{}),
		personMovies: make(map[string]map[string]struct{}),
		movieCast:    make(map[string]map[string]struct{}),
	}
}

// AddPerson inserts a person record and indexes its name. Re-adding an id
// overwrites the previous record but keeps both name index entries; datasets
// are expected to carry unique ids.
func (s *Store) AddPerson(p domain.Person) {
	s.people[p.ID] = p
	key := strings.ToLower(p.Name)
	if s.names[key] == nil {
		s.names[key] = make(map[string]struct{})
	}
	s.names[key][p.ID] = struct{}{}
	if s.personMovies[p.ID] == nil {
		s.personMovies[p.ID] = make(map[string]struct{})
	}
}

// AddMovie inserts a movie record.
func (s *Store) AddMovie(m domain.Movie) {
	s.movies[m.ID] = m
	if s.movieCast[m.ID] == nil {
		s.movieCast[m.ID] = make(map[string]struct{})
	}
}

// AddMembership links a person to a movie in both directions. It fails with
// ErrUnknownPerson or ErrUnknownMovie when either side is missing so callers
// can skip dangling dataset rows without aborting ingestion.
func (s *Store) AddMembership(personID, movieID string) error {
	if _, ok := s.people[personID]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPerson, personID)
	}
	if _, ok := s.movies[movieID]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMovie, movieID)
	}
	s.personMovies[personID][movieID] = struct{}{}
	s.movieCast[movieID][personID] = struct{}{}
	return nil
}

// Person returns the person record for the given id.
func (s *Store) Person(id string) (domain.Person, bool) {
	p, ok := s.people[id]
	return p, ok
}

// Movie returns the movie record for the given id.
func (s *Store) Movie(id string) (domain.Movie, bool) {
	m, ok := s.movies[id]
	return m, ok
}

// CountPeople returns the number of people loaded.
func (s *Store) CountPeople() int { return len(s.people) }

// CountMovies returns the number of movies loaded.
func (s *Store) CountMovies() int { return len(s.movies) }

// ResolveName returns the ids of every person whose display name matches the
// given name, case-insensitively. Zero matches means not found; more than one
// means the caller has to disambiguate. The ids are sorted so candidate
// listings are stable.
func (s *Store) ResolveName(name string) []string {
	set := s.names[strings.ToLower(strings.TrimSpace(name))]
	if len(set) == 0 {
		return nil
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Candidates returns summaries for every person matching the name, in the
// same order as ResolveName.
func (s *Store) Candidates(name string) []domain.PersonSummary {
	ids := s.ResolveName(name)
	if len(ids) == 0 {
		return nil
	}
	out := make([]domain.PersonSummary, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.summarize(s.people[id]))
	}
	return out
}

// Neighbors computes the one-hop co-star set for a person: every member of
// every movie the person appears in, paired with the linking movie. The
// person themself is included when present in a cast; filtering self-pairs is
// the caller's concern. Iteration order is unspecified.
func (s *Store) Neighbors(personID string) []domain.CoStar {
	seen := make(map[domain.CoStar]struct{})
	for movieID := range s.personMovies[personID] {
		for memberID := range s.movieCast[movieID] {
			seen[domain.CoStar{MovieID: movieID, PersonID: memberID}] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]domain.CoStar, 0, len(seen))
	for co := range seen {
		out = append(out, co)
	}
	return out
}

// ListOptions defines filters and pagination for listing endpoints.
type ListOptions struct {
	Offset int
	Limit  int
	Search string
}

// ListPeople returns people whose name contains the search term, paginated
// and sorted by id.
func (s *Store) ListPeople(opts ListOptions) domain.PersonListResult {
	search := strings.ToLower(strings.TrimSpace(opts.Search))

	var matched []domain.Person
	for _, p := range s.people {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	page := paginate(len(matched), opts)
	items := make([]domain.PersonSummary, 0, page.end-page.start)
	for _, p := range matched[page.start:page.end] {
		items = append(items, s.summarize(p))
	}
	return domain.PersonListResult{Items: items, Total: int64(len(matched))}
}

// ListMovies returns movies whose title contains the search term, paginated
// and sorted by id.
func (s *Store) ListMovies(opts ListOptions) domain.MovieListResult {
	search := strings.ToLower(strings.TrimSpace(opts.Search))

	var matched []domain.Movie
	for _, m := range s.movies {
		if search != "" && !strings.Contains(strings.ToLower(m.Title), search) {
			continue
		}
		matched = append(matched, m)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	page := paginate(len(matched), opts)
	items := make([]domain.MovieSummary, 0, page.end-page.start)
	for _, m := range matched[page.start:page.end] {
		items = append(items, domain.MovieSummary{
			ID:       m.ID,
			Title:    m.Title,
			Year:     m.Year,
			CastSize: len(s.movieCast[m.ID]),
		})
	}
	return domain.MovieListResult{Items: items, Total: int64(len(matched))}
}

// People returns every person record sorted by id, for export purposes.
func (s *Store) People() []domain.Person {
	out := make([]domain.Person, 0, len(s.people))
	for _, p := range s.people {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Movies returns every movie record sorted by id, for export purposes.
func (s *Store) Movies() []domain.Movie {
	out := make([]domain.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Cast returns the member ids of a movie sorted ascending.
func (s *Store) Cast(movieID string) []string {
	set := s.movieCast[movieID]
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s *Store) summarize(p domain.Person) domain.PersonSummary {
	return domain.PersonSummary{
		ID:         p.ID,
		Name:       p.Name,
		BirthYear:  p.BirthYear,
		MovieCount: len(s.personMovies[p.ID]),
	}
}

type pageBounds struct {
	start int
	end   int
}

func paginate(total int, opts ListOptions) pageBounds {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return pageBounds{start: offset, end: end}
}
