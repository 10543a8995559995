package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/vanshika/costar/backend/internal/domain"
	"github.com/vanshika/costar/backend/internal/store"
)

// ErrPersonNotFound indicates a search endpoint was asked about a person id
// the dataset does not contain.
var ErrPersonNotFound = fmt.Errorf("person not found")

// Catalog is the dataset contract required by the path service.
type Catalog interface {
	Person(id string) (domain.Person, bool)
	Movie(id string) (domain.Movie, bool)
	ResolveName(name string) []string
	Candidates(name string) []domain.PersonSummary
	ListPeople(opts store.ListOptions) domain.PersonListResult
	ListMovies(opts store.ListOptions) domain.MovieListResult
}

// PathFinder computes the shortest chain of shared movies between two people.
// Both the in-memory search engine and the graph-database repository satisfy
// this contract.
type PathFinder interface {
	FindPath(ctx context.Context, sourceID, targetID string) (domain.Path, error)
}

// PathService orchestrates name resolution, validation, and path search, and
// turns raw id paths into presentable steps.
type PathService struct {
	catalog Catalog
	finder  PathFinder
}

// NewPathService constructs a PathService.
func NewPathService(catalog Catalog, finder PathFinder) *PathService {
	return &PathService{catalog: catalog, finder: finder}
}

// PaginationMeta captures pagination metadata returned to API clients.
type PaginationMeta struct {
	Page       int
	PageSize   int
	TotalItems int64
	TotalPages int
}

// PeoplePage represents paginated people with metadata.
type PeoplePage struct {
	Items      []domain.PersonSummary
	Pagination PaginationMeta
}

// MoviesPage represents paginated movies with metadata.
type MoviesPage struct {
	Items      []domain.MovieSummary
	Pagination PaginationMeta
}

// ListPeopleParams defines filters for listing people.
type ListPeopleParams struct {
	Page     int
	PageSize int
	Search   string
}

// ListMoviesParams defines filters for listing movies.
type ListMoviesParams struct {
	Page     int
	PageSize int
	Search   string
}

// StepDetail is one hop of a path enriched with display names.
type StepDetail struct {
	MovieID    string
	MovieTitle string
	PersonID   string
	PersonName string
}

// ListPeople retrieves paginated people matching the search term.
func (s *PathService) ListPeople(_ context.Context, params ListPeopleParams) (PeoplePage, error) {
	page, pageSize := normalizePagination(params.Page, params.PageSize)
	result := s.catalog.ListPeople(store.ListOptions{
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
		Search: params.Search,
	})
	return PeoplePage{
		Items:      result.Items,
		Pagination: buildPaginationMeta(page, pageSize, result.Total),
	}, nil
}

// ListMovies retrieves paginated movies matching the search term.
func (s *PathService) ListMovies(_ context.Context, params ListMoviesParams) (MoviesPage, error) {
	page, pageSize := normalizePagination(params.Page, params.PageSize)
	result := s.catalog.ListMovies(store.ListOptions{
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
		Search: params.Search,
	})
	return MoviesPage{
		Items:      result.Items,
		Pagination: buildPaginationMeta(page, pageSize, result.Total),
	}, nil
}

// Resolve returns every person whose name matches, case-insensitively. An
// empty slice means the name is unknown; more than one entry means the caller
// has to pick an id before searching.
func (s *PathService) Resolve(_ context.Context, name string) ([]domain.PersonSummary, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	return s.catalog.Candidates(name), nil
}

// ShortestPath validates both endpoints and delegates to the configured
// finder. A disconnected pair is a successful result with Found unset, not an
// error.
func (s *PathService) ShortestPath(ctx context.Context, sourceID, targetID string) (domain.Path, error) {
	sourceID = strings.TrimSpace(sourceID)
	targetID = strings.TrimSpace(targetID)
	if sourceID == "" || targetID == "" {
		return domain.Path{}, fmt.Errorf("source and target person ids are required")
	}
	if _, ok := s.catalog.Person(sourceID); !ok {
		return domain.Path{}, fmt.Errorf("%w: %s", ErrPersonNotFound, sourceID)
	}
	if _, ok := s.catalog.Person(targetID); !ok {
		return domain.Path{}, fmt.Errorf("%w: %s", ErrPersonNotFound, targetID)
	}
	return s.finder.FindPath(ctx, sourceID, targetID)
}

// Describe enriches a path's steps with movie titles and person names. Ids
// missing from the catalog keep their raw id as the display name.
func (s *PathService) Describe(path domain.Path) []StepDetail {
	details := make([]StepDetail, 0, len(path.Steps))
	for _, step := range path.Steps {
		detail := StepDetail{
			MovieID:    step.MovieID,
			MovieTitle: step.MovieID,
			PersonID:   step.PersonID,
			PersonName: step.PersonID,
		}
		if m, ok := s.catalog.Movie(step.MovieID); ok {
			detail.MovieTitle = m.Title
		}
		if p, ok := s.catalog.Person(step.PersonID); ok {
			detail.PersonName = p.Name
		}
		details = append(details, detail)
	}
	return details
}

// Narrate renders a found path as one line per hop, naming the pair of
// people and the movie that links them.
func (s *PathService) Narrate(path domain.Path) []string {
	details := s.Describe(path)
	lines := make([]string, 0, len(details))

	prev := path.SourceID
	if p, ok := s.catalog.Person(path.SourceID); ok {
		prev = p.Name
	}
	for i, d := range details {
		lines = append(lines, fmt.Sprintf("%d: %s and %s starred in %s", i+1, prev, d.PersonName, d.MovieTitle))
		prev = d.PersonName
	}
	return lines
}

func normalizePagination(page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 50
	}
	if pageSize > 200 {
		pageSize = 200
	}
	return page, pageSize
}

func buildPaginationMeta(page, pageSize int, total int64) PaginationMeta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(pageSize)))
		if total > 0 && totalPages == 0 {
			totalPages = 1
		}
	}
	return PaginationMeta{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
