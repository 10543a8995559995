package service

import (
	"context"
	"errors"
	"testing"

	"github.com/vanshika/costar/backend/internal/domain"
	"github.com/vanshika/costar/backend/internal/store"
)

type stubFinder struct {
	path  domain.Path
	err   error
	calls int
}

func (f *stubFinder) FindPath(_ context.Context, sourceID, targetID string) (domain.Path, error) {
	f.calls++
	if f.err != nil {
		return domain.Path{}, f.err
	}
	p := f.path
	p.SourceID = sourceID
	p.TargetID = targetID
	return p, nil
}

func intPtr(v int) *int { return &v }

func fixtureCatalog(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()
	s.AddPerson(domain.Person{ID: "1", Name: "Emma Watson", BirthYear: intPtr(1990)})
	s.AddPerson(domain.Person{ID: "2", Name: "Daniel Radcliffe", BirthYear: intPtr(1989)})
	s.AddPerson(domain.Person{ID: "3", Name: "Gary Oldman", BirthYear: intPtr(1958)})
	s.AddMovie(domain.Movie{ID: "10", Title: "Harry Potter", Year: 2001})
	s.AddMovie(domain.Movie{ID: "20", Title: "Darkest Hour", Year: 2017})
	for _, pair := range [][2]string{{"1", "10"}, {"2", "10"}, {"3", "20"}} {
		if err := s.AddMembership(pair[0], pair[1]); err != nil {
			t.Fatalf("failed to link %v: %v", pair, err)
		}
	}
	return s
}

func TestShortestPathValidatesEndpoints(t *testing.T) {
	finder := &stubFinder{}
	svc := NewPathService(fixtureCatalog(t), finder)

	_, err := svc.ShortestPath(context.Background(), "1", "99")
	if !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}
	_, err = svc.ShortestPath(context.Background(), "99", "1")
	if !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}
	if finder.calls != 0 {
		t.Fatalf("finder must not run for unknown ids, got %d calls", finder.calls)
	}
}

func TestShortestPathDelegatesToFinder(t *testing.T) {
	finder := &stubFinder{path: domain.Path{
		Found: true,
		Steps: []domain.PathStep{{MovieID: "10", PersonID: "2"}},
	}}
	svc := NewPathService(fixtureCatalog(t), finder)

	path, err := svc.ShortestPath(context.Background(), " 1 ", "2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !path.Found || path.Hops() != 1 {
		t.Fatalf("expected a found one-hop path, got %+v", path)
	}
	if path.SourceID != "1" {
		t.Fatalf("expected ids to be trimmed before search, got %q", path.SourceID)
	}
}

func TestResolveReturnsCandidates(t *testing.T) {
	svc := NewPathService(fixtureCatalog(t), &stubFinder{})

	candidates, err := svc.Resolve(context.Background(), "emma watson")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(candidates) != 1 || candidates[0].ID != "1" {
		t.Fatalf("expected person 1, got %v", candidates)
	}

	candidates, err = svc.Resolve(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("an unknown name is not an error, got %v", err)
	}
	if len(candidates) != 0 {
		t.Fatalf("expected no candidates, got %v", candidates)
	}

	if _, err := svc.Resolve(context.Background(), "   "); err == nil {
		t.Fatalf("expected an error for a blank name")
	}
}

func TestDescribeFallsBackToIDs(t *testing.T) {
	svc := NewPathService(fixtureCatalog(t), &stubFinder{})

	details := svc.Describe(domain.Path{
		SourceID: "1",
		TargetID: "2",
		Found:    true,
		Steps: []domain.PathStep{
			{MovieID: "10", PersonID: "2"},
			{MovieID: "404", PersonID: "405"},
		},
	})
	if details[0].MovieTitle != "Harry Potter" || details[0].PersonName != "Daniel Radcliffe" {
		t.Fatalf("expected enriched first step, got %+v", details[0])
	}
	if details[1].MovieTitle != "404" || details[1].PersonName != "405" {
		t.Fatalf("unknown ids should fall back to the raw id, got %+v", details[1])
	}
}

func TestNarrateFormatsHops(t *testing.T) {
	svc := NewPathService(fixtureCatalog(t), &stubFinder{})

	lines := svc.Narrate(domain.Path{
		SourceID: "1",
		TargetID: "3",
		Found:    true,
		Steps: []domain.PathStep{
			{MovieID: "10", PersonID: "2"},
			{MovieID: "20", PersonID: "3"},
		},
	})
	want := []string{
		"1: Emma Watson and Daniel Radcliffe starred in Harry Potter",
		"2: Daniel Radcliffe and Gary Oldman starred in Darkest Hour",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %v", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestListPeoplePagination(t *testing.T) {
	svc := NewPathService(fixtureCatalog(t), &stubFinder{})

	page, err := svc.ListPeople(context.Background(), ListPeopleParams{Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(page.Items))
	}
	if page.Pagination.TotalItems != 3 || page.Pagination.TotalPages != 2 {
		t.Fatalf("unexpected pagination meta: %+v", page.Pagination)
	}
}

func TestListMoviesSearch(t *testing.T) {
	svc := NewPathService(fixtureCatalog(t), &stubFinder{})

	page, err := svc.ListMovies(context.Background(), ListMoviesParams{Search: "darkest"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].ID != "20" {
		t.Fatalf("expected only movie 20, got %v", page.Items)
	}
}
