package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDataset(t *testing.T, people, movies, stars string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range map[string]string{
		peopleFile: people,
		moviesFile: movies,
		starsFile:  stars,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

func TestLoadDirectory(t *testing.T) {
	dir := writeDataset(t,
		"id,name,birth\n1,A,1970\n2,B,\n3,C,1985\n",
		"id,title,year\n10,Alpha,1999\n20,Beta,2004\n",
		"person_id,movie_id\n1,10\n2,10\n2,20\n3,20\n",
	)

	s, warnings, err := LoadDirectory(dir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if s.CountPeople() != 3 || s.CountMovies() != 2 {
		t.Fatalf("expected 3 people and 2 movies, got %d and %d", s.CountPeople(), s.CountMovies())
	}

	p, ok := s.Person("2")
	if !ok {
		t.Fatalf("expected person 2 to be loaded")
	}
	if p.BirthYear != nil {
		t.Fatalf("blank birth year should load as nil, got %v", *p.BirthYear)
	}

	neighbors := s.Neighbors("2")
	if len(neighbors) != 4 {
		t.Fatalf("expected 4 neighbor pairs for person 2, got %d", len(neighbors))
	}
}

func TestLoadDirectorySkipsDanglingMemberships(t *testing.T) {
	dir := writeDataset(t,
		"id,name,birth\n1,A,1970\n2,B,1980\n",
		"id,title,year\n10,Alpha,1999\n",
		"person_id,movie_id\n1,10\n99,10\n2,55\n2,10\n",
	)

	s, warnings, err := LoadDirectory(dir)
	if err != nil {
		t.Fatalf("dangling memberships must not abort the load, got %v", err)
	}
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", warnings)
	}

	// The valid portion of the data still searches correctly.
	neighbors := s.Neighbors("1")
	found := false
	for _, co := range neighbors {
		if co.PersonID == "2" && co.MovieID == "10" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 1 and 2 to remain linked via movie 10, got %v", neighbors)
	}
}

func TestLoadDirectorySkipsMalformedRows(t *testing.T) {
	dir := writeDataset(t,
		"id,name,birth\n1,A,1970\n,MissingID,1950\n2,B,not-a-year\n",
		"id,title,year\n10,Alpha,1999\n20,Beta\n",
		"person_id,movie_id\n1,10\n2,10\n",
	)

	s, warnings, err := LoadDirectory(dir)
	if err != nil {
		t.Fatalf("malformed rows must not abort the load, got %v", err)
	}
	if len(warnings) == 0 {
		t.Fatalf("expected warnings for malformed rows")
	}

	if _, ok := s.Person("2"); !ok {
		t.Fatalf("person with unparsable birth year should still load")
	}
	p, _ := s.Person("2")
	if p.BirthYear != nil {
		t.Fatalf("unparsable birth year should be nil, got %v", *p.BirthYear)
	}
	if s.CountPeople() != 2 {
		t.Fatalf("expected the row without an id to be skipped, got %d people", s.CountPeople())
	}
}

func TestLoadDirectoryMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, _, err := LoadDirectory(dir)
	if !errors.Is(err, ErrDatasetNotFound) {
		t.Fatalf("expected ErrDatasetNotFound, got %v", err)
	}
}

func TestLoadDirectoryMissingColumn(t *testing.T) {
	dir := writeDataset(t,
		"id,fullname\n1,A\n",
		"id,title,year\n10,Alpha,1999\n",
		"person_id,movie_id\n",
	)

	_, _, err := LoadDirectory(dir)
	if err == nil || !strings.Contains(err.Error(), "missing required column") {
		t.Fatalf("expected a missing-column error, got %v", err)
	}
}
