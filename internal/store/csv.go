package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vanshika/costar/backend/internal/domain"
)

const (
	peopleFile = "people.csv"
	moviesFile = "movies.csv"
	starsFile  = "stars.csv"
)

// ErrDatasetNotFound indicates a required dataset file is missing or
// unreadable. This aborts the whole load; per-row problems do not.
var ErrDatasetNotFound = errors.New("dataset file not found")

// Warning records a dataset row that was skipped during ingestion.
type Warning struct {
	File   string
	Line   int
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s:%d: %s", w.File, w.Line, w.Reason)
}

// LoadDirectory reads people.csv, movies.csv and stars.csv from the given
// directory into a fresh Store. Malformed rows and memberships referencing
// unknown ids are skipped and reported as warnings; only an unreadable file
// or a missing header column fails the load.
func LoadDirectory(dir string) (*Store, []Warning, error) {
	s := New()
	var warnings []Warning

	if err := readRows(filepath.Join(dir, peopleFile), []string{"id", "name", "birth"}, &warnings, func(line int, get func(string) string) {
		id := get("id")
		name := get("name")
		if id == "" || name == "" {
			warnings = append(warnings, Warning{File: peopleFile, Line: line, Reason: "missing id or name"})
			return
		}
		p := makePerson(id, name, get("birth"))
		if p.BirthYear == nil && get("birth") != "" {
			warnings = append(warnings, Warning{File: peopleFile, Line: line, Reason: fmt.Sprintf("unparsable birth year %q", get("birth"))})
		}
		s.AddPerson(p)
	}); err != nil {
		return nil, nil, err
	}

	if err := readRows(filepath.Join(dir, moviesFile), []string{"id", "title", "year"}, &warnings, func(line int, get func(string) string) {
		id := get("id")
		title := get("title")
		if id == "" || title == "" {
			warnings = append(warnings, Warning{File: moviesFile, Line: line, Reason: "missing id or title"})
			return
		}
		year, err := strconv.Atoi(strings.TrimSpace(get("year")))
		if err != nil {
			warnings = append(warnings, Warning{File: moviesFile, Line: line, Reason: fmt.Sprintf("unparsable year %q", get("year"))})
		}
		s.AddMovie(domain.Movie{ID: id, Title: title, Year: year})
	}); err != nil {
		return nil, nil, err
	}

	if err := readRows(filepath.Join(dir, starsFile), []string{"person_id", "movie_id"}, &warnings, func(line int, get func(string) string) {
		if err := s.AddMembership(get("person_id"), get("movie_id")); err != nil {
			warnings = append(warnings, Warning{File: starsFile, Line: line, Reason: err.Error()})
		}
	}); err != nil {
		return nil, nil, err
	}

	return s, warnings, nil
}

func makePerson(id, name, birth string) domain.Person {
	p := domain.Person{ID: id, Name: name}
	if y, err := strconv.Atoi(strings.TrimSpace(birth)); err == nil {
		p.BirthYear = &y
	}
	return p
}

// readRows opens a CSV file, validates that the header carries the required
// columns, and invokes handle for every data row. Rows the csv reader cannot
// parse are skipped with a warning.
func readRows(path string, columns []string, warnings *[]Warning, handle func(line int, get func(string) string)) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	name := filepath.Base(path)
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read header of %s: %w", path, err)
	}
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(strings.ToLower(col))] = i
	}
	for _, col := range columns {
		if _, ok := index[col]; !ok {
			return fmt.Errorf("%s: missing required column %q", path, col)
		}
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			*warnings = append(*warnings, Warning{File: name, Line: line, Reason: err.Error()})
			continue
		}
		get := func(col string) string {
			i := index[col]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}
		if short(record, index, columns) {
			*warnings = append(*warnings, Warning{File: name, Line: line, Reason: "row has too few fields"})
			continue
		}
		handle(line, get)
	}
}

func short(record []string, index map[string]int, columns []string) bool {
	for _, col := range columns {
		if index[col] >= len(record) {
			return true
		}
	}
	return false
}
