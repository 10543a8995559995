package generator

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// WriteDataset serializes the dataset into people.csv, movies.csv, and
// stars.csv under the provided directory, matching the ingestion schema.
func WriteDataset(dataset Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	peopleRows := make([][]string, 0, len(dataset.People)+1)
	peopleRows = append(peopleRows, []string{"id", "name", "birth"})
	for _, p := range dataset.People {
		birth := ""
		if p.BirthYear != nil {
			birth = strconv.Itoa(*p.BirthYear)
		}
		peopleRows = append(peopleRows, []string{p.ID, p.Name, birth})
	}
	if err := writeCSV(filepath.Join(dir, "people.csv"), peopleRows); err != nil {
		return err
	}

	movieRows := make([][]string, 0, len(dataset.Movies)+1)
	movieRows = append(movieRows, []string{"id", "title", "year"})
	for _, m := range dataset.Movies {
		movieRows = append(movieRows, []string{m.ID, m.Title, strconv.Itoa(m.Year)})
	}
	if err := writeCSV(filepath.Join(dir, "movies.csv"), movieRows); err != nil {
		return err
	}

	starRows := make([][]string, 0, len(dataset.Stars)+1)
	starRows = append(starRows, []string{"person_id", "movie_id"})
	for _, s := range dataset.Stars {
		starRows = append(starRows, []string{s.PersonID, s.MovieID})
	}
	return writeCSV(filepath.Join(dir, "stars.csv"), starRows)
}

func writeCSV(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv for %s: %w", path, err)
	}
	writer.Flush()
	return writer.Error()
}
