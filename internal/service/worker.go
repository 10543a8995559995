package service

import (
	"context"
	"errors"
	"sync"

	"github.com/vanshika/costar/backend/internal/domain"
)

// TaskError accumulates multiple errors produced during bulk loading.
type TaskError struct {
	Errors []error
}

func (e *TaskError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := "multiple errors:"
	for _, err := range e.Errors {
		msg += " " + err.Error() + ";"
	}
	return msg
}

func (e *TaskError) append(err error) {
	if err == nil {
		return
	}
	e.Errors = append(e.Errors, err)
}

func (e *TaskError) asError() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// GraphWriter is the persistence contract required when mirroring the
// dataset into a graph database.
type GraphWriter interface {
	UpsertPerson(ctx context.Context, p domain.Person) error
	UpsertMovie(ctx context.Context, m domain.Movie, cast []string) error
}

// MovieExport pairs a movie with its full cast for bulk loading.
type MovieExport struct {
	Movie domain.Movie
	Cast  []string
}

// BulkLoader pushes a loaded dataset into a graph database using worker
// pools. Individual failures are collected rather than aborting the run;
// cancellation stops it early.
type BulkLoader struct {
	writer  GraphWriter
	workers int
}

// NewBulkLoader creates a BulkLoader with the provided concurrency.
func NewBulkLoader(writer GraphWriter, workers int) *BulkLoader {
	if workers <= 0 {
		workers = 4
	}
	return &BulkLoader{
		writer:  writer,
		workers: workers,
	}
}

// LoadPeople upserts the provided people concurrently.
func (bl *BulkLoader) LoadPeople(ctx context.Context, people []domain.Person) error {
	return bl.run(ctx, len(people), func(idx int) error {
		return bl.writer.UpsertPerson(ctx, people[idx])
	})
}

// LoadMovies upserts the provided movies and their cast edges concurrently.
func (bl *BulkLoader) LoadMovies(ctx context.Context, movies []MovieExport) error {
	return bl.run(ctx, len(movies), func(idx int) error {
		return bl.writer.UpsertMovie(ctx, movies[idx].Movie, movies[idx].Cast)
	})
}

func (bl *BulkLoader) run(ctx context.Context, total int, workerFn func(idx int) error) error {
	if total == 0 {
		return nil
	}
	indexCh := make(chan int)
	errCh := make(chan error, total)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for idx := range indexCh {
			if err := workerFn(idx); err != nil {
				select {
				case errCh <- err:
				case <-ctx.Done():
					return
				}
			}
		}
	}

	for i := 0; i < bl.workers; i++ {
		wg.Add(1)
		go worker()
	}

Loop:
	for i := 0; i < total; i++ {
		select {
		case indexCh <- i:
		case <-ctx.Done():
			break Loop
		}
	}
	close(indexCh)
	wg.Wait()
	close(errCh)

	var taskErr TaskError
	for err := range errCh {
		if err == nil {
			continue
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		taskErr.append(err)
	}
	return taskErr.asError()
}
