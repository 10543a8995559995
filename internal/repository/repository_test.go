package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vanshika/costar/backend/internal/domain"
	"github.com/vanshika/costar/backend/internal/graph"
)

func intPtr(v int) *int { return &v }

func TestUpsertPersonRecordsQuery(t *testing.T) {
	client := graph.NewMemoryClient()
	repo := New(client)

	err := repo.UpsertPerson(context.Background(), domain.Person{
		ID:        "102",
		Name:      "Kevin Bacon",
		BirthYear: intPtr(1958),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	calls := client.WriteCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 write call, got %d", len(calls))
	}
	if !strings.Contains(calls[0].Query, "MERGE (p:Person") {
		t.Fatalf("unexpected query: %s", calls[0].Query)
	}
	if calls[0].Params["personId"] != "102" {
		t.Fatalf("expected personId param 102, got %v", calls[0].Params["personId"])
	}
	if calls[0].Params["birthYear"] != 1958 {
		t.Fatalf("expected birthYear param 1958, got %v", calls[0].Params["birthYear"])
	}
}

func TestUpsertPersonNilBirthYear(t *testing.T) {
	client := graph.NewMemoryClient()
	repo := New(client)

	if err := repo.UpsertPerson(context.Background(), domain.Person{ID: "1", Name: "A"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	calls := client.WriteCalls()
	if calls[0].Params["birthYear"] != nil {
		t.Fatalf("expected nil birthYear param, got %v", calls[0].Params["birthYear"])
	}
}

func TestUpsertPersonRequiresID(t *testing.T) {
	repo := New(graph.NewMemoryClient())
	if err := repo.UpsertPerson(context.Background(), domain.Person{Name: "No ID"}); err == nil {
		t.Fatalf("expected an error for a person without an id")
	}
}

func TestUpsertMovieLinksCast(t *testing.T) {
	client := graph.NewMemoryClient()
	repo := New(client)

	err := repo.UpsertMovie(context.Background(), domain.Movie{
		ID:    "104257",
		Title: "A Few Good Men",
		Year:  1992,
	}, []string{"102", "129", ""})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	calls := client.WriteCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 write call, got %d", len(calls))
	}
	if !strings.Contains(calls[0].Query, "STARRED_IN") {
		t.Fatalf("expected cast linking in query, got %s", calls[0].Query)
	}

	cast, ok := calls[0].Params["cast"].([]any)
	if !ok {
		t.Fatalf("expected cast param to be a list, got %T", calls[0].Params["cast"])
	}
	if len(cast) != 2 {
		t.Fatalf("empty cast ids should be dropped, got %v", cast)
	}
}

func TestFindPathParsesAlternatingNodes(t *testing.T) {
	client := graph.NewMemoryClient()
	client.PushReadResult(graph.Result{Records: []graph.Record{{
		"nodes": []any{
			map[string]any{"id": "1", "kind": "Person"},
			map[string]any{"id": "10", "kind": "Movie"},
			map[string]any{"id": "2", "kind": "Person"},
			map[string]any{"id": "20", "kind": "Movie"},
			map[string]any{"id": "3", "kind": "Person"},
		},
		"hops": int64(2),
	}}})
	repo := New(client)

	path, err := repo.FindPath(context.Background(), "1", "3")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !path.Found {
		t.Fatalf("expected the path to be found")
	}
	if path.Hops() != 2 {
		t.Fatalf("expected 2 hops, got %d", path.Hops())
	}

	want := []domain.PathStep{
		{MovieID: "10", PersonID: "2"},
		{MovieID: "20", PersonID: "3"},
	}
	for i, step := range path.Steps {
		if step != want[i] {
			t.Fatalf("step %d: expected %v, got %v", i, want[i], step)
		}
	}
}

func TestFindPathNotConnected(t *testing.T) {
	repo := New(graph.NewMemoryClient())

	path, err := repo.FindPath(context.Background(), "1", "99")
	if err != nil {
		t.Fatalf("a missing connection is not an error, got %v", err)
	}
	if path.Found {
		t.Fatalf("expected Found to be false for disconnected people")
	}
	if len(path.Steps) != 0 {
		t.Fatalf("expected no steps, got %v", path.Steps)
	}
}

func TestFindPathSameSourceAndTarget(t *testing.T) {
	client := graph.NewMemoryClient()
	repo := New(client)

	path, err := repo.FindPath(context.Background(), "1", "1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !path.Found || path.Hops() != 0 {
		t.Fatalf("expected a found zero-hop path, got %+v", path)
	}
	if len(client.ReadCalls()) != 0 {
		t.Fatalf("same source and target must not hit the graph")
	}
}

func TestFindPathPropagatesQueryErrors(t *testing.T) {
	boom := errors.New("bolt connection reset")
	repo := New(graph.NewMemoryClient().WithError(boom))

	_, err := repo.FindPath(context.Background(), "1", "2")
	if !errors.Is(err, boom) {
		t.Fatalf("expected the driver error to be wrapped, got %v", err)
	}
}
