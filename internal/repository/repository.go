package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/vanshika/costar/backend/internal/domain"
	"github.com/vanshika/costar/backend/internal/graph"
)

// Repository mirrors the co-star dataset into a graph database and answers
// shortest-path queries with the engine's native shortestPath support. It is
// the alternative backend for deployments that already run a graph database;
// the in-memory BFS engine remains the reference implementation.
type Repository struct {
	client graph.Client
}

// New instantiates a Repository backed by the supplied graph client.
func New(client graph.Client) *Repository {
	return &Repository{client: client}
}

// UpsertPerson ensures a person node exists with the latest properties.
func (r *Repository) UpsertPerson(ctx context.Context, p domain.Person) error {
	if p.ID == "" {
		return errors.New("person id is required")
	}

	var birthYear any
	if p.BirthYear != nil {
		birthYear = *p.BirthYear
	}

	params := map[string]any{
		"personId":  p.ID,
		"name":      p.Name,
		"birthYear": birthYear,
	}
	if _, err := r.client.ExecuteWrite(ctx, upsertPersonCypher, params); err != nil {
		return fmt.Errorf("upsert person %s: %w", p.ID, err)
	}
	return nil
}

// UpsertMovie ensures a movie node exists and every cast member is linked to
// it through a STARRED_IN edge. Cast members are merged as bare person nodes
// when they have not been upserted yet; a later UpsertPerson fills in their
// properties.
func (r *Repository) UpsertMovie(ctx context.Context, m domain.Movie, cast []string) error {
	if m.ID == "" {
		return errors.New("movie id is required")
	}

	params := map[string]any{
		"movieId": m.ID,
		"title":   m.Title,
		"year":    m.Year,
		"cast":    castParam(cast),
	}
	if _, err := r.client.ExecuteWrite(ctx, upsertMovieCypher, params); err != nil {
		return fmt.Errorf("upsert movie %s: %w", m.ID, err)
	}
	return nil
}

// FindPath returns the shortest connection between two people using the
// graph engine's shortestPath. Implements the same contract as the in-memory
// search engine: not-connected is a valid result, not an error.
func (r *Repository) FindPath(ctx context.Context, sourceID, targetID string) (domain.Path, error) {
	if sourceID == "" || targetID == "" {
		return domain.Path{}, errors.New("source and target person ids are required")
	}

	path := domain.Path{SourceID: sourceID, TargetID: targetID}
	if sourceID == targetID {
		path.Found = true
		return path, nil
	}

	res, err := r.client.ExecuteRead(ctx, shortestPathCypher, map[string]any{
		"sourceId": sourceID,
		"targetId": targetID,
	})
	if err != nil {
		return domain.Path{}, fmt.Errorf("shortest path query: %w", err)
	}
	if len(res.Records) == 0 {
		return path, nil
	}

	nodesRaw, ok := res.Records[0]["nodes"].([]any)
	if !ok {
		return domain.Path{}, fmt.Errorf("shortest path query: malformed nodes column")
	}

	// The path alternates person and movie nodes; each (movie, person)
	// pair after the source is one hop.
	for i := 1; i+1 < len(nodesRaw); i += 2 {
		movie, ok1 := nodesRaw[i].(map[string]any)
		person, ok2 := nodesRaw[i+1].(map[string]any)
		if !ok1 || !ok2 {
			return domain.Path{}, fmt.Errorf("shortest path query: malformed path node")
		}
		path.Steps = append(path.Steps, domain.PathStep{
			MovieID:  toString(movie["id"]),
			PersonID: toString(person["id"]),
		})
	}
	path.Found = true
	return path, nil
}

// VerifyConnectivity probes the underlying graph connection.
func (r *Repository) VerifyConnectivity(ctx context.Context) error {
	return r.client.VerifyConnectivity(ctx)
}

func castParam(cast []string) []any {
	out := make([]any, 0, len(cast))
	for _, id := range cast {
		if id == "" {
			continue
		}
		out = append(out, id)
	}
	return out
}

func toString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case []byte:
		return string(v)
	default:
		return ""
	}
}

const upsertPersonCypher = `
MERGE (p:Person {personId: $personId})
SET p.name = $name,
    p.birthYear = $birthYear
RETURN p.personId AS personId
`

const upsertMovieCypher = `
MERGE (m:Movie {movieId: $movieId})
SET m.title = $title,
    m.year = $year
FOREACH (pid IN $cast |
	MERGE (p:Person {personId: pid})
	MERGE (p)-[:STARRED_IN]->(m)
)
RETURN m.movieId AS movieId
`

// The relationship bound of 24 caps the search at twelve degrees of
// separation, far beyond any realistic co-star distance, and keeps the
// planner from unbounded expansion on disconnected inputs.
const shortestPathCypher = `
MATCH (source:Person {personId: $sourceId}), (target:Person {personId: $targetId})
MATCH path = shortestPath((source)-[:STARRED_IN*..24]-(target))
RETURN [n IN nodes(path) | {
  id: coalesce(n.personId, n.movieId),
  kind: head(labels(n))
}] AS nodes,
length(path) / 2 AS hops
`
