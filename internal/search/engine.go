package search

import (
	"context"

	"github.com/vanshika/costar/backend/internal/domain"
)

// NeighborSource supplies the one-hop edges of the projected person-person
// graph. *store.Store satisfies it.
type NeighborSource interface {
	Neighbors(personID string) []domain.CoStar
}

// Engine runs unweighted shortest-path searches over a NeighborSource using
// breadth-first search. Each call owns its frontier and explored set, so a
// single Engine may serve concurrent searches as long as the underlying
// source is read-only, which it is after ingestion.
type Engine struct {
	graph NeighborSource
}

// NewEngine constructs an Engine over the given neighbor source.
func NewEngine(graph NeighborSource) *Engine {
	return &Engine{graph: graph}
}

// FindPath returns the shortest connection between two people. A search that
// drains the frontier yields Found == false and no error: absence of a path
// is an expected outcome. When source equals target the path is found with
// zero steps. The context is checked between iterations; the graph is finite
// and the explored set only grows, so the loop always terminates within
// |people| iterations even without cancellation.
func (e *Engine) FindPath(ctx context.Context, sourceID, targetID string) (domain.Path, error) {
	path := domain.Path{SourceID: sourceID, TargetID: targetID}

	frontier := NewFrontier()
	frontier.Add(&Node{State: sourceID})
	explored := make(map[string]struct{})

	for {
		if err := ctx.Err(); err != nil {
			return path, err
		}
		if frontier.IsEmpty() {
			path.Explored = len(explored)
			return path, nil
		}

		node, err := frontier.RemoveOldest()
		if err != nil {
			return path, err
		}

		if node.State == targetID {
			path.Steps = reconstruct(node)
			path.Found = true
			path.Explored = len(explored)
			return path, nil
		}

		explored[node.State] = struct{}{}

		for _, co := range e.graph.Neighbors(node.State) {
			if _, seen := explored[co.PersonID]; seen {
				continue
			}
			if frontier.ContainsState(co.PersonID) {
				continue
			}
			frontier.Add(&Node{
				State:  co.PersonID,
				Parent: node,
				Action: co.MovieID,
			})
		}
	}
}

// reconstruct walks parent links from the goal node back to the root,
// collecting one (movie, person) step per hop, then reverses the sequence so
// it reads source to target.
func reconstruct(node *Node) []domain.PathStep {
	var steps []domain.PathStep
	for node.Parent != nil {
		steps = append(steps, domain.PathStep{MovieID: node.Action, PersonID: node.State})
		node = node.Parent
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}
