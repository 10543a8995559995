package server

import (
	"context"
	"fmt"

	"github.com/vanshika/costar/backend/internal/graph"
	"github.com/vanshika/costar/backend/internal/store"
)

// HealthService defines behaviour for readiness probes.
type HealthService interface {
	Probe(ctx context.Context) error
}

// DatasetHealthService reports the dataset as healthy once people and movies
// are loaded.
type DatasetHealthService struct {
	Store *store.Store
}

// Probe implements the HealthService interface.
func (s DatasetHealthService) Probe(context.Context) error {
	if s.Store == nil {
		return fmt.Errorf("dataset not loaded")
	}
	if s.Store.CountPeople() == 0 || s.Store.CountMovies() == 0 {
		return fmt.Errorf("dataset is empty: %d people, %d movies", s.Store.CountPeople(), s.Store.CountMovies())
	}
	return nil
}

// GraphHealthService verifies graph connectivity as part of health checks.
type GraphHealthService struct {
	Client graph.Client
}

// Probe implements the HealthService interface.
func (s GraphHealthService) Probe(ctx context.Context) error {
	if s.Client == nil {
		return nil
	}
	return s.Client.VerifyConnectivity(ctx)
}

// CompositeHealthService probes every configured backend in order.
type CompositeHealthService []HealthService

// Probe implements the HealthService interface.
func (s CompositeHealthService) Probe(ctx context.Context) error {
	for _, probe := range s {
		if probe == nil {
			continue
		}
		if err := probe.Probe(ctx); err != nil {
			return err
		}
	}
	return nil
}
