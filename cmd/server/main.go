package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/vanshika/costar/backend/internal/config"
	"github.com/vanshika/costar/backend/internal/graph"
	"github.com/vanshika/costar/backend/internal/logging"
	"github.com/vanshika/costar/backend/internal/repository"
	"github.com/vanshika/costar/backend/internal/search"
	"github.com/vanshika/costar/backend/internal/server"
	"github.com/vanshika/costar/backend/internal/service"
	"github.com/vanshika/costar/backend/internal/store"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)

	dataset, warnings, err := store.LoadDirectory(cfg.Dataset.Dir)
	if err != nil {
		logger.Error("failed to load dataset", "error", err, "dir", cfg.Dataset.Dir)
		os.Exit(1)
	}
	for _, warning := range warnings {
		logger.Warn("skipped dataset row", "file", warning.File, "line", warning.Line, "reason", warning.Reason)
	}
	logger.Info("dataset loaded",
		"dir", cfg.Dataset.Dir,
		"people", dataset.CountPeople(),
		"movies", dataset.CountMovies(),
		"warnings", len(warnings),
	)

	finder, graphClient, err := buildPathFinder(ctx, logger, cfg, dataset)
	if err != nil {
		logger.Error("failed to create path finder", "error", err)
		os.Exit(1)
	}
	defer func() {
		if graphClient != nil {
			if err := graphClient.Close(context.Background()); err != nil {
				logger.Warn("closing graph client failed", "error", err)
			}
		}
	}()

	pathService := service.NewPathService(dataset, finder)

	var metrics *server.Metrics
	if cfg.HTTP.MetricsEnabled {
		metrics = server.NewMetrics()
	}
	apiHandlers := server.NewAPIHandlers(logger, pathService, metrics)

	health := server.CompositeHealthService{server.DatasetHealthService{Store: dataset}}
	if graphClient != nil {
		health = append(health, server.GraphHealthService{Client: graphClient})
	}

	router := server.NewRouter(logger, server.RouterDependencies{
		Health:           health,
		API:              apiHandlers,
		Metrics:          metrics,
		AllowedOrigins:   parseAllowedOrigins(cfg.HTTP.AllowedOriginsCSV),
		AllowCredentials: true,
	})

	srv := server.New(logger, cfg.HTTP, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("server stopped unexpectedly", "error", err)
		}
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

// buildPathFinder picks the search backend: the in-memory BFS engine by
// default, or the graph database when GRAPH_URI is configured.
func buildPathFinder(ctx context.Context, logger *slog.Logger, cfg config.Config, dataset *store.Store) (service.PathFinder, graph.Client, error) {
	if cfg.Graph.URI == "" {
		logger.Info("using in-memory search engine")
		return search.NewEngine(dataset), nil, nil
	}

	opts := graph.Options{
		URI:            cfg.Graph.URI,
		Database:       cfg.Graph.Database,
		Username:       cfg.Graph.Username,
		Password:       cfg.Graph.Password,
		MaxConnections: cfg.Graph.MaxConnections,
	}
	client, err := graph.NewNeo4jClient(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("using graph database path finder", "uri", cfg.Graph.URI, "database", cfg.Graph.Database)
	return repository.New(client), client, nil
}

func parseAllowedOrigins(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	var origins []string
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		origins = append(origins, origin)
	}
	return origins
}
