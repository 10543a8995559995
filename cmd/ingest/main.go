package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vanshika/costar/backend/internal/config"
	"github.com/vanshika/costar/backend/internal/graph"
	"github.com/vanshika/costar/backend/internal/logging"
	"github.com/vanshika/costar/backend/internal/repository"
	"github.com/vanshika/costar/backend/internal/service"
	"github.com/vanshika/costar/backend/internal/store"
)

func main() {
	var (
		datasetDir = flag.String("dataset-dir", "", "Directory containing people.csv, movies.csv, and stars.csv (defaults to DATASET_DIR)")
		workers    = flag.Int("workers", 4, "Number of concurrent workers for ingestion")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging).With("component", "ingest")

	dir := *datasetDir
	if dir == "" {
		dir = cfg.Dataset.Dir
	}

	dataset, warnings, err := store.LoadDirectory(dir)
	if err != nil {
		logger.Error("failed to load dataset", "error", err, "dir", dir)
		os.Exit(1)
	}
	for _, warning := range warnings {
		logger.Warn("skipped dataset row", "file", warning.File, "line", warning.Line, "reason", warning.Reason)
	}
	if dataset.CountPeople() == 0 {
		logger.Error("dataset contains no people", "dir", dir)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	graphClient, err := buildGraphClient(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to create graph client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := graphClient.Close(context.Background()); err != nil {
			logger.Warn("closing graph client failed", "error", err)
		}
	}()

	repo := repository.New(graphClient)
	loader := service.NewBulkLoader(repo, *workers)

	people := dataset.People()
	movies := dataset.Movies()
	exports := make([]service.MovieExport, 0, len(movies))
	for _, m := range movies {
		exports = append(exports, service.MovieExport{Movie: m, Cast: dataset.Cast(m.ID)})
	}

	start := time.Now()
	logger.Info("loading people", "count", len(people), "workers", *workers)
	if err := loader.LoadPeople(ctx, people); err != nil {
		logger.Error("people load failed", "error", err)
		os.Exit(1)
	}

	logger.Info("loading movies", "count", len(exports))
	if err := loader.LoadMovies(ctx, exports); err != nil {
		logger.Error("movie load failed", "error", err)
		os.Exit(1)
	}

	logger.Info("ingestion complete", "duration", time.Since(start).String(), "people", len(people), "movies", len(exports))
}

func buildGraphClient(ctx context.Context, logger *slog.Logger, cfg config.Config) (graph.Client, error) {
	if cfg.Graph.URI == "" {
		return nil, fmt.Errorf("GRAPH_URI is required for ingestion")
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
		return nil, err
	}
	logger.Info("connected to graph", "uri", cfg.Graph.URI, "database", cfg.Graph.Database)
	return client, nil
}
