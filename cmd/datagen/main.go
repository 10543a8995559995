package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/vanshika/costar/backend/internal/generator"
)

func main() {
	cfg := generator.DefaultConfig()
	var (
		people         = flag.Int("people", cfg.NumPeople, "number of people to generate")
		movies         = flag.Int("movies", cfg.NumMovies, "number of movies to generate")
		avgCast        = flag.Int("avg-cast", cfg.AvgCastSize, "average cast size per movie")
		dupNameChance  = flag.Float64("dup-name-chance", cfg.DuplicateNameChance, "probability of reusing an existing person name")
		danglingChance = flag.Float64("dangling-chance", cfg.DanglingStarChance, "probability of a star row referencing an unknown person")
		seed           = flag.Int64("seed", cfg.Seed, "random seed for deterministic generation")
		outputDir      = flag.String("output-dir", "data", "directory to write people.csv, movies.csv, and stars.csv")
		writeStdout    = flag.Bool("stdout", false, "write combined dataset as JSON to stdout instead of files")
	)
	flag.Parse()

	genCfg := generator.Config{
		NumPeople:           *people,
		NumMovies:           *movies,
		AvgCastSize:         *avgCast,
		DuplicateNameChance: clampProbability(*dupNameChance),
		DanglingStarChance:  clampProbability(*danglingChance),
		Seed:                *seed,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	gen := generator.New(genCfg)
	dataset, err := gen.Generate(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	if *writeStdout {
		if err := json.NewEncoder(os.Stdout).Encode(dataset); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write dataset to stdout: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := generator.WriteDataset(dataset, *outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write dataset: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "Generated %d people, %d movies, and %d star rows into %s\n",
		len(dataset.People), len(dataset.Movies), len(dataset.Stars), *outputDir)
}

func clampProbability(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
