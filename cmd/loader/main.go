// Command loader bulk-inserts a TMDB crawl dump (JSON array of movies) into
// the movie catalog tables. Re-running it on the same file is safe: movies
// are upserted, catalog rows are insert-if-absent.
//
// Usage:
//
//	loader path/to/movies.json
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	movieapp "github.com/moviesir-api/internal/application/movie"
	"github.com/moviesir-api/internal/config"
	"github.com/moviesir-api/internal/domain"
	"github.com/moviesir-api/internal/infrastructure/dynamo"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: loader <movies.json>")
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	records, err := loadRecords(os.Args[1])
	if err != nil {
		log.Fatalf("load input: %v", err)
	}
	log.Printf("loaded %d movies from %s", len(records), os.Args[1])

	cfg := config.Load()
	client := dynamo.NewClient(cfg)
	ctx := context.Background()
	dynamo.Bootstrap(ctx, client, cfg.DynamoTables)

	repo := dynamo.NewMovieRepo(client, cfg.DynamoTables.Movies, cfg.DynamoTables.Genres, cfg.DynamoTables.Providers)
	svc := movieapp.NewService(repo)

	stats, err := svc.Ingest(ctx, records)
	if err != nil {
		log.Fatalf("ingest: %v", err)
	}
	printStats(stats)
}

func loadRecords(path string) ([]domain.MovieRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var records []domain.MovieRecord
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

func printStats(stats *movieapp.IngestStats) {
	fmt.Println("============================================================")
	fmt.Println("movie ingest finished")
	fmt.Printf("total movies:    %d\n", stats.Total)
	fmt.Printf("succeeded:       %d\n", stats.Succeeded)
	fmt.Printf("failed:          %d\n", stats.Failed)
	fmt.Printf("new genres:      %d\n", stats.Genres)
	fmt.Printf("new providers:   %d\n", stats.Providers)
	if stats.Total > 0 {
		fmt.Printf("success rate:    %.1f%%\n", float64(stats.Succeeded)/float64(stats.Total)*100)
	}
	fmt.Println("============================================================")
}
