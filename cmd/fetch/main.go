// Command fetch pulls an RSS/Atom feed and ingests its items as posts.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/feedradar/radar/pkg/config"
	"github.com/feedradar/radar/pkg/lib/log"
	"github.com/feedradar/radar/pkg/posts"
	"github.com/feedradar/radar/pkg/sources/rss"
	"github.com/feedradar/radar/pkg/storage/postgres"
	"github.com/joho/godotenv"
)

func main() {
	feedURL := flag.String("feed", "", "feed URL to fetch")
	flag.Parse()

	if err := run(*feedURL); err != nil {
		panic(err)
	}
}

func run(feedURL string) error {
	if feedURL == "" {
		return fmt.Errorf("missing -feed flag")
	}

	err := godotenv.Load()
	if err != nil {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := log.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	ctx := context.Background()

	db := postgres.NewDB(&cfg.DB)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	fetcher := rss.NewFetcher(logger)
	inputs, err := fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return fmt.Errorf("fetch feed: %w", err)
	}

	registry := posts.NewRegistry(logger, postgres.NewPostRepository(db))
	results, err := registry.Ingest(ctx, inputs)
	if err != nil {
		return fmt.Errorf("ingest posts: %w", err)
	}

	inserted := 0
	for _, res := range results {
		if res.Status == posts.IngestStatusInserted {
			inserted++
		}
	}

	logger.Info().
		Str("feed_url", feedURL).
		Int("inserted", inserted).
		Int("skipped", len(results)-inserted).
		Msg("Ingested feed items")

	return nil
}
