// Command cluster runs one batch clustering pass over the stored posts
// and prints the ranked topics. Definitions come from a JSON file when
// given, otherwise from the keyword lists of stored topics.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/feedradar/radar/pkg/config"
	"github.com/feedradar/radar/pkg/lib/log"
	"github.com/feedradar/radar/pkg/posts"
	"github.com/feedradar/radar/pkg/storage/postgres"
	"github.com/feedradar/radar/pkg/topics"
	"github.com/joho/godotenv"
)

func main() {
	definitionsPath := flag.String("definitions", "", "path to a JSON file with topic definitions")
	flag.Parse()

	if err := run(*definitionsPath); err != nil {
		panic(err)
	}
}

func run(definitionsPath string) error {
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

	postRepo := postgres.NewPostRepository(db)
	topicRepo := postgres.NewTopicRepository(db)
	edgeRepo := postgres.NewEdgeRepository(db)

	postRegistry := posts.NewRegistry(logger, postRepo)
	topicRegistry := topics.NewRegistry(logger, topicRepo, edgeRepo, postRepo)
	clusterer := topics.NewClusterer(logger, postRegistry, topicRegistry, &cfg.Cluster)

	defs, err := loadDefinitions(ctx, definitionsPath, topicRegistry)
	if err != nil {
		return err
	}

	ranked, err := clusterer.Run(ctx, defs)
	if err != nil {
		return fmt.Errorf("run clustering pass: %w", err)
	}

	for _, cluster := range ranked {
		logger.Info().
			Str("topic", cluster.Definition.Name).
			Int("importance", cluster.Importance).
			Int("post_count", len(cluster.Posts)).
			Msg("Ranked topic")
	}

	return nil
}

func loadDefinitions(ctx context.Context, path string, registry *topics.Registry) ([]topics.Definition, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read definitions file: %w", err)
		}

		var defs []topics.Definition
		if err := json.Unmarshal(data, &defs); err != nil {
			return nil, fmt.Errorf("parse definitions file: %w", err)
		}
		return defs, nil
	}

	stored, err := registry.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	defs := make([]topics.Definition, 0, len(stored))
	for _, t := range stored {
		if len(t.Keywords) == 0 {
			continue
		}
		defs = append(defs, topics.Definition{
			Name:     t.Name,
			Keywords: t.Keywords,
			Summary:  t.Summary,
		})
	}

	return defs, nil
}
