// Command seed loads posts, projects and topics from JSON files and
// writes them through the registries.
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
	"github.com/feedradar/radar/pkg/projects"
	"github.com/feedradar/radar/pkg/storage/postgres"
	"github.com/feedradar/radar/pkg/topics"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	postsPath := flag.String("posts", "", "path to a JSON file with posts to ingest")
	projectsPath := flag.String("projects", "", "path to a JSON file with projects to create")
	topicsPath := flag.String("topics", "", "path to a JSON file with topics to create")
	flag.Parse()

	if err := run(*postsPath, *projectsPath, *topicsPath); err != nil {
		panic(err)
	}
}

func run(postsPath, projectsPath, topicsPath string) error {
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

	if postsPath != "" {
		if err := seedPosts(ctx, logger, db, postsPath); err != nil {
			return err
		}
	}
	if projectsPath != "" {
		if err := seedProjects(ctx, logger, db, projectsPath); err != nil {
			return err
		}
	}
	if topicsPath != "" {
		if err := seedTopics(ctx, logger, db, topicsPath); err != nil {
			return err
		}
	}

	return nil
}

func seedPosts(ctx context.Context, logger *zerolog.Logger, db *postgres.DB, path string) error {
	var inputs []posts.IngestInput
	if err := readJSON(path, &inputs); err != nil {
		return err
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
		Int("inserted", inserted).
		Int("skipped", len(results)-inserted).
		Msg("Seeded posts")

	return nil
}

func seedProjects(ctx context.Context, logger *zerolog.Logger, db *postgres.DB, path string) error {
	var reqs []projects.CreateRequest
	if err := readJSON(path, &reqs); err != nil {
		return err
	}

	registry := projects.NewRegistry(
		logger,
		postgres.NewProjectRepository(db),
		postgres.NewRelevanceRepository(db),
		postgres.NewTopicRepository(db),
	)

	for _, req := range reqs {
		project, err := registry.Create(ctx, req)
		if err != nil {
			return fmt.Errorf("create project %q: %w", req.Name, err)
		}
		logger.Info().
			Str("project_id", project.ID).
			Str("name", project.Name).
			Msg("Seeded project")
	}

	return nil
}

func seedTopics(ctx context.Context, logger *zerolog.Logger, db *postgres.DB, path string) error {
	var reqs []topics.CreateRequest
	if err := readJSON(path, &reqs); err != nil {
		return err
	}

	registry := topics.NewRegistry(
		logger,
		postgres.NewTopicRepository(db),
		postgres.NewEdgeRepository(db),
		postgres.NewPostRepository(db),
	)

	for _, req := range reqs {
		topic, err := registry.Create(ctx, req)
		if err != nil {
			return fmt.Errorf("create topic %q: %w", req.Name, err)
		}
		logger.Info().
			Str("topic_id", topic.ID).
			Str("name", topic.Name).
			Msg("Seeded topic")
	}

	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
