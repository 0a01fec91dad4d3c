package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/feedradar/radar/pkg/api"
	"github.com/feedradar/radar/pkg/config"
	"github.com/feedradar/radar/pkg/feedback"
	"github.com/feedradar/radar/pkg/lib/log"
	"github.com/feedradar/radar/pkg/posts"
	"github.com/feedradar/radar/pkg/projects"
	"github.com/feedradar/radar/pkg/storage/postgres"
	"github.com/feedradar/radar/pkg/topics"
	"github.com/joho/godotenv"
)

func main() {
	err := run()
	if err != nil {
		panic(err)
	}
}

func run() error {
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
	server, err := initServer(ctx, logger, cfg)
	if err != nil {
		return fmt.Errorf("initialize server: %w", err)
	}

	logger.Info().
		Str("host", cfg.API.Host).
		Int("port", cfg.API.Port).
		Msg("Starting server")

	if err := server.Start(); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return nil
}

func initServer(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) (*api.Server, error) {
	db := postgres.NewDB(&cfg.DB)
	err := db.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	postRepo := postgres.NewPostRepository(db)
	topicRepo := postgres.NewTopicRepository(db)
	edgeRepo := postgres.NewEdgeRepository(db)
	projectRepo := postgres.NewProjectRepository(db)
	relevanceRepo := postgres.NewRelevanceRepository(db)
	feedbackRepo := postgres.NewFeedbackRepository(db)

	postRegistry := posts.NewRegistry(logger, postRepo)
	topicRegistry := topics.NewRegistry(logger, topicRepo, edgeRepo, postRepo)
	projectRegistry := projects.NewRegistry(logger, projectRepo, relevanceRepo, topicRepo)
	feedbackRegistry := feedback.NewRegistry(logger, feedbackRepo)

	clusterer := topics.NewClusterer(logger, postRegistry, topicRegistry, &cfg.Cluster)

	server := api.NewServer(
		logger,
		&cfg.API,
		postRegistry,
		topicRegistry,
		projectRegistry,
		feedbackRegistry,
		clusterer,
	)

	return server, nil
}
