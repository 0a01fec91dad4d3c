package config

import (
	"fmt"

	"github.com/feedradar/radar/pkg/api"
	"github.com/feedradar/radar/pkg/lib"
	"github.com/feedradar/radar/pkg/lib/log"
	"github.com/feedradar/radar/pkg/storage/postgres"
	"github.com/feedradar/radar/pkg/topics"
	"github.com/joeshaw/envdecode"
)

type Config struct {
	DB      postgres.Config `env:""`
	API     api.Config      `env:""`
	Log     log.Config      `env:""`
	Cluster topics.Config   `env:""`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := lib.ValidateStruct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
