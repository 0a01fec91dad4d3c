package topics

type Config struct {
	// MaxScoreConcurrency bounds the worker pool used to score posts
	// against definitions during a clustering pass.
	MaxScoreConcurrency int `env:"CLUSTER_MAX_SCORE_CONCURRENCY,default=8" validate:"min=1"`
}
