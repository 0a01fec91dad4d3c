package topics

import (
	"context"
	"fmt"

	"github.com/alitto/pond/v2"
	"github.com/feedradar/radar/pkg/posts"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type postLister interface {
	List(ctx context.Context, req posts.ListRequest) ([]*posts.Post, error)
}

// Clusterer runs the batch clustering pass: snapshot stored posts,
// score each against the topic definitions, rank the resulting
// clusters, and push topics, assignments and stats back through the
// registry. It is invoked on demand (once per ingestion cycle), not as
// a continuous pipeline.
type Clusterer struct {
	posts    postLister
	registry *Registry
	pool     pond.Pool
	logger   *zerolog.Logger
}

func NewClusterer(logger *zerolog.Logger, postLister postLister, registry *Registry, config *Config) *Clusterer {
	return &Clusterer{
		posts:    postLister,
		registry: registry,
		pool:     pond.NewPool(config.MaxScoreConcurrency),
		logger:   logger,
	}
}

// Run executes one clustering pass over the current post snapshot and
// returns the ranked clusters. Topics are reused by name when a stored
// topic already carries the definition's name, otherwise created.
//
// Persistence failures abort the pass; everything written so far stays,
// since each write targets a single entity.
func (c *Clusterer) Run(ctx context.Context, defs []Definition) ([]*Cluster, error) {
	var (
		snapshot []*posts.Post
		stored   []*Topic
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		// The clustering pass considers every stored post, not just
		// the default listing page.
		snapshot, err = c.posts.List(gctx, posts.ListRequest{Limit: -1})
		if err != nil {
			return fmt.Errorf("list posts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		stored, err = c.registry.List(gctx)
		if err != nil {
			return fmt.Errorf("list topics: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Info().
		Int("post_count", len(snapshot)).
		Int("definition_count", len(defs)).
		Msg("Running clustering pass")

	clusters := c.matchAll(snapshot, defs)
	ranked := Rank(clusters)

	if err := c.persist(ctx, ranked, stored); err != nil {
		return nil, err
	}

	return ranked, nil
}

// matchAll scores every post against every definition. Scoring is pure,
// so posts fan out across the worker pool; each task writes only its
// own row.
func (c *Clusterer) matchAll(snapshot []*posts.Post, defs []Definition) []*Cluster {
	scores := make([][]int, len(snapshot))

	group := c.pool.NewGroup()
	for i, post := range snapshot {
		group.Submit(func() {
			row := make([]int, len(defs))
			for j, def := range defs {
				row[j] = MatchCount(post.Text, def)
			}
			scores[i] = row
		})
	}
	_ = group.Wait()

	clusters := make([]*Cluster, len(defs))
	for j, def := range defs {
		clusters[j] = &Cluster{Definition: def}
	}
	for i, post := range snapshot {
		for j := range defs {
			if scores[i][j] >= 1 {
				clusters[j].Posts = append(clusters[j].Posts, PostMatch{
					Post:       post,
					MatchCount: scores[i][j],
				})
			}
		}
	}

	return clusters
}

func (c *Clusterer) persist(ctx context.Context, ranked []*Cluster, stored []*Topic) error {
	byName := make(map[string]*Topic, len(stored))
	for _, t := range stored {
		// First stored topic wins; names are not unique.
		if _, ok := byName[t.Name]; !ok {
			byName[t.Name] = t
		}
	}

	for _, cluster := range ranked {
		topic, ok := byName[cluster.Definition.Name]
		if !ok {
			created, err := c.registry.Create(ctx, CreateRequest{
				Name:     cluster.Definition.Name,
				Summary:  cluster.Definition.Summary,
				Keywords: cluster.Definition.Keywords,
			})
			if err != nil {
				return fmt.Errorf("create topic %q: %w", cluster.Definition.Name, err)
			}
			topic = created
			byName[topic.Name] = topic
		}

		for _, match := range cluster.Posts {
			if err := c.registry.AssignPost(ctx, match.Post.ID, topic.ID); err != nil {
				return fmt.Errorf("assign post %q to topic %q: %w", match.Post.ID, topic.ID, err)
			}
		}

		if err := c.registry.UpdateStats(ctx, topic.ID, len(cluster.Posts), cluster.Importance); err != nil {
			return fmt.Errorf("push stats for topic %q: %w", topic.ID, err)
		}

		c.logger.Debug().
			Str("topic_id", topic.ID).
			Str("name", topic.Name).
			Int("post_count", len(cluster.Posts)).
			Int("importance", cluster.Importance).
			Msg("Persisted cluster")
	}

	return nil
}
