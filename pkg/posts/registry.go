package posts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/feedradar/radar/pkg/lib"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned when a post ID does not resolve to a stored row.
var ErrNotFound = errors.New("post not found")

type postStore interface {
	Insert(ctx context.Context, p *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	GetByExternalID(ctx context.Context, externalID string) (*Post, error)
	List(ctx context.Context, req ListRequest) ([]*Post, error)
}

// Registry is the write/read surface for stored posts.
type Registry struct {
	store  postStore
	logger *zerolog.Logger
}

func NewRegistry(logger *zerolog.Logger, store postStore) *Registry {
	return &Registry{
		store:  store,
		logger: logger,
	}
}

// Ingest stores the given records, skipping any whose external ID is
// already present. Re-ingesting an existing ID is a no-op that reports
// the stored row's ID with status "exists".
func (r *Registry) Ingest(ctx context.Context, inputs []IngestInput) ([]IngestResult, error) {
	results := make([]IngestResult, 0, len(inputs))

	for _, in := range inputs {
		if err := lib.ValidateStruct(&in); err != nil {
			return nil, fmt.Errorf("validate post %q: %w", in.ExternalID, err)
		}

		existing, err := r.store.GetByExternalID(ctx, in.ExternalID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("lookup post by external ID: %w", err)
		}

		if existing != nil {
			results = append(results, IngestResult{ID: existing.ID, Status: IngestStatusExists})
			continue
		}

		post := &Post{
			ID:           uuid.New().String(),
			ExternalID:   in.ExternalID,
			Author:       in.Author,
			AuthorHandle: in.AuthorHandle,
			Followers:    in.Followers,
			Text:         in.Text,
			URL:          in.URL,
			Time:         in.Time,
			HasMedia:     in.HasMedia,
			IsBookmark:   in.IsBookmark,
			FetchedAt:    time.Now(),
		}

		if err := r.store.Insert(ctx, post); err != nil {
			return nil, fmt.Errorf("insert post: %w", err)
		}

		results = append(results, IngestResult{ID: post.ID, Status: IngestStatusInserted})
	}

	r.logger.Debug().
		Int("input_count", len(inputs)).
		Int("result_count", len(results)).
		Msg("Ingested posts")

	return results, nil
}

func (r *Registry) GetByID(ctx context.Context, id string) (*Post, error) {
	return r.store.GetByID(ctx, id)
}

// List returns posts matching the request filters, most recent first.
func (r *Registry) List(ctx context.Context, req ListRequest) ([]*Post, error) {
	if req.Limit == 0 {
		req.Limit = DefaultListLimit
	}
	return r.store.List(ctx, req)
}
