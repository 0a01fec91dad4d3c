// Package feedback is an append-only log of user reactions to posts and
// topics. It is a pure sink for now: records are kept for future scoring
// adjustments but nothing downstream reads them yet.
package feedback

import (
	"context"
	"fmt"
	"time"

	"github.com/feedradar/radar/pkg/lib"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Feedback is a user reaction attached to a post and/or a topic.
// Rating is "good"/"bad" or an action tag such as like, save, dismiss
// or expand. Both references are optional; a record may carry neither.
type Feedback struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId,omitempty"`
	TopicID   string    `json:"topicId,omitempty"`
	Rating    string    `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type feedbackStore interface {
	Insert(ctx context.Context, f *Feedback) error
	// List returns all records, most recent first.
	List(ctx context.Context) ([]*Feedback, error)
}

type Registry struct {
	store  feedbackStore
	logger *zerolog.Logger
}

func NewRegistry(logger *zerolog.Logger, store feedbackStore) *Registry {
	return &Registry{
		store:  store,
		logger: logger,
	}
}

type RecordRequest struct {
	PostID  string `json:"postId,omitempty"`
	TopicID string `json:"topicId,omitempty"`
	Rating  string `json:"rating" validate:"required"`
	Comment string `json:"comment,omitempty"`
}

// Record appends a feedback entry with a server-assigned timestamp.
func (r *Registry) Record(ctx context.Context, req RecordRequest) (*Feedback, error) {
	if err := lib.ValidateStruct(&req); err != nil {
		return nil, fmt.Errorf("validate feedback: %w", err)
	}

	fb := &Feedback{
		ID:        uuid.New().String(),
		PostID:    req.PostID,
		TopicID:   req.TopicID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if err := r.store.Insert(ctx, fb); err != nil {
		return nil, fmt.Errorf("insert feedback: %w", err)
	}

	r.logger.Debug().
		Str("rating", fb.Rating).
		Str("post_id", fb.PostID).
		Str("topic_id", fb.TopicID).
		Msg("Recorded feedback")

	return fb, nil
}

// List returns the full log, newest first.
func (r *Registry) List(ctx context.Context) ([]*Feedback, error) {
	return r.store.List(ctx)
}
