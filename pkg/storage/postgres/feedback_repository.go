package postgres

import (
	"context"
	"fmt"

	"github.com/feedradar/radar/pkg/feedback"
	"github.com/feedradar/radar/pkg/storage/postgres/ent"
	entfeedback "github.com/feedradar/radar/pkg/storage/postgres/ent/feedback"
)

type FeedbackRepository struct {
	db *DB
}

func NewFeedbackRepository(db *DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Insert(ctx context.Context, f *feedback.Feedback) error {
	_, err := r.db.Client().Feedback.Create().
		SetID(f.ID).
		SetPostID(f.PostID).
		SetTopicID(f.TopicID).
		SetRating(f.Rating).
		SetComment(f.Comment).
		SetCreatedAt(f.CreatedAt).
		Save(ctx)

	return err
}

func (r *FeedbackRepository) List(ctx context.Context) ([]*feedback.Feedback, error) {
	rows, err := r.db.Client().Feedback.Query().
		Order(ent.Desc(entfeedback.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query feedback: %w", err)
	}

	result := make([]*feedback.Feedback, len(rows))
	for i, f := range rows {
		result[i] = &feedback.Feedback{
			ID:        f.ID,
			PostID:    f.PostID,
			TopicID:   f.TopicID,
			Rating:    f.Rating,
			Comment:   f.Comment,
			CreatedAt: f.CreatedAt,
		}
	}

	return result, nil
}
