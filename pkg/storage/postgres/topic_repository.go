package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/feedradar/radar/pkg/storage/postgres/ent"
	enttopic "github.com/feedradar/radar/pkg/storage/postgres/ent/topic"
	"github.com/feedradar/radar/pkg/topics"
)

type TopicRepository struct {
	db *DB
}

func NewTopicRepository(db *DB) *TopicRepository {
	return &TopicRepository{db: db}
}

func (r *TopicRepository) Insert(ctx context.Context, t *topics.Topic) error {
	_, err := r.db.Client().Topic.Create().
		SetID(t.ID).
		SetName(t.Name).
		SetSummary(t.Summary).
		SetKeywords(t.Keywords).
		SetPostCount(t.PostCount).
		SetImportance(t.Importance).
		SetSourcePostID(t.SourcePostID).
		SetSourceURL(t.SourceURL).
		SetCreatedAt(t.CreatedAt).
		SetUpdatedAt(t.UpdatedAt).
		Save(ctx)

	return err
}

func (r *TopicRepository) GetByID(ctx context.Context, id string) (*topics.Topic, error) {
	t, err := r.db.Client().Topic.Query().Where(enttopic.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, topics.ErrNotFound
		}
		return nil, err
	}

	return topicFromEnt(t), nil
}

func (r *TopicRepository) List(ctx context.Context) ([]*topics.Topic, error) {
	rows, err := r.db.Client().Topic.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topics: %w", err)
	}

	result := make([]*topics.Topic, len(rows))
	for i, t := range rows {
		result[i] = topicFromEnt(t)
	}

	return result, nil
}

func (r *TopicRepository) ListByImportance(ctx context.Context, limit int) ([]*topics.Topic, error) {
	rows, err := r.db.Client().Topic.Query().
		Order(ent.Desc(enttopic.FieldImportance)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topics by importance: %w", err)
	}

	result := make([]*topics.Topic, len(rows))
	for i, t := range rows {
		result[i] = topicFromEnt(t)
	}

	return result, nil
}

func (r *TopicRepository) UpdateStats(ctx context.Context, id string, postCount, importance int, updatedAt time.Time) error {
	err := r.db.Client().Topic.UpdateOneID(id).
		SetPostCount(postCount).
		SetImportance(importance).
		SetUpdatedAt(updatedAt).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return topics.ErrNotFound
		}
		return err
	}
	return nil
}

func topicFromEnt(in *ent.Topic) *topics.Topic {
	return &topics.Topic{
		ID:           in.ID,
		Name:         in.Name,
		Summary:      in.Summary,
		Keywords:     in.Keywords,
		PostCount:    in.PostCount,
		Importance:   in.Importance,
		SourcePostID: in.SourcePostID,
		SourceURL:    in.SourceURL,
		CreatedAt:    in.CreatedAt,
		UpdatedAt:    in.UpdatedAt,
	}
}
