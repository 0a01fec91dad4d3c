package postgres

import (
	"context"
	"fmt"

	entedge "github.com/feedradar/radar/pkg/storage/postgres/ent/topicedge"
	"github.com/feedradar/radar/pkg/topics"
)

type EdgeRepository struct {
	db *DB
}

func NewEdgeRepository(db *DB) *EdgeRepository {
	return &EdgeRepository{db: db}
}

func (r *EdgeRepository) Insert(ctx context.Context, e *topics.Edge) error {
	_, err := r.db.Client().TopicEdge.Create().
		SetID(e.ID).
		SetFromTopicID(e.FromTopicID).
		SetToTopicID(e.ToTopicID).
		SetRelationship(e.Relationship).
		SetStrength(e.Strength).
		Save(ctx)

	return err
}

func (r *EdgeRepository) ListByTopic(ctx context.Context, topicID string) ([]*topics.Edge, error) {
	rows, err := r.db.Client().TopicEdge.Query().
		Where(entedge.Or(
			entedge.FromTopicID(topicID),
			entedge.ToTopicID(topicID),
		)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topic edges: %w", err)
	}

	result := make([]*topics.Edge, len(rows))
	for i, e := range rows {
		result[i] = &topics.Edge{
			ID:           e.ID,
			FromTopicID:  e.FromTopicID,
			ToTopicID:    e.ToTopicID,
			Relationship: e.Relationship,
			Strength:     e.Strength,
		}
	}

	return result, nil
}
