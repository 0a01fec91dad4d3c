package postgres

import (
	"context"
	"fmt"

	"github.com/feedradar/radar/pkg/projects"
	"github.com/feedradar/radar/pkg/storage/postgres/ent"
	entrelevance "github.com/feedradar/radar/pkg/storage/postgres/ent/relevance"
)

type RelevanceRepository struct {
	db *DB
}

func NewRelevanceRepository(db *DB) *RelevanceRepository {
	return &RelevanceRepository{db: db}
}

func (r *RelevanceRepository) Insert(ctx context.Context, rel *projects.Relevance) error {
	_, err := r.db.Client().Relevance.Create().
		SetID(rel.ID).
		SetTopicID(rel.TopicID).
		SetProjectID(rel.ProjectID).
		SetScore(rel.Score).
		SetReasoning(rel.Reasoning).
		SetContentOpportunity(rel.ContentOpportunity).
		SetCreatedAt(rel.CreatedAt).
		Save(ctx)

	return err
}

func (r *RelevanceRepository) ListByTopic(ctx context.Context, topicID string) ([]*projects.Relevance, error) {
	rows, err := r.db.Client().Relevance.Query().
		Where(entrelevance.TopicID(topicID)).
		Order(ent.Desc(entrelevance.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topic relevance: %w", err)
	}

	return relevanceFromEntRows(rows), nil
}

func (r *RelevanceRepository) ListMinScore(ctx context.Context, minScore float64, projectID string) ([]*projects.Relevance, error) {
	query := r.db.Client().Relevance.Query().
		Where(entrelevance.ScoreGTE(minScore))

	if projectID != "" {
		query = query.Where(entrelevance.ProjectID(projectID))
	}

	rows, err := query.Order(ent.Desc(entrelevance.FieldScore)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query relevance by score: %w", err)
	}

	return relevanceFromEntRows(rows), nil
}

func relevanceFromEntRows(rows []*ent.Relevance) []*projects.Relevance {
	result := make([]*projects.Relevance, len(rows))
	for i, rel := range rows {
		result[i] = &projects.Relevance{
			ID:                 rel.ID,
			TopicID:            rel.TopicID,
			ProjectID:          rel.ProjectID,
			Score:              rel.Score,
			Reasoning:          rel.Reasoning,
			ContentOpportunity: rel.ContentOpportunity,
			CreatedAt:          rel.CreatedAt,
		}
	}
	return result
}
