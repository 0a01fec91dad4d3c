package projects

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/feedradar/radar/pkg/lib"
	"github.com/feedradar/radar/pkg/topics"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned when a project ID does not resolve to a stored row.
var ErrNotFound = errors.New("project not found")

// ErrScoreOutOfRange is returned when a relevance score falls outside
// [0, 1]. Out-of-range scores are rejected, never clamped.
var ErrScoreOutOfRange = errors.New("relevance score must be within [0, 1]")

// DefaultMinScore is the high-relevance threshold applied when the
// caller passes none.
const DefaultMinScore = 0.7

type projectStore interface {
	Insert(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, id string) (*Project, error)
	ListActive(ctx context.Context) ([]*Project, error)
}

type relevanceStore interface {
	Insert(ctx context.Context, r *Relevance) error
	ListByTopic(ctx context.Context, topicID string) ([]*Relevance, error)
	// ListMinScore returns rows with score >= minScore, optionally
	// restricted to one project when projectID is non-empty.
	ListMinScore(ctx context.Context, minScore float64, projectID string) ([]*Relevance, error)
}

type topicResolver interface {
	GetByID(ctx context.Context, id string) (*topics.Topic, error)
}

// Registry manages projects and the relevance scores linking topics to
// them.
type Registry struct {
	projects  projectStore
	relevance relevanceStore
	topics    topicResolver
	logger    *zerolog.Logger
}

func NewRegistry(logger *zerolog.Logger, projects projectStore, relevance relevanceStore, topics topicResolver) *Registry {
	return &Registry{
		projects:  projects,
		relevance: relevance,
		topics:    topics,
		logger:    logger,
	}
}

type CreateRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Active      bool     `json:"active"`
}

func (r *Registry) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	if err := lib.ValidateStruct(&req); err != nil {
		return nil, fmt.Errorf("validate project: %w", err)
	}

	project := &Project{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Keywords:    req.Keywords,
		Active:      req.Active,
	}

	if err := r.projects.Insert(ctx, project); err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	return project, nil
}

// List returns active projects only. Inactive projects are retained in
// the store but never surface in relevance queries.
func (r *Registry) List(ctx context.Context) ([]*Project, error) {
	return r.projects.ListActive(ctx)
}

type ScoreRequest struct {
	TopicID            string  `json:"topicId" validate:"required"`
	ProjectID          string  `json:"projectId" validate:"required"`
	Score              float64 `json:"score"`
	Reasoning          string  `json:"reasoning" validate:"required"`
	ContentOpportunity string  `json:"contentOpportunity,omitempty"`
}

// Score appends a relevance row linking the topic to the project.
// A score outside [0, 1] fails with ErrScoreOutOfRange and persists
// nothing. Duplicate scoring of the same pair appends another row.
func (r *Registry) Score(ctx context.Context, req ScoreRequest) (*Relevance, error) {
	if err := lib.ValidateStruct(&req); err != nil {
		return nil, fmt.Errorf("validate relevance: %w", err)
	}

	if req.Score < 0 || req.Score > 1 {
		return nil, ErrScoreOutOfRange
	}

	if _, err := r.topics.GetByID(ctx, req.TopicID); err != nil {
		return nil, fmt.Errorf("resolve topic %q: %w", req.TopicID, err)
	}
	if _, err := r.projects.GetByID(ctx, req.ProjectID); err != nil {
		return nil, fmt.Errorf("resolve project %q: %w", req.ProjectID, err)
	}

	rel := &Relevance{
		ID:                 uuid.New().String(),
		TopicID:            req.TopicID,
		ProjectID:          req.ProjectID,
		Score:              req.Score,
		Reasoning:          req.Reasoning,
		ContentOpportunity: req.ContentOpportunity,
		CreatedAt:          time.Now(),
	}

	if err := r.relevance.Insert(ctx, rel); err != nil {
		return nil, fmt.Errorf("insert relevance: %w", err)
	}

	r.logger.Debug().
		Str("topic_id", rel.TopicID).
		Str("project_id", rel.ProjectID).
		Float64("score", rel.Score).
		Msg("Scored relevance")

	return rel, nil
}

// HighRelevance returns all rows with score >= minScore (DefaultMinScore
// when <= 0), optionally restricted to one project, joined with topic
// and project display names.
func (r *Registry) HighRelevance(ctx context.Context, minScore float64, projectID string) ([]*AnnotatedRelevance, error) {
	if minScore <= 0 {
		minScore = DefaultMinScore
	}

	rows, err := r.relevance.ListMinScore(ctx, minScore, projectID)
	if err != nil {
		return nil, fmt.Errorf("list relevance: %w", err)
	}

	return r.annotate(ctx, rows), nil
}

// TopicRelevance returns all relevance rows for the topic, annotated
// with project names.
func (r *Registry) TopicRelevance(ctx context.Context, topicID string) ([]*AnnotatedRelevance, error) {
	rows, err := r.relevance.ListByTopic(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("list topic relevance: %w", err)
	}

	return r.annotate(ctx, rows), nil
}

// annotate joins rows with display names. Dangling references resolve
// to empty names rather than failing; read-only reporting paths rely on
// this tolerance.
func (r *Registry) annotate(ctx context.Context, rows []*Relevance) []*AnnotatedRelevance {
	result := make([]*AnnotatedRelevance, len(rows))
	for i, row := range rows {
		out := &AnnotatedRelevance{Relevance: *row}

		if topic, err := r.topics.GetByID(ctx, row.TopicID); err == nil {
			out.TopicName = topic.Name
		}
		if project, err := r.projects.GetByID(ctx, row.ProjectID); err == nil {
			out.ProjectName = project.Name
		}

		result[i] = out
	}
	return result
}
