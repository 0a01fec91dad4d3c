package topics

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/feedradar/radar/pkg/lib"
	"github.com/feedradar/radar/pkg/posts"
	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned when a topic ID does not resolve to a stored row.
var ErrNotFound = errors.New("topic not found")

// ErrSelfEdge is returned when an edge references the same topic on both ends.
var ErrSelfEdge = errors.New("edge endpoints must be different topics")

// DefaultTopLimit caps GetTopTopics when the caller passes no limit.
const DefaultTopLimit = 10

type topicStore interface {
	Insert(ctx context.Context, t *Topic) error
	GetByID(ctx context.Context, id string) (*Topic, error)
	List(ctx context.Context) ([]*Topic, error)
	ListByImportance(ctx context.Context, limit int) ([]*Topic, error)
	UpdateStats(ctx context.Context, id string, postCount, importance int, updatedAt time.Time) error
}

type edgeStore interface {
	Insert(ctx context.Context, e *Edge) error
	ListByTopic(ctx context.Context, topicID string) ([]*Edge, error)
}

type postStore interface {
	GetByID(ctx context.Context, id string) (*posts.Post, error)
	SetTopic(ctx context.Context, postID, topicID string) error
	CountByTopic(ctx context.Context, topicID string) (int, error)
}

// Registry maintains the topic graph: topic nodes with aggregate stats
// and directed, typed edges between them.
type Registry struct {
	topics topicStore
	edges  edgeStore
	posts  postStore
	logger *zerolog.Logger
}

func NewRegistry(logger *zerolog.Logger, topics topicStore, edges edgeStore, posts postStore) *Registry {
	return &Registry{
		topics: topics,
		edges:  edges,
		posts:  posts,
		logger: logger,
	}
}

type CreateRequest struct {
	Name         string   `json:"name" validate:"required"`
	Summary      string   `json:"summary"`
	Keywords     []string `json:"keywords"`
	SourcePostID string   `json:"sourcePostId,omitempty"`
	SourceURL    string   `json:"sourceUrl,omitempty"`
}

// Create stores a new topic with zeroed stats. Topic names are not
// unique: creating the same name twice yields two nodes.
func (r *Registry) Create(ctx context.Context, req CreateRequest) (*Topic, error) {
	if err := lib.ValidateStruct(&req); err != nil {
		return nil, fmt.Errorf("validate topic: %w", err)
	}

	now := time.Now()
	topic := &Topic{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Summary:      req.Summary,
		Keywords:     req.Keywords,
		PostCount:    0,
		Importance:   0,
		SourcePostID: req.SourcePostID,
		SourceURL:    req.SourceURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := r.topics.Insert(ctx, topic); err != nil {
		return nil, fmt.Errorf("insert topic: %w", err)
	}

	r.logger.Debug().
		Str("topic_id", topic.ID).
		Str("name", topic.Name).
		Msg("Created topic")

	return topic, nil
}

// AssignPost points the post at the topic, then refreshes the topic's
// post count by recounting all posts that reference it. The count is
// always derived from the store, so repeated or moved assignments can
// never drift the aggregate.
func (r *Registry) AssignPost(ctx context.Context, postID, topicID string) error {
	topic, err := r.topics.GetByID(ctx, topicID)
	if err != nil {
		return fmt.Errorf("resolve topic %q: %w", topicID, err)
	}

	if _, err := r.posts.GetByID(ctx, postID); err != nil {
		return fmt.Errorf("resolve post %q: %w", postID, err)
	}

	if err := r.posts.SetTopic(ctx, postID, topicID); err != nil {
		return fmt.Errorf("set post topic: %w", err)
	}

	count, err := r.posts.CountByTopic(ctx, topicID)
	if err != nil {
		return fmt.Errorf("count posts by topic: %w", err)
	}

	if err := r.topics.UpdateStats(ctx, topicID, count, topic.Importance, time.Now()); err != nil {
		return fmt.Errorf("update topic stats: %w", err)
	}

	return nil
}

// UpdateStats overwrites the topic's post count and importance.
// Used by batch clustering passes that compute importance externally
// and push the result back; the caller is responsible for the count
// matching actual assignments.
func (r *Registry) UpdateStats(ctx context.Context, topicID string, postCount, importance int) error {
	if err := r.topics.UpdateStats(ctx, topicID, postCount, importance, time.Now()); err != nil {
		return fmt.Errorf("update topic stats: %w", err)
	}
	return nil
}

func (r *Registry) GetByID(ctx context.Context, id string) (*Topic, error) {
	return r.topics.GetByID(ctx, id)
}

// List returns all topics.
func (r *Registry) List(ctx context.Context) ([]*Topic, error) {
	return r.topics.List(ctx)
}

// TopTopics returns topics ordered by importance descending, truncated
// to limit (DefaultTopLimit when <= 0).
func (r *Registry) TopTopics(ctx context.Context, limit int) ([]*Topic, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	return r.topics.ListByImportance(ctx, limit)
}

type AddEdgeRequest struct {
	FromTopicID  string  `json:"fromTopicId" validate:"required"`
	ToTopicID    string  `json:"toTopicId" validate:"required"`
	Relationship string  `json:"relationship" validate:"required"`
	Strength     float64 `json:"strength"`
}

// AddEdge appends a directed edge between two existing topics.
func (r *Registry) AddEdge(ctx context.Context, req AddEdgeRequest) (*Edge, error) {
	if err := lib.ValidateStruct(&req); err != nil {
		return nil, fmt.Errorf("validate edge: %w", err)
	}

	if req.FromTopicID == req.ToTopicID {
		return nil, ErrSelfEdge
	}

	if _, err := r.topics.GetByID(ctx, req.FromTopicID); err != nil {
		return nil, fmt.Errorf("resolve from topic %q: %w", req.FromTopicID, err)
	}
	if _, err := r.topics.GetByID(ctx, req.ToTopicID); err != nil {
		return nil, fmt.Errorf("resolve to topic %q: %w", req.ToTopicID, err)
	}

	edge := &Edge{
		ID:           uuid.New().String(),
		FromTopicID:  req.FromTopicID,
		ToTopicID:    req.ToTopicID,
		Relationship: req.Relationship,
		Strength:     req.Strength,
	}

	if err := r.edges.Insert(ctx, edge); err != nil {
		return nil, fmt.Errorf("insert edge: %w", err)
	}

	return edge, nil
}

// Edges returns all edges that start or end at the topic.
func (r *Registry) Edges(ctx context.Context, topicID string) ([]*Edge, error) {
	if _, err := r.topics.GetByID(ctx, topicID); err != nil {
		return nil, fmt.Errorf("resolve topic %q: %w", topicID, err)
	}
	return r.edges.ListByTopic(ctx, topicID)
}

// Search fuzzy-matches the query against topic names and returns the
// hits ordered by closeness.
func (r *Registry) Search(ctx context.Context, query string) ([]*Topic, error) {
	all, err := r.topics.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	if query == "" {
		return all, nil
	}

	names := make([]string, len(all))
	for i, t := range all {
		names[i] = t.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)

	result := make([]*Topic, 0, len(ranks))
	for _, rank := range ranks {
		result = append(result, all[rank.OriginalIndex])
	}

	return result, nil
}
