package projects

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/feedradar/radar/pkg/topics"
	"github.com/rs/zerolog"
)

type fakeProjectStore struct {
	rows []*Project
}

func (s *fakeProjectStore) Insert(_ context.Context, p *Project) error {
	s.rows = append(s.rows, p)
	return nil
}

func (s *fakeProjectStore) GetByID(_ context.Context, id string) (*Project, error) {
	for _, p := range s.rows {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *fakeProjectStore) ListActive(_ context.Context) ([]*Project, error) {
	var result []*Project
	for _, p := range s.rows {
		if p.Active {
			result = append(result, p)
		}
	}
	return result, nil
}

type fakeRelevanceStore struct {
	rows []*Relevance
}

func (s *fakeRelevanceStore) Insert(_ context.Context, r *Relevance) error {
	s.rows = append(s.rows, r)
	return nil
}

func (s *fakeRelevanceStore) ListByTopic(_ context.Context, topicID string) ([]*Relevance, error) {
	var result []*Relevance
	for _, r := range s.rows {
		if r.TopicID == topicID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (s *fakeRelevanceStore) ListMinScore(_ context.Context, minScore float64, projectID string) ([]*Relevance, error) {
	var result []*Relevance
	for _, r := range s.rows {
		if r.Score < minScore {
			continue
		}
		if projectID != "" && r.ProjectID != projectID {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

type fakeTopicResolver struct {
	rows map[string]*topics.Topic
}

func (s *fakeTopicResolver) GetByID(_ context.Context, id string) (*topics.Topic, error) {
	if t, ok := s.rows[id]; ok {
		return t, nil
	}
	return nil, topics.ErrNotFound
}

type testEnv struct {
	registry  *Registry
	projects  *fakeProjectStore
	relevance *fakeRelevanceStore
	topics    *fakeTopicResolver
}

func newTestEnv() *testEnv {
	logger := zerolog.Nop()
	projectStore := &fakeProjectStore{}
	relevanceStore := &fakeRelevanceStore{}
	topicResolver := &fakeTopicResolver{rows: map[string]*topics.Topic{}}

	return &testEnv{
		registry:  NewRegistry(&logger, projectStore, relevanceStore, topicResolver),
		projects:  projectStore,
		relevance: relevanceStore,
		topics:    topicResolver,
	}
}

func (e *testEnv) addTopic(id, name string) {
	e.topics.rows[id] = &topics.Topic{ID: id, Name: name}
}

func TestRegistry_List_ActiveOnly(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.registry.Create(ctx, CreateRequest{
		Name:        "Tool Discovery",
		Description: "Find new tools & frameworks to test",
		Keywords:    []string{"tool", "framework", "sdk"},
		Active:      true,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err = env.registry.Create(ctx, CreateRequest{
		Name:   "Retired",
		Active: false,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	result, err := env.registry.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(result) != 1 || result[0].Name != "Tool Discovery" {
		t.Errorf("List() = %d projects, want only Tool Discovery", len(result))
	}
}

func TestRegistry_Score_RejectsOutOfRange(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.addTopic("t1", "Agent Infrastructure")
	project, err := env.registry.Create(ctx, CreateRequest{Name: "Tool Discovery", Active: true})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	for _, score := range []float64{1.5, -0.1, 2} {
		_, err := env.registry.Score(ctx, ScoreRequest{
			TopicID:   "t1",
			ProjectID: project.ID,
			Score:     score,
			Reasoning: "out of range",
		})
		if !errors.Is(err, ErrScoreOutOfRange) {
			t.Errorf("Score(%v) error = %v, want ErrScoreOutOfRange", score, err)
		}
	}

	// A rejected score persists no row.
	if len(env.relevance.rows) != 0 {
		t.Errorf("store has %d rows after rejected scores, want 0", len(env.relevance.rows))
	}

	// The bounds themselves are valid.
	for _, score := range []float64{0, 1} {
		if _, err := env.registry.Score(ctx, ScoreRequest{
			TopicID:   "t1",
			ProjectID: project.ID,
			Score:     score,
			Reasoning: "boundary",
		}); err != nil {
			t.Errorf("Score(%v) error = %v, want nil", score, err)
		}
	}
}

func TestRegistry_Score_NotFound(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.addTopic("t1", "known")
	project, _ := env.registry.Create(ctx, CreateRequest{Name: "known", Active: true})

	_, err := env.registry.Score(ctx, ScoreRequest{
		TopicID:   "missing",
		ProjectID: project.ID,
		Score:     0.5,
		Reasoning: "r",
	})
	if !errors.Is(err, topics.ErrNotFound) {
		t.Errorf("Score() with unknown topic error = %v, want topics.ErrNotFound", err)
	}

	_, err = env.registry.Score(ctx, ScoreRequest{
		TopicID:   "t1",
		ProjectID: "missing",
		Score:     0.5,
		Reasoning: "r",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Score() with unknown project error = %v, want ErrNotFound", err)
	}
}

func TestRegistry_Score_AppendsDuplicatePairs(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.addTopic("t1", "topic")
	project, _ := env.registry.Create(ctx, CreateRequest{Name: "p", Active: true})

	for i := 0; i < 2; i++ {
		if _, err := env.registry.Score(ctx, ScoreRequest{
			TopicID:   "t1",
			ProjectID: project.ID,
			Score:     0.6,
			Reasoning: "scored again",
		}); err != nil {
			t.Fatalf("Score() error = %v", err)
		}
	}

	// Scoring history is append-only: nothing enforces one row per
	// (topic, project) pair.
	if len(env.relevance.rows) != 2 {
		t.Errorf("store has %d rows, want 2", len(env.relevance.rows))
	}
}

func TestRegistry_HighRelevance(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.addTopic("t1", "topic")
	project, _ := env.registry.Create(ctx, CreateRequest{Name: "p", Active: true})

	rng := rand.New(rand.NewSource(42))
	scores := make([]float64, 120)
	for i := range scores {
		scores[i] = rng.Float64()
		if _, err := env.registry.Score(ctx, ScoreRequest{
			TopicID:   "t1",
			ProjectID: project.ID,
			Score:     scores[i],
			Reasoning: fmt.Sprintf("row %d", i),
		}); err != nil {
			t.Fatalf("Score() error = %v", err)
		}
	}

	wantCount := 0
	for _, s := range scores {
		if s >= DefaultMinScore {
			wantCount++
		}
	}

	// minScore <= 0 falls back to the default threshold.
	result, err := env.registry.HighRelevance(ctx, 0, "")
	if err != nil {
		t.Fatalf("HighRelevance() error = %v", err)
	}

	if len(result) != wantCount {
		t.Errorf("HighRelevance() returned %d rows, want %d", len(result), wantCount)
	}
	for _, rel := range result {
		if rel.Score < DefaultMinScore {
			t.Errorf("HighRelevance() returned score %v below threshold", rel.Score)
		}
		if rel.TopicName != "topic" || rel.ProjectName != "p" {
			t.Errorf("HighRelevance() names = (%q, %q), want joined display names",
				rel.TopicName, rel.ProjectName)
		}
	}
}

func TestRegistry_HighRelevance_ProjectFilter(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.addTopic("t1", "topic")
	first, _ := env.registry.Create(ctx, CreateRequest{Name: "first", Active: true})
	second, _ := env.registry.Create(ctx, CreateRequest{Name: "second", Active: true})

	for _, projectID := range []string{first.ID, second.ID} {
		if _, err := env.registry.Score(ctx, ScoreRequest{
			TopicID:   "t1",
			ProjectID: projectID,
			Score:     0.9,
			Reasoning: "r",
		}); err != nil {
			t.Fatalf("Score() error = %v", err)
		}
	}

	result, err := env.registry.HighRelevance(ctx, 0.7, first.ID)
	if err != nil {
		t.Fatalf("HighRelevance() error = %v", err)
	}
	if len(result) != 1 || result[0].ProjectID != first.ID {
		t.Errorf("HighRelevance(projectId) returned %d rows, want 1 for the filtered project", len(result))
	}
}

// A relevance row whose project no longer resolves is still returned,
// just with an empty project name. Reporting paths rely on this.
func TestRegistry_TopicRelevance_DanglingProject(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.addTopic("t1", "topic")
	env.relevance.rows = append(env.relevance.rows, &Relevance{
		ID:        "r1",
		TopicID:   "t1",
		ProjectID: "gone",
		Score:     0.8,
		Reasoning: "project was deleted out from under us",
		CreatedAt: time.Now(),
	})

	result, err := env.registry.TopicRelevance(ctx, "t1")
	if err != nil {
		t.Fatalf("TopicRelevance() error = %v", err)
	}

	if len(result) != 1 {
		t.Fatalf("TopicRelevance() returned %d rows, want 1", len(result))
	}
	if result[0].ProjectName != "" {
		t.Errorf("ProjectName = %q, want empty for dangling reference", result[0].ProjectName)
	}
	if result[0].TopicName != "topic" {
		t.Errorf("TopicName = %q, want topic", result[0].TopicName)
	}
}
