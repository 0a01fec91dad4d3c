package topics

import (
	"context"
	"errors"
	"testing"

	"github.com/feedradar/radar/pkg/posts"
	"github.com/rs/zerolog"
)

func newTestRegistry(topicStore *fakeTopicStore, edgeStore *fakeEdgeStore, postStore *fakePostStore) *Registry {
	logger := zerolog.Nop()
	return NewRegistry(&logger, topicStore, edgeStore, postStore)
}

func TestRegistry_Create(t *testing.T) {
	store := &fakeTopicStore{}
	registry := newTestRegistry(store, &fakeEdgeStore{}, &fakePostStore{})
	ctx := context.Background()

	topic, err := registry.Create(ctx, CreateRequest{
		Name:     "Agent Infrastructure",
		Summary:  "Tools and frameworks for running AI agents",
		Keywords: []string{"agent", "sandbox", "runtime"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if topic.ID == "" {
		t.Error("Create() returned empty ID")
	}
	if topic.PostCount != 0 || topic.Importance != 0 {
		t.Errorf("Create() stats = (%d, %d), want zeroed", topic.PostCount, topic.Importance)
	}
	if topic.CreatedAt.IsZero() || topic.UpdatedAt.IsZero() {
		t.Error("Create() timestamps not set")
	}

	// Names are not unique: a second create with the same name yields
	// a second node.
	if _, err := registry.Create(ctx, CreateRequest{Name: "Agent Infrastructure"}); err != nil {
		t.Fatalf("Create() duplicate name error = %v", err)
	}
	if len(store.rows) != 2 {
		t.Errorf("store has %d topics, want 2", len(store.rows))
	}
}

func TestRegistry_Create_RequiresName(t *testing.T) {
	registry := newTestRegistry(&fakeTopicStore{}, &fakeEdgeStore{}, &fakePostStore{})

	_, err := registry.Create(context.Background(), CreateRequest{Summary: "no name"})
	if err == nil {
		t.Fatal("Create() with empty name succeeded, want validation error")
	}
}

func TestRegistry_AssignPost_RecountsFromStore(t *testing.T) {
	topicStore := &fakeTopicStore{}
	postStore := &fakePostStore{rows: []*posts.Post{
		{ID: "p1", Text: "first"},
		{ID: "p2", Text: "second"},
	}}
	registry := newTestRegistry(topicStore, &fakeEdgeStore{}, postStore)
	ctx := context.Background()

	topic, err := registry.Create(ctx, CreateRequest{Name: "cluster"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	for _, postID := range []string{"p1", "p2"} {
		if err := registry.AssignPost(ctx, postID, topic.ID); err != nil {
			t.Fatalf("AssignPost(%s) error = %v", postID, err)
		}
	}

	got, err := registry.GetByID(ctx, topic.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.PostCount != 2 {
		t.Errorf("PostCount = %d, want 2", got.PostCount)
	}

	// Re-assigning the same post must not inflate the count: it is
	// recomputed from the store, not incremented.
	if err := registry.AssignPost(ctx, "p1", topic.ID); err != nil {
		t.Fatalf("AssignPost() repeat error = %v", err)
	}
	got, _ = registry.GetByID(ctx, topic.ID)
	if got.PostCount != 2 {
		t.Errorf("PostCount after re-assign = %d, want 2", got.PostCount)
	}
}

func TestRegistry_AssignPost_NotFound(t *testing.T) {
	topicStore := &fakeTopicStore{}
	postStore := &fakePostStore{rows: []*posts.Post{{ID: "p1"}}}
	registry := newTestRegistry(topicStore, &fakeEdgeStore{}, postStore)
	ctx := context.Background()

	topic, err := registry.Create(ctx, CreateRequest{Name: "cluster"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := registry.AssignPost(ctx, "missing", topic.ID); !errors.Is(err, posts.ErrNotFound) {
		t.Errorf("AssignPost() with unknown post error = %v, want ErrNotFound", err)
	}
	if err := registry.AssignPost(ctx, "p1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("AssignPost() with unknown topic error = %v, want ErrNotFound", err)
	}
}

func TestRegistry_UpdateStats_Overwrites(t *testing.T) {
	topicStore := &fakeTopicStore{}
	registry := newTestRegistry(topicStore, &fakeEdgeStore{}, &fakePostStore{})
	ctx := context.Background()

	topic, err := registry.Create(ctx, CreateRequest{Name: "cluster"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := registry.UpdateStats(ctx, topic.ID, 7, 140); err != nil {
		t.Fatalf("UpdateStats() error = %v", err)
	}

	got, _ := registry.GetByID(ctx, topic.ID)
	if got.PostCount != 7 || got.Importance != 140 {
		t.Errorf("stats = (%d, %d), want (7, 140)", got.PostCount, got.Importance)
	}

	if err := registry.UpdateStats(ctx, "missing", 1, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateStats() with unknown topic error = %v, want ErrNotFound", err)
	}
}

func TestRegistry_AddEdge(t *testing.T) {
	topicStore := &fakeTopicStore{}
	edgeStore := &fakeEdgeStore{}
	registry := newTestRegistry(topicStore, edgeStore, &fakePostStore{})
	ctx := context.Background()

	from, _ := registry.Create(ctx, CreateRequest{Name: "from"})
	to, _ := registry.Create(ctx, CreateRequest{Name: "to"})

	edge, err := registry.AddEdge(ctx, AddEdgeRequest{
		FromTopicID:  from.ID,
		ToTopicID:    to.ID,
		Relationship: "references",
		Strength:     0.8,
	})
	if err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}
	if edge.ID == "" {
		t.Error("AddEdge() returned empty ID")
	}

	// Multiple edges between the same pair with different labels are
	// allowed.
	if _, err := registry.AddEdge(ctx, AddEdgeRequest{
		FromTopicID:  from.ID,
		ToTopicID:    to.ID,
		Relationship: "contradicts",
	}); err != nil {
		t.Fatalf("AddEdge() second label error = %v", err)
	}
	if len(edgeStore.rows) != 2 {
		t.Errorf("store has %d edges, want 2", len(edgeStore.rows))
	}

	edges, err := registry.Edges(ctx, from.ID)
	if err != nil {
		t.Fatalf("Edges() error = %v", err)
	}
	if len(edges) != 2 {
		t.Errorf("Edges() returned %d edges, want 2", len(edges))
	}
}

func TestRegistry_AddEdge_RejectsSelfLoop(t *testing.T) {
	registry := newTestRegistry(&fakeTopicStore{}, &fakeEdgeStore{}, &fakePostStore{})
	ctx := context.Background()

	topic, _ := registry.Create(ctx, CreateRequest{Name: "loop"})

	_, err := registry.AddEdge(ctx, AddEdgeRequest{
		FromTopicID:  topic.ID,
		ToTopicID:    topic.ID,
		Relationship: "related",
	})
	if !errors.Is(err, ErrSelfEdge) {
		t.Errorf("AddEdge() self-loop error = %v, want ErrSelfEdge", err)
	}
}

func TestRegistry_AddEdge_NotFound(t *testing.T) {
	registry := newTestRegistry(&fakeTopicStore{}, &fakeEdgeStore{}, &fakePostStore{})
	ctx := context.Background()

	topic, _ := registry.Create(ctx, CreateRequest{Name: "known"})

	_, err := registry.AddEdge(ctx, AddEdgeRequest{
		FromTopicID:  topic.ID,
		ToTopicID:    "missing",
		Relationship: "related",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("AddEdge() with unknown topic error = %v, want ErrNotFound", err)
	}
}

func TestRegistry_TopTopics(t *testing.T) {
	topicStore := &fakeTopicStore{}
	registry := newTestRegistry(topicStore, &fakeEdgeStore{}, &fakePostStore{})
	ctx := context.Background()

	low, _ := registry.Create(ctx, CreateRequest{Name: "low"})
	high, _ := registry.Create(ctx, CreateRequest{Name: "high"})

	_ = registry.UpdateStats(ctx, low.ID, 1, 10)
	_ = registry.UpdateStats(ctx, high.ID, 3, 60)

	top, err := registry.TopTopics(ctx, 1)
	if err != nil {
		t.Fatalf("TopTopics() error = %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("TopTopics(1) returned %d topics, want 1", len(top))
	}
	if top[0].Name != "high" {
		t.Errorf("TopTopics(1)[0] = %q, want %q", top[0].Name, "high")
	}
}

func TestRegistry_Search(t *testing.T) {
	topicStore := &fakeTopicStore{}
	registry := newTestRegistry(topicStore, &fakeEdgeStore{}, &fakePostStore{})
	ctx := context.Background()

	_, _ = registry.Create(ctx, CreateRequest{Name: "Agent Infrastructure"})
	_, _ = registry.Create(ctx, CreateRequest{Name: "Local AI Models"})

	result, err := registry.Search(ctx, "infra")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(result) != 1 || result[0].Name != "Agent Infrastructure" {
		t.Errorf("Search(infra) = %v, want [Agent Infrastructure]", topicNames(result))
	}

	// Empty query returns everything.
	all, err := registry.Search(ctx, "")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Search(\"\") returned %d topics, want 2", len(all))
	}
}

func topicNames(in []*Topic) []string {
	names := make([]string, len(in))
	for i, t := range in {
		names[i] = t.Name
	}
	return names
}
