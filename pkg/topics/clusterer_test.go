package topics

import (
	"context"
	"testing"

	"github.com/feedradar/radar/pkg/posts"
	"github.com/rs/zerolog"
)

func newTestClusterer(topicStore *fakeTopicStore, postStore *fakePostStore) *Clusterer {
	logger := zerolog.Nop()
	registry := NewRegistry(&logger, topicStore, &fakeEdgeStore{}, postStore)
	return NewClusterer(&logger, postStore, registry, &Config{MaxScoreConcurrency: 4})
}

func TestClusterer_Run(t *testing.T) {
	topicStore := &fakeTopicStore{}
	postStore := &fakePostStore{rows: []*posts.Post{
		{ID: "p1", Text: "New agent sandbox runtime released"},
		{ID: "p2", Text: "Block cuts jobs after $8B market cap gain"},
	}}
	clusterer := newTestClusterer(topicStore, postStore)

	defs := []Definition{
		{
			Name:     "Agent Infrastructure",
			Keywords: []string{"agent", "sandbox", "runtime"},
			Summary:  "Tools and frameworks for running AI agents",
		},
		{
			Name:     "Block AI Layoffs",
			Keywords: []string{"block", "layoff", "market cap"},
			Summary:  "Block added $8B in market cap after announcing AI-driven layoffs",
		},
	}

	ranked, err := clusterer.Run(context.Background(), defs)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(ranked) != 2 {
		t.Fatalf("Run() returned %d clusters, want 2", len(ranked))
	}

	// Each post matches exactly one definition, with at least two
	// keyword hits: p1 hits all three agent keywords (importance
	// 1*3*10), p2 hits "block" and "market cap" (importance 1*2*10).
	agent, block := ranked[0], ranked[1]
	if agent.Definition.Name != "Agent Infrastructure" {
		t.Fatalf("ranked[0] = %q, want Agent Infrastructure", agent.Definition.Name)
	}

	if len(agent.Posts) != 1 || agent.Posts[0].Post.ID != "p1" {
		t.Errorf("agent cluster posts = %v, want [p1]", agent.Posts)
	}
	if agent.Posts[0].MatchCount != 3 {
		t.Errorf("agent match count = %d, want 3", agent.Posts[0].MatchCount)
	}
	if agent.Importance != 30 {
		t.Errorf("agent importance = %d, want 30", agent.Importance)
	}

	if len(block.Posts) != 1 || block.Posts[0].Post.ID != "p2" {
		t.Errorf("block cluster posts = %v, want [p2]", block.Posts)
	}
	if block.Posts[0].MatchCount != 2 {
		t.Errorf("block match count = %d, want 2", block.Posts[0].MatchCount)
	}
	if block.Importance != 20 {
		t.Errorf("block importance = %d, want 20", block.Importance)
	}

	// The pass persists topics, assignments and stats.
	if len(topicStore.rows) != 2 {
		t.Fatalf("store has %d topics, want 2", len(topicStore.rows))
	}
	for _, stored := range topicStore.rows {
		if stored.PostCount != 1 {
			t.Errorf("topic %q post count = %d, want 1", stored.Name, stored.PostCount)
		}
		if stored.Importance == 0 {
			t.Errorf("topic %q importance not pushed", stored.Name)
		}
	}
	for _, p := range postStore.rows {
		if p.TopicID == "" {
			t.Errorf("post %q not assigned to a topic", p.ID)
		}
	}
}

func TestClusterer_Run_ReusesStoredTopicByName(t *testing.T) {
	topicStore := &fakeTopicStore{rows: []*Topic{{
		ID:       "existing",
		Name:     "Agent Infrastructure",
		Keywords: []string{"agent"},
	}}}
	postStore := &fakePostStore{rows: []*posts.Post{
		{ID: "p1", Text: "agent tooling"},
	}}
	clusterer := newTestClusterer(topicStore, postStore)

	_, err := clusterer.Run(context.Background(), []Definition{
		{Name: "Agent Infrastructure", Keywords: []string{"agent"}},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(topicStore.rows) != 1 {
		t.Fatalf("store has %d topics, want the pre-existing one only", len(topicStore.rows))
	}
	if topicStore.rows[0].PostCount != 1 || topicStore.rows[0].Importance != 10 {
		t.Errorf("stats = (%d, %d), want (1, 10)",
			topicStore.rows[0].PostCount, topicStore.rows[0].Importance)
	}
	if postStore.rows[0].TopicID != "existing" {
		t.Errorf("post assigned to %q, want existing", postStore.rows[0].TopicID)
	}
}

func TestClusterer_Run_UnmatchedDefinitionsCreateNothing(t *testing.T) {
	topicStore := &fakeTopicStore{}
	postStore := &fakePostStore{rows: []*posts.Post{
		{ID: "p1", Text: "nothing relevant here"},
	}}
	clusterer := newTestClusterer(topicStore, postStore)

	ranked, err := clusterer.Run(context.Background(), []Definition{
		{Name: "Agent Infrastructure", Keywords: []string{"agent"}},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(ranked) != 0 {
		t.Errorf("Run() returned %d clusters, want 0", len(ranked))
	}
	if len(topicStore.rows) != 0 {
		t.Errorf("store has %d topics, want 0", len(topicStore.rows))
	}
}
