package topics

import (
	"context"
	"sort"
	"time"

	"github.com/feedradar/radar/pkg/posts"
)

type fakeTopicStore struct {
	rows []*Topic
}

func (s *fakeTopicStore) Insert(_ context.Context, t *Topic) error {
	s.rows = append(s.rows, t)
	return nil
}

func (s *fakeTopicStore) GetByID(_ context.Context, id string) (*Topic, error) {
	for _, t := range s.rows {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, ErrNotFound
}

func (s *fakeTopicStore) List(_ context.Context) ([]*Topic, error) {
	return append([]*Topic{}, s.rows...), nil
}

func (s *fakeTopicStore) ListByImportance(_ context.Context, limit int) ([]*Topic, error) {
	sorted := append([]*Topic{}, s.rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Importance > sorted[j].Importance
	})
	if limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (s *fakeTopicStore) UpdateStats(_ context.Context, id string, postCount, importance int, updatedAt time.Time) error {
	for _, t := range s.rows {
		if t.ID == id {
			t.PostCount = postCount
			t.Importance = importance
			t.UpdatedAt = updatedAt
			return nil
		}
	}
	return ErrNotFound
}

type fakeEdgeStore struct {
	rows []*Edge
}

func (s *fakeEdgeStore) Insert(_ context.Context, e *Edge) error {
	s.rows = append(s.rows, e)
	return nil
}

func (s *fakeEdgeStore) ListByTopic(_ context.Context, topicID string) ([]*Edge, error) {
	var result []*Edge
	for _, e := range s.rows {
		if e.FromTopicID == topicID || e.ToTopicID == topicID {
			result = append(result, e)
		}
	}
	return result, nil
}

type fakePostStore struct {
	rows []*posts.Post
}

func (s *fakePostStore) GetByID(_ context.Context, id string) (*posts.Post, error) {
	for _, p := range s.rows {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, posts.ErrNotFound
}

func (s *fakePostStore) SetTopic(_ context.Context, postID, topicID string) error {
	for _, p := range s.rows {
		if p.ID == postID {
			p.TopicID = topicID
			return nil
		}
	}
	return posts.ErrNotFound
}

func (s *fakePostStore) CountByTopic(_ context.Context, topicID string) (int, error) {
	count := 0
	for _, p := range s.rows {
		if p.TopicID == topicID {
			count++
		}
	}
	return count, nil
}

func (s *fakePostStore) List(_ context.Context, _ posts.ListRequest) ([]*posts.Post, error) {
	return append([]*posts.Post{}, s.rows...), nil
}
