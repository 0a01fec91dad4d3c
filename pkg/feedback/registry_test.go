package feedback

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

type fakeStore struct {
	rows []*Feedback
}

func (s *fakeStore) Insert(_ context.Context, f *Feedback) error {
	s.rows = append(s.rows, f)
	return nil
}

func (s *fakeStore) List(_ context.Context) ([]*Feedback, error) {
	// Most recent first.
	result := make([]*Feedback, len(s.rows))
	for i, f := range s.rows {
		result[len(s.rows)-1-i] = f
	}
	return result, nil
}

func newTestRegistry(store *fakeStore) *Registry {
	logger := zerolog.Nop()
	return NewRegistry(&logger, store)
}

func TestRegistry_Record_TopicOnly(t *testing.T) {
	store := &fakeStore{}
	registry := newTestRegistry(store)

	fb, err := registry.Record(context.Background(), RecordRequest{
		TopicID: "t1",
		Rating:  "good",
	})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if fb.PostID != "" {
		t.Errorf("PostID = %q, want empty", fb.PostID)
	}
	if fb.TopicID != "t1" {
		t.Errorf("TopicID = %q, want t1", fb.TopicID)
	}
	if fb.CreatedAt.IsZero() {
		t.Error("CreatedAt not assigned")
	}
}

func TestRegistry_Record_NeitherReferenceIsFine(t *testing.T) {
	registry := newTestRegistry(&fakeStore{})

	// Nothing requires a post or topic reference; only the rating is
	// mandatory.
	if _, err := registry.Record(context.Background(), RecordRequest{Rating: "dismiss"}); err != nil {
		t.Errorf("Record() without references error = %v", err)
	}

	if _, err := registry.Record(context.Background(), RecordRequest{Comment: "no rating"}); err == nil {
		t.Error("Record() without rating succeeded, want validation error")
	}
}

func TestRegistry_List_NewestFirst(t *testing.T) {
	store := &fakeStore{}
	registry := newTestRegistry(store)
	ctx := context.Background()

	first, err := registry.Record(ctx, RecordRequest{TopicID: "t1", Rating: "good"})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	second, err := registry.Record(ctx, RecordRequest{PostID: "p1", Rating: "bad", Comment: "off topic"})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	result, err := registry.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(result) != 2 {
		t.Fatalf("List() returned %d records, want 2", len(result))
	}
	if result[0].ID != second.ID || result[1].ID != first.ID {
		t.Errorf("List() order = [%s, %s], want newest first", result[0].ID, result[1].ID)
	}
}
