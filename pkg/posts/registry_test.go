package posts

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
)

type fakeStore struct {
	rows []*Post
}

func (s *fakeStore) Insert(_ context.Context, p *Post) error {
	s.rows = append(s.rows, p)
	return nil
}

func (s *fakeStore) GetByID(_ context.Context, id string) (*Post, error) {
	for _, p := range s.rows {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *fakeStore) GetByExternalID(_ context.Context, externalID string) (*Post, error) {
	for _, p := range s.rows {
		if p.ExternalID == externalID {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *fakeStore) List(_ context.Context, req ListRequest) ([]*Post, error) {
	var result []*Post
	for _, p := range s.rows {
		if req.TopicID != "" && p.TopicID != req.TopicID {
			continue
		}
		if req.AuthorHandle != "" && p.AuthorHandle != req.AuthorHandle {
			continue
		}
		if req.OnlyBookmarks && !p.IsBookmark {
			continue
		}
		result = append(result, p)
	}
	if req.Limit > 0 && len(result) > req.Limit {
		result = result[:req.Limit]
	}
	return result, nil
}

func newTestRegistry(store *fakeStore) *Registry {
	logger := zerolog.Nop()
	return NewRegistry(&logger, store)
}

func TestRegistry_Ingest_IsIdempotent(t *testing.T) {
	store := &fakeStore{}
	registry := newTestRegistry(store)
	ctx := context.Background()

	input := IngestInput{
		ExternalID:   "1855000000000000001",
		Author:       "someone",
		AuthorHandle: "someone",
		Text:         "New agent sandbox runtime released",
		URL:          "https://x.com/someone/status/1855000000000000001",
	}

	first, err := registry.Ingest(ctx, []IngestInput{input})
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if len(first) != 1 || first[0].Status != IngestStatusInserted {
		t.Fatalf("first Ingest() = %+v, want one inserted result", first)
	}

	second, err := registry.Ingest(ctx, []IngestInput{input})
	if err != nil {
		t.Fatalf("second Ingest() error = %v", err)
	}
	if len(second) != 1 || second[0].Status != IngestStatusExists {
		t.Fatalf("second Ingest() = %+v, want one exists result", second)
	}

	if second[0].ID != first[0].ID {
		t.Errorf("second Ingest() ID = %q, want original %q", second[0].ID, first[0].ID)
	}
	if len(store.rows) != 1 {
		t.Errorf("store has %d posts, want exactly 1", len(store.rows))
	}
}

func TestRegistry_Ingest_MixedBatch(t *testing.T) {
	store := &fakeStore{}
	registry := newTestRegistry(store)
	ctx := context.Background()

	_, err := registry.Ingest(ctx, []IngestInput{
		{ExternalID: "a", Text: "first"},
	})
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}

	results, err := registry.Ingest(ctx, []IngestInput{
		{ExternalID: "a", Text: "first again"},
		{ExternalID: "b", Text: "second"},
	})
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}

	if results[0].Status != IngestStatusExists {
		t.Errorf("results[0].Status = %q, want exists", results[0].Status)
	}
	if results[1].Status != IngestStatusInserted {
		t.Errorf("results[1].Status = %q, want inserted", results[1].Status)
	}
	if len(store.rows) != 2 {
		t.Errorf("store has %d posts, want 2", len(store.rows))
	}
}

func TestRegistry_Ingest_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input IngestInput
	}{
		{name: "missing external ID", input: IngestInput{Text: "some text"}},
		{name: "missing text", input: IngestInput{ExternalID: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			registry := newTestRegistry(store)

			_, err := registry.Ingest(context.Background(), []IngestInput{tt.input})
			if err == nil {
				t.Fatal("Ingest() succeeded, want validation error")
			}
			if len(store.rows) != 0 {
				t.Errorf("store has %d posts after failed ingest, want 0", len(store.rows))
			}
		})
	}
}

func TestRegistry_GetByID_NotFound(t *testing.T) {
	registry := newTestRegistry(&fakeStore{})

	_, err := registry.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestRegistry_List_DefaultsLimit(t *testing.T) {
	store := &fakeStore{}
	registry := newTestRegistry(store)
	ctx := context.Background()

	var inputs []IngestInput
	for i := 0; i < DefaultListLimit+10; i++ {
		inputs = append(inputs, IngestInput{
			ExternalID: fmt.Sprintf("id-%d", i),
			Text:       "post",
		})
	}
	if _, err := registry.Ingest(ctx, inputs); err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}

	result, err := registry.List(ctx, ListRequest{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(result) != DefaultListLimit {
		t.Errorf("List() returned %d posts, want default limit %d", len(result), DefaultListLimit)
	}

	all, err := registry.List(ctx, ListRequest{Limit: -1})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != DefaultListLimit+10 {
		t.Errorf("List(-1) returned %d posts, want all %d", len(all), DefaultListLimit+10)
	}
}
