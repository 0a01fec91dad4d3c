package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/feedradar/radar/pkg/feedback"
	"github.com/feedradar/radar/pkg/posts"
	"github.com/feedradar/radar/pkg/projects"
	"github.com/feedradar/radar/pkg/topics"
	"github.com/rs/zerolog"
)

type stubPostRegistry struct {
	ingestResults []posts.IngestResult
	ingestErr     error
	listResult    []*posts.Post
	lastListReq   posts.ListRequest
}

func (s *stubPostRegistry) Ingest(_ context.Context, _ []posts.IngestInput) ([]posts.IngestResult, error) {
	return s.ingestResults, s.ingestErr
}

func (s *stubPostRegistry) List(_ context.Context, req posts.ListRequest) ([]*posts.Post, error) {
	s.lastListReq = req
	return s.listResult, nil
}

type stubTopicRegistry struct {
	topics    []*topics.Topic
	assignErr error
}

func (s *stubTopicRegistry) Create(_ context.Context, req topics.CreateRequest) (*topics.Topic, error) {
	return &topics.Topic{ID: "t-new", Name: req.Name, Keywords: req.Keywords}, nil
}

func (s *stubTopicRegistry) AssignPost(_ context.Context, _, _ string) error {
	return s.assignErr
}

func (s *stubTopicRegistry) UpdateStats(_ context.Context, _ string, _, _ int) error {
	return nil
}

func (s *stubTopicRegistry) List(_ context.Context) ([]*topics.Topic, error) {
	return s.topics, nil
}

func (s *stubTopicRegistry) TopTopics(_ context.Context, limit int) ([]*topics.Topic, error) {
	if limit > 0 && len(s.topics) > limit {
		return s.topics[:limit], nil
	}
	return s.topics, nil
}

func (s *stubTopicRegistry) Search(_ context.Context, _ string) ([]*topics.Topic, error) {
	return s.topics, nil
}

func (s *stubTopicRegistry) AddEdge(_ context.Context, req topics.AddEdgeRequest) (*topics.Edge, error) {
	if req.FromTopicID == req.ToTopicID {
		return nil, topics.ErrSelfEdge
	}
	return &topics.Edge{ID: "e1", FromTopicID: req.FromTopicID, ToTopicID: req.ToTopicID}, nil
}

func (s *stubTopicRegistry) Edges(_ context.Context, topicID string) ([]*topics.Edge, error) {
	return []*topics.Edge{{ID: "e1", FromTopicID: topicID}}, nil
}

type stubProjectRegistry struct {
	scoreErr    error
	lastCreate  projects.CreateRequest
	lastMin     float64
	lastProject string
}

func (s *stubProjectRegistry) Create(_ context.Context, req projects.CreateRequest) (*projects.Project, error) {
	s.lastCreate = req
	return &projects.Project{ID: "pr1", Name: req.Name, Active: req.Active}, nil
}

func (s *stubProjectRegistry) List(_ context.Context) ([]*projects.Project, error) {
	return nil, nil
}

func (s *stubProjectRegistry) Score(_ context.Context, req projects.ScoreRequest) (*projects.Relevance, error) {
	if s.scoreErr != nil {
		return nil, s.scoreErr
	}
	return &projects.Relevance{ID: "r1", TopicID: req.TopicID, ProjectID: req.ProjectID, Score: req.Score}, nil
}

func (s *stubProjectRegistry) HighRelevance(_ context.Context, minScore float64, projectID string) ([]*projects.AnnotatedRelevance, error) {
	s.lastMin = minScore
	s.lastProject = projectID
	return nil, nil
}

func (s *stubProjectRegistry) TopicRelevance(_ context.Context, _ string) ([]*projects.AnnotatedRelevance, error) {
	return nil, nil
}

type stubFeedbackRegistry struct{}

func (s *stubFeedbackRegistry) Record(_ context.Context, req feedback.RecordRequest) (*feedback.Feedback, error) {
	return &feedback.Feedback{ID: "f1", Rating: req.Rating}, nil
}

func (s *stubFeedbackRegistry) List(_ context.Context) ([]*feedback.Feedback, error) {
	return nil, nil
}

type stubClusterer struct {
	lastDefs []topics.Definition
}

func (s *stubClusterer) Run(_ context.Context, defs []topics.Definition) ([]*topics.Cluster, error) {
	s.lastDefs = defs
	return []*topics.Cluster{}, nil
}

type serverFixture struct {
	server    *Server
	posts     *stubPostRegistry
	topics    *stubTopicRegistry
	projects  *stubProjectRegistry
	clusterer *stubClusterer
}

func newServerFixture() *serverFixture {
	logger := zerolog.Nop()
	postStub := &stubPostRegistry{}
	topicStub := &stubTopicRegistry{}
	projectStub := &stubProjectRegistry{}
	clusterStub := &stubClusterer{}

	server := NewServer(
		&logger,
		&Config{Host: "localhost", Port: 0, CORSOrigin: "*"},
		postStub,
		topicStub,
		projectStub,
		&stubFeedbackRegistry{},
		clusterStub,
	)

	return &serverFixture{
		server:    server,
		posts:     postStub,
		topics:    topicStub,
		projects:  projectStub,
		clusterer: clusterStub,
	}
}

func (f *serverFixture) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.server.http.Handler.ServeHTTP(rec, req)
	return rec
}

func TestServer_IngestPosts(t *testing.T) {
	fixture := newServerFixture()
	fixture.posts.ingestResults = []posts.IngestResult{
		{ID: "p1", Status: posts.IngestStatusInserted},
	}

	rec := fixture.do(http.MethodPost, "/api/posts/ingest",
		`{"posts": [{"externalId": "x1", "text": "hello"}]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var results []posts.IngestResult
	if err := json.Unmarshal(rec.Body.Bytes(), &results); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(results) != 1 || results[0].Status != posts.IngestStatusInserted {
		t.Errorf("results = %+v, want one inserted", results)
	}
}

func TestServer_ListPosts_QueryParams(t *testing.T) {
	fixture := newServerFixture()

	rec := fixture.do(http.MethodGet, "/api/posts?topicId=t1&bookmarks=true&limit=5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	got := fixture.posts.lastListReq
	if got.TopicID != "t1" || !got.OnlyBookmarks || got.Limit != 5 {
		t.Errorf("list request = %+v, want filters from query", got)
	}

	rec = fixture.do(http.MethodGet, "/api/posts?limit=abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for bad limit", rec.Code)
	}
}

func TestServer_ScoreRelevance_OutOfRange(t *testing.T) {
	fixture := newServerFixture()
	fixture.projects.scoreErr = projects.ErrScoreOutOfRange

	rec := fixture.do(http.MethodPost, "/api/relevance",
		`{"topicId": "t1", "projectId": "pr1", "score": 1.5, "reasoning": "r"}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestServer_AssignPost_UnknownTopic(t *testing.T) {
	fixture := newServerFixture()
	fixture.topics.assignErr = topics.ErrNotFound

	rec := fixture.do(http.MethodPost, "/api/topics/assign",
		`{"postId": "p1", "topicId": "missing"}`)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestServer_AddEdge_SelfLoop(t *testing.T) {
	fixture := newServerFixture()

	rec := fixture.do(http.MethodPost, "/api/topics/edges",
		`{"fromTopicId": "t1", "toTopicId": "t1", "relationship": "related"}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestServer_TopicEdges_PathValue(t *testing.T) {
	fixture := newServerFixture()

	rec := fixture.do(http.MethodGet, "/api/topics/t42/edges", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var edges []*topics.Edge
	if err := json.Unmarshal(rec.Body.Bytes(), &edges); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(edges) != 1 || edges[0].FromTopicID != "t42" {
		t.Errorf("edges = %+v, want edge for t42", edges)
	}
}

func TestServer_CreateProject_DefaultsActive(t *testing.T) {
	fixture := newServerFixture()

	rec := fixture.do(http.MethodPost, "/api/projects", `{"name": "Tool Discovery"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	if !fixture.projects.lastCreate.Active {
		t.Error("project not active by default")
	}

	rec = fixture.do(http.MethodPost, "/api/projects", `{"name": "Paused", "active": false}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if fixture.projects.lastCreate.Active {
		t.Error("explicit active=false overridden")
	}
}

func TestServer_HighRelevance_QueryParams(t *testing.T) {
	fixture := newServerFixture()

	rec := fixture.do(http.MethodGet, "/api/relevance/high?minScore=0.8&projectId=pr1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	if fixture.projects.lastMin != 0.8 || fixture.projects.lastProject != "pr1" {
		t.Errorf("forwarded (%v, %q), want (0.8, pr1)",
			fixture.projects.lastMin, fixture.projects.lastProject)
	}
}

func TestServer_RunCluster_FallsBackToStoredTopics(t *testing.T) {
	fixture := newServerFixture()
	fixture.topics.topics = []*topics.Topic{
		{ID: "t1", Name: "Agent Infrastructure", Keywords: []string{"agent"}},
		{ID: "t2", Name: "No Keywords"},
	}

	rec := fixture.do(http.MethodPost, "/api/cluster/run", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	// Topics without keywords cannot be rebuilt and are skipped.
	defs := fixture.clusterer.lastDefs
	if len(defs) != 1 || defs[0].Name != "Agent Infrastructure" {
		t.Errorf("clusterer defs = %+v, want the one keyworded topic", defs)
	}
}

func TestServer_RecordFeedback(t *testing.T) {
	fixture := newServerFixture()

	rec := fixture.do(http.MethodPost, "/api/feedback", `{"rating": "good", "topicId": "t1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var fb feedback.Feedback
	if err := json.Unmarshal(rec.Body.Bytes(), &fb); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if fb.Rating != "good" {
		t.Errorf("rating = %q, want good", fb.Rating)
	}
}

func TestServer_MalformedBody(t *testing.T) {
	fixture := newServerFixture()

	rec := fixture.do(http.MethodPost, "/api/topics", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestServer_CORSPreflight(t *testing.T) {
	fixture := newServerFixture()

	rec := fixture.do(http.MethodOptions, "/api/topics", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
