package api

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/feedradar/radar/pkg/feedback"
	"github.com/feedradar/radar/pkg/posts"
	"github.com/feedradar/radar/pkg/projects"
	"github.com/feedradar/radar/pkg/topics"
	httpswagger "github.com/swaggo/http-swagger"

	"github.com/rs/zerolog"
)

//go:embed openapi.yaml
var openapiSpecYaml string

type postRegistry interface {
	Ingest(ctx context.Context, inputs []posts.IngestInput) ([]posts.IngestResult, error)
	List(ctx context.Context, req posts.ListRequest) ([]*posts.Post, error)
}

type topicRegistry interface {
	Create(ctx context.Context, req topics.CreateRequest) (*topics.Topic, error)
	AssignPost(ctx context.Context, postID, topicID string) error
	UpdateStats(ctx context.Context, topicID string, postCount, importance int) error
	List(ctx context.Context) ([]*topics.Topic, error)
	TopTopics(ctx context.Context, limit int) ([]*topics.Topic, error)
	Search(ctx context.Context, query string) ([]*topics.Topic, error)
	AddEdge(ctx context.Context, req topics.AddEdgeRequest) (*topics.Edge, error)
	Edges(ctx context.Context, topicID string) ([]*topics.Edge, error)
}

type projectRegistry interface {
	Create(ctx context.Context, req projects.CreateRequest) (*projects.Project, error)
	List(ctx context.Context) ([]*projects.Project, error)
	Score(ctx context.Context, req projects.ScoreRequest) (*projects.Relevance, error)
	HighRelevance(ctx context.Context, minScore float64, projectID string) ([]*projects.AnnotatedRelevance, error)
	TopicRelevance(ctx context.Context, topicID string) ([]*projects.AnnotatedRelevance, error)
}

type feedbackRegistry interface {
	Record(ctx context.Context, req feedback.RecordRequest) (*feedback.Feedback, error)
	List(ctx context.Context) ([]*feedback.Feedback, error)
}

type clusterRunner interface {
	Run(ctx context.Context, defs []topics.Definition) ([]*topics.Cluster, error)
}

type Server struct {
	posts     postRegistry
	topics    topicRegistry
	projects  projectRegistry
	feedback  feedbackRegistry
	clusterer clusterRunner
	logger    *zerolog.Logger
	http      http.Server
}

func NewServer(
	logger *zerolog.Logger,
	config *Config,
	postRegistry postRegistry,
	topicRegistry topicRegistry,
	projectRegistry projectRegistry,
	feedbackRegistry feedbackRegistry,
	clusterer clusterRunner,
) *Server {
	mux := http.NewServeMux()

	server := &Server{
		posts:     postRegistry,
		topics:    topicRegistry,
		projects:  projectRegistry,
		feedback:  feedbackRegistry,
		clusterer: clusterer,
		logger:    logger,
		http: http.Server{
			Addr:    fmt.Sprintf("%s:%d", config.Host, config.Port),
			Handler: corsMiddleware(mux, config.CORSOrigin),
		},
	}

	server.registerHandlers(mux)
	server.registerApiDocsHandlers(mux)

	return server
}

func (s *Server) registerHandlers(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/posts/ingest", s.ingestPosts)
	mux.HandleFunc("GET /api/posts", s.listPosts)

	mux.HandleFunc("POST /api/topics", s.createTopic)
	mux.HandleFunc("GET /api/topics", s.listTopics)
	mux.HandleFunc("GET /api/topics/top", s.topTopics)
	mux.HandleFunc("GET /api/topics/search", s.searchTopics)
	mux.HandleFunc("POST /api/topics/assign", s.assignPost)
	mux.HandleFunc("POST /api/topics/edges", s.addEdge)
	mux.HandleFunc("GET /api/topics/{id}/edges", s.listEdges)
	mux.HandleFunc("POST /api/topics/{id}/stats", s.updateTopicStats)
	mux.HandleFunc("GET /api/topics/{id}/relevance", s.topicRelevance)

	mux.HandleFunc("POST /api/projects", s.createProject)
	mux.HandleFunc("GET /api/projects", s.listProjects)

	mux.HandleFunc("POST /api/relevance", s.scoreRelevance)
	mux.HandleFunc("GET /api/relevance/high", s.highRelevance)

	mux.HandleFunc("POST /api/feedback", s.recordFeedback)
	mux.HandleFunc("GET /api/feedback", s.listFeedback)

	mux.HandleFunc("POST /api/cluster/run", s.runCluster)
}

func corsMiddleware(next http.Handler, originConfig string) http.Handler {
	origins := strings.Split(originConfig, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestOrigin := r.Header.Get("Origin")

		if len(origins) == 1 && origins[0] == "*" {
			// Allow all origins
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else if requestOrigin != "" && slices.Contains(origins, requestOrigin) {
			// CORS doesn't support multiple origins,
			// so we either set the origin in the header or not at all.
			w.Header().Set("Access-Control-Allow-Origin", requestOrigin)
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerApiDocsHandlers(mux *http.ServeMux) {
	mux.Handle("/docs/", httpswagger.Handler(
		httpswagger.URL("/docs/openapi.yaml"),
	))
	mux.HandleFunc("/docs/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/x-yaml")

		_, err := w.Write([]byte(openapiSpecYaml))
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			s.logger.Error().Err(err).Msg("response write error")
		}
	})
}

func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop() error {
	return s.http.Close()
}
