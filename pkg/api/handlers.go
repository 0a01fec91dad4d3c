package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/feedradar/radar/pkg/feedback"
	"github.com/feedradar/radar/pkg/lib"
	"github.com/feedradar/radar/pkg/posts"
	"github.com/feedradar/radar/pkg/projects"
	"github.com/feedradar/radar/pkg/topics"
)

func (s *Server) ingestPosts(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Posts []posts.IngestInput `json:"posts"`
	}
	if !s.decodeReq(w, r, &req) {
		return
	}

	results, err := s.posts.Ingest(r.Context(), req.Posts)
	if err != nil {
		s.handleError(w, err, "ingest posts")
		return
	}

	s.serializeRes(w, results)
}

func (s *Server) listPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := 0
	if v := query.Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Invalid limit value", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	result, err := s.posts.List(r.Context(), posts.ListRequest{
		TopicID:       query.Get("topicId"),
		AuthorHandle:  query.Get("author"),
		OnlyBookmarks: query.Get("bookmarks") == "true",
		Limit:         limit,
	})
	if err != nil {
		s.handleError(w, err, "list posts")
		return
	}

	s.serializeRes(w, result)
}

func (s *Server) createTopic(w http.ResponseWriter, r *http.Request) {
	var req topics.CreateRequest
	if !s.decodeReq(w, r, &req) {
		return
	}

	topic, err := s.topics.Create(r.Context(), req)
	if err != nil {
		s.handleError(w, err, "create topic")
		return
	}

	s.serializeRes(w, topic)
}

func (s *Server) listTopics(w http.ResponseWriter, r *http.Request) {
	result, err := s.topics.List(r.Context())
	if err != nil {
		s.handleError(w, err, "list topics")
		return
	}

	s.serializeRes(w, result)
}

func (s *Server) topTopics(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Invalid limit value", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	result, err := s.topics.TopTopics(r.Context(), limit)
	if err != nil {
		s.handleError(w, err, "top topics")
		return
	}

	s.serializeRes(w, result)
}

func (s *Server) searchTopics(w http.ResponseWriter, r *http.Request) {
	result, err := s.topics.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.handleError(w, err, "search topics")
		return
	}

	s.serializeRes(w, result)
}

func (s *Server) assignPost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PostID  string `json:"postId"`
		TopicID string `json:"topicId"`
	}
	if !s.decodeReq(w, r, &req) {
		return
	}

	if err := s.topics.AssignPost(r.Context(), req.PostID, req.TopicID); err != nil {
		s.handleError(w, err, "assign post to topic")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addEdge(w http.ResponseWriter, r *http.Request) {
	var req topics.AddEdgeRequest
	if !s.decodeReq(w, r, &req) {
		return
	}

	edge, err := s.topics.AddEdge(r.Context(), req)
	if err != nil {
		s.handleError(w, err, "add topic edge")
		return
	}

	s.serializeRes(w, edge)
}

func (s *Server) listEdges(w http.ResponseWriter, r *http.Request) {
	result, err := s.topics.Edges(r.Context(), r.PathValue("id"))
	if err != nil {
		s.handleError(w, err, "list topic edges")
		return
	}

	s.serializeRes(w, result)
}

func (s *Server) updateTopicStats(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PostCount  int `json:"postCount"`
		Importance int `json:"importance"`
	}
	if !s.decodeReq(w, r, &req) {
		return
	}

	if err := s.topics.UpdateStats(r.Context(), r.PathValue("id"), req.PostCount, req.Importance); err != nil {
		s.handleError(w, err, "update topic stats")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) topicRelevance(w http.ResponseWriter, r *http.Request) {
	result, err := s.projects.TopicRelevance(r.Context(), r.PathValue("id"))
	if err != nil {
		s.handleError(w, err, "topic relevance")
		return
	}

	s.serializeRes(w, result)
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	// Projects default to active unless the request says otherwise.
	req := projects.CreateRequest{Active: true}
	if !s.decodeReq(w, r, &req) {
		return
	}

	project, err := s.projects.Create(r.Context(), req)
	if err != nil {
		s.handleError(w, err, "create project")
		return
	}

	s.serializeRes(w, project)
}

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	result, err := s.projects.List(r.Context())
	if err != nil {
		s.handleError(w, err, "list projects")
		return
	}

	s.serializeRes(w, result)
}

func (s *Server) scoreRelevance(w http.ResponseWriter, r *http.Request) {
	var req projects.ScoreRequest
	if !s.decodeReq(w, r, &req) {
		return
	}

	rel, err := s.projects.Score(r.Context(), req)
	if err != nil {
		s.handleError(w, err, "score relevance")
		return
	}

	s.serializeRes(w, rel)
}

func (s *Server) highRelevance(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	minScore := 0.0
	if v := query.Get("minScore"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "Invalid minScore value", http.StatusBadRequest)
			return
		}
		minScore = parsed
	}

	result, err := s.projects.HighRelevance(r.Context(), minScore, query.Get("projectId"))
	if err != nil {
		s.handleError(w, err, "high relevance")
		return
	}

	s.serializeRes(w, result)
}

func (s *Server) recordFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedback.RecordRequest
	if !s.decodeReq(w, r, &req) {
		return
	}

	fb, err := s.feedback.Record(r.Context(), req)
	if err != nil {
		s.handleError(w, err, "record feedback")
		return
	}

	s.serializeRes(w, fb)
}

func (s *Server) listFeedback(w http.ResponseWriter, r *http.Request) {
	result, err := s.feedback.List(r.Context())
	if err != nil {
		s.handleError(w, err, "list feedback")
		return
	}

	s.serializeRes(w, result)
}

func (s *Server) runCluster(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Definitions []topics.Definition `json:"definitions"`
	}
	if !s.decodeReq(w, r, &req) {
		return
	}

	defs := req.Definitions
	if len(defs) == 0 {
		// No explicit definitions: rebuild clusters from the keyword
		// lists of stored topics.
		stored, err := s.topics.List(r.Context())
		if err != nil {
			s.handleError(w, err, "list topics for clustering")
			return
		}
		for _, t := range stored {
			if len(t.Keywords) == 0 {
				continue
			}
			defs = append(defs, topics.Definition{
				Name:     t.Name,
				Keywords: t.Keywords,
				Summary:  t.Summary,
			})
		}
	}

	ranked, err := s.clusterer.Run(r.Context(), defs)
	if err != nil {
		s.handleError(w, err, "run clustering pass")
		return
	}

	s.serializeRes(w, ranked)
}

// decodeReq decodes the JSON body into v, writing a 400 and returning
// false on malformed input. An empty body leaves v untouched.
func (s *Server) decodeReq(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) serializeRes(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode response")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// handleError maps domain errors onto HTTP statuses: validation
// failures are 400, unresolved references 404, anything else a logged
// 500.
func (s *Server) handleError(w http.ResponseWriter, err error, msg string) {
	var validationErrs lib.ValidationErrors

	switch {
	case errors.As(err, &validationErrs),
		errors.Is(err, projects.ErrScoreOutOfRange),
		errors.Is(err, topics.ErrSelfEdge):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, posts.ErrNotFound),
		errors.Is(err, topics.ErrNotFound),
		errors.Is(err, projects.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		s.logger.Error().Err(err).Msg("Request failed: " + msg)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
