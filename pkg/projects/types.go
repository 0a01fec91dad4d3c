package projects

import "time"

// Project is a tracked interest area against which topics are scored.
// Only active projects participate in relevance queries.
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Active      bool     `json:"active"`
}

// Relevance links a topic to a project with a score in [0, 1] and a
// supporting rationale. Rows are append-only scoring history: nothing
// enforces one row per (topic, project) pair.
type Relevance struct {
	ID                 string    `json:"id"`
	TopicID            string    `json:"topicId"`
	ProjectID          string    `json:"projectId"`
	Score              float64   `json:"score"`
	Reasoning          string    `json:"reasoning"`
	ContentOpportunity string    `json:"contentOpportunity,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// AnnotatedRelevance is a relevance row joined with display names for
// presentation. A dangling topic or project reference yields an empty
// name, not an error.
type AnnotatedRelevance struct {
	Relevance
	TopicName   string `json:"topicName,omitempty"`
	ProjectName string `json:"projectName,omitempty"`
}
