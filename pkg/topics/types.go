package topics

import (
	"time"

	"github.com/feedradar/radar/pkg/posts"
)

// Definition is a configured classification template: posts whose text
// contains at least one of the keywords belong to the topic it describes.
// Definitions are matcher input only and are never persisted as-is.
type Definition struct {
	Name     string   `json:"name" validate:"required"`
	Keywords []string `json:"keywords" validate:"required,min=1"`
	Summary  string   `json:"summary"`
}

// Topic is a named cluster of posts sharing a keyword theme.
//
// PostCount mirrors the number of posts currently referencing the topic
// and is recomputed from the store on every assignment, never trusted
// as a running counter. Importance is recomputed by ranking passes.
type Topic struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Summary      string    `json:"summary"`
	Keywords     []string  `json:"keywords"`
	PostCount    int       `json:"postCount"`
	Importance   int       `json:"importance"`
	SourcePostID string    `json:"sourcePostId,omitempty"`
	SourceURL    string    `json:"sourceUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Edge is a directed, typed, weighted relationship between two topics.
// Relationship is a free-form label ("references", "related",
// "contradicts", ...). Multiple edges between the same pair are allowed
// as long as the relationship labels differ in meaning; self-loops are
// rejected.
type Edge struct {
	ID           string  `json:"id"`
	FromTopicID  string  `json:"fromTopicId"`
	ToTopicID    string  `json:"toTopicId"`
	Relationship string  `json:"relationship"`
	Strength     float64 `json:"strength"`
}

// PostMatch tags a post with the number of definition keywords found in
// its text.
type PostMatch struct {
	Post       *posts.Post `json:"post"`
	MatchCount int         `json:"matchCount"`
}

// Cluster is the outcome of matching one definition against a post
// snapshot. Importance stays 0 until a ranking pass computes it.
type Cluster struct {
	Definition Definition  `json:"definition"`
	Posts      []PostMatch `json:"posts"`
	Importance int         `json:"importance"`
}
