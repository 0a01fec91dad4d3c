package posts

import "time"

// Post is an ingested social media item.
//
// ExternalID is the identifier assigned by the originating platform
// (e.g. the tweet status ID). At most one Post is stored per ExternalID.
// Time is the platform timestamp as an ISO 8601 string, kept verbatim
// from the source. TopicID references the topic the post is assigned to
// and stays empty until a clustering pass or manual assignment sets it.
type Post struct {
	ID           string    `json:"id"`
	ExternalID   string    `json:"externalId"`
	Author       string    `json:"author"`
	AuthorHandle string    `json:"authorHandle"`
	Followers    int       `json:"followers,omitempty"`
	Text         string    `json:"text"`
	URL          string    `json:"url"`
	Time         string    `json:"time"`
	HasMedia     bool      `json:"hasMedia,omitempty"`
	IsBookmark   bool      `json:"isBookmark,omitempty"`
	TopicID      string    `json:"topicId,omitempty"`
	FetchedAt    time.Time `json:"fetchedAt"`
}

// IngestInput is a single raw post record handed over by an ingestion source.
type IngestInput struct {
	ExternalID   string `json:"externalId" validate:"required"`
	Author       string `json:"author"`
	AuthorHandle string `json:"authorHandle"`
	Followers    int    `json:"followers,omitempty"`
	Text         string `json:"text" validate:"required"`
	URL          string `json:"url"`
	Time         string `json:"time"`
	HasMedia     bool   `json:"hasMedia,omitempty"`
	IsBookmark   bool   `json:"isBookmark,omitempty"`
}

type IngestStatus string

const (
	IngestStatusInserted IngestStatus = "inserted"
	IngestStatusExists   IngestStatus = "exists"
)

// IngestResult reports the outcome for one input record.
// ID always references the stored row, whether it was just
// created or already present.
type IngestResult struct {
	ID     string       `json:"id"`
	Status IngestStatus `json:"status"`
}

// ListRequest filters a post listing. Zero values mean "no filter".
type ListRequest struct {
	TopicID       string
	AuthorHandle  string
	OnlyBookmarks bool
	// Limit truncates the result. Defaults to DefaultListLimit when 0;
	// a negative value means no limit.
	Limit int
}

const DefaultListLimit = 50
