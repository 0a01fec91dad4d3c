// Package rss adapts RSS/Atom feeds into raw post records for manual
// seeding. It is an ingestion collaborator, not part of the clustering
// engine: it only produces IngestInput rows for the post registry.
package rss

import (
	"context"
	"fmt"
	"time"

	"github.com/feedradar/radar/pkg/posts"
	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog"
)

type Fetcher struct {
	parser *gofeed.Parser
	logger *zerolog.Logger
}

func NewFetcher(logger *zerolog.Logger) *Fetcher {
	return &Fetcher{
		parser: gofeed.NewParser(),
		logger: logger,
	}
}

// Fetch pulls the feed and maps its items to ingest inputs.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string) ([]posts.IngestInput, error) {
	feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %q: %w", feedURL, err)
	}

	inputs := MapFeed(feed)

	f.logger.Info().
		Str("feed_url", feedURL).
		Int("item_count", len(inputs)).
		Msg("Fetched feed")

	return inputs, nil
}

// MapFeed converts parsed feed items into ingest inputs. The item GUID
// serves as the external ID so re-fetching a feed dedupes on ingest;
// items without a GUID fall back to their link.
func MapFeed(feed *gofeed.Feed) []posts.IngestInput {
	inputs := make([]posts.IngestInput, 0, len(feed.Items))

	for _, item := range feed.Items {
		externalID := item.GUID
		if externalID == "" {
			externalID = item.Link
		}
		if externalID == "" {
			continue
		}

		author := feed.Title
		if item.Author != nil && item.Author.Name != "" {
			author = item.Author.Name
		}

		published := item.Published
		if item.PublishedParsed != nil {
			published = item.PublishedParsed.Format(time.RFC3339)
		}

		text := item.Title
		if item.Description != "" {
			text = item.Title + "\n\n" + item.Description
		}

		inputs = append(inputs, posts.IngestInput{
			ExternalID:   externalID,
			Author:       author,
			AuthorHandle: feed.Link,
			Text:         text,
			URL:          item.Link,
			Time:         published,
		})
	}

	return inputs
}
