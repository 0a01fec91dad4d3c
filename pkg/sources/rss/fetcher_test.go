package rss

import (
	"testing"

	"github.com/mmcdole/gofeed"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Radar Blog</title>
    <link>https://blog.example.com</link>
    <item>
      <title>New agent sandbox runtime released</title>
      <link>https://blog.example.com/agent-sandbox</link>
      <guid>blog-post-1</guid>
      <description>A sandboxed runtime for AI agents.</description>
      <author>someone@example.com (Some One)</author>
      <pubDate>Mon, 03 Nov 2025 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>No GUID, link only</title>
      <link>https://blog.example.com/no-guid</link>
    </item>
    <item>
      <title>Neither GUID nor link</title>
    </item>
  </channel>
</rss>`

func TestMapFeed(t *testing.T) {
	feed, err := gofeed.NewParser().ParseString(sampleFeed)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	inputs := MapFeed(feed)

	// The item with no usable identifier is skipped.
	if len(inputs) != 2 {
		t.Fatalf("MapFeed() returned %d inputs, want 2", len(inputs))
	}

	first := inputs[0]
	if first.ExternalID != "blog-post-1" {
		t.Errorf("ExternalID = %q, want GUID", first.ExternalID)
	}
	if first.Author != "Some One" {
		t.Errorf("Author = %q, want item author name", first.Author)
	}
	if first.URL != "https://blog.example.com/agent-sandbox" {
		t.Errorf("URL = %q, want item link", first.URL)
	}
	if first.Time == "" {
		t.Error("Time not mapped from pubDate")
	}
	if first.Text != "New agent sandbox runtime released\n\nA sandboxed runtime for AI agents." {
		t.Errorf("Text = %q, want title and description", first.Text)
	}

	second := inputs[1]
	if second.ExternalID != "https://blog.example.com/no-guid" {
		t.Errorf("ExternalID = %q, want link fallback", second.ExternalID)
	}
	if second.Author != "Radar Blog" {
		t.Errorf("Author = %q, want feed title fallback", second.Author)
	}
	if second.Text != "No GUID, link only" {
		t.Errorf("Text = %q, want bare title", second.Text)
	}
}
