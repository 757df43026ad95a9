package blatt

import (
	"fmt"
	"strings"
	"testing"
)

func feedConfig() SiteConfig {
	cfg := SiteConfig{
		Name:     "Emacs Horrors",
		URL:      "https://example.com",
		Subtitle: "Rants",
		Author:   "V. S.",
	}
	cfg.setDefaults()
	return cfg
}

func TestNewAtomFeedCapsEntries(t *testing.T) {
	var posts []Post
	for i := 0; i < 15; i++ {
		posts = append(posts, Post{
			Slug:     fmt.Sprintf("post-%02d", i),
			Title:    fmt.Sprintf("Post %d", i),
			Date:     fmt.Sprintf("2024-01-%02d 10:00:00", 15-i), // newest first
			Category: "emacs",
			Content:  "<p>body</p>",
		})
	}

	feed, err := newAtomFeed(feedConfig(), posts)
	if err != nil {
		t.Fatalf("newAtomFeed: %v", err)
	}
	if len(feed.Entry) != feedLimit {
		t.Errorf("got %d entries, want %d", len(feed.Entry), feedLimit)
	}
	if feed.Entry[0].ID != "https://example.com/post/post-00/" {
		t.Errorf("first entry ID = %q", feed.Entry[0].ID)
	}
}

func TestNewAtomFeedEnvelope(t *testing.T) {
	posts := []Post{{
		Slug:     "hello",
		Title:    "Hello",
		Date:     "2024-01-15 10:30:00",
		Category: "emacs",
		Content:  "<p>hi</p>",
	}}

	feed, err := newAtomFeed(feedConfig(), posts)
	if err != nil {
		t.Fatalf("newAtomFeed: %v", err)
	}
	if feed.Title.Text != "Emacs Horrors" || feed.Title.Type != "text" {
		t.Errorf("title = %+v", feed.Title)
	}
	if feed.Subtitle.Text != "Rants" {
		t.Errorf("subtitle = %+v", feed.Subtitle)
	}
	if feed.Author.Name != "V. S." {
		t.Errorf("author = %+v", feed.Author)
	}

	entry := feed.Entry[0]
	if entry.Published != entry.Updated {
		t.Errorf("published %q != updated %q", entry.Published, entry.Updated)
	}
	if !strings.HasPrefix(entry.Published, "2024-01-15T10:30:00") {
		t.Errorf("published = %q, want post date", entry.Published)
	}
	if feed.Updated != entry.Published {
		t.Errorf("feed updated = %q, want newest entry's %q", feed.Updated, entry.Published)
	}
	if entry.Content.Type != "html" || entry.Content.Text != "<p>hi</p>" {
		t.Errorf("content = %+v", entry.Content)
	}
}

func TestNewAtomFeedMalformedDate(t *testing.T) {
	posts := []Post{{Slug: "bad", Title: "Bad", Date: "yesterday", Category: "emacs"}}
	if _, err := newAtomFeed(feedConfig(), posts); err == nil {
		t.Fatal("expected error for malformed date")
	}
}
