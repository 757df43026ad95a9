package blatt

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// feedLimit caps the feed at the most recent entries.
const feedLimit = 10

// AtomFeed is the syndication envelope (a list of posts).
type AtomFeed struct {
	XMLName  xml.Name    `xml:"feed"`
	Xmlns    string      `xml:"xmlns,attr"`
	ID       string      `xml:"id"`
	Title    AtomText    `xml:"title"`
	Subtitle AtomText    `xml:"subtitle,omitempty"`
	Author   AtomAuthor  `xml:"author"`
	Updated  string      `xml:"updated"`
	Link     []AtomLink  `xml:"link"`
	Entry    []AtomEntry `xml:"entry"`
}

// AtomEntry is one post in the feed.
type AtomEntry struct {
	ID        string     `xml:"id"`
	Title     AtomText   `xml:"title"`
	Published string     `xml:"published"`
	Updated   string     `xml:"updated"`
	Link      []AtomLink `xml:"link"`
	Content   AtomCDATA  `xml:"content"`
}

type AtomText struct {
	Type string `xml:"type,attr,omitempty"`
	Text string `xml:",chardata"`
}

type AtomAuthor struct {
	Name string `xml:"name"`
}

type AtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr,omitempty"`
}

type AtomCDATA struct {
	Type string `xml:"type,attr"`
	Text string `xml:",cdata"`
}

// newAtomFeed builds the feed envelope from posts already ordered newest
// first. Each entry's published and updated timestamps are both the post's
// date; the feed's updated timestamp is the newest entry's.
func newAtomFeed(cfg SiteConfig, posts []Post) (AtomFeed, error) {
	if len(posts) > feedLimit {
		posts = posts[:feedLimit]
	}
	feed := AtomFeed{
		Xmlns:    "http://www.w3.org/2005/Atom",
		ID:       BuildURL(cfg.URL),
		Title:    AtomText{Type: "text", Text: cfg.Name},
		Subtitle: AtomText{Type: "text", Text: cfg.Subtitle},
		Author:   AtomAuthor{Name: cfg.Author},
		Link: []AtomLink{
			{Href: cfg.URL + "/feed", Rel: "self"},
			{Href: BuildURL(cfg.URL), Rel: "alternate"},
		},
		Entry: make([]AtomEntry, len(posts)),
	}
	for i, p := range posts {
		t, err := time.Parse(DateFormat, p.Date)
		if err != nil {
			return AtomFeed{}, fmt.Errorf("post %s: malformed date %q: %w", p.Slug, p.Date, err)
		}
		stamp := t.UTC().Format(time.RFC3339)
		if i == 0 {
			feed.Updated = stamp
		}
		postURL := BuildURL(cfg.URL, "post", p.Slug)
		feed.Entry[i] = AtomEntry{
			ID:        postURL,
			Title:     AtomText{Type: "text", Text: p.Title},
			Published: stamp,
			Updated:   stamp,
			Link:      []AtomLink{{Href: postURL, Rel: "alternate"}},
			Content:   AtomCDATA{Type: "html", Text: p.Content},
		}
	}
	return feed, nil
}

func (a *App) renderAtom(c echo.Context, posts []Post) error {
	feed, err := newAtomFeed(a.Config, posts)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/atom+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
