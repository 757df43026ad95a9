package views

import (
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"
)

const (
	exactFormat   = "2006-01-02 15:04:05"
	displayFormat = "2006-01-02"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// DisplayedDate shortens an exact post timestamp to its date part.
// Unparsable input is passed through untouched.
func DisplayedDate(timestamp string) string {
	t, err := time.Parse(exactFormat, timestamp)
	if err != nil {
		return timestamp
	}
	return t.Format(displayFormat)
}

// approxStep is one tier of the humanized age scale. A zero factor means the
// format is a fixed phrase.
type approxStep struct {
	limit  float64
	format string
	factor float64
}

var approxSteps = []approxStep{
	{0, "In the future", 0},
	{60, "Just now", 0},
	{120, "A minute ago", 0},
	{3600, "%d minutes ago", 60},
	{7200, "An hour ago", 0},
	{86400, "%d hours ago", 3600},
	{172800, "A day ago", 0},
	{604800, "%d days ago", 86400},
	{1209600, "A week ago", 0},
	{2592000, "%d weeks ago", 604800},
	{5184000, "A month ago", 0},
	{31104000, "%d months ago", 2592000},
	{62208000, "A year ago", 0},
}

// ApproximateDate turns an exact post timestamp into a rough human-readable
// age relative to now ("Just now", "3 hours ago", "A week ago", ...).
func ApproximateDate(timestamp string, now time.Time) string {
	t, err := time.Parse(exactFormat, timestamp)
	if err != nil {
		return timestamp
	}
	delta := now.Sub(t).Seconds()
	for _, step := range approxSteps {
		if delta < step.limit {
			if step.factor > 0 {
				return fmt.Sprintf(step.format, int(delta/step.factor))
			}
			return step.format
		}
	}
	return fmt.Sprintf("%d years ago", int(delta/31104000))
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block for the layout head.
func WebsiteJsonLD(site Site) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     site.Name,
		"url":      buildURL(site.URL),
	}
	if site.Subtitle != "" {
		data["description"] = site.Subtitle
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD produces a Schema.org BlogPosting JSON-LD block for a post.
func BlogPostingJsonLD(site Site, post Post) string {
	postURL := buildURL(site.URL, "post", post.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"datePublished": DisplayedDate(post.Date),
		"url":           postURL,
		"keywords":      post.Category,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	if site.Name != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  site.Name,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
