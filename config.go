package blatt

import (
	"strings"
	"time"

	"github.com/avermeer/blatt/views"
)

// SiteConfig holds all configuration for a blatt site.
type SiteConfig struct {
	Name     string // Site name (default "Blog")
	URL      string // Canonical URL (default "http://localhost:3000")
	Subtitle string // Site subtitle for the feed and header
	Author   string // Author name for the feed and JSON-LD

	Addr     string // Listen address (default ":3000")
	PostsDir string // Directory of post source files (default "posts")
	PageSize int    // Posts per listing page (default 5)

	RateLimit       int           // Max requests per IP per window (default 120)
	RateLimitWindow time.Duration // Rate limit window (default 1min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.PostsDir == "" {
		c.PostsDir = "posts"
	}
	if c.PageSize == 0 {
		c.PageSize = 5
	}
	if c.RateLimit == 0 {
		c.RateLimit = 120
	}
	if c.RateLimitWindow == 0 {
		c.RateLimitWindow = time.Minute
	}
}

// site returns the subset of config the views package needs.
func (c *SiteConfig) site() views.Site {
	return views.Site{
		Name:     c.Name,
		URL:      c.URL,
		Subtitle: c.Subtitle,
		Author:   c.Author,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}
