// Package blatt is a flat-file blog engine built with Go, Echo, and templ.
// Posts are Markdown files with YAML front matter in a single directory;
// every request re-reads the directory, so what is on disk is what is served.
// It provides paginated listings, category views, an archive, an
// unpublished-drafts view, an Atom feed, and a sitemap out of the box.
package blatt

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
)

// App is the central blatt application. It wires together the store, cache,
// handlers, and middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *PostCache

	limiter      *RequestLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates a new blatt App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the store, cache, middleware, and routes, and starts the
// server.
func (a *App) Start() error {
	a.Store = NewStore(a.Config.PostsDir)
	a.Cache = NewPostCache(a.Store)
	a.limiter = NewRequestLimiter(a.Config.RateLimit, a.Config.RateLimitWindow)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded default stylesheet, falling through to the user's static dir.
	e.GET("/public/style.css", a.handleEmbeddedAsset)
	e.Static("/public", a.staticDir)
	e.GET("/favicon.ico", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)

	// Listings.
	e.GET("/", a.handleIndex)
	e.GET("/posts/", a.handleIndex)
	e.GET("/posts/:page/", a.handleIndex)
	e.GET("/post/:slug/", a.handlePost)
	e.GET("/categories/", a.handleCategories)
	e.GET("/categories/:category/", a.handleCategoryPosts)
	e.GET("/categories/:category/:page/", a.handleCategoryPosts)
	e.GET("/unpublished/", a.handleUnpublished)
	e.GET("/archive/", a.handleArchive)

	// Feed URLs carry no trailing slash, like sitemap.xml.
	e.GET("/feed", a.handleFeed)
	e.GET("/feed/:category", a.handleFeed)

	// Static informational pages.
	e.GET("/about/", a.handleAbout)
	e.GET("/colophon/", a.handleColophon)
	e.GET("/imprint/", a.handleImprint)
	e.GET("/legal/", a.handleLegal)
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("blatt: required environment variable %s is not set", key)
	}
	return v
}
