package blatt

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avermeer/blatt/views"
)

// queryPosts reads the current post set and runs it through the filter/sort
// pipeline. The clock is sampled here so publication state is recomputed on
// every evaluation.
func (a *App) queryPosts(opts QueryOptions) ([]Post, error) {
	posts, err := a.Cache.Posts()
	if err != nil {
		return nil, err
	}
	return ProcessPosts(posts, opts, time.Now())
}

// handleIndex serves the paginated front page at /, /posts/, and /posts/:page/.
func (a *App) handleIndex(c echo.Context) error {
	posts, err := a.queryPosts(QueryOptions{Published: publishedOnly})
	if err != nil {
		return err
	}
	return a.renderListing(c, posts, "/posts")
}

// handleCategoryPosts serves posts of one or more categories; the path
// segment may be comma-separated for OR filtering.
func (a *App) handleCategoryPosts(c echo.Context) error {
	segment := c.Param("category")
	posts, err := a.queryPosts(QueryOptions{
		Published:  publishedOnly,
		Categories: splitCategories(segment),
	})
	if err != nil {
		return err
	}
	return a.renderListing(c, posts, "/categories/"+segment)
}

// renderListing paginates an ascending post sequence and renders the page
// selected by the optional :page param (default 1).
func (a *App) renderListing(c echo.Context, posts []Post, basePath string) error {
	if len(posts) == 0 {
		return a.renderError(c, http.StatusOK, "No posts yet")
	}
	page := 1
	if raw := c.Param("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return a.renderError(c, http.StatusNotFound, "Invalid index")
		}
		page = n
	}
	pages := ReverseChunks(posts, a.Config.PageSize)
	view, err := SelectPage(pages, page)
	if err != nil {
		return a.renderError(c, http.StatusNotFound, "Invalid index")
	}
	return Render(c, views.Posts(a.Config.site(), view.Posts, view.Page, view.HasOlder, view.HasNewer, basePath))
}

// handlePost serves a single post by slug. The post is re-parsed from its
// source file; drafts stay reachable by direct link.
func (a *App) handlePost(c echo.Context) error {
	post, err := a.Store.ReadPost(c.Param("slug"))
	if err != nil {
		if err == ErrNotFound {
			return a.renderError(c, http.StatusNotFound, "No such post")
		}
		return err
	}
	return Render(c, views.PostPage(a.Config.site(), post))
}

// handleCategories serves the list of all categories with published posts.
func (a *App) handleCategories(c echo.Context) error {
	posts, err := a.queryPosts(QueryOptions{Published: publishedOnly})
	if err != nil {
		return err
	}
	return Render(c, views.Categories(a.Config.site(), allCategories(posts)))
}

// handleUnpublished serves the unpaginated draft listing, newest first.
func (a *App) handleUnpublished(c echo.Context) error {
	posts, err := a.queryPosts(QueryOptions{Published: unpublishedOnly, Reverse: true})
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		return a.renderError(c, http.StatusOK, "No unpublished posts")
	}
	return Render(c, views.Unpublished(a.Config.site(), posts))
}

// handleArchive serves the full archive of published posts, newest first.
func (a *App) handleArchive(c echo.Context) error {
	posts, err := a.queryPosts(QueryOptions{Published: publishedOnly, Reverse: true})
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		return a.renderError(c, http.StatusOK, "No posts yet")
	}
	return Render(c, views.Archive(a.Config.site(), posts))
}

// handleFeed serves the Atom feed, optionally filtered by comma-separated
// categories.
func (a *App) handleFeed(c echo.Context) error {
	opts := QueryOptions{Published: publishedOnly, Reverse: true}
	if segment := c.Param("category"); segment != "" {
		opts.Categories = splitCategories(segment)
	}
	posts, err := a.queryPosts(opts)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		return a.renderError(c, http.StatusOK, "No posts yet")
	}
	return a.renderAtom(c, posts)
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, views.About(a.Config.site()))
}

func (a *App) handleColophon(c echo.Context) error {
	return Render(c, views.Colophon(a.Config.site()))
}

func (a *App) handleImprint(c echo.Context) error {
	return Render(c, views.Imprint(a.Config.site()))
}

func (a *App) handleLegal(c echo.Context) error {
	return Render(c, views.Legal(a.Config.site()))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.ico")
}

// handleRobots generates robots.txt dynamically using the configured URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.queryPosts(QueryOptions{Published: publishedOnly, Reverse: true})
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

// renderError renders a soft, user-visible error view.
func (a *App) renderError(c echo.Context, code int, message string) error {
	return RenderStatus(c, code, views.ErrorPage(a.Config.site(), message))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = a.renderError(c, http.StatusNotFound, "404 Page not found")
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = a.renderError(c, code, "Something went wrong")
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// splitCategories parses a comma-separated category path segment.
func splitCategories(segment string) []string {
	return FilterEmpty(strings.Split(segment, ","))
}

// allCategories returns the sorted, deduplicated categories of the given posts.
func allCategories(posts []Post) []string {
	set := make(map[string]struct{})
	for _, p := range posts {
		set[p.Category] = struct{}{}
	}
	categories := make([]string, 0, len(set))
	for c := range set {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}
