// Package views renders all pages of the site as templ components. The
// components build their HTML into a buffer and write it out in one go, so
// they stay plain Go and need no code generation step.
package views

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/a-h/templ"
)

// layout wraps a page body in the shared document chrome.
func layout(site Site, title string, head func(*bytes.Buffer), body func(*bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		b.WriteString("<!DOCTYPE html><html lang=\"en\"><head>")
		b.WriteString("<meta charset=\"utf-8\"/>")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>")
		b.WriteString("<title>")
		if title != "" {
			b.WriteString(html.EscapeString(title))
			b.WriteString(" — ")
		}
		b.WriteString(html.EscapeString(site.Name))
		b.WriteString("</title>")
		b.WriteString("<link rel=\"stylesheet\" href=\"/public/style.css\"/>")
		b.WriteString("<link rel=\"alternate\" type=\"application/atom+xml\" title=\"" + html.EscapeString(site.Name) + "\" href=\"/feed\"/>")
		b.WriteString("<script type=\"application/ld+json\">")
		b.WriteString(WebsiteJsonLD(site))
		b.WriteString("</script>")
		if head != nil {
			head(&b)
		}
		b.WriteString("</head><body><header>")
		b.WriteString("<h1 class=\"site-title\"><a href=\"/\">" + html.EscapeString(site.Name) + "</a></h1>")
		if site.Subtitle != "" {
			b.WriteString("<p class=\"site-subtitle\">" + html.EscapeString(site.Subtitle) + "</p>")
		}
		b.WriteString("<nav><a href=\"/\">Posts</a> <a href=\"/archive/\">Archive</a> <a href=\"/categories/\">Categories</a> <a href=\"/feed\">Feed</a> <a href=\"/about/\">About</a></nav>")
		b.WriteString("</header><main>")
		body(&b)
		b.WriteString("</main><footer>")
		b.WriteString("<nav><a href=\"/colophon/\">Colophon</a> <a href=\"/imprint/\">Imprint</a> <a href=\"/legal/\">Legal</a></nav>")
		if site.Author != "" {
			b.WriteString("<p>© " + html.EscapeString(site.Author) + "</p>")
		}
		b.WriteString("</footer></body></html>")
		_, err := w.Write(b.Bytes())
		return err
	})
}

func writePost(b *bytes.Buffer, p Post) {
	b.WriteString("<article><h2><a href=\"/post/" + p.Slug + "/\">" + html.EscapeString(p.Title) + "</a></h2>")
	b.WriteString("<p class=\"post-meta\"><time datetime=\"" + DisplayedDate(p.Date) + "\">" + DisplayedDate(p.Date) + "</time>")
	b.WriteString(" · <a href=\"/categories/" + url.PathEscape(p.Category) + "/\">" + html.EscapeString(p.Category) + "</a></p>")
	b.WriteString("<div class=\"post-body\">")
	b.WriteString(p.Content)
	b.WriteString("</div></article>")
}

// Posts is the paginated listing page. basePath is the pagination URL prefix
// ("/posts" or "/categories/<category>").
func Posts(site Site, posts []Post, page int, hasOlder, hasNewer bool, basePath string) templ.Component {
	return layout(site, "", nil, func(b *bytes.Buffer) {
		for _, p := range posts {
			writePost(b, p)
		}
		if hasOlder || hasNewer {
			b.WriteString("<nav class=\"pagination\">")
			if hasNewer {
				b.WriteString("<a class=\"newer\" href=\"" + basePath + "/" + strconv.Itoa(page-1) + "/\">&laquo; Newer</a>")
			}
			if hasOlder {
				b.WriteString("<a class=\"older\" href=\"" + basePath + "/" + strconv.Itoa(page+1) + "/\">Older &raquo;</a>")
			}
			b.WriteString("</nav>")
		}
	})
}

// PostPage is the single post view.
func PostPage(site Site, post Post) templ.Component {
	head := func(b *bytes.Buffer) {
		b.WriteString("<script type=\"application/ld+json\">")
		b.WriteString(BlogPostingJsonLD(site, post))
		b.WriteString("</script>")
	}
	return layout(site, post.Title, head, func(b *bytes.Buffer) {
		b.WriteString("<article><h2>" + html.EscapeString(post.Title) + "</h2>")
		b.WriteString("<p class=\"post-meta\"><time datetime=\"" + DisplayedDate(post.Date) + "\">" + DisplayedDate(post.Date) + "</time></p>")
		b.WriteString("<div class=\"post-body\">")
		b.WriteString(post.Content)
		b.WriteString("</div></article>")
	})
}

// Archive lists every published post as a single chronological index.
func Archive(site Site, posts []Post) templ.Component {
	return layout(site, "Archive", nil, func(b *bytes.Buffer) {
		b.WriteString("<h2>Archive</h2><ul class=\"archive\">")
		for _, p := range posts {
			b.WriteString("<li><time>" + DisplayedDate(p.Date) + "</time> <a href=\"/post/" + p.Slug + "/\">" + html.EscapeString(p.Title) + "</a></li>")
		}
		b.WriteString("</ul>")
	})
}

// Categories lists all categories of published posts.
func Categories(site Site, categories []string) templ.Component {
	return layout(site, "Categories", nil, func(b *bytes.Buffer) {
		b.WriteString("<h2>Categories</h2><ul class=\"categories\">")
		for _, c := range categories {
			b.WriteString("<li><a href=\"/categories/" + url.PathEscape(c) + "/\">" + html.EscapeString(c) + "</a></li>")
		}
		b.WriteString("</ul>")
	})
}

// Unpublished lists draft posts with a humanized age instead of a date.
func Unpublished(site Site, posts []Post) templ.Component {
	now := time.Now()
	return layout(site, "Unpublished", nil, func(b *bytes.Buffer) {
		b.WriteString("<h2>Unpublished</h2><ul class=\"unpublished\">")
		for _, p := range posts {
			b.WriteString("<li><a href=\"/post/" + p.Slug + "/\">" + html.EscapeString(p.Title) + "</a> <span class=\"age\">" + html.EscapeString(ApproximateDate(p.Date, now)) + "</span></li>")
		}
		b.WriteString("</ul>")
	})
}

// ErrorPage renders a soft, user-visible error message.
func ErrorPage(site Site, message string) templ.Component {
	return layout(site, "Error", nil, func(b *bytes.Buffer) {
		b.WriteString("<h2>Error</h2><p class=\"error\">" + html.EscapeString(message) + "</p>")
	})
}

// About is the static about page.
func About(site Site) templ.Component {
	return layout(site, "About", nil, func(b *bytes.Buffer) {
		b.WriteString("<h2>About</h2>")
		b.WriteString("<p>" + html.EscapeString(site.Name) + " is a personal blog")
		if site.Author != "" {
			b.WriteString(" by " + html.EscapeString(site.Author))
		}
		b.WriteString(".</p>")
		if site.Subtitle != "" {
			b.WriteString("<p>" + html.EscapeString(site.Subtitle) + "</p>")
		}
	})
}

// Colophon is the static colophon page.
func Colophon(site Site) templ.Component {
	return layout(site, "Colophon", nil, func(b *bytes.Buffer) {
		b.WriteString("<h2>Colophon</h2>")
		b.WriteString("<p>This site is rendered from plain text files on every request. ")
		b.WriteString("No database, no build step, no stale caches.</p>")
	})
}

// Imprint is the static imprint page.
func Imprint(site Site) templ.Component {
	return layout(site, "Imprint", nil, func(b *bytes.Buffer) {
		b.WriteString("<h2>Imprint</h2>")
		if site.Author != "" {
			b.WriteString("<p>Published by " + html.EscapeString(site.Author) + ".</p>")
		}
		b.WriteString("<p>Contact details are available on request.</p>")
	})
}

// Legal is the static legal statement page.
func Legal(site Site) templ.Component {
	return layout(site, "Legal", nil, func(b *bytes.Buffer) {
		b.WriteString("<h2>Legal</h2>")
		b.WriteString("<p>All content on this site is the opinion of its author. ")
		b.WriteString("Quoted material remains the property of its respective owners.</p>")
	})
}
