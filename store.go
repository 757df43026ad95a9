package blatt

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = errors.New("post not found")

// postExt is the file extension that marks a file as a post source.
const postExt = ".md"

// Store reads posts from a directory of Markdown files with YAML front
// matter. There is no persistence beyond the files themselves; every read
// goes back to disk.
type Store struct {
	dir string
	md  goldmark.Markdown
}

// NewStore creates a Store over the given posts directory. The Markdown
// renderer is configured once: Typographer supplies smart quotes and the
// Footnote extension handles footnote references.
func NewStore(dir string) *Store {
	return &Store{
		dir: dir,
		md: goldmark.New(
			goldmark.WithExtensions(extension.Typographer, extension.Footnote),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
		),
	}
}

// postMatter is the front matter schema of a post source file. Published is
// kept as the raw string so "absent" stays distinguishable from "no".
type postMatter struct {
	Title     string `yaml:"title"`
	Date      string `yaml:"date"`
	Category  string `yaml:"category"`
	Published string `yaml:"published"`
}

// ReadPosts parses every post source file in the store directory and returns
// the valid ones. A post missing title, date, or category is silently
// dropped so it never appears in any listing. A file whose content cannot be
// parsed fails the whole read.
func (s *Store) ReadPosts() ([]Post, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, "*"+postExt))
	if err != nil {
		return nil, err
	}
	var posts []Post
	for _, path := range paths {
		post, err := s.parseFile(path)
		if err != nil {
			return nil, err
		}
		if !validPost(post) {
			continue
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// ReadPost parses a single post by slug. A missing file or a post missing
// required metadata yields ErrNotFound.
func (s *Store) ReadPost(slug string) (Post, error) {
	if slug == "" || strings.ContainsAny(slug, `/\`) || strings.Contains(slug, "..") {
		return Post{}, ErrNotFound
	}
	path := filepath.Join(s.dir, slug+postExt)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Post{}, ErrNotFound
		}
		return Post{}, err
	}
	post, err := s.parseFile(path)
	if err != nil {
		return Post{}, err
	}
	if !validPost(post) {
		return Post{}, ErrNotFound
	}
	return post, nil
}

// parseFile extracts front matter, renders the body to HTML, and derives the
// slug from the filename stem.
func (s *Store) parseFile(path string) (Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Post{}, err
	}
	var meta postMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return Post{}, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	var buf bytes.Buffer
	if err := s.md.Convert(body, &buf); err != nil {
		return Post{}, fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}
	return Post{
		Slug:      strings.TrimSuffix(filepath.Base(path), postExt),
		Title:     meta.Title,
		Date:      meta.Date,
		Category:  meta.Category,
		Published: meta.Published,
		Content:   buf.String(),
	}, nil
}

// validPost reports whether a post carries all required metadata.
func validPost(p Post) bool {
	return p.Title != "" && p.Date != "" && p.Category != ""
}
