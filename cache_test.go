package blatt

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPostCacheServesParsedPosts(t *testing.T) {
	dir := t.TempDir()
	writePostFile(t, dir, "hello-world", validPostSource)
	cache := NewPostCache(NewStore(dir))

	posts, err := cache.Posts()
	if err != nil {
		t.Fatalf("Posts: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "hello-world" {
		t.Fatalf("got %v, want hello-world", posts)
	}

	// A second read with an unchanged directory serves the same parse.
	again, err := cache.Posts()
	if err != nil {
		t.Fatalf("Posts (cached): %v", err)
	}
	if len(again) != 1 {
		t.Fatalf("got %d posts on cached read, want 1", len(again))
	}
}

func TestPostCacheSeesNewFiles(t *testing.T) {
	dir := t.TempDir()
	writePostFile(t, dir, "first", validPostSource)
	cache := NewPostCache(NewStore(dir))

	if _, err := cache.Posts(); err != nil {
		t.Fatalf("Posts: %v", err)
	}

	writePostFile(t, dir, "second", `---
title: Second
date: 2024-02-01 08:00:00
category: emacs
---

More.
`)
	posts, err := cache.Posts()
	if err != nil {
		t.Fatalf("Posts after write: %v", err)
	}
	if len(posts) != 2 {
		t.Errorf("got %d posts after adding a file, want 2", len(posts))
	}
}

func TestPostCacheSeesDeletedFiles(t *testing.T) {
	dir := t.TempDir()
	writePostFile(t, dir, "doomed", validPostSource)
	cache := NewPostCache(NewStore(dir))

	if _, err := cache.Posts(); err != nil {
		t.Fatalf("Posts: %v", err)
	}
	if err := os.Remove(filepath.Join(dir, "doomed.md")); err != nil {
		t.Fatal(err)
	}

	posts, err := cache.Posts()
	if err != nil {
		t.Fatalf("Posts after delete: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("got %d posts after deleting the only file, want 0", len(posts))
	}
}

func TestPostCacheSeesModifiedFiles(t *testing.T) {
	dir := t.TempDir()
	writePostFile(t, dir, "post", validPostSource)
	cache := NewPostCache(NewStore(dir))

	if _, err := cache.Posts(); err != nil {
		t.Fatalf("Posts: %v", err)
	}

	// Different length, so the snapshot changes even on coarse mtimes.
	writePostFile(t, dir, "post", `---
title: Rewritten Completely
date: 2024-03-01 09:00:00
category: lisp
---

New body, considerably longer than before it was rewritten.
`)
	posts, err := cache.Posts()
	if err != nil {
		t.Fatalf("Posts after modify: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Rewritten Completely" {
		t.Errorf("cache served stale post: %+v", posts)
	}
}

func TestPostCacheInvalidate(t *testing.T) {
	dir := t.TempDir()
	writePostFile(t, dir, "post", validPostSource)
	cache := NewPostCache(NewStore(dir))

	if _, err := cache.Posts(); err != nil {
		t.Fatalf("Posts: %v", err)
	}
	cache.Invalidate()
	posts, err := cache.Posts()
	if err != nil {
		t.Fatalf("Posts after invalidate: %v", err)
	}
	if len(posts) != 1 {
		t.Errorf("got %d posts after invalidate, want 1", len(posts))
	}
}
