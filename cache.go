package blatt

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// fileStamp identifies the on-disk state of one post source file.
type fileStamp struct {
	size    int64
	modTime time.Time
}

// PostCache keeps the parsed post set in memory between requests. It is
// keyed by a snapshot of the posts directory (name, size, mtime per file),
// so any change on disk invalidates it on the next read and listings always
// reflect the current disk state. Publication state is not cached — it is
// recomputed against the clock on every query.
type PostCache struct {
	mu       sync.RWMutex
	posts    []Post
	snapshot map[string]fileStamp
	store    *Store
}

// NewPostCache creates a PostCache backed by the given Store.
func NewPostCache(s *Store) *PostCache {
	return &PostCache{store: s}
}

// Invalidate clears the cache so the next read triggers a fresh parse.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.snapshot = nil
	c.mu.Unlock()
}

// Posts returns the parsed post set, re-reading the directory only when a
// source file was added, removed, or modified since the last read.
func (c *PostCache) Posts() ([]Post, error) {
	snapshot, err := c.stamp()
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	if c.snapshot != nil && sameSnapshot(c.snapshot, snapshot) {
		posts := c.posts
		c.mu.RUnlock()
		return posts, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snapshot != nil && sameSnapshot(c.snapshot, snapshot) {
		return c.posts, nil
	}
	posts, err := c.store.ReadPosts()
	if err != nil {
		return nil, err
	}
	c.posts = posts
	c.snapshot = snapshot
	return posts, nil
}

// stamp stats every post source file in the store directory.
func (c *PostCache) stamp() (map[string]fileStamp, error) {
	paths, err := filepath.Glob(filepath.Join(c.store.dir, "*"+postExt))
	if err != nil {
		return nil, err
	}
	snapshot := make(map[string]fileStamp, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				// Removed between glob and stat; the snapshot simply
				// won't match next time it reappears.
				continue
			}
			return nil, err
		}
		snapshot[filepath.Base(path)] = fileStamp{size: info.Size(), modTime: info.ModTime()}
	}
	return snapshot, nil
}

func sameSnapshot(a, b map[string]fileStamp) bool {
	if len(a) != len(b) {
		return false
	}
	for name, stamp := range a {
		other, ok := b[name]
		if !ok || other != stamp {
			return false
		}
	}
	return true
}
