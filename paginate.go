package blatt

import "errors"

// ErrInvalidIndex is returned when a requested page number is out of range.
var ErrInvalidIndex = errors.New("invalid index")

// ReverseChunks splits an ascending sequence into reverse-chronological
// pages: page 1 holds the most recent items, the last page holds the oldest
// and may be a partial page. Items within each page are most-recent-first.
//
// ReverseChunks([1..10], 4) == [[10 9 8 7] [6 5 4 3] [2 1]]
func ReverseChunks[T any](items []T, pageSize int) [][]T {
	if len(items) == 0 {
		return nil
	}
	pages := (len(items) + pageSize - 1) / pageSize
	chunks := make([][]T, 0, pages)
	if pages <= 1 {
		return append(chunks, reversed(items))
	}
	start, end := len(items)-pageSize, len(items)
	for page := 0; page < pages; page++ {
		chunks = append(chunks, reversed(items[start:end]))
		start = max(0, start-pageSize)
		end -= pageSize
	}
	return chunks
}

func reversed[T any](items []T) []T {
	out := make([]T, len(items))
	for i, v := range items {
		out[len(items)-1-i] = v
	}
	return out
}

// PageView is one selected page of posts plus navigation flags.
type PageView struct {
	Posts    []Post
	Page     int
	HasOlder bool // a higher-numbered (older) page exists
	HasNewer bool // a lower-numbered (newer) page exists
}

// SelectPage picks the 1-based page from the paginated sequence. Any page
// number outside 1..len(pages) is an out-of-range error, never a clamp.
func SelectPage(pages [][]Post, page int) (PageView, error) {
	if page < 1 || page > len(pages) {
		return PageView{}, ErrInvalidIndex
	}
	return PageView{
		Posts:    pages[page-1],
		Page:     page,
		HasOlder: len(pages) > 1 && page != len(pages),
		HasNewer: len(pages) > 1 && page != 1,
	}, nil
}
