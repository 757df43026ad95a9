package blatt

import (
	"fmt"
	"sort"
	"time"
)

// DateFormat is the exact timestamp layout used in post metadata. It sorts
// correctly as plain text.
const DateFormat = "2006-01-02 15:04:05"

// QueryOptions selects and orders posts. A nil Published means "don't filter
// by publication state"; a nil Categories means "any category".
type QueryOptions struct {
	Published  *bool
	Categories []string
	Reverse    bool
}

// ProcessPosts filters posts by the given options and returns them sorted
// ascending by date. Reverse flips the sorted sequence once at the end, so
// equal-date posts keep the tie-break order of the stable ascending sort.
func ProcessPosts(posts []Post, opts QueryOptions, now time.Time) ([]Post, error) {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		keep, err := fitsCriteria(p, opts, now)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	if opts.Reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

// fitsCriteria evaluates every criterion against a single post.
//
// The published criterion only applies to posts that carry both a published
// flag and a date; a post without them passes regardless of the requested
// value. A date that fails to parse under DateFormat aborts the whole
// evaluation, since validated posts are expected to carry well-formed dates.
func fitsCriteria(p Post, opts QueryOptions, now time.Time) (bool, error) {
	if opts.Published != nil && p.Published != "" && p.Date != "" {
		t, err := time.Parse(DateFormat, p.Date)
		if err != nil {
			return false, fmt.Errorf("post %s: malformed date %q: %w", p.Slug, p.Date, err)
		}
		published := p.Published == "yes" && t.Before(now)
		if published != *opts.Published {
			return false, nil
		}
	}
	if opts.Categories != nil {
		found := false
		for _, c := range opts.Categories {
			if c == p.Category {
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
	}
	return true, nil
}

// publishedOnly and unpublishedOnly are the two values handlers pass for
// QueryOptions.Published.
var (
	publishedOnly   = boolp(true)
	unpublishedOnly = boolp(false)
)

func boolp(v bool) *bool {
	return &v
}
