package blatt

import "github.com/avermeer/blatt/views"

// Post is the core content type parsed from a post source file and rendered
// by templates. It lives in the views package so templates can consume it
// without a dependency cycle; this alias keeps the pipeline code readable.
type Post = views.Post
