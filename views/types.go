package views

// Site holds site-wide branding populated from environment variables.
// Every handler passes this to templates so nothing is hardcoded.
type Site struct {
	Name     string
	URL      string
	Subtitle string
	Author   string
}

// Post is one blog entry: validated metadata plus the rendered HTML body.
type Post struct {
	Slug      string
	Title     string
	Date      string // "YYYY-MM-DD HH:MM:SS", sortable as plain text
	Category  string
	Published string // "yes" marks a post as publishable; empty when absent
	Content   string // rendered HTML
}
