// Command blatt serves a flat-file blog. All site branding comes from
// environment variables; posts live as Markdown files in POSTS_DIR.
package main

import (
	"log"

	"github.com/avermeer/blatt"
)

func main() {
	app := blatt.New(blatt.SiteConfig{
		Name:     blatt.EnvOr("SITE_NAME", "Blog"),
		URL:      blatt.EnvOr("SITE_URL", "http://localhost:3000"),
		Subtitle: blatt.EnvOr("SITE_SUBTITLE", ""),
		Author:   blatt.EnvOr("SITE_AUTHOR", ""),
		Addr:     blatt.EnvOr("ADDR", ":3000"),
		PostsDir: blatt.EnvOr("POSTS_DIR", "posts"),
	})
	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
