package blatt

import (
	"embed"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// embeddedAssets contains the default stylesheet shipped with the engine.
// A file of the same name in the user's static dir takes precedence.
//
//go:embed embedded/*
var embeddedAssets embed.FS

func (a *App) handleEmbeddedAsset(c echo.Context) error {
	override := filepath.Join(a.staticDir, "style.css")
	if _, err := os.Stat(override); err == nil {
		return c.File(override)
	}
	data, err := embeddedAssets.ReadFile("embedded/style.css")
	if err != nil {
		return echo.ErrNotFound
	}
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", data)
}
