// Package hooks serves the per-hook documentation pages.
package hooks

import (
	"github.com/go-chi/chi/v5"
)

// SetupRoutes registers hook routes on the router. The handlers' NotFound
// is also installed as the router's catch-all.
func SetupRoutes(router chi.Router, handlers *Handlers) error {
	router.Get("/hooks/{slug}", handlers.HookPage)
	router.Get("/hooks/{slug}/index.md", handlers.Markdown)
	router.NotFound(handlers.NotFound)

	return nil
}
