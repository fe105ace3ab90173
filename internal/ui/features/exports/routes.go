package exports

import (
	"github.com/go-chi/chi/v5"
)

// SetupRoutes registers the export endpoints.
func SetupRoutes(router chi.Router, handlers *Handlers) error {
	router.Get("/"+handlers.fileName, handlers.Markdown)

	router.Route("/export", func(r chi.Router) {
		r.Post("/copy", handlers.Copy)
		r.Post("/download", handlers.Download)
		r.Get("/updates", handlers.Updates)
		r.Get("/files/{id}", handlers.File)
		r.Post("/acks/{id}", handlers.Ack)
	})

	return nil
}
