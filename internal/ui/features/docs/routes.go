// Package docs serves the documentation guides.
package docs

import (
	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/hookitup/internal/ui/features/common"
	"github.com/leapstack-labs/hookitup/internal/ui/features/docs/pages"
)

// SetupRoutes registers the guide routes.
func SetupRoutes(router chi.Router, shell common.Shell) error {
	handlers := NewHandlers(shell)

	router.Get(pages.GettingStartedPath, handlers.GettingStarted)

	return nil
}
