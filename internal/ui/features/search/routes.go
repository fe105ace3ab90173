// Package search serves the hook search page and its live results stream.
package search

import (
	"github.com/go-chi/chi/v5"

	hooksearch "github.com/leapstack-labs/hookitup/internal/search"
	"github.com/leapstack-labs/hookitup/internal/ui/features/common"
	"github.com/leapstack-labs/hookitup/internal/ui/features/search/pages"
)

// SetupRoutes registers search routes on the router.
func SetupRoutes(router chi.Router, index *hooksearch.Index, shell common.Shell) error {
	handlers := NewHandlers(index, shell)

	router.Get(pages.SearchPath, handlers.SearchPage)
	router.Get(pages.ResultsPath, handlers.Results)

	return nil
}
