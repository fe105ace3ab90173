// Package home provides the landing page feature for the UI.
package home

import (
	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/hookitup/internal/ui/features/common"
)

// SetupRoutes configures routes for the home feature.
func SetupRoutes(router chi.Router, shell common.Shell) error {
	handlers := NewHandlers(shell)

	router.Get("/", handlers.HomePage)

	return nil
}
