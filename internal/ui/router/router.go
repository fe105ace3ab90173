// Package router sets up HTTP routes for the site server.
package router

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/leapstack-labs/hookitup/internal/catalog"
	"github.com/leapstack-labs/hookitup/internal/metrics"
	"github.com/leapstack-labs/hookitup/internal/search"
	"github.com/leapstack-labs/hookitup/internal/ui/features/common"
	docsFeature "github.com/leapstack-labs/hookitup/internal/ui/features/docs"
	exportsFeature "github.com/leapstack-labs/hookitup/internal/ui/features/exports"
	homeFeature "github.com/leapstack-labs/hookitup/internal/ui/features/home"
	hooksFeature "github.com/leapstack-labs/hookitup/internal/ui/features/hooks"
	searchFeature "github.com/leapstack-labs/hookitup/internal/ui/features/search"
	"github.com/leapstack-labs/hookitup/internal/ui/notifier"
	"github.com/leapstack-labs/hookitup/internal/ui/resources"
)

// Deps holds what the feature routes need.
type Deps struct {
	Catalog  *catalog.Catalog
	Shell    common.Shell
	Notifier *notifier.Notifier
	Exports  *exportsFeature.Handlers
	Metrics  *metrics.Metrics // optional
	Logger   *slog.Logger
}

// SetupRoutes configures all routes for the site server.
func SetupRoutes(router chi.Router, deps Deps) error {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}

	// Hot reload endpoint for dev mode
	if deps.Shell.IsDev {
		setupReload(router, deps.Notifier)
	}

	// Static assets
	router.Handle("/static/*", resources.Handler())

	if deps.Metrics != nil {
		router.Handle("/metrics", deps.Metrics.Handler())
	}

	// Feature routes
	if err := homeFeature.SetupRoutes(router, deps.Shell); err != nil {
		return err
	}

	if err := docsFeature.SetupRoutes(router, deps.Shell); err != nil {
		return err
	}

	if err := searchFeature.SetupRoutes(router, search.NewIndex(deps.Catalog), deps.Shell); err != nil {
		return err
	}

	if err := exportsFeature.SetupRoutes(router, deps.Exports); err != nil {
		return err
	}

	var recorder hooksFeature.NotFoundRecorder
	if deps.Metrics != nil {
		recorder = deps.Metrics
	}
	hooks := hooksFeature.NewHandlers(deps.Catalog, deps.Shell, recorder, deps.Logger)
	if err := hooksFeature.SetupRoutes(router, hooks); err != nil {
		return err
	}

	return nil
}

// setupReload serves the dev reload stream. Every open page reloads when
// the reload topic is pinged, and the first page to connect after a restart
// reloads once to pick up the new binary.
func setupReload(router chi.Router, notify *notifier.Notifier) {
	var hotReloadOnce sync.Once

	router.Get("/reload", func(w http.ResponseWriter, r *http.Request) {
		updates := notify.Subscribe(notifier.TopicReload)
		defer notify.Unsubscribe(notifier.TopicReload, updates)

		sse := datastar.NewSSE(w, r)
		reload := func() { _ = sse.ExecuteScript("window.location.reload()") }
		hotReloadOnce.Do(reload)
		select {
		case <-updates:
			reload()
		case <-r.Context().Done():
		}
	})

	router.Get("/hotreload", func(w http.ResponseWriter, _ *http.Request) {
		notify.Broadcast(notifier.TopicReload)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}
