// Package ui serves the HookItUp documentation site.
package ui

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/hookitup/internal/catalog"
	"github.com/leapstack-labs/hookitup/internal/export"
	"github.com/leapstack-labs/hookitup/internal/markdown"
	"github.com/leapstack-labs/hookitup/internal/metrics"
	"github.com/leapstack-labs/hookitup/internal/ui/features/common"
	"github.com/leapstack-labs/hookitup/internal/ui/features/exports"
	"github.com/leapstack-labs/hookitup/internal/ui/notifier"
	"github.com/leapstack-labs/hookitup/internal/ui/router"
)

// SweepInterval is how often idle visitors and unclaimed downloads are
// expired.
const SweepInterval = time.Minute

// Server is the documentation site server.
type Server struct {
	catalog      *catalog.Catalog
	shell        common.Shell
	sessionStore *sessions.CookieStore
	port         int
	watch        bool
	staticDir    string
	logger       *slog.Logger
	notifier     *notifier.Notifier
	metrics      *metrics.Metrics
	exports      *exports.Handlers
}

// Config holds configuration for the site server.
type Config struct {
	Catalog        *catalog.Catalog
	Navigation     catalog.Navigation
	App            catalog.AppInfo
	Port           int
	Watch          bool
	StaticDir      string
	SessionSecret  string
	// SecureCookies marks the visitor cookie Secure. Only set it when the
	// site is served over HTTPS, or browsers never send the cookie back.
	SecureCookies  bool
	ResetDelay     time.Duration
	ExportFileName string
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
}

// NewServer creates a new site server instance.
func NewServer(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Default()
	}

	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.MaxAge(86400 * 30) // 30 days
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Secure = cfg.SecureCookies

	fileName := export.FileName(cfg.ExportFileName)
	notify := notifier.New()
	cat := cfg.Catalog

	var observer export.Observer
	if cfg.Metrics != nil {
		observer = cfg.Metrics
	}

	s := &Server{
		catalog: cat,
		shell: common.Shell{
			App:        cfg.App,
			Nav:        cfg.Navigation,
			IsDev:      cfg.Watch,
			ExportFile: "/" + fileName,
		},
		sessionStore: sessionStore,
		port:         cfg.Port,
		watch:        cfg.Watch,
		staticDir:    cfg.StaticDir,
		logger:       cfg.Logger,
		notifier:     notify,
		metrics:      cfg.Metrics,
	}
	s.exports = exports.NewHandlers(exports.Config{
		Source:       func() string { return markdown.SerializeCatalog(cat) },
		FileName:     fileName,
		ResetDelay:   cfg.ResetDelay,
		SessionStore: sessionStore,
		Notifier:     notify,
		Observer:     observer,
		Logger:       cfg.Logger,
	})
	return s
}

// Handler builds the router with middleware and every feature route.
func (s *Server) Handler() (http.Handler, error) {
	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)
	if s.metrics != nil {
		r.Use(s.metrics.Middleware)
	}

	err := router.SetupRoutes(r, router.Deps{
		Catalog:  s.catalog,
		Shell:    s.shell,
		Notifier: s.notifier,
		Exports:  s.exports,
		Metrics:  s.metrics,
		Logger:   s.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to setup routes: %w", err)
	}
	return r, nil
}

// Serve starts the site server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting site server", "addr", s.URL(), "hooks", s.catalog.Len())

	handler, err := s.Handler()
	if err != nil {
		return err
	}
	defer s.exports.Registry().Close()

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start file watcher if enabled
	if s.watch && s.staticDir != "" {
		eg.Go(func() error {
			return s.watchFiles(egctx)
		})
	}

	eg.Go(func() error {
		return exports.RunSweeper(egctx, SweepInterval, s.exports.Sweep)
	})

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down site server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// URL returns the local address of the site.
func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost:%d", s.port)
}

// IsDev returns true when pages listen for reloads.
func (s *Server) IsDev() bool {
	return s.shell.IsDev
}

// Notifier returns the server's notifier for SSE updates.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

// watchFiles reloads open pages when a stylesheet or script changes.
func (s *Server) watchFiles(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watchDirRecursive(watcher, s.staticDir); err != nil {
		s.logger.Error("failed to watch static directory", "error", err)
		// Don't fail - continue without watching
	}

	// Debounce timer
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isAssetChange(event) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				s.logger.Debug("asset changed, reloading pages", "file", event.Name)
				s.notifier.Broadcast(notifier.TopicReload)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", err)
		}
	}
}

// isAssetChange reports whether event wrote or created a stylesheet or script.
func isAssetChange(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	switch filepath.Ext(event.Name) {
	case ".css", ".js":
		return true
	default:
		return false
	}
}

// watchDirRecursive adds a directory and all subdirectories to the watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
