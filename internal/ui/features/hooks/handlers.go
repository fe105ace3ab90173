package hooks

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/hookitup/internal/catalog"
	"github.com/leapstack-labs/hookitup/internal/export"
	"github.com/leapstack-labs/hookitup/internal/markdown"
	"github.com/leapstack-labs/hookitup/internal/ui/features/common"
	"github.com/leapstack-labs/hookitup/internal/ui/features/hooks/pages"
)

// NotFoundRecorder counts not-found responses.
type NotFoundRecorder interface {
	PageNotFound()
}

// Handlers provides HTTP handlers for hook pages.
type Handlers struct {
	catalog  *catalog.Catalog
	shell    common.Shell
	recorder NotFoundRecorder
	logger   *slog.Logger
}

// NewHandlers creates a new Handlers instance. recorder may be nil.
func NewHandlers(cat *catalog.Catalog, shell common.Shell, recorder NotFoundRecorder, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{
		catalog:  cat,
		shell:    shell,
		recorder: recorder,
		logger:   logger,
	}
}

// HookPage renders the documentation page for the slug in the path, or the
// not-found page when the catalog has no such entry.
func (h *Handlers) HookPage(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.lookup(w, r)
	if !ok {
		return
	}

	page := h.shell.Page(doc.Title, doc.Description, pages.HookPath(doc.Slug))
	if err := pages.HookPage(page, doc).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Markdown serves a single entry as Markdown.
func (h *Handlers) Markdown(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.lookup(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", export.MarkdownContentType)
	_, _ = w.Write([]byte(markdown.SerializeEntry(doc)))
}

// NotFound renders the not-found page with a 404 status.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if h.recorder != nil {
		h.recorder.PageNotFound()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)

	page := h.shell.Page("Page not found", "", r.URL.Path)
	if err := pages.NotFoundPage(page).Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render not found page", "error", err)
	}
}

func (h *Handlers) lookup(w http.ResponseWriter, r *http.Request) (*catalog.HookDoc, bool) {
	slug := chi.URLParam(r, "slug")
	doc, err := h.catalog.Lookup(slug)
	if errors.Is(err, catalog.ErrNotFound) {
		h.logger.Debug("unknown hook", "slug", slug)
		h.NotFound(w, r)
		return nil, false
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return doc, true
}
