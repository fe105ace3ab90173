package search

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	hooksearch "github.com/leapstack-labs/hookitup/internal/search"
	"github.com/leapstack-labs/hookitup/internal/ui/features/common"
	"github.com/leapstack-labs/hookitup/internal/ui/features/search/pages"
)

// MaxQueryLength bounds the query text; longer input is cut.
const MaxQueryLength = 100

// Handlers provides HTTP handlers for the search feature.
type Handlers struct {
	index *hooksearch.Index
	shell common.Shell
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(index *hooksearch.Index, shell common.Shell) *Handlers {
	return &Handlers{index: index, shell: shell}
}

// SearchPage renders the results for the q query parameter. Without a query
// every hook is listed.
func (h *Handlers) SearchPage(w http.ResponseWriter, r *http.Request) {
	query := normalize(r.URL.Query().Get("q"))
	results := h.index.Find(query, 0)

	page := h.shell.Page("Search", "Search the hook collection", pages.SearchPath)
	if err := pages.SearchPage(page, query, results).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type searchSignals struct {
	Query string `json:"query"`
}

// Results patches the result list for the current query signal.
func (h *Handlers) Results(w http.ResponseWriter, r *http.Request) {
	var signals searchSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	query := normalize(signals.Query)
	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementTempl(pages.Results(query, h.index.Find(query, 0))); err != nil {
		_ = sse.ConsoleError(err)
	}
}

func normalize(q string) string {
	q = strings.TrimSpace(q)
	if len(q) > MaxQueryLength {
		q = strings.ToValidUTF8(q[:MaxQueryLength], "")
	}
	return q
}
