package docs

import (
	"net/http"

	"github.com/leapstack-labs/hookitup/internal/ui/features/common"
	"github.com/leapstack-labs/hookitup/internal/ui/features/docs/pages"
)

// Handlers provides HTTP handlers for the documentation guides.
type Handlers struct {
	shell common.Shell
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(shell common.Shell) *Handlers {
	return &Handlers{shell: shell}
}

// GettingStarted renders the getting started guide.
func (h *Handlers) GettingStarted(w http.ResponseWriter, r *http.Request) {
	page := h.shell.Page("Getting Started", "Learn how to use custom React hooks in your projects.", pages.GettingStartedPath)
	if err := pages.GettingStartedPage(page).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
