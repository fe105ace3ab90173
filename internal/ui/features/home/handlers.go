package home

import (
	"net/http"

	"github.com/leapstack-labs/hookitup/internal/ui/features/common"
	"github.com/leapstack-labs/hookitup/internal/ui/features/home/pages"
)

// Handlers provides HTTP handlers for the home feature.
type Handlers struct {
	shell common.Shell
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(shell common.Shell) *Handlers {
	return &Handlers{shell: shell}
}

// HomePage renders the landing page.
func (h *Handlers) HomePage(w http.ResponseWriter, r *http.Request) {
	page := h.shell.Page("", "", "/")
	if err := pages.HomePage(page).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
