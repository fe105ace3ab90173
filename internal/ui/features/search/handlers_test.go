package search

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hooksearch "github.com/leapstack-labs/hookitup/internal/search"
	"github.com/leapstack-labs/hookitup/internal/ui/features"
)

func setupTestHandlers(t *testing.T) (*Handlers, *features.TestFixture) {
	t.Helper()
	fixture := features.SetupTestFixture(t)
	return NewHandlers(hooksearch.NewIndex(fixture.Catalog), fixture.Shell), fixture
}

func resultLinks(t *testing.T, body string) []string {
	t.Helper()
	doc := features.ParseHTML(t, body)
	var hrefs []string
	for _, a := range features.FindAll(doc, "a") {
		if features.Attr(a, "class") == "hook-card" {
			hrefs = append(hrefs, features.Attr(a, "href"))
		}
	}
	return hrefs
}

func TestSearchPage(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantFirst string
		wantCount int
		wantBody  []string
	}{
		{
			name:      "empty query lists everything",
			wantCount: 8,
			wantBody:  []string{"8 hooks"},
		},
		{
			name:      "fuzzy title match",
			query:     "debounce",
			wantFirst: "/hooks/use-debounce",
			wantBody:  []string{"<mark>", `results for “debounce”`},
		},
		{
			name:      "category match",
			query:     "data fetching",
			wantFirst: "/hooks/use-fetch",
		},
		{
			name:      "no match",
			query:     "zzzzqqq",
			wantCount: 0,
			wantBody:  []string{"No hooks match"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := setupTestHandlers(t)

			rec := httptest.NewRecorder()
			h.SearchPage(rec, httptest.NewRequest(http.MethodGet, "/search?q="+url.QueryEscape(tt.query), nil))

			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, `id="search-results"`)
			for _, want := range tt.wantBody {
				assert.Contains(t, body, want)
			}

			links := resultLinks(t, body)
			if tt.wantFirst != "" {
				require.NotEmpty(t, links)
				assert.Equal(t, tt.wantFirst, links[0])
			} else {
				assert.Len(t, links, tt.wantCount)
			}
		})
	}
}

func TestSearchPage_QueryIsEscaped(t *testing.T) {
	h, _ := setupTestHandlers(t)

	rec := httptest.NewRecorder()
	h.SearchPage(rec, httptest.NewRequest(http.MethodGet, "/search?q="+url.QueryEscape(`<script>"x"`), nil))

	body := rec.Body.String()
	assert.NotContains(t, body, `<script>"x"`)
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestResults_PatchesFromSignals(t *testing.T) {
	h, _ := setupTestHandlers(t)

	signals := url.QueryEscape(`{"query":"fetch"}`)
	rec := httptest.NewRecorder()
	h.Results(rec, httptest.NewRequest(http.MethodGet, "/search/results?datastar="+signals, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "event: datastar-patch-elements")
	assert.Contains(t, body, `id="search-results"`)
	assert.Contains(t, body, "/hooks/use-fetch")
	assert.NotContains(t, body, "/hooks/use-reveal")
}

func TestResults_BadSignals(t *testing.T) {
	h, _ := setupTestHandlers(t)

	rec := httptest.NewRecorder()
	h.Results(rec, httptest.NewRequest(http.MethodGet, "/search/results?datastar=not-json", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "fetch", normalize("  fetch \n"))
	long := strings.Repeat("a", MaxQueryLength+20)
	assert.Len(t, normalize(long), MaxQueryLength)
	cut := strings.Repeat("a", MaxQueryLength-1) + "é"
	assert.Equal(t, strings.Repeat("a", MaxQueryLength-1), normalize(cut))
}
