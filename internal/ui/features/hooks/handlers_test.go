package hooks

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/hookitup/internal/catalog"
	"github.com/leapstack-labs/hookitup/internal/export"
	"github.com/leapstack-labs/hookitup/internal/markdown"
	"github.com/leapstack-labs/hookitup/internal/ui/features"
)

// =============================================================================
// Test Setup Helpers
// =============================================================================

type countingRecorder struct{ n int }

func (c *countingRecorder) PageNotFound() { c.n++ }

func setupTestRouter(t *testing.T, docs ...catalog.HookDoc) (http.Handler, *countingRecorder) {
	t.Helper()

	fixture := features.SetupTestFixture(t, docs...)
	rec := &countingRecorder{}
	h := NewHandlers(fixture.Catalog, fixture.Shell, rec, fixture.Logger)

	r := chi.NewRouter()
	require.NoError(t, SetupRoutes(r, h))
	return r, rec
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

// =============================================================================
// HookPage Tests
// =============================================================================

func TestHookPage(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantBody []string
	}{
		{
			name: "debounce page",
			path: "/hooks/use-debounce",
			wantBody: []string{
				"<title>useDebounce - HookItUp</title>",
				"<h1>useDebounce</h1>",
				"Overview",
				"Hook Implementation",
				"The complete hook source code",
				"Usage Example",
				"Best Practices",
				"Always memoize or stabilize dependencies",
				`href="/hooks/use-debounce/index.md"`,
			},
		},
		{
			name: "fetch page",
			path: "/hooks/use-fetch",
			wantBody: []string{
				"<h1>useFetch</h1>",
				"API Reference",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupTestRouter(t)

			rec := get(t, r, tt.path)

			assert.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			for _, want := range tt.wantBody {
				assert.Contains(t, body, want, "response should contain %q", want)
			}
		})
	}
}

func TestHookPage_APIReference(t *testing.T) {
	full := features.TestHook("use-full", "useFull")
	full.Params = []catalog.Param{
		{Name: "value", Type: "T", Description: "The value to track"},
		{Name: "delay", Type: "number", Description: "Delay in ms"},
	}
	full.Returns = catalog.Returns("The tracked value")

	paramsOnly := features.TestHook("use-params", "useParams")
	paramsOnly.Params = []catalog.Param{{Name: "value", Type: "T", Description: "v"}}

	emptyReturns := features.TestHook("use-empty", "useEmpty")
	emptyReturns.Returns = catalog.Returns("")

	bare := features.TestHook("use-bare", "useBare")

	r, _ := setupTestRouter(t, full, paramsOnly, emptyReturns, bare)

	tests := []struct {
		path        string
		wantAPI     bool
		wantParams  []string
		wantReturns string
	}{
		{path: "/hooks/use-full", wantAPI: true, wantParams: []string{"value", "delay"}, wantReturns: "The tracked value"},
		{path: "/hooks/use-params", wantAPI: true, wantParams: []string{"value"}},
		{path: "/hooks/use-empty"},
		{path: "/hooks/use-bare"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, r, tt.path)
			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()

			if !tt.wantAPI {
				assert.NotContains(t, body, "API Reference")
				return
			}
			assert.Contains(t, body, "API Reference")

			doc := features.ParseHTML(t, body)
			var params []string
			for _, div := range features.FindAll(doc, "div") {
				if features.Attr(div, "class") == "signature" {
					name, _, _ := strings.Cut(features.TextOf(div), ":")
					params = append(params, name)
				}
			}
			assert.Equal(t, tt.wantParams, params, "parameters keep their order")

			if tt.wantReturns == "" {
				assert.NotContains(t, body, "<h3>Returns</h3>")
			} else {
				assert.Contains(t, body, "<h3>Returns</h3>")
				assert.Contains(t, body, tt.wantReturns)
			}
		})
	}
}

func TestHookPage_CodeIsEscapedVerbatim(t *testing.T) {
	doc := features.TestHook("use-generic", "useGeneric")
	doc.Code = "function useGeneric<T>(v: T): T {\n  return v && <div/>;\n}"

	r, _ := setupTestRouter(t, doc)
	rec := get(t, r, "/hooks/use-generic")
	require.Equal(t, http.StatusOK, rec.Code)

	parsed := features.ParseHTML(t, rec.Body.String())
	var codes []string
	for _, c := range features.FindAll(parsed, "code") {
		codes = append(codes, features.TextOf(c))
	}
	assert.Contains(t, codes, doc.Code)
}

func TestHookPage_SidebarOpensCategory(t *testing.T) {
	r, _ := setupTestRouter(t)

	rec := get(t, r, "/hooks/use-fetch")
	doc := features.ParseHTML(t, rec.Body.String())

	var open []string
	for _, d := range features.FindAll(doc, "details") {
		for _, a := range d.Attr {
			if a.Key == "open" {
				open = append(open, features.TextOf(features.FindAll(d, "summary")[0]))
			}
		}
	}
	assert.ElementsMatch(t, []string{"State Management", "Data Fetching"}, open)
}

// =============================================================================
// Not Found Tests
// =============================================================================

func TestHookPage_NotFound(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "unknown slug", path: "/hooks/does-not-exist"},
		{name: "lookup is case sensitive", path: "/hooks/Use-Debounce"},
		{name: "unknown page", path: "/nope"},
		{name: "unknown markdown", path: "/hooks/does-not-exist/index.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, recorder := setupTestRouter(t)

			rec := get(t, r, tt.path)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			body := rec.Body.String()
			assert.Contains(t, body, "Page not found")
			assert.Contains(t, body, `class="sidebar"`, "not-found page keeps the site shell")
			assert.Equal(t, 1, recorder.n)
		})
	}
}

func TestNotFound_NilRecorder(t *testing.T) {
	fixture := features.SetupTestFixture(t)
	h := NewHandlers(fixture.Catalog, fixture.Shell, nil, nil)

	rec := httptest.NewRecorder()
	h.NotFound(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotFound_RecordsMetric(t *testing.T) {
	fixture := features.SetupTestFixture(t)
	h := NewHandlers(fixture.Catalog, fixture.Shell, fixture.Metrics, fixture.Logger)

	rec := httptest.NewRecorder()
	h.NotFound(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	metrics := httptest.NewRecorder()
	fixture.Metrics.Handler().ServeHTTP(metrics, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, metrics.Body.String(), "hookitup_page_not_found_total 1")
}

// =============================================================================
// Markdown Tests
// =============================================================================

func TestMarkdown(t *testing.T) {
	r, _ := setupTestRouter(t)

	rec := get(t, r, "/hooks/use-debounce/index.md")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.MarkdownContentType, rec.Header().Get("Content-Type"))

	doc, err := catalog.Default().Lookup("use-debounce")
	require.NoError(t, err)
	assert.Equal(t, markdown.SerializeEntry(doc), rec.Body.String())
}
