package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/hookitup/internal/export"
)

func TestMetrics_ExportFinished(t *testing.T) {
	m := New(false)

	m.ExportFinished(export.KindCopy, 5*time.Millisecond, nil)
	m.ExportFinished(export.KindCopy, time.Millisecond, errors.New("denied"))
	m.ExportFinished(export.KindDownload, time.Millisecond, nil)

	assert.InDelta(t, 1, promtest.ToFloat64(m.exportsTotal.WithLabelValues("copy", ResultSuccess)), 0)
	assert.InDelta(t, 1, promtest.ToFloat64(m.exportsTotal.WithLabelValues("copy", ResultError)), 0)
	assert.InDelta(t, 1, promtest.ToFloat64(m.exportsTotal.WithLabelValues("download", ResultSuccess)), 0)
	assert.Equal(t, 2, promtest.CollectAndCount(m.exportDuration))
}

func TestMetrics_PageNotFound(t *testing.T) {
	m := New(false)
	m.PageNotFound()
	m.PageNotFound()
	assert.InDelta(t, 2, promtest.ToFloat64(m.notFound), 0)
}

func TestMetrics_Middleware(t *testing.T) {
	m := New(false)

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/hooks/{slug}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/", "/hooks/a", "/hooks/b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.InDelta(t, 1, promtest.ToFloat64(m.requests.WithLabelValues("/", "200")), 0)
	assert.InDelta(t, 2, promtest.ToFloat64(m.requests.WithLabelValues("/hooks/{slug}", "404")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New(true)
	m.ExportFinished(export.KindDownload, time.Millisecond, nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `hookitup_exports_total{kind="download",result="success"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
