package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/teachkit/internal/api/middleware"
	"github.com/phrazzld/teachkit/internal/api/shared"
	"github.com/phrazzld/teachkit/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	var seen string
	handler := middleware.TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.GetTraceID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.NotEmpty(t, seen)
	assert.Len(t, seen, 36, "trace id should be a canonical UUID")
	assert.Equal(t, seen, rec.Header().Get(middleware.TraceHeader))

	rec2 := httptest.NewRecorder()
	handler.ServeHTTP(rec2, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEqual(t, seen, rec2.Header().Get(middleware.TraceHeader), "each request gets its own trace id")
}

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	handler := testutils.NewTestSlogHandler()
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(slog.New(handler)))
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	entries := handler.Entries()
	require.Len(t, entries, 2)

	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, int64(http.StatusOK), entries[0]["status"])
	assert.Equal(t, "/ok", entries[0]["path"])

	assert.Equal(t, "WARN", entries[1]["level"])
	assert.Equal(t, int64(http.StatusBadGateway), entries[1]["status"])
}
