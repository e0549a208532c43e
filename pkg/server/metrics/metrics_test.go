package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrument(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Instrument)
	r.Get("/pages/{tab}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("fine"))
	})

	for _, path := range []string{"/pages/users", "/pages/settings", "/ok", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/pages/{tab}", "GET", "403")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/ok", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("unmatched", "GET", "404")))
}

func TestHandler_ExposesPortalMetrics(t *testing.T) {
	m := New()
	m.LoginsTotal.WithLabelValues("admin").Inc()
	m.ActiveSessions.Set(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `portal_session_logins_total{role="admin"} 1`)
	assert.Contains(t, string(body), "portal_session_active 3")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.ActiveSessions.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.ActiveSessions))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.ActiveSessions))
}
