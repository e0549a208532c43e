package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/cloud-portal/pkg/models/api"
	"github.com/de-tools/cloud-portal/pkg/server/metrics"
	"github.com/de-tools/cloud-portal/pkg/services/session"
	"github.com/de-tools/cloud-portal/pkg/store/fixture"
	"github.com/de-tools/cloud-portal/pkg/store/session/memory"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router  http.Handler
	store   *memory.Store
	metrics *metrics.Metrics
}

func setupRouter(t *testing.T) testEnv {
	t.Helper()

	fx, err := fixture.Default()
	require.NoError(t, err)

	st := memory.NewStore(time.Hour)
	manager := session.NewManager(fx, st, session.Options{})
	signer, err := session.NewTokenSigner("test-secret", time.Hour)
	require.NoError(t, err)

	m := metrics.New()
	resolver := NewResolver(manager, signer, CookieConfig{TTL: time.Hour})
	h := NewHandler(manager, resolver, m)

	r := chi.NewRouter()
	r.Post("/session", h.Login)
	r.Delete("/session", h.Logout)
	r.With(resolver.Require).Get("/session", h.Current)

	return testEnv{router: r, store: st, metrics: m}
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatalf("response carries no %s cookie", CookieName)
	return nil
}

func TestSessionLifecycle(t *testing.T) {
	env := setupRouter(t)

	// login
	req := httptest.NewRequest(http.MethodPost, "/session", strings.NewReader(`{"role":"manager"}`))
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created api.Session
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "manager", created.Role)
	assert.Equal(t, "jane.smith", created.Username)
	assert.Contains(t, created.Permissions, "approve_requests")

	cookie := sessionCookie(t, rec)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 1, env.store.Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.LoginsTotal.WithLabelValues("manager")))
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.ActiveSessions))

	// current
	req = httptest.NewRequest(http.MethodGet, "/session", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var current api.Session
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&current))
	assert.Equal(t, created.Role, current.Role)
	assert.Equal(t, created.Username, current.Username)

	// logout
	req = httptest.NewRequest(http.MethodDelete, "/session", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	cleared := sessionCookie(t, rec)
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)
	assert.Equal(t, 0, env.store.Len())
	assert.Equal(t, 0.0, testutil.ToFloat64(env.metrics.ActiveSessions))

	// the old cookie no longer resolves
	req = httptest.NewRequest(http.MethodGet, "/session", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{name: "malformed body", body: `{"role":`, expectedStatus: http.StatusBadRequest},
		{name: "missing role", body: `{}`, expectedStatus: http.StatusBadRequest},
		{name: "unknown role", body: `{"role":"auditor"}`, expectedStatus: http.StatusBadRequest},
		{
			name:           "oversized username",
			body:           `{"role":"admin","username":"` + strings.Repeat("x", 65) + `"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupRouter(t)

			req := httptest.NewRequest(http.MethodPost, "/session", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			env.router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Empty(t, rec.Result().Cookies())
			assert.Equal(t, 0, env.store.Len())
		})
	}
}

func TestCurrent_RejectsBadCookies(t *testing.T) {
	env := setupRouter(t)

	otherSigner, err := session.NewTokenSigner("another-secret", time.Hour)
	require.NoError(t, err)
	forged, err := otherSigner.Sign("some-session")
	require.NoError(t, err)

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{name: "no cookie"},
		{name: "garbage", cookie: &http.Cookie{Name: CookieName, Value: "not-a-token"}},
		{name: "foreign signature", cookie: &http.Cookie{Name: CookieName, Value: forged}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/session", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()
			env.router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestLogout_WithoutSession(t *testing.T) {
	env := setupRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/session", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0.0, testutil.ToFloat64(env.metrics.ActiveSessions))
}
