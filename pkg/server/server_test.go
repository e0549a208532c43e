package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/cloud-portal/pkg/models/api"
	"github.com/de-tools/cloud-portal/pkg/store/fixture"
	"github.com/de-tools/cloud-portal/pkg/store/session/memory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, rl RateLimitConfig) (*httptest.Server, *http.Client) {
	t.Helper()

	fx, err := fixture.Default()
	require.NoError(t, err)

	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Session: SessionConfig{
			Secret: "server-test-secret",
			TTL:    time.Hour,
		},
		RateLimit: rl,
		Dependencies: Dependencies{
			Fixtures: fx,
			Sessions: memory.NewStore(time.Hour),
			Logger:   zerolog.New(zerolog.NewTestWriter(t)),
		},
	}
	router, err := ConfigureRouter(config)
	require.NoError(t, err)

	testServer := httptest.NewServer(router)
	t.Cleanup(testServer.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return testServer, client
}

func send(t *testing.T, client *http.Client, method, url, body string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	require.NoError(t, err, "Failed to send request")
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	return resp, data
}

func TestConfigureRouter_RequiresDependencies(t *testing.T) {
	_, err := ConfigureRouter(Config{Session: SessionConfig{Secret: "x"}})
	assert.Error(t, err)

	fx, err := fixture.Default()
	require.NoError(t, err)
	_, err = ConfigureRouter(Config{Dependencies: Dependencies{Fixtures: fx, Sessions: memory.NewStore(0)}})
	assert.Error(t, err, "empty secret")
}

func TestWebAPI_PublicEndpoints(t *testing.T) {
	srv, client := newTestServer(t, RateLimitConfig{})

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{name: "health", path: "/health", expectedStatus: http.StatusOK},
		{name: "roles", path: "/api/v1/roles", expectedStatus: http.StatusOK},
		{name: "landing", path: "/", expectedStatus: http.StatusOK},
		{name: "login form", path: "/login", expectedStatus: http.StatusOK},
		{name: "providers need a session", path: "/api/v1/providers", expectedStatus: http.StatusUnauthorized},
		{name: "pages need a session", path: "/api/v1/pages/overview", expectedStatus: http.StatusUnauthorized},
		{name: "dashboard redirects", path: "/dashboard", expectedStatus: http.StatusSeeOther},
		{name: "unknown route", path: "/api/v1/workspaces", expectedStatus: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, _ := send(t, client, http.MethodGet, srv.URL+tc.path, "")
			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")
			assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
		})
	}
}

func TestWebAPI_SessionFlow(t *testing.T) {
	srv, client := newTestServer(t, RateLimitConfig{})

	resp, body := send(t, client, http.MethodPost, srv.URL+"/api/v1/session", `{"role":"manager"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = send(t, client, http.MethodGet, srv.URL+"/api/v1/pages/approvals", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var p api.Page
	require.NoError(t, json.Unmarshal(body, &p))
	assert.Equal(t, "requests", p.Kind)
	require.NotNil(t, p.Requests)
	require.Len(t, p.Requests.Requests, 1)
	assert.Equal(t, "REQ-001", p.Requests.Requests[0].ID)

	resp, body = send(t, client, http.MethodPost, srv.URL+"/api/v1/requests/REQ-001/approve", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var res api.ActionResult
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, "approved", res.Status)

	resp, _ = send(t, client, http.MethodPost, srv.URL+"/api/v1/requests", `{"title":"x"}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = send(t, client, http.MethodGet, srv.URL+"/dashboard?tab=team", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = send(t, client, http.MethodDelete, srv.URL+"/api/v1/session", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = send(t, client, http.MethodGet, srv.URL+"/api/v1/session", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	_, body = send(t, client, http.MethodGet, srv.URL+"/metrics", "")
	assert.Contains(t, string(body), `portal_http_requests_total{code="200",method="GET",route="/api/v1/pages/{tab}"} 1`)
	assert.Contains(t, string(body), `portal_session_logins_total{role="manager"} 1`)
	assert.Contains(t, string(body), `portal_requests_actions_total{action="approve",outcome="ok"} 1`)
}

func TestWebAPI_LoginRateLimit(t *testing.T) {
	srv, client := newTestServer(t, RateLimitConfig{LoginPerSecond: 0.5, LoginBurst: 1})

	resp, _ := send(t, client, http.MethodPost, srv.URL+"/api/v1/session", `{"role":"user"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = send(t, client, http.MethodPost, srv.URL+"/api/v1/session", `{"role":"user"}`)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "2", resp.Header.Get("Retry-After"))
}
