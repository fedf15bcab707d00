//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/deltahq/delta/internal/adapter/postgres/testhelper"
	"github.com/deltahq/delta/internal/app"
	"github.com/deltahq/delta/internal/config"
)

const webhookSecret = "e2e-webhook-secret"

// ---------------------------------------------------------------------------
// fakeGitHub serves the subset of the GitHub REST and OAuth APIs the
// application calls. Ids are random so parallel runs against the shared
// database do not collide.
// ---------------------------------------------------------------------------

type fakeGitHub struct {
	*httptest.Server
	userID   int64
	login    string
	repoID   int64
	repoName string
}

func newFakeGitHub(t *testing.T) *fakeGitHub {
	t.Helper()

	gh := &fakeGitHub{
		userID:   rand.Int64N(1 << 40),
		repoID:   rand.Int64N(1 << 40),
		login:    "octocat",
		repoName: fmt.Sprintf("demo-%d", rand.IntN(1_000_000)),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.PostForm.Get("code") != "good-code" {
			writeJSON(w, map[string]string{"error": "bad_verification_code", "error_description": "bad code"})
			return
		}
		writeJSON(w, map[string]string{"access_token": "gho_e2e", "token_type": "bearer"})
	})
	mux.HandleFunc("GET /user", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{
			"id":         gh.userID,
			"login":      gh.login,
			"name":       "The Octocat",
			"email":      "octocat@example.com",
			"avatar_url": "https://avatars.example.com/octocat",
		})
	})
	mux.HandleFunc("GET /user/repos", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, []any{gh.repoPayload()})
	})
	mux.HandleFunc("GET /repositories/{id}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, gh.repoPayload())
	})
	mux.HandleFunc("GET /repos/{owner}/{repo}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, gh.repoPayload())
	})
	mux.HandleFunc("GET /repos/{owner}/{repo}/commits", func(w http.ResponseWriter, r *http.Request) {
		page := gh.commitPayloads()
		if n, err := strconv.Atoi(r.URL.Query().Get("per_page")); err == nil && n < len(page) {
			page = page[:n]
		}
		writeJSON(w, page)
	})

	gh.Server = httptest.NewServer(mux)
	t.Cleanup(gh.Close)
	return gh
}

func (gh *fakeGitHub) fullName() string { return gh.login + "/" + gh.repoName }

func (gh *fakeGitHub) repoPayload() map[string]any {
	return map[string]any{
		"id":             gh.repoID,
		"name":           gh.repoName,
		"full_name":      gh.fullName(),
		"html_url":       "https://github.com/" + gh.fullName(),
		"default_branch": "main",
		"private":        false,
		"description":    "Demo repository",
		"language":       "Go",
		"updated_at":     time.Now().UTC().Format(time.RFC3339),
	}
}

func (gh *fakeGitHub) commitPayloads() []map[string]any {
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	messages := []string{
		"feat: add dark mode",
		"fix: crash on empty config",
		"docs: describe webhook setup",
		"refactor: split storage layer",
		"initial commit",
	}

	out := make([]map[string]any, len(messages))
	for i, msg := range messages {
		date := base.Add(-time.Duration(i) * 24 * time.Hour)
		out[i] = map[string]any{
			"sha": fmt.Sprintf("%040x", gh.repoID*10+int64(i)),
			"commit": map[string]any{
				"message": msg,
				"author": map[string]any{
					"name":  "The Octocat",
					"email": "octocat@example.com",
					"date":  date.Format(time.RFC3339),
				},
			},
			"author": map[string]any{"login": gh.login},
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// ---------------------------------------------------------------------------
// testServer wraps the full application backed by a PostgreSQL container and
// the fake GitHub.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	GitHub *fakeGitHub
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	dsn := testhelper.SetupTestDSN(t)
	gh := newFakeGitHub(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver: config.DriverPostgres,
			Postgres: config.PostgresConfig{
				DSN:             dsn,
				MaxConns:        5,
				MinConns:        1,
				MaxConnLifetime: time.Hour,
				MaxConnIdleTime: 30 * time.Minute,
			},
		},
		Auth: config.AuthConfig{
			JWTSecret:          "e2e-secret-at-least-32-characters!!",
			JWTIssuer:          "delta-e2e",
			SessionTTL:         time.Hour,
			TokenKey:           "e2e-token-key-at-least-32-characters",
			GitHubClientID:     "client-id",
			GitHubClientSecret: "client-secret",
			GitHubRedirectURI:  "http://localhost/auth/github/callback",
			GitHubScopes:       "read:user repo",
			StateTTL:           time.Minute,
		},
		GitHub: config.GitHubConfig{
			APIURL:      gh.URL,
			OAuthURL:    gh.URL,
			UserAgent:   "delta-e2e",
			Timeout:     5 * time.Second,
			CommitLimit: 20,
		},
		LLM:     config.LLMConfig{Provider: config.ProviderNone},
		Webhook: config.WebhookConfig{Secret: webhookSecret},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         600,
		},
		Public: config.PublicConfig{BaseURL: "http://delta.test", IndexLimit: 20},
	}

	a, err := app.New(context.Background(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(a.Close)

	srv := httptest.NewServer(a.Handler())
	t.Cleanup(srv.Close)

	client := srv.Client()
	client.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }

	return &testServer{URL: srv.URL, Client: client, GitHub: gh}
}

// login walks the OAuth flow against the fake GitHub and returns a session token.
func (ts *testServer) login(t *testing.T) string {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + "/auth/github/login")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	state := loc.Query().Get("state")
	require.NotEmpty(t, state)

	status, body := ts.do(t, http.MethodGet, "/auth/github/callback?code=good-code&state="+url.QueryEscape(state), "", nil)
	require.Equal(t, http.StatusOK, status, "callback: %v", body)

	token, ok := body["access_token"].(string)
	require.True(t, ok, "expected access_token in %v", body)
	return token
}

// do sends a JSON request and decodes a JSON object response (if any).
func (ts *testServer) do(t *testing.T, method, path, token string, payload any) (int, map[string]any) {
	t.Helper()

	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, reqBody)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return resp.StatusCode, out
}

// getList is do for endpoints answering with a JSON array.
func (ts *testServer) getList(t *testing.T, path, token string) (int, []map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out []map[string]any
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp.StatusCode, out
}

// getPage fetches a public HTML or Markdown page.
func (ts *testServer) getPage(t *testing.T, path string) (int, http.Header, string) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header, string(raw)
}

// sendWebhook posts a signed GitHub event.
func (ts *testServer) sendWebhook(t *testing.T, event string, payload any, secret string) (int, map[string]any) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/webhooks/github", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", event)
	req.Header.Set("X-GitHub-Delivery", fmt.Sprintf("delivery-%d", rand.Int64()))
	req.Header.Set("X-Hub-Signature-256", "sha256="+hex.EncodeToString(mac.Sum(nil)))

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}
