package app

import (
	"net/http"

	"github.com/deltahq/delta/internal/transport/middleware"
	"github.com/deltahq/delta/internal/transport/rest"
	"github.com/deltahq/delta/internal/transport/web"
	"github.com/deltahq/delta/internal/transport/web/dataloader"
)

type handlers struct {
	health     *rest.HealthHandler
	auth       *rest.AuthHandler
	repository *rest.RepositoryHandler
	changelog  *rest.ChangelogHandler
	webhook    *rest.WebhookHandler
	web        *web.Handler
}

// newRouter registers every route. Authenticated API routes are wrapped in
// RequireAuth; webhooks and public pages are not. A nil limit disables rate
// limiting.
func newRouter(h handlers, repos repositoryStore, limit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()
	limit = middleware.Chain(limit)
	private := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(fn)
	}
	limited := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(limit(fn))
	}

	mux.HandleFunc("GET /live", h.health.Live)
	mux.HandleFunc("GET /ready", h.health.Ready)
	mux.HandleFunc("GET /health", h.health.Health)

	mux.HandleFunc("GET /auth/github/login", h.auth.Login)
	mux.Handle("GET /auth/github/callback", limit(http.HandlerFunc(h.auth.Callback)))
	mux.Handle("GET /api/me", private(h.auth.Me))

	mux.Handle("GET /api/github/repositories", private(h.repository.ListRemote))
	mux.Handle("POST /api/repositories/connect", limited(h.repository.Connect))
	mux.Handle("GET /api/repositories", private(h.repository.List))
	mux.Handle("GET /api/repositories/{id}", private(h.repository.Get))
	mux.Handle("DELETE /api/repositories/{id}", private(h.repository.Disconnect))
	mux.Handle("GET /api/repositories/{id}/commits", private(h.repository.Commits))

	mux.Handle("POST /api/repositories/{id}/changelogs", limited(h.changelog.Generate))
	mux.Handle("GET /api/repositories/{id}/changelogs", private(h.changelog.ListByRepository))
	mux.Handle("GET /api/changelogs/{id}", private(h.changelog.Get))
	mux.Handle("PATCH /api/changelogs/{id}", private(h.changelog.Update))
	mux.Handle("POST /api/changelogs/{id}/publish", private(h.changelog.Publish))
	mux.Handle("POST /api/changelogs/{id}/unpublish", private(h.changelog.Unpublish))
	mux.Handle("DELETE /api/changelogs/{id}", private(h.changelog.Delete))
	mux.HandleFunc("GET /api/public/changelogs/{slug}", h.changelog.Public)

	mux.Handle("POST /webhooks/github", limit(http.HandlerFunc(h.webhook.GitHub)))

	pages := dataloader.Middleware(repos)
	mux.Handle("GET /changelog/{slug}", pages(http.HandlerFunc(h.web.Changelog)))
	mux.Handle("GET /changelog/{slug}/raw", pages(http.HandlerFunc(h.web.Raw)))
	mux.Handle("GET /changelogs", pages(http.HandlerFunc(h.web.Index)))

	return mux
}
