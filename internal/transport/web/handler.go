// Package web serves the public HTML pages for published changelogs.
package web

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/deltahq/delta/internal/config"
	"github.com/deltahq/delta/internal/domain"
	"github.com/deltahq/delta/internal/transport/web/dataloader"
)

type changelogService interface {
	GetPublished(ctx context.Context, slug string) (*domain.Changelog, error)
	ListPublished(ctx context.Context, limit int) ([]*domain.Changelog, error)
}

// Handler serves /changelog/{slug}, its raw Markdown and the /changelogs index.
// Repository names are resolved through the request's dataloader.
type Handler struct {
	svc      changelogService
	renderer *Renderer
	cfg      config.PublicConfig
	log      *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(svc changelogService, renderer *Renderer, cfg config.PublicConfig, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, renderer: renderer, cfg: cfg, log: logger.With("handler", "web")}
}

type pageData struct {
	Title     string
	Canonical string
}

type changelogPage struct {
	pageData
	Changelog  *domain.Changelog
	Repository *domain.Repository
	Body       template.HTML
}

type indexEntry struct {
	Slug       string
	Title      string
	Version    string
	Repository string
	CreatedAt  time.Time
}

type indexPage struct {
	pageData
	Entries []indexEntry
}

// Changelog handles GET /changelog/{slug}.
func (h *Handler) Changelog(w http.ResponseWriter, r *http.Request) {
	cl, ok := h.published(w, r)
	if !ok {
		return
	}

	body, err := h.renderer.Markdown(cl.Content)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	repo, err := dataloader.FromContext(r.Context()).RepositoryByID.Load(r.Context(), cl.RepoID)()
	if err != nil {
		h.log.WarnContext(r.Context(), "repository lookup failed",
			slog.String("slug", cl.PublicSlug), slog.String("error", err.Error()))
	}

	h.write(w, r, http.StatusOK, "changelog", changelogPage{
		pageData:   pageData{Title: cl.Title, Canonical: h.canonical("/changelog/" + cl.PublicSlug)},
		Changelog:  cl,
		Repository: repo,
		Body:       body,
	})
}

// Raw handles GET /changelog/{slug}/raw.
func (h *Handler) Raw(w http.ResponseWriter, r *http.Request) {
	cl, ok := h.published(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+cl.PublicSlug+`.md"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(cl.Content))
}

// Index handles GET /changelogs.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListPublished(r.Context(), h.cfg.IndexLimit)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	loader := dataloader.FromContext(r.Context()).RepositoryByID
	thunks := make([]func() (*domain.Repository, error), len(items))
	for i, cl := range items {
		thunks[i] = loader.Load(r.Context(), cl.RepoID)
	}

	entries := make([]indexEntry, 0, len(items))
	for i, cl := range items {
		entry := indexEntry{
			Slug:      cl.PublicSlug,
			Title:     cl.Title,
			Version:   cl.Version,
			CreatedAt: cl.CreatedAt,
		}
		if repo, err := thunks[i](); err == nil {
			entry.Repository = repo.FullName
		}
		entries = append(entries, entry)
	}

	h.write(w, r, http.StatusOK, "index", indexPage{
		pageData: pageData{Title: "Recent changelogs", Canonical: h.canonical("/changelogs")},
		Entries:  entries,
	})
}

// published loads the changelog for {slug}, writing a 404 page when it is
// missing or unpublished.
func (h *Handler) published(w http.ResponseWriter, r *http.Request) (*domain.Changelog, bool) {
	cl, err := h.svc.GetPublished(r.Context(), r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.write(w, r, http.StatusNotFound, "notfound", pageData{Title: "Changelog not found"})
			return nil, false
		}
		h.fail(w, r, err)
		return nil, false
	}
	return cl, true
}

func (h *Handler) canonical(path string) string {
	if h.cfg.BaseURL == "" {
		return ""
	}
	return strings.TrimRight(h.cfg.BaseURL, "/") + path
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf strings.Builder
	if err := h.renderer.render(&buf, page, data); err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(buf.String()))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "render public page", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
