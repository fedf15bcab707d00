package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/deltahq/delta/internal/domain"
	"github.com/deltahq/delta/internal/service/changelog"
)

type changelogService interface {
	Generate(ctx context.Context, input changelog.GenerateInput) (*changelog.GenerateResult, error)
	ListByRepository(ctx context.Context, repoID uuid.UUID) ([]*domain.Changelog, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Changelog, error)
	Update(ctx context.Context, id uuid.UUID, input changelog.UpdateInput) (*domain.Changelog, error)
	Publish(ctx context.Context, id uuid.UUID) (*domain.Changelog, error)
	Unpublish(ctx context.Context, id uuid.UUID) (*domain.Changelog, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetPublished(ctx context.Context, slug string) (*domain.Changelog, error)
}

// ChangelogHandler serves changelog generation and management endpoints.
type ChangelogHandler struct {
	svc changelogService
	log *slog.Logger
}

// NewChangelogHandler creates a ChangelogHandler.
func NewChangelogHandler(svc changelogService, logger *slog.Logger) *ChangelogHandler {
	return &ChangelogHandler{svc: svc, log: logger.With("handler", "changelog")}
}

type generateRequest struct {
	Limit int `json:"limit"`
	// Publish defaults to true when omitted.
	Publish *bool `json:"publish"`
}

type updateRequest struct {
	Title   *string `json:"title"`
	Version *string `json:"version"`
	Content *string `json:"content"`
}

// Generate handles POST /api/repositories/{id}/changelogs.
func (h *ChangelogHandler) Generate(w http.ResponseWriter, r *http.Request) {
	repoID, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req generateRequest
	if err := decodeJSON(r, &req, true); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	publish := true
	if req.Publish != nil {
		publish = *req.Publish
	}

	result, err := h.svc.Generate(r.Context(), changelog.GenerateInput{
		RepositoryID: repoID,
		Limit:        req.Limit,
		Publish:      publish,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGenerateResponse(result))
}

// ListByRepository handles GET /api/repositories/{id}/changelogs.
func (h *ChangelogHandler) ListByRepository(w http.ResponseWriter, r *http.Request) {
	repoID, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.svc.ListByRepository(r.Context(), repoID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toChangelogResponse))
}

// Get handles GET /api/changelogs/{id}.
func (h *ChangelogHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.withChangelog(w, r, h.svc.Get)
}

// Update handles PATCH /api/changelogs/{id}.
func (h *ChangelogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateRequest
	if err := decodeJSON(r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	cl, err := h.svc.Update(r.Context(), id, changelog.UpdateInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toChangelogResponse(cl))
}

// Publish handles POST /api/changelogs/{id}/publish.
func (h *ChangelogHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.withChangelog(w, r, h.svc.Publish)
}

// Unpublish handles POST /api/changelogs/{id}/unpublish.
func (h *ChangelogHandler) Unpublish(w http.ResponseWriter, r *http.Request) {
	h.withChangelog(w, r, h.svc.Unpublish)
}

// Delete handles DELETE /api/changelogs/{id}.
func (h *ChangelogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Public handles GET /api/public/changelogs/{slug}.
func (h *ChangelogHandler) Public(w http.ResponseWriter, r *http.Request) {
	cl, err := h.svc.GetPublished(r.Context(), r.PathValue("slug"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(publicMaxAge))
	writeJSON(w, http.StatusOK, publicChangelogResponse{
		Title:       cl.Title,
		Version:     cl.Version,
		Content:     cl.Content,
		Slug:        cl.PublicSlug,
		CommitCount: cl.CommitCount(),
		CreatedAt:   cl.CreatedAt,
	})
}

const publicMaxAge = 300

func (h *ChangelogHandler) withChangelog(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*domain.Changelog, error)) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	cl, err := op(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toChangelogResponse(cl))
}
