package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/deltahq/delta/internal/domain"
	"github.com/deltahq/delta/internal/service/repository"
)

type repositoryService interface {
	ListRemote(ctx context.Context) ([]domain.RemoteRepository, error)
	Connect(ctx context.Context, input repository.ConnectInput) (*domain.Repository, error)
	List(ctx context.Context) ([]*domain.Repository, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.RepositoryWithStats, error)
	Disconnect(ctx context.Context, id uuid.UUID) error
	Commits(ctx context.Context, id uuid.UUID, limit int) ([]*domain.StoredCommit, error)
}

// RepositoryHandler serves connected-repository endpoints.
type RepositoryHandler struct {
	svc repositoryService
	log *slog.Logger
}

// NewRepositoryHandler creates a RepositoryHandler.
func NewRepositoryHandler(svc repositoryService, logger *slog.Logger) *RepositoryHandler {
	return &RepositoryHandler{svc: svc, log: logger.With("handler", "repository")}
}

type connectRequest struct {
	GitHubRepoID int64  `json:"github_repo_id"`
	FullName     string `json:"full_name"`
}

// ListRemote handles GET /api/github/repositories.
func (h *RepositoryHandler) ListRemote(w http.ResponseWriter, r *http.Request) {
	repos, err := h.svc.ListRemote(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(repos, func(rr domain.RemoteRepository) remoteRepositoryResponse {
		return remoteRepositoryResponse(rr)
	}))
}

// Connect handles POST /api/repositories/connect.
func (h *RepositoryHandler) Connect(w http.ResponseWriter, r *http.Request) {
	var req connectRequest
	if err := decodeJSON(r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	repo, err := h.svc.Connect(r.Context(), repository.ConnectInput{
		GitHubRepoID: req.GitHubRepoID,
		FullName:     req.FullName,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRepositoryResponse(repo))
}

// List handles GET /api/repositories.
func (h *RepositoryHandler) List(w http.ResponseWriter, r *http.Request) {
	repos, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(repos, toRepositoryResponse))
}

// Get handles GET /api/repositories/{id}.
func (h *RepositoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	repo, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := toRepositoryResponse(&repo.Repository)
	resp.ChangelogCount = &repo.ChangelogCount
	writeJSON(w, http.StatusOK, resp)
}

// Disconnect handles DELETE /api/repositories/{id}.
func (h *RepositoryHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Disconnect(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Commits handles GET /api/repositories/{id}/commits?limit=N.
func (h *RepositoryHandler) Commits(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("limit", "must be an integer"))
			return
		}
	}

	commits, err := h.svc.Commits(r.Context(), id, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(commits, func(c *domain.StoredCommit) commitResponse {
		return commitResponse{
			SHA:         c.SHA,
			Message:     c.Message,
			AuthorName:  c.AuthorName,
			AuthorEmail: c.AuthorEmail,
			CommittedAt: c.CommittedAt,
			Processed:   c.Processed,
		}
	}))
}
