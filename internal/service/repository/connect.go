package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/deltahq/delta/internal/domain"
	"github.com/deltahq/delta/pkg/ctxutil"
)

// ConnectInput identifies a GitHub repository by numeric id or "owner/name".
type ConnectInput struct {
	GitHubRepoID int64
	FullName     string
}

// Validate checks that exactly one identifier is set.
func (i ConnectInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.FullName)
	switch {
	case i.GitHubRepoID == 0 && name == "":
		errs = append(errs, domain.FieldError{Field: "github_repo_id", Message: "github_repo_id or full_name required"})
	case i.GitHubRepoID != 0 && name != "":
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "set only one of github_repo_id and full_name"})
	case i.GitHubRepoID < 0:
		errs = append(errs, domain.FieldError{Field: "github_repo_id", Message: "must be positive"})
	case name != "":
		owner, repo, ok := strings.Cut(name, "/")
		if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
			errs = append(errs, domain.FieldError{Field: "full_name", Message: "must be owner/name"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Connect looks the repository up on GitHub and connects it to the caller.
// Connecting an already connected repository refreshes its metadata.
func (s *Service) Connect(ctx context.Context, input ConnectInput) (*domain.Repository, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.githubToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	var remote *domain.RemoteRepository
	if input.GitHubRepoID != 0 {
		remote, err = s.remote.GetRepositoryByID(ctx, token, input.GitHubRepoID)
	} else {
		owner, name, _ := strings.Cut(strings.TrimSpace(input.FullName), "/")
		remote, err = s.remote.GetRepository(ctx, token, owner, name)
	}
	if err != nil {
		return nil, fmt.Errorf("get remote repository: %w", err)
	}

	now := s.now().UTC()
	repo, err := s.repos.Upsert(ctx, &domain.Repository{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          remote.Name,
		FullName:      remote.FullName,
		URL:           remote.URL,
		GitHubRepoID:  remote.ID,
		DefaultBranch: remote.DefaultBranch,
		IsPrivate:     remote.IsPrivate,
		Description:   remote.Description,
		Language:      remote.Language,
		ConnectedAt:   now,
		LastSyncAt:    &now,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert repository: %w", err)
	}

	s.log.InfoContext(ctx, "repository connected",
		slog.String("user_id", userID.String()),
		slog.String("repo", repo.FullName),
		slog.Int64("github_repo_id", repo.GitHubRepoID))

	return repo, nil
}
