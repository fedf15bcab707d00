package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/deltahq/delta/internal/domain"
	"github.com/deltahq/delta/pkg/ctxutil"
)

const (
	DefaultCommitHistory = 50
	MaxCommitHistory     = 200
)

type repositoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Repository, error)
	GetWithStats(ctx context.Context, id uuid.UUID) (*domain.RepositoryWithStats, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Repository, error)
	Upsert(ctx context.Context, repo *domain.Repository) (*domain.Repository, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type commitRepo interface {
	ListByRepo(ctx context.Context, repoID uuid.UUID, limit int) ([]*domain.StoredCommit, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type remoteRepositories interface {
	ListRepositories(ctx context.Context, token string) ([]domain.RemoteRepository, error)
	GetRepository(ctx context.Context, token, owner, repo string) (*domain.RemoteRepository, error)
	GetRepositoryByID(ctx context.Context, token string, id int64) (*domain.RemoteRepository, error)
}

type tokenOpener interface {
	Open(sealed string) (string, error)
}

// Service manages the repositories a user connects from GitHub.
type Service struct {
	log     *slog.Logger
	repos   repositoryRepo
	commits commitRepo
	users   userRepo
	remote  remoteRepositories
	tokens  tokenOpener
	now     func() time.Time
}

// NewService creates a new Repository service.
func NewService(
	log *slog.Logger,
	repos repositoryRepo,
	commits commitRepo,
	users userRepo,
	remote remoteRepositories,
	tokens tokenOpener,
) *Service {
	return &Service{
		log:     log.With("service", "repository"),
		repos:   repos,
		commits: commits,
		users:   users,
		remote:  remote,
		tokens:  tokens,
		now:     time.Now,
	}
}

// ListRemote returns every repository the user can access on GitHub.
func (s *Service) ListRemote(ctx context.Context) ([]domain.RemoteRepository, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.githubToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	repos, err := s.remote.ListRepositories(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("list remote repositories: %w", err)
	}
	return repos, nil
}

// List returns the caller's connected repositories, most recent first.
func (s *Service) List(ctx context.Context) ([]*domain.Repository, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.repos.ListByUser(ctx, userID)
}

// Get returns a connected repository with its changelog count.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.RepositoryWithStats, error) {
	if _, err := s.owned(ctx, id); err != nil {
		return nil, err
	}
	return s.repos.GetWithStats(ctx, id)
}

// Disconnect removes a repository with its changelogs and stored commits.
func (s *Service) Disconnect(ctx context.Context, id uuid.UUID) error {
	repo, err := s.owned(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repos.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete repository: %w", err)
	}

	s.log.InfoContext(ctx, "repository disconnected",
		slog.String("repository_id", id.String()),
		slog.String("repo", repo.FullName))
	return nil
}

// Commits returns the newest stored commit records of a repository.
func (s *Service) Commits(ctx context.Context, id uuid.UUID, limit int) ([]*domain.StoredCommit, error) {
	if limit <= 0 {
		limit = DefaultCommitHistory
	}
	if limit > MaxCommitHistory {
		limit = MaxCommitHistory
	}

	if _, err := s.owned(ctx, id); err != nil {
		return nil, err
	}
	return s.commits.ListByRepo(ctx, id, limit)
}

func (s *Service) owned(ctx context.Context, id uuid.UUID) (*domain.Repository, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	repo, err := s.repos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !repo.IsOwnedBy(userID) {
		return nil, domain.ErrForbidden
	}
	return repo, nil
}

func (s *Service) githubToken(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("get user: %w", err)
	}
	if !user.HasAccessToken() {
		return "", domain.ErrUnauthorized
	}
	token, err := s.tokens.Open(user.AccessToken)
	if err != nil {
		return "", fmt.Errorf("open github token: %w", err)
	}
	return token, nil
}
