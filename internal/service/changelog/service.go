package changelog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/deltahq/delta/internal/domain"
	"github.com/deltahq/delta/pkg/ctxutil"
)

const (
	DefaultCommitLimit = 20
	MaxCommitLimit     = 100
	DefaultPublicLimit = 20
	MaxPublicLimit     = 100
)

type changelogRepo interface {
	Create(ctx context.Context, cl *domain.Changelog) (*domain.Changelog, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Changelog, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Changelog, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	ListByRepo(ctx context.Context, repoID uuid.UUID) ([]*domain.Changelog, error)
	ListPublished(ctx context.Context, limit int) ([]*domain.Changelog, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.ChangelogPatch) (*domain.Changelog, error)
	SetPublished(ctx context.Context, id uuid.UUID, published bool) (*domain.Changelog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repositoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Repository, error)
	SetHasChangelogs(ctx context.Context, id uuid.UUID, has bool) error
}

type commitRepo interface {
	StoreBatch(ctx context.Context, repoID uuid.UUID, commits []domain.Commit) (int, error)
	MarkProcessed(ctx context.Context, repoID uuid.UUID, shas []string) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type commitFetcher interface {
	LatestCommits(ctx context.Context, token, owner, repo string, limit int) ([]domain.Commit, error)
}

type tokenOpener interface {
	Open(sealed string) (string, error)
}

type changelogComposer interface {
	Compose(ctx context.Context, in ComposeInput) (ComposeResult, error)
}

// Service provides changelog generation and management.
type Service struct {
	changelogs  changelogRepo
	repos       repositoryRepo
	commits     commitRepo
	users       userRepo
	fetcher     commitFetcher
	tokens      tokenOpener
	composer    changelogComposer
	commitLimit int
	log         *slog.Logger
}

// NewService creates a new Changelog service. commitLimit is the default
// number of commits fetched per generation.
func NewService(
	log *slog.Logger,
	changelogs changelogRepo,
	repos repositoryRepo,
	commits commitRepo,
	users userRepo,
	fetcher commitFetcher,
	tokens tokenOpener,
	composer changelogComposer,
	commitLimit int,
) *Service {
	if commitLimit <= 0 || commitLimit > MaxCommitLimit {
		commitLimit = DefaultCommitLimit
	}
	return &Service{
		changelogs:  changelogs,
		repos:       repos,
		commits:     commits,
		users:       users,
		fetcher:     fetcher,
		tokens:      tokens,
		composer:    composer,
		commitLimit: commitLimit,
		log:         log.With("service", "changelog"),
	}
}

// ownedRepository loads a repository and checks it belongs to the caller.
func (s *Service) ownedRepository(ctx context.Context, repoID uuid.UUID) (*domain.Repository, uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, uuid.Nil, domain.ErrUnauthorized
	}

	repo, err := s.repos.GetByID(ctx, repoID)
	if err != nil {
		return nil, uuid.Nil, err
	}
	if !repo.IsOwnedBy(userID) {
		return nil, uuid.Nil, domain.ErrForbidden
	}
	return repo, userID, nil
}

// ownedChangelog loads a changelog whose repository belongs to the caller.
func (s *Service) ownedChangelog(ctx context.Context, id uuid.UUID) (*domain.Changelog, error) {
	cl, err := s.changelogs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, _, err := s.ownedRepository(ctx, cl.RepoID); err != nil {
		return nil, err
	}
	return cl, nil
}
