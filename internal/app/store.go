package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/deltahq/delta/internal/adapter/mongostore"
	"github.com/deltahq/delta/internal/adapter/postgres"
	pgchangelog "github.com/deltahq/delta/internal/adapter/postgres/changelog"
	pgcommit "github.com/deltahq/delta/internal/adapter/postgres/commit"
	pgrepository "github.com/deltahq/delta/internal/adapter/postgres/repository"
	pguser "github.com/deltahq/delta/internal/adapter/postgres/user"
	"github.com/deltahq/delta/internal/config"
	"github.com/deltahq/delta/internal/domain"
)

type userStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Upsert(ctx context.Context, u *domain.User) (*domain.User, error)
}

type repositoryStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Repository, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Repository, error)
	GetWithStats(ctx context.Context, id uuid.UUID) (*domain.RepositoryWithStats, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Repository, error)
	ListByGitHubID(ctx context.Context, githubID int64) ([]*domain.Repository, error)
	Upsert(ctx context.Context, repo *domain.Repository) (*domain.Repository, error)
	RefreshMetadata(ctx context.Context, githubID int64, remote domain.RemoteRepository) (int64, error)
	TouchSync(ctx context.Context, id uuid.UUID, at time.Time) error
	SetHasChangelogs(ctx context.Context, id uuid.UUID, has bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type changelogStore interface {
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

type commitStore interface {
	StoreBatch(ctx context.Context, repoID uuid.UUID, commits []domain.Commit) (int, error)
	MarkProcessed(ctx context.Context, repoID uuid.UUID, shas []string) error
	ListByRepo(ctx context.Context, repoID uuid.UUID, limit int) ([]*domain.StoredCommit, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// stores is the backend-neutral set of repositories the services depend on.
type stores struct {
	driver       string
	users        userStore
	repositories repositoryStore
	changelogs   changelogStore
	commits      commitStore
	tx           txRunner
	ping         func(ctx context.Context) error
	close        func(ctx context.Context) error
}

// openStores connects to the configured backend. Mongo indexes are created
// here through the idempotent Init; Postgres is only pinged and its schema is
// owned by `delta migrate` (or migrate=true).
func openStores(ctx context.Context, cfg config.DatabaseConfig, migrate bool, logger *slog.Logger) (*stores, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		if migrate {
			if err := postgres.Migrate(ctx, pool, logger); err != nil {
				pool.Close()
				return nil, err
			}
		}
		logger.InfoContext(ctx, "postgres connected",
			slog.Int("max_conns", int(cfg.Postgres.MaxConns)))
		return &stores{
			driver:       config.DriverPostgres,
			users:        pguser.New(pool),
			repositories: pgrepository.New(pool),
			changelogs:   pgchangelog.New(pool),
			commits:      pgcommit.New(pool),
			tx:           postgres.NewTxManager(pool),
			ping:         pool.Ping,
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil

	case config.DriverMongo:
		store, err := mongostore.Connect(ctx, cfg.Mongo, logger)
		if err != nil {
			return nil, err
		}
		if err := store.Init(ctx); err != nil {
			_ = store.Close(context.Background())
			return nil, err
		}
		logger.InfoContext(ctx, "mongo connected", slog.String("database", cfg.Mongo.Database))
		return &stores{
			driver:       config.DriverMongo,
			users:        store.Users(),
			repositories: store.Repositories(),
			changelogs:   store.Changelogs(),
			commits:      store.Commits(),
			tx:           store,
			ping:         store.Ping,
			close:        store.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Ping implements the health handler's store check.
func (s *stores) Ping(ctx context.Context) error {
	return s.ping(ctx)
}
