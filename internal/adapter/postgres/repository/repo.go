// Package repository implements the connected-repository store using PostgreSQL.
package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deltahq/delta/internal/adapter/postgres"
	"github.com/deltahq/delta/internal/domain"
)

var columns = []string{
	"id", "user_id", "name", "full_name", "url", "github_repo_id", "default_branch",
	"is_private", "description", "language", "has_changelogs", "connected_at", "last_sync_at",
}

// Repo stores connected repositories. Changelogs and stored commits are
// removed with their repository by the foreign keys.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new repository store.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a repository by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Repository, error) {
	query, args, err := postgres.Builder.Select(columns...).From("repositories").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get repository query: %w", err)
	}

	repo, err := scanRepository(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "repository", id)
	}
	return repo, nil
}

// GetByIDs returns the repositories with the given ids in unspecified order.
// Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Repository, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.list(ctx, postgres.Builder.Select(columns...).From("repositories").Where(squirrel.Eq{"id": ids}))
}

// GetWithStats returns a repository with its changelog count.
func (r *Repo) GetWithStats(ctx context.Context, id uuid.UUID) (*domain.RepositoryWithStats, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		Column("(SELECT count(*) FROM changelogs c WHERE c.repo_id = repositories.id)").
		From("repositories").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get repository stats query: %w", err)
	}

	var (
		out   domain.RepositoryWithStats
		count int64
	)
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	if err := row.Scan(append(scanTargets(&out.Repository), &count)...); err != nil {
		return nil, postgres.MapError(err, "repository", id)
	}
	normalize(&out.Repository)
	out.ChangelogCount = int(count)
	return &out, nil
}

// ListByUser returns a user's repositories, most recently connected first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Repository, error) {
	return r.list(ctx, postgres.Builder.
		Select(columns...).
		From("repositories").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("connected_at DESC"))
}

// ListByGitHubID returns every connection of a GitHub repository.
func (r *Repo) ListByGitHubID(ctx context.Context, githubID int64) ([]*domain.Repository, error) {
	return r.list(ctx, postgres.Builder.
		Select(columns...).
		From("repositories").
		Where(squirrel.Eq{"github_repo_id": githubID}))
}

// Upsert connects a repository for a user, or refreshes the metadata of an
// existing connection. Id, ConnectedAt and HasChangelogs of an existing
// connection are kept.
func (r *Repo) Upsert(ctx context.Context, repo *domain.Repository) (*domain.Repository, error) {
	connected := repo.ConnectedAt
	if connected.IsZero() {
		connected = time.Now().UTC()
	}

	query, args, err := postgres.Builder.
		Insert("repositories").
		Columns(columns...).
		Values(repo.ID, repo.UserID, repo.Name, repo.FullName, repo.URL, repo.GitHubRepoID, repo.DefaultBranch,
			repo.IsPrivate, repo.Description, repo.Language, false, connected, repo.LastSyncAt).
		Suffix(`ON CONFLICT (user_id, github_repo_id) DO UPDATE SET
			name = EXCLUDED.name,
			full_name = EXCLUDED.full_name,
			url = EXCLUDED.url,
			default_branch = EXCLUDED.default_branch,
			is_private = EXCLUDED.is_private,
			description = EXCLUDED.description,
			language = EXCLUDED.language,
			last_sync_at = COALESCE(EXCLUDED.last_sync_at, repositories.last_sync_at)
			RETURNING ` + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert repository query: %w", err)
	}

	stored, err := scanRepository(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "repository github_id", repo.GitHubRepoID)
	}
	return stored, nil
}

// RefreshMetadata updates every connection of a GitHub repository and returns
// how many were changed.
func (r *Repo) RefreshMetadata(ctx context.Context, githubID int64, remote domain.RemoteRepository) (int64, error) {
	query, args, err := postgres.Builder.
		Update("repositories").
		SetMap(map[string]any{
			"name":           remote.Name,
			"full_name":      remote.FullName,
			"url":            remote.URL,
			"default_branch": remote.DefaultBranch,
			"is_private":     remote.IsPrivate,
			"description":    remote.Description,
			"language":       remote.Language,
		}).
		Where(squirrel.Eq{"github_repo_id": githubID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build refresh repository query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "repository github_id", githubID)
	}
	return tag.RowsAffected(), nil
}

// TouchSync sets LastSyncAt.
func (r *Repo) TouchSync(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.updateOne(ctx, id, map[string]any{"last_sync_at": at.UTC()})
}

// SetHasChangelogs sets the HasChangelogs flag.
func (r *Repo) SetHasChangelogs(ctx context.Context, id uuid.UUID, has bool) error {
	return r.updateOne(ctx, id, map[string]any{"has_changelogs": has})
}

// Delete removes a repository with its changelogs and stored commits.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder.Delete("repositories").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete repository query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "repository", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "repository", id)
	}
	return nil
}

func (r *Repo) updateOne(ctx context.Context, id uuid.UUID, set map[string]any) error {
	query, args, err := postgres.Builder.Update("repositories").SetMap(set).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build update repository query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "repository", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "repository", id)
	}
	return nil
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]*domain.Repository, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list repositories query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list repositories: %w", err)
	}
	defer rows.Close()

	var out []*domain.Repository
	for rows.Next() {
		repo, err := scanRepository(rows)
		if err != nil {
			return nil, fmt.Errorf("scan repository: %w", err)
		}
		out = append(out, repo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate repositories: %w", err)
	}
	return out, nil
}

func scanTargets(repo *domain.Repository) []any {
	return []any{
		&repo.ID, &repo.UserID, &repo.Name, &repo.FullName, &repo.URL, &repo.GitHubRepoID, &repo.DefaultBranch,
		&repo.IsPrivate, &repo.Description, &repo.Language, &repo.HasChangelogs, &repo.ConnectedAt, &repo.LastSyncAt,
	}
}

func scanRepository(row pgx.Row) (*domain.Repository, error) {
	var repo domain.Repository
	if err := row.Scan(scanTargets(&repo)...); err != nil {
		return nil, err
	}
	normalize(&repo)
	return &repo, nil
}

func normalize(repo *domain.Repository) {
	repo.ConnectedAt = repo.ConnectedAt.UTC()
	if repo.LastSyncAt != nil {
		t := repo.LastSyncAt.UTC()
		repo.LastSyncAt = &t
	}
}
