// Package commit implements the stored-commit history using PostgreSQL.
package commit

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deltahq/delta/internal/adapter/postgres"
	"github.com/deltahq/delta/internal/domain"
)

// Repo keeps the commit history seen for each repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new commit store.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// StoreBatch records commits that are not stored yet and returns how many
// were new. Already known SHAs are left untouched.
func (r *Repo) StoreBatch(ctx context.Context, repoID uuid.UUID, commits []domain.Commit) (int, error) {
	if len(commits) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	b := postgres.Builder.
		Insert("commits").
		Columns("repo_id", "sha", "message", "author_name", "author_email", "committed_at", "created_at")
	for _, c := range commits {
		b = b.Values(repoID, c.SHA, c.Message, c.AuthorName, c.AuthorEmail, c.CommittedAt.UTC(), now)
	}

	query, args, err := b.Suffix("ON CONFLICT (repo_id, sha) DO NOTHING").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build store commits query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "commits of repository", repoID)
	}
	return int(tag.RowsAffected()), nil
}

// MarkProcessed flags commits as used by a changelog.
func (r *Repo) MarkProcessed(ctx context.Context, repoID uuid.UUID, shas []string) error {
	if len(shas) == 0 {
		return nil
	}

	query, args, err := postgres.Builder.
		Update("commits").
		Set("processed", true).
		Where(squirrel.Eq{"repo_id": repoID, "sha": shas}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build mark processed query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "commits of repository", repoID)
	}
	return nil
}

// ListByRepo returns the newest stored commits of a repository.
func (r *Repo) ListByRepo(ctx context.Context, repoID uuid.UUID, limit int) ([]*domain.StoredCommit, error) {
	query, args, err := postgres.Builder.
		Select("repo_id", "sha", "message", "author_name", "author_email", "committed_at", "processed", "created_at").
		From("commits").
		Where(squirrel.Eq{"repo_id": repoID}).
		OrderBy("committed_at DESC").
		Limit(uint64(max(limit, 0))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list commits query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list commits: %w", err)
	}
	defer rows.Close()

	var out []*domain.StoredCommit
	for rows.Next() {
		var c domain.StoredCommit
		err := rows.Scan(&c.RepoID, &c.SHA, &c.Message, &c.AuthorName, &c.AuthorEmail, &c.CommittedAt, &c.Processed, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan commit: %w", err)
		}
		c.CommittedAt = c.CommittedAt.UTC()
		c.CreatedAt = c.CreatedAt.UTC()
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate commits: %w", err)
	}
	return out, nil
}
