// Package changelog implements the changelog store using PostgreSQL.
package changelog

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
	"id", "repo_id", "title", "version", "content", "commit_hashes", "public_slug",
	"from_commit", "to_commit", "is_published", "created_at", "updated_at",
}

// Repo stores changelogs. Public slugs are unique.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new changelog store.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a changelog. A taken slug yields ErrAlreadyExists and an
// unknown repository ErrNotFound.
func (r *Repo) Create(ctx context.Context, cl *domain.Changelog) (*domain.Changelog, error) {
	hashes := cl.CommitHashes
	if hashes == nil {
		hashes = []string{}
	}

	query, args, err := postgres.Builder.
		Insert("changelogs").
		Columns(columns...).
		Values(cl.ID, cl.RepoID, cl.Title, cl.Version, cl.Content, hashes, cl.PublicSlug,
			cl.FromCommit, cl.ToCommit, cl.IsPublished, cl.CreatedAt.UTC(), cl.UpdatedAt.UTC()).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create changelog query: %w", err)
	}

	stored, err := scanChangelog(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "changelog", cl.ID)
	}
	return stored, nil
}

// GetByID returns a changelog by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Changelog, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetBySlug returns a changelog by public slug, published or not.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Changelog, error) {
	return r.getOne(ctx, squirrel.Eq{"public_slug": slug}, slug)
}

// SlugExists reports whether a slug is taken.
func (r *Repo) SlugExists(ctx context.Context, slug string) (bool, error) {
	sub, args, err := postgres.Builder.Select("1").From("changelogs").Where(squirrel.Eq{"public_slug": slug}).ToSql()
	if err != nil {
		return false, fmt.Errorf("build slug exists query: %w", err)
	}

	var exists bool
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, "SELECT EXISTS("+sub+")", args...)
	if err := row.Scan(&exists); err != nil {
		return false, postgres.MapError(err, "changelog slug", slug)
	}
	return exists, nil
}

// ListByRepo returns a repository's changelogs, newest first.
func (r *Repo) ListByRepo(ctx context.Context, repoID uuid.UUID) ([]*domain.Changelog, error) {
	return r.list(ctx, postgres.Builder.
		Select(columns...).
		From("changelogs").
		Where(squirrel.Eq{"repo_id": repoID}).
		OrderBy("created_at DESC"))
}

// ListPublished returns the newest published changelogs.
func (r *Repo) ListPublished(ctx context.Context, limit int) ([]*domain.Changelog, error) {
	return r.list(ctx, postgres.Builder.
		Select(columns...).
		From("changelogs").
		Where(squirrel.Eq{"is_published": true}).
		OrderBy("created_at DESC").
		Limit(uint64(max(limit, 0))))
}

// Update applies a patch and bumps UpdatedAt.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, patch domain.ChangelogPatch) (*domain.Changelog, error) {
	set := map[string]any{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Version != nil {
		set["version"] = *patch.Version
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	return r.updateOne(ctx, id, set)
}

// SetPublished changes the visibility and bumps UpdatedAt.
func (r *Repo) SetPublished(ctx context.Context, id uuid.UUID, published bool) (*domain.Changelog, error) {
	return r.updateOne(ctx, id, map[string]any{"is_published": published, "updated_at": time.Now().UTC()})
}

// Delete removes a changelog.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder.Delete("changelogs").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete changelog query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "changelog", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "changelog", id)
	}
	return nil
}

func (r *Repo) updateOne(ctx context.Context, id uuid.UUID, set map[string]any) (*domain.Changelog, error) {
	query, args, err := postgres.Builder.
		Update("changelogs").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update changelog query: %w", err)
	}

	cl, err := scanChangelog(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "changelog", id)
	}
	return cl, nil
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Eq, key any) (*domain.Changelog, error) {
	query, args, err := postgres.Builder.Select(columns...).From("changelogs").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get changelog query: %w", err)
	}

	cl, err := scanChangelog(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "changelog", key)
	}
	return cl, nil
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]*domain.Changelog, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list changelogs query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list changelogs: %w", err)
	}
	defer rows.Close()

	var out []*domain.Changelog
	for rows.Next() {
		cl, err := scanChangelog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan changelog: %w", err)
		}
		out = append(out, cl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate changelogs: %w", err)
	}
	return out, nil
}

func scanChangelog(row pgx.Row) (*domain.Changelog, error) {
	var cl domain.Changelog
	err := row.Scan(&cl.ID, &cl.RepoID, &cl.Title, &cl.Version, &cl.Content, &cl.CommitHashes, &cl.PublicSlug,
		&cl.FromCommit, &cl.ToCommit, &cl.IsPublished, &cl.CreatedAt, &cl.UpdatedAt)
	if err != nil {
		return nil, err
	}
	cl.CreatedAt = cl.CreatedAt.UTC()
	cl.UpdatedAt = cl.UpdatedAt.UTC()
	return &cl, nil
}
