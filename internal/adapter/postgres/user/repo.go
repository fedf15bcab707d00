// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deltahq/delta/internal/adapter/postgres"
	"github.com/deltahq/delta/internal/domain"
)

var columns = []string{
	"id", "github_id", "username", "email", "avatar_url", "access_token", "created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("users").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user query: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByGitHubID returns a user by GitHub account id.
func (r *Repo) GetByGitHubID(ctx context.Context, githubID string) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("users").
		Where("github_id = ?", githubID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user query: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user github_id", githubID)
	}
	return u, nil
}

// Upsert inserts a user or refreshes the profile and token of the user with
// the same GitHub id. The stored row is returned, keeping its original id.
func (r *Repo) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	now := time.Now().UTC()
	created := u.CreatedAt
	if created.IsZero() {
		created = now
	}

	query, args, err := postgres.Builder.
		Insert("users").
		Columns(columns...).
		Values(u.ID, u.GitHubID, u.Username, u.Email, u.AvatarURL, u.AccessToken, created, now).
		Suffix(`ON CONFLICT (github_id) DO UPDATE SET
			username = EXCLUDED.username,
			email = EXCLUDED.email,
			avatar_url = EXCLUDED.avatar_url,
			access_token = EXCLUDED.access_token,
			updated_at = EXCLUDED.updated_at
			RETURNING ` + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert user query: %w", err)
	}

	stored, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user github_id", u.GitHubID)
	}
	return stored, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.GitHubID, &u.Username, &u.Email, &u.AvatarURL, &u.AccessToken, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return &u, nil
}
