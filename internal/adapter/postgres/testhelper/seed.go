package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deltahq/delta/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique GitHub id.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:          uuid.New(),
		GitHubID:    "gh-" + suffix,
		Username:    "octo-" + suffix,
		Email:       "octo-" + suffix + "@example.com",
		AccessToken: "sealed-" + suffix,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, github_id, username, email, access_token, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.GitHubID, user.Username, user.Email, user.AccessToken, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedRepository connects a repository for the user.
func SeedRepository(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, githubID int64) domain.Repository {
	t.Helper()

	suffix := uniqueSuffix()
	repo := domain.Repository{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          "repo-" + suffix,
		FullName:      "acme/repo-" + suffix,
		URL:           "https://github.com/acme/repo-" + suffix,
		GitHubRepoID:  githubID,
		DefaultBranch: "main",
		ConnectedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO repositories (id, user_id, name, full_name, url, github_repo_id, default_branch, connected_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		repo.ID, repo.UserID, repo.Name, repo.FullName, repo.URL, repo.GitHubRepoID, repo.DefaultBranch, repo.ConnectedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRepository: %v", err)
	}
	return repo
}

// SeedChangelog inserts a changelog with a unique slug.
func SeedChangelog(t *testing.T, pool *pgxpool.Pool, repoID uuid.UUID, published bool) domain.Changelog {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	cl := domain.Changelog{
		ID:           uuid.New(),
		RepoID:       repoID,
		Title:        "Release " + suffix,
		Version:      "v2024.01.15",
		Content:      "# Release\n",
		CommitHashes: []string{"aaa", "bbb"},
		PublicSlug:   "release-" + suffix,
		FromCommit:   "aaa",
		ToCommit:     "bbb",
		IsPublished:  published,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO changelogs (id, repo_id, title, version, content, commit_hashes, public_slug,
		                         from_commit, to_commit, is_published, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		cl.ID, cl.RepoID, cl.Title, cl.Version, cl.Content, cl.CommitHashes, cl.PublicSlug,
		cl.FromCommit, cl.ToCommit, cl.IsPublished, cl.CreatedAt, cl.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedChangelog: %v", err)
	}
	return cl
}
