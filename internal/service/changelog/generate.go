package changelog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/deltahq/delta/internal/domain"
)

// maxCreateAttempts bounds retries when a concurrent create takes the slug.
const maxCreateAttempts = 3

// GenerateResult is a stored changelog plus generation details.
type GenerateResult struct {
	Changelog   *domain.Changelog
	CommitCount int
	Degraded    bool
}

// Generate fetches the latest commits of a connected repository, composes a
// changelog and stores it under a unique public slug.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*GenerateResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	repo, userID, err := s.ownedRepository(ctx, input.RepositoryID)
	if err != nil {
		return nil, err
	}

	token, err := s.githubToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	owner, name, ok := strings.Cut(repo.FullName, "/")
	if !ok || owner == "" || name == "" {
		return nil, domain.NewValidationError("repository", "invalid full name")
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.commitLimit
	}

	commits, err := s.fetcher.LatestCommits(ctx, token, owner, name, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch commits: %w", err)
	}
	if len(commits) == 0 {
		return nil, domain.ErrNoCommits
	}

	stored, err := s.commits.StoreBatch(ctx, repo.ID, commits)
	if err != nil {
		return nil, fmt.Errorf("store commits: %w", err)
	}

	composed, err := s.composer.Compose(ctx, ComposeInput{
		Commits:      commits,
		RepoName:     repo.Name,
		RepoFullName: repo.FullName,
		RepoURL:      repo.URL,
		IsPrivate:    repo.IsPrivate,
	})
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}

	hashes := make([]string, len(commits))
	for i, c := range commits {
		hashes[i] = c.SHA
	}

	now := time.Now().UTC()
	cl, err := s.createWithSlug(ctx, &domain.Changelog{
		ID:           uuid.New(),
		RepoID:       repo.ID,
		Title:        composed.Title,
		Version:      composed.Version,
		Content:      composed.Content,
		CommitHashes: hashes,
		FromCommit:   commits[len(commits)-1].SHA,
		ToCommit:     commits[0].SHA,
		IsPublished:  input.Publish,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	if err := s.commits.MarkProcessed(ctx, repo.ID, hashes); err != nil {
		return nil, fmt.Errorf("mark commits processed: %w", err)
	}
	if !repo.HasChangelogs {
		if err := s.repos.SetHasChangelogs(ctx, repo.ID, true); err != nil {
			return nil, fmt.Errorf("flag repository: %w", err)
		}
	}

	s.log.InfoContext(ctx, "changelog generated",
		slog.String("user_id", userID.String()),
		slog.String("repo", repo.FullName),
		slog.String("changelog_id", cl.ID.String()),
		slog.String("slug", cl.PublicSlug),
		slog.Int("commits", len(commits)),
		slog.Int("new_commits", stored),
		slog.Bool("degraded", composed.Degraded),
	)

	return &GenerateResult{Changelog: cl, CommitCount: len(commits), Degraded: composed.Degraded}, nil
}

// createWithSlug assigns a free slug derived from the title and stores the
// changelog, retrying when a concurrent create wins the same slug.
func (s *Service) createWithSlug(ctx context.Context, cl *domain.Changelog) (*domain.Changelog, error) {
	base := Slugify(cl.Title)

	var lastErr error
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		slug, err := UniqueSlug(ctx, base, s.changelogs.SlugExists)
		if err != nil {
			return nil, fmt.Errorf("slug: %w", err)
		}
		cl.PublicSlug = slug

		created, err := s.changelogs.Create(ctx, cl)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("create changelog: %w", err)
		}
		lastErr = err
	}
	return nil, fmt.Errorf("create changelog: %w", lastErr)
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
