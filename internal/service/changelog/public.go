package changelog

import (
	"context"
	"fmt"

	"github.com/deltahq/delta/internal/domain"
)

// GetPublished returns a changelog by public slug. Drafts are reported as not found.
func (s *Service) GetPublished(ctx context.Context, slug string) (*domain.Changelog, error) {
	if slug == "" {
		return nil, domain.ErrNotFound
	}

	cl, err := s.changelogs.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !cl.IsPublished {
		return nil, domain.ErrNotFound
	}
	return cl, nil
}

// ListPublished returns the most recent published changelogs.
func (s *Service) ListPublished(ctx context.Context, limit int) ([]*domain.Changelog, error) {
	if limit <= 0 {
		limit = DefaultPublicLimit
	}
	if limit > MaxPublicLimit {
		limit = MaxPublicLimit
	}

	list, err := s.changelogs.ListPublished(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list published: %w", err)
	}
	return list, nil
}

// Preview composes a changelog for any repository the token can read,
// without storing anything.
func (s *Service) Preview(ctx context.Context, input PreviewInput) (ComposeResult, error) {
	if err := input.Validate(); err != nil {
		return ComposeResult{}, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.commitLimit
	}

	commits, err := s.fetcher.LatestCommits(ctx, input.Token, input.Owner, input.Repo, limit)
	if err != nil {
		return ComposeResult{}, fmt.Errorf("fetch commits: %w", err)
	}
	if len(commits) == 0 {
		return ComposeResult{}, domain.ErrNoCommits
	}

	return s.composer.Compose(ctx, ComposeInput{
		Commits:      commits,
		RepoName:     input.Repo,
		RepoFullName: input.Owner + "/" + input.Repo,
		RepoURL:      "https://github.com/" + input.Owner + "/" + input.Repo,
	})
}
