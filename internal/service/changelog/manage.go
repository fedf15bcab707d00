package changelog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/deltahq/delta/internal/domain"
)

// ListByRepository returns the changelogs of an owned repository, newest first.
func (s *Service) ListByRepository(ctx context.Context, repoID uuid.UUID) ([]*domain.Changelog, error) {
	if _, _, err := s.ownedRepository(ctx, repoID); err != nil {
		return nil, err
	}

	list, err := s.changelogs.ListByRepo(ctx, repoID)
	if err != nil {
		return nil, fmt.Errorf("list changelogs: %w", err)
	}
	return list, nil
}

// Get returns an owned changelog.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Changelog, error) {
	return s.ownedChangelog(ctx, id)
}

// Update edits the title, version or content of an owned changelog.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Changelog, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.ownedChangelog(ctx, id); err != nil {
		return nil, err
	}

	cl, err := s.changelogs.Update(ctx, id, input.patch())
	if err != nil {
		return nil, fmt.Errorf("update changelog: %w", err)
	}

	s.log.InfoContext(ctx, "changelog updated", slog.String("changelog_id", id.String()))
	return cl, nil
}

// Publish makes an owned changelog visible at its public slug.
func (s *Service) Publish(ctx context.Context, id uuid.UUID) (*domain.Changelog, error) {
	return s.setPublished(ctx, id, true)
}

// Unpublish hides an owned changelog from the public pages.
func (s *Service) Unpublish(ctx context.Context, id uuid.UUID) (*domain.Changelog, error) {
	return s.setPublished(ctx, id, false)
}

func (s *Service) setPublished(ctx context.Context, id uuid.UUID, published bool) (*domain.Changelog, error) {
	if _, err := s.ownedChangelog(ctx, id); err != nil {
		return nil, err
	}

	cl, err := s.changelogs.SetPublished(ctx, id, published)
	if err != nil {
		return nil, fmt.Errorf("set published: %w", err)
	}

	s.log.InfoContext(ctx, "changelog visibility changed",
		slog.String("changelog_id", id.String()),
		slog.Bool("published", published),
	)
	return cl, nil
}

// Delete removes an owned changelog.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.ownedChangelog(ctx, id); err != nil {
		return err
	}

	if err := s.changelogs.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete changelog: %w", err)
	}

	s.log.InfoContext(ctx, "changelog deleted", slog.String("changelog_id", id.String()))
	return nil
}
