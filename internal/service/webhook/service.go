package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/deltahq/delta/internal/domain"
)

type repositoryRepo interface {
	ListByGitHubID(ctx context.Context, githubID int64) ([]*domain.Repository, error)
	RefreshMetadata(ctx context.Context, githubID int64, remote domain.RemoteRepository) (int64, error)
	TouchSync(ctx context.Context, id uuid.UUID, at time.Time) error
}

type commitRepo interface {
	StoreBatch(ctx context.Context, repoID uuid.UUID, commits []domain.Commit) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result summarizes what a delivery changed.
type Result struct {
	Event        string
	Handled      bool
	Repositories int
	NewCommits   int
}

// Service applies GitHub webhook deliveries to connected repositories.
type Service struct {
	log     *slog.Logger
	repos   repositoryRepo
	commits commitRepo
	tx      txManager
	now     func() time.Time
}

// NewService creates a new Webhook service.
func NewService(log *slog.Logger, repos repositoryRepo, commits commitRepo, tx txManager) *Service {
	return &Service{
		log:     log.With("service", "webhook"),
		repos:   repos,
		commits: commits,
		tx:      tx,
		now:     time.Now,
	}
}

// HandleEvent dispatches a verified delivery by its X-GitHub-Event name.
// Unknown events are logged and ignored.
func (s *Service) HandleEvent(ctx context.Context, event, delivery string, payload []byte) (*Result, error) {
	log := s.log.With(slog.String("event", event), slog.String("delivery", delivery))

	switch event {
	case EventPing:
		log.InfoContext(ctx, "webhook ping received")
		return &Result{Event: event, Handled: true}, nil

	case EventPush:
		var p pushPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, domain.NewValidationError("payload", "invalid push payload")
		}
		return s.handlePush(ctx, log, p)

	case EventRepository:
		var p repositoryEventPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, domain.NewValidationError("payload", "invalid repository payload")
		}
		return s.handleRepository(ctx, log, p)

	default:
		log.InfoContext(ctx, "webhook event ignored")
		return &Result{Event: event}, nil
	}
}

func (s *Service) handlePush(ctx context.Context, log *slog.Logger, p pushPayload) (*Result, error) {
	res := &Result{Event: EventPush, Handled: true}
	if p.Repository.ID == 0 {
		return nil, domain.NewValidationError("repository.id", "required")
	}

	branch := p.branch()
	if p.Deleted || branch == "" {
		log.InfoContext(ctx, "push without new commits ignored", slog.String("ref", p.Ref))
		return res, nil
	}

	repos, err := s.repos.ListByGitHubID(ctx, p.Repository.ID)
	if err != nil {
		return nil, fmt.Errorf("list repositories: %w", err)
	}
	if len(repos) == 0 {
		log.InfoContext(ctx, "push for unconnected repository", slog.String("repo", p.Repository.FullName))
		return res, nil
	}

	commits := p.commits()
	now := s.now().UTC()
	for _, repo := range repos {
		err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
			n, err := s.commits.StoreBatch(ctx, repo.ID, commits)
			if err != nil {
				return fmt.Errorf("store commits: %w", err)
			}
			if err := s.repos.TouchSync(ctx, repo.ID, now); err != nil {
				return fmt.Errorf("touch sync: %w", err)
			}
			res.NewCommits += n
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("repository %s: %w", repo.ID, err)
		}
		res.Repositories++
	}

	log.InfoContext(ctx, "push recorded",
		slog.String("repo", p.Repository.FullName),
		slog.String("branch", branch),
		slog.Int("commits", len(commits)),
		slog.Int("new_commits", res.NewCommits),
		slog.Int("connections", res.Repositories))

	return res, nil
}

func (s *Service) handleRepository(ctx context.Context, log *slog.Logger, p repositoryEventPayload) (*Result, error) {
	if p.Repository.ID == 0 {
		return nil, domain.NewValidationError("repository.id", "required")
	}

	n, err := s.repos.RefreshMetadata(ctx, p.Repository.ID, p.Repository.toDomain())
	if err != nil {
		return nil, fmt.Errorf("refresh metadata: %w", err)
	}

	log.InfoContext(ctx, "repository metadata refreshed",
		slog.String("action", p.Action),
		slog.String("repo", p.Repository.FullName),
		slog.Int64("connections", n))

	return &Result{Event: EventRepository, Handled: true, Repositories: int(n)}, nil
}
