package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/deltahq/delta/internal/auth"
	"github.com/deltahq/delta/internal/config"
	"github.com/deltahq/delta/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Upsert(ctx context.Context, u *domain.User) (*domain.User, error)
}

type stateStore interface {
	Put(ctx context.Context, state string, ttl time.Duration) error
	Consume(ctx context.Context, state string) (bool, error)
}

type githubOAuth interface {
	AuthorizeURL(state string) string
	Exchange(ctx context.Context, code string) (*auth.GitHubIdentity, error)
}

type tokenSealer interface {
	Seal(plain string) (string, error)
}

type jwtManager interface {
	Issue(userID uuid.UUID, login string) (string, error)
	Validate(token string) (uuid.UUID, error)
	TTL() time.Duration
}

// Service implements GitHub sign-in and session tokens.
type Service struct {
	log    *slog.Logger
	users  userRepo
	states stateStore
	github githubOAuth
	tokens tokenSealer
	jwt    jwtManager
	cfg    config.AuthConfig

	newState func() (string, error)
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	states stateStore,
	github githubOAuth,
	tokens tokenSealer,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		states:   states,
		github:   github,
		tokens:   tokens,
		jwt:      jwt,
		cfg:      cfg,
		newState: auth.RandomState,
	}
}
