package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/deltahq/delta/internal/adapter/github"
	"github.com/deltahq/delta/internal/domain"
	"github.com/deltahq/delta/pkg/ctxutil"
)

// BeginLogin stores a fresh OAuth state and returns the GitHub authorize URL.
func (s *Service) BeginLogin(ctx context.Context) (string, string, error) {
	if !s.cfg.HasGitHubOAuth() {
		return "", "", fmt.Errorf("auth.BeginLogin: %w", domain.ErrUnavailable)
	}

	state, err := s.newState()
	if err != nil {
		return "", "", fmt.Errorf("auth.BeginLogin generate state: %w", err)
	}
	if err := s.states.Put(ctx, state, s.cfg.StateTTL); err != nil {
		return "", "", fmt.Errorf("auth.BeginLogin store state: %w", err)
	}

	return s.github.AuthorizeURL(state), state, nil
}

// CompleteLogin finishes the OAuth flow: it checks the state, exchanges the
// code, stores the user with the sealed GitHub token and issues a session JWT.
func (s *Service) CompleteLogin(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ok, err := s.states.Consume(ctx, input.State)
	if err != nil {
		return nil, fmt.Errorf("auth.CompleteLogin consume state: %w", err)
	}
	if !ok {
		s.log.WarnContext(ctx, "oauth state missing or reused")
		return nil, domain.ErrUnauthorized
	}

	identity, err := s.github.Exchange(ctx, input.Code)
	if err != nil {
		return nil, fmt.Errorf("auth.CompleteLogin exchange code: %w", err)
	}

	sealed, err := s.tokens.Seal(identity.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("auth.CompleteLogin seal token: %w", err)
	}

	email := ""
	if identity.Email != nil {
		email = *identity.Email
	}
	user, err := s.users.Upsert(ctx, &domain.User{
		ID:          uuid.New(),
		GitHubID:    github.GitHubID(identity.ID),
		Username:    identity.Login,
		Email:       email,
		AvatarURL:   identity.AvatarURL,
		AccessToken: sealed,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.CompleteLogin upsert user: %w", err)
	}

	token, err := s.jwt.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("auth.CompleteLogin issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in via github",
		slog.String("user_id", user.ID.String()),
		slog.String("login", user.Username))

	return &AuthResult{
		AccessToken: token,
		ExpiresIn:   int(s.jwt.TTL().Seconds()),
		User:        user,
	}, nil
}

// ValidateToken returns the user id carried by a session token.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.Validate(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return userID, nil
}

// Me returns the signed-in user.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}
