package auth

import "github.com/deltahq/delta/internal/domain"

// AuthResult is returned after a successful GitHub sign-in.
type AuthResult struct {
	AccessToken string
	ExpiresIn   int // seconds
	User        *domain.User
}
