package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user signed in through GitHub.
type User struct {
	ID        uuid.UUID
	GitHubID  string
	Username  string
	Email     string
	AvatarURL *string
	// AccessToken is the sealed GitHub token; only auth.TokenBox can open it.
	AccessToken string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasAccessToken reports whether the user has a stored GitHub token.
func (u *User) HasAccessToken() bool {
	return u.AccessToken != ""
}
