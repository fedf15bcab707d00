package domain

import (
	"time"

	"github.com/google/uuid"
)

// Repository is a GitHub repository connected by a user.
type Repository struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	FullName      string
	URL           string
	GitHubRepoID  int64
	DefaultBranch string
	IsPrivate     bool
	Description   string
	Language      string
	HasChangelogs bool
	ConnectedAt   time.Time
	LastSyncAt    *time.Time
}

// IsOwnedBy reports whether the repository belongs to the user.
func (r *Repository) IsOwnedBy(userID uuid.UUID) bool {
	return r.UserID == userID
}

// RepositoryWithStats adds aggregate counters to a repository.
type RepositoryWithStats struct {
	Repository
	ChangelogCount int
}

// RemoteRepository is a repository as listed by the source-control host.
type RemoteRepository struct {
	ID            int64
	Name          string
	FullName      string
	URL           string
	DefaultBranch string
	IsPrivate     bool
	Description   string
	Language      string
	Stars         int
	Forks         int
	UpdatedAt     time.Time
}
