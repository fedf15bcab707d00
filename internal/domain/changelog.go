package domain

import (
	"time"

	"github.com/google/uuid"
)

// Changelog is a generated release note for a repository.
type Changelog struct {
	ID           uuid.UUID
	RepoID       uuid.UUID
	Title        string
	Version      string
	Content      string
	CommitHashes []string
	PublicSlug   string
	FromCommit   string
	ToCommit     string
	IsPublished  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CommitCount returns the number of commits the changelog was generated from.
func (c *Changelog) CommitCount() int {
	return len(c.CommitHashes)
}

// ChangelogPatch holds the editable fields of a changelog. Nil fields are left unchanged.
type ChangelogPatch struct {
	Title   *string
	Version *string
	Content *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ChangelogPatch) IsEmpty() bool {
	return p.Title == nil && p.Version == nil && p.Content == nil
}
