package mongostore

import (
	"time"

	"github.com/google/uuid"

	"github.com/deltahq/delta/internal/domain"
)

// Ids are stored as canonical UUID strings so documents stay readable in the shell.

type userDoc struct {
	ID          string    `bson:"_id"`
	GitHubID    string    `bson:"github_id"`
	Username    string    `bson:"username"`
	Email       string    `bson:"email"`
	AvatarURL   *string   `bson:"avatar_url,omitempty"`
	AccessToken string    `bson:"access_token"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:          parseID(d.ID),
		GitHubID:    d.GitHubID,
		Username:    d.Username,
		Email:       d.Email,
		AvatarURL:   d.AvatarURL,
		AccessToken: d.AccessToken,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

type repositoryDoc struct {
	ID            string     `bson:"_id"`
	UserID        string     `bson:"user_id"`
	Name          string     `bson:"name"`
	FullName      string     `bson:"full_name"`
	URL           string     `bson:"url"`
	GitHubRepoID  int64      `bson:"github_repo_id"`
	DefaultBranch string     `bson:"default_branch"`
	IsPrivate     bool       `bson:"is_private"`
	Description   string     `bson:"description"`
	Language      string     `bson:"language"`
	HasChangelogs bool       `bson:"has_changelogs"`
	ConnectedAt   time.Time  `bson:"connected_at"`
	LastSyncAt    *time.Time `bson:"last_sync_at,omitempty"`
}

func (d repositoryDoc) toDomain() *domain.Repository {
	r := &domain.Repository{
		ID:            parseID(d.ID),
		UserID:        parseID(d.UserID),
		Name:          d.Name,
		FullName:      d.FullName,
		URL:           d.URL,
		GitHubRepoID:  d.GitHubRepoID,
		DefaultBranch: d.DefaultBranch,
		IsPrivate:     d.IsPrivate,
		Description:   d.Description,
		Language:      d.Language,
		HasChangelogs: d.HasChangelogs,
		ConnectedAt:   d.ConnectedAt.UTC(),
	}
	if d.LastSyncAt != nil {
		t := d.LastSyncAt.UTC()
		r.LastSyncAt = &t
	}
	return r
}

type changelogDoc struct {
	ID           string    `bson:"_id"`
	RepoID       string    `bson:"repo_id"`
	Title        string    `bson:"title"`
	Version      string    `bson:"version"`
	Content      string    `bson:"content"`
	CommitHashes []string  `bson:"commit_hashes"`
	PublicSlug   string    `bson:"public_slug"`
	FromCommit   string    `bson:"from_commit"`
	ToCommit     string    `bson:"to_commit"`
	IsPublished  bool      `bson:"is_published"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func newChangelogDoc(c *domain.Changelog) changelogDoc {
	hashes := c.CommitHashes
	if hashes == nil {
		hashes = []string{}
	}
	return changelogDoc{
		ID:           c.ID.String(),
		RepoID:       c.RepoID.String(),
		Title:        c.Title,
		Version:      c.Version,
		Content:      c.Content,
		CommitHashes: hashes,
		PublicSlug:   c.PublicSlug,
		FromCommit:   c.FromCommit,
		ToCommit:     c.ToCommit,
		IsPublished:  c.IsPublished,
		CreatedAt:    c.CreatedAt.UTC(),
		UpdatedAt:    c.UpdatedAt.UTC(),
	}
}

func (d changelogDoc) toDomain() *domain.Changelog {
	return &domain.Changelog{
		ID:           parseID(d.ID),
		RepoID:       parseID(d.RepoID),
		Title:        d.Title,
		Version:      d.Version,
		Content:      d.Content,
		CommitHashes: d.CommitHashes,
		PublicSlug:   d.PublicSlug,
		FromCommit:   d.FromCommit,
		ToCommit:     d.ToCommit,
		IsPublished:  d.IsPublished,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

type commitDoc struct {
	RepoID      string    `bson:"repo_id"`
	SHA         string    `bson:"sha"`
	Message     string    `bson:"message"`
	AuthorName  string    `bson:"author_name"`
	AuthorEmail string    `bson:"author_email"`
	CommittedAt time.Time `bson:"committed_at"`
	Processed   bool      `bson:"processed"`
	CreatedAt   time.Time `bson:"created_at"`
}

func (d commitDoc) toDomain() *domain.StoredCommit {
	return &domain.StoredCommit{
		Commit: domain.Commit{
			SHA:         d.SHA,
			Message:     d.Message,
			AuthorName:  d.AuthorName,
			AuthorEmail: d.AuthorEmail,
			CommittedAt: d.CommittedAt.UTC(),
		},
		RepoID:    parseID(d.RepoID),
		Processed: d.Processed,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

// parseID returns uuid.Nil for ids not written by this package.
func parseID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
