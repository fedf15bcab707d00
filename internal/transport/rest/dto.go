package rest

import (
	"time"

	"github.com/deltahq/delta/internal/domain"
	"github.com/deltahq/delta/internal/service/changelog"
)

type userResponse struct {
	ID        string    `json:"id"`
	GitHubID  string    `json:"github_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		GitHubID:  u.GitHubID,
		Username:  u.Username,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

type repositoryResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	FullName       string     `json:"full_name"`
	URL            string     `json:"url"`
	GitHubRepoID   int64      `json:"github_repo_id"`
	DefaultBranch  string     `json:"default_branch"`
	IsPrivate      bool       `json:"is_private"`
	Description    string     `json:"description,omitempty"`
	Language       string     `json:"language,omitempty"`
	HasChangelogs  bool       `json:"has_changelogs"`
	ConnectedAt    time.Time  `json:"connected_at"`
	LastSyncAt     *time.Time `json:"last_sync_at,omitempty"`
	ChangelogCount *int       `json:"changelog_count,omitempty"`
}

func toRepositoryResponse(r *domain.Repository) repositoryResponse {
	return repositoryResponse{
		ID:            r.ID.String(),
		Name:          r.Name,
		FullName:      r.FullName,
		URL:           r.URL,
		GitHubRepoID:  r.GitHubRepoID,
		DefaultBranch: r.DefaultBranch,
		IsPrivate:     r.IsPrivate,
		Description:   r.Description,
		Language:      r.Language,
		HasChangelogs: r.HasChangelogs,
		ConnectedAt:   r.ConnectedAt,
		LastSyncAt:    r.LastSyncAt,
	}
}

type remoteRepositoryResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	FullName      string    `json:"full_name"`
	URL           string    `json:"url"`
	DefaultBranch string    `json:"default_branch"`
	IsPrivate     bool      `json:"is_private"`
	Description   string    `json:"description,omitempty"`
	Language      string    `json:"language,omitempty"`
	Stars         int       `json:"stars"`
	Forks         int       `json:"forks"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type commitResponse struct {
	SHA         string    `json:"sha"`
	Message     string    `json:"message"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email,omitempty"`
	CommittedAt time.Time `json:"committed_at"`
	Processed   bool      `json:"processed"`
}

type changelogResponse struct {
	ID          string    `json:"id"`
	RepoID      string    `json:"repo_id"`
	Title       string    `json:"title"`
	Version     string    `json:"version"`
	Content     string    `json:"content"`
	CommitCount int       `json:"commit_count"`
	PublicSlug  string    `json:"public_slug"`
	FromCommit  string    `json:"from_commit"`
	ToCommit    string    `json:"to_commit"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toChangelogResponse(c *domain.Changelog) changelogResponse {
	return changelogResponse{
		ID:          c.ID.String(),
		RepoID:      c.RepoID.String(),
		Title:       c.Title,
		Version:     c.Version,
		Content:     c.Content,
		CommitCount: c.CommitCount(),
		PublicSlug:  c.PublicSlug,
		FromCommit:  c.FromCommit,
		ToCommit:    c.ToCommit,
		IsPublished: c.IsPublished,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type generateResponse struct {
	Changelog   changelogResponse `json:"changelog"`
	CommitCount int               `json:"commit_count"`
	Degraded    bool              `json:"degraded"`
}

func toGenerateResponse(res *changelog.GenerateResult) generateResponse {
	return generateResponse{
		Changelog:   toChangelogResponse(res.Changelog),
		CommitCount: res.CommitCount,
		Degraded:    res.Degraded,
	}
}

// publicChangelogResponse omits owner-only fields.
type publicChangelogResponse struct {
	Title       string    `json:"title"`
	Version     string    `json:"version"`
	Content     string    `json:"content"`
	Slug        string    `json:"slug"`
	CommitCount int       `json:"commit_count"`
	CreatedAt   time.Time `json:"created_at"`
}

func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}
