package webhook

import (
	"strings"
	"time"

	"github.com/deltahq/delta/internal/domain"
)

// GitHub event names handled by the service.
const (
	EventPing       = "ping"
	EventPush       = "push"
	EventRepository = "repository"
)

type repositoryPayload struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	FullName      string  `json:"full_name"`
	HTMLURL       string  `json:"html_url"`
	DefaultBranch string  `json:"default_branch"`
	Private       bool    `json:"private"`
	Description   *string `json:"description"`
	Language      *string `json:"language"`
}

func (r repositoryPayload) toDomain() domain.RemoteRepository {
	out := domain.RemoteRepository{
		ID:            r.ID,
		Name:          r.Name,
		FullName:      r.FullName,
		URL:           r.HTMLURL,
		DefaultBranch: r.DefaultBranch,
		IsPrivate:     r.Private,
	}
	if r.Description != nil {
		out.Description = *r.Description
	}
	if r.Language != nil {
		out.Language = *r.Language
	}
	if out.DefaultBranch == "" {
		out.DefaultBranch = "main"
	}
	return out
}

type pushCommitPayload struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Author    struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Username string `json:"username"`
	} `json:"author"`
}

type pushPayload struct {
	Ref        string              `json:"ref"`
	Deleted    bool                `json:"deleted"`
	Repository repositoryPayload   `json:"repository"`
	Commits    []pushCommitPayload `json:"commits"`
}

// branch returns the pushed branch name, or "" for tag pushes.
func (p pushPayload) branch() string {
	name, ok := strings.CutPrefix(p.Ref, "refs/heads/")
	if !ok {
		return ""
	}
	return name
}

// commits converts pushed commits, newest first. Entries without a SHA are skipped.
func (p pushPayload) commits() []domain.Commit {
	out := make([]domain.Commit, 0, len(p.Commits))
	for i := len(p.Commits) - 1; i >= 0; i-- {
		c := p.Commits[i]
		if c.ID == "" {
			continue
		}
		author := c.Author.Name
		if author == "" {
			author = c.Author.Username
		}
		if author == "" {
			author = "unknown"
		}
		out = append(out, domain.Commit{
			SHA:         c.ID,
			Message:     c.Message,
			AuthorName:  author,
			AuthorEmail: c.Author.Email,
			CommittedAt: c.Timestamp.UTC(),
		})
	}
	return out
}

type repositoryEventPayload struct {
	Action     string            `json:"action"`
	Repository repositoryPayload `json:"repository"`
}
