package github

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/deltahq/delta/internal/domain"
)

const (
	defaultCommitLimit = 20
	maxCommitLimit     = 100
)

// LatestCommits returns up to limit commits of the repository's default
// branch, newest first. An empty repository page is an empty slice.
func (c *Client) LatestCommits(ctx context.Context, token, owner, repo string, limit int) ([]domain.Commit, error) {
	if limit <= 0 {
		limit = defaultCommitLimit
	}
	if limit > maxCommitLimit {
		limit = maxCommitLimit
	}

	r, err := c.getRepo(ctx, token, owner, repo)
	if err != nil {
		return nil, err
	}

	const op = "list commits"
	query := url.Values{}
	if r.DefaultBranch != "" {
		query.Set("sha", r.DefaultBranch)
	}
	query.Set("per_page", strconv.Itoa(limit))

	var page []commitPayload
	path := fmt.Sprintf("/repos/%s/%s/commits", url.PathEscape(owner), url.PathEscape(repo))
	if _, err := c.getJSON(ctx, op, token, path, query, &page); err != nil {
		return nil, err
	}

	commits := make([]domain.Commit, 0, len(page))
	for _, p := range page {
		cm, err := p.toDomain()
		if err != nil {
			return nil, domain.NewFetchError(domain.FetchUnavailable, op, err)
		}
		commits = append(commits, cm)
	}
	return commits, nil
}

func (p commitPayload) toDomain() (domain.Commit, error) {
	if p.SHA == "" {
		return domain.Commit{}, fmt.Errorf("malformed commit: missing sha")
	}
	if p.Commit.Author == nil || p.Commit.Author.Date == nil {
		return domain.Commit{}, fmt.Errorf("malformed commit %s: missing date", p.SHA)
	}

	name := p.Commit.Author.Name
	if name == "" && p.Author != nil {
		name = p.Author.Login
	}
	if name == "" {
		name = "unknown"
	}

	return domain.Commit{
		SHA:         p.SHA,
		Message:     p.Commit.Message,
		AuthorName:  name,
		AuthorEmail: p.Commit.Author.Email,
		CommittedAt: p.Commit.Author.Date.UTC(),
	}, nil
}
