package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/deltahq/delta/internal/domain"
)

const (
	reposPerPage = 100
	maxRepoPages = 50
)

// ListRepositories returns every repository the token's user owns or
// collaborates on, most recently updated first.
func (c *Client) ListRepositories(ctx context.Context, token string) ([]domain.RemoteRepository, error) {
	var out []domain.RemoteRepository

	for page := 1; page <= maxRepoPages; page++ {
		query := url.Values{}
		query.Set("per_page", strconv.Itoa(reposPerPage))
		query.Set("page", strconv.Itoa(page))
		query.Set("sort", "updated")
		query.Set("affiliation", "owner,collaborator")

		var batch []repoPayload
		header, err := c.getJSON(ctx, "list repositories", token, "/user/repos", query, &batch)
		if err != nil {
			return nil, err
		}
		for _, r := range batch {
			out = append(out, r.toDomain())
		}

		if len(batch) < reposPerPage || !hasNextPage(header) {
			break
		}
	}
	return out, nil
}

// GetRepository returns a single repository by owner and name.
func (c *Client) GetRepository(ctx context.Context, token, owner, repo string) (*domain.RemoteRepository, error) {
	r, err := c.getRepo(ctx, token, owner, repo)
	if err != nil {
		return nil, err
	}
	out := r.toDomain()
	return &out, nil
}

// GetRepositoryByID returns a single repository by its GitHub id.
func (c *Client) GetRepositoryByID(ctx context.Context, token string, id int64) (*domain.RemoteRepository, error) {
	var r repoPayload
	path := "/repositories/" + strconv.FormatInt(id, 10)
	if _, err := c.getJSON(ctx, "get repository", token, path, nil, &r); err != nil {
		return nil, err
	}
	out := r.toDomain()
	return &out, nil
}

func (c *Client) getRepo(ctx context.Context, token, owner, repo string) (*repoPayload, error) {
	var r repoPayload
	path := fmt.Sprintf("/repos/%s/%s", url.PathEscape(owner), url.PathEscape(repo))
	if _, err := c.getJSON(ctx, "get repository", token, path, nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r repoPayload) toDomain() domain.RemoteRepository {
	out := domain.RemoteRepository{
		ID:            r.ID,
		Name:          r.Name,
		FullName:      r.FullName,
		URL:           r.HTMLURL,
		DefaultBranch: r.DefaultBranch,
		IsPrivate:     r.Private,
		Stars:         r.StargazersCount,
		Forks:         r.ForksCount,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.Description != nil {
		out.Description = *r.Description
	}
	if r.Language != nil {
		out.Language = *r.Language
	}
	return out
}

func hasNextPage(h http.Header) bool {
	return strings.Contains(h.Get("Link"), `rel="next"`)
}
