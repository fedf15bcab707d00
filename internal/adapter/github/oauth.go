package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/deltahq/delta/internal/auth"
	"github.com/deltahq/delta/internal/domain"
)

// AuthorizeURL returns the GitHub consent page URL for the given state.
func (c *Client) AuthorizeURL(state string) string {
	q := url.Values{}
	q.Set("client_id", c.clientID)
	q.Set("redirect_uri", c.redirectURI)
	q.Set("scope", strings.Join(c.scopes, " "))
	q.Set("state", state)
	q.Set("allow_signup", "true")
	return c.oauthURL + "/login/oauth/authorize?" + q.Encode()
}

// Exchange trades an authorization code for an access token and loads the
// user's profile with it.
func (c *Client) Exchange(ctx context.Context, code string) (*auth.GitHubIdentity, error) {
	token, err := c.exchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	id, err := c.GetUser(ctx, token)
	if err != nil {
		return nil, err
	}
	id.AccessToken = token

	c.log.DebugContext(ctx, "github oauth success", slog.String("login", id.Login))
	return id, nil
}

// GetUser returns the profile of the token's owner. A hidden profile email is
// filled from the primary verified address when the token has user:email.
func (c *Client) GetUser(ctx context.Context, token string) (*auth.GitHubIdentity, error) {
	var u userPayload
	if _, err := c.getJSON(ctx, "get user", token, "/user", nil, &u); err != nil {
		return nil, err
	}
	if u.ID == 0 || u.Login == "" {
		return nil, domain.NewFetchError(domain.FetchUnavailable, "get user", fmt.Errorf("missing id or login"))
	}

	id := &auth.GitHubIdentity{
		ID:        u.ID,
		Login:     u.Login,
		Name:      nonEmpty(u.Name),
		Email:     nonEmpty(u.Email),
		AvatarURL: nonEmpty(u.AvatarURL),
	}

	if id.Email == nil {
		var emails []emailPayload
		if _, err := c.getJSON(ctx, "list emails", token, "/user/emails", nil, &emails); err == nil {
			for _, e := range emails {
				if e.Primary && e.Verified {
					email := e.Email
					id.Email = &email
					break
				}
			}
		}
	}

	return id, nil
}

func (c *Client) exchangeCode(ctx context.Context, code string) (string, error) {
	const op = "exchange code"

	data := url.Values{}
	data.Set("client_id", c.clientID)
	data.Set("client_secret", c.clientSecret)
	data.Set("code", code)
	data.Set("redirect_uri", c.redirectURI)
	encoded := data.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.oauthURL+"/login/oauth/access_token", strings.NewReader(encoded))
	if err != nil {
		return "", domain.NewFetchError(domain.FetchUnavailable, op, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(encoded)), nil
	}

	resp, err := c.do(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "github token exchange failed", slog.String("error", err.Error()))
		return "", domain.NewFetchError(domain.FetchUnavailable, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.ErrorContext(ctx, "github token exchange failed", slog.Int("status", resp.StatusCode))
		return "", statusError(op, resp)
	}

	var tok tokenPayload
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&tok); err != nil {
		return "", domain.NewFetchError(domain.FetchUnavailable, op, fmt.Errorf("invalid token response: %w", err))
	}

	// GitHub reports bad codes with 200 and an error field.
	if tok.Error != "" {
		c.log.WarnContext(ctx, "github token exchange rejected", slog.String("error", tok.Error))
		return "", domain.NewFetchError(domain.FetchForbidden, op, fmt.Errorf("%s: %s", tok.Error, tok.ErrorDescription))
	}
	if tok.AccessToken == "" {
		return "", domain.NewFetchError(domain.FetchUnavailable, op, fmt.Errorf("missing access_token"))
	}
	return tok.AccessToken, nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// GitHubID formats a numeric GitHub id the way it is stored on users.
func GitHubID(id int64) string {
	return strconv.FormatInt(id, 10)
}
