package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/deltahq/delta/internal/config"
	"github.com/deltahq/delta/internal/domain"
)

const (
	acceptHeader = "application/vnd.github.v3+json"
	maxBodyBytes = 10 << 20
)

// Client talks to the GitHub REST API and the GitHub OAuth endpoints.
// Every failure is reported as a *domain.FetchError.
type Client struct {
	apiURL       string
	oauthURL     string
	clientID     string
	clientSecret string
	redirectURI  string
	scopes       []string
	userAgent    string
	httpClient   *http.Client
	limiter      *rate.Limiter
	retryDelay   time.Duration
	log          *slog.Logger
}

// New creates a GitHub client. Outbound calls share one token-bucket limiter.
func New(gh config.GitHubConfig, auth config.AuthConfig, logger *slog.Logger) *Client {
	timeout := gh.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	limit := rate.Inf
	if gh.RequestsPerSecond > 0 {
		limit = rate.Limit(gh.RequestsPerSecond)
	}
	burst := gh.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		apiURL:       strings.TrimRight(gh.APIURL, "/"),
		oauthURL:     strings.TrimRight(gh.OAuthURL, "/"),
		clientID:     auth.GitHubClientID,
		clientSecret: auth.GitHubClientSecret,
		redirectURI:  auth.GitHubRedirectURI,
		scopes:       auth.Scopes(),
		userAgent:    gh.UserAgent,
		httpClient:   &http.Client{Timeout: timeout},
		limiter:      rate.NewLimiter(limit, burst),
		retryDelay:   500 * time.Millisecond,
		log:          logger.With("adapter", "github"),
	}
}

// getJSON performs an authenticated GET against the REST API and decodes the
// response into out. It returns the response headers for pagination.
func (c *Client) getJSON(ctx context.Context, op, token, path string, query url.Values, out any) (http.Header, error) {
	u := c.apiURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, domain.NewFetchError(domain.FetchUnavailable, op, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", acceptHeader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.do(ctx, req)
	if err != nil {
		c.log.WarnContext(ctx, "github request failed", slog.String("op", op), slog.String("error", err.Error()))
		return nil, domain.NewFetchError(domain.FetchUnavailable, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(op, resp)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return nil, domain.NewFetchError(domain.FetchUnavailable, op, fmt.Errorf("decode response: %w", err))
	}
	return resp.Header, nil
}

// do waits for the limiter and executes the request, retrying once on 5xx
// or network errors.
func (c *Client) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err == nil && resp.StatusCode < 500 {
		return resp, nil
	}
	if resp != nil {
		resp.Body.Close()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	select {
	case <-time.After(c.retryDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		req.Body = body
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return c.httpClient.Do(req)
}

// statusError maps a non-200 response onto a FetchError kind.
func statusError(op string, resp *http.Response) error {
	var body apiError
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body)

	cause := fmt.Errorf("github status %d", resp.StatusCode)
	if body.Message != "" {
		cause = fmt.Errorf("github status %d: %s", resp.StatusCode, body.Message)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.NewFetchError(domain.FetchNotFound, op, cause)
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return domain.NewFetchError(domain.FetchForbidden, op, cause)
	case resp.StatusCode == http.StatusConflict:
		return domain.NewFetchError(domain.FetchConflict, op, cause)
	default:
		return domain.NewFetchError(domain.FetchUnavailable, op, cause)
	}
}

// IsKind reports whether err is a FetchError of the given kind.
func IsKind(err error, kind domain.FetchErrorKind) bool {
	var fe *domain.FetchError
	return errors.As(err, &fe) && fe.Kind == kind
}
