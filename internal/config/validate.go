package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if len(c.Auth.TokenKey) < 32 {
		return fmt.Errorf("auth.token_key must be at least 32 characters (got %d)", len(c.Auth.TokenKey))
	}
	if !c.Auth.HasGitHubOAuth() {
		return fmt.Errorf("auth: github_client_id and github_client_secret are required")
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	if err := c.GitHub.validate(); err != nil {
		return fmt.Errorf("github: %w", err)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("rate_limit.requests_per_second must be > 0 (got %v)", c.RateLimit.RequestsPerSecond)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	d.Driver = strings.ToLower(strings.TrimSpace(d.Driver))
	switch d.Driver {
	case DriverMongo:
		if d.Mongo.URI == "" {
			return fmt.Errorf("mongo.uri is required")
		}
		if d.Mongo.Database == "" {
			return fmt.Errorf("mongo.database is required")
		}
	case DriverPostgres:
		if d.Postgres.DSN == "" {
			return fmt.Errorf("postgres.dsn is required")
		}
	default:
		return fmt.Errorf("unknown driver %q (want %s or %s)", d.Driver, DriverMongo, DriverPostgres)
	}
	return nil
}

func (l *LLMConfig) validate() error {
	l.Provider = strings.ToLower(strings.TrimSpace(l.Provider))
	switch l.Provider {
	case ProviderNone:
		return nil
	case ProviderOpenAI, ProviderAnthropic:
	default:
		return fmt.Errorf("unknown provider %q", l.Provider)
	}

	if l.APIKey == "" {
		return fmt.Errorf("api_key is required for provider %s", l.Provider)
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("temperature must be within [0, 2] (got %v)", l.Temperature)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", l.Timeout)
	}
	return nil
}

func (g *GitHubConfig) validate() error {
	if g.CommitLimit < 1 || g.CommitLimit > 100 {
		return fmt.Errorf("commit_limit must be within [1, 100] (got %d)", g.CommitLimit)
	}
	if g.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be > 0 (got %v)", g.RequestsPerSecond)
	}
	return nil
}
