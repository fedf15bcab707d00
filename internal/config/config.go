package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	GitHub    GitHubConfig    `yaml:"github"`
	LLM       LLMConfig       `yaml:"llm"`
	Redis     RedisConfig     `yaml:"redis"`
	Webhook   WebhookConfig   `yaml:"webhook"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	CORS      CORSConfig      `yaml:"cors"`
	Log       LogConfig       `yaml:"log"`
	Public    PublicConfig    `yaml:"public"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Storage drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// DatabaseConfig selects and configures the storage backend.
type DatabaseConfig struct {
	Driver   string         `yaml:"driver"   env:"DATABASE_DRIVER" env-default:"mongo"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI            string        `yaml:"uri"             env:"MONGODB_URI"             env-default:"mongodb://localhost:27017"`
	Database       string        `yaml:"database"        env:"MONGODB_DATABASE"        env-default:"delta"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MONGODB_CONNECT_TIMEOUT" env-default:"10s"`
	MaxPoolSize    uint64        `yaml:"max_pool_size"   env:"MONGODB_MAX_POOL_SIZE"   env-default:"50"`
}

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// AutoMigrate applies pending migrations on `delta serve`.
	AutoMigrate bool `yaml:"auto_migrate" env:"DATABASE_AUTO_MIGRATE" env-default:"false"`
}

// AuthConfig holds session and GitHub OAuth settings.
type AuthConfig struct {
	JWTSecret          string        `yaml:"jwt_secret"           env:"AUTH_JWT_SECRET"           env-required:"true"`
	JWTIssuer          string        `yaml:"jwt_issuer"           env:"AUTH_JWT_ISSUER"           env-default:"delta"`
	SessionTTL         time.Duration `yaml:"session_ttl"          env:"AUTH_SESSION_TTL"          env-default:"24h"`
	TokenKey           string        `yaml:"token_key"            env:"AUTH_TOKEN_KEY"            env-required:"true"`
	GitHubClientID     string        `yaml:"github_client_id"     env:"AUTH_GITHUB_CLIENT_ID"`
	GitHubClientSecret string        `yaml:"github_client_secret" env:"AUTH_GITHUB_CLIENT_SECRET"`
	GitHubRedirectURI  string        `yaml:"github_redirect_uri"  env:"AUTH_GITHUB_REDIRECT_URI"`
	GitHubScopes       string        `yaml:"github_scopes"        env:"AUTH_GITHUB_SCOPES"        env-default:"read:user user:email repo"`
	StateTTL           time.Duration `yaml:"state_ttl"            env:"AUTH_STATE_TTL"            env-default:"10m"`
}

// GitHubConfig holds settings for the GitHub REST client.
type GitHubConfig struct {
	APIURL            string        `yaml:"api_url"             env:"GITHUB_API_URL"             env-default:"https://api.github.com"`
	OAuthURL          string        `yaml:"oauth_url"           env:"GITHUB_OAUTH_URL"           env-default:"https://github.com"`
	UserAgent         string        `yaml:"user_agent"          env:"GITHUB_USER_AGENT"          env-default:"delta-changelog"`
	Timeout           time.Duration `yaml:"timeout"             env:"GITHUB_TIMEOUT"             env-default:"10s"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"GITHUB_REQUESTS_PER_SECOND" env-default:"10"`
	Burst             int           `yaml:"burst"               env:"GITHUB_BURST"               env-default:"20"`
	CommitLimit       int           `yaml:"commit_limit"        env:"GITHUB_COMMIT_LIMIT"        env-default:"20"`
}

// Text generation providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderNone      = "none"
)

// LLMConfig holds text-generation settings.
type LLMConfig struct {
	Provider        string        `yaml:"provider"         env:"LLM_PROVIDER"         env-default:"openai"`
	APIKey          string        `yaml:"api_key"          env:"LLM_API_KEY"`
	BaseURL         string        `yaml:"base_url"         env:"LLM_BASE_URL"`
	Model           string        `yaml:"model"            env:"LLM_MODEL"`
	MaxTokens       int           `yaml:"max_tokens"       env:"LLM_MAX_TOKENS"       env-default:"4000"`
	Temperature     float64       `yaml:"temperature"      env:"LLM_TEMPERATURE"      env-default:"0.8"`
	Timeout         time.Duration `yaml:"timeout"          env:"LLM_TIMEOUT"          env-default:"60s"`
	BreakerFailures uint32        `yaml:"breaker_failures" env:"LLM_BREAKER_FAILURES" env-default:"3"`
	BreakerCooldown time.Duration `yaml:"breaker_cooldown" env:"LLM_BREAKER_COOLDOWN" env-default:"30s"`
}

// ModelName returns the configured model or the provider default.
func (c LLMConfig) ModelName() string {
	if c.Model != "" {
		return c.Model
	}
	switch strings.ToLower(c.Provider) {
	case ProviderAnthropic:
		return "claude-3-5-haiku-latest"
	default:
		return "gpt-4o-mini"
	}
}

// Enabled reports whether a text-generation provider is configured.
func (c LLMConfig) Enabled() bool {
	return !strings.EqualFold(c.Provider, ProviderNone)
}

// RedisConfig holds the OAuth state store settings. An empty URL selects the
// in-process store.
type RedisConfig struct {
	URL       string `yaml:"url"        env:"REDIS_URL"`
	KeyPrefix string `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:"delta:"`
}

// WebhookConfig holds GitHub webhook settings.
type WebhookConfig struct {
	Secret string `yaml:"secret" env:"GITHUB_WEBHOOK_SECRET"`
}

// RateLimitConfig holds per-client request limits for the API.
type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"             env-default:"true"`
	RequestsPerSecond float64 `yaml:"requests_per_second" env:"RATE_LIMIT_REQUESTS_PER_SECOND" env-default:"5"`
	Burst             int     `yaml:"burst"               env:"RATE_LIMIT_BURST"               env-default:"20"`
}

// PreviewConfig is the subset of settings `delta preview` needs. It is read
// from the environment only, so no server secrets are required.
type PreviewConfig struct {
	GitHub GitHubConfig
	LLM    LLMConfig
	Log    LogConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// PublicConfig holds settings of the public changelog pages.
type PublicConfig struct {
	BaseURL    string `yaml:"base_url"    env:"PUBLIC_BASE_URL"    env-default:"http://localhost:8080"`
	IndexLimit int    `yaml:"index_limit" env:"PUBLIC_INDEX_LIMIT" env-default:"20"`
}

// HasGitHubOAuth reports whether GitHub OAuth credentials are present.
func (c AuthConfig) HasGitHubOAuth() bool {
	return c.GitHubClientID != "" && c.GitHubClientSecret != ""
}

// Scopes returns the configured OAuth scopes.
func (c AuthConfig) Scopes() []string {
	return strings.Fields(c.GitHubScopes)
}
