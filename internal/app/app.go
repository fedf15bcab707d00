package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/deltahq/delta/internal/adapter/github"
	"github.com/deltahq/delta/internal/adapter/state"
	"github.com/deltahq/delta/internal/auth"
	"github.com/deltahq/delta/internal/config"
	authsvc "github.com/deltahq/delta/internal/service/auth"
	changelogsvc "github.com/deltahq/delta/internal/service/changelog"
	repositorysvc "github.com/deltahq/delta/internal/service/repository"
	webhooksvc "github.com/deltahq/delta/internal/service/webhook"
	"github.com/deltahq/delta/internal/transport/middleware"
	"github.com/deltahq/delta/internal/transport/rest"
	"github.com/deltahq/delta/internal/transport/web"
)

// stateStore is satisfied by both the Redis and the in-memory state stores.
type stateStore interface {
	Put(ctx context.Context, state string, ttl time.Duration) error
	Consume(ctx context.Context, state string) (bool, error)
}

// Run is the `delta serve` entry point: it loads configuration, connects the
// store, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := NewLogger(cfg.Log)

	logger.InfoContext(ctx, "starting delta",
		slog.String("version", BuildVersion()),
		slog.String("driver", cfg.Database.Driver),
		slog.String("log_level", cfg.Log.Level),
	)

	return Serve(ctx, cfg, logger)
}

// App is the fully wired HTTP application. Close releases the store, the
// state store and background workers.
type App struct {
	handler http.Handler
	closers []func()
}

// New connects to the configured backends and wires services, handlers and
// middleware.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{}

	st, err := openStores(ctx, cfg.Database, cfg.Database.Postgres.AutoMigrate, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	a.onClose(func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.close(closeCtx); err != nil {
			logger.Error("close store", slog.String("error", err.Error()))
		}
	})

	states, closeStates, err := newStateStore(ctx, cfg.Redis, logger)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.onClose(closeStates)

	gen, err := NewGenerator(cfg.LLM, logger)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("llm: %w", err)
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		a.Close()
		return nil, err
	}

	gh := github.New(cfg.GitHub, cfg.Auth, logger)
	tokens := auth.NewTokenBox(cfg.Auth.TokenKey)
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)

	authService := authsvc.NewService(logger, st.users, states, gh, tokens, jwt, cfg.Auth)
	repositoryService := repositorysvc.NewService(logger, st.repositories, st.commits, st.users, gh, tokens)
	composer := changelogsvc.NewComposer(logger, gen, cfg.LLM)
	changelogService := changelogsvc.NewService(logger, st.changelogs, st.repositories, st.commits, st.users, gh, tokens, composer, cfg.GitHub.CommitLimit)
	webhookService := webhooksvc.NewService(logger, st.repositories, st.commits, st.tx)

	var limit middleware.Middleware
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
		a.onClose(limiter.Stop)
		limit = limiter.Limit()
	}

	mux := newRouter(handlers{
		health:     rest.NewHealthHandler(st, st.driver, Version),
		auth:       rest.NewAuthHandler(authService, logger),
		repository: rest.NewRepositoryHandler(repositoryService, logger),
		changelog:  rest.NewChangelogHandler(changelogService, logger),
		webhook:    rest.NewWebhookHandler(webhookService, cfg.Webhook.Secret, logger),
		web:        web.NewHandler(changelogService, renderer, cfg.Public, logger),
	}, st.repositories, limit)

	a.handler = middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)(mux)

	return a, nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Close releases resources in reverse acquisition order.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) onClose(fn func()) {
	a.closers = append(a.closers, fn)
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully within cfg.Server.ShutdownTimeout.
func Serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      a.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// Migrate prepares the configured store's schema: goose migrations for
// Postgres, index creation for Mongo.
func Migrate(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	st, err := openStores(ctx, cfg.Database, true, logger)
	if err != nil {
		return err
	}
	defer st.close(context.Background()) //nolint:errcheck

	logger.InfoContext(ctx, "store schema up to date", slog.String("driver", st.driver))
	return nil
}

func newStateStore(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (stateStore, func(), error) {
	if cfg.URL == "" {
		logger.Info("oauth state store: in-memory")
		return state.NewMemoryStore(), func() {}, nil
	}

	store, err := state.NewRedisStore(ctx, cfg.URL, cfg.KeyPrefix, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("redis: %w", err)
	}
	logger.Info("oauth state store: redis")
	return store, func() { _ = store.Close() }, nil
}
