// Package mongostore is the MongoDB implementation of the Delta storage
// contracts. It is the default backend.
package mongostore

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/deltahq/delta/internal/config"
)

const (
	usersCollection        = "users"
	repositoriesCollection = "repositories"
	changelogsCollection   = "changelogs"
	commitsCollection      = "commits"
)

// Store owns the client and hands out per-collection repositories.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	log    *slog.Logger

	initOnce sync.Once
	initErr  error
}

// Connect opens a client, pings the primary and returns a Store. Indexes are
// created by Init.
func Connect(ctx context.Context, cfg config.MongoConfig, logger *slog.Logger) (*Store, error) {
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
		opts.SetServerSelectionTimeout(cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(cfg.Database),
		log:    logger.With("adapter", "mongo"),
	}, nil
}

// Init creates the collection indexes. It runs at most once per Store; later
// calls return the first result.
func (s *Store) Init(ctx context.Context) error {
	s.initOnce.Do(func() {
		s.initErr = s.createIndexes(ctx)
		if s.initErr == nil {
			s.log.InfoContext(ctx, "mongo indexes ready", slog.String("database", s.db.Name()))
		}
	})
	return s.initErr
}

func (s *Store) createIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "github_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		repositoriesCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "github_repo_id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "connected_at", Value: -1}}},
			{Keys: bson.D{{Key: "github_repo_id", Value: 1}}},
		},
		changelogsCollection: {
			{Keys: bson.D{{Key: "public_slug", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "repo_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "is_published", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		commitsCollection: {
			{Keys: bson.D{{Key: "repo_id", Value: 1}, {Key: "sha", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for coll, models := range indexes {
		if _, err := s.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", coll, err)
		}
	}
	return nil
}

// Ping checks the primary for readiness probes.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Users returns the user repository.
func (s *Store) Users() *UserRepo {
	return &UserRepo{coll: s.db.Collection(usersCollection)}
}

// Repositories returns the connected-repository repository.
func (s *Store) Repositories() *RepositoryRepo {
	return &RepositoryRepo{
		coll:       s.db.Collection(repositoriesCollection),
		changelogs: s.db.Collection(changelogsCollection),
		commits:    s.db.Collection(commitsCollection),
	}
}

// Changelogs returns the changelog repository.
func (s *Store) Changelogs() *ChangelogRepo {
	return &ChangelogRepo{coll: s.db.Collection(changelogsCollection)}
}

// Commits returns the stored-commit repository.
func (s *Store) Commits() *CommitRepo {
	return &CommitRepo{coll: s.db.Collection(commitsCollection)}
}

// RunInTx runs fn directly. Standalone deployments have no multi-document
// transactions, and every write the callers group is idempotent.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
