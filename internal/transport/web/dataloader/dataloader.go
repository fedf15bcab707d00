// Package dataloader provides per-request loaders that batch repository
// lookups made while rendering public pages.
package dataloader

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/deltahq/delta/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type repositoryRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Repository, error)
}

// Loaders holds the per-request loader instances.
type Loaders struct {
	RepositoryByID *dataloader.Loader[uuid.UUID, *domain.Repository]
}

// NewLoaders creates a new set of loaders. Must be called per request
// because loaders cache results.
func NewLoaders(repos repositoryRepo) *Loaders {
	return &Loaders{
		RepositoryByID: dataloader.NewBatchedLoader(
			newRepositoryBatchFn(repos),
			dataloader.WithWait[uuid.UUID, *domain.Repository](wait),
			dataloader.WithBatchCapacity[uuid.UUID, *domain.Repository](maxBatch),
		),
	}
}

// Missing repositories resolve to domain.ErrNotFound for their key only.
func newRepositoryBatchFn(repo repositoryRepo) dataloader.BatchFunc[uuid.UUID, *domain.Repository] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Repository] {
		results := make([]*dataloader.Result[*domain.Repository], len(keys))

		repos, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[*domain.Repository]{Error: err}
			}
			return results
		}

		byID := make(map[uuid.UUID]*domain.Repository, len(repos))
		for _, r := range repos {
			byID[r.ID] = r
		}
		for i, key := range keys {
			if r, ok := byID[key]; ok {
				results[i] = &dataloader.Result[*domain.Repository]{Data: r}
			} else {
				results[i] = &dataloader.Result[*domain.Repository]{Error: domain.ErrNotFound}
			}
		}
		return results
	}
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware installed?")
	}
	return l
}

// Middleware installs fresh Loaders on every request.
func Middleware(repos repositoryRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(repos))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
