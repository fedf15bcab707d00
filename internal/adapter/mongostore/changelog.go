package mongostore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/deltahq/delta/internal/domain"
)

// ChangelogRepo stores changelogs. Public slugs are unique.
type ChangelogRepo struct {
	coll *mongo.Collection
}

// Create inserts a changelog. A taken slug yields ErrAlreadyExists.
func (r *ChangelogRepo) Create(ctx context.Context, cl *domain.Changelog) (*domain.Changelog, error) {
	doc := newChangelogDoc(cl)
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, mapError(err, "changelog", cl.ID)
	}
	return doc.toDomain(), nil
}

// GetByID returns a changelog by id.
func (r *ChangelogRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Changelog, error) {
	return r.findOne(ctx, bson.M{"_id": id.String()}, id)
}

// GetBySlug returns a changelog by public slug, published or not.
func (r *ChangelogRepo) GetBySlug(ctx context.Context, slug string) (*domain.Changelog, error) {
	return r.findOne(ctx, bson.M{"public_slug": slug}, slug)
}

// SlugExists reports whether a slug is taken.
func (r *ChangelogRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"public_slug": slug}, options.Count().SetLimit(1))
	if err != nil {
		return false, mapError(err, "changelog slug", slug)
	}
	return n > 0, nil
}

// ListByRepo returns a repository's changelogs, newest first.
func (r *ChangelogRepo) ListByRepo(ctx context.Context, repoID uuid.UUID) ([]*domain.Changelog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.find(ctx, bson.M{"repo_id": repoID.String()}, opts)
}

// ListPublished returns the newest published changelogs.
func (r *ChangelogRepo) ListPublished(ctx context.Context, limit int) ([]*domain.Changelog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{"is_published": true}, opts)
}

// Update applies a patch and bumps UpdatedAt.
func (r *ChangelogRepo) Update(ctx context.Context, id uuid.UUID, patch domain.ChangelogPatch) (*domain.Changelog, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Version != nil {
		set["version"] = *patch.Version
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	return r.updateOne(ctx, id, set)
}

// SetPublished changes the visibility and bumps UpdatedAt.
func (r *ChangelogRepo) SetPublished(ctx context.Context, id uuid.UUID, published bool) (*domain.Changelog, error) {
	return r.updateOne(ctx, id, bson.M{"is_published": published, "updated_at": time.Now().UTC()})
}

// Delete removes a changelog.
func (r *ChangelogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return mapError(err, "changelog", id)
	}
	if res.DeletedCount == 0 {
		return mapError(mongo.ErrNoDocuments, "changelog", id)
	}
	return nil
}

func (r *ChangelogRepo) updateOne(ctx context.Context, id uuid.UUID, set bson.M) (*domain.Changelog, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc changelogDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id.String()}, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		return nil, mapError(err, "changelog", id)
	}
	return doc.toDomain(), nil
}

func (r *ChangelogRepo) findOne(ctx context.Context, filter bson.M, key any) (*domain.Changelog, error) {
	var doc changelogDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, mapError(err, "changelog", key)
	}
	return doc.toDomain(), nil
}

func (r *ChangelogRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Changelog, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find changelogs: %w", err)
	}

	var docs []changelogDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode changelogs: %w", err)
	}

	out := make([]*domain.Changelog, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}
