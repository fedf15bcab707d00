package mongostore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/deltahq/delta/internal/domain"
)

// UserRepo stores users keyed by GitHub id.
type UserRepo struct {
	coll *mongo.Collection
}

// GetByID returns a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		return nil, mapError(err, "user", id)
	}
	return doc.toDomain(), nil
}

// GetByGitHubID returns a user by GitHub id.
func (r *UserRepo) GetByGitHubID(ctx context.Context, githubID string) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"github_id": githubID}).Decode(&doc); err != nil {
		return nil, mapError(err, "user github_id", githubID)
	}
	return doc.toDomain(), nil
}

// Upsert inserts a user or refreshes the profile and token of an existing
// user with the same GitHub id. The stored user is returned.
func (r *UserRepo) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	now := time.Now().UTC()
	set := bson.M{
		"username":     u.Username,
		"email":        u.Email,
		"access_token": u.AccessToken,
		"updated_at":   now,
	}
	if u.AvatarURL != nil {
		set["avatar_url"] = *u.AvatarURL
	}

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"_id": u.ID.String(), "created_at": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc userDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"github_id": u.GitHubID}, update, opts).Decode(&doc); err != nil {
		return nil, mapError(err, "user github_id", u.GitHubID)
	}
	return doc.toDomain(), nil
}
