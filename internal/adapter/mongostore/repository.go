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

// RepositoryRepo stores connected repositories. Deleting a repository also
// removes its changelogs and stored commits.
type RepositoryRepo struct {
	coll       *mongo.Collection
	changelogs *mongo.Collection
	commits    *mongo.Collection
}

// GetByID returns a repository by id.
func (r *RepositoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Repository, error) {
	var doc repositoryDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		return nil, mapError(err, "repository", id)
	}
	return doc.toDomain(), nil
}

// GetByIDs returns the repositories with the given ids in unspecified order.
// Missing ids are skipped.
func (r *RepositoryRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Repository, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": idStrings(ids)}}, nil)
}

// GetWithStats returns a repository with its changelog count.
func (r *RepositoryRepo) GetWithStats(ctx context.Context, id uuid.UUID) (*domain.RepositoryWithStats, error) {
	repo, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	n, err := r.changelogs.CountDocuments(ctx, bson.M{"repo_id": id.String()})
	if err != nil {
		return nil, mapError(err, "repository changelogs", id)
	}
	return &domain.RepositoryWithStats{Repository: *repo, ChangelogCount: int(n)}, nil
}

// ListByUser returns a user's repositories, most recently connected first.
func (r *RepositoryRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Repository, error) {
	opts := options.Find().SetSort(bson.D{{Key: "connected_at", Value: -1}})
	return r.find(ctx, bson.M{"user_id": userID.String()}, opts)
}

// ListByGitHubID returns every connection of a GitHub repository.
func (r *RepositoryRepo) ListByGitHubID(ctx context.Context, githubID int64) ([]*domain.Repository, error) {
	return r.find(ctx, bson.M{"github_repo_id": githubID}, nil)
}

// Upsert connects a repository for a user, or refreshes the metadata of an
// existing connection. Id, ConnectedAt and HasChangelogs of an existing
// connection are kept.
func (r *RepositoryRepo) Upsert(ctx context.Context, repo *domain.Repository) (*domain.Repository, error) {
	set := metadataSet(repo.Name, repo.FullName, repo.URL, repo.DefaultBranch, repo.IsPrivate, repo.Description, repo.Language)
	if repo.LastSyncAt != nil {
		set["last_sync_at"] = repo.LastSyncAt.UTC()
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"_id":            repo.ID.String(),
			"connected_at":   repo.ConnectedAt.UTC(),
			"has_changelogs": false,
		},
	}
	filter := bson.M{"user_id": repo.UserID.String(), "github_repo_id": repo.GitHubRepoID}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc repositoryDoc
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return nil, mapError(err, "repository github_id", repo.GitHubRepoID)
	}
	return doc.toDomain(), nil
}

// RefreshMetadata updates every connection of a GitHub repository and returns
// how many were changed.
func (r *RepositoryRepo) RefreshMetadata(ctx context.Context, githubID int64, remote domain.RemoteRepository) (int64, error) {
	set := metadataSet(remote.Name, remote.FullName, remote.URL, remote.DefaultBranch, remote.IsPrivate, remote.Description, remote.Language)
	res, err := r.coll.UpdateMany(ctx, bson.M{"github_repo_id": githubID}, bson.M{"$set": set})
	if err != nil {
		return 0, mapError(err, "repository github_id", githubID)
	}
	return res.ModifiedCount, nil
}

// TouchSync sets LastSyncAt.
func (r *RepositoryRepo) TouchSync(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.updateOne(ctx, id, bson.M{"last_sync_at": at.UTC()})
}

// SetHasChangelogs sets the HasChangelogs flag.
func (r *RepositoryRepo) SetHasChangelogs(ctx context.Context, id uuid.UUID, has bool) error {
	return r.updateOne(ctx, id, bson.M{"has_changelogs": has})
}

// Delete removes a repository with its changelogs and stored commits.
func (r *RepositoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return mapError(err, "repository", id)
	}
	if res.DeletedCount == 0 {
		return mapError(mongo.ErrNoDocuments, "repository", id)
	}

	if _, err := r.changelogs.DeleteMany(ctx, bson.M{"repo_id": id.String()}); err != nil {
		return fmt.Errorf("delete changelogs of repository %s: %w", id, err)
	}
	if _, err := r.commits.DeleteMany(ctx, bson.M{"repo_id": id.String()}); err != nil {
		return fmt.Errorf("delete commits of repository %s: %w", id, err)
	}
	return nil
}

func (r *RepositoryRepo) updateOne(ctx context.Context, id uuid.UUID, set bson.M) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id.String()}, bson.M{"$set": set})
	if err != nil {
		return mapError(err, "repository", id)
	}
	if res.MatchedCount == 0 {
		return mapError(mongo.ErrNoDocuments, "repository", id)
	}
	return nil
}

func (r *RepositoryRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Repository, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find repositories: %w", err)
	}

	var docs []repositoryDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode repositories: %w", err)
	}

	out := make([]*domain.Repository, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

func metadataSet(name, fullName, url, branch string, private bool, description, language string) bson.M {
	return bson.M{
		"name":           name,
		"full_name":      fullName,
		"url":            url,
		"default_branch": branch,
		"is_private":     private,
		"description":    description,
		"language":       language,
	}
}
