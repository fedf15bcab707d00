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

// CommitRepo keeps the commit history seen for each repository.
type CommitRepo struct {
	coll *mongo.Collection
}

// StoreBatch records commits that are not stored yet and returns how many
// were new. Already known SHAs are left untouched.
func (r *CommitRepo) StoreBatch(ctx context.Context, repoID uuid.UUID, commits []domain.Commit) (int, error) {
	if len(commits) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	models := make([]mongo.WriteModel, 0, len(commits))
	for _, c := range commits {
		doc := commitDoc{
			RepoID:      repoID.String(),
			SHA:         c.SHA,
			Message:     c.Message,
			AuthorName:  c.AuthorName,
			AuthorEmail: c.AuthorEmail,
			CommittedAt: c.CommittedAt.UTC(),
			CreatedAt:   now,
		}
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"repo_id": doc.RepoID, "sha": doc.SHA}).
			SetUpdate(bson.M{"$setOnInsert": doc}).
			SetUpsert(true))
	}

	res, err := r.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, mapError(err, "commits of repository", repoID)
	}
	return int(res.UpsertedCount), nil
}

// MarkProcessed flags commits as used by a changelog.
func (r *CommitRepo) MarkProcessed(ctx context.Context, repoID uuid.UUID, shas []string) error {
	if len(shas) == 0 {
		return nil
	}
	filter := bson.M{"repo_id": repoID.String(), "sha": bson.M{"$in": shas}}
	if _, err := r.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"processed": true}}); err != nil {
		return mapError(err, "commits of repository", repoID)
	}
	return nil
}

// ListByRepo returns the newest stored commits of a repository.
func (r *CommitRepo) ListByRepo(ctx context.Context, repoID uuid.UUID, limit int) ([]*domain.StoredCommit, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "committed_at", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.coll.Find(ctx, bson.M{"repo_id": repoID.String()}, opts)
	if err != nil {
		return nil, fmt.Errorf("find commits: %w", err)
	}

	var docs []commitDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode commits: %w", err)
	}

	out := make([]*domain.StoredCommit, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}
