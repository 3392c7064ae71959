package assignment

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hostelez/internal/core"
	"hostelez/internal/store"
)

// Repository persists assignments.
type Repository interface {
	Insert(ctx context.Context, a Assignment) error
	ListByUser(ctx context.Context, userID string) ([]Assignment, error)
	Update(ctx context.Context, userID, id string, p Patch) (Assignment, error)
	// DueBetween lists open, not yet reminded assignments due in [from, to).
	DueBetween(ctx context.Context, from, to time.Time) ([]Assignment, error)
	MarkReminded(ctx context.Context, id string) error
}

type mongoRepository struct {
	c *mongo.Collection
}

// NewMongoRepository returns a Repository over the assignments collection.
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{c: db.Collection(store.Assignments)}
}

func (r *mongoRepository) Insert(ctx context.Context, a Assignment) error {
	return store.Insert(ctx, r.c, a)
}

func (r *mongoRepository) ListByUser(ctx context.Context, userID string) ([]Assignment, error) {
	return store.FindAll[Assignment](ctx, r.c, bson.M{"userId": userID}, store.SortBy("dueDate", true))
}

func (r *mongoRepository) Update(ctx context.Context, userID, id string, p Patch) (Assignment, error) {
	filter := bson.M{"_id": id, "userId": userID}
	set := p.fields()
	if len(set) == 0 {
		return store.FindOne[Assignment](ctx, r.c, filter)
	}
	return store.Modify[Assignment](ctx, r.c, filter, bson.M{"$set": set}, false)
}

func (r *mongoRepository) DueBetween(ctx context.Context, from, to time.Time) ([]Assignment, error) {
	return store.FindAll[Assignment](ctx, r.c, bson.M{
		"dueDate":      bson.M{"$gte": from, "$lt": to},
		"status":       bson.M{"$ne": Completed},
		"reminderSent": false,
	}, store.SortBy("dueDate", true))
}

func (r *mongoRepository) MarkReminded(ctx context.Context, id string) error {
	res, err := r.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"reminderSent": true}})
	if err != nil {
		return errors.Wrap(err, "mark assignment reminded")
	}
	if res.MatchedCount == 0 {
		return core.ErrNotFound
	}
	return nil
}
