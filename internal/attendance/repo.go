package attendance

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hostelez/internal/store"
)

// Repository persists attendance per subject.
type Repository interface {
	Insert(ctx context.Context, att Attendance) error
	ListByUser(ctx context.Context, userID string) ([]Attendance, error)
	// Append adds rec to the user's attendance document id and bumps the
	// counters in the same write.
	Append(ctx context.Context, userID, id string, rec Record) (Attendance, error)
}

type mongoRepository struct {
	c *mongo.Collection
}

// NewMongoRepository returns a Repository over the attendance collection.
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{c: db.Collection(store.Attendance)}
}

func (r *mongoRepository) Insert(ctx context.Context, att Attendance) error {
	return store.Insert(ctx, r.c, att)
}

func (r *mongoRepository) ListByUser(ctx context.Context, userID string) ([]Attendance, error) {
	return store.FindAll[Attendance](ctx, r.c, bson.M{"userId": userID}, store.SortBy("subject", true))
}

func (r *mongoRepository) Append(ctx context.Context, userID, id string, rec Record) (Attendance, error) {
	attended := 0
	if rec.Status == Present {
		attended = 1
	}
	return store.Modify[Attendance](ctx, r.c,
		bson.M{"_id": id, "userId": userID},
		bson.M{
			"$inc":  bson.M{"totalClasses": 1, "attendedClasses": attended},
			"$push": bson.M{"records": rec},
		}, false)
}
