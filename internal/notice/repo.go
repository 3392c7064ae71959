package notice

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hostelez/internal/store"
)

// Repository persists notices.
type Repository interface {
	Insert(ctx context.Context, n Notice) error
	// ActiveIn lists the hostel's active notices, newest first.
	ActiveIn(ctx context.Context, hostel string) ([]Notice, error)
	// Deactivate hides a notice posted by posterID.
	Deactivate(ctx context.Context, posterID, id string) (Notice, error)
}

type mongoRepository struct {
	c *mongo.Collection
}

// NewMongoRepository returns a Repository over the notices collection.
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{c: db.Collection(store.Notices)}
}

func (r *mongoRepository) Insert(ctx context.Context, n Notice) error {
	return store.Insert(ctx, r.c, n)
}

func (r *mongoRepository) ActiveIn(ctx context.Context, hostel string) ([]Notice, error) {
	return store.FindAll[Notice](ctx, r.c,
		bson.M{"hostelName": hostel, "isActive": true},
		store.SortBy("createdAt", false))
}

func (r *mongoRepository) Deactivate(ctx context.Context, posterID, id string) (Notice, error) {
	return store.Modify[Notice](ctx, r.c,
		bson.M{"_id": id, "posterId": posterID},
		bson.M{"$set": bson.M{"isActive": false}}, false)
}
