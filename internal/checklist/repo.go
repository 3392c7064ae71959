package checklist

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hostelez/internal/store"
)

// Repository persists checklists.
type Repository interface {
	Create(ctx context.Context, cl Checklist) error
	GetByUser(ctx context.Context, userID string) (Checklist, error)
	AddItem(ctx context.Context, userID string, item Item) (Checklist, error)
	Toggle(ctx context.Context, userID, itemID string) (Checklist, error)
	Reset(ctx context.Context, userID string, at time.Time) (Checklist, error)
	ResetAll(ctx context.Context, at time.Time) (int, error)
}

type mongoRepository struct {
	c *mongo.Collection
}

// NewMongoRepository returns a Repository over the checklists collection.
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{c: db.Collection(store.Checklists)}
}

func (r *mongoRepository) Create(ctx context.Context, cl Checklist) error {
	return store.Insert(ctx, r.c, cl)
}

func (r *mongoRepository) GetByUser(ctx context.Context, userID string) (Checklist, error) {
	return store.FindOne[Checklist](ctx, r.c, bson.M{"userId": userID})
}

func (r *mongoRepository) AddItem(ctx context.Context, userID string, item Item) (Checklist, error) {
	return store.Modify[Checklist](ctx, r.c,
		bson.M{"userId": userID},
		bson.M{"$push": bson.M{"items": item}}, false)
}

// Toggle flips isChecked in a single pipeline update so concurrent toggles
// of the same item serialize on the document.
func (r *mongoRepository) Toggle(ctx context.Context, userID, itemID string) (Checklist, error) {
	update := mongo.Pipeline{{{Key: "$set", Value: bson.M{
		"items": bson.M{"$map": bson.M{
			"input": "$items",
			"as":    "it",
			"in": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$$it.id", itemID}},
				bson.M{"$mergeObjects": bson.A{"$$it", bson.M{"isChecked": bson.M{"$not": bson.A{"$$it.isChecked"}}}}},
				"$$it",
			}},
		}},
	}}}}
	return store.Modify[Checklist](ctx, r.c, bson.M{"userId": userID, "items.id": itemID}, update, false)
}

func (r *mongoRepository) Reset(ctx context.Context, userID string, at time.Time) (Checklist, error) {
	return store.Modify[Checklist](ctx, r.c,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"items.$[].isChecked": false, "lastReset": at}}, false)
}

func (r *mongoRepository) ResetAll(ctx context.Context, at time.Time) (int, error) {
	res, err := r.c.UpdateMany(ctx, bson.M{},
		bson.M{"$set": bson.M{"items.$[].isChecked": false, "lastReset": at}})
	if err != nil {
		return 0, errors.Wrap(err, "reset checklists")
	}
	return int(res.ModifiedCount), nil
}
