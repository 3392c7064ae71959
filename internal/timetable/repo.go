package timetable

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hostelez/internal/store"
)

// Repository persists timetables.
type Repository interface {
	// Save replaces the user's timetable, creating it when missing.
	Save(ctx context.Context, tt Timetable) (Timetable, error)
	GetByUser(ctx context.Context, userID string) (Timetable, error)
	// ClassesOn returns the timetables having at least one class on day.
	ClassesOn(ctx context.Context, day string) ([]Timetable, error)
}

type mongoRepository struct {
	c *mongo.Collection
}

// NewMongoRepository returns a Repository over the timetables collection.
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{c: db.Collection(store.Timetables)}
}

func (r *mongoRepository) Save(ctx context.Context, tt Timetable) (Timetable, error) {
	return store.Modify[Timetable](ctx, r.c,
		bson.M{"userId": tt.UserID},
		bson.M{
			"$set": bson.M{
				"semester":  tt.Semester,
				"classes":   tt.Classes,
				"updatedAt": tt.UpdatedAt,
			},
			"$setOnInsert": bson.M{"_id": uuid.NewString()},
		}, true)
}

func (r *mongoRepository) GetByUser(ctx context.Context, userID string) (Timetable, error) {
	return store.FindOne[Timetable](ctx, r.c, bson.M{"userId": userID})
}

func (r *mongoRepository) ClassesOn(ctx context.Context, day string) ([]Timetable, error) {
	return store.FindAll[Timetable](ctx, r.c, bson.M{"classes.day": day})
}
