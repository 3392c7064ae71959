package roommate

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hostelez/internal/store"
)

// Repository persists rosters, one per user.
type Repository interface {
	// Add appends m to the user's roster, creating the roster if needed.
	Add(ctx context.Context, userID string, m Mate) (Roster, error)
	GetByUser(ctx context.Context, userID string) (Roster, error)
	// SetStatus sets the mate's status and only the timestamp field named by stamp.
	SetStatus(ctx context.Context, userID, mateID string, status Presence, stamp string, at time.Time) (Roster, error)
}

const (
	stampCheckIn  = "lastCheckIn"
	stampCheckOut = "lastCheckOut"
)

type mongoRepository struct {
	c *mongo.Collection
}

// NewMongoRepository returns a Repository over the roommates collection.
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{c: db.Collection(store.Roommates)}
}

func (r *mongoRepository) Add(ctx context.Context, userID string, m Mate) (Roster, error) {
	return store.Modify[Roster](ctx, r.c, bson.M{"userId": userID}, bson.M{
		"$setOnInsert": bson.M{"_id": uuid.NewString()},
		"$push":        bson.M{"roommates": m},
	}, true)
}

func (r *mongoRepository) GetByUser(ctx context.Context, userID string) (Roster, error) {
	return store.FindOne[Roster](ctx, r.c, bson.M{"userId": userID})
}

func (r *mongoRepository) SetStatus(ctx context.Context, userID, mateID string, status Presence, stamp string, at time.Time) (Roster, error) {
	return store.Modify[Roster](ctx, r.c,
		bson.M{"userId": userID, "roommates.id": mateID},
		bson.M{"$set": bson.M{
			"roommates.$.status":    status,
			"roommates.$." + stamp: at,
		}}, false)
}
