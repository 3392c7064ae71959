package maintenance

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hostelez/internal/store"
)

// Repository persists maintenance tickets.
type Repository interface {
	Insert(ctx context.Context, t Ticket) error
	// ListByUser returns the user's tickets, newest first.
	ListByUser(ctx context.Context, userID string) ([]Ticket, error)
}

type mongoRepository struct {
	c *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{c: db.Collection(store.Maintenance)}
}

func (r *mongoRepository) Insert(ctx context.Context, t Ticket) error {
	return store.Insert(ctx, r.c, t)
}

func (r *mongoRepository) ListByUser(ctx context.Context, userID string) ([]Ticket, error) {
	return store.FindAll[Ticket](ctx, r.c, bson.M{"userId": userID}, store.SortBy("createdAt", false))
}

type memoryRepository struct {
	t *store.Table[Ticket]
}

func NewMemoryRepository() Repository {
	return &memoryRepository{t: store.NewTable(func(t Ticket) string { return t.ID })}
}

func (r *memoryRepository) Insert(_ context.Context, t Ticket) error {
	return r.t.Insert(t)
}

func (r *memoryRepository) ListByUser(_ context.Context, userID string) ([]Ticket, error) {
	ts, err := r.t.Find(func(t Ticket) bool { return t.UserID == userID })
	if err != nil {
		return nil, err
	}
	sort.SliceStable(ts, func(i, j int) bool { return ts[i].CreatedAt.After(ts[j].CreatedAt) })
	return ts, nil
}
