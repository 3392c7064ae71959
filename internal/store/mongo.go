package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"hostelez/internal/core"
)

// Collection names.
const (
	Users       = "users"
	Timetables  = "timetables"
	Attendance  = "attendance"
	Laundry     = "laundry"
	Roommates   = "roommates"
	Health      = "health"
	Assignments = "assignments"
	Notices     = "notices"
	Checklists  = "checklists"
	Food        = "food"
	Events      = "events"
	Maintenance = "maintenance"
)

// Mongo wraps the document database handle.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// NewMongo connects to MongoDB and pings the primary.
func NewMongo(ctx context.Context, uri, database string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(20).
		SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		return nil, errors.Wrap(err, "mongo connect")
	}
	m := &Mongo{Client: client, DB: client.Database(database)}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return m, errors.Wrap(err, "mongo ping")
	}
	return m, nil
}

// EnsureIndexes creates the unique keys each collection relies on.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	unique := func(keys ...string) mongo.IndexModel {
		d := bson.D{}
		for _, k := range keys {
			d = append(d, bson.E{Key: k, Value: 1})
		}
		return mongo.IndexModel{Keys: d, Options: options.Index().SetUnique(true)}
	}
	plain := func(keys ...string) mongo.IndexModel {
		d := bson.D{}
		for _, k := range keys {
			d = append(d, bson.E{Key: k, Value: 1})
		}
		return mongo.IndexModel{Keys: d}
	}

	indexes := map[string][]mongo.IndexModel{
		Users:       {unique("email"), unique("usn")},
		Timetables:  {unique("userId")},
		Checklists:  {unique("userId")},
		Roommates:   {unique("userId")},
		Laundry:     {unique("hostelName", "roomNumber"), plain("slots.date")},
		Health:      {unique("userId", "day"), plain("day", "medicines.times")},
		Attendance:  {plain("userId")},
		Assignments: {plain("userId", "dueDate")},
		Notices:     {plain("hostelName", "isActive", "createdAt")},
		Food:        {plain("isOpen", "distance")},
		Events:      {plain("userId", "date")},
		Maintenance: {plain("userId", "createdAt")},
	}
	for name, models := range indexes {
		if _, err := m.DB.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "create indexes on %s", name)
		}
	}
	return nil
}

// Healthy verifies mongo connectivity.
func (m *Mongo) Healthy(ctx context.Context) bool {
	if m == nil || m.Client == nil {
		return false
	}
	return m.Client.Ping(ctx, readpref.Primary()) == nil
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return nil
	}
	return m.Client.Disconnect(ctx)
}

// FindOne decodes the first document matching filter.
func FindOne[T any](ctx context.Context, c *mongo.Collection, filter any, opts ...*options.FindOneOptions) (T, error) {
	var doc T
	err := c.FindOne(ctx, filter, opts...).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return doc, core.ErrNotFound
		}
		return doc, errors.Wrapf(err, "find one in %s", c.Name())
	}
	return doc, nil
}

// FindAll decodes every document matching filter.
func FindAll[T any](ctx context.Context, c *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cur, err := c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "find in %s", c.Name())
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrapf(err, "decode %s", c.Name())
	}
	return out, nil
}

// Insert stores doc, reporting unique index violations as core.ErrDuplicate.
func Insert(ctx context.Context, c *mongo.Collection, doc any) error {
	if _, err := c.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return core.ErrDuplicate
		}
		return errors.Wrapf(err, "insert into %s", c.Name())
	}
	return nil
}

// Modify applies update to the first document matching filter and returns it
// as it is after the update. With upsert a missing document is created.
func Modify[T any](ctx context.Context, c *mongo.Collection, filter, update any, upsert bool) (T, error) {
	var doc T
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetUpsert(upsert)
	err := c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	switch {
	case err == nil:
		return doc, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return doc, core.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return doc, core.ErrDuplicate
	default:
		return doc, errors.Wrapf(err, "update %s", c.Name())
	}
}

// SortBy builds find options sorting by one field.
func SortBy(field string, asc bool) *options.FindOptions {
	dir := 1
	if !asc {
		dir = -1
	}
	return options.Find().SetSort(bson.D{{Key: field, Value: dir}})
}
