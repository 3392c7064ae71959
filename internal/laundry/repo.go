package laundry

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hostelez/internal/core"
	"hostelez/internal/store"
)

// ErrSlotTaken is returned when the room already has the slot booked.
var ErrSlotTaken = errors.New("slot already booked for this room")

// Repository persists room laundry documents.
type Repository interface {
	// Book appends slot to the room's document, creating the document when
	// missing. It fails with ErrSlotTaken if a Booked slot has the same date and time.
	Book(ctx context.Context, hostel, room, userID string, slot Slot) (Laundry, error)
	GetByRoom(ctx context.Context, hostel, room string) (Laundry, error)
	SetSlotStatus(ctx context.Context, hostel, room, slotID string, status SlotStatus) (Laundry, error)
	// BookedBetween lists Booked, not yet reminded slots dated in [from, to).
	BookedBetween(ctx context.Context, from, to time.Time) ([]DueSlot, error)
	MarkReminded(ctx context.Context, laundryID, slotID string) error
}

type mongoRepository struct {
	c *mongo.Collection
}

// NewMongoRepository returns a Repository over the laundry collection.
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{c: db.Collection(store.Laundry)}
}

// Book relies on the unique (hostelName, roomNumber) index: when the room
// document exists but already holds the slot, the upsert tries to insert a
// second document for the room and fails with a duplicate key.
func (r *mongoRepository) Book(ctx context.Context, hostel, room, userID string, slot Slot) (Laundry, error) {
	filter := bson.M{
		"hostelName": hostel,
		"roomNumber": room,
		"slots": bson.M{"$not": bson.M{"$elemMatch": bson.M{
			"date":   slot.Date,
			"time":   slot.Time,
			"status": Booked,
		}}},
	}
	update := bson.M{
		"$setOnInsert": bson.M{"_id": uuid.NewString(), "userId": userID},
		"$push":        bson.M{"slots": slot},
	}
	l, err := store.Modify[Laundry](ctx, r.c, filter, update, true)
	if core.IsDuplicate(err) {
		return Laundry{}, ErrSlotTaken
	}
	return l, err
}

func (r *mongoRepository) GetByRoom(ctx context.Context, hostel, room string) (Laundry, error) {
	return store.FindOne[Laundry](ctx, r.c, bson.M{"hostelName": hostel, "roomNumber": room})
}

func (r *mongoRepository) SetSlotStatus(ctx context.Context, hostel, room, slotID string, status SlotStatus) (Laundry, error) {
	return store.Modify[Laundry](ctx, r.c,
		bson.M{"hostelName": hostel, "roomNumber": room, "slots.id": slotID},
		bson.M{"$set": bson.M{"slots.$.status": status}}, false)
}

func (r *mongoRepository) BookedBetween(ctx context.Context, from, to time.Time) ([]DueSlot, error) {
	match := bson.M{
		"slots.date":         bson.M{"$gte": from, "$lt": to},
		"slots.status":       Booked,
		"slots.reminderSent": false,
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"slots": bson.M{"$elemMatch": bson.M{
			"date":         bson.M{"$gte": from, "$lt": to},
			"status":       Booked,
			"reminderSent": false,
		}}}}},
		{{Key: "$unwind", Value: "$slots"}},
		{{Key: "$match", Value: match}},
	}
	cur, err := r.c.Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		return nil, errors.Wrap(err, "aggregate laundry slots")
	}
	var rows []struct {
		ID         string `bson:"_id"`
		UserID     string `bson:"userId"`
		HostelName string `bson:"hostelName"`
		RoomNumber string `bson:"roomNumber"`
		Slot       Slot   `bson:"slots"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(err, "decode laundry slots")
	}
	out := make([]DueSlot, 0, len(rows))
	for _, row := range rows {
		out = append(out, DueSlot{
			LaundryID:  row.ID,
			UserID:     row.UserID,
			HostelName: row.HostelName,
			RoomNumber: row.RoomNumber,
			Slot:       row.Slot,
		})
	}
	return out, nil
}

func (r *mongoRepository) MarkReminded(ctx context.Context, laundryID, slotID string) error {
	res, err := r.c.UpdateOne(ctx,
		bson.M{"_id": laundryID, "slots.id": slotID},
		bson.M{"$set": bson.M{"slots.$.reminderSent": true}})
	if err != nil {
		return errors.Wrap(err, "mark laundry reminder")
	}
	if res.MatchedCount == 0 {
		return core.ErrNotFound
	}
	return nil
}
