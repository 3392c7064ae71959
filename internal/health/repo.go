package health

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hostelez/internal/core"
	"hostelez/internal/store"
)

// Repository persists daily health records, one per user and day.
type Repository interface {
	Insert(ctx context.Context, r Record) error
	ListByUser(ctx context.Context, userID string) ([]Record, error)
	Get(ctx context.Context, userID, id string) (Record, error)
	// Latest returns the user's most recent record dated before day.
	Latest(ctx context.Context, userID, before string) (Record, error)
	// GetOrCreate returns the user's record for r.Day, storing r when there is none.
	GetOrCreate(ctx context.Context, r Record) (Record, error)
	Update(ctx context.Context, userID, id string, p Patch) (Record, error)
	// ScheduledAt returns, per user, the latest record dated on or before day
	// when one of its medicines is taken at clock.
	ScheduledAt(ctx context.Context, day, clock string) ([]Record, error)
	MarkDoseReminded(ctx context.Context, recordID, medicineID string, index int) error
}

type mongoRepository struct {
	c *mongo.Collection
}

// NewMongoRepository returns a Repository over the health collection.
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{c: db.Collection(store.Health)}
}

func (r *mongoRepository) Insert(ctx context.Context, rec Record) error {
	return store.Insert(ctx, r.c, rec)
}

func (r *mongoRepository) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	return store.FindAll[Record](ctx, r.c, bson.M{"userId": userID}, store.SortBy("day", false))
}

func (r *mongoRepository) Get(ctx context.Context, userID, id string) (Record, error) {
	return store.FindOne[Record](ctx, r.c, bson.M{"_id": id, "userId": userID})
}

func (r *mongoRepository) Latest(ctx context.Context, userID, before string) (Record, error) {
	return store.FindOne[Record](ctx, r.c,
		bson.M{"userId": userID, "day": bson.M{"$lt": before}},
		options.FindOne().SetSort(bson.D{{Key: "day", Value: -1}}))
}

func (r *mongoRepository) GetOrCreate(ctx context.Context, rec Record) (Record, error) {
	raw, err := bson.Marshal(rec)
	if err != nil {
		return Record{}, errors.Wrap(err, "encode health record")
	}
	var onInsert bson.M
	if err := bson.Unmarshal(raw, &onInsert); err != nil {
		return Record{}, errors.Wrap(err, "encode health record")
	}
	delete(onInsert, "userId")
	delete(onInsert, "day")
	got, err := store.Modify[Record](ctx, r.c,
		bson.M{"userId": rec.UserID, "day": rec.Day},
		bson.M{"$setOnInsert": onInsert}, true)
	if core.IsDuplicate(err) {
		// lost the insert race; the winner's record is there now
		return store.FindOne[Record](ctx, r.c, bson.M{"userId": rec.UserID, "day": rec.Day})
	}
	return got, err
}

func (r *mongoRepository) Update(ctx context.Context, userID, id string, p Patch) (Record, error) {
	set := p.fields()
	if len(set) == 0 {
		return store.FindOne[Record](ctx, r.c, bson.M{"_id": id, "userId": userID})
	}
	return store.Modify[Record](ctx, r.c, bson.M{"_id": id, "userId": userID}, bson.M{"$set": set}, false)
}

func (r *mongoRepository) ScheduledAt(ctx context.Context, day, clock string) ([]Record, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"day": bson.M{"$lte": day}}}},
		{{Key: "$sort", Value: bson.D{{Key: "userId", Value: 1}, {Key: "day", Value: -1}}}},
		{{Key: "$group", Value: bson.M{"_id": "$userId", "latest": bson.M{"$first": "$$ROOT"}}}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$latest"}}},
		{{Key: "$match", Value: bson.M{"medicines.times": clock}}},
	}
	cur, err := r.c.Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		return nil, errors.Wrap(err, "aggregate medicine schedules")
	}
	var recs []Record
	if err := cur.All(ctx, &recs); err != nil {
		return nil, errors.Wrap(err, "decode medicine schedules")
	}
	return recs, nil
}

func (r *mongoRepository) MarkDoseReminded(ctx context.Context, recordID, medicineID string, index int) error {
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"m.id": medicineID}},
	})
	res, err := r.c.UpdateOne(ctx,
		bson.M{"_id": recordID},
		bson.M{"$set": bson.M{"medicines.$[m].reminderSent." + strconv.Itoa(index): true}},
		opts)
	if err != nil {
		return errors.Wrap(err, "mark dose reminded")
	}
	if res.MatchedCount == 0 {
		return core.ErrNotFound
	}
	return nil
}

// dosesAt picks the not yet reminded doses scheduled at clock.
func dosesAt(recs []Record, clock string) []Dose {
	out := []Dose{}
	for _, rec := range recs {
		for _, m := range rec.Medicines {
			for i, t := range m.Times {
				if t != clock || (i < len(m.ReminderSent) && m.ReminderSent[i]) {
					continue
				}
				out = append(out, Dose{
					RecordID:   rec.ID,
					UserID:     rec.UserID,
					Day:        rec.Day,
					MedicineID: m.ID,
					Name:       m.Name,
					Dosage:     m.Dosage,
					Time:       t,
					Index:      i,
				})
			}
		}
	}
	return out
}
