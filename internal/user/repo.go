package user

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hostelez/internal/store"
)

// Repository persists users.
type Repository interface {
	Create(ctx context.Context, usr User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByUSN(ctx context.Context, usn string) (User, error)
	Update(ctx context.Context, id string, pu ProfileUpdate) (User, error)
	Delete(ctx context.Context, id string) error
}

type mongoRepository struct {
	c *mongo.Collection
}

// NewMongoRepository returns a Repository over the users collection.
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{c: db.Collection(store.Users)}
}

func (r *mongoRepository) Create(ctx context.Context, usr User) error {
	return store.Insert(ctx, r.c, usr)
}

func (r *mongoRepository) GetByID(ctx context.Context, id string) (User, error) {
	return store.FindOne[User](ctx, r.c, bson.M{"_id": id})
}

func (r *mongoRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	return store.FindOne[User](ctx, r.c, bson.M{"email": email})
}

func (r *mongoRepository) GetByUSN(ctx context.Context, usn string) (User, error) {
	return store.FindOne[User](ctx, r.c, bson.M{"usn": usn})
}

func (r *mongoRepository) Update(ctx context.Context, id string, pu ProfileUpdate) (User, error) {
	set := bson.M{}
	if pu.Name != nil {
		set["name"] = *pu.Name
	}
	if pu.PhoneNumber != nil {
		set["phoneNumber"] = *pu.PhoneNumber
	}
	if pu.BloodType != nil {
		set["bloodType"] = *pu.BloodType
	}
	if pu.Birthday != nil {
		set["birthday"] = *pu.Birthday
	}
	if pu.EmergencyContact != nil {
		set["emergencyContact"] = *pu.EmergencyContact
	}
	if pu.HostelDetails != nil {
		set["hostelDetails"] = *pu.HostelDetails
	}
	if pu.Branch != nil {
		set["branch"] = *pu.Branch
	}
	if pu.Semester != nil {
		set["semester"] = *pu.Semester
	}
	if pu.ProfilePicture != nil {
		set["profilePicture"] = *pu.ProfilePicture
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	return store.Modify[User](ctx, r.c, bson.M{"_id": id}, bson.M{"$set": set}, false)
}

func (r *mongoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
