// Package food lists places to eat near the hostel.
package food

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hostelez/internal/core"
	"hostelez/internal/store"
)

// NearbyLimit caps how many venues Nearby returns.
const NearbyLimit = 5

type Timings struct {
	Breakfast string `json:"breakfast" bson:"breakfast"`
	Lunch     string `json:"lunch" bson:"lunch"`
	Dinner    string `json:"dinner" bson:"dinner"`
}

type Menu struct {
	Day   string   `json:"day" bson:"day"`
	Items []string `json:"items" bson:"items"`
}

// Venue is a mess, canteen, restaurant or cafe. Distance is in meters.
type Venue struct {
	ID            string  `json:"id" bson:"_id"`
	Name          string  `json:"name" bson:"name"`
	Type          string  `json:"type" bson:"type"`
	Location      string  `json:"location" bson:"location"`
	Distance      float64 `json:"distance" bson:"distance"`
	Timings       Timings `json:"timings" bson:"timings"`
	Menu          []Menu  `json:"menu" bson:"menu"`
	PriceRange    string  `json:"priceRange" bson:"priceRange"`
	Rating        float64 `json:"rating" bson:"rating"`
	ContactNumber string  `json:"contactNumber" bson:"contactNumber"`
	IsOpen        bool    `json:"isOpen" bson:"isOpen"`
}

// NewVenue is a venue as submitted. IsOpen defaults to true.
type NewVenue struct {
	Name          string  `json:"name" binding:"required"`
	Type          string  `json:"type" binding:"required,oneof=Mess Canteen Restaurant Cafe"`
	Location      string  `json:"location"`
	Distance      float64 `json:"distance" binding:"min=0"`
	Timings       Timings `json:"timings"`
	Menu          []Menu  `json:"menu"`
	PriceRange    string  `json:"priceRange"`
	Rating        float64 `json:"rating" binding:"min=0,max=5"`
	ContactNumber string  `json:"contactNumber"`
	IsOpen        *bool   `json:"isOpen"`
}

// Repository persists venues.
type Repository interface {
	Insert(ctx context.Context, v Venue) error
	// Nearest returns up to limit open venues, closest first.
	Nearest(ctx context.Context, limit int) ([]Venue, error)
}

type mongoRepository struct {
	c *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{c: db.Collection(store.Food)}
}

func (r *mongoRepository) Insert(ctx context.Context, v Venue) error {
	return store.Insert(ctx, r.c, v)
}

func (r *mongoRepository) Nearest(ctx context.Context, limit int) ([]Venue, error) {
	opts := options.Find().SetSort(bson.D{{Key: "distance", Value: 1}}).SetLimit(int64(limit))
	return store.FindAll[Venue](ctx, r.c, bson.M{"isOpen": true}, opts)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Nearby returns the closest open venues.
func (s *Service) Nearby(ctx context.Context) ([]Venue, error) {
	return s.repo.Nearest(ctx, NearbyLimit)
}

func (s *Service) Add(ctx context.Context, nv NewVenue) (Venue, error) {
	v := Venue{
		ID:            uuid.NewString(),
		Name:          core.CleanString(nv.Name, false),
		Type:          nv.Type,
		Location:      nv.Location,
		Distance:      nv.Distance,
		Timings:       nv.Timings,
		Menu:          nv.Menu,
		PriceRange:    nv.PriceRange,
		Rating:        nv.Rating,
		ContactNumber: nv.ContactNumber,
		IsOpen:        nv.IsOpen == nil || *nv.IsOpen,
	}
	if v.Menu == nil {
		v.Menu = []Menu{}
	}
	if err := s.repo.Insert(ctx, v); err != nil {
		return Venue{}, err
	}
	return v, nil
}
