// Package event keeps a resident's personal calendar.
package event

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hostelez/internal/core"
	"hostelez/internal/store"
)

type Event struct {
	ID                  string    `json:"id" bson:"_id"`
	UserID              string    `json:"userId" bson:"userId"`
	Title               string    `json:"title" bson:"title"`
	Description         string    `json:"description" bson:"description"`
	EventType           string    `json:"eventType" bson:"eventType"`
	Date                time.Time `json:"date" bson:"date"`
	StartTime           string    `json:"startTime" bson:"startTime"`
	EndTime             string    `json:"endTime" bson:"endTime"`
	Location            string    `json:"location" bson:"location"`
	ReminderBefore      int       `json:"reminderBefore" bson:"reminderBefore"`
	IsRecurring         bool      `json:"isRecurring" bson:"isRecurring"`
	RecurringPattern    string    `json:"recurringPattern" bson:"recurringPattern"`
	AttendanceExemption bool      `json:"attendanceExemption" bson:"attendanceExemption"`
	Certificate         string    `json:"certificate" bson:"certificate"`
}

type NewEvent struct {
	Title               string    `json:"title" binding:"required"`
	Description         string    `json:"description"`
	EventType           string    `json:"eventType" binding:"required,oneof=Cultural Sports Academic Club Volunteering Internship Personal"`
	Date                time.Time `json:"date" binding:"required"`
	StartTime           string    `json:"startTime" binding:"omitempty,clock"`
	EndTime             string    `json:"endTime" binding:"omitempty,clock"`
	Location            string    `json:"location"`
	ReminderBefore      int       `json:"reminderBefore" binding:"min=0"`
	IsRecurring         bool      `json:"isRecurring"`
	RecurringPattern    string    `json:"recurringPattern" binding:"required_if=IsRecurring true"`
	AttendanceExemption bool      `json:"attendanceExemption"`
	Certificate         string    `json:"certificate" binding:"omitempty,url"`
}

type Repository interface {
	Insert(ctx context.Context, e Event) error
	ListByUser(ctx context.Context, userID string) ([]Event, error)
}

type mongoRepository struct {
	c *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{c: db.Collection(store.Events)}
}

func (r *mongoRepository) Insert(ctx context.Context, e Event) error {
	return store.Insert(ctx, r.c, e)
}

func (r *mongoRepository) ListByUser(ctx context.Context, userID string) ([]Event, error) {
	return store.FindAll[Event](ctx, r.c, bson.M{"userId": userID}, store.SortBy("date", true))
}

type memoryRepository struct {
	t *store.Table[Event]
}

func NewMemoryRepository() Repository {
	return &memoryRepository{t: store.NewTable(func(e Event) string { return e.ID })}
}

func (r *memoryRepository) Insert(_ context.Context, e Event) error {
	return r.t.Insert(e)
}

func (r *memoryRepository) ListByUser(_ context.Context, userID string) ([]Event, error) {
	es, err := r.t.Find(func(e Event) bool { return e.UserID == userID })
	if err != nil {
		return nil, err
	}
	sort.SliceStable(es, func(i, j int) bool { return es[i].Date.Before(es[j].Date) })
	return es, nil
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, userID string, ne NewEvent) (Event, error) {
	e := Event{
		ID:                  uuid.NewString(),
		UserID:              userID,
		Title:               core.CleanString(ne.Title, false),
		Description:         ne.Description,
		EventType:           ne.EventType,
		Date:                ne.Date.UTC(),
		Location:            ne.Location,
		ReminderBefore:      ne.ReminderBefore,
		IsRecurring:         ne.IsRecurring,
		RecurringPattern:    ne.RecurringPattern,
		AttendanceExemption: ne.AttendanceExemption,
		Certificate:         ne.Certificate,
	}
	var err error
	if ne.StartTime != "" {
		if e.StartTime, err = core.ParseClock(ne.StartTime); err != nil {
			return Event{}, core.Invalid("startTime", err.Error())
		}
	}
	if ne.EndTime != "" {
		if e.EndTime, err = core.ParseClock(ne.EndTime); err != nil {
			return Event{}, core.Invalid("endTime", err.Error())
		}
	}
	if e.StartTime != "" && e.EndTime != "" && e.EndTime <= e.StartTime {
		return Event{}, core.Invalid("endTime", "event must end after it starts")
	}
	if err := s.repo.Insert(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

// List returns the caller's events by date.
func (s *Service) List(ctx context.Context, userID string) ([]Event, error) {
	return s.repo.ListByUser(ctx, userID)
}
