package laundry

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"

	"hostelez/internal/core"
	"hostelez/internal/user"
)

// Residences resolves the room a resident lives in.
type Residences interface {
	Residence(ctx context.Context, userID string) (user.User, error)
}

// Service books laundry slots per hostel room.
type Service struct {
	repo   Repository
	people Residences
	clock  clockwork.Clock
	loc    *time.Location
}

func NewService(repo Repository, people Residences, clock clockwork.Clock, loc *time.Location) *Service {
	return &Service{repo: repo, people: people, clock: clock, loc: loc}
}

// Book reserves a slot for the caller's room.
func (s *Service) Book(ctx context.Context, userID string, b Booking) (Laundry, error) {
	usr, err := s.people.Residence(ctx, userID)
	if err != nil {
		return Laundry{}, err
	}
	day, err := time.ParseInLocation(core.DayLayout, b.Date, s.loc)
	if err != nil {
		return Laundry{}, core.Invalid("date", "date must be YYYY-MM-DD")
	}
	if day.Before(core.StartOfDay(s.clock.Now().In(s.loc))) {
		return Laundry{}, core.Invalid("date", "date is in the past")
	}
	at, err := core.ParseClock(b.Time)
	if err != nil {
		return Laundry{}, core.Invalid("time", err.Error())
	}

	hd := usr.HostelDetails
	l, err := s.repo.Book(ctx, hd.HostelName, hd.RoomNumber, userID, Slot{
		ID:       uuid.NewString(),
		Date:     day.UTC(),
		Time:     at,
		Status:   Booked,
		BookedBy: userID,
	})
	if errors.Is(err, ErrSlotTaken) {
		return Laundry{}, core.NewValidationError(err, core.FieldError{Field: "time", Error: err.Error()})
	}
	return l, err
}

// Get returns the caller's room laundry.
func (s *Service) Get(ctx context.Context, userID string) (Laundry, error) {
	usr, err := s.people.Residence(ctx, userID)
	if err != nil {
		return Laundry{}, err
	}
	return s.repo.GetByRoom(ctx, usr.HostelDetails.HostelName, usr.HostelDetails.RoomNumber)
}

// SetSlotStatus changes one slot of the caller's room.
func (s *Service) SetSlotStatus(ctx context.Context, userID, slotID string, sc StatusChange) (Laundry, error) {
	usr, err := s.people.Residence(ctx, userID)
	if err != nil {
		return Laundry{}, err
	}
	return s.repo.SetSlotStatus(ctx, usr.HostelDetails.HostelName, usr.HostelDetails.RoomNumber, slotID, sc.Status)
}

// DueOn lists booked slots on the calendar day of t that were not reminded yet.
func (s *Service) DueOn(ctx context.Context, t time.Time) ([]DueSlot, error) {
	from := core.StartOfDay(t.In(s.loc))
	return s.repo.BookedBetween(ctx, from.UTC(), from.AddDate(0, 0, 1).UTC())
}

func (s *Service) MarkReminded(ctx context.Context, laundryID, slotID string) error {
	return s.repo.MarkReminded(ctx, laundryID, slotID)
}
