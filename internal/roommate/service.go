package roommate

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"hostelez/internal/core"
	"hostelez/internal/user"
)

// Profiles looks up registered residents.
type Profiles interface {
	Get(ctx context.Context, id string) (user.User, error)
}

// Service tracks whether roommates are in or out.
type Service struct {
	repo     Repository
	profiles Profiles
	clock    clockwork.Clock
}

func NewService(repo Repository, profiles Profiles, clock clockwork.Clock) *Service {
	return &Service{repo: repo, profiles: profiles, clock: clock}
}

// Add puts a roommate on the caller's roster. New entries are In unless told otherwise.
func (s *Service) Add(ctx context.Context, userID string, nm NewMate) (Roster, error) {
	status := nm.Status
	if status == "" {
		status = In
	}
	if status != In && status != Out {
		return Roster{}, core.Invalid("status", "status must be In or Out")
	}
	if nm.RoommateID != "" {
		if _, err := s.profiles.Get(ctx, nm.RoommateID); err != nil {
			if core.IsNotFound(err) {
				return Roster{}, core.Invalid("roommateId", "no such user")
			}
			return Roster{}, err
		}
	}
	return s.repo.Add(ctx, userID, Mate{
		ID:              uuid.NewString(),
		RoommateID:      nm.RoommateID,
		Name:            core.CleanString(nm.Name, false),
		PhoneNumber:     nm.PhoneNumber,
		Status:          status,
		LocationSharing: nm.LocationSharing,
	})
}

// Get returns the caller's roster with linked roommates' name and phone filled in.
func (s *Service) Get(ctx context.Context, userID string) (Roster, error) {
	ro, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return Roster{}, err
	}
	s.populate(ctx, &ro)
	return ro, nil
}

func (s *Service) populate(ctx context.Context, ro *Roster) {
	for i := range ro.Roommates {
		m := &ro.Roommates[i]
		if m.RoommateID == "" || (m.Name != "" && m.PhoneNumber != "") {
			continue
		}
		u, err := s.profiles.Get(ctx, m.RoommateID)
		if err != nil {
			if !core.IsNotFound(err) {
				log.Printf("roommates: lookup %s: %v", m.RoommateID, err)
			}
			continue
		}
		if m.Name == "" {
			m.Name = u.Name
		}
		if m.PhoneNumber == "" {
			m.PhoneNumber = u.PhoneNumber
		}
	}
}

// SetStatus checks a roommate in or out. In stamps lastCheckIn and Out stamps
// lastCheckOut; the other timestamp is left alone.
func (s *Service) SetStatus(ctx context.Context, userID, mateID string, sc StatusChange) (Roster, error) {
	var stamp string
	switch sc.Status {
	case In:
		stamp = stampCheckIn
	case Out:
		stamp = stampCheckOut
	default:
		return Roster{}, core.Invalid("status", "status must be In or Out")
	}
	ro, err := s.repo.SetStatus(ctx, userID, mateID, sc.Status, stamp, s.clock.Now().UTC())
	if err != nil {
		return Roster{}, err
	}
	s.populate(ctx, &ro)
	return ro, nil
}
