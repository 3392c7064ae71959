package maintenance

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"hostelez/internal/user"
)

// Residences resolves the room a resident lives in.
type Residences interface {
	Residence(ctx context.Context, userID string) (user.User, error)
}

// Service files repair requests.
type Service struct {
	repo   Repository
	people Residences
	clock  clockwork.Clock
}

func NewService(repo Repository, people Residences, clock clockwork.Clock) *Service {
	return &Service{repo: repo, people: people, clock: clock}
}

// Create files a ticket for the caller's room.
func (s *Service) Create(ctx context.Context, userID string, nt NewTicket) (Ticket, error) {
	usr, err := s.people.Residence(ctx, userID)
	if err != nil {
		return Ticket{}, err
	}
	urgency := nt.Urgency
	if urgency == "" {
		urgency = "Medium"
	}
	images := nt.Images
	if images == nil {
		images = []string{}
	}
	t := Ticket{
		ID:          uuid.NewString(),
		UserID:      userID,
		HostelName:  usr.HostelDetails.HostelName,
		RoomNumber:  usr.HostelDetails.RoomNumber,
		IssueType:   nt.IssueType,
		Description: nt.Description,
		Urgency:     urgency,
		Status:      Pending,
		Images:      images,
		CreatedAt:   s.clock.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, t); err != nil {
		return Ticket{}, err
	}
	return t, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Ticket, error) {
	return s.repo.ListByUser(ctx, userID)
}
