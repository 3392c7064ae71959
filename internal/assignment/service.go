package assignment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"hostelez/internal/core"
)

// Service tracks coursework deadlines.
type Service struct {
	repo  Repository
	clock clockwork.Clock
}

func NewService(repo Repository, clock clockwork.Clock) *Service {
	return &Service{repo: repo, clock: clock}
}

func (s *Service) Create(ctx context.Context, userID string, na NewAssignment) (Assignment, error) {
	prio := na.Priority
	if prio == "" {
		prio = Medium
	}
	attachments := na.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	a := Assignment{
		ID:          uuid.NewString(),
		UserID:      userID,
		Subject:     core.CleanString(na.Subject, false),
		Title:       core.CleanString(na.Title, false),
		Description: na.Description,
		DueDate:     na.DueDate.UTC(),
		Status:      Pending,
		Priority:    prio,
		Attachments: attachments,
		CreatedAt:   s.clock.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, a); err != nil {
		return Assignment{}, err
	}
	return a.effective(s.clock.Now()), nil
}

// List returns the caller's assignments by due date. Open ones past their
// deadline are reported as Overdue.
func (s *Service) List(ctx context.Context, userID string) ([]Assignment, error) {
	as, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	for i := range as {
		as[i] = as[i].effective(now)
	}
	return as, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, p Patch) (Assignment, error) {
	if p.Status != nil && *p.Status == Overdue {
		return Assignment{}, core.Invalid("status", "overdue is derived from the due date")
	}
	a, err := s.repo.Update(ctx, userID, id, p)
	if err != nil {
		return Assignment{}, err
	}
	return a.effective(s.clock.Now()), nil
}

// DueWithin lists open assignments due in the next d that were not reminded yet.
func (s *Service) DueWithin(ctx context.Context, now time.Time, d time.Duration) ([]Assignment, error) {
	return s.repo.DueBetween(ctx, now.UTC(), now.Add(d).UTC())
}

func (s *Service) MarkReminded(ctx context.Context, id string) error {
	return s.repo.MarkReminded(ctx, id)
}
