package checklist

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Service manages the daily checklist.
type Service struct {
	repo  Repository
	clock clockwork.Clock
}

func NewService(repo Repository, clock clockwork.Clock) *Service {
	return &Service{repo: repo, clock: clock}
}

// CreateDefault gives a new resident the default items.
func (s *Service) CreateDefault(ctx context.Context, userID string) error {
	cl := Checklist{
		ID:        uuid.NewString(),
		UserID:    userID,
		LastReset: s.clock.Now().UTC(),
	}
	for _, d := range defaultItems {
		cl.Items = append(cl.Items, Item{ID: uuid.NewString(), Name: d.name, Emoji: d.emoji, IsDefault: true})
	}
	return s.repo.Create(ctx, cl)
}

func (s *Service) Get(ctx context.Context, userID string) (Checklist, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *Service) AddItem(ctx context.Context, userID string, ni NewItem) (Checklist, error) {
	return s.repo.AddItem(ctx, userID, Item{ID: uuid.NewString(), Name: ni.Name, Emoji: ni.Emoji})
}

// Toggle flips one item's checked flag.
func (s *Service) Toggle(ctx context.Context, userID, itemID string) (Checklist, error) {
	return s.repo.Toggle(ctx, userID, itemID)
}

// Reset unchecks every item of the user's checklist.
func (s *Service) Reset(ctx context.Context, userID string) (Checklist, error) {
	return s.repo.Reset(ctx, userID, s.clock.Now().UTC())
}

// ResetAll unchecks every checklist; run by the daily job.
func (s *Service) ResetAll(ctx context.Context) (int, error) {
	return s.repo.ResetAll(ctx, s.clock.Now().UTC())
}
