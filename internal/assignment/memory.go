package assignment

import (
	"context"
	"sort"
	"time"

	"hostelez/internal/store"
)

type memoryRepository struct {
	t *store.Table[Assignment]
}

// NewMemoryRepository returns a Repository kept in process memory.
func NewMemoryRepository() Repository {
	return &memoryRepository{t: store.NewTable(func(a Assignment) string { return a.ID })}
}

func byDue(as []Assignment) {
	sort.SliceStable(as, func(i, j int) bool { return as[i].DueDate.Before(as[j].DueDate) })
}

func (r *memoryRepository) Insert(_ context.Context, a Assignment) error {
	return r.t.Insert(a)
}

func (r *memoryRepository) ListByUser(_ context.Context, userID string) ([]Assignment, error) {
	as, err := r.t.Find(func(a Assignment) bool { return a.UserID == userID })
	if err != nil {
		return nil, err
	}
	byDue(as)
	return as, nil
}

func (r *memoryRepository) Update(_ context.Context, userID, id string, p Patch) (Assignment, error) {
	return r.t.Update(
		func(a Assignment) bool { return a.ID == id && a.UserID == userID },
		func(a *Assignment) error {
			p.apply(a)
			return nil
		})
}

func (r *memoryRepository) DueBetween(_ context.Context, from, to time.Time) ([]Assignment, error) {
	as, err := r.t.Find(func(a Assignment) bool {
		return a.Status != Completed && !a.ReminderSent && !a.DueDate.Before(from) && a.DueDate.Before(to)
	})
	if err != nil {
		return nil, err
	}
	byDue(as)
	return as, nil
}

func (r *memoryRepository) MarkReminded(_ context.Context, id string) error {
	_, err := r.t.Update(func(a Assignment) bool { return a.ID == id }, func(a *Assignment) error {
		a.ReminderSent = true
		return nil
	})
	return err
}
