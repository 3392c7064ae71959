package checklist

import (
	"context"
	"time"

	"hostelez/internal/core"
	"hostelez/internal/store"
)

type memoryRepository struct {
	t *store.Table[Checklist]
}

// NewMemoryRepository returns a Repository kept in process memory.
func NewMemoryRepository() Repository {
	t := store.NewTable(func(c Checklist) string { return c.ID }).
		Unique("userId", func(c Checklist) string { return c.UserID })
	return &memoryRepository{t: t}
}

func byUser(userID string) func(Checklist) bool {
	return func(c Checklist) bool { return c.UserID == userID }
}

func (r *memoryRepository) Create(_ context.Context, cl Checklist) error {
	return r.t.Insert(cl)
}

func (r *memoryRepository) GetByUser(_ context.Context, userID string) (Checklist, error) {
	return r.t.FindOne(byUser(userID))
}

func (r *memoryRepository) AddItem(_ context.Context, userID string, item Item) (Checklist, error) {
	return r.t.Update(byUser(userID), func(c *Checklist) error {
		c.Items = append(c.Items, item)
		return nil
	})
}

func (r *memoryRepository) Toggle(_ context.Context, userID, itemID string) (Checklist, error) {
	return r.t.Update(byUser(userID), func(c *Checklist) error {
		for i := range c.Items {
			if c.Items[i].ID == itemID {
				c.Items[i].IsChecked = !c.Items[i].IsChecked
				return nil
			}
		}
		return core.ErrNotFound
	})
}

func (r *memoryRepository) Reset(_ context.Context, userID string, at time.Time) (Checklist, error) {
	return r.t.Update(byUser(userID), func(c *Checklist) error {
		uncheck(c, at)
		return nil
	})
}

func (r *memoryRepository) ResetAll(_ context.Context, at time.Time) (int, error) {
	return r.t.UpdateAll(nil, func(c *Checklist) { uncheck(c, at) })
}

func uncheck(c *Checklist, at time.Time) {
	for i := range c.Items {
		c.Items[i].IsChecked = false
	}
	c.LastReset = at
}
