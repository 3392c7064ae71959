package roommate

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hostelez/internal/core"
	"hostelez/internal/store"
)

type memoryRepository struct {
	t *store.Table[Roster]
}

// NewMemoryRepository returns a Repository kept in process memory.
func NewMemoryRepository() Repository {
	t := store.NewTable(func(r Roster) string { return r.ID }).
		Unique("userId", func(r Roster) string { return r.UserID })
	return &memoryRepository{t: t}
}

func owner(userID string) func(Roster) bool {
	return func(r Roster) bool { return r.UserID == userID }
}

func (r *memoryRepository) Add(_ context.Context, userID string, m Mate) (Roster, error) {
	return r.t.Upsert(owner(userID),
		func() Roster { return Roster{ID: uuid.NewString(), UserID: userID} },
		func(ro *Roster) error {
			ro.Roommates = append(ro.Roommates, m)
			return nil
		})
}

func (r *memoryRepository) GetByUser(_ context.Context, userID string) (Roster, error) {
	return r.t.FindOne(owner(userID))
}

func (r *memoryRepository) SetStatus(_ context.Context, userID, mateID string, status Presence, stamp string, at time.Time) (Roster, error) {
	return r.t.Update(owner(userID), func(ro *Roster) error {
		for i := range ro.Roommates {
			m := &ro.Roommates[i]
			if m.ID != mateID {
				continue
			}
			m.Status = status
			if stamp == stampCheckIn {
				m.LastCheckIn = &at
			} else {
				m.LastCheckOut = &at
			}
			return nil
		}
		return core.ErrNotFound
	})
}
