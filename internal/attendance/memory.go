package attendance

import (
	"context"

	"hostelez/internal/store"
)

type memoryRepository struct {
	t *store.Table[Attendance]
}

// NewMemoryRepository returns a Repository kept in process memory.
func NewMemoryRepository() Repository {
	return &memoryRepository{t: store.NewTable(func(a Attendance) string { return a.ID })}
}

func (r *memoryRepository) Insert(_ context.Context, att Attendance) error {
	return r.t.Insert(att)
}

func (r *memoryRepository) ListByUser(_ context.Context, userID string) ([]Attendance, error) {
	return r.t.Find(func(a Attendance) bool { return a.UserID == userID })
}

func (r *memoryRepository) Append(_ context.Context, userID, id string, rec Record) (Attendance, error) {
	return r.t.Update(func(a Attendance) bool { return a.ID == id && a.UserID == userID }, func(a *Attendance) error {
		a.TotalClasses++
		if rec.Status == Present {
			a.AttendedClasses++
		}
		a.Records = append(a.Records, rec)
		return nil
	})
}
