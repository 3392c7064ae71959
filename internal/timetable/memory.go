package timetable

import (
	"context"

	"github.com/google/uuid"

	"hostelez/internal/store"
)

type memoryRepository struct {
	t *store.Table[Timetable]
}

// NewMemoryRepository returns a Repository kept in process memory.
func NewMemoryRepository() Repository {
	t := store.NewTable(func(tt Timetable) string { return tt.ID }).
		Unique("userId", func(tt Timetable) string { return tt.UserID })
	return &memoryRepository{t: t}
}

func (r *memoryRepository) Save(_ context.Context, tt Timetable) (Timetable, error) {
	return r.t.Upsert(
		func(cur Timetable) bool { return cur.UserID == tt.UserID },
		func() Timetable { return Timetable{ID: uuid.NewString(), UserID: tt.UserID} },
		func(cur *Timetable) error {
			cur.Semester = tt.Semester
			cur.Classes = tt.Classes
			cur.UpdatedAt = tt.UpdatedAt
			return nil
		})
}

func (r *memoryRepository) GetByUser(_ context.Context, userID string) (Timetable, error) {
	return r.t.FindOne(func(tt Timetable) bool { return tt.UserID == userID })
}

func (r *memoryRepository) ClassesOn(_ context.Context, day string) ([]Timetable, error) {
	return r.t.Find(func(tt Timetable) bool {
		for _, c := range tt.Classes {
			if c.Day == day {
				return true
			}
		}
		return false
	})
}
