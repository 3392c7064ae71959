package user

import (
	"context"

	"hostelez/internal/store"
)

type memoryRepository struct {
	t *store.Table[User]
}

// NewMemoryRepository returns a Repository kept in process memory.
func NewMemoryRepository() Repository {
	t := store.NewTable(func(u User) string { return u.ID }).
		Unique("email", func(u User) string { return u.Email }).
		Unique("usn", func(u User) string { return u.USN })
	return &memoryRepository{t: t}
}

func (r *memoryRepository) Create(_ context.Context, usr User) error {
	return r.t.Insert(usr)
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (User, error) {
	return r.t.Get(id)
}

func (r *memoryRepository) GetByEmail(_ context.Context, email string) (User, error) {
	return r.t.FindOne(func(u User) bool { return u.Email == email })
}

func (r *memoryRepository) GetByUSN(_ context.Context, usn string) (User, error) {
	return r.t.FindOne(func(u User) bool { return u.USN == usn })
}

func (r *memoryRepository) Update(_ context.Context, id string, pu ProfileUpdate) (User, error) {
	return r.t.Update(func(u User) bool { return u.ID == id }, func(u *User) error {
		u.apply(pu)
		return nil
	})
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	return r.t.Delete(id)
}
