package notice

import (
	"context"
	"sort"

	"hostelez/internal/store"
)

type memoryRepository struct {
	t *store.Table[Notice]
}

// NewMemoryRepository returns a Repository kept in process memory.
func NewMemoryRepository() Repository {
	return &memoryRepository{t: store.NewTable(func(n Notice) string { return n.ID })}
}

func (r *memoryRepository) Insert(_ context.Context, n Notice) error {
	return r.t.Insert(n)
}

func (r *memoryRepository) ActiveIn(_ context.Context, hostel string) ([]Notice, error) {
	ns, err := r.t.Find(func(n Notice) bool { return n.HostelName == hostel && n.IsActive })
	if err != nil {
		return nil, err
	}
	sort.SliceStable(ns, func(i, j int) bool { return ns[i].CreatedAt.After(ns[j].CreatedAt) })
	return ns, nil
}

func (r *memoryRepository) Deactivate(_ context.Context, posterID, id string) (Notice, error) {
	return r.t.Update(
		func(n Notice) bool { return n.ID == id && n.PosterID == posterID },
		func(n *Notice) error {
			n.IsActive = false
			return nil
		})
}
