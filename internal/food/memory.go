package food

import (
	"context"
	"sort"

	"hostelez/internal/store"
)

type memoryRepository struct {
	t *store.Table[Venue]
}

func NewMemoryRepository() Repository {
	return &memoryRepository{t: store.NewTable(func(v Venue) string { return v.ID })}
}

func (r *memoryRepository) Insert(_ context.Context, v Venue) error {
	return r.t.Insert(v)
}

func (r *memoryRepository) Nearest(_ context.Context, limit int) ([]Venue, error) {
	vs, err := r.t.Find(func(v Venue) bool { return v.IsOpen })
	if err != nil {
		return nil, err
	}
	sort.SliceStable(vs, func(i, j int) bool { return vs[i].Distance < vs[j].Distance })
	if len(vs) > limit {
		vs = vs[:limit]
	}
	return vs, nil
}
