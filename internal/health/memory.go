package health

import (
	"context"
	"sort"

	"hostelez/internal/core"
	"hostelez/internal/store"
)

type memoryRepository struct {
	t *store.Table[Record]
}

// NewMemoryRepository returns a Repository kept in process memory.
func NewMemoryRepository() Repository {
	t := store.NewTable(func(r Record) string { return r.ID }).
		Unique("userId_day", func(r Record) string { return r.UserID + "\x00" + r.Day })
	return &memoryRepository{t: t}
}

func (r *memoryRepository) Insert(_ context.Context, rec Record) error {
	return r.t.Insert(rec)
}

func (r *memoryRepository) ListByUser(_ context.Context, userID string) ([]Record, error) {
	recs, err := r.t.Find(func(rec Record) bool { return rec.UserID == userID })
	if err != nil {
		return nil, err
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Day > recs[j].Day })
	return recs, nil
}

func (r *memoryRepository) Get(_ context.Context, userID, id string) (Record, error) {
	return r.t.FindOne(func(rec Record) bool { return rec.ID == id && rec.UserID == userID })
}

func (r *memoryRepository) Latest(_ context.Context, userID, before string) (Record, error) {
	recs, err := r.t.Find(func(rec Record) bool { return rec.UserID == userID && rec.Day < before })
	if err != nil {
		return Record{}, err
	}
	if len(recs) == 0 {
		return Record{}, core.ErrNotFound
	}
	latest := recs[0]
	for _, rec := range recs[1:] {
		if rec.Day > latest.Day {
			latest = rec
		}
	}
	return latest, nil
}

func (r *memoryRepository) GetOrCreate(_ context.Context, rec Record) (Record, error) {
	return r.t.Upsert(
		func(o Record) bool { return o.UserID == rec.UserID && o.Day == rec.Day },
		func() Record { return rec },
		func(*Record) error { return nil })
}

func (r *memoryRepository) Update(_ context.Context, userID, id string, p Patch) (Record, error) {
	return r.t.Update(
		func(rec Record) bool { return rec.ID == id && rec.UserID == userID },
		func(rec *Record) error {
			p.apply(rec)
			return nil
		})
}

func (r *memoryRepository) ScheduledAt(_ context.Context, day, clock string) ([]Record, error) {
	recs, err := r.t.Find(func(rec Record) bool { return rec.Day <= day })
	if err != nil {
		return nil, err
	}
	latest := map[string]Record{}
	for _, rec := range recs {
		if cur, ok := latest[rec.UserID]; !ok || rec.Day > cur.Day {
			latest[rec.UserID] = rec
		}
	}
	out := []Record{}
	for _, rec := range latest {
		if hasTime(rec, clock) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func hasTime(rec Record, clock string) bool {
	for _, m := range rec.Medicines {
		for _, t := range m.Times {
			if t == clock {
				return true
			}
		}
	}
	return false
}

func (r *memoryRepository) MarkDoseReminded(_ context.Context, recordID, medicineID string, index int) error {
	_, err := r.t.Update(func(rec Record) bool { return rec.ID == recordID }, func(rec *Record) error {
		for i := range rec.Medicines {
			m := &rec.Medicines[i]
			if m.ID == medicineID && index < len(m.ReminderSent) {
				m.ReminderSent[index] = true
				return nil
			}
		}
		return core.ErrNotFound
	})
	return err
}
