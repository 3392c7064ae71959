package laundry

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hostelez/internal/core"
	"hostelez/internal/store"
)

type memoryRepository struct {
	t *store.Table[Laundry]
}

// NewMemoryRepository returns a Repository kept in process memory.
func NewMemoryRepository() Repository {
	t := store.NewTable(func(l Laundry) string { return l.ID }).
		Unique("hostelName_roomNumber", func(l Laundry) string { return l.HostelName + "\x00" + l.RoomNumber })
	return &memoryRepository{t: t}
}

func byRoom(hostel, room string) func(Laundry) bool {
	return func(l Laundry) bool { return l.HostelName == hostel && l.RoomNumber == room }
}

func (r *memoryRepository) Book(_ context.Context, hostel, room, userID string, slot Slot) (Laundry, error) {
	return r.t.Upsert(byRoom(hostel, room),
		func() Laundry {
			return Laundry{ID: uuid.NewString(), HostelName: hostel, RoomNumber: room, UserID: userID}
		},
		func(l *Laundry) error {
			for _, s := range l.Slots {
				if s.Status == Booked && s.Time == slot.Time && s.Date.Equal(slot.Date) {
					return ErrSlotTaken
				}
			}
			l.Slots = append(l.Slots, slot)
			return nil
		})
}

func (r *memoryRepository) GetByRoom(_ context.Context, hostel, room string) (Laundry, error) {
	return r.t.FindOne(byRoom(hostel, room))
}

func (r *memoryRepository) SetSlotStatus(_ context.Context, hostel, room, slotID string, status SlotStatus) (Laundry, error) {
	return r.t.Update(byRoom(hostel, room), func(l *Laundry) error {
		for i := range l.Slots {
			if l.Slots[i].ID == slotID {
				l.Slots[i].Status = status
				return nil
			}
		}
		return core.ErrNotFound
	})
}

func (r *memoryRepository) BookedBetween(_ context.Context, from, to time.Time) ([]DueSlot, error) {
	docs, err := r.t.Find(nil)
	if err != nil {
		return nil, err
	}
	out := []DueSlot{}
	for _, l := range docs {
		for _, s := range l.Slots {
			if s.Status != Booked || s.ReminderSent || s.Date.Before(from) || !s.Date.Before(to) {
				continue
			}
			out = append(out, DueSlot{LaundryID: l.ID, UserID: l.UserID, HostelName: l.HostelName, RoomNumber: l.RoomNumber, Slot: s})
		}
	}
	return out, nil
}

func (r *memoryRepository) MarkReminded(_ context.Context, laundryID, slotID string) error {
	_, err := r.t.Update(func(l Laundry) bool { return l.ID == laundryID }, func(l *Laundry) error {
		for i := range l.Slots {
			if l.Slots[i].ID == slotID {
				l.Slots[i].ReminderSent = true
				return nil
			}
		}
		return core.ErrNotFound
	})
	return err
}
