package laundry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelez/internal/core"
	"hostelez/internal/store/storetest"
)

func TestMongoRepository_Booking(t *testing.T) {
	repo := NewMongoRepository(storetest.Mongo(t))
	ctx := context.Background()
	day := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	slot := func(id, by string) Slot {
		return Slot{ID: id, Date: day, Time: "10:00", Status: Booked, BookedBy: by}
	}

	l, err := repo.Book(ctx, "Nilgiri", "204", "u1", slot("s1", "u1"))
	require.NoError(t, err)
	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "u1", l.UserID)
	require.Len(t, l.Slots, 1)

	// the room document exists and holds the slot, so the upsert collides
	_, err = repo.Book(ctx, "Nilgiri", "204", "u2", slot("s2", "u2"))
	assert.ErrorIs(t, err, ErrSlotTaken)

	_, err = repo.Book(ctx, "Nilgiri", "205", "u3", slot("s3", "u3"))
	require.NoError(t, err)

	_, err = repo.SetSlotStatus(ctx, "Nilgiri", "204", "s1", Cancelled)
	require.NoError(t, err)
	l, err = repo.Book(ctx, "Nilgiri", "204", "u2", slot("s4", "u2"))
	require.NoError(t, err)
	assert.Len(t, l.Slots, 2)
	assert.Equal(t, "u1", l.UserID)

	_, err = repo.SetSlotStatus(ctx, "Nilgiri", "204", "missing", Completed)
	assert.True(t, core.IsNotFound(err))

	due, err := repo.BookedBetween(ctx, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	ids := []string{}
	for _, d := range due {
		ids = append(ids, d.Slot.ID)
	}
	assert.ElementsMatch(t, []string{"s3", "s4"}, ids)

	require.NoError(t, repo.MarkReminded(ctx, l.ID, "s4"))
	due, err = repo.BookedBetween(ctx, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "s3", due[0].Slot.ID)
	assert.Equal(t, "205", due[0].RoomNumber)
}
