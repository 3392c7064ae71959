package health

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelez/internal/core"
	"hostelez/internal/store/storetest"
)

func TestMongoRepository_MedicineSchedule(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 4, 7, 30, 0, 0, time.UTC))
	svc := NewService(NewMongoRepository(storetest.Mongo(t)), clock, time.UTC)
	ctx := context.Background()

	rec, err := svc.Today(ctx, "u1")
	require.NoError(t, err)
	again, err := svc.Today(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, again.ID)

	meds := []MedicineInput{
		{Name: "Iron", Times: []string{"08:00", "21:00"}},
		{Name: "Zinc", Times: []string{"08:00"}},
	}
	rec, err = svc.Update(ctx, "u1", rec.ID, Patch{Medicines: &meds})
	require.NoError(t, err)
	require.Len(t, rec.Medicines, 2)

	clock.Advance(30 * time.Minute)
	due, err := svc.DosesDue(ctx, clock.Now())
	require.NoError(t, err)
	require.Len(t, due, 2)

	// arrayFilters only touch the matching medicine
	require.NoError(t, svc.MarkDoseReminded(ctx, due[0]))
	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	byName := map[string]Medicine{}
	for _, m := range list[0].Medicines {
		byName[m.Name] = m
	}
	assert.Equal(t, []bool{true, false}, byName[due[0].Name].ReminderSent)
	other := "Zinc"
	if due[0].Name == "Zinc" {
		other = "Iron"
	}
	assert.False(t, byName[other].ReminderSent[0])

	err = svc.MarkDoseReminded(ctx, Dose{RecordID: "missing", MedicineID: "x"})
	assert.True(t, core.IsNotFound(err))

	// the next morning's scan creates the new day from the latest schedule
	clock.Advance(24 * time.Hour)
	due, err = svc.DosesDue(ctx, clock.Now())
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, "2026-03-05", due[0].Day)
	list, err = svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2026-03-05", list[0].Day)
}
