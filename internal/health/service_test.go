package health

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelez/internal/core"
)

func setup() (*Service, clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 4, 7, 30, 0, 0, time.UTC))
	return NewService(NewMemoryRepository(), clock, time.UTC), clock
}

func TestToday_GetOrCreate(t *testing.T) {
	svc, _ := setup()
	ctx := context.Background()

	first, err := svc.Today(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-04", first.Day)
	assert.Equal(t, DefaultWaterGoal, first.WaterGoal)
	assert.Equal(t, DefaultStepsGoal, first.StepsGoal)

	again, err := svc.Today(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
}

func TestCreate_OnePerDay(t *testing.T) {
	svc, _ := setup()
	ctx := context.Background()
	steps := 4200

	rec, err := svc.Create(ctx, "u1", NewRecord{Date: "2026-03-02", Patch: Patch{Steps: &steps}})
	require.NoError(t, err)
	assert.Equal(t, 4200, rec.Steps)

	_, err = svc.Create(ctx, "u1", NewRecord{Date: "2026-03-02"})
	var verr *core.ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = svc.Create(ctx, "u2", NewRecord{Date: "2026-03-02"})
	assert.NoError(t, err)

	_, err = svc.Create(ctx, "u1", NewRecord{})
	require.NoError(t, err)
	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2026-03-04", list[0].Day)
}

func TestUpdate_NormalizesMedicines(t *testing.T) {
	svc, _ := setup()
	ctx := context.Background()

	rec, err := svc.Today(ctx, "u1")
	require.NoError(t, err)

	water := 1.25
	meds := []MedicineInput{{Name: "Vitamin D", Dosage: "1 tab", Times: []string{"8:00 AM", "20:00"}, Taken: []bool{true, false, true}}}
	got, err := svc.Update(ctx, "u1", rec.ID, Patch{WaterIntake: &water, Medicines: &meds})
	require.NoError(t, err)
	assert.Equal(t, 1.25, got.WaterIntake)
	require.Len(t, got.Medicines, 1)
	m := got.Medicines[0]
	assert.Equal(t, []string{"08:00", "20:00"}, m.Times)
	assert.Equal(t, []bool{true, false}, m.Taken)
	assert.Equal(t, []bool{false, false}, m.ReminderSent)
	assert.NotEmpty(t, m.ID)

	_, err = svc.Update(ctx, "u2", rec.ID, Patch{WaterIntake: &water})
	assert.True(t, core.IsNotFound(err))

	bad := []MedicineInput{{Name: "X", Times: []string{"25:99"}}}
	_, err = svc.Update(ctx, "u1", rec.ID, Patch{Medicines: &bad})
	var verr *core.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDosesDue_AndMark(t *testing.T) {
	svc, clock := setup()
	ctx := context.Background()

	rec, err := svc.Today(ctx, "u1")
	require.NoError(t, err)
	meds := []MedicineInput{{Name: "Iron", Times: []string{"08:00", "21:00"}}}
	_, err = svc.Update(ctx, "u1", rec.ID, Patch{Medicines: &meds})
	require.NoError(t, err)

	due, err := svc.DosesDue(ctx, clock.Now())
	require.NoError(t, err)
	assert.Empty(t, due)

	clock.Advance(30 * time.Minute)
	due, err = svc.DosesDue(ctx, clock.Now())
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "Iron", due[0].Name)
	assert.Equal(t, 0, due[0].Index)

	require.NoError(t, svc.MarkDoseReminded(ctx, due[0]))
	due, err = svc.DosesDue(ctx, clock.Now())
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestDosesDue_CarriesScheduleIntoNextDay(t *testing.T) {
	svc, clock := setup()
	ctx := context.Background()

	rec, err := svc.Today(ctx, "u1")
	require.NoError(t, err)
	meds := []MedicineInput{{Name: "Iron", Times: []string{"08:00"}}}
	rec, err = svc.Update(ctx, "u1", rec.ID, Patch{Medicines: &meds})
	require.NoError(t, err)

	clock.Advance(30 * time.Minute)
	due, err := svc.DosesDue(ctx, clock.Now())
	require.NoError(t, err)
	require.Len(t, due, 1)
	require.NoError(t, svc.MarkDoseReminded(ctx, due[0]))

	// nobody opens the app on the next day
	clock.Advance(24 * time.Hour)
	due, err = svc.DosesDue(ctx, clock.Now())
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "2026-03-05", due[0].Day)
	assert.Equal(t, rec.Medicines[0].ID, due[0].MedicineID)
	assert.NotEqual(t, rec.ID, due[0].RecordID)

	today, err := svc.Today(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, due[0].RecordID, today.ID)

	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestToday_CarriesScheduleWithFreshFlags(t *testing.T) {
	svc, clock := setup()
	ctx := context.Background()

	rec, err := svc.Today(ctx, "u1")
	require.NoError(t, err)
	meds := []MedicineInput{{Name: "Vitamin D", Dosage: "1 tab", Times: []string{"08:00", "20:00"}, Taken: []bool{true, true}}}
	rec, err = svc.Update(ctx, "u1", rec.ID, Patch{Medicines: &meds})
	require.NoError(t, err)

	clock.Advance(20 * time.Hour) // 03:30 on the next day
	next, err := svc.Today(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-05", next.Day)
	require.Len(t, next.Medicines, 1)
	m := next.Medicines[0]
	assert.Equal(t, rec.Medicines[0].ID, m.ID)
	assert.Equal(t, "1 tab", m.Dosage)
	assert.Equal(t, []string{"08:00", "20:00"}, m.Times)
	assert.Equal(t, []bool{false, false}, m.Taken)
	assert.Equal(t, []bool{false, false}, m.ReminderSent)

	// yesterday keeps its own flags
	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, []bool{true, true}, list[1].Medicines[0].Taken)
}

func TestUpdate_KeepsReminderFlags(t *testing.T) {
	svc, clock := setup()
	ctx := context.Background()

	rec, err := svc.Today(ctx, "u1")
	require.NoError(t, err)
	meds := []MedicineInput{{Name: "Iron", Times: []string{"08:00"}}}
	rec, err = svc.Update(ctx, "u1", rec.ID, Patch{Medicines: &meds})
	require.NoError(t, err)

	clock.Advance(30 * time.Minute)
	due, err := svc.DosesDue(ctx, clock.Now())
	require.NoError(t, err)
	require.Len(t, due, 1)
	require.NoError(t, svc.MarkDoseReminded(ctx, due[0]))

	// ticking the dose off and adding an evening time
	edit := []MedicineInput{{ID: rec.Medicines[0].ID, Name: "Iron", Times: []string{"8:00", "21:00"}, Taken: []bool{true}}}
	got, err := svc.Update(ctx, "u1", rec.ID, Patch{Medicines: &edit})
	require.NoError(t, err)
	require.Len(t, got.Medicines, 1)
	assert.Equal(t, []bool{true, false}, got.Medicines[0].ReminderSent)
	assert.Equal(t, []bool{true, false}, got.Medicines[0].Taken)

	due, err = svc.DosesDue(ctx, clock.Now())
	require.NoError(t, err)
	assert.Empty(t, due)

	_, err = svc.Update(ctx, "u2", rec.ID, Patch{Medicines: &edit})
	assert.True(t, core.IsNotFound(err))
}
