package timetable

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
	// a Wednesday
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 4, 7, 0, 0, 0, time.UTC))
	return NewService(NewMemoryRepository(), clock, time.UTC), clock
}

func week() Input {
	return Input{
		Semester: 4,
		Classes: []Class{
			{Day: "Wednesday", Subject: "DBMS", StartTime: "2:00 PM", EndTime: "3:00 PM", Type: "Lecture"},
			{Day: "Wednesday", Subject: "OS", StartTime: "09:00", EndTime: "10:00", Type: "Lecture"},
			{Day: "Thursday", Subject: "Networks Lab", StartTime: "10:00", EndTime: "13:00", Type: "Lab"},
		},
	}
}

func TestSave_UpsertsOnePerUser(t *testing.T) {
	svc, _ := setup()
	ctx := context.Background()

	first, err := svc.Save(ctx, "u1", week())
	require.NoError(t, err)
	require.Len(t, first.Classes, 3)
	assert.Equal(t, "14:00", first.Classes[0].StartTime)
	assert.NotEmpty(t, first.Classes[0].ID)

	in := week()
	in.Classes = in.Classes[:1]
	second, err := svc.Save(ctx, "u1", in)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, second.Classes, 1)
}

func TestSave_RejectsBadTimes(t *testing.T) {
	svc, _ := setup()
	in := week()
	in.Classes[0].EndTime = "1:00 PM"
	_, err := svc.Save(context.Background(), "u1", in)
	var verr *core.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestToday(t *testing.T) {
	svc, clock := setup()
	ctx := context.Background()

	classes, err := svc.Today(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, classes)

	_, err = svc.Save(ctx, "u1", week())
	require.NoError(t, err)

	classes, err = svc.Today(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, "OS", classes[0].Subject)
	assert.Equal(t, "DBMS", classes[1].Subject)

	clock.Advance(24 * time.Hour)
	classes, err = svc.Today(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, "Networks Lab", classes[0].Subject)
}

func TestGet_NotFound(t *testing.T) {
	svc, _ := setup()
	_, err := svc.Get(context.Background(), "u1")
	assert.True(t, core.IsNotFound(err))
}
