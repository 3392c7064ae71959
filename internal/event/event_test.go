package event

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelez/internal/core"
)

func TestCreateAndList(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	later, err := svc.Create(ctx, "u1", NewEvent{
		Title:     " Hackathon ",
		EventType: "Club",
		Date:      time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "9:30 AM",
		EndTime:   "18:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hackathon", later.Title)
	assert.Equal(t, "09:30", later.StartTime)

	_, err = svc.Create(ctx, "u1", NewEvent{Title: "Fest", EventType: "Cultural", Date: time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u2", NewEvent{Title: "Match", EventType: "Sports", Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Fest", list[0].Title)
	assert.Equal(t, "Hackathon", list[1].Title)
}

func TestCreate_EndBeforeStart(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	_, err := svc.Create(context.Background(), "u1", NewEvent{
		Title:     "Talk",
		EventType: "Academic",
		Date:      time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "14:00",
		EndTime:   "13:00",
	})
	var verr *core.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "endTime", verr.Fields[0].Field)
}
