package assignment

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
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC))
	return NewService(NewMemoryRepository(), clock), clock
}

func TestList_OrderAndOverdue(t *testing.T) {
	svc, clock := setup()
	ctx := context.Background()
	now := clock.Now()

	_, err := svc.Create(ctx, "u1", NewAssignment{Subject: "OS", Title: "Paging", DueDate: now.Add(48 * time.Hour)})
	require.NoError(t, err)
	late, err := svc.Create(ctx, "u1", NewAssignment{Subject: "DBMS", Title: "ER diagram", DueDate: now.Add(-time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, Overdue, late.Status)
	done, err := svc.Create(ctx, "u1", NewAssignment{Subject: "CN", Title: "Subnets", DueDate: now.Add(-2 * time.Hour)})
	require.NoError(t, err)
	st := Completed
	_, err = svc.Update(ctx, "u1", done.ID, Patch{Status: &st})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u2", NewAssignment{Subject: "X", Title: "Y", DueDate: now})
	require.NoError(t, err)

	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Subnets", list[0].Title)
	assert.Equal(t, Completed, list[0].Status)
	assert.Equal(t, Overdue, list[1].Status)
	assert.Equal(t, Pending, list[2].Status)
	assert.Equal(t, Medium, list[2].Priority)
}

func TestUpdate_ScopedToOwner(t *testing.T) {
	svc, clock := setup()
	ctx := context.Background()

	a, err := svc.Create(ctx, "u1", NewAssignment{Subject: "OS", Title: "Paging", DueDate: clock.Now().Add(time.Hour)})
	require.NoError(t, err)

	title := "Segmentation"
	_, err = svc.Update(ctx, "u2", a.ID, Patch{Title: &title})
	assert.True(t, core.IsNotFound(err))

	st := Overdue
	_, err = svc.Update(ctx, "u1", a.ID, Patch{Status: &st})
	var verr *core.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDueWithin_Reminders(t *testing.T) {
	svc, clock := setup()
	ctx := context.Background()
	now := clock.Now()

	soon, err := svc.Create(ctx, "u1", NewAssignment{Subject: "OS", Title: "Paging", DueDate: now.Add(5 * time.Hour)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u1", NewAssignment{Subject: "OS", Title: "Later", DueDate: now.Add(30 * time.Hour)})
	require.NoError(t, err)

	due, err := svc.DueWithin(ctx, now, 24*time.Hour)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, soon.ID, due[0].ID)

	require.NoError(t, svc.MarkReminded(ctx, soon.ID))
	due, err = svc.DueWithin(ctx, now, 24*time.Hour)
	require.NoError(t, err)
	assert.Empty(t, due)

	// moving the deadline re-arms the reminder
	moved := now.Add(10 * time.Hour)
	_, err = svc.Update(ctx, "u1", soon.ID, Patch{DueDate: &moved})
	require.NoError(t, err)
	due, err = svc.DueWithin(ctx, now, 24*time.Hour)
	require.NoError(t, err)
	assert.Len(t, due, 1)
}
