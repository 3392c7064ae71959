package attendance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelez/internal/core"
)

func setup(t *testing.T) (*Service, Attendance) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	svc := NewService(NewMemoryRepository(), clock)
	att, err := svc.Create(context.Background(), "u1", NewAttendance{Subject: "DBMS", TotalClasses: 12, AttendedClasses: 8})
	require.NoError(t, err)
	return svc, att
}

func TestCreate(t *testing.T) {
	svc, att := setup(t)
	assert.Equal(t, float64(DefaultRequiredPercentage), att.RequiredPercentage)

	_, err := svc.Create(context.Background(), "u1", NewAttendance{Subject: "OS", TotalClasses: 3, AttendedClasses: 4})
	var verr *core.ValidationError
	assert.ErrorAs(t, err, &verr)

	zero := 0.0
	_, err = svc.Create(context.Background(), "u1", NewAttendance{Subject: "OS", RequiredPercentage: &zero})
	assert.ErrorAs(t, err, &verr)
}

func TestMark_Counters(t *testing.T) {
	svc, att := setup(t)
	ctx := context.Background()

	present, err := svc.Mark(ctx, "u1", att.ID, Mark{Status: Present})
	require.NoError(t, err)
	assert.Equal(t, 13, present.TotalClasses)
	assert.Equal(t, 9, present.AttendedClasses)
	require.Len(t, present.Records, 1)
	assert.Equal(t, Present, present.Records[0].Status)

	absent, err := svc.Mark(ctx, "u1", att.ID, Mark{Status: Absent})
	require.NoError(t, err)
	assert.Equal(t, 14, absent.TotalClasses)
	assert.Equal(t, 9, absent.AttendedClasses)
	assert.Len(t, absent.Records, 2)

	medical, err := svc.Mark(ctx, "u1", att.ID, Mark{Status: Medical, Reason: "fever", Certificate: "https://cdn.example/c.png"})
	require.NoError(t, err)
	assert.Equal(t, 15, medical.TotalClasses)
	assert.Equal(t, 9, medical.AttendedClasses)
	assert.Equal(t, "fever", medical.Records[2].Reason)
	assert.Equal(t, ComputeStanding(15, 9, 75), medical.Standing)
}

func TestMark_Errors(t *testing.T) {
	svc, att := setup(t)
	ctx := context.Background()

	_, err := svc.Mark(ctx, "u1", att.ID, Mark{Status: "Late"})
	var verr *core.ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = svc.Mark(ctx, "u1", "missing", Mark{Status: Present})
	assert.True(t, core.IsNotFound(err))

	// someone else's subject
	_, err = svc.Mark(ctx, "u2", att.ID, Mark{Status: Present})
	assert.True(t, core.IsNotFound(err))
}

func TestMark_ConcurrentKeepsCounters(t *testing.T) {
	svc, att := setup(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			st := Absent
			if i%2 == 0 {
				st = Present
			}
			_, err := svc.Mark(ctx, "u1", att.ID, Mark{Status: st})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 32, list[0].TotalClasses)
	assert.Equal(t, 18, list[0].AttendedClasses)
	assert.Len(t, list[0].Records, 20)
}

func TestList_Standing(t *testing.T) {
	svc, _ := setup(t)
	list, err := svc.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 66.67, list[0].Percentage)
	assert.Equal(t, 4, list[0].ClassesToAttend)

	none, err := svc.List(context.Background(), "u2")
	require.NoError(t, err)
	assert.Empty(t, none)
}
