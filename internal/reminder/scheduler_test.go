package reminder

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelez/internal/errreport"
	"hostelez/internal/notify"
	"hostelez/internal/queue"
)

func TestScheduler_AdvancesWithFakeClock(t *testing.T) {
	clock := clockwork.NewFakeClockAt(wednesday.Add(30 * time.Second))
	ticks := make(chan time.Time, 4)
	job := Job{
		Name:     "probe",
		Schedule: MustCron(EveryMinute, nil),
		Run: func(_ context.Context, now time.Time) error {
			ticks <- now
			return nil
		},
	}
	failing := Job{
		Name:     "broken",
		Schedule: MustCron(EveryMinute, nil),
		Run:      func(context.Context, time.Time) error { panic("boom") },
	}
	s := NewScheduler(clock, time.UTC, errreport.Nop(), job, failing)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	clock.BlockUntil(2)
	clock.Advance(30 * time.Second)
	select {
	case got := <-ticks:
		assert.True(t, got.Equal(wednesday.Add(time.Minute)), "got %v", got)
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run")
	}

	clock.BlockUntil(2)
	clock.Advance(time.Minute)
	select {
	case got := <-ticks:
		assert.True(t, got.Equal(wednesday.Add(2*time.Minute)), "got %v", got)
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run again after a failing sibling")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestPump_DeliversOnceAndSkipsMalformed(t *testing.T) {
	q := queue.NewInMemory(8)
	inbox := notify.NewMemoryInbox()
	d := notify.NewDeliverer(inbox, notify.LogPusher{}, clockwork.NewFakeClockAt(wednesday))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	disp := NewQueueDispatcher(q)
	r := Reminder{Kind: KindLaundry, UserID: "u1", Title: "Laundry tomorrow at 07:00", DueAt: wednesday, Key: "laundry:s1"}
	require.NoError(t, disp.Dispatch(ctx, r))
	require.NoError(t, q.Publish(ctx, queue.Message{Kind: "laundry", Body: json.RawMessage(`{"oops"`)}))
	require.NoError(t, disp.Dispatch(ctx, r))
	r.Key, r.Title = "laundry:s2", "Laundry tomorrow at 08:00"
	require.NoError(t, disp.Dispatch(ctx, r))

	go func() { _ = Pump(ctx, q, d) }()

	require.Eventually(t, func() bool {
		list, err := inbox.ListForUser(ctx, "u1", 0)
		return err == nil && len(list) == 2 && q.Len() == 0
	}, 2*time.Second, 10*time.Millisecond)

	list, err := inbox.ListForUser(ctx, "u1", 0)
	require.NoError(t, err)
	require.NotNil(t, list[0].DueAt)
	assert.True(t, list[0].DueAt.Equal(wednesday))
}
