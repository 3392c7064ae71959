package notify

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelez/internal/core"
)

type recordingPusher struct {
	pushed []Notification
}

func (p *recordingPusher) Push(_ context.Context, n Notification) error {
	p.pushed = append(p.pushed, n)
	return nil
}

func TestDeliver_DedupsOnKey(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC))
	pusher := &recordingPusher{}
	d := NewDeliverer(NewMemoryInbox(), pusher, clock)
	ctx := context.Background()

	n := Notification{UserID: "u1", Kind: "class", Title: "OS in 10 minutes", DedupKey: "class:u1:c1:2026-03-04"}
	require.NoError(t, d.Deliver(ctx, n))
	require.NoError(t, d.Deliver(ctx, n))
	clock.Advance(time.Minute)
	require.NoError(t, d.Deliver(ctx, Notification{UserID: "u1", Kind: "laundry", Title: "Laundry tomorrow", DedupKey: "laundry:s1"}))

	assert.Len(t, pusher.pushed, 2)
	list, err := d.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "laundry", list[0].Kind)

	require.NoError(t, d.MarkRead(ctx, "u1", list[0].ID))
	list, err = d.List(ctx, "u1")
	require.NoError(t, err)
	assert.NotNil(t, list[0].ReadAt)

	assert.True(t, core.IsNotFound(d.MarkRead(ctx, "u2", list[0].ID)))
}
