// Package reminder scans the stores on a schedule and hands due reminders to
// the queue, and pumps them from the queue into the notification inbox.
package reminder

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"hostelez/internal/metrics"
	"hostelez/internal/queue"
)

const (
	KindClass      = "class"
	KindMedicine   = "medicine"
	KindLaundry    = "laundry"
	KindAssignment = "assignment"
)

// Reminder is a notification a scan decided to send. Key is deterministic for
// the underlying record and occurrence, so re-sending is harmless.
type Reminder struct {
	Kind   string    `json:"kind"`
	UserID string    `json:"userId"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	DueAt  time.Time `json:"dueAt"`
	Key    string    `json:"key"`
}

// Dispatcher accepts reminders for delivery.
type Dispatcher interface {
	Dispatch(ctx context.Context, r Reminder) error
}

// QueueDispatcher publishes reminders on a queue.
type QueueDispatcher struct {
	q queue.Queue
}

func NewQueueDispatcher(q queue.Queue) *QueueDispatcher {
	return &QueueDispatcher{q: q}
}

func (d *QueueDispatcher) Dispatch(ctx context.Context, r Reminder) error {
	body, err := json.Marshal(r)
	if err != nil {
		return errors.Wrap(err, "encode reminder")
	}
	if err := d.q.Publish(ctx, queue.Message{Kind: r.Kind, Body: body}); err != nil {
		return errors.Wrapf(err, "publish %s reminder", r.Kind)
	}
	metrics.RemindersDispatched.WithLabelValues(r.Kind).Inc()
	return nil
}
