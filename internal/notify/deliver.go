package notify

import (
	"context"
	"log"
	"time"

	"github.com/jonboulle/clockwork"

	"hostelez/internal/metrics"
)

// LogPusher stands in for a device push provider by logging each notification.
type LogPusher struct{}

func (LogPusher) Push(_ context.Context, n Notification) error {
	log.Printf("push: user=%s kind=%s %q", n.UserID, n.Kind, n.Title)
	return nil
}

// Deliverer records notifications and pushes the new ones.
type Deliverer struct {
	inbox  Inbox
	pusher Pusher
	clock  clockwork.Clock
}

func NewDeliverer(inbox Inbox, pusher Pusher, clock clockwork.Clock) *Deliverer {
	return &Deliverer{inbox: inbox, pusher: pusher, clock: clock}
}

// Deliver stores n and pushes it unless the inbox already had its dedup key.
func (d *Deliverer) Deliver(ctx context.Context, n Notification) error {
	n.CreatedAt = d.clock.Now().UTC()
	fresh, err := d.inbox.Record(ctx, n)
	if err != nil {
		return err
	}
	if !fresh {
		return nil
	}
	metrics.RemindersDelivered.WithLabelValues(n.Kind).Inc()
	return d.pusher.Push(ctx, n)
}

// List returns the caller's most recent notifications.
func (d *Deliverer) List(ctx context.Context, userID string) ([]Notification, error) {
	return d.inbox.ListForUser(ctx, userID, 50)
}

func (d *Deliverer) MarkRead(ctx context.Context, userID, id string) error {
	return d.inbox.MarkRead(ctx, userID, id, d.clock.Now().UTC().Truncate(time.Millisecond))
}
