package reminder

import (
	"context"
	"encoding/json"
	"log"

	"hostelez/internal/notify"
	"hostelez/internal/queue"
)

// Deliverer stores and pushes one notification.
type Deliverer interface {
	Deliver(ctx context.Context, n notify.Notification) error
}

// Pump moves reminders from q to d until ctx is done. Malformed messages
// are logged and dropped.
func Pump(ctx context.Context, q queue.Queue, d Deliverer) error {
	msgs, err := q.Consume(ctx)
	if err != nil {
		return err
	}
	log.Println("pump: waiting for reminders")
	for msg := range msgs {
		var r Reminder
		if err := json.Unmarshal(msg.Body, &r); err != nil || r.UserID == "" || r.Key == "" {
			log.Printf("pump: skipping malformed %s message: %v", msg.Kind, err)
			continue
		}
		due := r.DueAt
		n := notify.Notification{
			UserID:   r.UserID,
			Kind:     r.Kind,
			Title:    r.Title,
			Body:     r.Body,
			DedupKey: r.Key,
		}
		if !due.IsZero() {
			n.DueAt = &due
		}
		if err := d.Deliver(ctx, n); err != nil {
			log.Printf("pump: deliver %s: %v", r.Key, err)
		}
	}
	log.Println("pump: stopped")
	return nil
}
