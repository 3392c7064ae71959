// Package notify records delivered reminders in a per-user inbox.
package notify

import (
	"context"
	"time"
)

// Notification is one inbox entry.
type Notification struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Kind      string     `json:"kind"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	DueAt     *time.Time `json:"dueAt,omitempty"`
	DedupKey  string     `json:"-"`
	ReadAt    *time.Time `json:"readAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Inbox stores notifications. Record is idempotent on DedupKey.
type Inbox interface {
	// Record stores n and reports whether it was new.
	Record(ctx context.Context, n Notification) (bool, error)
	ListForUser(ctx context.Context, userID string, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, userID, id string, at time.Time) error
}

// Pusher delivers a notification to the resident's device.
type Pusher interface {
	Push(ctx context.Context, n Notification) error
}
