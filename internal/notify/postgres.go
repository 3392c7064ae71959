package notify

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"hostelez/internal/core"
)

// PostgresInbox keeps notifications in the notifications table.
type PostgresInbox struct {
	db *sql.DB
}

func NewPostgresInbox(db *sql.DB) *PostgresInbox {
	return &PostgresInbox{db: db}
}

// EnsureSchema creates the notifications table when missing.
func (p *PostgresInbox) EnsureSchema(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS notifications (
			id         UUID PRIMARY KEY,
			user_id    TEXT NOT NULL,
			kind       TEXT NOT NULL,
			title      TEXT NOT NULL,
			body       TEXT NOT NULL DEFAULT '',
			due_at     TIMESTAMPTZ,
			dedup_key  TEXT NOT NULL UNIQUE,
			read_at    TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS notifications_user_created ON notifications (user_id, created_at DESC);
	`)
	return errors.Wrap(err, "create notifications table")
}

func (p *PostgresInbox) Record(ctx context.Context, n Notification) (bool, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	res, err := p.db.ExecContext(ctx, `
		INSERT INTO notifications (id, user_id, kind, title, body, due_at, dedup_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (dedup_key) DO NOTHING
	`, n.ID, n.UserID, n.Kind, n.Title, n.Body, n.DueAt, n.DedupKey)
	if err != nil {
		return false, errors.Wrap(err, "insert notification")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "insert notification")
	}
	return rows == 1, nil
}

func (p *PostgresInbox) ListForUser(ctx context.Context, userID string, limit int) ([]Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := p.db.QueryContext(ctx, `
		SELECT id, user_id, kind, title, body, due_at, dedup_key, read_at, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "list notifications")
	}
	defer rows.Close()

	out := []Notification{}
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Kind, &n.Title, &n.Body, &n.DueAt, &n.DedupKey, &n.ReadAt, &n.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan notification")
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (p *PostgresInbox) MarkRead(ctx context.Context, userID, id string, at time.Time) error {
	if _, err := uuid.Parse(id); err != nil {
		return core.ErrNotFound
	}
	res, err := p.db.ExecContext(ctx, `
		UPDATE notifications SET read_at = COALESCE(read_at, $3)
		WHERE id = $1 AND user_id = $2
	`, id, userID, at)
	if err != nil {
		return errors.Wrap(err, "mark notification read")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return core.ErrNotFound
	}
	return nil
}
