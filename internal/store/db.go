package store

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
)

// DB wraps sql.DB for the Postgres notification inbox, using pgx.
type DB struct {
	Client *sql.DB
}

// NewDB opens a Postgres pool and pings it. The returned DB is usable even
// when the ping fails, so callers may start degraded.
func NewDB(ctx context.Context, connString string) (*DB, error) {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, errors.Wrap(err, "postgres open")
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return &DB{Client: db}, errors.Wrap(err, "postgres ping")
	}
	return &DB{Client: db}, nil
}

// Healthy verifies postgres connectivity.
func (d *DB) Healthy(ctx context.Context) bool {
	if d == nil || d.Client == nil {
		return false
	}
	return d.Client.PingContext(ctx) == nil
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	if d == nil || d.Client == nil {
		return nil
	}
	return d.Client.Close()
}
