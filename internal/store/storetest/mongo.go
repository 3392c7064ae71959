// Package storetest connects repository tests to a real MongoDB.
package storetest

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"hostelez/internal/store"
)

// Mongo returns a scratch database with indexes ensured, dropped when t ends.
// The test is skipped unless MONGODB_URI is set.
func Mongo(t testing.TB) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	name := "hostelez_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	m, err := store.NewMongo(ctx, uri, name)
	if err != nil {
		t.Fatalf("connect mongo: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = m.DB.Drop(ctx)
		_ = m.Close(ctx)
	})
	if err := m.EnsureIndexes(ctx); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}
	return m.DB
}
