package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelez/internal/config"
	"hostelez/internal/errreport"
)

func memoryConfig() config.App {
	return config.App{
		StoreBackend:      "memory",
		QueueBackend:      "memory",
		JWTSecret:         "secret",
		JWTIssuer:         "hostelez",
		TokenTTL:          time.Hour,
		Location:          time.UTC,
		ClassReminderLead: 10 * time.Minute,
	}
}

func TestOpen_Memory(t *testing.T) {
	rt, err := Open(context.Background(), memoryConfig())
	require.NoError(t, err)
	defer rt.Close()

	assert.NotNil(t, rt.Services.Users)
	assert.NotNil(t, rt.Queue)
	assert.Empty(t, rt.Checks)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		rt.RunWorker(ctx, memoryConfig(), errreport.Nop())
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}

func TestOpen_UnknownBackends(t *testing.T) {
	cfg := memoryConfig()
	cfg.StoreBackend = "sqlite"
	_, err := Open(context.Background(), cfg)
	assert.Error(t, err)

	cfg = memoryConfig()
	cfg.QueueBackend = "kafka"
	_, err = Open(context.Background(), cfg)
	assert.Error(t, err)
}
