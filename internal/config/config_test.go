package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "5000", cfg.HTTPPort)
	assert.Equal(t, "mongo", cfg.StoreBackend)
	assert.Equal(t, "mongodb://localhost:27017/hostelez", cfg.MongoURI)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, 30*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10*time.Minute, cfg.ClassReminderLead)
	assert.False(t, cfg.EmbeddedWorker)
	assert.NotNil(t, cfg.Location)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("STORE_BACKEND", "MEMORY")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("CLASS_REMINDER_LEAD", "bogus")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("EMBEDDED_WORKER", "true")
	t.Setenv("CORS_ORIGINS", "https://app.hostelez.in, ,http://localhost:3000")

	cfg := Load()

	assert.Equal(t, "7000", cfg.HTTPPort)
	assert.Equal(t, "memory", cfg.StoreBackend)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10*time.Minute, cfg.ClassReminderLead)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.True(t, cfg.EmbeddedWorker)
	assert.Equal(t, []string{"https://app.hostelez.in", "http://localhost:3000"}, cfg.AllowedOrigins)
}
