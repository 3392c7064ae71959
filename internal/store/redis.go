package store

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Redis holds the client behind the reminder queue.
type Redis struct {
	Client *redis.Client
}

// NewRedis accepts either host:port or a redis:// URL.
func NewRedis(addr string) (*Redis, error) {
	opts := &redis.Options{Addr: addr}
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, errors.Wrap(err, "redis url")
		}
		opts = parsed
	}
	// BRPOP gets its own deadline from go-redis on top of ReadTimeout.
	opts.DialTimeout = 2 * time.Second
	opts.ReadTimeout = time.Second
	opts.WriteTimeout = time.Second
	return &Redis{Client: redis.NewClient(opts)}, nil
}

// Healthy pings redis, giving up after a second.
func (r *Redis) Healthy(ctx context.Context) bool {
	if r == nil || r.Client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return r.Client.Ping(ctx).Err() == nil
}

func (r *Redis) Close() error {
	if r == nil || r.Client == nil {
		return nil
	}
	return r.Client.Close()
}
