package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// DefaultKey is the redis list reminders travel through.
const DefaultKey = "hostelez:reminders"

// Message is one unit of work. Kind tells consumers how to read Body.
type Message struct {
	Kind string          `json:"kind"`
	Body json.RawMessage `json:"body"`
}

// Queue is the abstraction over different backends.
type Queue interface {
	Publish(ctx context.Context, msg Message) error
	// Consume streams messages until ctx is done, then closes the channel.
	Consume(ctx context.Context) (<-chan Message, error)
}

// InMemory is a channel-backed queue for single-process setups and tests.
type InMemory struct {
	ch chan Message
}

// NewInMemory creates a bounded in-memory queue.
func NewInMemory(size int) *InMemory {
	return &InMemory{ch: make(chan Message, size)}
}

// Publish enqueues msg, blocking while the buffer is full.
func (q *InMemory) Publish(ctx context.Context, msg Message) error {
	select {
	case q.ch <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *InMemory) Consume(ctx context.Context) (<-chan Message, error) {
	out := make(chan Message)
	go func() {
		defer close(out)
		for {
			select {
			case msg := <-q.ch:
				select {
				case out <- msg:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Len reports buffered messages.
func (q *InMemory) Len() int { return len(q.ch) }

// RedisQueue is a redis list queue: LPUSH to publish, BRPOP to consume.
type RedisQueue struct {
	client *redis.Client
	key    string
	wait   time.Duration
}

func NewRedisQueue(client *redis.Client, key string) *RedisQueue {
	if key == "" {
		key = DefaultKey
	}
	return &RedisQueue{client: client, key: key, wait: 5 * time.Second}
}

func (q *RedisQueue) Publish(ctx context.Context, msg Message) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "encode message")
	}
	if err := q.client.LPush(ctx, q.key, raw).Err(); err != nil {
		return errors.Wrapf(err, "lpush %s", q.key)
	}
	return nil
}

func (q *RedisQueue) Consume(ctx context.Context) (<-chan Message, error) {
	out := make(chan Message)
	go func() {
		defer close(out)
		for {
			res, err := q.client.BRPop(ctx, q.wait, q.key).Result()
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				if !errors.Is(err, redis.Nil) {
					log.Printf("queue: brpop %s: %v", q.key, err)
					time.Sleep(time.Second)
				}
				continue
			}
			if len(res) != 2 {
				continue
			}
			var msg Message
			if err := json.Unmarshal([]byte(res[1]), &msg); err != nil {
				log.Printf("queue: dropping malformed message: %v", err)
				continue
			}
			select {
			case out <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
