package httpmiddleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

// TokenBucket is an in-memory per-client rate limiter. Buckets refill at
// rate tokens per minute up to capacity.
type TokenBucket struct {
	capacity int
	rate     int
	clock    clockwork.Clock
	mu       sync.Mutex
	state    map[string]*bucket
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewTokenBucket creates a limiter; capacity <= 0 means one minute's worth.
func NewTokenBucket(capacity, perMinute int, clock clockwork.Clock) *TokenBucket {
	if capacity <= 0 {
		capacity = perMinute
	}
	return &TokenBucket{
		capacity: capacity,
		rate:     perMinute,
		clock:    clock,
		state:    make(map[string]*bucket),
	}
}

// Middleware enforces the limit per client IP. A non-positive rate disables it.
func (l *TokenBucket) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.rate <= 0 {
			c.Next()
			return
		}
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		if !l.Allow(ip) {
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

// Allow takes a token from key's bucket.
func (l *TokenBucket) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.clock.Now()
	b, ok := l.state[key]
	if !ok {
		b = &bucket{tokens: float64(l.capacity), last: now}
		l.state[key] = b
	}
	b.tokens += now.Sub(b.last).Minutes() * float64(l.rate)
	if b.tokens > float64(l.capacity) {
		b.tokens = float64(l.capacity)
	}
	b.last = now
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}
