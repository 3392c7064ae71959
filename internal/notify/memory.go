package notify

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"hostelez/internal/core"
)

// MemoryInbox is an Inbox kept in process memory.
type MemoryInbox struct {
	mu    sync.Mutex
	items []Notification
	keys  map[string]bool
}

func NewMemoryInbox() *MemoryInbox {
	return &MemoryInbox{keys: make(map[string]bool)}
}

func (m *MemoryInbox) Record(_ context.Context, n Notification) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.keys[n.DedupKey] {
		return false, nil
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	m.keys[n.DedupKey] = true
	m.items = append(m.items, n)
	return true, nil
}

func (m *MemoryInbox) ListForUser(_ context.Context, userID string, limit int) ([]Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []Notification{}
	for i := len(m.items) - 1; i >= 0; i-- {
		if m.items[i].UserID == userID {
			out = append(out, m.items[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryInbox) MarkRead(_ context.Context, userID, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		n := &m.items[i]
		if n.ID == id && n.UserID == userID {
			if n.ReadAt == nil {
				n.ReadAt = &at
			}
			return nil
		}
	}
	return core.ErrNotFound
}
