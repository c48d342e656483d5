package repo

import (
	"context"
	"sync"
	"time"

	"github.com/lumena-studio/concierge/internal/assistant/model"
)

type memoryCacheEntry struct {
	resp      model.Response
	expiresAt time.Time
}

// MemoryResponseCache is the in-process response cache used when no Redis
// URL is configured, and as a deterministic fake in tests. Expiry is lazy:
// stale entries are dropped on lookup, never served.
type MemoryResponseCache struct {
	mu      sync.Mutex
	entries map[string]memoryCacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryResponseCache(ttl time.Duration) *MemoryResponseCache {
	return &MemoryResponseCache{
		entries: make(map[string]memoryCacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *MemoryResponseCache) Lookup(_ context.Context, message string) (*model.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := CacheKey(message)
	e, ok := c.entries[key]
	if !ok {
		return nil, nil
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return nil, nil
	}

	resp := e.resp
	return &resp, nil
}

func (c *MemoryResponseCache) Store(_ context.Context, message string, resp *model.Response) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[CacheKey(message)] = memoryCacheEntry{
		resp:      *resp,
		expiresAt: c.now().Add(c.ttl),
	}
	return nil
}

var _ model.ResponseCache = (*MemoryResponseCache)(nil)
