package cache

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// LRU is an in-process cache with per-entry expiry.
type LRU struct {
	cache *lru.Cache
	mu    sync.Mutex
	now   func() time.Time
}

type lruEntry struct {
	value     []byte
	expiresAt time.Time
}

var _ Cache = (*LRU)(nil)

func NewLRU(maxSize int) (*LRU, error) {
	c, err := lru.New(maxSize)
	if err != nil {
		return nil, err
	}
	return &LRU{cache: c, now: time.Now}, nil
}

func (c *LRU) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	val, found := c.cache.Get(key)
	if !found {
		return nil, ErrMiss
	}
	entry := val.(lruEntry)
	if !entry.expiresAt.IsZero() && c.now().After(entry.expiresAt) {
		c.cache.Remove(key)
		return nil, ErrMiss
	}
	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, nil
}

// Set stores value; a zero ttl never expires.
func (c *LRU) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := lruEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		entry.expiresAt = c.now().Add(ttl)
	}
	c.cache.Add(key, entry)
	return nil
}

func (c *LRU) Del(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		c.cache.Remove(key)
	}
	return nil
}

func (c *LRU) Ping(ctx context.Context) error {
	return nil
}

func (c *LRU) Close() error {
	c.cache.Purge()
	return nil
}
