package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type memoryStore struct {
	items *gocache.Cache
}

// NewMemoryStore is the single-process fallback used when no Redis URL is
// configured. Expired entries are purged every cleanupInterval.
func NewMemoryStore(cleanupInterval time.Duration) Store {
	return &memoryStore{
		items: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

func (m *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.items.Get(key)
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	return s, ok, nil
}

func (m *memoryStore) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	m.items.Set(key, value, ttl)
	return nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	m.items.Delete(key)
	return nil
}
