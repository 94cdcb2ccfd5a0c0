package store

import (
	"context"
	"strings"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

// MemoryKV map-backed KV used when Redis is disabled and as the cache
// double in tests.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]memoryEntry)}
}

func (m *MemoryKV) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return "", ErrMiss
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.data, key)
		m.mu.Unlock()
		return "", ErrMiss
	}
	return entry.value, nil
}

func (m *MemoryKV) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	m.mu.Lock()
	m.data[key] = entry
	m.mu.Unlock()
	return nil
}

func (m *MemoryKV) Del(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	for _, k := range keys {
		delete(m.data, k)
	}
	m.mu.Unlock()
	return nil
}

// ScanKeys supports the one glob shape the service uses: "prefix*".
func (m *MemoryKV) ScanKeys(ctx context.Context, pattern string) ([]string, error) {
	prefix := strings.TrimSuffix(pattern, "*")
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}
