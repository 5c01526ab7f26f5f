package storage

import (
	"context"
	"sync"
)

// MemoryBackend keeps slots in process memory. Nothing survives the process.
type MemoryBackend struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemoryBackend creates an empty memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{slots: make(map[string][]byte)}
}

// Get implements Backend.
func (b *MemoryBackend) Get(ctx context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.slots[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Put implements Backend.
func (b *MemoryBackend) Put(ctx context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	b.slots[key] = v
	return nil
}

// Close implements Backend.
func (b *MemoryBackend) Close() error {
	return nil
}
