// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"taskeasy/internal/storage"
)

// FaultyBackend is an in-memory storage.Backend with error injection and
// call counting.
type FaultyBackend struct {
	mu    sync.Mutex
	slots map[string][]byte

	// Error injection for testing
	GetErr error
	PutErr error

	Gets int
	Puts int
}

// NewFaultyBackend creates an empty backend.
func NewFaultyBackend() *FaultyBackend {
	return &FaultyBackend{slots: make(map[string][]byte)}
}

// Seed stores raw data under key without counting a Put.
func (f *FaultyBackend) Seed(key string, data string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slots[key] = []byte(data)
}

// Raw returns what is stored under key.
func (f *FaultyBackend) Raw(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.slots[key]
	return string(v), ok
}

// Get implements storage.Backend.
func (f *FaultyBackend) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Gets++
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	v, ok := f.slots[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put implements storage.Backend.
func (f *FaultyBackend) Put(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Puts++
	if f.PutErr != nil {
		return f.PutErr
	}
	f.slots[key] = append([]byte(nil), value...)
	return nil
}

// Close implements storage.Backend.
func (f *FaultyBackend) Close() error {
	return nil
}

// Logger returns a debug-level logger writing to w without timestamps.
func Logger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: false,
	})
}
