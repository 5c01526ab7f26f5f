// Package storage persists the task collection in a local key-value slot.
//
// A Backend stores opaque blobs by key. The Bridge sits on top of a Backend,
// encodes the collection, and absorbs every read or write failure so callers
// always get a usable (possibly empty) collection.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// DefaultKey is the slot the task collection is stored under.
const DefaultKey = "tasks"

// Backend kinds accepted by Open.
const (
	KindFile   = "file"
	KindSQLite = "sqlite"
	KindMemory = "memory"
)

// ErrNotFound is returned by Backend.Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// Backend is a persistent key-value slot.
type Backend interface {
	// Get returns the blob stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put overwrites the blob stored under key.
	Put(ctx context.Context, key string, value []byte) error

	// Close releases any resources held by the backend.
	Close() error
}

// Open creates a backend of the given kind rooted at dir.
func Open(kind, dir string) (Backend, error) {
	switch kind {
	case KindFile, "":
		return NewFileBackend(dir), nil
	case KindSQLite:
		return OpenSQLite(dir)
	case KindMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown storage kind: %s", kind)
	}
}

// ValidKind reports whether kind names a backend Open understands.
func ValidKind(kind string) bool {
	switch kind {
	case KindFile, KindSQLite, KindMemory:
		return true
	}
	return false
}
