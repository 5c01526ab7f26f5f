package storage_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"taskeasy/internal/storage"
)

func exerciseBackend(t *testing.T, b storage.Backend) {
	t.Helper()
	ctx := context.Background()

	if _, err := b.Get(ctx, "tasks"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := b.Put(ctx, "tasks", []byte("one")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.Put(ctx, "tasks", []byte("two")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.Put(ctx, "other", []byte("three")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := b.Get(ctx, "tasks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "two" {
		t.Errorf("expected 'two', got %q", got)
	}

	got, err = b.Get(ctx, "other")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "three" {
		t.Errorf("expected 'three', got %q", got)
	}
}

func TestMemoryBackend(t *testing.T) {
	exerciseBackend(t, storage.NewMemoryBackend())
}

func TestFileBackend(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	b := storage.NewFileBackend(dir)
	exerciseBackend(t, b)

	info, err := os.Stat(b.Path("tasks"))
	if err != nil {
		t.Fatalf("expected tasks file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected mode 0600, got %v", info.Mode().Perm())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected only the two slot files, got %d entries", len(entries))
	}
}

func TestFileBackend_PathSanitized(t *testing.T) {
	b := storage.NewFileBackend("/data")
	if got := b.Path("../etc/passwd"); got != filepath.Join("/data", "_etc_passwd.json") {
		t.Errorf("unexpected path %q", got)
	}
	if got := b.Path(""); got != filepath.Join("/data", "tasks.json") {
		t.Errorf("unexpected path %q", got)
	}
}

func TestFileBackend_UnwritableDir(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b := storage.NewFileBackend(filepath.Join(blocker, "data"))
	if err := b.Put(context.Background(), "tasks", []byte("x")); err == nil {
		t.Fatal("expected error writing under a regular file")
	}
}

func TestSQLiteBackend(t *testing.T) {
	dir := t.TempDir()
	b, err := storage.OpenSQLite(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer b.Close()

	exerciseBackend(t, b)

	if _, err := os.Stat(filepath.Join(dir, storage.SQLiteFile)); err != nil {
		t.Errorf("expected database file: %v", err)
	}
}

func TestSQLiteBackend_Reopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	b, err := storage.OpenSQLite(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.Put(ctx, "tasks", []byte("persisted")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b.Close()

	b, err = storage.OpenSQLite(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer b.Close()

	got, err := b.Get(ctx, "tasks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "persisted" {
		t.Errorf("expected 'persisted', got %q", got)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	for _, kind := range []string{storage.KindFile, storage.KindSQLite, storage.KindMemory, ""} {
		b, err := storage.Open(kind, dir)
		if err != nil {
			t.Fatalf("open %q: unexpected error: %v", kind, err)
		}
		b.Close()
	}

	if _, err := storage.Open("redis", dir); err == nil {
		t.Error("expected error for unknown kind")
	}
}
