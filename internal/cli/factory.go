package cli

import (
	"context"
	"io"

	"taskeasy/internal/config"
	"taskeasy/internal/logging"
	"taskeasy/internal/storage"
	"taskeasy/internal/store"
)

// NewStoreFactory returns the production StoreFactory. Logs go to logOut.
// If the configured backend cannot be opened, tasks are kept in memory for
// the session and a warning is logged.
func NewStoreFactory(logOut io.Writer) StoreFactory {
	return func(ctx context.Context, cfg *config.Config) (*store.Store, func(), error) {
		logger := logging.New(logOut, cfg.LogLevel, cfg.Debug)

		if cfg.Storage != storage.KindMemory {
			if err := cfg.EnsureDir(); err != nil {
				logger.Warn("failed to create config directory", "dir", cfg.Dir, "err", err)
			}
		}

		backend, err := storage.Open(cfg.Storage, cfg.StorageDir())
		if err != nil {
			logger.Warn("storage unavailable, changes will not persist", "storage", cfg.Storage, "err", err)
			backend = storage.NewMemoryBackend()
		}

		bridge := storage.NewBridge(backend, cfg.StorageKey, logger)
		logger.Debug("storage opened", "storage", cfg.Storage, "key", bridge.Key(), "path", location(backend, bridge.Key()))
		st := store.New(bridge,
			store.WithMinTitleLength(cfg.MinTitleLength),
			store.WithLogger(logger),
		)

		cleanup := func() {
			if err := backend.Close(); err != nil {
				logger.Warn("failed to close storage", "err", err)
			}
		}
		return st, cleanup, nil
	}
}

// location describes where backend keeps the slot for key.
func location(backend storage.Backend, key string) string {
	switch b := backend.(type) {
	case *storage.FileBackend:
		return b.Path(key)
	case *storage.SQLiteBackend:
		return b.Path()
	default:
		return "memory"
	}
}
