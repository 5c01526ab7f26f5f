package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"taskeasy/internal/task"
)

// Bridge reads and writes the full task collection under a single key.
// It never reports failures to its caller: a bad read yields an empty
// collection and a failed write is logged and dropped.
type Bridge struct {
	backend Backend
	key     string
	logger  *log.Logger
}

// NewBridge creates a bridge over backend. An empty key uses DefaultKey and
// a nil logger discards log output.
func NewBridge(backend Backend, key string, logger *log.Logger) *Bridge {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Bridge{
		backend: backend,
		key:     key,
		logger:  logger.With("key", key),
	}
}

// Key returns the slot key.
func (b *Bridge) Key() string {
	return b.key
}

// Load returns the persisted collection, or an empty one if the slot is
// absent, unreadable, or holds malformed data.
func (b *Bridge) Load(ctx context.Context) []task.Task {
	tasks, err := b.load(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			b.logger.Debug("no stored tasks")
		} else {
			b.logger.Warn("ignoring stored tasks", "err", err)
		}
		return []task.Task{}
	}
	b.logger.Debug("loaded tasks", "count", len(tasks))
	return tasks
}

func (b *Bridge) load(ctx context.Context) ([]task.Task, error) {
	data, err := b.backend.Get(ctx, b.key)
	if err != nil {
		return nil, err
	}
	if err := validateBlob(data); err != nil {
		return nil, err
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return b.clean(tasks), nil
}

// clean drops records with blank titles and keeps the first task for each id.
func (b *Bridge) clean(tasks []task.Task) []task.Task {
	seen := make(map[string]bool, len(tasks))
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.TrimSpace(t.Title) == "" {
			b.logger.Warn("dropping task with blank title", "id", t.ID)
			continue
		}
		if seen[t.ID] {
			b.logger.Warn("dropping duplicate task id", "id", t.ID)
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out
}

// Save overwrites the slot with tasks. Failures are logged, not returned.
func (b *Bridge) Save(ctx context.Context, tasks []task.Task) {
	if err := b.save(ctx, tasks); err != nil {
		b.logger.Warn("tasks not saved", "err", err)
		return
	}
	b.logger.Debug("saved tasks", "count", len(tasks))
}

func (b *Bridge) save(ctx context.Context, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	data = append(data, '\n')
	return b.backend.Put(ctx, b.key, data)
}
