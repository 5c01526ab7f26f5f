// Package store holds the in-memory task collection and keeps it in sync
// with persistent storage.
//
// A Store starts in the Loading state. Load hydrates it from its Persister
// and moves it to Ready; only then are mutations accepted and written
// through. This keeps an empty initial collection from ever overwriting
// stored data. The Store is single-writer and not safe for concurrent use.
package store

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"taskeasy/internal/task"
)

// State is the store lifecycle state.
type State int

const (
	// Loading means the collection has not been hydrated yet.
	Loading State = iota
	// Ready means Load has completed.
	Ready
)

func (s State) String() string {
	if s == Ready {
		return "ready"
	}
	return "loading"
}

// ErrNotReady is returned by mutations called before Load.
var ErrNotReady = errors.New("store not loaded")

// Persister loads and saves the full collection. Implementations absorb
// their own failures.
type Persister interface {
	Load(ctx context.Context) []task.Task
	Save(ctx context.Context, tasks []task.Task)
}

// Snapshot is a read-only view of the store handed to subscribers.
type Snapshot struct {
	State     State
	Pending   []task.Task
	Completed []task.Task
}

// Total returns the number of tasks in the snapshot.
func (s Snapshot) Total() int {
	return len(s.Pending) + len(s.Completed)
}

// Option configures a Store.
type Option func(*Store)

// WithMinTitleLength sets the minimum title length for Create and Rename.
func WithMinTitleLength(n int) Option {
	return func(s *Store) {
		s.minTitle = n
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used for createdAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDFunc overrides id generation.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// Store is the owned task collection.
type Store struct {
	persister Persister
	state     State
	tasks     []task.Task

	minTitle int
	now      func() time.Time
	newID    func() string
	logger   *log.Logger

	subs   map[int]func(Snapshot)
	nextID int
}

// New creates a store in the Loading state.
func New(p Persister, opts ...Option) *Store {
	s := &Store{
		persister: p,
		state:     Loading,
		minTitle:  task.DefaultMinTitleLength,
		now:       time.Now,
		newID:     task.NewID,
		logger:    log.New(io.Discard),
		subs:      make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load hydrates the collection and moves the store to Ready.
// Calling Load on a ready store does nothing.
func (s *Store) Load(ctx context.Context) {
	if s.state == Ready {
		return
	}
	s.tasks = s.persister.Load(ctx)
	if s.tasks == nil {
		s.tasks = []task.Task{}
	}
	s.state = Ready
	s.logger.Debug("store ready", "tasks", len(s.tasks))
	s.notify()
}

// State returns the lifecycle state.
func (s *Store) State() State {
	return s.state
}

// Ready reports whether Load has completed.
func (s *Store) Ready() bool {
	return s.state == Ready
}

// MinTitleLength returns the configured minimum title length.
func (s *Store) MinTitleLength() int {
	return s.minTitle
}

// Create adds a new pending task at the head of the collection.
func (s *Store) Create(ctx context.Context, title string) (task.Task, error) {
	if !s.Ready() {
		return task.Task{}, ErrNotReady
	}
	title, err := task.NormalizeTitle(title, s.minTitle)
	if err != nil {
		return task.Task{}, err
	}

	t := task.New(s.newID(), title, s.now())

	s.tasks = append([]task.Task{t}, s.tasks...)
	s.logger.Debug("task created", "id", t.ID)
	s.commit(ctx)
	return t.Clone(), nil
}

// Toggle flips the completed flag of the task with id.
// An unknown id is a no-op.
func (s *Store) Toggle(ctx context.Context, id string) error {
	if !s.Ready() {
		return ErrNotReady
	}
	i := s.index(id)
	if i < 0 {
		return nil
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	s.logger.Debug("task toggled", "id", id, "completed", s.tasks[i].Completed)
	s.commit(ctx)
	return nil
}

// Rename replaces the title of the task with id.
// An unknown id is a no-op; an invalid title is rejected either way.
func (s *Store) Rename(ctx context.Context, id, title string) error {
	if !s.Ready() {
		return ErrNotReady
	}
	title, err := task.NormalizeTitle(title, s.minTitle)
	if err != nil {
		return err
	}
	i := s.index(id)
	if i < 0 {
		return nil
	}
	s.tasks[i].Title = title
	s.logger.Debug("task renamed", "id", id)
	s.commit(ctx)
	return nil
}

// Remove deletes the task with id. An unknown id is a no-op.
func (s *Store) Remove(ctx context.Context, id string) error {
	if !s.Ready() {
		return ErrNotReady
	}
	i := s.index(id)
	if i < 0 {
		return nil
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.logger.Debug("task removed", "id", id)
	s.commit(ctx)
	return nil
}

// Partition splits the collection into pending and completed tasks,
// each in collection order.
func (s *Store) Partition() (pending, completed []task.Task) {
	pending = []task.Task{}
	completed = []task.Task{}
	for _, t := range s.tasks {
		if t.Completed {
			completed = append(completed, t.Clone())
		} else {
			pending = append(pending, t.Clone())
		}
	}
	return pending, completed
}

// Tasks returns a copy of the collection in order.
func (s *Store) Tasks() []task.Task {
	out := make([]task.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Get returns the task with id.
func (s *Store) Get(id string) (task.Task, bool) {
	i := s.index(id)
	if i < 0 {
		return task.Task{}, false
	}
	return s.tasks[i].Clone(), true
}

// Snapshot returns the current state and partition.
func (s *Store) Snapshot() Snapshot {
	pending, completed := s.Partition()
	return Snapshot{State: s.state, Pending: pending, Completed: completed}
}

// Subscribe registers fn to be called after every state change.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		delete(s.subs, id)
	}
}

func (s *Store) index(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// commit writes the collection through and notifies subscribers.
func (s *Store) commit(ctx context.Context) {
	s.persister.Save(ctx, s.Tasks())
	s.notify()
}

func (s *Store) notify() {
	if len(s.subs) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, fn := range s.subs {
		fn(snap)
	}
}
