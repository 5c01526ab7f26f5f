// Package task defines the task entity, id generation, and title validation.
package task

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Task represents a single task item.
type Task struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// New creates a pending task. title is stored as given; callers validate
// and trim first.
func New(id, title string, now time.Time) Task {
	created := now.UTC()
	return Task{
		ID:        id,
		Title:     title,
		CreatedAt: &created,
	}
}

// Clone returns a copy of t that shares no memory with it.
func (t Task) Clone() Task {
	if t.CreatedAt != nil {
		created := *t.CreatedAt
		t.CreatedAt = &created
	}
	return t
}

// NewID returns a fresh random task id.
func NewID() string {
	return uuid.NewString()
}

// UnmarshalJSON accepts both string ids and the numeric ids written by
// older versions of the data file.
func (t *Task) UnmarshalJSON(data []byte) error {
	type alias Task
	var raw struct {
		alias
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := parseID(raw.ID)
	if err != nil {
		return err
	}

	*t = Task(raw.alias)
	t.ID = id
	return nil
}

func parseID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", fmt.Errorf("missing task id")
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("invalid task id: %w", err)
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("invalid task id: %s", raw)
	}
	// Millisecond timestamps fit in an int64; anything else keeps its literal form.
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return strconv.FormatInt(i, 10), nil
	}
	return n.String(), nil
}
