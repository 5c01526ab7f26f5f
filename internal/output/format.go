// Package output provides formatters for CLI output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"taskeasy/internal/task"
)

const (
	// ListSeparator is the separator line for list sections.
	ListSeparator = "------------"

	// EmptyMessage is printed when there are no tasks at all.
	EmptyMessage = "no tasks yet"
)

// FormatPending formats a pending task line.
// Format: "{N:>4}  {TITLE}\n" (4-wide right-aligned number, two spaces, title)
func FormatPending(w io.Writer, num int, t task.Task) {
	fmt.Fprintf(w, "%4d  %s\n", num, normalizeTitle(t.Title))
}

// FormatCompleted formats a completed task line. The number carries a "c"
// prefix so it can be passed back as a task reference.
// Format: "{cN:>4}  {TITLE}\n"
func FormatCompleted(w io.Writer, num int, t task.Task) {
	fmt.Fprintf(w, "%4s  %s\n", fmt.Sprintf("c%d", num), normalizeTitle(t.Title))
}

// FormatSectionHeader formats a section header with its task count.
func FormatSectionHeader(w io.Writer, title string, count int) {
	fmt.Fprintln(w, ListSeparator)
	fmt.Fprintf(w, "%s (%d)\n", title, count)
	fmt.Fprintln(w, ListSeparator)
}

// FormatPendingSection writes the "Pending" header followed by its tasks.
func FormatPendingSection(w io.Writer, tasks []task.Task) {
	FormatSectionHeader(w, "Pending", len(tasks))
	for i, t := range tasks {
		FormatPending(w, i+1, t)
	}
}

// FormatCompletedSection writes the "Completed" header followed by its tasks.
func FormatCompletedSection(w io.Writer, tasks []task.Task) {
	FormatSectionHeader(w, "Completed", len(tasks))
	for i, t := range tasks {
		FormatCompleted(w, i+1, t)
	}
}

// exportTask is the exported shape of a task.
type exportTask struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Completed bool   `json:"completed" yaml:"completed"`
	CreatedAt string `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
}

func toExport(tasks []task.Task) []exportTask {
	out := make([]exportTask, 0, len(tasks))
	for _, t := range tasks {
		e := exportTask{ID: t.ID, Title: t.Title, Completed: t.Completed}
		if t.CreatedAt != nil {
			e.CreatedAt = t.CreatedAt.UTC().Format(time.RFC3339)
		}
		out = append(out, e)
	}
	return out
}

// WriteJSON writes tasks as an indented JSON array.
func WriteJSON(w io.Writer, tasks []task.Task) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toExport(tasks)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// WriteYAML writes tasks as a YAML sequence.
func WriteYAML(w io.Writer, tasks []task.Task) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toExport(tasks)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
