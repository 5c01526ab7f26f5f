package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"taskeasy/internal/task"
	"taskeasy/internal/testutil"
)

func tasks(titles ...string) []task.Task {
	out := make([]task.Task, 0, len(titles))
	for i, title := range titles {
		out = append(out, task.Task{ID: string(rune('a' + i)), Title: title})
	}
	return out
}

func TestFormatPending(t *testing.T) {
	var buf bytes.Buffer
	FormatPending(&buf, 1, task.Task{Title: "Buy milk"})
	FormatPending(&buf, 12, task.Task{Title: "Walk dog"})

	expected := "   1  Buy milk\n  12  Walk dog\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatCompleted(t *testing.T) {
	var buf bytes.Buffer
	FormatCompleted(&buf, 1, task.Task{Title: "Buy milk"})
	FormatCompleted(&buf, 100, task.Task{Title: "Walk dog"})

	expected := "  c1  Buy milk\nc100  Walk dog\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatSections(t *testing.T) {
	var buf bytes.Buffer
	FormatPendingSection(&buf, tasks("Walk dog", "Buy milk"))
	FormatCompletedSection(&buf, tasks("File taxes"))

	testutil.GoldenString(t, "sections", buf.String())
}

func TestFormatSections_Empty(t *testing.T) {
	var buf bytes.Buffer
	FormatPendingSection(&buf, nil)

	testutil.GoldenString(t, "pending_empty", buf.String())
}

func TestNormalizeTitle(t *testing.T) {
	tests := map[string]string{
		"Buy milk":        "Buy milk",
		"line one\nline2": "line one line2",
		"a\r\nb":          "a  b",
		"   ":             "(untitled)",
		"":                "(untitled)",
	}
	for in, want := range tests {
		if got := normalizeTitle(in); got != want {
			t.Errorf("normalizeTitle(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	list := []task.Task{
		{ID: "x", Title: "Walk dog"},
		{ID: "y", Title: "Buy milk", Completed: true, CreatedAt: &created},
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, list); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.GoldenString(t, "export_json", buf.String())
}

func TestWriteJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "[]\n" {
		t.Errorf("expected empty array, got %q", buf.String())
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, []task.Task{{ID: "x", Title: "Walk dog"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "- id: x\n  title: Walk dog\n  completed: false\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestWriteYAML_CreatedAt(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var buf bytes.Buffer
	if err := WriteYAML(&buf, []task.Task{{ID: "x", Title: "Walk dog", CreatedAt: &created}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "2026-01-02T03:04:05Z") {
		t.Errorf("expected createdAt in output, got %q", buf.String())
	}
}
