package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// UpdateEnv names the environment variable that rewrites golden files.
const UpdateEnv = "GOLDEN_UPDATE"

// GoldenString compares got against testdata/<name>.golden.
// If UpdateEnv is set, the golden file is rewritten instead.
func GoldenString(t *testing.T, name string, got string) {
	t.Helper()

	path := filepath.Join("testdata", name+".golden")

	if os.Getenv(UpdateEnv) != "" {
		if err := os.MkdirAll("testdata", 0755); err != nil {
			t.Fatalf("failed to create testdata dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0644); err != nil {
			t.Fatalf("failed to update golden file: %v", err)
		}
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v\nGot:\n%s", path, err, got)
	}
	want := string(data)
	if got == want {
		return
	}

	line, wantLine, gotLine := firstDiff(want, got)
	t.Errorf("output mismatch for %s at line %d\nwant: %q\ngot:  %q\nWant:\n%s\nGot:\n%s",
		name, line, wantLine, gotLine, want, got)
}

// firstDiff returns the 1-based number of the first differing line and
// both versions of it.
func firstDiff(want, got string) (int, string, string) {
	w := strings.Split(want, "\n")
	g := strings.Split(got, "\n")
	for i := 0; i < len(w) || i < len(g); i++ {
		var wl, gl string
		if i < len(w) {
			wl = w[i]
		}
		if i < len(g) {
			gl = g[i]
		}
		if wl != gl || i >= len(w) || i >= len(g) {
			return i + 1, wl, gl
		}
	}
	return 0, "", ""
}
