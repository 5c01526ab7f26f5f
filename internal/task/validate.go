package task

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultMinTitleLength is the minimum title length in characters.
const DefaultMinTitleLength = 3

var (
	// ErrTitleRequired indicates an empty or whitespace-only title.
	ErrTitleRequired = errors.New("title required")

	// ErrTitleTooShort indicates a title below the minimum length.
	ErrTitleTooShort = errors.New("title too short")
)

// ValidationError describes a rejected title.
type ValidationError struct {
	Title string
	Min   int
	Err   error
}

func (e *ValidationError) Error() string {
	if errors.Is(e.Err, ErrTitleTooShort) {
		return fmt.Sprintf("title must be at least %d characters: %q", e.Min, e.Title)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NormalizeTitle trims the title and checks it against min.
// Length is counted in runes after trimming. A min of 0 or less only
// rejects empty titles.
func NormalizeTitle(title string, min int) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", &ValidationError{Title: trimmed, Min: min, Err: ErrTitleRequired}
	}
	if min > 0 && utf8.RuneCountInString(trimmed) < min {
		return "", &ValidationError{Title: trimmed, Min: min, Err: ErrTitleTooShort}
	}
	return trimmed, nil
}
