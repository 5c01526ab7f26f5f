package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TaskRef is a parsed task reference: the 1-based position of a task in
// the pending or completed section of the list output.
type TaskRef struct {
	Num       int
	Completed bool
}

// String returns the reference as the user types it.
func (r TaskRef) String() string {
	if r.Completed {
		return fmt.Sprintf("c%d", r.Num)
	}
	return strconv.Itoa(r.Num)
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses the task reference in args[0].
//
// Parsing rules:
//  1. "N" (digits only) refers to the N-th pending task.
//  2. "cN" refers to the N-th completed task.
//  3. Anything else is an invalid task reference.
//
// Range checks happen when the reference is resolved.
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return TaskRef{}, ErrTaskRefRequired
	}

	raw := args[0]
	digits, completed := strings.CutPrefix(raw, "c")
	if !isAllDigits(digits) {
		return TaskRef{}, fmt.Errorf("invalid task reference: %s", raw)
	}
	num, err := strconv.Atoi(digits)
	if err != nil {
		return TaskRef{}, fmt.Errorf("invalid task reference: %s", raw)
	}
	return TaskRef{Num: num, Completed: completed}, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
