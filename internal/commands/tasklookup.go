package commands

import (
	"fmt"

	"taskeasy/internal/store"
	"taskeasy/internal/task"
)

// findTask resolves ref against the store's current partition, numbered
// the same way the list command prints it.
func findTask(st *store.Store, ref TaskRef) (task.Task, error) {
	pending, completed := st.Partition()
	section := pending
	if ref.Completed {
		section = completed
	}
	if ref.Num < 1 || ref.Num > len(section) {
		return task.Task{}, fmt.Errorf("task number out of range: %s", ref)
	}
	return section[ref.Num-1], nil
}
