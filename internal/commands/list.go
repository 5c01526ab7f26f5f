package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskeasy/internal/config"
	"taskeasy/internal/exitcode"
	"taskeasy/internal/output"
	"taskeasy/internal/store"
)

// List status filters.
const (
	StatusAll       = "all"
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `taskeasy` (no args) and `taskeasy list`.
type ListCmd struct {
	status string
}

// SetStatus sets the status filter (for testing).
func (c *ListCmd) SetStatus(status string) {
	c.status = status
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "taskeasy list [--status all|pending|completed]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.status, "status", StatusAll, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		return fail(errOut, fmt.Errorf("unexpected argument: %s", args[0]))
	}

	status := c.status
	if status == "" {
		status = StatusAll
	}

	st.Load(ctx)
	pending, completed := st.Partition()

	switch status {
	case StatusAll:
		if len(pending) == 0 && len(completed) == 0 {
			if !cfg.Quiet {
				fmt.Fprintln(out, output.EmptyMessage)
			}
			return exitcode.Success
		}
		if len(pending) > 0 {
			output.FormatPendingSection(out, pending)
		}
		if len(completed) > 0 {
			output.FormatCompletedSection(out, completed)
		}
	case StatusPending:
		output.FormatPendingSection(out, pending)
	case StatusCompleted:
		output.FormatCompletedSection(out, completed)
	default:
		return fail(errOut, fmt.Errorf("invalid status: %s", status))
	}

	return exitcode.Success
}
