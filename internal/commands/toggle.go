package commands

import (
	"context"
	"flag"
	"io"

	"taskeasy/internal/config"
	"taskeasy/internal/exitcode"
	"taskeasy/internal/store"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command. Toggling a pending task
// completes it; toggling a completed task reopens it.
type ToggleCmd struct{}

func (c *ToggleCmd) Name() string      { return "toggle" }
func (c *ToggleCmd) Aliases() []string { return []string{"done"} }
func (c *ToggleCmd) Synopsis() string  { return "Mark a task completed or pending" }
func (c *ToggleCmd) Usage() string     { return "taskeasy toggle <ref>" }
func (c *ToggleCmd) NeedsStore() bool  { return true }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args)
	if err != nil {
		return fail(errOut, err)
	}

	st.Load(ctx)
	t, err := findTask(st, ref)
	if err != nil {
		return fail(errOut, err)
	}
	if err := st.Toggle(ctx, t.ID); err != nil {
		return fail(errOut, err)
	}

	printOK(cfg, out)
	return exitcode.Success
}
