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
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "taskeasy rm <ref>" }
func (c *RmCmd) NeedsStore() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args)
	if err != nil {
		return fail(errOut, err)
	}

	st.Load(ctx)
	t, err := findTask(st, ref)
	if err != nil {
		return fail(errOut, err)
	}
	if err := st.Remove(ctx, t.ID); err != nil {
		return fail(errOut, err)
	}

	printOK(cfg, out)
	return exitcode.Success
}
