package commands

import (
	"context"
	"flag"
	"io"
	"strings"

	"taskeasy/internal/config"
	"taskeasy/internal/exitcode"
	"taskeasy/internal/store"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
type EditCmd struct{}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return []string{"rename"} }
func (c *EditCmd) Synopsis() string  { return "Change a task title" }
func (c *EditCmd) Usage() string     { return "taskeasy edit <ref> <title...>" }
func (c *EditCmd) NeedsStore() bool  { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args)
	if err != nil {
		return fail(errOut, err)
	}

	st.Load(ctx)
	t, err := findTask(st, ref)
	if err != nil {
		return fail(errOut, err)
	}
	if err := st.Rename(ctx, t.ID, strings.Join(args[1:], " ")); err != nil {
		return fail(errOut, err)
	}

	printOK(cfg, out)
	return exitcode.Success
}
